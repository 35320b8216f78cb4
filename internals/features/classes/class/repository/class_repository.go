package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flc_backend/internals/constants"
	database "flc_backend/internals/databases"
	"flc_backend/internals/features/classes/class/model"
)

type ClassRepository interface {
	FindAll(ctx context.Context) ([]model.ClassModel, error)
	FindByInstructor(ctx context.Context, email string) ([]model.ClassModel, error)
	FindByStatus(ctx context.Context, status string) ([]model.ClassModel, error)
	Insert(ctx context.Context, class *model.ClassModel) (database.InsertResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (database.UpdateResult, error)
	// IncrementBooking upserts by name and bumps the booking counter by one.
	IncrementBooking(ctx context.Context, name string) (database.UpdateResult, error)
}

type MongoClassRepository struct {
	classes *mongo.Collection
}

func NewMongoClassRepository(db *mongo.Database) *MongoClassRepository {
	return &MongoClassRepository{classes: db.Collection(constants.CollectionClasses)}
}

func (r *MongoClassRepository) FindAll(ctx context.Context) ([]model.ClassModel, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoClassRepository) FindByInstructor(ctx context.Context, email string) ([]model.ClassModel, error) {
	return r.find(ctx, bson.M{"instructorEmail": email})
}

func (r *MongoClassRepository) FindByStatus(ctx context.Context, status string) ([]model.ClassModel, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoClassRepository) Insert(ctx context.Context, class *model.ClassModel) (database.InsertResult, error) {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
	}
	res, err := r.classes.InsertOne(ctx, class)
	if err != nil {
		return database.InsertResult{}, fmt.Errorf("insert class: %w", err)
	}
	return database.NewInsertResult(res), nil
}

func (r *MongoClassRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (database.UpdateResult, error) {
	res, err := r.classes.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return database.UpdateResult{}, fmt.Errorf("set class status: %w", err)
	}
	return database.NewUpdateResult(res), nil
}

func (r *MongoClassRepository) IncrementBooking(ctx context.Context, name string) (database.UpdateResult, error) {
	res, err := r.classes.UpdateOne(ctx,
		bson.M{"name": name},
		bson.M{"$inc": bson.M{"booking": 1}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return database.UpdateResult{}, fmt.Errorf("increment booking: %w", err)
	}
	return database.NewUpdateResult(res), nil
}

func (r *MongoClassRepository) find(ctx context.Context, filter bson.M) ([]model.ClassModel, error) {
	cur, err := r.classes.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	classes := make([]model.ClassModel, 0)
	if err := cur.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("decode classes: %w", err)
	}
	return classes, nil
}
