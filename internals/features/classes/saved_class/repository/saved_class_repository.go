package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"flc_backend/internals/constants"
	database "flc_backend/internals/databases"
	"flc_backend/internals/features/classes/saved_class/model"
)

// ErrDuplicateSavedClass is returned by Insert when the (studentEmail, name) index rejects the write.
var ErrDuplicateSavedClass = errors.New("class already saved")

type SavedClassRepository interface {
	// Get returns nil, nil when no document has the id.
	Get(ctx context.Context, id primitive.ObjectID) (*model.SavedClassModel, error)
	FindByStudent(ctx context.Context, email string) ([]model.SavedClassModel, error)
	Exists(ctx context.Context, name, studentEmail string) (bool, error)
	Insert(ctx context.Context, saved *model.SavedClassModel) (database.InsertResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (database.DeleteResult, error)
}

type MongoSavedClassRepository struct {
	saved *mongo.Collection
}

func NewMongoSavedClassRepository(db *mongo.Database) *MongoSavedClassRepository {
	return &MongoSavedClassRepository{saved: db.Collection(constants.CollectionSavedClasses)}
}

func (r *MongoSavedClassRepository) Get(ctx context.Context, id primitive.ObjectID) (*model.SavedClassModel, error) {
	var saved model.SavedClassModel
	err := r.saved.FindOne(ctx, bson.M{"_id": id}).Decode(&saved)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get saved class: %w", err)
	}
	return &saved, nil
}

func (r *MongoSavedClassRepository) FindByStudent(ctx context.Context, email string) ([]model.SavedClassModel, error) {
	cur, err := r.saved.Find(ctx, bson.M{"studentEmail": email})
	if err != nil {
		return nil, fmt.Errorf("find saved classes: %w", err)
	}
	saved := make([]model.SavedClassModel, 0)
	if err := cur.All(ctx, &saved); err != nil {
		return nil, fmt.Errorf("decode saved classes: %w", err)
	}
	return saved, nil
}

func (r *MongoSavedClassRepository) Exists(ctx context.Context, name, studentEmail string) (bool, error) {
	n, err := r.saved.CountDocuments(ctx, bson.M{"name": name, "studentEmail": studentEmail})
	if err != nil {
		return false, fmt.Errorf("count saved classes: %w", err)
	}
	return n > 0, nil
}

func (r *MongoSavedClassRepository) Insert(ctx context.Context, saved *model.SavedClassModel) (database.InsertResult, error) {
	if saved.ID.IsZero() {
		saved.ID = primitive.NewObjectID()
	}
	res, err := r.saved.InsertOne(ctx, saved)
	if mongo.IsDuplicateKeyError(err) {
		return database.InsertResult{}, ErrDuplicateSavedClass
	}
	if err != nil {
		return database.InsertResult{}, fmt.Errorf("insert saved class: %w", err)
	}
	return database.NewInsertResult(res), nil
}

func (r *MongoSavedClassRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (database.DeleteResult, error) {
	res, err := r.saved.DeleteMany(ctx, bson.M{"_id": id})
	if err != nil {
		return database.DeleteResult{}, fmt.Errorf("delete saved class: %w", err)
	}
	return database.NewDeleteResult(res), nil
}
