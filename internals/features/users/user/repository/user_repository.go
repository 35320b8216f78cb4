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
	"flc_backend/internals/features/users/user/model"
)

// ErrDuplicateEmail is returned by Insert when the unique email index rejects the write.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	FindAll(ctx context.Context) ([]model.UserModel, error)
	FindByRole(ctx context.Context, role string) ([]model.UserModel, error)
	// FindByEmail returns nil, nil when no user has the email.
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	Insert(ctx context.Context, user *model.UserModel) (database.InsertResult, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (database.UpdateResult, error)
}

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{users: db.Collection(constants.CollectionUsers)}
}

func (r *MongoUserRepository) FindAll(ctx context.Context) ([]model.UserModel, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoUserRepository) FindByRole(ctx context.Context, role string) ([]model.UserModel, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var user model.UserModel
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, user *model.UserModel) (database.InsertResult, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	res, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return database.InsertResult{}, ErrDuplicateEmail
	}
	if err != nil {
		return database.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return database.NewInsertResult(res), nil
}

func (r *MongoUserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (database.UpdateResult, error) {
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return database.UpdateResult{}, fmt.Errorf("set user role: %w", err)
	}
	return database.NewUpdateResult(res), nil
}

func (r *MongoUserRepository) find(ctx context.Context, filter bson.M) ([]model.UserModel, error) {
	cur, err := r.users.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	users := make([]model.UserModel, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
