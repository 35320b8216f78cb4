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
	"flc_backend/internals/features/payment/payments/model"
)

// SavedClassRemover drops the saved selection a payment settles.
type SavedClassRemover interface {
	DeleteByID(ctx context.Context, id primitive.ObjectID) (database.DeleteResult, error)
}

type PaymentRepository interface {
	// RecordPayment inserts the payment and then removes the saved class with savedID.
	RecordPayment(ctx context.Context, savedID primitive.ObjectID, payment *model.PaymentModel) (database.InsertResult, database.DeleteResult, error)
	FindByStudent(ctx context.Context, email string) ([]model.PaymentModel, error)
	// History is FindByStudent ordered by createAt, newest first.
	History(ctx context.Context, email string) ([]model.PaymentModel, error)
}

type MongoPaymentRepository struct {
	client        *mongo.Client
	payments      *mongo.Collection
	saved         SavedClassRemover
	transactional bool
}

func NewMongoPaymentRepository(store *database.Store, saved SavedClassRemover, transactional bool) *MongoPaymentRepository {
	return &MongoPaymentRepository{
		client:        store.Client,
		payments:      store.Collection(constants.CollectionPayments),
		saved:         saved,
		transactional: transactional,
	}
}

// HistoryFindOptions sorts payments by createAt descending.
func HistoryFindOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createAt", Value: -1}})
}

func (r *MongoPaymentRepository) RecordPayment(ctx context.Context, savedID primitive.ObjectID, payment *model.PaymentModel) (database.InsertResult, database.DeleteResult, error) {
	if !r.transactional {
		return r.insertThenDelete(ctx, savedID, payment)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return database.InsertResult{}, database.DeleteResult{}, fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	var (
		inserted database.InsertResult
		deleted  database.DeleteResult
	)
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var txErr error
		inserted, deleted, txErr = r.insertThenDelete(sc, savedID, payment)
		return nil, txErr
	})
	if err != nil {
		return database.InsertResult{}, database.DeleteResult{}, fmt.Errorf("record payment: %w", err)
	}
	return inserted, deleted, nil
}

func (r *MongoPaymentRepository) insertThenDelete(ctx context.Context, savedID primitive.ObjectID, payment *model.PaymentModel) (database.InsertResult, database.DeleteResult, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	res, err := r.payments.InsertOne(ctx, payment)
	if err != nil {
		return database.InsertResult{}, database.DeleteResult{}, fmt.Errorf("insert payment: %w", err)
	}

	deleted, err := r.saved.DeleteByID(ctx, savedID)
	if err != nil {
		return database.InsertResult{}, database.DeleteResult{}, err
	}
	return database.NewInsertResult(res), deleted, nil
}

func (r *MongoPaymentRepository) FindByStudent(ctx context.Context, email string) ([]model.PaymentModel, error) {
	return r.find(ctx, email, options.Find())
}

func (r *MongoPaymentRepository) History(ctx context.Context, email string) ([]model.PaymentModel, error) {
	return r.find(ctx, email, HistoryFindOptions())
}

func (r *MongoPaymentRepository) find(ctx context.Context, email string, opts *options.FindOptions) ([]model.PaymentModel, error) {
	cur, err := r.payments.Find(ctx, bson.M{"studentEmail": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	payments := make([]model.PaymentModel, 0)
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}
