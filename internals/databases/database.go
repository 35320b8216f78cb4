package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"flc_backend/internals/constants"
)

// Store owns the Mongo client and the flc database handle.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func ConnectDB(ctx context.Context, uri, dbName string) (*Store, error) {
	log.Println("🔌 Connecting to MongoDB...")

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true)).
		// nested documents decode as bson.M so they render as JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Println("✅ Pinged your deployment. Connected to MongoDB")
	return &Store{Client: client, DB: client.Database(dbName)}, nil
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.DB.Collection(name)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// EnsureIndexes backs the write-time uniqueness checks with unique indexes.
// Existing duplicates make index creation fail; that is logged and startup continues.
func (s *Store) EnsureIndexes(ctx context.Context) {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			collection: constants.CollectionUsers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		{
			collection: constants.CollectionSavedClasses,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "studentEmail", Value: 1}, {Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_student_class"),
			},
		},
		{
			collection: constants.CollectionPayments,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "studentEmail", Value: 1}, {Key: "createAt", Value: -1}},
				Options: options.Index().SetName("student_history"),
			},
		},
		{
			collection: constants.CollectionClasses,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("status"),
			},
		},
	}

	for _, idx := range indexes {
		name, err := s.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			log.Printf("[WARN] index on %s not created: %v", idx.collection, err)
			continue
		}
		log.Printf("[INFO] index %s.%s ready", idx.collection, name)
	}
}
