package database

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Write results are rendered with the same field names the Node driver used,
// so existing clients keep reading insertedId / deletedCount.

type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertResult(res *mongo.InsertOneResult) InsertResult {
	if res == nil {
		return InsertResult{}
	}
	return InsertResult{Acknowledged: true, InsertedID: hexID(res.InsertedID)}
}

func NewUpdateResult(res *mongo.UpdateResult) UpdateResult {
	if res == nil {
		return UpdateResult{}
	}
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    hexID(res.UpsertedID),
	}
}

func NewDeleteResult(res *mongo.DeleteResult) DeleteResult {
	if res == nil {
		return DeleteResult{}
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func hexID(id any) any {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return id
}
