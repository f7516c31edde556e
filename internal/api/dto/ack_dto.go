package dto

import "go.mongodb.org/mongo-driver/mongo"

// InsertAck mirrors the document store's insert acknowledgement.
type InsertAck struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateAck mirrors the document store's update acknowledgement.
type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

// DeleteAck mirrors the document store's delete acknowledgement.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertAck(res *mongo.InsertOneResult) InsertAck {
	if res == nil {
		return InsertAck{}
	}
	return InsertAck{Acknowledged: true, InsertedID: res.InsertedID}
}

func NewUpdateAck(res *mongo.UpdateResult) UpdateAck {
	if res == nil {
		return UpdateAck{}
	}
	return UpdateAck{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func NewDeleteAck(res *mongo.DeleteResult) DeleteAck {
	if res == nil {
		return DeleteAck{}
	}
	return DeleteAck{Acknowledged: true, DeletedCount: res.DeletedCount}
}
