package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InviteUsageRecord is the denormalized trail written when an invite code is
// redeemed. Presentation layers read these directly; core logic never does.
type InviteUsageRecord struct {
	GroupID         uint64    `bson:"group_id" json:"group_id"`
	Code            string    `bson:"code" json:"code"`
	JoinedUserID    uint64    `bson:"joined_user_id" json:"joined_user_id"`
	JoinedNickname  string    `bson:"joined_nickname" json:"joined_nickname"`
	CreatorUserID   uint64    `bson:"creator_user_id" json:"creator_user_id"`
	CreatorNickname string    `bson:"creator_nickname" json:"creator_nickname"`
	JoinedAt        time.Time `bson:"joined_at" json:"joined_at"`
}

type InviteUsageStore struct {
	collection *mongo.Collection
}

func NewInviteUsageStore(mc *MongoClient) *InviteUsageStore {
	return &InviteUsageStore{
		collection: mc.Database.Collection("invite_usage"),
	}
}

func (s *InviteUsageStore) Record(ctx context.Context, rec *InviteUsageRecord) error {
	if rec.JoinedAt.IsZero() {
		rec.JoinedAt = time.Now()
	}
	if _, err := s.collection.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert invite usage record: %w", err)
	}
	return nil
}

// ByGroup returns the most recent usage records for a group, newest first.
func (s *InviteUsageStore) ByGroup(ctx context.Context, groupID uint64, limit int64) ([]*InviteUsageRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "joined_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, bson.M{"group_id": groupID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find invite usage records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*InviteUsageRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode invite usage records: %w", err)
	}
	return records, nil
}
