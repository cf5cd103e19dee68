package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the data model relies on. The unique
// reaction indexes are load-bearing: the toggle flow's check-then-act is
// not atomic, and these constraints are what turn a racing double-toggle
// into a rejected duplicate instead of two reaction records.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	likeIndexes := []mongo.IndexModel{
		reactionIndex("likedBy", "video"),
		reactionIndex("likedBy", "comment"),
		reactionIndex("likedBy", "tweet"),
		{Keys: bson.D{{Key: "video", Value: 1}}},
	}
	if _, err := c.Collection(CollLikes).Indexes().CreateMany(ctx, likeIndexes); err != nil {
		return fmt.Errorf("failed to create like indexes: %w", err)
	}

	subIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "subscriber", Value: 1},
				{Key: "channel", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "channel", Value: 1}}},
	}
	if _, err := c.Collection(CollSubscriptions).Indexes().CreateMany(ctx, subIndexes); err != nil {
		return fmt.Errorf("failed to create subscription indexes: %w", err)
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: 1}}},
	}
	if _, err := c.Collection(CollComments).Indexes().CreateMany(ctx, commentIndexes); err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}

	videoIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}
	if _, err := c.Collection(CollVideos).Indexes().CreateMany(ctx, videoIndexes); err != nil {
		return fmt.Errorf("failed to create video indexes: %w", err)
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := c.Collection(CollUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	return nil
}

// reactionIndex builds a partial unique index over (actorField, targetField).
// Partial because a like document carries exactly one target field; without
// the filter, documents missing the field would collide on null.
func reactionIndex(actorField, targetField string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{
			{Key: actorField, Value: 1},
			{Key: targetField, Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.D{
				{Key: targetField, Value: bson.D{{Key: "$exists", Value: true}}},
			}),
	}
}
