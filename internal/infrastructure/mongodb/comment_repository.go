package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
	"github.com/hszk-dev/vidtube/internal/pipeline"
)

// CommentRepository implements repository.CommentRepository using MongoDB.
type CommentRepository struct {
	col collection
}

// NewCommentRepository creates a new CommentRepository backed by client.
func NewCommentRepository(client *Client) *CommentRepository {
	return &CommentRepository{col: client.Collection(CollComments)}
}

var _ repository.CommentRepository = (*CommentRepository)(nil)

// Create persists a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if _, err := r.col.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by its identifier.
func (r *CommentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", err)
	}
	return &comment, nil
}

// Update persists content changes.
func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	comment.UpdatedAt = time.Now()

	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: comment.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "content", Value: comment.Content},
			{Key: "updatedAt", Value: comment.UpdatedAt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}
	return nil
}

// DeleteByVideo removes every comment referencing video.
func (r *CommentRepository) DeleteByVideo(ctx context.Context, video primitive.ObjectID) error {
	if _, err := r.col.DeleteMany(ctx, bson.D{{Key: "video", Value: video}}); err != nil {
		return fmt.Errorf("failed to delete comments by video: %w", err)
	}
	return nil
}

// ListByVideo runs the comment listing pipeline: like count join, reduced
// owner profile, insertion order, skip/limit pagination.
func (r *CommentRepository) ListByVideo(ctx context.Context, video primitive.ObjectID, page repository.Page) ([]model.CommentView, error) {
	p := pipeline.Pipeline{
		pipeline.Match{Filter: bson.D{{Key: "video", Value: video}}},
		pipeline.Lookup{
			From:         CollLikes,
			LocalField:   "_id",
			ForeignField: "comment",
			As:           "likes",
		},
		pipeline.AddFields{Fields: bson.D{
			{Key: "likesCount", Value: pipeline.Size("$likes")},
		}},
		ownerProfileLookup(),
		pipeline.Unwind{Path: "$owner"},
		pipeline.Project{Fields: bson.D{
			{Key: "content", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "createdAt", Value: 1},
		}},
		pipeline.Sort{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		pipeline.Skip(page.Skip()),
		pipeline.Limit(page.Size),
	}

	cursor, err := r.col.Aggregate(ctx, p.Build())
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var results []model.CommentView
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return results, nil
}
