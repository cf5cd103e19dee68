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

// VideoRepository implements repository.VideoRepository using MongoDB.
type VideoRepository struct {
	col collection
}

// NewVideoRepository creates a new VideoRepository backed by client.
func NewVideoRepository(client *Client) *VideoRepository {
	return &VideoRepository{col: client.Collection(CollVideos)}
}

var _ repository.VideoRepository = (*VideoRepository)(nil)

// Create persists a new video entity.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	if _, err := r.col.InsertOne(ctx, video); err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

// GetByID retrieves a video by its identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Video, error) {
	var video model.Video
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by ID: %w", err)
	}
	return &video, nil
}

// Update persists the mutable fields of a video. Owner is deliberately
// excluded from the update document.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	video.UpdatedAt = time.Now()

	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: video.ID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "title", Value: video.Title},
			{Key: "description", Value: video.Description},
			{Key: "thumbnail", Value: video.Thumbnail},
			{Key: "updatedAt", Value: video.UpdatedAt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}

// SetPublished flips the publish flag.
func (r *VideoRepository) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: published},
			{Key: "updatedAt", Value: time.Now()},
		}}},
	)
	if err != nil {
		return fmt.Errorf("failed to set publish status: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}

// IncrementViews adds one view to the counter. Views never decrements; the
// only writer is this $inc.
func (r *VideoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}},
	)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}

// Delete removes the video document.
func (r *VideoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrVideoNotFound
	}
	return nil
}

// Search runs the search pipeline: case-insensitive substring match on
// title or description, reduced owner join, caller-selected sort, then
// skip/limit pagination.
func (r *VideoRepository) Search(ctx context.Context, params repository.SearchParams) ([]model.VideoSummary, error) {
	p := pipeline.Pipeline{
		pipeline.Match{Filter: pipeline.Or(
			pipeline.RegexContains("title", params.Query),
			pipeline.RegexContains("description", params.Query),
		)},
		ownerProfileLookup(),
		pipeline.Unwind{Path: "$owner"},
		pipeline.Sort{Keys: searchSortKeys(params)},
		pipeline.Skip(params.Page.Skip()),
		pipeline.Limit(params.Page.Size),
	}

	cursor, err := r.col.Aggregate(ctx, p.Build())
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	defer cursor.Close(ctx)

	var results []model.VideoSummary
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return results, nil
}

// GetDetail runs the detail pipeline for viewer. Like count, isLiked,
// subscriber count and isSubscribed come out of a single aggregation so
// the flags can never disagree with the counts they accompany.
func (r *VideoRepository) GetDetail(ctx context.Context, id, viewer primitive.ObjectID) (*model.VideoDetail, error) {
	p := pipeline.Pipeline{
		pipeline.Match{Filter: bson.D{{Key: "_id", Value: id}}},
		pipeline.Lookup{
			From:         CollLikes,
			LocalField:   "_id",
			ForeignField: "video",
			As:           "likes",
		},
		pipeline.AddFields{Fields: bson.D{
			{Key: "likesCount", Value: pipeline.Size("$likes")},
			{Key: "isLiked", Value: pipeline.MemberOf(viewer, "$likes.likedBy")},
		}},
		pipeline.Lookup{
			From:         CollUsers,
			LocalField:   "owner",
			ForeignField: "_id",
			As:           "owner",
			Pipeline: pipeline.Pipeline{
				pipeline.Lookup{
					From:         CollSubscriptions,
					LocalField:   "_id",
					ForeignField: "channel",
					As:           "subscribers",
				},
				pipeline.AddFields{Fields: bson.D{
					{Key: "subscriberCount", Value: pipeline.Size("$subscribers")},
					{Key: "isSubscribed", Value: pipeline.MemberOf(viewer, "$subscribers.subscriber")},
				}},
				pipeline.Project{Fields: bson.D{
					{Key: "username", Value: 1},
					{Key: "fullName", Value: 1},
					{Key: "avatar", Value: 1},
					{Key: "subscriberCount", Value: 1},
					{Key: "isSubscribed", Value: 1},
				}},
			},
		},
		pipeline.Unwind{Path: "$owner"},
		pipeline.Lookup{
			From:         CollComments,
			LocalField:   "_id",
			ForeignField: "video",
			As:           "comments",
		},
		pipeline.Project{Fields: bson.D{
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "comments", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "isLiked", Value: 1},
			{Key: "createdAt", Value: 1},
		}},
	}

	cursor, err := r.col.Aggregate(ctx, p.Build())
	if err != nil {
		return nil, fmt.Errorf("failed to get video detail: %w", err)
	}
	defer cursor.Close(ctx)

	var results []model.VideoDetail
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode video detail: %w", err)
	}
	if len(results) == 0 {
		return nil, repository.ErrVideoNotFound
	}
	return &results[0], nil
}

// ListByOwner returns the owner's videos with their like counts.
func (r *VideoRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]model.ChannelVideo, error) {
	p := pipeline.Pipeline{
		pipeline.Match{Filter: bson.D{{Key: "owner", Value: owner}}},
		pipeline.Lookup{
			From:         CollLikes,
			LocalField:   "_id",
			ForeignField: "video",
			As:           "likes",
		},
		pipeline.AddFields{Fields: bson.D{
			{Key: "likesCount", Value: pipeline.Size("$likes")},
		}},
		pipeline.Project{Fields: bson.D{
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "isPublished", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "createdAt", Value: 1},
		}},
		pipeline.Sort{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	cursor, err := r.col.Aggregate(ctx, p.Build())
	if err != nil {
		return nil, fmt.Errorf("failed to list channel videos: %w", err)
	}
	defer cursor.Close(ctx)

	var results []model.ChannelVideo
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode channel videos: %w", err)
	}
	return results, nil
}

// ownerProfileLookup joins the reduced public owner profile. Credential
// fields never leave the users collection.
func ownerProfileLookup() pipeline.Lookup {
	return pipeline.Lookup{
		From:         CollUsers,
		LocalField:   "owner",
		ForeignField: "_id",
		As:           "owner",
		Pipeline: pipeline.Pipeline{
			pipeline.Project{Fields: bson.D{
				{Key: "username", Value: 1},
				{Key: "fullName", Value: 1},
				{Key: "avatar", Value: 1},
			}},
		},
	}
}

// searchSortKeys maps SearchParams to a sort document; insertion order
// (createdAt descending) when no sort field is given.
func searchSortKeys(params repository.SearchParams) bson.D {
	if params.SortBy == "" {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	dir := -1
	if params.Ascending {
		dir = 1
	}
	return bson.D{{Key: params.SortBy, Value: dir}}
}
