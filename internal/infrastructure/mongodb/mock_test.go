package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection implements collection with overridable function fields.
// Results are constructed with mongo.NewSingleResultFromDocument and
// mongo.NewCursorFromDocuments, so decode paths run for real.
type fakeCollection struct {
	insertOneFn      func(ctx context.Context, document any) (*mongo.InsertOneResult, error)
	findOneFn        func(ctx context.Context, filter any) *mongo.SingleResult
	findFn           func(ctx context.Context, filter any) (*mongo.Cursor, error)
	updateOneFn      func(ctx context.Context, filter, update any) (*mongo.UpdateResult, error)
	updateManyFn     func(ctx context.Context, filter, update any) (*mongo.UpdateResult, error)
	deleteOneFn      func(ctx context.Context, filter any) (*mongo.DeleteResult, error)
	deleteManyFn     func(ctx context.Context, filter any) (*mongo.DeleteResult, error)
	aggregateFn      func(ctx context.Context, pipeline any) (*mongo.Cursor, error)
	countDocumentsFn func(ctx context.Context, filter any) (int64, error)
}

func (f *fakeCollection) InsertOne(ctx context.Context, document any, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.insertOneFn != nil {
		return f.insertOneFn(ctx, document)
	}
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) FindOne(ctx context.Context, filter any, _ ...*options.FindOneOptions) *mongo.SingleResult {
	if f.findOneFn != nil {
		return f.findOneFn(ctx, filter)
	}
	return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
}

func (f *fakeCollection) Find(ctx context.Context, filter any, _ ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.findFn != nil {
		return f.findFn(ctx, filter)
	}
	return mongo.NewCursorFromDocuments([]any{}, nil, nil)
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter, update any, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if f.updateOneFn != nil {
		return f.updateOneFn(ctx, filter, update)
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (f *fakeCollection) UpdateMany(ctx context.Context, filter, update any, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if f.updateManyFn != nil {
		return f.updateManyFn(ctx, filter, update)
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeCollection) DeleteOne(ctx context.Context, filter any, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	if f.deleteOneFn != nil {
		return f.deleteOneFn(ctx, filter)
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeCollection) DeleteMany(ctx context.Context, filter any, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	if f.deleteManyFn != nil {
		return f.deleteManyFn(ctx, filter)
	}
	return &mongo.DeleteResult{}, nil
}

func (f *fakeCollection) Aggregate(ctx context.Context, pipeline any, _ ...*options.AggregateOptions) (*mongo.Cursor, error) {
	if f.aggregateFn != nil {
		return f.aggregateFn(ctx, pipeline)
	}
	return mongo.NewCursorFromDocuments([]any{}, nil, nil)
}

func (f *fakeCollection) CountDocuments(ctx context.Context, filter any, _ ...*options.CountOptions) (int64, error) {
	if f.countDocumentsFn != nil {
		return f.countDocumentsFn(ctx, filter)
	}
	return 0, nil
}
