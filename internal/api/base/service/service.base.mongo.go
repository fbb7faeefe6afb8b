// Package baseservice contains the generic MongoDB data-access layer shared
// by every domain service. Domain services embed BaseServiceMongo and add
// their business rules on top.
package baseservice

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// BaseServiceMongo provides generic CRUD operations over one collection.
// T is the document model of the collection.
type BaseServiceMongo[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo creates the generic service over a collection handle.
func NewBaseServiceMongo[T any](collection *mongo.Collection) BaseServiceMongo[T] {
	return BaseServiceMongo[T]{collection: collection}
}

// Collection exposes the underlying handle for aggregation pipelines that
// generic CRUD does not cover.
func (s *BaseServiceMongo[T]) Collection() *mongo.Collection {
	return s.collection
}

// modelToDoc converts a typed model into a bson document so that server-side
// timestamps can be stamped without reflection on the model type.
func modelToDoc[T any](model T) (bson.M, error) {
	raw, err := bson.Marshal(model)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "failed to encode document", common.StatusBadRequest, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "failed to decode document", common.StatusBadRequest, err)
	}
	return doc, nil
}

// InsertOne inserts a document, stamping createdAt/updatedAt with the
// current unix-milli time. Returns the stored document.
func (s *BaseServiceMongo[T]) InsertOne(ctx context.Context, model T) (T, error) {
	var zero T

	doc, err := modelToDoc(model)
	if err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now
	if id, ok := doc["_id"]; !ok || id == primitive.NilObjectID {
		doc["_id"] = primitive.NewObjectID()
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return s.FindOneByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// FindOne returns the first document matching filter.
func (s *BaseServiceMongo[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var result T
	if filter == nil {
		filter = bson.D{}
	}
	if err := s.collection.FindOne(ctx, filter, opts).Decode(&result); err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

// FindOneByID returns the document with the given ObjectID.
func (s *BaseServiceMongo[T]) FindOneByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// Find returns all documents matching filter.
func (s *BaseServiceMongo[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindWithPagination returns one page of documents matching filter along
// with the total count. Page numbering starts at 1.
func (s *BaseServiceMongo[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.D{}
	}
	page, limit = NormalizePage(page, limit)

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit).SetLimit(limit)

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: TotalPages(total, limit),
	}, nil
}

// UpdateByID applies a partial $set update to the document with the given
// id, stamping updatedAt. Returns the updated document.
func (s *BaseServiceMongo[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (T, error) {
	var zero T
	if len(set) == 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "no fields to update", common.StatusBadRequest, nil)
	}

	set["updatedAt"] = time.Now().UnixMilli()
	delete(set, "_id")
	delete(set, "createdAt")

	result := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated T
	if err := result.Decode(&updated); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

// UpdateOne applies an arbitrary update document to the first match. The
// caller controls the operators; updatedAt is stamped through $set.
func (s *BaseServiceMongo[T]) UpdateOne(ctx context.Context, filter interface{}, update bson.M) (int64, error) {
	setDoc, ok := update["$set"].(bson.M)
	if !ok {
		setDoc = bson.M{}
		update["$set"] = setDoc
	}
	setDoc["updatedAt"] = time.Now().UnixMilli()

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return 0, common.ErrNotFound
	}
	return result.ModifiedCount, nil
}

// DeleteByID removes the document with the given id.
func (s *BaseServiceMongo[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// CountDocuments counts documents matching filter.
func (s *BaseServiceMongo[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists reports whether at least one document matches filter.
func (s *BaseServiceMongo[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	err := s.collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, common.ConvertMongoError(err)
}

// IncrementField atomically adds delta to a numeric field of the document
// with the given id.
func (s *BaseServiceMongo[T]) IncrementField(ctx context.Context, id primitive.ObjectID, field string, delta int64) (T, error) {
	var zero T
	result := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{field: delta},
			"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated T
	if err := result.Decode(&updated); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

// Aggregate runs a pipeline over the collection and decodes into R.
func Aggregate[R any](ctx context.Context, collection *mongo.Collection, pipeline mongo.Pipeline) ([]R, error) {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := make([]R, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// NormalizePage clamps page/limit to sane values. Limit is capped at 100.
func NormalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// TotalPages computes the page count for a total and page size.
func TotalPages(total, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
