package policyservice

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/models"
	baseservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/service"
	policydto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/dto"
	policymodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/models"
)

// PolicyService manages the product catalog.
type PolicyService struct {
	baseservice.BaseServiceMongo[policymodels.Policy]
}

// NewPolicyService wires the service over the policies collection.
func NewPolicyService(collection *mongo.Collection) *PolicyService {
	return &PolicyService{
		BaseServiceMongo: baseservice.NewBaseServiceMongo[policymodels.Policy](collection),
	}
}

// Create inserts a catalog entry with a zero purchase counter.
func (s *PolicyService) Create(ctx context.Context, input *policydto.CreatePolicyInput) (policymodels.Policy, error) {
	model := policymodels.Policy{
		Title:          input.Title,
		Category:       input.Category,
		Description:    input.Description,
		MinAge:         input.MinAge,
		MaxAge:         input.MaxAge,
		Coverage:       input.Coverage,
		DurationYears:  input.DurationYears,
		Premium:        input.Premium,
		ImageURL:       input.ImageURL,
		PurchasedCount: 0,
	}
	return s.InsertOne(ctx, model)
}

// CatalogFilter builds the browse filter: exact category match plus a
// case-insensitive substring search on the title. User input is quoted so
// regex metacharacters match literally.
func CatalogFilter(category, search string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if search != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{
			Pattern: regexp.QuoteMeta(search),
			Options: "i",
		}}
	}
	return filter
}

// Catalog returns one page of the public catalog.
func (s *PolicyService) Catalog(ctx context.Context, category, search string, page, limit int64) (*basemodels.PaginateResult[policymodels.Policy], error) {
	return s.FindWithPagination(ctx, CatalogFilter(category, search), page, limit, nil)
}

// TopPurchased returns the most-purchased policies, capped at 12.
func (s *PolicyService) TopPurchased(ctx context.Context, limit int64) ([]policymodels.Policy, error) {
	if limit < 1 || limit > 12 {
		limit = 6
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "purchasedCount", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.D{}, opts)
}

// ApplyUpdate builds the partial $set for PATCH /policies/:id and applies
// it. Only fields present in the body are touched.
func (s *PolicyService) ApplyUpdate(ctx context.Context, id primitive.ObjectID, input *policydto.UpdatePolicyInput) (policymodels.Policy, error) {
	set := bson.M{}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.MinAge != nil {
		set["minAge"] = *input.MinAge
	}
	if input.MaxAge != nil {
		set["maxAge"] = *input.MaxAge
	}
	if input.Coverage != nil {
		set["coverage"] = *input.Coverage
	}
	if input.DurationYears != nil {
		set["durationYears"] = *input.DurationYears
	}
	if input.Premium != nil {
		set["premium"] = *input.Premium
	}
	if input.ImageURL != nil {
		set["imageUrl"] = *input.ImageURL
	}
	return s.UpdateByID(ctx, id, set)
}

// IncrementPurchased bumps the purchase counter by one. Called exactly
// once per agent approval.
func (s *PolicyService) IncrementPurchased(ctx context.Context, id primitive.ObjectID) (policymodels.Policy, error) {
	return s.IncrementField(ctx, id, "purchasedCount", 1)
}
