package engagementservice

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	baseservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/service"
	engagementdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/dto"
	engagementmodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/models"
)

// EngagementService covers reviews and newsletter signups.
type EngagementService struct {
	reviews     baseservice.BaseServiceMongo[engagementmodels.Review]
	subscribers baseservice.BaseServiceMongo[engagementmodels.NewsletterSubscription]
}

// NewEngagementService wires the service over both collections.
func NewEngagementService(reviews, subscribers *mongo.Collection) *EngagementService {
	return &EngagementService{
		reviews:     baseservice.NewBaseServiceMongo[engagementmodels.Review](reviews),
		subscribers: baseservice.NewBaseServiceMongo[engagementmodels.NewsletterSubscription](subscribers),
	}
}

// AddReview appends a testimonial.
func (s *EngagementService) AddReview(ctx context.Context, input *engagementdto.CreateReviewInput) (engagementmodels.Review, error) {
	model := engagementmodels.Review{
		Email:        strings.ToLower(input.Email),
		CustomerName: input.CustomerName,
		PolicyID:     input.PolicyID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		PhotoURL:     input.PhotoURL,
	}
	return s.reviews.InsertOne(ctx, model)
}

// LatestReviews returns the newest testimonials, capped at 20.
func (s *EngagementService) LatestReviews(ctx context.Context, limit int64) ([]engagementmodels.Review, error) {
	if limit < 1 || limit > 20 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.reviews.Find(ctx, bson.D{}, opts)
}

// Subscribe appends a newsletter signup with a stamped subscription time.
func (s *EngagementService) Subscribe(ctx context.Context, input *engagementdto.SubscribeInput) (engagementmodels.NewsletterSubscription, error) {
	model := engagementmodels.NewsletterSubscription{
		Name:         input.Name,
		Email:        strings.ToLower(input.Email),
		SubscribedAt: time.Now().UnixMilli(),
	}
	return s.subscribers.InsertOne(ctx, model)
}
