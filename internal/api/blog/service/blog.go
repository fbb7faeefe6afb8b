package blogservice

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	baseservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/service"
	blogdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/dto"
	blogmodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// BlogService manages articles.
type BlogService struct {
	baseservice.BaseServiceMongo[blogmodels.Blog]
}

// NewBlogService wires the service over the blogs collection.
func NewBlogService(collection *mongo.Collection) *BlogService {
	return &BlogService{
		BaseServiceMongo: baseservice.NewBaseServiceMongo[blogmodels.Blog](collection),
	}
}

// Create publishes an article with a stamped publish date and zero visits.
func (s *BlogService) Create(ctx context.Context, authorEmail string, input *blogdto.CreateBlogInput) (blogmodels.Blog, error) {
	model := blogmodels.Blog{
		Title:       input.Title,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		AuthorEmail: strings.ToLower(authorEmail),
		AuthorName:  input.AuthorName,
		PublishDate: time.Now().UnixMilli(),
		TotalVisit:  0,
	}
	return s.InsertOne(ctx, model)
}

// ListPublished returns all articles, latest first.
func (s *BlogService) ListPublished(ctx context.Context) ([]blogmodels.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}})
	return s.Find(ctx, bson.D{}, opts)
}

// ListManaged returns the articles visible in the manage view: everything
// for admins, the caller's own otherwise.
func (s *BlogService) ListManaged(ctx context.Context, authorEmail string, isAdmin bool) ([]blogmodels.Blog, error) {
	filter := bson.M{}
	if !isAdmin {
		filter["authorEmail"] = strings.ToLower(authorEmail)
	}
	opts := options.Find().SetSort(bson.D{{Key: "publishDate", Value: -1}})
	return s.Find(ctx, filter, opts)
}

// ReadDetail loads an article and counts the visit.
func (s *BlogService) ReadDetail(ctx context.Context, id primitive.ObjectID) (blogmodels.Blog, error) {
	return s.IncrementField(ctx, id, "totalVisit", 1)
}

// UpdateOwned replaces the editable fields of an article. Only the author
// may edit; admins may edit anything.
func (s *BlogService) UpdateOwned(ctx context.Context, id primitive.ObjectID, callerEmail string, isAdmin bool, input *blogdto.UpdateBlogInput) (blogmodels.Blog, error) {
	blog, err := s.FindOneByID(ctx, id)
	if err != nil {
		return blogmodels.Blog{}, err
	}
	if !isAdmin && !strings.EqualFold(blog.AuthorEmail, callerEmail) {
		return blogmodels.Blog{}, common.ErrForbidden
	}

	return s.UpdateByID(ctx, id, bson.M{
		"title":    input.Title,
		"content":  input.Content,
		"imageUrl": input.ImageURL,
	})
}

// DeleteOwned removes an article under the same ownership rule as
// UpdateOwned.
func (s *BlogService) DeleteOwned(ctx context.Context, id primitive.ObjectID, callerEmail string, isAdmin bool) error {
	blog, err := s.FindOneByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && !strings.EqualFold(blog.AuthorEmail, callerEmail) {
		return common.ErrForbidden
	}
	return s.DeleteByID(ctx, id)
}
