package blogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is one published article.
type Blog struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Content     string             `json:"content" bson:"content"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	AuthorEmail string             `json:"authorEmail" bson:"authorEmail"`
	AuthorName  string             `json:"authorName" bson:"authorName"`
	PublishDate int64              `json:"publishDate" bson:"publishDate"`
	TotalVisit  int64              `json:"totalVisit" bson:"totalVisit"`
	CreatedAt   int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
