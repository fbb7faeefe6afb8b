package engagementmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is one customer testimonial, append-only.
type Review struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	PolicyID     string             `json:"policyId,omitempty" bson:"policyId,omitempty"`
	Rating       int                `json:"rating" bson:"rating"`
	Comment      string             `json:"comment,omitempty" bson:"comment,omitempty"`
	PhotoURL     string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	CreatedAt    int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// NewsletterSubscription is one signup from the landing page, append-only.
type NewsletterSubscription struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	SubscribedAt int64              `json:"subscribedAt" bson:"subscribedAt"`
	CreatedAt    int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
