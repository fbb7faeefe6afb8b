package policymodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Policy is one sellable insurance product in the catalog.
type Policy struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title          string             `json:"title" bson:"title"`
	Category       string             `json:"category" bson:"category"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	MinAge         int                `json:"minAge,omitempty" bson:"minAge,omitempty"`
	MaxAge         int                `json:"maxAge,omitempty" bson:"maxAge,omitempty"`
	Coverage       string             `json:"coverage,omitempty" bson:"coverage,omitempty"`
	DurationYears  int                `json:"durationYears,omitempty" bson:"durationYears,omitempty"`
	Premium        float64            `json:"premium" bson:"premium"`
	ImageURL       string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	PurchasedCount int64              `json:"purchasedCount" bson:"purchasedCount"`
	CreatedAt      int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
