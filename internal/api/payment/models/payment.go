package paymentmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one recorded gateway transaction. The collection is
// append-only; the unique transactionId index rejects replays.
type Payment struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ApplicationID   string             `json:"applicationId" bson:"applicationId"`
	PolicyID        string             `json:"policyId,omitempty" bson:"policyId,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Amount          float64            `json:"amount" bson:"amount"`
	Currency        string             `json:"currency" bson:"currency"`
	TransactionID   string             `json:"transactionId" bson:"transactionId"`
	PaymentMethod   string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	PaymentDuration string             `json:"paymentDuration,omitempty" bson:"paymentDuration,omitempty"`
	PaymentTime     int64              `json:"paymentTime" bson:"paymentTime"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt       int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
