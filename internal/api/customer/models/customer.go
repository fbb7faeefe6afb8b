package customermodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// Assignable reports whether r may be set through the role-management
// endpoint. Admin is granted out of band, never through the API.
func (r Role) Assignable() bool {
	return r == RoleCustomer || r == RoleAgent
}

// Customer is an account document. Accounts are created on first login and
// identified by email.
type Customer struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	CustomerName string             `json:"customerName" bson:"customerName"`
	PhotoURL     string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role         Role               `json:"role" bson:"role"`
	LastLogin    int64              `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt    int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt    int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
