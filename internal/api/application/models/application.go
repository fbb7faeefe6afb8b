package applicationmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus is the admin-driven lifecycle of an application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
	StatusPaid     ApplicationStatus = "paid"
)

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the move s → next is allowed.
// pending → approved | rejected, approved → paid; everything else is final.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusPaid
	}
	return false
}

// AgentStatus tracks the assigned agent's review of an application.
type AgentStatus string

const (
	AgentStatusNone     AgentStatus = ""
	AgentStatusPending  AgentStatus = "pending"
	AgentStatusApproved AgentStatus = "approved"
)

// CanTransitionTo allows only pending → approved.
func (s AgentStatus) CanTransitionTo(next AgentStatus) bool {
	return s == AgentStatusPending && next == AgentStatusApproved
}

// ClaimStatus tracks the claim filed against a paid application.
type ClaimStatus string

const (
	ClaimStatusNone     ClaimStatus = ""
	ClaimStatusClaimed  ClaimStatus = "claimed"
	ClaimStatusApproved ClaimStatus = "approved"
)

// CanTransitionTo allows "" → claimed and claimed → approved.
func (s ClaimStatus) CanTransitionTo(next ClaimStatus) bool {
	switch s {
	case ClaimStatusNone:
		return next == ClaimStatusClaimed
	case ClaimStatusClaimed:
		return next == ClaimStatusApproved
	}
	return false
}

// Application is one customer's application for one policy. The store
// enforces at most one application per (email, policyId).
type Application struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	PolicyID     string             `json:"policyId" bson:"policyId"`
	CustomerName string             `json:"customerName" bson:"customerName"`

	Address          string   `json:"address,omitempty" bson:"address,omitempty"`
	NomineeName      string   `json:"nomineeName,omitempty" bson:"nomineeName,omitempty"`
	NomineeRelation  string   `json:"nomineeRelation,omitempty" bson:"nomineeRelation,omitempty"`
	HealthConditions []string `json:"healthConditions,omitempty" bson:"healthConditions,omitempty"`

	Status      ApplicationStatus `json:"status" bson:"status"`
	AgentEmail  string            `json:"agentEmail,omitempty" bson:"agentEmail,omitempty"`
	AgentStatus AgentStatus       `json:"agentStatus,omitempty" bson:"agentStatus,omitempty"`

	ClaimStatus   ClaimStatus `json:"claimStatus,omitempty" bson:"claimStatus,omitempty"`
	ClaimReason   string      `json:"claimReason,omitempty" bson:"claimReason,omitempty"`
	ClaimDocument string      `json:"claimDocument,omitempty" bson:"claimDocument,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
