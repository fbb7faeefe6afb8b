package applicationdto

// CreateApplicationInput is the body of POST /policy-applications.
type CreateApplicationInput struct {
	Email            string   `json:"email" validate:"required,email"`
	PolicyID         string   `json:"policyId" validate:"required,len=24,hexadecimal"`
	CustomerName     string   `json:"customerName" validate:"required,min=1,max=120"`
	Address          string   `json:"address" validate:"omitempty,max=300"`
	NomineeName      string   `json:"nomineeName" validate:"omitempty,max=120"`
	NomineeRelation  string   `json:"nomineeRelation" validate:"omitempty,max=60"`
	HealthConditions []string `json:"healthConditions" validate:"omitempty,dive,max=100"`
}

// AssignAgentInput is the body of PATCH /policy-applications/:id/assign-agent.
type AssignAgentInput struct {
	AgentEmail string `json:"agentEmail" validate:"required,email"`
}

// UpdateStatusInput is the body of PATCH /policy-applications/:id/status.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// AgentStatusInput is the body of PATCH /assigned-applications/:id/update-status.
type AgentStatusInput struct {
	AgentStatus string `json:"agentStatus" validate:"required,oneof=approved"`
}

// ClaimInput is the body of PATCH /policy-applications/:id/claim.
type ClaimInput struct {
	ClaimReason   string `json:"claimReason" validate:"required,min=1,max=2000"`
	ClaimDocument string `json:"claimDocument" validate:"omitempty,url"`
}

// ClaimRequestView is one row of the agent's claim queue: the application
// flattened with its policy summary and recorded payment. Joined fields
// stay empty when the lookup found nothing.
type ClaimRequestView struct {
	ID           string `json:"_id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	CustomerName string `json:"customerName" bson:"customerName"`

	PolicyID       string `json:"policyId" bson:"policyId"`
	PolicyTitle    string `json:"policyTitle,omitempty" bson:"policyTitle,omitempty"`
	PolicyCategory string `json:"policyCategory,omitempty" bson:"policyCategory,omitempty"`

	ClaimStatus   string `json:"claimStatus" bson:"claimStatus"`
	ClaimReason   string `json:"claimReason,omitempty" bson:"claimReason,omitempty"`
	ClaimDocument string `json:"claimDocument,omitempty" bson:"claimDocument,omitempty"`

	PaidAmount    float64 `json:"paidAmount,omitempty" bson:"paidAmount,omitempty"`
	TransactionID string  `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
}
