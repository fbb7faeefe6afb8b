package customerdto

// CreateCustomerInput is the body of POST /customers. Creation is
// idempotent by email.
type CreateCustomerInput struct {
	Email        string `json:"email" validate:"required,email"`
	CustomerName string `json:"customerName" validate:"required,min=1,max=120"`
	PhotoURL     string `json:"photoURL" validate:"omitempty,url"`
	LastLogin    int64  `json:"lastLogin" validate:"omitempty,gte=0"`
}

// UpdateRoleInput is the body of PATCH /customers/:email/role.
type UpdateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=customer agent"`
}
