package policydto

// CreatePolicyInput is the body of POST /policies.
type CreatePolicyInput struct {
	Title         string  `json:"title" validate:"required,min=1,max=200"`
	Category      string  `json:"category" validate:"required,min=1,max=100"`
	Description   string  `json:"description" validate:"omitempty,max=5000"`
	MinAge        int     `json:"minAge" validate:"omitempty,gte=0,lte=120"`
	MaxAge        int     `json:"maxAge" validate:"omitempty,gte=0,lte=120,gtefield=MinAge"`
	Coverage      string  `json:"coverage" validate:"omitempty,max=200"`
	DurationYears int     `json:"durationYears" validate:"omitempty,gte=1,lte=100"`
	Premium       float64 `json:"premium" validate:"required,gt=0"`
	ImageURL      string  `json:"imageUrl" validate:"omitempty,url"`
}

// UpdatePolicyInput is the body of PATCH /policies/:id. Zero values mean
// "leave unchanged"; the service builds a partial $set from the pointers.
type UpdatePolicyInput struct {
	Title         *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Category      *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Description   *string  `json:"description" validate:"omitempty,max=5000"`
	MinAge        *int     `json:"minAge" validate:"omitempty,gte=0,lte=120"`
	MaxAge        *int     `json:"maxAge" validate:"omitempty,gte=0,lte=120"`
	Coverage      *string  `json:"coverage" validate:"omitempty,max=200"`
	DurationYears *int     `json:"durationYears" validate:"omitempty,gte=1,lte=100"`
	Premium       *float64 `json:"premium" validate:"omitempty,gt=0"`
	ImageURL      *string  `json:"imageUrl" validate:"omitempty,url"`
}
