package engagementdto

// CreateReviewInput is the body of POST /reviews.
type CreateReviewInput struct {
	Email        string `json:"email" validate:"required,email"`
	CustomerName string `json:"customerName" validate:"required,min=1,max=120"`
	PolicyID     string `json:"policyId" validate:"omitempty,len=24,hexadecimal"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"omitempty,max=2000"`
	PhotoURL     string `json:"photoURL" validate:"omitempty,url"`
}

// SubscribeInput is the body of POST /newsletter-subscriptions.
type SubscribeInput struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Email string `json:"email" validate:"required,email"`
}
