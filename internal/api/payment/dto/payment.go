package paymentdto

// CreateIntentInput is the body of POST /create-payment-intent. Amount is
// in the currency's smallest unit, the way the gateway expects it.
type CreateIntentInput struct {
	Amount          int64  `json:"amount" validate:"required,gt=0"`
	Currency        string `json:"currency" validate:"omitempty,len=3,alpha"`
	PaymentDuration string `json:"paymentDuration" validate:"omitempty,max=60"`
}

// RecordPaymentInput is the body of POST /payments.
type RecordPaymentInput struct {
	ApplicationID   string  `json:"applicationId" validate:"required,len=24,hexadecimal"`
	Email           string  `json:"email" validate:"required,email"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Currency        string  `json:"currency" validate:"omitempty,len=3,alpha"`
	TransactionID   string  `json:"transactionId" validate:"required,min=1,max=200"`
	PaymentMethod   string  `json:"paymentMethod" validate:"omitempty,max=60"`
	PaymentDuration string  `json:"paymentDuration" validate:"omitempty,max=60"`
}
