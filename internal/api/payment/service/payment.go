package paymentservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/client"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	applicationmodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/models"
	applicationservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/service"
	basemodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/models"
	baseservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/service"
	paymentdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/dto"
	paymentmodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/logger"
)

const defaultCurrency = "usd"

// PaymentService creates gateway payment intents and records completed
// transactions against applications.
type PaymentService struct {
	baseservice.BaseServiceMongo[paymentmodels.Payment]
	applications *applicationservice.ApplicationService
	stripe       *client.API
}

// NewPaymentService wires the service over the payments collection and the
// gateway client.
func NewPaymentService(collection *mongo.Collection, applications *applicationservice.ApplicationService, stripeKey string) *PaymentService {
	sc := &client.API{}
	sc.Init(stripeKey, nil)
	return &PaymentService{
		BaseServiceMongo: baseservice.NewBaseServiceMongo[paymentmodels.Payment](collection),
		applications:     applications,
		stripe:           sc,
	}
}

// CreateIntent opens a payment intent at the gateway and returns its client
// secret. Each call carries a fresh idempotency key so a gateway-side retry
// cannot double-charge.
func (s *PaymentService) CreateIntent(ctx context.Context, input *paymentdto.CreateIntentInput) (string, error) {
	currency := strings.ToLower(input.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(input.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	if input.PaymentDuration != "" {
		params.AddMetadata("paymentDuration", input.PaymentDuration)
	}

	intent, err := s.stripe.PaymentIntents.New(params)
	if err != nil {
		logger.GetAppLogger().WithError(err).Error("Payment gateway rejected intent creation")
		return "", common.NewError(common.ErrCodeBusinessOperation,
			"failed to create payment intent", common.StatusInternalServerError, nil)
	}
	return intent.ClientSecret, nil
}

// Record persists a completed transaction and flips the owning application
// from approved to paid. The unique transactionId index makes the call
// idempotent: a replay stops at the insert with a 409 and never touches
// the application again.
func (s *PaymentService) Record(ctx context.Context, input *paymentdto.RecordPaymentInput) (paymentmodels.Payment, error) {
	applicationID, err := primitive.ObjectIDFromHex(input.ApplicationID)
	if err != nil {
		return paymentmodels.Payment{}, common.ErrInvalidFormat
	}

	application, err := s.applications.FindOneByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return paymentmodels.Payment{}, common.NewError(common.ErrCodeBusinessOperation,
				"unknown application", common.StatusBadRequest,
				map[string]string{"applicationId": input.ApplicationID})
		}
		return paymentmodels.Payment{}, err
	}

	if !strings.EqualFold(application.Email, input.Email) {
		return paymentmodels.Payment{}, common.ErrForbidden
	}
	if !application.Status.CanTransitionTo(applicationmodels.StatusPaid) {
		return paymentmodels.Payment{}, common.ErrInvalidState
	}

	currency := strings.ToLower(input.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	payment := paymentmodels.Payment{
		ApplicationID:   input.ApplicationID,
		PolicyID:        application.PolicyID,
		Email:           strings.ToLower(input.Email),
		Amount:          input.Amount,
		Currency:        currency,
		TransactionID:   input.TransactionID,
		PaymentMethod:   input.PaymentMethod,
		PaymentDuration: input.PaymentDuration,
		PaymentTime:     time.Now().UnixMilli(),
		Status:          string(applicationmodels.StatusPaid),
	}

	stored, err := s.InsertOne(ctx, payment)
	if err != nil {
		return paymentmodels.Payment{}, err
	}

	if _, err := s.applications.MarkPaid(ctx, applicationID); err != nil {
		logger.GetAppLogger().WithError(err).
			WithField("applicationId", input.ApplicationID).
			Error("Payment recorded but application flip failed")
		return paymentmodels.Payment{}, err
	}
	return stored, nil
}

// ListByEmail returns one customer's payment history, newest first.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]paymentmodels.Payment, error) {
	return s.Find(ctx, bson.M{"email": strings.ToLower(email)}, nil)
}

// ListAll returns one admin page of all payments.
func (s *PaymentService) ListAll(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[paymentmodels.Payment], error) {
	return s.FindWithPagination(ctx, nil, page, limit, nil)
}
