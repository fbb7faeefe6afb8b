package paymenthandler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	paymentdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/dto"
	paymentservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// PaymentHandler exposes the payment endpoints.
type PaymentHandler struct {
	service *paymentservice.PaymentService
}

// NewPaymentHandler wires the handler over the payment service.
func NewPaymentHandler(service *paymentservice.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntent(c fiber.Ctx) error {
	input := new(paymentdto.CreateIntentInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	clientSecret, err := h.service.CreateIntent(c.Context(), input)
	return basehandler.HandleResponse(c, common.StatusOK, fiber.Map{"clientSecret": clientSecret}, err)
}

// Record handles POST /payments. The body email must match the caller.
func (h *PaymentHandler) Record(c fiber.Ctx) error {
	input := new(paymentdto.RecordPaymentInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}
	if !strings.EqualFold(identity.Email, input.Email) {
		return basehandler.ErrorResponse(c, common.ErrForbidden)
	}

	payment, err := h.service.Record(c.Context(), input)
	return basehandler.HandleResponse(c, common.StatusCreated, payment, err)
}

// History handles GET /payments. With ?email= it returns that customer's
// history (ownership enforced by the route guard); without it, the admin
// view of everything.
func (h *PaymentHandler) History(c fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		page, limit := basehandler.ParsePagination(c)
		result, err := h.service.ListAll(c.Context(), page, limit)
		return basehandler.HandleResponse(c, common.StatusOK, result, err)
	}

	payments, err := h.service.ListByEmail(c.Context(), email)
	return basehandler.HandleResponse(c, common.StatusOK, payments, err)
}
