package engagementhandler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	engagementdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/dto"
	engagementservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// EngagementHandler exposes reviews and newsletter signups.
type EngagementHandler struct {
	service *engagementservice.EngagementService
}

// NewEngagementHandler wires the handler over the engagement service.
func NewEngagementHandler(service *engagementservice.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

// AddReview handles POST /reviews.
func (h *EngagementHandler) AddReview(c fiber.Ctx) error {
	input := new(engagementdto.CreateReviewInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	review, err := h.service.AddReview(c.Context(), input)
	return basehandler.HandleResponse(c, common.StatusCreated, review, err)
}

// LatestReviews handles GET /reviews.
func (h *EngagementHandler) LatestReviews(c fiber.Ctx) error {
	limit := int64(fiber.Query[int](c, "limit", 10))
	reviews, err := h.service.LatestReviews(c.Context(), limit)
	return basehandler.HandleResponse(c, common.StatusOK, reviews, err)
}

// Subscribe handles POST /newsletter-subscriptions.
func (h *EngagementHandler) Subscribe(c fiber.Ctx) error {
	input := new(engagementdto.SubscribeInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	subscription, err := h.service.Subscribe(c.Context(), input)
	return basehandler.HandleResponse(c, common.StatusCreated, subscription, err)
}
