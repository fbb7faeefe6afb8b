package policyhandler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	policydto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/dto"
	policymodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/models"
	policyservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// PolicyHandler exposes the catalog endpoints.
type PolicyHandler struct {
	basehandler.BaseHandler[policymodels.Policy]
	service *policyservice.PolicyService
}

// NewPolicyHandler wires the handler over the policy service.
func NewPolicyHandler(service *policyservice.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		BaseHandler: basehandler.NewBaseHandler[policymodels.Policy](service),
		service:     service,
	}
}

// Create handles POST /policies.
func (h *PolicyHandler) Create(c fiber.Ctx) error {
	input := new(policydto.CreatePolicyInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	policy, err := h.service.Create(c.Context(), input)
	return basehandler.HandleResponse(c, common.StatusCreated, policy, err)
}

// Catalog handles GET /all-policies, the public paginated catalog.
func (h *PolicyHandler) Catalog(c fiber.Ctx) error {
	page, limit := basehandler.ParsePagination(c)
	result, err := h.service.Catalog(c.Context(), c.Query("category"), c.Query("search"), page, limit)
	return basehandler.HandleResponse(c, common.StatusOK, result, err)
}

// TopPurchased handles GET /policies/top-purchased.
func (h *PolicyHandler) TopPurchased(c fiber.Ctx) error {
	limit := int64(fiber.Query[int](c, "limit", 6))
	policies, err := h.service.TopPurchased(c.Context(), limit)
	return basehandler.HandleResponse(c, common.StatusOK, policies, err)
}

// Update handles PATCH /policies/:id.
func (h *PolicyHandler) Update(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	input := new(policydto.UpdatePolicyInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	policy, err := h.service.ApplyUpdate(c.Context(), id, input)
	return basehandler.HandleResponse(c, common.StatusOK, policy, err)
}
