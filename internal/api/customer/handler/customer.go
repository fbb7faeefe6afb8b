package customerhandler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	customerdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/dto"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	customerservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/service"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// CustomerHandler exposes the account endpoints.
type CustomerHandler struct {
	service *customerservice.CustomerService
}

// NewCustomerHandler wires the handler over the customer service.
func NewCustomerHandler(service *customerservice.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Create handles POST /customers. First call for an email inserts the
// account; later calls return the stored document with inserted=false.
func (h *CustomerHandler) Create(c fiber.Ctx) error {
	input := new(customerdto.CreateCustomerInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	account, inserted, err := h.service.CreateIfAbsent(c.Context(), input)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	status := common.StatusOK
	if inserted {
		status = common.StatusCreated
	}
	return basehandler.JSONResponse(c, status, fiber.Map{
		"customer": account,
		"inserted": inserted,
	})
}

// List handles GET /customers for the admin dashboard.
func (h *CustomerHandler) List(c fiber.Ctx) error {
	page, limit := basehandler.ParsePagination(c)
	result, err := h.service.List(c.Context(), c.Query("role"), page, limit)
	return basehandler.HandleResponse(c, common.StatusOK, result, err)
}

// RoleByEmail handles GET /customers/role/:email.
func (h *CustomerHandler) RoleByEmail(c fiber.Ctx) error {
	role, err := h.service.RoleByEmail(c.Context(), c.Params("email"))
	return basehandler.HandleResponse(c, common.StatusOK, fiber.Map{"role": role}, err)
}

// UpdateRole handles PATCH /customers/:email/role.
func (h *CustomerHandler) UpdateRole(c fiber.Ctx) error {
	input := new(customerdto.UpdateRoleInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	account, err := h.service.UpdateRoleByEmail(c.Context(), c.Params("email"), customermodels.Role(input.Role))
	return basehandler.HandleResponse(c, common.StatusOK, account, err)
}

// ListAgents handles GET /agents, the public agent directory.
func (h *CustomerHandler) ListAgents(c fiber.Ctx) error {
	agents, err := h.service.ListAgents(c.Context())
	return basehandler.HandleResponse(c, common.StatusOK, agents, err)
}
