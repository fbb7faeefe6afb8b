package applicationhandler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	applicationdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/dto"
	applicationmodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/models"
	applicationservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/service"
	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// ApplicationHandler exposes the application lifecycle endpoints.
type ApplicationHandler struct {
	service *applicationservice.ApplicationService
}

// NewApplicationHandler wires the handler over the application service.
func NewApplicationHandler(service *applicationservice.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Create handles POST /policy-applications.
func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	input := new(applicationdto.CreateApplicationInput)
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

	application, err := h.service.Create(c.Context(), input)
	return basehandler.HandleResponse(c, common.StatusCreated, application, err)
}

// List handles GET /policy-applications for the admin dashboard.
func (h *ApplicationHandler) List(c fiber.Ctx) error {
	page, limit := basehandler.ParsePagination(c)
	result, err := h.service.List(c.Context(), c.Query("status"), page, limit)
	return basehandler.HandleResponse(c, common.StatusOK, result, err)
}

// MyApplications handles GET /my-applications.
func (h *ApplicationHandler) MyApplications(c fiber.Ctx) error {
	applications, err := h.service.ListByEmail(c.Context(), c.Query("email"))
	return basehandler.HandleResponse(c, common.StatusOK, applications, err)
}

// AssignedApplications handles GET /assigned-applications for agents.
func (h *ApplicationHandler) AssignedApplications(c fiber.Ctx) error {
	applications, err := h.service.ListAssigned(c.Context(), c.Query("email"))
	return basehandler.HandleResponse(c, common.StatusOK, applications, err)
}

// AssignAgent handles PATCH /policy-applications/:id/assign-agent.
func (h *ApplicationHandler) AssignAgent(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	input := new(applicationdto.AssignAgentInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	application, err := h.service.AssignAgent(c.Context(), id, input.AgentEmail)
	return basehandler.HandleResponse(c, common.StatusOK, application, err)
}

// UpdateStatus handles PATCH /policy-applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	input := new(applicationdto.UpdateStatusInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	application, err := h.service.UpdateStatus(c.Context(), id, applicationmodels.ApplicationStatus(input.Status))
	return basehandler.HandleResponse(c, common.StatusOK, application, err)
}

// AgentUpdateStatus handles PATCH /assigned-applications/:id/update-status.
// The caller must be the assigned agent.
func (h *ApplicationHandler) AgentUpdateStatus(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	input := new(applicationdto.AgentStatusInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	application, err := h.service.ApproveByAgent(c.Context(), id, identity.Email)
	return basehandler.HandleResponse(c, common.StatusOK, application, err)
}

// SubmitClaim handles PATCH /policy-applications/:id/claim.
func (h *ApplicationHandler) SubmitClaim(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	input := new(applicationdto.ClaimInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	application, err := h.service.SubmitClaim(c.Context(), id, identity.Email, input)
	return basehandler.HandleResponse(c, common.StatusOK, application, err)
}

// ApproveClaim handles PATCH /claim-requests/:id/approve.
func (h *ApplicationHandler) ApproveClaim(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	application, err := h.service.ApproveClaim(c.Context(), id, identity.Email)
	return basehandler.HandleResponse(c, common.StatusOK, application, err)
}

// ClaimRequests handles GET /claim-requests: the caller's claim queue.
func (h *ApplicationHandler) ClaimRequests(c fiber.Ctx) error {
	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	rows, err := h.service.ClaimRequests(c.Context(), identity.Email)
	return basehandler.HandleResponse(c, common.StatusOK, rows, err)
}
