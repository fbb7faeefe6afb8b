package bloghandler

import (
	"github.com/gofiber/fiber/v3"

	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	blogdto "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/dto"
	blogservice "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/service"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// BlogHandler exposes the article endpoints.
type BlogHandler struct {
	service *blogservice.BlogService
	roles   middleware.RoleResolver
}

// NewBlogHandler wires the handler over the blog service and role source.
func NewBlogHandler(service *blogservice.BlogService, roles middleware.RoleResolver) *BlogHandler {
	return &BlogHandler{service: service, roles: roles}
}

func (h *BlogHandler) callerIsAdmin(c fiber.Ctx, email string) bool {
	role, err := h.roles.RoleByEmail(c.Context(), email)
	return err == nil && role == string(customermodels.RoleAdmin)
}

// Create handles POST /blogs.
func (h *BlogHandler) Create(c fiber.Ctx) error {
	input := new(blogdto.CreateBlogInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	blog, err := h.service.Create(c.Context(), identity.Email, input)
	return basehandler.HandleResponse(c, common.StatusCreated, blog, err)
}

// ListPublished handles GET /blogs.
func (h *BlogHandler) ListPublished(c fiber.Ctx) error {
	blogs, err := h.service.ListPublished(c.Context())
	return basehandler.HandleResponse(c, common.StatusOK, blogs, err)
}

// ListManaged handles GET /blogs/manage.
func (h *BlogHandler) ListManaged(c fiber.Ctx) error {
	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	blogs, err := h.service.ListManaged(c.Context(), identity.Email, h.callerIsAdmin(c, identity.Email))
	return basehandler.HandleResponse(c, common.StatusOK, blogs, err)
}

// ReadDetail handles GET /blogs/:id and counts the visit.
func (h *BlogHandler) ReadDetail(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	blog, err := h.service.ReadDetail(c.Context(), id)
	return basehandler.HandleResponse(c, common.StatusOK, blog, err)
}

// Update handles PUT /blogs/:id.
func (h *BlogHandler) Update(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	input := new(blogdto.UpdateBlogInput)
	if err := basehandler.ParseRequestBody(c, input); err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	blog, err := h.service.UpdateOwned(c.Context(), id, identity.Email, h.callerIsAdmin(c, identity.Email), input)
	return basehandler.HandleResponse(c, common.StatusOK, blog, err)
}

// Delete handles DELETE /blogs/:id.
func (h *BlogHandler) Delete(c fiber.Ctx) error {
	id, err := basehandler.ParseObjectID(c, "id")
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	identity, err := middleware.IdentityFromCtx(c)
	if err != nil {
		return basehandler.ErrorResponse(c, err)
	}

	err = h.service.DeleteOwned(c.Context(), id, identity.Email, h.callerIsAdmin(c, identity.Email))
	return basehandler.HandleResponse(c, common.StatusOK, fiber.Map{"deleted": true}, err)
}
