package policyrouter

import (
	"github.com/gofiber/fiber/v3"

	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	policyhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/policy/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
)

// Register mounts the catalog routes.
func Register(r *router.Router, prefix router.RoutePrefix, guard *middleware.AuthGuard, h *policyhandler.PolicyHandler) {
	app := r.App()
	adminOnly := []fiber.Handler{guard.RequireAuth(), guard.RequireRole(string(customermodels.RoleAdmin))}

	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/policies",
		adminOnly, h.Create)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/policies",
		adminOnly, h.FindWithPagination)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/all-policies",
		nil, h.Catalog)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/policies/top-purchased",
		nil, h.TopPurchased)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/policies/:id",
		nil, h.FindOneByID)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPatch, "/policies/:id",
		adminOnly, h.Update)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodDelete, "/policies/:id",
		adminOnly, h.DeleteByID)
}
