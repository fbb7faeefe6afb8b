package customerrouter

import (
	"github.com/gofiber/fiber/v3"

	customerhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/handler"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
)

// Register mounts the account routes.
func Register(r *router.Router, prefix router.RoutePrefix, guard *middleware.AuthGuard, h *customerhandler.CustomerHandler) {
	app := r.App()
	admin := string(customermodels.RoleAdmin)

	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/customers",
		nil, h.Create)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/customers",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireRole(admin)}, h.List)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/customers/role/:email",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireSelfOrAdmin(middleware.ParamEmail("email"))}, h.RoleByEmail)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPatch, "/customers/:email/role",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireRole(admin)}, h.UpdateRole)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/agents",
		nil, h.ListAgents)
}
