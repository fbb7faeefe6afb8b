package blogrouter

import (
	"github.com/gofiber/fiber/v3"

	bloghandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/blog/handler"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
)

// Register mounts the article routes.
func Register(r *router.Router, prefix router.RoutePrefix, guard *middleware.AuthGuard, h *bloghandler.BlogHandler) {
	app := r.App()
	staff := []fiber.Handler{guard.RequireAuth(), guard.RequireRole(
		string(customermodels.RoleAgent), string(customermodels.RoleAdmin))}

	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/blogs",
		staff, h.Create)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/blogs",
		nil, h.ListPublished)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/blogs/manage",
		[]fiber.Handler{guard.RequireAuth()}, h.ListManaged)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/blogs/:id",
		nil, h.ReadDetail)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPut, "/blogs/:id",
		[]fiber.Handler{guard.RequireAuth()}, h.Update)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodDelete, "/blogs/:id",
		[]fiber.Handler{guard.RequireAuth()}, h.Delete)
}
