package engagementrouter

import (
	"github.com/gofiber/fiber/v3"

	engagementhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/engagement/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
)

// Register mounts the engagement routes.
func Register(r *router.Router, prefix router.RoutePrefix, guard *middleware.AuthGuard, h *engagementhandler.EngagementHandler) {
	app := r.App()

	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/reviews",
		[]fiber.Handler{guard.RequireAuth()}, h.AddReview)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/reviews",
		nil, h.LatestReviews)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/newsletter-subscriptions",
		nil, h.Subscribe)
}
