package paymentrouter

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	paymenthandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/payment/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
)

// Register mounts the payment routes.
func Register(r *router.Router, prefix router.RoutePrefix, guard *middleware.AuthGuard, h *paymenthandler.PaymentHandler) {
	app := r.App()

	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/create-payment-intent",
		[]fiber.Handler{guard.RequireAuth()}, h.CreateIntent)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/payments",
		[]fiber.Handler{guard.RequireAuth()}, h.Record)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/payments",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireSelfOrAdmin(middleware.QueryEmail("email"))}, h.History)
}
