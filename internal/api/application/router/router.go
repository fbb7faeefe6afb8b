package applicationrouter

import (
	"github.com/gofiber/fiber/v3"

	applicationhandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/application/handler"
	customermodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/customer/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/middleware"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
)

// Register mounts the application lifecycle routes.
func Register(r *router.Router, prefix router.RoutePrefix, guard *middleware.AuthGuard, h *applicationhandler.ApplicationHandler) {
	app := r.App()
	admin := string(customermodels.RoleAdmin)
	agent := string(customermodels.RoleAgent)

	adminOnly := []fiber.Handler{guard.RequireAuth(), guard.RequireRole(admin)}
	agentOnly := []fiber.Handler{guard.RequireAuth(), guard.RequireRole(agent)}

	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPost, "/policy-applications",
		[]fiber.Handler{guard.RequireAuth()}, h.Create)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/policy-applications",
		adminOnly, h.List)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/my-applications",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireSelfOrAdmin(middleware.QueryEmail("email"))}, h.MyApplications)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/assigned-applications",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireRole(agent), guard.RequireSelfOrAdmin(middleware.QueryEmail("email"))}, h.AssignedApplications)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPatch, "/policy-applications/:id/assign-agent",
		adminOnly, h.AssignAgent)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPatch, "/policy-applications/:id/status",
		adminOnly, h.UpdateStatus)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPatch, "/assigned-applications/:id/update-status",
		agentOnly, h.AgentUpdateStatus)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPatch, "/policy-applications/:id/claim",
		[]fiber.Handler{guard.RequireAuth()}, h.SubmitClaim)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodPatch, "/claim-requests/:id/approve",
		agentOnly, h.ApproveClaim)
	router.RegisterRouteWithMiddleware(app, prefix.V1, fiber.MethodGet, "/claim-requests",
		agentOnly, h.ClaimRequests)
}
