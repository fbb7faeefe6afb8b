// Package system exposes operational endpoints.
package system

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"

	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// HealthHandler reports liveness and store reachability.
type HealthHandler struct {
	client *mongo.Client
}

// NewHealthHandler wires the handler over the store client.
func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	status := common.StatusOK
	if err := h.client.Ping(ctx, nil); err != nil {
		dbStatus = "down"
		status = common.StatusServiceUnavailable
	}

	return basehandler.JSONResponse(c, status, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"time":     time.Now().UnixMilli(),
	})
}

// Register mounts the system routes.
func Register(r *router.Router, h *HealthHandler) {
	router.RegisterRouteWithMiddleware(r.App(), "", fiber.MethodGet, "/health", nil, h.Health)
}
