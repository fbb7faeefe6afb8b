// Package router holds the route registration helpers shared by the domain
// routers.
package router

import (
	"github.com/gofiber/fiber/v3"

	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
)

// RoutePrefix carries the base API prefixes.
type RoutePrefix struct {
	Base string
	V1   string
}

// NewRoutePrefix returns the default prefixes (/api, /api/v1).
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router registers domain routes onto a Fiber app.
type Router struct {
	app *fiber.App
}

// NewRouter creates a Router over the app.
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// App exposes the underlying Fiber app for domain routers.
func (r *Router) App() *fiber.App {
	return r.app
}

// RegisterRouteWithMiddleware registers one route with its middleware
// chain. Fiber v3 executes the registered handlers in argument order, so
// the middlewares must come before the final handler or the handler would
// run unguarded; all registration funnels through this helper.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	handler = basehandler.SafeHandler(handler)

	chain := make([]any, 0, len(middlewares)+1)
	for _, mw := range middlewares {
		chain = append(chain, mw)
	}
	chain = append(chain, handler)
	first, rest := chain[0], chain[1:]

	switch method {
	case fiber.MethodGet:
		routeGroup.Get(path, first, rest...)
	case fiber.MethodPost:
		routeGroup.Post(path, first, rest...)
	case fiber.MethodPut:
		routeGroup.Put(path, first, rest...)
	case fiber.MethodPatch:
		routeGroup.Patch(path, first, rest...)
	case fiber.MethodDelete:
		routeGroup.Delete(path, first, rest...)
	}
}
