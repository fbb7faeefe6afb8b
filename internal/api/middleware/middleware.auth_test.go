package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/auth"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/router"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

type fakeVerifier struct {
	identities map[string]*auth.Identity
}

func (f *fakeVerifier) Verify(token string) (*auth.Identity, error) {
	if identity, ok := f.identities[token]; ok {
		return identity, nil
	}
	return nil, common.ErrTokenInvalid
}

type fakeRoles struct {
	roles map[string]string
}

func (f *fakeRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	if role, ok := f.roles[email]; ok {
		return role, nil
	}
	return "customer", nil
}

func newTestGuard() *AuthGuard {
	verifier := &fakeVerifier{identities: map[string]*auth.Identity{
		"alice-token": {Subject: "uid-alice", Email: "alice@example.com"},
		"admin-token": {Subject: "uid-admin", Email: "admin@example.com"},
		"agent-token": {Subject: "uid-agent", Email: "agent@example.com"},
	}}
	roles := &fakeRoles{roles: map[string]string{
		"admin@example.com": "admin",
		"agent@example.com": "agent",
	}}
	return NewAuthGuard(verifier, roles, "admin")
}

func okHandler(c fiber.Ctx) error {
	return c.SendString("ok")
}

func doRequest(t *testing.T, app *fiber.App, token, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireAuth(t *testing.T) {
	guard := newTestGuard()
	app := fiber.New()
	router.RegisterRouteWithMiddleware(app, "/secure", fiber.MethodGet, "/",
		[]fiber.Handler{guard.RequireAuth()}, okHandler)

	t.Run("missing header is 401", func(t *testing.T) {
		resp := doRequest(t, app, "", "/secure")
		assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bad token is 403", func(t *testing.T) {
		resp := doRequest(t, app, "forged", "/secure")
		assert.Equal(t, common.StatusForbidden, resp.StatusCode)
	})

	t.Run("valid token passes", func(t *testing.T) {
		resp := doRequest(t, app, "alice-token", "/secure")
		assert.Equal(t, common.StatusOK, resp.StatusCode)
	})
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	guard := newTestGuard()
	app := fiber.New()
	router.RegisterRouteWithMiddleware(app, "/secure", fiber.MethodGet, "/",
		[]fiber.Handler{guard.RequireAuth()}, okHandler)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "alice-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, common.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	guard := newTestGuard()
	app := fiber.New()
	router.RegisterRouteWithMiddleware(app, "/admin-only", fiber.MethodGet, "/",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireRole("admin")}, okHandler)
	router.RegisterRouteWithMiddleware(app, "/staff", fiber.MethodGet, "/",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireRole("admin", "agent")}, okHandler)

	t.Run("customer rejected from admin route", func(t *testing.T) {
		resp := doRequest(t, app, "alice-token", "/admin-only")
		assert.Equal(t, common.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		resp := doRequest(t, app, "admin-token", "/admin-only")
		assert.Equal(t, common.StatusOK, resp.StatusCode)
	})

	t.Run("agent allowed on multi-role route", func(t *testing.T) {
		resp := doRequest(t, app, "agent-token", "/staff")
		assert.Equal(t, common.StatusOK, resp.StatusCode)
	})
}

func TestRequireSelfOrAdmin(t *testing.T) {
	guard := newTestGuard()
	app := fiber.New()
	router.RegisterRouteWithMiddleware(app, "/mine", fiber.MethodGet, "/",
		[]fiber.Handler{guard.RequireAuth(), guard.RequireSelfOrAdmin(QueryEmail("email"))}, okHandler)

	t.Run("owner allowed", func(t *testing.T) {
		resp := doRequest(t, app, "alice-token", "/mine?email=alice@example.com")
		assert.Equal(t, common.StatusOK, resp.StatusCode)
	})

	t.Run("owner email compared case-insensitively", func(t *testing.T) {
		resp := doRequest(t, app, "alice-token", "/mine?email=Alice@Example.com")
		assert.Equal(t, common.StatusOK, resp.StatusCode)
	})

	t.Run("other customer rejected", func(t *testing.T) {
		resp := doRequest(t, app, "alice-token", "/mine?email=bob@example.com")
		assert.Equal(t, common.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin can read anyone", func(t *testing.T) {
		resp := doRequest(t, app, "admin-token", "/mine?email=bob@example.com")
		assert.Equal(t, common.StatusOK, resp.StatusCode)
	})

	t.Run("agent cannot read others", func(t *testing.T) {
		resp := doRequest(t, app, "agent-token", "/mine?email=bob@example.com")
		assert.Equal(t, common.StatusForbidden, resp.StatusCode)
	})
}
