// Package middleware provides the authentication and authorization guards
// applied per route.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/auth"
	basehandler "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/handler"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// identityKey is the request-local slot holding the verified identity.
const identityKey = "auth.identity"

// RoleResolver resolves the stored role of an account by email.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// AuthGuard bundles token verification with role resolution.
type AuthGuard struct {
	verifier  auth.TokenVerifier
	roles     RoleResolver
	adminRole string
}

// NewAuthGuard wires a guard over a verifier and role source.
func NewAuthGuard(verifier auth.TokenVerifier, roles RoleResolver, adminRole string) *AuthGuard {
	return &AuthGuard{verifier: verifier, roles: roles, adminRole: adminRole}
}

// IdentityFromCtx returns the identity stored by RequireAuth.
func IdentityFromCtx(c fiber.Ctx) (*auth.Identity, error) {
	identity, ok := c.Locals(identityKey).(*auth.Identity)
	if !ok || identity == nil {
		return nil, common.ErrTokenMissing
	}
	return identity, nil
}

// RequireAuth verifies the bearer token. A missing header is a 401, a token
// that fails verification is a 403.
func (g *AuthGuard) RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return basehandler.ErrorResponse(c, common.ErrTokenMissing)
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header || raw == "" {
			return basehandler.ErrorResponse(c, common.ErrTokenMissing)
		}

		identity, err := g.verifier.Verify(raw)
		if err != nil {
			return basehandler.ErrorResponse(c, common.ErrTokenInvalid)
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireRole allows the request through only when the caller's stored role
// is one of the allowed roles. Must run after RequireAuth.
func (g *AuthGuard) RequireRole(allowed ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		identity, err := IdentityFromCtx(c)
		if err != nil {
			return basehandler.ErrorResponse(c, err)
		}

		role, err := g.roles.RoleByEmail(c.Context(), identity.Email)
		if err != nil {
			return basehandler.ErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole, "failed to resolve caller role", common.StatusForbidden, nil))
		}

		for _, want := range allowed {
			if role == want {
				return c.Next()
			}
		}
		return basehandler.ErrorResponse(c, common.NewError(
			common.ErrCodeAuthRole, common.MsgForbidden, common.StatusForbidden, nil))
	}
}

// EmailExtractor pulls the email a request claims to act on.
type EmailExtractor func(c fiber.Ctx) string

// QueryEmail extracts the target email from a query parameter.
func QueryEmail(key string) EmailExtractor {
	return func(c fiber.Ctx) string { return c.Query(key) }
}

// ParamEmail extracts the target email from a path parameter.
func ParamEmail(key string) EmailExtractor {
	return func(c fiber.Ctx) string { return c.Params(key) }
}

// RequireSelfOrAdmin allows the request when the extracted target email
// matches the caller, or when the caller holds the admin role. Every
// owner-scoped route goes through this one predicate.
func (g *AuthGuard) RequireSelfOrAdmin(extract EmailExtractor) fiber.Handler {
	return func(c fiber.Ctx) error {
		identity, err := IdentityFromCtx(c)
		if err != nil {
			return basehandler.ErrorResponse(c, err)
		}

		target := extract(c)
		if target != "" && strings.EqualFold(target, identity.Email) {
			return c.Next()
		}

		role, err := g.roles.RoleByEmail(c.Context(), identity.Email)
		if err == nil && role == g.adminRole {
			return c.Next()
		}
		return basehandler.ErrorResponse(c, common.ErrForbidden)
	}
}
