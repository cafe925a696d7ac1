// Package authctx carries the authenticated principal through request
// contexts and derives the data scope handed to repositories.
package authctx

import (
	"context"
	"net/http"

	"github.com/olinsesp/olinsesp-backend/pkg/jwt"
	"github.com/olinsesp/olinsesp-backend/pkg/scope"
)

type contextKey struct{}

// Principal identifies the authenticated caller.
type Principal struct {
	UserID  string
	Role    jwt.Role
	Lotacao string
}

// WithPrincipal stores the principal on the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// PrincipalFrom retrieves the principal, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// ScopeFrom derives the data scope of the caller: admins see everything,
// focal points see only their organization. Requests without a principal
// never get past the auth middleware; the admin fallback here only matters
// for internal callers.
func ScopeFrom(ctx context.Context) scope.Scope {
	p, ok := PrincipalFrom(ctx)
	if !ok || p.Role == jwt.RoleAdmin {
		return scope.Admin()
	}
	return scope.ForOrganization(p.Lotacao)
}

// RequireRole returns middleware rejecting callers without the given role.
func RequireRole(role jwt.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok || p.Role != role {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
