package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"

	goRBAC "github.com/MrEthical07/goRBAC"
	"github.com/MrEthical07/goRBAC/role"
)

type principalContextKey struct{}

// PrincipalFromContext returns the principal resolved by a guard earlier in
// the handler chain.
func PrincipalFromContext(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(string)
	return principal, ok
}

// RequireAny guards a handler with [goRBAC.Engine.RequireAny].
func RequireAny(engine *goRBAC.Engine, resolve PrincipalResolver, required role.Role) func(http.Handler) http.Handler {
	return guard(required, resolve, engine.RequireAny)
}

// RequireAll guards a handler with [goRBAC.Engine.RequireAll].
func RequireAll(engine *goRBAC.Engine, resolve PrincipalResolver, required role.Role) func(http.Handler) http.Handler {
	return guard(required, resolve, engine.RequireAll)
}

func guard(
	required role.Role,
	resolve PrincipalResolver,
	enforce func(context.Context, string, role.Role) error,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if resolve == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			principal, ok := resolve(r)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := goRBAC.WithClientIP(r.Context(), remoteIP(r))

			if err := enforce(ctx, principal, required); err != nil {
				if errors.Is(err, goRBAC.ErrAuthorizationDenied) {
					http.Error(w, "forbidden", http.StatusForbidden)
					return
				}
				http.Error(w, "authorization unavailable", http.StatusServiceUnavailable)
				return
			}

			ctx = context.WithValue(ctx, principalContextKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
