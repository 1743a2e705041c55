package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/application/auth"
	"github.com/muhammadheryan/storefront/constant"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// AuthMiddleware admits requests carrying a valid access token of a
// verified account and, when roles are given, one of those roles. Checks run
// in order: missing token, invalid token, unverified account, role.
func AuthMiddleware(authApp auth.AuthApp, roles ...constant.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			claims, err := authApp.Authenticate(r.Context(), token)
			if err != nil {
				writeError(w, err)
				return
			}

			if len(roles) > 0 && !hasRole(claims.Role, roles) {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			ctx := utilsContext.WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func hasRole(role constant.Role, allowed []constant.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
