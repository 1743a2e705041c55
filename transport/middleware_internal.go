package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key
// locks the endpoint.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := bearerToken(r)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
