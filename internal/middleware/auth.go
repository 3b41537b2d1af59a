package middleware

import (
	"context"
	"net/http"
	"strings"

	"leo-furniture-api/internal/service"
	"leo-furniture-api/pkg/apierror"
	"leo-furniture-api/pkg/response"
)

// ClaimsKey is the context key for the authenticated user's claims.
const ClaimsKey contextKey = "claims"

// NewAuthMiddleware creates middleware that validates the Bearer token on
// every request and stores the claims in the request context. The auth
// service is injected via closure; no global state.
func NewAuthMiddleware(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Error(w, apierror.Unauthorized("Missing or invalid authorization header"))
				return
			}

			claims, err := auth.ValidateToken(r.Context(), strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				response.Error(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims retrieves the authenticated user's claims from context. Returns
// nil for unauthenticated requests.
func GetClaims(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*service.Claims)
	return claims
}
