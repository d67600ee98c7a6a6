package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/kioskhub/pkg/utils"
)

type ContextKey string

const IdentityKey ContextKey = "identity"

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// IdentityFromContext returns the bearer set by one of the middlewares.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	return identity, ok
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// Required rejects requests without a valid bearer token.
func Required(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearer(validator, r)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims.Identity)))
		})
	}
}

// Optional attaches the identity when a valid token is present and lets
// anonymous requests through untouched.
func Optional(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := bearer(validator, r); ok {
				r = r.WithContext(WithIdentity(r.Context(), claims.Identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearer(validator TokenValidator, r *http.Request) (*Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}
	claims, err := validator.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}
