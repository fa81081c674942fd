package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/linkstash/linkstash-go/internal/crypto"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the verified caller attached to authenticated requests.
type Identity struct {
	UserID int64
	Email  string
}

// TokenValidator verifies access tokens.
type TokenValidator interface {
	Validate(token string) (*crypto.Claims, error)
}

// JWTAuth returns middleware that requires a valid Bearer token in the
// Authorization header and stores the caller's Identity in the request context.
func JWTAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := WithIdentity(r.Context(), Identity{UserID: claims.UserID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the authenticated caller from ctx.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// UserIDFromContext extracts the authenticated user ID from ctx.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := IdentityFromContext(ctx)
	return id.UserID, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
