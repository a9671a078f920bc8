package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/saulo-duarte/quizzai-lambda/internal/apperr"
	"github.com/saulo-duarte/quizzai-lambda/internal/config"
)

const cookieName = "jwt"

type claimsKey struct{}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			log.Warn("Request without credentials")
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			log.WithError(err).Warn("Invalid or expired token")
			config.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		ctx = config.WithUserID(ctx, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	if !ok || claims == nil || claims.UserID == "" {
		return nil, apperr.ErrAuth
	}
	return claims, nil
}

// ContextWithClaims is used by tests and internal callers that already hold
// validated claims.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return config.WithUserID(context.WithValue(ctx, claimsKey{}, claims), claims.UserID)
}

func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
