package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"portfolioservice/internal/ctxdata"
	"portfolioservice/internal/logging"
	"portfolioservice/internal/models"
)

// Claims are the identity fields carried by access tokens.
type Claims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

// NewAuthMiddleware verifies the HS256 bearer token and stores the caller
// identity in the request context.
func NewAuthMiddleware(secret []byte) func(http.Handler) http.Handler {
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			logger := logging.FromContext(ctx)

			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				logger.Info(ctx, "no bearer token", zap.String("path", r.URL.Path))
				unauthorized(w)
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(raw, claims, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				logger.Info(ctx, "invalid token", zap.String("path", r.URL.Path), zap.Error(err))
				unauthorized(w)
				return
			}
			if claims.ID == "" || !models.Role(claims.Role).IsValid() {
				logger.Info(ctx, "token without identity", zap.String("path", r.URL.Path))
				unauthorized(w)
				return
			}

			ctx = ctxdata.WithIdentity(ctx, claims.ID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
