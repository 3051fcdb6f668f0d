package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/charlles-dev/Unity-Bank/configs"
	"github.com/charlles-dev/Unity-Bank/internal/httputil"
	"github.com/charlles-dev/Unity-Bank/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const TellerContextKey contextKey = "teller"

// TellerFromContext returns the authenticated teller name, if any.
func TellerFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(TellerContextKey).(string)
	return name, ok
}

// Authenticated requires a valid bearer token issued by the login handler and
// stores the teller name in the request context.
func Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httputil.WriteError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		tokenStr := parts[1]

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(configs.AppConfig.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httputil.WriteError(w, http.StatusUnauthorized, "invalid token claims")
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			logger.Log.Error("jwt subject missing or wrong type")
			httputil.WriteError(w, http.StatusUnauthorized, "invalid token payload")
			return
		}

		ctx := context.WithValue(r.Context(), TellerContextKey, sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
