package middleware

import (
	"context"
	"net/http"
	"strings"

	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/service"
)

type contextKey string

const UserContextKey contextKey = "userContext"

type AuthMiddleware struct {
	authService *service.AuthService
}

func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

func (m *AuthMiddleware) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		userContext, err := m.authService.VerifyUser(r.Context(), parts[1])
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, userContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyWSToken reads the token from a query parameter; browser
// WebSocket clients cannot set an Authorization header.
func (m *AuthMiddleware) VerifyWSToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		userContext, err := m.authService.VerifyUser(r.Context(), tokenString)
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, userContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after VerifyToken.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userContext, ok := r.Context().Value(UserContextKey).(*model.UserDTO)
		if !ok {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		if !userContext.IsAdmin() {
			helper.WriteError(w, helper.NewForbiddenError("Admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
