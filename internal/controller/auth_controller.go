package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/service"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// GoogleLogin exchanges a Google credential (ID token or authorization
// code) for an application session token.
func (c *AuthController) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.authService.GoogleLogin(r.Context(), &req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// Logout is stateless: the session token simply expires client-side.
// The endpoint exists so clients have a uniform call to clear sessions.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	helper.WriteSuccess(w, map[string]string{"message": "Logged out"})
}
