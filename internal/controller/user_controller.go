package controller

import (
	"net/http"

	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/middleware"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/service"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	resp, err := c.userService.GetCurrentUser(r.Context(), userContext)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
