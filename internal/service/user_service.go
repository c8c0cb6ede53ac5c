package service

import (
	"context"
	"log/slog"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/ent/user"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/model"
)

type UserService struct {
	client *ent.Client
	config *config.AppConfig
}

func NewUserService(client *ent.Client, cfg *config.AppConfig) *UserService {
	return &UserService{
		client: client,
		config: cfg,
	}
}

func (s *UserService) GetCurrentUser(ctx context.Context, principal *model.UserDTO) (*model.UserDTO, error) {
	entity, err := s.client.User.Get(ctx, principal.ID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewUnauthorizedError("")
		}
		slog.Error("Failed to load user", "error", err, "userID", principal.ID)
		return nil, helper.NewInternalServerError("")
	}

	dto := toUserDTO(entity)
	return &dto, nil
}

// PromoteToAdmin grants the admin role to an existing user by email.
func (s *UserService) PromoteToAdmin(ctx context.Context, email string) (*model.UserDTO, error) {
	email = helper.NormalizeEmail(email)

	entity, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("User not found")
		}
		slog.Error("Failed to load user", "error", err, "email", email)
		return nil, helper.NewInternalServerError("")
	}

	updated, err := entity.Update().SetRole(user.RoleAdmin).Save(ctx)
	if err != nil {
		slog.Error("Failed to promote user", "error", err, "email", email)
		return nil, helper.NewInternalServerError("")
	}

	slog.Info("User promoted to admin", "userID", updated.ID, "email", email)
	dto := toUserDTO(updated)
	return &dto, nil
}
