package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"CivicConnectAPI/ent"
	"CivicConnectAPI/ent/user"
	"CivicConnectAPI/internal/config"
	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/mail"
	"CivicConnectAPI/internal/model"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

type AuthService struct {
	client    *ent.Client
	config    *config.AppConfig
	validator *validator.Validate
	mailer    *mail.Mailer
}

func NewAuthService(client *ent.Client, cfg *config.AppConfig, validate *validator.Validate, mailer *mail.Mailer) *AuthService {
	return &AuthService{
		client:    client,
		config:    cfg,
		validator: validate,
		mailer:    mailer,
	}
}

// GoogleLogin verifies a Google identity (ID token or authorization
// code), provisions the user on first sign-in, and issues a session JWT.
func (s *AuthService) GoogleLogin(ctx context.Context, request *model.GoogleLoginRequest) (*model.AuthResponse, error) {
	if err := s.validator.Struct(request); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, helper.NewBadRequestError("")
	}

	credential := request.Credential
	if credential == "" {
		exchanged, err := s.exchangeAuthCode(ctx, request.Code)
		if err != nil {
			slog.Warn("Failed to exchange authorization code", "error", err)
			return nil, helper.NewUnauthorizedError("Invalid Google authorization code")
		}
		credential = exchanged
	}

	payload, err := idtoken.Validate(ctx, credential, s.config.GoogleClientID)
	if err != nil {
		slog.Warn("Google ID token validation failed", "error", err)
		return nil, helper.NewUnauthorizedError("Invalid Google credential")
	}

	googleID, _ := payload.Claims["sub"].(string)
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	if googleID == "" || email == "" {
		slog.Warn("Google token missing required claims")
		return nil, helper.NewUnauthorizedError("Invalid Google credential")
	}

	email = helper.NormalizeEmail(email)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	entity, err := s.upsertGoogleUser(ctx, googleID, email, name, picture)
	if err != nil {
		slog.Error("Failed to upsert user", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	token, err := helper.GenerateJWT(s.config.JWTSecret, s.config.JWTExp, entity.ID, string(entity.Role))
	if err != nil {
		slog.Error("Failed to generate JWT", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.AuthResponse{
		Token: token,
		User:  toUserDTO(entity),
	}, nil
}

// VerifyUser resolves a session token to the current user record. The
// role is read from the database, not the token, so demotions and
// promotions take effect on the next request.
func (s *AuthService) VerifyUser(ctx context.Context, tokenString string) (*model.UserDTO, error) {
	claims, err := helper.ParseJWT(s.config.JWTSecret, tokenString)
	if err != nil {
		slog.Warn("Invalid session token", "error", err)
		return nil, helper.NewUnauthorizedError("")
	}

	entity, err := s.client.User.Get(ctx, claims.UserID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewUnauthorizedError("")
		}
		slog.Error("Failed to load user", "error", err, "userID", claims.UserID)
		return nil, helper.NewInternalServerError("")
	}

	dto := toUserDTO(entity)
	return &dto, nil
}

func (s *AuthService) exchangeAuthCode(ctx context.Context, code string) (string, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     s.config.GoogleClientID,
		ClientSecret: s.config.GoogleClientSecret,
		RedirectURL:  s.config.GoogleRedirectURL,
		Endpoint:     google.Endpoint,
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", helper.NewUnauthorizedError("Token response missing id_token")
	}
	return idToken, nil
}

func (s *AuthService) upsertGoogleUser(ctx context.Context, googleID, email, name, picture string) (*ent.User, error) {
	entity, err := s.client.User.Query().
		Where(user.Or(user.GoogleIDEQ(googleID), user.EmailEQ(email))).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()

	if entity == nil {
		created, err := s.client.User.Create().
			SetGoogleID(googleID).
			SetEmail(email).
			SetName(name).
			SetNillablePicture(nillableString(picture)).
			SetLastLogin(now).
			Save(ctx)
		if err != nil {
			return nil, err
		}

		slog.Info("New user registered", "userID", created.ID, "email", email)
		if s.mailer != nil {
			s.mailer.SendWelcome(created.Email, created.Name)
		}
		return created, nil
	}

	update := entity.Update().
		SetLastLogin(now).
		SetNillablePicture(nillableString(picture))
	if entity.GoogleID == nil || *entity.GoogleID != googleID {
		update.SetGoogleID(googleID)
	}
	return update.Save(ctx)
}

func nillableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
