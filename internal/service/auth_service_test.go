package service

import (
	"context"
	"net/http"
	"testing"

	"CivicConnectAPI/internal/helper"

	"github.com/stretchr/testify/assert"
)

func newTestAuthService() *AuthService {
	return NewAuthService(testClient, testConfig, testValidate, nil)
}

func TestVerifyUser_ResolvesTokenToCurrentUser(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAuthService()

	entity := createTestUser(ctx, "citizen")
	token, err := helper.GenerateJWT(testConfig.JWTSecret, testConfig.JWTExp, entity.ID, string(entity.Role))
	assert.NoError(t, err)

	dto, err := s.VerifyUser(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, entity.ID, dto.ID)
	assert.Equal(t, entity.Email, dto.Email)
	assert.Equal(t, "citizen", dto.Role)
}

func TestVerifyUser_RoleReadFromDatabaseNotToken(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAuthService()

	entity := createTestUser(ctx, "citizen")
	token, err := helper.GenerateJWT(testConfig.JWTSecret, testConfig.JWTExp, entity.ID, "citizen")
	assert.NoError(t, err)

	entity.Update().SetRole("admin").SaveX(ctx)

	dto, err := s.VerifyUser(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", dto.Role)
}

func TestVerifyUser_UnknownSubject(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAuthService()

	token, err := helper.GenerateJWT(testConfig.JWTSecret, testConfig.JWTExp, mustUUID(), "citizen")
	assert.NoError(t, err)

	_, err = s.VerifyUser(ctx, token)
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}

func TestVerifyUser_InvalidToken(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)
	s := newTestAuthService()

	_, err := s.VerifyUser(ctx, "not.a.token")
	appErr, ok := err.(*helper.AppError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
}
