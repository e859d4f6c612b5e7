package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/backend/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "edumaster.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testJWTService(time.Hour)
	user := &models.User{ID: 2, Email: "john@edumaster.com", Role: models.RoleInstructor}

	token, expiresIn, err := service.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.UserID)
	assert.Equal(t, "john@edumaster.com", claims.Email)
	assert.Equal(t, "INSTRUCTOR", claims.Role)
	assert.Equal(t, "edumaster.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateExpiredToken(t *testing.T) {
	service := testJWTService(-time.Minute)
	user := &models.User{ID: 2, Email: "john@edumaster.com", Role: models.RoleInstructor}

	token, _, err := service.GenerateToken(user)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: 2, Email: "john@edumaster.com", Role: models.RoleInstructor}
	token, _, err := testJWTService(time.Hour).GenerateToken(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Token abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("bearer abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
