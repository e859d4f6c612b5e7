package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/backend/internal/app/models"
	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, exp time.Duration) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "edumaster.test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("/protected", m.JWTAuth())
	protected.GET("/me", func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": c.GetString(ContextRole)})
	})

	adminOnly := router.Group("/admin", m.JWTAuth(), m.RoleRequired(string(models.RoleAdmin)))
	adminOnly.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	return router, jwtService
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{ID: 2, Email: "john@edumaster.com", Role: role})
	require.NoError(t, err)
	return token
}

func errorCodeOf(t *testing.T, body []byte) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestJWTAuthAllowsValidToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)
	token := issueToken(t, jwtService, models.RoleInstructor)

	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"INSTRUCTOR"`)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCodeOf(t, w.Body.Bytes()))
}

func TestJWTAuthRejectsMalformedHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCodeOf(t, w.Body.Bytes()))
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, -time.Minute)
	token := issueToken(t, jwtService, models.RoleInstructor)

	req := httptest.NewRequest(http.MethodGet, "/protected/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, errorCodeOf(t, w.Body.Bytes()))
}

func TestRoleRequiredForbidsWrongRole(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)
	token := issueToken(t, jwtService, models.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, errorCodeOf(t, w.Body.Bytes()))
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, time.Hour)
	token := issueToken(t, jwtService, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
