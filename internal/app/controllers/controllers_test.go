package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/middleware"
	"github.com/edumaster/backend/internal/pkg/apperrors"
)

type fakeAuthService struct {
	resp *dto.LoginResponse
	err  error
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.resp, f.err
}

type fakeAdminService struct {
	courses []*dto.AdminCourse
	users   []*dto.AdminUser
	err     error

	statusCalls []int64
	roleCalls   []string
	deleted     []int64
}

func (f *fakeAdminService) ListCourses(ctx context.Context) ([]*dto.AdminCourse, error) {
	return f.courses, f.err
}

func (f *fakeAdminService) SetCourseStatus(ctx context.Context, id int64, published bool) error {
	f.statusCalls = append(f.statusCalls, id)
	return f.err
}

func (f *fakeAdminService) DeleteCourse(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeAdminService) ListUsers(ctx context.Context) ([]*dto.AdminUser, error) {
	return f.users, f.err
}

func (f *fakeAdminService) ChangeUserRole(ctx context.Context, id int64, role string) error {
	f.roleCalls = append(f.roleCalls, role)
	return f.err
}

func (f *fakeAdminService) DeleteUser(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeInstructorService struct {
	courses []*dto.InstructorCourse
	rows    []*dto.StudentRow
	err     error
	seenID  int64
}

func (f *fakeInstructorService) MyCourses(ctx context.Context, instructorID int64) ([]*dto.InstructorCourse, error) {
	f.seenID = instructorID
	return f.courses, f.err
}

func (f *fakeInstructorService) StudentProgress(ctx context.Context, instructorID int64) ([]*dto.StudentRow, error) {
	f.seenID = instructorID
	return f.rows, f.err
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, body []byte) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

func TestLoginSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(&fakeAuthService{
		resp: &dto.LoginResponse{
			Token:     "token-123",
			ExpiresIn: 86400,
			User:      &dto.UserProfile{ID: 2, Email: "john@edumaster.com", Role: "INSTRUCTOR"},
		},
	}, zerolog.Nop())

	router := gin.New()
	router.POST("/api/auth/login", controller.Login)

	w := doRequest(router, http.MethodPost, "/api/auth/login",
		`{"email":"john@edumaster.com","password":"password123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w.Body.Bytes())
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(envelope["data"], &resp))
	assert.Equal(t, "token-123", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "INSTRUCTOR", resp.User.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(&fakeAuthService{err: apperrors.ErrInvalidCredentials}, zerolog.Nop())

	router := gin.New()
	router.POST("/api/auth/login", controller.Login)

	w := doRequest(router, http.MethodPost, "/api/auth/login",
		`{"email":"john@edumaster.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeInvalidCredentials))
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewAuthController(&fakeAuthService{}, zerolog.Nop())

	router := gin.New()
	router.POST("/api/auth/login", controller.Login)

	w := doRequest(router, http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeValidationFailed))
}

func TestListCourses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeAdminService{
		courses: []*dto.AdminCourse{{ID: 1, Title: "Go for Backend Engineers", Status: "published"}},
	}
	controller := NewAdminController(service)

	router := gin.New()
	router.GET("/api/admin/courses", controller.ListCourses)

	w := doRequest(router, http.MethodGet, "/api/admin/courses", "")

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w.Body.Bytes())
	var courses []*dto.AdminCourse
	require.NoError(t, json.Unmarshal(envelope["data"], &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "published", courses[0].Status)
}

func TestUpdateCourseStatusValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeAdminService{}
	controller := NewAdminController(service)

	router := gin.New()
	router.PUT("/api/admin/courses/:id/status", controller.UpdateCourseStatus)

	// Missing published field
	w := doRequest(router, http.MethodPut, "/api/admin/courses/3/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.statusCalls)

	// Non-numeric id
	w = doRequest(router, http.MethodPut, "/api/admin/courses/abc/status", `{"published":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, service.statusCalls)

	w = doRequest(router, http.MethodPut, "/api/admin/courses/3/status", `{"published":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{3}, service.statusCalls)
}

func TestUpdateUserRoleNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeAdminService{err: apperrors.ErrUserNotFound}
	controller := NewAdminController(service)

	router := gin.New()
	router.PUT("/api/admin/users/:id/role", controller.UpdateUserRole)

	w := doRequest(router, http.MethodPut, "/api/admin/users/99/role", `{"role":"INSTRUCTOR"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeResourceNotFound))
}

func TestInstructorEndpointsUseContextUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeInstructorService{
		rows: []*dto.StudentRow{{ID: 7, Name: "Sam Student", Course: "Go for Backend Engineers", Status: "active"}},
	}
	controller := NewInstructorController(service)

	router := gin.New()
	router.GET("/api/instructor/students", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, int64(2))
	}, controller.Students)

	w := doRequest(router, http.MethodGet, "/api/instructor/students", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), service.seenID)
	envelope := decodeEnvelope(t, w.Body.Bytes())
	var rows []*dto.StudentRow
	require.NoError(t, json.Unmarshal(envelope["data"], &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "active", rows[0].Status)
}

func TestInstructorEndpointsRejectMissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewInstructorController(&fakeInstructorService{})

	router := gin.New()
	router.GET("/api/instructor/my-courses", controller.MyCourses)

	w := doRequest(router, http.MethodGet, "/api/instructor/my-courses", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), string(dto.ErrorCodeUnauthorized))
}
