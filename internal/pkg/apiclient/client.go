// Package apiclient is the REST client for the EduMaster API. The dashboard
// controllers and the smoke-test probe both drive the backend through it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/edumaster/backend/internal/app/models/dto"
)

// APIError carries the server's error payload alongside the HTTP status.
type APIError struct {
	StatusCode int
	Detail     *dto.ErrorDetail
}

func (e *APIError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Detail.Code, e.Detail.Message, e.StatusCode)
	}
	return fmt.Sprintf("request failed with HTTP %d", e.StatusCode)
}

// Client talks to the EduMaster API. The zero value is not usable; construct
// it with NewClient. The client is not safe for concurrent token changes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the API at baseURL (no trailing slash needed).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token sent with subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently in use.
func (c *Client) Token() string {
	return c.token
}

// Login authenticates and stores the returned bearer token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	req := &dto.LoginRequest{Email: email, Password: password}
	resp := &dto.LoginResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return resp, nil
}

// ListAdminCourses fetches every course for the admin dashboard.
func (c *Client) ListAdminCourses(ctx context.Context) ([]*dto.AdminCourse, error) {
	var courses []*dto.AdminCourse
	if err := c.do(ctx, http.MethodGet, "/api/admin/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// SetCourseStatus publishes or unpublishes a course.
func (c *Client) SetCourseStatus(ctx context.Context, courseID int64, published bool) error {
	req := &dto.UpdateCourseStatusRequest{Published: &published}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/courses/%d/status", courseID), req, nil)
}

// DeleteCourse removes a course and all its dependent records.
func (c *Client) DeleteCourse(ctx context.Context, courseID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/courses/%d", courseID), nil, nil)
}

// ListAdminUsers fetches every user with activity stats.
func (c *Client) ListAdminUsers(ctx context.Context) ([]*dto.AdminUser, error) {
	var users []*dto.AdminUser
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetUserRole changes a user's role.
func (c *Client) SetUserRole(ctx context.Context, userID int64, role string) error {
	req := &dto.UpdateUserRoleRequest{Role: role}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/users/%d/role", userID), req, nil)
}

// DeleteUser removes a user and all their dependent records.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", userID), nil, nil)
}

// MyCourses fetches the authenticated instructor's own courses.
func (c *Client) MyCourses(ctx context.Context) ([]*dto.InstructorCourse, error) {
	var courses []*dto.InstructorCourse
	if err := c.do(ctx, http.MethodGet, "/api/instructor/my-courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ListStudents fetches per-enrollment progress rows for the authenticated
// instructor's students.
func (c *Client) ListStudents(ctx context.Context) ([]*dto.StudentRow, error) {
	var students []*dto.StudentRow
	if err := c.do(ctx, http.MethodGet, "/api/instructor/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// envelope mirrors dto.APIResponse with the payload left raw so callers can
// decode it into their own type.
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var env envelope
		if err := json.Unmarshal(respBody, &env); err == nil && env.Error != nil {
			apiErr.Detail = env.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}
