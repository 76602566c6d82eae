// Package client provides a Go SDK for the HR dashboard HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"hr-dashboard-api/pkg/models"
)

// Client calls the HR dashboard HTTP API. It is safe for concurrent use.
type Client struct {
	BaseURL    string       // e.g. "http://localhost:5000"
	HTTPClient *http.Client // optional; nil uses http.DefaultClient
}

// New returns a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// EmployeeFields is the body of POST /employees.
type EmployeeFields struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email,omitempty"`
	Status string `json:"status,omitempty"`
}

// EmployeePatch is the body of PUT /employees/:id; nil fields are not sent.
type EmployeePatch struct {
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Email  *string `json:"email,omitempty"`
	Status *string `json:"status,omitempty"`
}

// TaskFields is the body of POST /tasks.
type TaskFields struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Status      string  `json:"status,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	EmployeeID  *string `json:"employeeId,omitempty"`
}

// TaskPatch is the body of PUT /tasks/:id. A non-nil empty EmployeeID unassigns.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	EmployeeID  *string `json:"employeeId,omitempty"`
}

func (c *Client) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.client().Do(req)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)); json.Unmarshal(b, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func escape(id string) string {
	return url.PathEscape(id)
}

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	err := c.doJSON(ctx, http.MethodGet, "/employees", nil, &out)
	return out, err
}

func (c *Client) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	var out models.Employee
	err := c.doJSON(ctx, http.MethodGet, "/employees/"+escape(id), nil, &out)
	return out, err
}

func (c *Client) CreateEmployee(ctx context.Context, in EmployeeFields) (models.Employee, error) {
	var out models.Employee
	err := c.doJSON(ctx, http.MethodPost, "/employees", in, &out)
	return out, err
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, in EmployeePatch) (models.Employee, error) {
	var out models.Employee
	err := c.doJSON(ctx, http.MethodPut, "/employees/"+escape(id), in, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) (models.Employee, error) {
	var out models.Employee
	err := c.doJSON(ctx, http.MethodDelete, "/employees/"+escape(id), nil, &out)
	return out, err
}

func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	err := c.doJSON(ctx, http.MethodGet, "/tasks", nil, &out)
	return out, err
}

func (c *Client) GetTask(ctx context.Context, id string) (models.Task, error) {
	var out models.Task
	err := c.doJSON(ctx, http.MethodGet, "/tasks/"+escape(id), nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, in TaskFields) (models.Task, error) {
	var out models.Task
	err := c.doJSON(ctx, http.MethodPost, "/tasks", in, &out)
	return out, err
}

func (c *Client) UpdateTask(ctx context.Context, id string, in TaskPatch) (models.Task, error) {
	var out models.Task
	err := c.doJSON(ctx, http.MethodPut, "/tasks/"+escape(id), in, &out)
	return out, err
}

func (c *Client) DeleteTask(ctx context.Context, id string) (models.Task, error) {
	var out models.Task
	err := c.doJSON(ctx, http.MethodDelete, "/tasks/"+escape(id), nil, &out)
	return out, err
}

func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var out models.Stats
	err := c.doJSON(ctx, http.MethodGet, "/stats", nil, &out)
	return out, err
}

// Health calls GET /health and returns the server's message.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.doJSON(ctx, http.MethodGet, "/health", nil, &out)
	return out.Message, err
}
