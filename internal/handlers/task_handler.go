package handlers

import (
	"encoding/json"
	"net/http"

	"hr-dashboard-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	Progress    *int    `json:"progress" binding:"omitempty,min=0,max=100"`
	EmployeeID  *string `json:"employeeId"`
}

// UpdateTaskRequest represents a partial task update.
// "employeeId": null or "" unassigns the task.
type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Priority    *string        `json:"priority"`
	Status      *string        `json:"status"`
	Progress    *int           `json:"progress" binding:"omitempty,min=0,max=100"`
	EmployeeID  optionalString `json:"employeeId"`
}

// optionalString tells an absent field apart from an explicit null.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// ptr returns nil when the field was absent and a pointer to "" for an explicit null.
func (o optionalString) ptr() *string {
	switch {
	case !o.Set:
		return nil
	case o.Value == nil:
		empty := ""
		return &empty
	}
	return o.Value
}

const taskNotFound = "Task not found"

// ListTasks handles GET /tasks
// Each task carries an "employee" summary when its reference resolves.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.svc.ListTasks(c.Request.Context())
	if err != nil {
		h.writeError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask handles GET /tasks/:id
func (h *Handler) GetTask(c *gin.Context) {
	t, err := h.svc.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTask handles POST /tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	in := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Progress:    req.Progress,
	}
	if req.EmployeeID != nil {
		in.EmployeeID = *req.EmployeeID
	}

	t, err := h.svc.CreateTask(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTask handles PUT /tasks/:id
func (h *Handler) UpdateTask(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	t, err := h.svc.UpdateTask(c.Request.Context(), c.Param("id"), service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		Progress:    req.Progress,
		EmployeeID:  req.EmployeeID.ptr(),
	})
	if err != nil {
		h.writeError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTask handles DELETE /tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	t, err := h.svc.DeleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}
