package handlers

import (
	"net/http"

	"hr-dashboard-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateEmployeeRequest represents the request payload for creating an employee
type CreateEmployeeRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

// UpdateEmployeeRequest represents a partial employee update
type UpdateEmployeeRequest struct {
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Email  *string `json:"email"`
	Status *string `json:"status"`
}

const employeeNotFound = "Employee not found"

// ListEmployees handles GET /employees
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.svc.ListEmployees(c.Request.Context())
	if err != nil {
		h.writeError(c, err, employeeNotFound)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployee handles GET /employees/:id
func (h *Handler) GetEmployee(c *gin.Context) {
	e, err := h.svc.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, employeeNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}

// CreateEmployee handles POST /employees
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	e, err := h.svc.CreateEmployee(c.Request.Context(), service.CreateEmployeeInput{
		Name:   req.Name,
		Role:   req.Role,
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		h.writeError(c, err, employeeNotFound)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// UpdateEmployee handles PUT /employees/:id
// Only the fields present in the body are changed.
func (h *Handler) UpdateEmployee(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	e, err := h.svc.UpdateEmployee(c.Request.Context(), c.Param("id"), service.UpdateEmployeeInput{
		Name:   req.Name,
		Role:   req.Role,
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		h.writeError(c, err, employeeNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DeleteEmployee handles DELETE /employees/:id
// Responds with the deleted record.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	e, err := h.svc.DeleteEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err, employeeNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}
