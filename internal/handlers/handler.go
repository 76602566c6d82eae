package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/pkg/models"

	"github.com/gin-gonic/gin"
)

// HRService is the set of operations the HTTP layer needs.
type HRService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	CreateEmployee(ctx context.Context, in service.CreateEmployeeInput) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, in service.UpdateEmployeeInput) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (models.Employee, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	CreateTask(ctx context.Context, in service.CreateTaskInput) (models.Task, error)
	UpdateTask(ctx context.Context, id string, in service.UpdateTaskInput) (models.Task, error)
	DeleteTask(ctx context.Context, id string) (models.Task, error)

	Stats(ctx context.Context) (models.Stats, error)
	Ping(ctx context.Context) error
}

// Handler serves the employee, task and stats endpoints.
type Handler struct {
	svc    HRService
	logger *slog.Logger
}

func New(svc HRService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// writeError translates service errors into HTTP responses. Anything that is not a
// validation or lookup failure is logged and reported as a generic failure.
func (h *Handler) writeError(c *gin.Context, err error, notFoundMsg string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		h.logger.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
