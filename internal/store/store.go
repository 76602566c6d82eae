// Package store defines the persistence contract for employees and tasks.
package store

import (
	"context"
	"errors"

	"hr-dashboard-api/pkg/models"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Store persists employees and tasks. Nothing spans calls. Update methods load the
// record, run apply on it and persist the result; an error from apply aborts the update
// and is returned unchanged. sqlstore runs the load and save in one transaction.
// mongostore replaces the document by id after loading it, so a write landing in
// between is overwritten (last write wins).
type Store interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	CreateEmployee(ctx context.Context, e *models.Employee) error
	UpdateEmployee(ctx context.Context, id string, apply func(*models.Employee) error) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (models.Employee, error)
	// EmployeesByID returns the employees whose ids are in ids; unknown ids are skipped.
	EmployeesByID(ctx context.Context, ids []string) ([]models.Employee, error)

	ListTasks(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
	CreateTask(ctx context.Context, t *models.Task) error
	UpdateTask(ctx context.Context, id string, apply func(*models.Task) error) (models.Task, error)
	DeleteTask(ctx context.Context, id string) (models.Task, error)

	Ping(ctx context.Context) error
	Close() error
}
