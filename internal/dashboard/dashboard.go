// Package dashboard holds the client-side state of the HR dashboard: mirrors of the
// server's employee and task lists, ephemeral UI state and the form submission policy.
package dashboard

import (
	"context"
	"log/slog"
	"strings"

	"hr-dashboard-api/pkg/client"
	"hr-dashboard-api/pkg/models"
)

// Messages shown to the user. Every failed request produces FailureAlert regardless of cause.
const (
	FailureAlert        = "Something went wrong. Please try again."
	EmployeeFieldsAlert = "Please fill all employee fields"
	TaskTitleAlert      = "Task title required"
)

// API is the subset of *client.Client the dashboard calls.
type API interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, in client.EmployeeFields) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, in client.EmployeePatch) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (models.Employee, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, in client.TaskFields) (models.Task, error)
	UpdateTask(ctx context.Context, id string, in client.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, id string) (models.Task, error)
}

// Alerter shows a message to the user.
type Alerter interface {
	Alert(msg string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(msg string)

func (f AlertFunc) Alert(msg string) { f(msg) }

// Dashboard is not safe for concurrent use.
type Dashboard struct {
	api    API
	alert  Alerter
	logger *slog.Logger

	Employees []models.Employee
	Tasks     []models.Task

	Search       string
	StatusFilter string
	SelectedID   string

	EmployeeForm FormState
	TaskForm     FormState
}

func New(api API, alert Alerter, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dashboard{api: api, alert: alert, logger: logger, StatusFilter: StatusAll}
}

func (d *Dashboard) fail(op string, err error) {
	d.logger.Debug("dashboard request failed", "op", op, "error", err)
	if d.alert != nil {
		d.alert.Alert(FailureAlert)
	}
}

func (d *Dashboard) warn(msg string) {
	if d.alert != nil {
		d.alert.Alert(msg)
	}
}

// Load replaces both mirrors with the server's lists. On any failure neither mirror changes.
func (d *Dashboard) Load(ctx context.Context) error {
	employees, err := d.api.ListEmployees(ctx)
	if err != nil {
		d.fail("list employees", err)
		return err
	}
	tasks, err := d.api.ListTasks(ctx)
	if err != nil {
		d.fail("list tasks", err)
		return err
	}
	d.Employees = employees
	d.Tasks = tasks
	return nil
}

// VisibleEmployees applies the current search text and status filter.
func (d *Dashboard) VisibleEmployees() []models.Employee {
	return FilterEmployees(d.Employees, d.Search, d.StatusFilter)
}

func (d *Dashboard) EmployeeStats() models.EmployeeCounts { return EmployeeStats(d.Employees) }

func (d *Dashboard) TaskStats() models.TaskCounts { return TaskStats(d.Tasks) }

func (d *Dashboard) CreateEmployee(ctx context.Context, in client.EmployeeFields) (models.Employee, error) {
	created, err := d.api.CreateEmployee(ctx, in)
	if err != nil {
		d.fail("create employee", err)
		return models.Employee{}, err
	}
	d.Employees = append([]models.Employee{created}, d.Employees...)
	return created, nil
}

func (d *Dashboard) UpdateEmployee(ctx context.Context, id string, in client.EmployeePatch) (models.Employee, error) {
	updated, err := d.api.UpdateEmployee(ctx, id, in)
	if err != nil {
		d.fail("update employee", err)
		return models.Employee{}, err
	}
	for i := range d.Employees {
		if d.Employees[i].ID == updated.ID {
			d.Employees[i] = updated
		}
	}
	return updated, nil
}

func (d *Dashboard) DeleteEmployee(ctx context.Context, id string) error {
	deleted, err := d.api.DeleteEmployee(ctx, id)
	if err != nil {
		d.fail("delete employee", err)
		return err
	}
	if deleted.ID == "" {
		deleted.ID = id
	}
	d.Employees = removeByID(d.Employees, deleted.ID, func(e models.Employee) string { return e.ID })
	if d.SelectedID == deleted.ID {
		d.SelectedID = ""
	}
	return nil
}

func (d *Dashboard) CreateTask(ctx context.Context, in client.TaskFields) (models.Task, error) {
	created, err := d.api.CreateTask(ctx, in)
	if err != nil {
		d.fail("create task", err)
		return models.Task{}, err
	}
	d.Tasks = append([]models.Task{created}, d.Tasks...)
	return created, nil
}

func (d *Dashboard) UpdateTask(ctx context.Context, id string, in client.TaskPatch) (models.Task, error) {
	updated, err := d.api.UpdateTask(ctx, id, in)
	if err != nil {
		d.fail("update task", err)
		return models.Task{}, err
	}
	for i := range d.Tasks {
		if d.Tasks[i].ID == updated.ID {
			d.Tasks[i] = updated
		}
	}
	return updated, nil
}

func (d *Dashboard) DeleteTask(ctx context.Context, id string) error {
	deleted, err := d.api.DeleteTask(ctx, id)
	if err != nil {
		d.fail("delete task", err)
		return err
	}
	if deleted.ID == "" {
		deleted.ID = id
	}
	d.Tasks = removeByID(d.Tasks, deleted.ID, func(t models.Task) string { return t.ID })
	return nil
}

func removeByID[T any](list []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if key(v) != id {
			out = append(out, v)
		}
	}
	return out
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// SubmitEmployee submits the open employee form. Blank name or role alerts without a
// request and leaves the form open. Otherwise the form creates or edits according to its
// mode and is closed whatever the outcome.
func (d *Dashboard) SubmitEmployee(ctx context.Context, in client.EmployeeFields) (models.Employee, error) {
	if !d.EmployeeForm.IsOpen() {
		return models.Employee{}, ErrInvalidTransition
	}
	if blank(in.Name) || blank(in.Role) {
		d.warn(EmployeeFieldsAlert)
		return models.Employee{}, ErrRequiredFields
	}
	form := d.EmployeeForm
	_ = d.EmployeeForm.Close()

	if form.Mode == FormEditing {
		return d.UpdateEmployee(ctx, form.EditingID, employeePatch(in))
	}
	return d.CreateEmployee(ctx, in)
}

// SubmitTask is SubmitEmployee for the task form; only the title is required.
func (d *Dashboard) SubmitTask(ctx context.Context, in client.TaskFields) (models.Task, error) {
	if !d.TaskForm.IsOpen() {
		return models.Task{}, ErrInvalidTransition
	}
	if blank(in.Title) {
		d.warn(TaskTitleAlert)
		return models.Task{}, ErrRequiredFields
	}
	form := d.TaskForm
	_ = d.TaskForm.Close()

	if form.Mode == FormEditing {
		return d.UpdateTask(ctx, form.EditingID, taskPatch(in))
	}
	return d.CreateTask(ctx, in)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func employeePatch(in client.EmployeeFields) client.EmployeePatch {
	return client.EmployeePatch{
		Name:   &in.Name,
		Role:   &in.Role,
		Email:  &in.Email,
		Status: optional(in.Status),
	}
}

func taskPatch(in client.TaskFields) client.TaskPatch {
	return client.TaskPatch{
		Title:       &in.Title,
		Description: &in.Description,
		Priority:    optional(in.Priority),
		Status:      optional(in.Status),
		Progress:    in.Progress,
		EmployeeID:  in.EmployeeID,
	}
}
