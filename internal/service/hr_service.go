package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"hr-dashboard-api/internal/store"
	"hr-dashboard-api/pkg/models"

	"github.com/google/uuid"
)

// Publisher receives change events after successful writes.
type Publisher interface {
	Publish(evt models.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(models.Event) {}

// CreateEmployeeInput carries the fields accepted by CreateEmployee.
type CreateEmployeeInput struct {
	Name   string
	Role   string
	Email  string
	Status string
}

// UpdateEmployeeInput carries a partial employee; nil fields are left untouched.
type UpdateEmployeeInput struct {
	Name   *string
	Role   *string
	Email  *string
	Status *string
}

// CreateTaskInput carries the fields accepted by CreateTask.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Status      string
	Progress    *int
	EmployeeID  string
}

// UpdateTaskInput carries a partial task; nil fields are left untouched and an
// empty EmployeeID unassigns the task.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	Progress    *int
	EmployeeID  *string
}

// HRService implements the employee and task operations on top of a store.Store.
type HRService struct {
	store  store.Store
	events Publisher
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

type Option func(*HRService)

func WithPublisher(p Publisher) Option {
	return func(s *HRService) {
		if p != nil {
			s.events = p
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *HRService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the timestamp source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *HRService) { s.now = now }
}

// WithIDGenerator overrides record id generation (tests).
func WithIDGenerator(newID func() string) Option {
	return func(s *HRService) { s.newID = newID }
}

func New(st store.Store, opts ...Option) (*HRService, error) {
	if st == nil {
		return nil, ErrStoreNil
	}
	s := &HRService{
		store:  st,
		events: nopPublisher{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *HRService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

// storeErr maps a store failure onto the service error taxonomy.
func (s *HRService) storeErr(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case IsValidation(err):
		return err
	case errors.Is(err, context.Canceled):
		return err
	}
	s.logger.Error("store operation failed", "op", op, "err", err)
	return &ConnectivityError{Op: op, Err: err}
}

func cleanID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}

// ---- employees ----

func (s *HRService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, s.storeErr("list employees", err)
	}
	return employees, nil
}

func (s *HRService) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	id, err := cleanID(id)
	if err != nil {
		return models.Employee{}, err
	}
	e, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return models.Employee{}, s.storeErr("get employee", err)
	}
	return e, nil
}

func (s *HRService) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (models.Employee, error) {
	name := strings.TrimSpace(in.Name)
	role := strings.TrimSpace(in.Role)
	if name == "" {
		return models.Employee{}, required("name")
	}
	if role == "" {
		return models.Employee{}, required("role")
	}

	status := models.EmployeeActive
	if strings.TrimSpace(in.Status) != "" {
		st, ok := models.ParseEmployeeStatus(in.Status)
		if !ok {
			return models.Employee{}, invalid("status", in.Status)
		}
		status = st
	}

	now := s.timestamp()
	e := models.Employee{
		ID:        s.newID(),
		Name:      name,
		Role:      role,
		Email:     strings.TrimSpace(in.Email),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateEmployee(ctx, &e); err != nil {
		return models.Employee{}, s.storeErr("create employee", err)
	}

	s.logger.Info("employee created", "id", e.ID)
	s.events.Publish(models.Event{Type: models.EventEmployeeCreated, ID: e.ID, At: e.UpdatedAt})
	return e, nil
}

func (s *HRService) UpdateEmployee(ctx context.Context, id string, in UpdateEmployeeInput) (models.Employee, error) {
	id, err := cleanID(id)
	if err != nil {
		return models.Employee{}, err
	}

	// Validate before touching the store so a bad patch never reaches it.
	var name, role string
	if in.Name != nil {
		if name = strings.TrimSpace(*in.Name); name == "" {
			return models.Employee{}, required("name")
		}
	}
	if in.Role != nil {
		if role = strings.TrimSpace(*in.Role); role == "" {
			return models.Employee{}, required("role")
		}
	}
	var status models.EmployeeStatus
	if in.Status != nil {
		st, ok := models.ParseEmployeeStatus(*in.Status)
		if !ok {
			return models.Employee{}, invalid("status", *in.Status)
		}
		status = st
	}

	updated, err := s.store.UpdateEmployee(ctx, id, func(e *models.Employee) error {
		if in.Name != nil {
			e.Name = name
		}
		if in.Role != nil {
			e.Role = role
		}
		if in.Email != nil {
			e.Email = strings.TrimSpace(*in.Email)
		}
		if in.Status != nil {
			e.Status = status
		}
		e.UpdatedAt = s.timestamp()
		return nil
	})
	if err != nil {
		return models.Employee{}, s.storeErr("update employee", err)
	}

	s.events.Publish(models.Event{Type: models.EventEmployeeUpdated, ID: updated.ID, At: updated.UpdatedAt})
	return updated, nil
}

// DeleteEmployee removes the employee. Tasks that reference it keep the now dangling id.
func (s *HRService) DeleteEmployee(ctx context.Context, id string) (models.Employee, error) {
	id, err := cleanID(id)
	if err != nil {
		return models.Employee{}, err
	}
	deleted, err := s.store.DeleteEmployee(ctx, id)
	if err != nil {
		return models.Employee{}, s.storeErr("delete employee", err)
	}

	s.logger.Info("employee deleted", "id", deleted.ID)
	s.events.Publish(models.Event{Type: models.EventEmployeeDeleted, ID: deleted.ID, At: s.timestamp()})
	return deleted, nil
}

// ---- tasks ----

// resolveAssignees fills Task.Employee for every task whose reference resolves.
// Dangling references are left as bare ids.
func (s *HRService) resolveAssignees(ctx context.Context, tasks []models.Task) error {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		id := t.AssigneeID()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	employees, err := s.store.EmployeesByID(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	for i := range tasks {
		if e, ok := byID[tasks[i].AssigneeID()]; ok {
			tasks[i].Employee = e.Summary()
		}
	}
	return nil
}

func (s *HRService) resolveOne(ctx context.Context, op string, t models.Task) (models.Task, error) {
	tasks := []models.Task{t}
	if err := s.resolveAssignees(ctx, tasks); err != nil {
		return models.Task{}, s.storeErr(op, err)
	}
	return tasks[0], nil
}

func (s *HRService) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, s.storeErr("list tasks", err)
	}
	if err := s.resolveAssignees(ctx, tasks); err != nil {
		return nil, s.storeErr("list tasks", err)
	}
	return tasks, nil
}

func (s *HRService) GetTask(ctx context.Context, id string) (models.Task, error) {
	id, err := cleanID(id)
	if err != nil {
		return models.Task{}, err
	}
	t, err := s.store.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, s.storeErr("get task", err)
	}
	return s.resolveOne(ctx, "get task", t)
}

func parseStatus(v string) (models.TaskStatus, error) {
	st, ok := models.ParseTaskStatus(v)
	if !ok {
		return "", invalid("status", v)
	}
	return st, nil
}

func parsePriority(v string) (models.TaskPriority, error) {
	p, ok := models.ParseTaskPriority(v)
	if !ok {
		return "", invalid("priority", v)
	}
	return p, nil
}

func checkProgress(p int) error {
	if p < 0 || p > 100 {
		return &ValidationError{Field: "progress", Message: "must be between 0 and 100, got " + strconv.Itoa(p)}
	}
	return nil
}

func reference(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}

func (s *HRService) CreateTask(ctx context.Context, in CreateTaskInput) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, required("title")
	}

	status := models.StatusPending
	if strings.TrimSpace(in.Status) != "" {
		st, err := parseStatus(in.Status)
		if err != nil {
			return models.Task{}, err
		}
		status = st
	}
	priority := models.PriorityMedium
	if strings.TrimSpace(in.Priority) != "" {
		p, err := parsePriority(in.Priority)
		if err != nil {
			return models.Task{}, err
		}
		priority = p
	}
	progress := 0
	if in.Progress != nil {
		if err := checkProgress(*in.Progress); err != nil {
			return models.Task{}, err
		}
		progress = *in.Progress
	}

	now := s.timestamp()
	t := models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Priority:    priority,
		Status:      status,
		Progress:    progress,
		EmployeeID:  reference(in.EmployeeID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateTask(ctx, &t); err != nil {
		return models.Task{}, s.storeErr("create task", err)
	}

	s.logger.Info("task created", "id", t.ID, "employee_id", t.AssigneeID())
	s.events.Publish(models.Event{Type: models.EventTaskCreated, ID: t.ID, At: t.UpdatedAt})
	return s.resolveOne(ctx, "create task", t)
}

func (s *HRService) UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (models.Task, error) {
	id, err := cleanID(id)
	if err != nil {
		return models.Task{}, err
	}

	var title string
	if in.Title != nil {
		if title = strings.TrimSpace(*in.Title); title == "" {
			return models.Task{}, required("title")
		}
	}
	var status models.TaskStatus
	if in.Status != nil {
		if status, err = parseStatus(*in.Status); err != nil {
			return models.Task{}, err
		}
	}
	var priority models.TaskPriority
	if in.Priority != nil {
		if priority, err = parsePriority(*in.Priority); err != nil {
			return models.Task{}, err
		}
	}
	if in.Progress != nil {
		if err := checkProgress(*in.Progress); err != nil {
			return models.Task{}, err
		}
	}

	updated, err := s.store.UpdateTask(ctx, id, func(t *models.Task) error {
		if in.Title != nil {
			t.Title = title
		}
		if in.Description != nil {
			t.Description = strings.TrimSpace(*in.Description)
		}
		if in.Status != nil {
			t.Status = status
		}
		if in.Priority != nil {
			t.Priority = priority
		}
		if in.Progress != nil {
			t.Progress = *in.Progress
		}
		if in.EmployeeID != nil {
			t.EmployeeID = reference(*in.EmployeeID)
		}
		t.UpdatedAt = s.timestamp()
		return nil
	})
	if err != nil {
		return models.Task{}, s.storeErr("update task", err)
	}

	s.events.Publish(models.Event{Type: models.EventTaskUpdated, ID: updated.ID, At: updated.UpdatedAt})
	return s.resolveOne(ctx, "update task", updated)
}

func (s *HRService) DeleteTask(ctx context.Context, id string) (models.Task, error) {
	id, err := cleanID(id)
	if err != nil {
		return models.Task{}, err
	}
	deleted, err := s.store.DeleteTask(ctx, id)
	if err != nil {
		return models.Task{}, s.storeErr("delete task", err)
	}

	s.logger.Info("task deleted", "id", deleted.ID)
	s.events.Publish(models.Event{Type: models.EventTaskDeleted, ID: deleted.ID, At: s.timestamp()})
	return deleted, nil
}

// ---- aggregates ----

// Stats counts employees and tasks by status.
func (s *HRService) Stats(ctx context.Context) (models.Stats, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return models.Stats{}, s.storeErr("stats", err)
	}
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return models.Stats{}, s.storeErr("stats", err)
	}
	return models.Stats{
		Employees: models.CountEmployees(employees),
		Tasks:     models.CountTasks(tasks),
	}, nil
}

func (s *HRService) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return s.storeErr("ping", err)
	}
	return nil
}
