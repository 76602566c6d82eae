package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists the canonical statuses in workflow order.
var TaskStatuses = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}

// taskStatusAliases maps lowercased input spellings onto the canonical vocabulary.
// Older clients send Todo/Done, the board view sent inProgress.
var taskStatusAliases = map[string]TaskStatus{
	"pending":     StatusPending,
	"todo":        StatusPending,
	"in progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"in-progress": StatusInProgress,
	"completed":   StatusCompleted,
	"done":        StatusCompleted,
}

// ParseTaskStatus normalizes s to a canonical TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	st, ok := taskStatusAliases[strings.ToLower(strings.TrimSpace(s))]
	return st, ok
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// ParseTaskPriority matches s case-insensitively against the known priorities.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	s = strings.TrimSpace(s)
	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh} {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// EmployeeSummary is the read-time view of a task's assignee
type EmployeeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task represents a task record. EmployeeID is a plain reference: nothing keeps it
// pointing at an existing employee.
type Task struct {
	ID          string           `json:"id" gorm:"primaryKey" bson:"_id"`
	Title       string           `json:"title" gorm:"not null" bson:"title"`
	Description string           `json:"description" bson:"description"`
	Priority    TaskPriority     `json:"priority" gorm:"not null;default:'Medium'" bson:"priority"`
	Status      TaskStatus       `json:"status" gorm:"not null;default:'Pending'" bson:"status"`
	Progress    int              `json:"progress" gorm:"not null;default:0" bson:"progress"`
	EmployeeID  *string          `json:"employeeId" gorm:"column:employee_id;index" bson:"employeeId,omitempty"`
	Employee    *EmployeeSummary `json:"employee,omitempty" gorm:"-" bson:"-"`
	CreatedAt   time.Time        `json:"createdAt" gorm:"column:created_at;autoCreateTime:false" bson:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime:false" bson:"updatedAt"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}

// BeforeCreate fills in an id for rows inserted without one.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// AssigneeID returns the referenced employee id, or "" when unassigned.
func (t Task) AssigneeID() string {
	if t.EmployeeID == nil {
		return ""
	}
	return *t.EmployeeID
}
