package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeStatus represents the employment status of an employee
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeOnLeave  EmployeeStatus = "On Leave"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// EmployeeStatuses lists the accepted statuses in display order.
var EmployeeStatuses = []EmployeeStatus{EmployeeActive, EmployeeOnLeave, EmployeeInactive}

// ParseEmployeeStatus matches s case-insensitively against the known statuses.
func ParseEmployeeStatus(s string) (EmployeeStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range EmployeeStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Employee represents an employee record
type Employee struct {
	ID        string         `json:"id" gorm:"primaryKey" bson:"_id"`
	Name      string         `json:"name" gorm:"not null" bson:"name"`
	Role      string         `json:"role" gorm:"not null" bson:"role"`
	Email     string         `json:"email" bson:"email"`
	Status    EmployeeStatus `json:"status" gorm:"not null;default:'Active'" bson:"status"`
	CreatedAt time.Time      `json:"createdAt" gorm:"column:created_at;autoCreateTime:false" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"column:updated_at;autoUpdateTime:false" bson:"updatedAt"`
}

// TableName specifies the table name for Employee Model
func (Employee) TableName() string {
	return "employees"
}

// BeforeCreate fills in an id for rows inserted without one (seed data, fixtures).
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Summary returns the reference form used when a task is joined to its employee.
func (e Employee) Summary() *EmployeeSummary {
	return &EmployeeSummary{ID: e.ID, Name: e.Name}
}
