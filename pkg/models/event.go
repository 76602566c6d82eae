package models

import "time"

// EventType names a change pushed to realtime subscribers
type EventType string

const (
	EventEmployeeCreated EventType = "employee_created"
	EventEmployeeUpdated EventType = "employee_updated"
	EventEmployeeDeleted EventType = "employee_deleted"
	EventTaskCreated     EventType = "task_created"
	EventTaskUpdated     EventType = "task_updated"
	EventTaskDeleted     EventType = "task_deleted"
)

// Event is the message broadcast after a successful write. At is the record's
// updatedAt for creates and updates and the deletion time for deletes.
type Event struct {
	Type EventType `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}
