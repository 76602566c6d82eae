package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus_Aliases(t *testing.T) {
	cases := map[string]TaskStatus{
		"Pending":     StatusPending,
		"todo":        StatusPending,
		" Todo ":      StatusPending,
		"In Progress": StatusInProgress,
		"inProgress":  StatusInProgress,
		"Completed":   StatusCompleted,
		"DONE":        StatusCompleted,
	}
	for in, want := range cases {
		got, ok := ParseTaskStatus(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, ok := ParseTaskStatus("archived")
	assert.False(t, ok)
	_, ok = ParseTaskStatus("")
	assert.False(t, ok)
}

func TestParseEmployeeStatus(t *testing.T) {
	st, ok := ParseEmployeeStatus("on leave")
	require.True(t, ok)
	assert.Equal(t, EmployeeOnLeave, st)

	_, ok = ParseEmployeeStatus("Retired")
	assert.False(t, ok)
}

func TestParseTaskPriority(t *testing.T) {
	p, ok := ParseTaskPriority("high")
	require.True(t, ok)
	assert.Equal(t, PriorityHigh, p)

	_, ok = ParseTaskPriority("urgent")
	assert.False(t, ok)
}

func TestCounts(t *testing.T) {
	emps := []Employee{
		{Status: EmployeeActive},
		{Status: EmployeeActive},
		{Status: EmployeeOnLeave},
		{Status: EmployeeInactive},
	}
	assert.Equal(t, EmployeeCounts{Total: 4, Active: 2, OnLeave: 1, Inactive: 1}, CountEmployees(emps))

	tasks := []Task{
		{Status: StatusPending},
		{Status: StatusInProgress},
		{Status: StatusCompleted},
		{Status: StatusCompleted},
	}
	assert.Equal(t, TaskCounts{Total: 4, Pending: 1, InProgress: 1, Completed: 2}, CountTasks(tasks))
}

func TestTaskAssigneeID(t *testing.T) {
	assert.Equal(t, "", Task{}.AssigneeID())
	id := "e-1"
	assert.Equal(t, "e-1", Task{EmployeeID: &id}.AssigneeID())
}
