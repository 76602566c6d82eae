package dashboard

import (
	"testing"

	"hr-dashboard-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

var people = []models.Employee{
	{ID: "1", Name: "Anu", Role: "SDE", Email: "anu@corp.io", Status: models.EmployeeActive},
	{ID: "2", Name: "Rohit", Role: "Backend", Status: models.EmployeeActive},
	{ID: "3", Name: "Sara", Role: "Designer", Email: "sara@corp.io", Status: models.EmployeeOnLeave},
}

func names(list []models.Employee) []string {
	out := []string{}
	for _, e := range list {
		out = append(out, e.Name)
	}
	return out
}

func TestFilterEmployees(t *testing.T) {
	tests := []struct {
		name   string
		search string
		status string
		want   []string
	}{
		{"no filter", "", "", []string{"Anu", "Rohit", "Sara"}},
		{"all status", "", StatusAll, []string{"Anu", "Rohit", "Sara"}},
		{"role substring", "back", StatusAll, []string{"Rohit"}},
		{"case insensitive", "BACK", "", []string{"Rohit"}},
		{"email match", "corp.io", "", []string{"Anu", "Sara"}},
		{"status only", "", "On Leave", []string{"Sara"}},
		{"search and status", "back", "On Leave", []string{}},
		{"no match", "zzz", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterEmployees(people, tt.search, tt.status)))
		})
	}
}

func TestFilterEmployees_DoesNotMutateInput(t *testing.T) {
	before := append([]models.Employee(nil), people...)
	FilterEmployees(people, "a", "Active")
	assert.Equal(t, before, people)
}

func TestStats(t *testing.T) {
	assert.Equal(t, models.EmployeeCounts{Total: 3, Active: 2, OnLeave: 1}, EmployeeStats(people))
	assert.Equal(t, models.TaskCounts{}, TaskStats(nil))
}

func TestFilterEmployees_SearchThenStatus(t *testing.T) {
	list := []models.Employee{
		{Name: "Anu", Role: "SDE", Status: models.EmployeeOnLeave},
		{Name: "Rohit", Role: "Backend", Status: models.EmployeeActive},
	}

	assert.Equal(t, []string{"Rohit"}, names(FilterEmployees(list, "back", StatusAll)))
	assert.Empty(t, FilterEmployees(list, "back", "On Leave"))
	assert.Equal(t, []string{"Anu"}, names(FilterEmployees(list, "", "On Leave")))
}
