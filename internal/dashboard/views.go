package dashboard

import (
	"strings"

	"hr-dashboard-api/pkg/models"
)

// StatusAll disables the status filter.
const StatusAll = "All"

// FilterEmployees returns the employees whose name, role or email contains search
// (case-insensitive) and whose status equals status. An empty or "All" status matches
// every employee. The input slice is not modified.
func FilterEmployees(list []models.Employee, search, status string) []models.Employee {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Employee, 0, len(list))
	for _, e := range list {
		if status != "" && status != StatusAll && string(e.Status) != status {
			continue
		}
		if needle != "" && !matches(e, needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matches(e models.Employee, needle string) bool {
	for _, field := range []string{e.Name, e.Role, e.Email} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func EmployeeStats(list []models.Employee) models.EmployeeCounts {
	return models.CountEmployees(list)
}

func TaskStats(list []models.Task) models.TaskCounts {
	return models.CountTasks(list)
}
