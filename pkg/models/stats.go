package models

// EmployeeCounts aggregates employees by status
type EmployeeCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	OnLeave  int `json:"onLeave"`
	Inactive int `json:"inactive"`
}

// TaskCounts aggregates tasks by status
type TaskCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Stats is the payload of GET /stats
type Stats struct {
	Employees EmployeeCounts `json:"employees"`
	Tasks     TaskCounts     `json:"tasks"`
}

func CountEmployees(employees []Employee) EmployeeCounts {
	c := EmployeeCounts{Total: len(employees)}
	for _, e := range employees {
		switch e.Status {
		case EmployeeActive:
			c.Active++
		case EmployeeOnLeave:
			c.OnLeave++
		case EmployeeInactive:
			c.Inactive++
		}
	}
	return c
}

func CountTasks(tasks []Task) TaskCounts {
	c := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			c.Pending++
		case StatusInProgress:
			c.InProgress++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}
