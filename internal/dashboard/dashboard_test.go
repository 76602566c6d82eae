package dashboard

import (
	"context"
	"errors"
	"testing"

	"hr-dashboard-api/pkg/client"
	"hr-dashboard-api/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

type fakeAPI struct {
	employees []models.Employee
	tasks     []models.Task
	err       error
	calls     int

	lastEmployeePatch client.EmployeePatch
	lastTaskPatch     client.TaskPatch
}

func (f *fakeAPI) ListEmployees(context.Context) ([]models.Employee, error) {
	f.calls++
	return f.employees, f.err
}

func (f *fakeAPI) CreateEmployee(_ context.Context, in client.EmployeeFields) (models.Employee, error) {
	f.calls++
	if f.err != nil {
		return models.Employee{}, f.err
	}
	return models.Employee{ID: "e-new", Name: in.Name, Role: in.Role, Email: in.Email, Status: models.EmployeeActive}, nil
}

func (f *fakeAPI) UpdateEmployee(_ context.Context, id string, in client.EmployeePatch) (models.Employee, error) {
	f.calls++
	f.lastEmployeePatch = in
	if f.err != nil {
		return models.Employee{}, f.err
	}
	e := models.Employee{ID: id, Status: models.EmployeeActive}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Role != nil {
		e.Role = *in.Role
	}
	return e, nil
}

func (f *fakeAPI) DeleteEmployee(_ context.Context, id string) (models.Employee, error) {
	f.calls++
	if f.err != nil {
		return models.Employee{}, f.err
	}
	return models.Employee{ID: id}, nil
}

func (f *fakeAPI) ListTasks(context.Context) ([]models.Task, error) {
	f.calls++
	return f.tasks, f.err
}

func (f *fakeAPI) CreateTask(_ context.Context, in client.TaskFields) (models.Task, error) {
	f.calls++
	if f.err != nil {
		return models.Task{}, f.err
	}
	return models.Task{ID: "t-new", Title: in.Title, Status: models.StatusPending, Priority: models.PriorityMedium}, nil
}

func (f *fakeAPI) UpdateTask(_ context.Context, id string, in client.TaskPatch) (models.Task, error) {
	f.calls++
	f.lastTaskPatch = in
	if f.err != nil {
		return models.Task{}, f.err
	}
	t := models.Task{ID: id, Status: models.StatusPending}
	if in.Title != nil {
		t.Title = *in.Title
	}
	return t, nil
}

func (f *fakeAPI) DeleteTask(_ context.Context, id string) (models.Task, error) {
	f.calls++
	if f.err != nil {
		return models.Task{}, f.err
	}
	return models.Task{ID: id}, nil
}

type recorder struct{ msgs []string }

func (r *recorder) Alert(msg string) { r.msgs = append(r.msgs, msg) }

func seeded() *fakeAPI {
	return &fakeAPI{
		employees: []models.Employee{
			{ID: "e1", Name: "Anu", Role: "SDE", Status: models.EmployeeActive},
			{ID: "e2", Name: "Rohit", Role: "Backend", Status: models.EmployeeActive},
		},
		tasks: []models.Task{
			{ID: "t1", Title: "Deploy", Status: models.StatusPending},
			{ID: "t2", Title: "Review", Status: models.StatusCompleted},
		},
	}
}

func newLoaded(t *testing.T) (*Dashboard, *fakeAPI, *recorder) {
	t.Helper()
	api := seeded()
	rec := &recorder{}
	d := New(api, rec, nil)
	require.NoError(t, d.Load(context.Background()))
	api.calls = 0
	return d, api, rec
}

func TestLoad_ReplacesMirrors(t *testing.T) {
	d, _, rec := newLoaded(t)
	assert.Len(t, d.Employees, 2)
	assert.Len(t, d.Tasks, 2)
	assert.Empty(t, rec.msgs)
}

func TestLoad_FailureKeepsState(t *testing.T) {
	d, api, rec := newLoaded(t)
	api.err = errDown

	require.Error(t, d.Load(context.Background()))
	assert.Len(t, d.Employees, 2)
	assert.Equal(t, []string{FailureAlert}, rec.msgs)
}

func TestCreateEmployee_Prepends(t *testing.T) {
	d, _, _ := newLoaded(t)
	created, err := d.CreateEmployee(context.Background(), client.EmployeeFields{Name: "Meera", Role: "QA"})
	require.NoError(t, err)
	require.Len(t, d.Employees, 3)
	assert.Equal(t, created.ID, d.Employees[0].ID)
}

func TestUpdateEmployee_ReplacesByID(t *testing.T) {
	d, _, _ := newLoaded(t)
	name := "Rohit K"
	_, err := d.UpdateEmployee(context.Background(), "e2", client.EmployeePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Rohit K", d.Employees[1].Name)
	assert.Equal(t, "Anu", d.Employees[0].Name)
}

func TestDeleteEmployee_RemovesByID(t *testing.T) {
	d, _, _ := newLoaded(t)
	d.SelectedID = "e1"
	require.NoError(t, d.DeleteEmployee(context.Background(), "e1"))
	require.Len(t, d.Employees, 1)
	assert.Equal(t, "e2", d.Employees[0].ID)
	assert.Empty(t, d.SelectedID)
}

func TestMutationFailure_SameAlertStateUnchanged(t *testing.T) {
	d, api, rec := newLoaded(t)
	api.err = errDown
	ctx := context.Background()
	before := append([]models.Task(nil), d.Tasks...)

	_, err := d.CreateTask(ctx, client.TaskFields{Title: "x"})
	require.Error(t, err)
	require.Error(t, d.DeleteTask(ctx, "t1"))
	_, err = d.UpdateEmployee(ctx, "e1", client.EmployeePatch{})
	require.Error(t, err)

	assert.Equal(t, before, d.Tasks)
	assert.Len(t, d.Employees, 2)
	assert.Equal(t, []string{FailureAlert, FailureAlert, FailureAlert}, rec.msgs)
}

func TestTaskMutations(t *testing.T) {
	d, _, _ := newLoaded(t)
	ctx := context.Background()

	_, err := d.CreateTask(ctx, client.TaskFields{Title: "Onboard"})
	require.NoError(t, err)
	assert.Equal(t, "t-new", d.Tasks[0].ID)

	title := "Deploy v2"
	_, err = d.UpdateTask(ctx, "t1", client.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Deploy v2", d.Tasks[1].Title)

	require.NoError(t, d.DeleteTask(ctx, "t2"))
	assert.Len(t, d.Tasks, 2)
}

func TestSubmitEmployee_BlankFieldsAlertWithoutRequest(t *testing.T) {
	d, api, rec := newLoaded(t)
	require.NoError(t, d.EmployeeForm.OpenCreate())

	_, err := d.SubmitEmployee(context.Background(), client.EmployeeFields{Name: "   ", Role: "SDE"})
	require.ErrorIs(t, err, ErrRequiredFields)
	assert.Equal(t, 0, api.calls)
	assert.Equal(t, []string{EmployeeFieldsAlert}, rec.msgs)
	assert.True(t, d.EmployeeForm.IsOpen())
}

func TestSubmitEmployee_CreateClosesForm(t *testing.T) {
	d, api, _ := newLoaded(t)
	require.NoError(t, d.EmployeeForm.OpenCreate())

	_, err := d.SubmitEmployee(context.Background(), client.EmployeeFields{Name: "Meera", Role: "QA"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, FormClosed, d.EmployeeForm.Mode)
	assert.Len(t, d.Employees, 3)
}

func TestSubmitEmployee_EditUsesEditingID(t *testing.T) {
	d, api, _ := newLoaded(t)
	require.NoError(t, d.EmployeeForm.OpenEdit("e1"))

	_, err := d.SubmitEmployee(context.Background(), client.EmployeeFields{Name: "Anu S", Role: "SDE II"})
	require.NoError(t, err)
	require.NotNil(t, api.lastEmployeePatch.Name)
	assert.Equal(t, "Anu S", *api.lastEmployeePatch.Name)
	assert.Nil(t, api.lastEmployeePatch.Status)
	assert.Equal(t, "Anu S", d.Employees[0].Name)
	assert.Equal(t, FormState{}, d.EmployeeForm)
}

func TestSubmitTask_FailureStillClosesForm(t *testing.T) {
	d, api, rec := newLoaded(t)
	api.err = errDown
	require.NoError(t, d.TaskForm.OpenEdit("t1"))

	_, err := d.SubmitTask(context.Background(), client.TaskFields{Title: "Deploy"})
	require.Error(t, err)
	assert.Equal(t, FormState{}, d.TaskForm)
	assert.Equal(t, []string{FailureAlert}, rec.msgs)
	assert.Equal(t, "Deploy", d.Tasks[0].Title)
}

func TestSubmitTask_BlankTitle(t *testing.T) {
	d, api, rec := newLoaded(t)
	require.NoError(t, d.TaskForm.OpenCreate())

	_, err := d.SubmitTask(context.Background(), client.TaskFields{Title: "\t"})
	require.ErrorIs(t, err, ErrRequiredFields)
	assert.Equal(t, 0, api.calls)
	assert.Equal(t, []string{TaskTitleAlert}, rec.msgs)
}

func TestSubmit_ClosedFormRejected(t *testing.T) {
	d, api, _ := newLoaded(t)
	_, err := d.SubmitTask(context.Background(), client.TaskFields{Title: "x"})
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 0, api.calls)
}

func TestDashboardStats(t *testing.T) {
	d, _, _ := newLoaded(t)
	assert.Equal(t, models.EmployeeCounts{Total: 2, Active: 2}, d.EmployeeStats())
	assert.Equal(t, models.TaskCounts{Total: 2, Pending: 1, Completed: 1}, d.TaskStats())
}

func TestVisibleEmployees(t *testing.T) {
	d, _, _ := newLoaded(t)
	d.Search = "back"
	got := d.VisibleEmployees()
	require.Len(t, got, 1)
	assert.Equal(t, "Rohit", got[0].Name)

	d.StatusFilter = string(models.EmployeeOnLeave)
	assert.Empty(t, d.VisibleEmployees())
}
