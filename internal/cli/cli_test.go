package cli

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"hr-dashboard-api/internal/dashboard"
	"hr-dashboard-api/internal/handlers"
	"hr-dashboard-api/internal/realtime"
	"hr-dashboard-api/internal/routes"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/internal/store/sqlstore"
	"hr-dashboard-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	svc, err := service.New(sqlstore.New(db))
	require.NoError(t, err)
	srv := httptest.NewServer(routes.SetupRoutes(routes.Dependencies{
		Handler: handlers.New(svc, nil),
		Hub:     realtime.NewHub(nil),
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func execute(t *testing.T, server string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd("test")
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--server", server}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCmd_hasSubcommands(t *testing.T) {
	root := NewRootCmd("")
	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"employees", "tasks", "stats", "watch"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	assert.Equal(t, "dev", root.Version)
	assert.NotNil(t, root.PersistentFlags().Lookup("server"))
}

func TestEmployeesAddListFilter(t *testing.T) {
	server := newServer(t)

	_, _, err := execute(t, server, "employees", "add", "--name", "Anu", "--role", "SDE")
	require.NoError(t, err)
	out, _, err := execute(t, server, "employees", "add", "--name", "Rohit", "--role", "Backend")
	require.NoError(t, err)
	assert.Contains(t, out, "Rohit")

	out, _, err = execute(t, server, "employees", "list", "--search", "back")
	require.NoError(t, err)
	assert.Contains(t, out, "Rohit")
	assert.NotContains(t, out, "Anu")

	out, _, err = execute(t, server, "employees", "list", "--search", "back", "--status", "On Leave")
	require.NoError(t, err)
	assert.NotContains(t, out, "Rohit")
	assert.Contains(t, out, "NAME")

	out, _, err = execute(t, server, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Employees: 2 total, 2 active")
}

func TestEmployeesAdd_BlankFieldAlerts(t *testing.T) {
	server := newServer(t)
	_, errOut, err := execute(t, server, "employees", "add", "--name", "  ", "--role", "SDE")
	require.ErrorIs(t, err, ErrReported)
	assert.Contains(t, errOut, dashboard.EmployeeFieldsAlert)
}

func TestEmployeesRm_NotFoundAlerts(t *testing.T) {
	server := newServer(t)
	_, errOut, err := execute(t, server, "employees", "rm", "missing")
	require.ErrorIs(t, err, ErrReported)
	assert.Contains(t, errOut, dashboard.FailureAlert)
}

func TestTasksLifecycle(t *testing.T) {
	server := newServer(t)

	out, _, err := execute(t, server, "tasks", "add", "--title", "Deploy", "--priority", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "Pending")

	out, _, err = execute(t, server, "tasks", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Deploy")

	_, errOut, err := execute(t, server, "tasks", "add", "--title", " ")
	require.ErrorIs(t, err, ErrReported)
	assert.Contains(t, errOut, dashboard.TaskTitleAlert)
}

func TestResolveServer(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(ServerEnv, "")

	got, err := ResolveServer("")
	require.NoError(t, err)
	assert.Equal(t, DefaultServer, got)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hrctl"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hrctl", "config.yaml"), []byte("server: http://file:9000\n"), 0o644))
	got, err = ResolveServer("")
	require.NoError(t, err)
	assert.Equal(t, "http://file:9000", got)

	t.Setenv(ServerEnv, "http://env:8000")
	got, err = ResolveServer("")
	require.NoError(t, err)
	assert.Equal(t, "http://env:8000", got)

	got, err = ResolveServer("http://flag:7000")
	require.NoError(t, err)
	assert.Equal(t, "http://flag:7000", got)
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o644))
	_, err := LoadFileConfig(path)
	assert.Error(t, err)
}
