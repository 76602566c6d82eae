package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hr-dashboard-api/internal/handlers"
	"hr-dashboard-api/internal/metrics"
	"hr-dashboard-api/internal/realtime"
	"hr-dashboard-api/internal/service"
	"hr-dashboard-api/internal/store/sqlstore"
	"hr-dashboard-api/internal/testutil"
	"hr-dashboard-api/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *realtime.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	hub := realtime.NewHub(nil)
	svc, err := service.New(sqlstore.New(db), service.WithPublisher(hub))
	require.NoError(t, err)

	m := metrics.New()
	m.ObserveSubscribers(hub.Len)
	return SetupRoutes(Dependencies{
		Handler: handlers.New(svc, nil),
		Hub:     hub,
		Metrics: m,
	}), hub
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)
	for _, path := range []string{"/", "/health"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "running")
	}
}

func TestReady(t *testing.T) {
	r, _ := newRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAPIPrefixAndRootShareStore(t *testing.T) {
	r, _ := newRouter(t)

	body, _ := json.Marshal(map[string]string{"name": "Alex", "role": "Backend Engineer"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "Alex", list[0].Name)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := newRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/employees", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tasks", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `route="/tasks"`)
}

func TestWebSocketReceivesChangeEvents(t *testing.T) {
	r, hub := newRouter(t)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/tasks", "application/json", strings.NewReader(`{"title":"Ship it"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var evt models.Event
	require.NoError(t, conn.ReadJSON(&evt))
	require.Equal(t, models.EventTaskCreated, evt.Type)
	require.NotEmpty(t, evt.ID)
}
