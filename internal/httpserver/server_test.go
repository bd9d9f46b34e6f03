package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboardUC "my-daily-planner/internal/dashboard/usecase"
	"my-daily-planner/internal/model"
	"my-daily-planner/internal/store"
	"my-daily-planner/internal/task/repository"
	fileRepo "my-daily-planner/internal/task/repository/file"
	taskUC "my-daily-planner/internal/task/usecase"
	"my-daily-planner/pkg/datemath"
	"my-daily-planner/pkg/log"
)

type downRepo struct{}

func (downRepo) Load(ctx context.Context) (model.TaskMap, error) { return model.TaskMap{}, nil }
func (downRepo) Save(ctx context.Context, tm model.TaskMap) error { return repository.ErrFailedToSave }
func (downRepo) Ping(ctx context.Context) error { return repository.ErrUnavailable }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	return newTestServerWithRepo(t, fileRepo.New(afero.NewMemMapFs(), repository.FileOptions{Dir: "/data"}, l))
}

func newTestServerWithRepo(t *testing.T, repo repository.Repository) *HTTPServer {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()

	st, err := store.Open(ctx, repo, l)
	require.NoError(t, err)

	clock := datemath.NewFixedClock("WIB", 7*time.Hour).WithNow(func() time.Time {
		return time.Date(2024, 1, 10, 3, 0, 0, 0, time.UTC)
	})

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        "test",
		Environment: "development",
		Store:       st,
		TaskUC:      taskUC.New(l, st, clock),
		DashboardUC: dashboardUC.New(l, st, clock, nil),
	})
	require.NoError(t, err)
	return srv
}

func do(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.Error(t, err)

	_, err = New(nil, Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}

func TestHealthRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := do(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}
}

func TestReady_StorageDown(t *testing.T) {
	srv := newTestServerWithRepo(t, downRepo{})

	w := do(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), msgStorageUnavailable)

	w = do(srv, http.MethodGet, "/live", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlannerToDashboardFlow(t *testing.T) {
	srv := newTestServer(t)

	w := do(srv, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks", `{"text":"Menulis","planning_time":2}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var added struct {
		Data struct {
			Task struct {
				ID string `json:"id"`
			} `json:"task"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	id := added.Data.Task.ID
	require.NotEmpty(t, id)

	w = do(srv, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks/"+id+"/toggle", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(srv, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks/"+id+"/toggle", `{"actual_time":1.5}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(srv, http.MethodPost, "/api/v1/dashboard/summary", `{"range":"today"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"total_actual_done":1.5`)

	w = do(srv, http.MethodPost, "/api/v1/dashboard/analysis", `{"range":"today"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(srv, http.MethodGet, "/api/v1/planner/today", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"progress":75`)
}
