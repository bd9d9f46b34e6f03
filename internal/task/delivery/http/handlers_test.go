package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"my-daily-planner/internal/middleware"
	"my-daily-planner/internal/model"
	"my-daily-planner/internal/sheet"
	"my-daily-planner/internal/task"
	"my-daily-planner/pkg/log"
	"my-daily-planner/pkg/response"
)

type mockUseCase struct {
	addIn      task.AddInput
	toggleIn   task.ToggleInput
	calendarIn task.CalendarInput
	importName string
	importBody string
	exportErr  error
	err        error
}

func (m *mockUseCase) day(key string) task.DayOutput {
	return task.DayOutput{
		DayKey:        key,
		Weekday:       "Rabu",
		DateLabel:     "10 Januari 2024",
		IsToday:       true,
		Tasks:         []model.Task{{ID: "t1", Text: "Tulis laporan", PlanningTime: 2, ActualTime: 1}},
		TotalPlanning: 2,
		TotalActual:   1,
		Progress:      50,
	}
}

func (m *mockUseCase) Today(ctx context.Context) (task.DayOutput, error) {
	return m.day("2024-01-10"), m.err
}

func (m *mockUseCase) ListDay(ctx context.Context, dayKey string) (task.DayOutput, error) {
	if m.err != nil {
		return task.DayOutput{}, m.err
	}
	return m.day(dayKey), nil
}

func (m *mockUseCase) Add(ctx context.Context, in task.AddInput) (task.TaskOutput, error) {
	m.addIn = in
	if m.err != nil {
		return task.TaskOutput{}, m.err
	}
	return task.TaskOutput{Task: model.Task{ID: "t2", Text: in.Text, PlanningTime: in.PlanningTime}, Day: m.day(in.DayKey)}, nil
}

func (m *mockUseCase) Update(ctx context.Context, in task.UpdateInput) (task.TaskOutput, error) {
	if m.err != nil {
		return task.TaskOutput{}, m.err
	}
	return task.TaskOutput{Task: model.Task{ID: in.ID, Text: in.Text}, Day: m.day(in.DayKey)}, nil
}

func (m *mockUseCase) Toggle(ctx context.Context, in task.ToggleInput) (task.TaskOutput, error) {
	m.toggleIn = in
	if m.err != nil {
		return task.TaskOutput{}, m.err
	}
	return task.TaskOutput{Task: model.Task{ID: in.ID, Completed: true}, Day: m.day(in.DayKey)}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, dayKey, id string) (task.DayOutput, error) {
	if m.err != nil {
		return task.DayOutput{}, m.err
	}
	return m.day(dayKey), nil
}

func (m *mockUseCase) Calendar(ctx context.Context, in task.CalendarInput) (task.CalendarOutput, error) {
	m.calendarIn = in
	if m.err != nil {
		return task.CalendarOutput{}, m.err
	}
	return task.CalendarOutput{Month: "2024-02", Label: "Februari 2024", LeadingBlanks: 4}, nil
}

func (m *mockUseCase) Export(ctx context.Context, month string) (task.ExportOutput, error) {
	if m.exportErr != nil {
		return task.ExportOutput{}, m.exportErr
	}
	return task.ExportOutput{FileName: sheet.ExportFileName, Content: []byte("xlsx")}, nil
}

func (m *mockUseCase) Import(ctx context.Context, in task.ImportInput) (task.ImportOutput, error) {
	m.importName = in.FileName
	body, _ := io.ReadAll(in.File)
	m.importBody = string(body)
	if m.err != nil {
		return task.ImportOutput{}, m.err
	}
	return task.ImportOutput{Accepted: 3, Skipped: 1, Days: []string{"2024-01-05"}}, nil
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	RegisterRoutes(r.Group("/api/v1/planner"), h, middleware.New(log.NewNop(), middleware.Config{}))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdd(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks", `{"text":"Baca buku","planning_time":1.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if uc.addIn.DayKey != "2024-01-10" || uc.addIn.Text != "Baca buku" || uc.addIn.PlanningTime != 1.5 {
		t.Errorf("input = %+v", uc.addIn)
	}

	var resp struct {
		Data taskMutationResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.Task.ID != "t2" || resp.Data.Day.Progress != 50 || len(resp.Data.Day.Tasks) != 1 {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestAdd_MissingText(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doJSON(r, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks", `{"planning_time":1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestToggle_OptionalBody(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := doJSON(r, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks/t1/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if uc.toggleIn.ID != "t1" || uc.toggleIn.ActualTime != nil || uc.toggleIn.ResultLink != nil {
		t.Errorf("input = %+v", uc.toggleIn)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks/t1/toggle", `{"actual_time":2,"result_link":"https://x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.toggleIn.ActualTime == nil || *uc.toggleIn.ActualTime != 2 {
		t.Errorf("actual time = %v", uc.toggleIn.ActualTime)
	}
	if uc.toggleIn.ResultLink == nil || *uc.toggleIn.ResultLink != "https://x" {
		t.Errorf("result link = %v", uc.toggleIn.ResultLink)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"Empty text", task.ErrEmptyText, http.MethodPut, "/api/v1/planner/days/2024-01-10/tasks/t1", `{"text":" "}`, http.StatusBadRequest},
		{"Negative duration", task.ErrInvalidDuration, http.MethodPut, "/api/v1/planner/days/2024-01-10/tasks/t1", `{"text":"a","planning_time":-1}`, http.StatusBadRequest},
		{"Actual time required", task.ErrActualTimeRequired, http.MethodPost, "/api/v1/planner/days/2024-01-10/tasks/t1/toggle", "", http.StatusUnprocessableEntity},
		{"Not found", task.ErrTaskNotFound, http.MethodDelete, "/api/v1/planner/days/2024-01-10/tasks/nope", "", http.StatusNotFound},
		{"Bad day key", task.ErrInvalidDayKey, http.MethodGet, "/api/v1/planner/days/10-01-2024", "", http.StatusBadRequest},
		{"Bad month", task.ErrInvalidMonth, http.MethodGet, "/api/v1/planner/calendar?month=2024", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{err: tt.err})
			w := doJSON(r, tt.method, tt.path, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			var resp response.Resp
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Message == "" {
				t.Errorf("expected an error message")
			}
		})
	}
}

func TestCalendar_QueryBinding(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	w := doJSON(r, http.MethodGet, "/api/v1/planner/calendar?month=2024-02&selected=2024-02-14", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.calendarIn.Month != "2024-02" || uc.calendarIn.Selected != "2024-02-14" {
		t.Errorf("input = %+v", uc.calendarIn)
	}
}

func TestExport(t *testing.T) {
	r := newRouter(&mockUseCase{})

	w := doJSON(r, http.MethodGet, "/api/v1/planner/export?month=2024-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="My-Daily-Planner-Tasks.xlsx"` {
		t.Errorf("Content-Disposition = %s", got)
	}
	if got := w.Header().Get("Content-Type"); got != sheet.ContentType {
		t.Errorf("Content-Type = %s", got)
	}
}

func TestExport_NothingToExport(t *testing.T) {
	r := newRouter(&mockUseCase{exportErr: sheet.ErrNothingToExport})

	w := doJSON(r, http.MethodGet, "/api/v1/planner/export", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestImport(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(uc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "tugas.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write([]byte("payload"))
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if uc.importName != "tugas.xlsx" || uc.importBody != "payload" {
		t.Errorf("import got name=%q body=%q", uc.importName, uc.importBody)
	}

	var resp struct {
		Data importResp `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Accepted != 3 || resp.Data.Skipped != 1 {
		t.Errorf("payload = %+v", resp.Data)
	}
}

func TestImport_Errors(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		r := newRouter(&mockUseCase{})
		w := doJSON(r, http.MethodPost, "/api/v1/planner/import", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	for _, tt := range []struct {
		err  error
		want int
	}{
		{sheet.ErrUnsupportedFormat, http.StatusUnsupportedMediaType},
		{sheet.ErrNoValidRows, http.StatusUnprocessableEntity},
		{sheet.ErrUnreadableFile, http.StatusBadRequest},
	} {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r := newRouter(&mockUseCase{err: tt.err})

			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			fw, _ := mw.CreateFormFile("file", "tugas.csv")
			_, _ = fw.Write([]byte("x"))
			_ = mw.Close()

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/planner/import", &buf)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
