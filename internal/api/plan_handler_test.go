package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alcyxob/runplan-app/internal/catalog"
	"alcyxob/runplan-app/internal/repository/memory"
	"alcyxob/runplan-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

// clockMonday is the fixed "now" for every request: Monday 2026-04-06.
var clockMonday = time.Date(2026, time.April, 6, 9, 0, 0, 0, time.UTC)

// stubFileStorage satisfies storage.FileStorage for the export route.
type stubFileStorage struct {
	objects map[string][]byte
}

func (s *stubFileStorage) UploadObject(_ context.Context, objectKey, _ string, body []byte) error {
	s.objects[objectKey] = body
	return nil
}

func (s *stubFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://storage.test/" + objectKey, nil
}

func (s *stubFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(s.objects, objectKey)
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	nowFn := func() time.Time { return clockMonday }
	cat := catalog.Default()

	authService := service.NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)
	planService := service.NewPlanService(memory.NewActivePlanRepository(), cat, nowFn)
	progressService := service.NewProgressService(planService, &stubFileStorage{objects: make(map[string][]byte)}, nowFn)

	router := gin.New()
	SetupRoutes(router, testSecret, cat, authService, planService, progressService, nowFn)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates an account and returns a valid bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "",
		`{"name":"Ada","email":"ada@example.com","password":"correct horse"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"ada@example.com","password":"correct horse"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/plans", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/plans", "not-a-jwt", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAndGetPlans(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doRequest(t, router, http.MethodGet, "/api/v1/plans", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []PlanSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 6)
	require.Equal(t, "c25k", summaries[0].ID)

	w = doRequest(t, router, http.MethodGet, "/api/v1/plans/marathon", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/plans/nope", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestActivePlanLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Nothing active yet.
	w := doRequest(t, router, http.MethodGet, "/api/v1/plan", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	// Unknown plan IDs are rejected before touching the store.
	w = doRequest(t, router, http.MethodPost, "/api/v1/plan", token, `{"planId":"nope"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/plan", token, `{"planId":"c25k"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/api/v1/plan", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ActivePlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "c25k", resp.Active.PlanID)
	require.Equal(t, "2026-04-06", resp.Active.StartDate.String())
	require.NotNil(t, resp.Plan)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/plan", token, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	// Cancelling twice is fine, and the plan really is gone.
	w = doRequest(t, router, http.MethodDelete, "/api/v1/plan", token, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doRequest(t, router, http.MethodGet, "/api/v1/plan", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleWorkoutRoute(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Toggling with no active plan is a silent no-op.
	w := doRequest(t, router, http.MethodPost, "/api/v1/plan/workouts/toggle", token,
		`{"weekNumber":1,"day":1}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/plan", token, `{"planId":"c25k"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/plan/workouts/toggle", token,
		`{"weekNumber":1,"day":1,"notes":"park run"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var toggle ToggleWorkoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggle))
	require.True(t, toggle.Completed)
	require.NotNil(t, toggle.CompletedAt)

	w = doRequest(t, router, http.MethodGet, "/api/v1/plan/workouts/1/1", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"completed":true}`, w.Body.String())

	// Toggle off.
	w = doRequest(t, router, http.MethodPost, "/api/v1/plan/workouts/toggle", token,
		`{"weekNumber":1,"day":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggle))
	require.False(t, toggle.Completed)
	require.Nil(t, toggle.CompletedAt)

	// Day 8 fails request validation.
	w = doRequest(t, router, http.MethodPost, "/api/v1/plan/workouts/toggle", token,
		`{"weekNumber":1,"day":8}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/plan/workouts/0/1", token, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgressRoutes(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doRequest(t, router, http.MethodGet, "/api/v1/progress", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/plan", token, `{"planId":"c25k"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, router, http.MethodPost, "/api/v1/plan/workouts/toggle", token,
		`{"weekNumber":1,"day":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/progress", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var overview service.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	require.Equal(t, "c25k", overview.PlanID)
	require.Equal(t, 1, overview.CurrentWeek)
	require.Equal(t, 1, overview.Completed)
	require.Equal(t, 28, overview.Total)

	// Whole-plan calendar, then a month slice.
	w = doRequest(t, router, http.MethodGet, "/api/v1/calendar", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/calendar?month=2026-04", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/calendar?month=April", token, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportSnapshotRoute(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doRequest(t, router, http.MethodPost, "/api/v1/progress/export", token, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/plan", token, `{"planId":"c25k"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/progress/export", token, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var export service.SnapshotExport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &export))
	require.True(t, strings.HasPrefix(export.ObjectKey, "snapshots/"))
	require.True(t, strings.HasPrefix(export.DownloadURL, "https://storage.test/"))
}
