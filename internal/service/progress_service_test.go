package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"alcyxob/runplan-app/internal/catalog"
	"alcyxob/runplan-app/internal/domain"
	"alcyxob/runplan-app/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

// fakeFileStorage records uploads in memory and hands out deterministic URLs.
type fakeFileStorage struct {
	objects    map[string][]byte
	failUpload error
	failURL    error
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{objects: make(map[string][]byte)}
}

func (f *fakeFileStorage) UploadObject(_ context.Context, objectKey, _ string, body []byte) error {
	if f.failUpload != nil {
		return f.failUpload
	}
	f.objects[objectKey] = body
	return nil
}

func (f *fakeFileStorage) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	if f.failURL != nil {
		return "", f.failURL
	}
	return "https://storage.test/" + objectKey, nil
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	delete(f.objects, objectKey)
	return nil
}

func newTestProgressService(t *testing.T) (ProgressService, PlanService, *fakeFileStorage) {
	t.Helper()
	planSvc := NewPlanService(memory.NewActivePlanRepository(), catalog.Default(), func() time.Time { return fixedNow })
	files := newFakeFileStorage()
	progressSvc := NewProgressService(planSvc, files, func() time.Time { return fixedNow })
	return progressSvc, planSvc, files
}

func TestOverviewAggregates(t *testing.T) {
	progressSvc, planSvc, _ := newTestProgressService(t)
	ctx := context.Background()

	_, err := planSvc.StartPlan(ctx, "c25k")
	require.NoError(t, err)
	_, err = planSvc.ToggleWorkout(ctx, 1, 1, "")
	require.NoError(t, err)
	_, err = planSvc.ToggleWorkout(ctx, 1, 3, "")
	require.NoError(t, err)

	// Ten days into the plan puts the athlete in week 2.
	at := fixedNow.AddDate(0, 0, 10)
	overview, err := progressSvc.Overview(ctx, at)
	require.NoError(t, err)
	require.NotNil(t, overview)

	require.Equal(t, "c25k", overview.PlanID)
	require.Equal(t, "Couch to 5K", overview.PlanName)
	require.Equal(t, 2, overview.CurrentWeek)
	require.Equal(t, 8, overview.TotalWeeks)
	require.Equal(t, 2, overview.Completed)
	require.Equal(t, 28, overview.Total)
	require.Equal(t, 7, overview.Percentage) // round(100*2/28)
	require.NotEmpty(t, overview.WeeklyVolume)
}

func TestOverviewWithoutActivePlan(t *testing.T) {
	progressSvc, _, _ := newTestProgressService(t)

	overview, err := progressSvc.Overview(context.Background(), fixedNow)
	require.NoError(t, err)
	require.Nil(t, overview)
}

func TestCalendarEmptyMonthIsNotNoPlan(t *testing.T) {
	progressSvc, planSvc, _ := newTestProgressService(t)
	ctx := context.Background()

	_, err := planSvc.StartPlan(ctx, "c25k")
	require.NoError(t, err)

	// The 8-week plan starting 2026-04-06 ends before December.
	entries, err := progressSvc.Calendar(ctx, 2026, time.December)
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)

	// The whole-plan view covers every scheduled slot.
	entries, err = progressSvc.Calendar(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 8*7)
}

func TestCalendarWithoutActivePlan(t *testing.T) {
	progressSvc, _, _ := newTestProgressService(t)

	entries, err := progressSvc.Calendar(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Nil(t, entries)
}

func TestExportSnapshotRoundTrip(t *testing.T) {
	progressSvc, planSvc, files := newTestProgressService(t)
	ctx := context.Background()

	_, err := planSvc.StartPlan(ctx, "c25k")
	require.NoError(t, err)
	_, err = planSvc.ToggleWorkout(ctx, 1, 1, "park run")
	require.NoError(t, err)

	export, err := progressSvc.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(export.ObjectKey, "snapshots/"))
	require.True(t, strings.HasSuffix(export.ObjectKey, ".json"))
	require.Equal(t, "https://storage.test/"+export.ObjectKey, export.DownloadURL)
	require.Equal(t, fixedNow.Add(15*time.Minute), export.ExpiresAt)

	// The uploaded object is the progress record itself.
	var uploaded domain.ActivePlan
	require.NoError(t, json.Unmarshal(files.objects[export.ObjectKey], &uploaded))
	require.Equal(t, "c25k", uploaded.PlanID)
	require.True(t, uploaded.IsCompleted(1, 1))

	// A second export gets its own object key.
	second, err := progressSvc.ExportSnapshot(ctx)
	require.NoError(t, err)
	require.NotEqual(t, export.ObjectKey, second.ObjectKey)
	require.Len(t, files.objects, 2)
}

func TestExportSnapshotErrors(t *testing.T) {
	progressSvc, planSvc, files := newTestProgressService(t)
	ctx := context.Background()

	_, err := progressSvc.ExportSnapshot(ctx)
	require.ErrorIs(t, err, ErrNoActivePlan)

	_, err = planSvc.StartPlan(ctx, "c25k")
	require.NoError(t, err)

	files.failUpload = errors.New("bucket gone")
	_, err = progressSvc.ExportSnapshot(ctx)
	require.ErrorIs(t, err, ErrSnapshotUpload)

	files.failUpload = nil
	files.failURL = errors.New("presign broken")
	_, err = progressSvc.ExportSnapshot(ctx)
	require.ErrorIs(t, err, ErrSnapshotURLError)
}
