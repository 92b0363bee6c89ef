package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"alcyxob/runplan-app/internal/domain"
	"alcyxob/runplan-app/internal/progress"
	"alcyxob/runplan-app/internal/storage"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrNoActivePlan     = errors.New("no active plan")
	ErrSnapshotUpload   = errors.New("failed to upload progress snapshot")
	ErrSnapshotURLError = errors.New("failed to generate snapshot download URL")
)

// snapshotExpiry is how long an exported snapshot's download URL stays valid.
const snapshotExpiry = 15 * time.Minute

// Overview is the derived progress summary for the active plan.
type Overview struct {
	PlanID       string                `json:"planId"`
	PlanName     string                `json:"planName"`
	StartDate    domain.Date           `json:"startDate"`
	CurrentWeek  int                   `json:"currentWeek"`
	TotalWeeks   int                   `json:"totalWeeks"`
	Completed    int                   `json:"completed"`
	Total        int                   `json:"total"`
	Percentage   int                   `json:"percentage"`
	StreakDays   int                   `json:"streakDays"`
	WeeklyVolume []progress.WeekVolume `json:"weeklyVolume"`
}

// SnapshotExport describes an uploaded progress backup.
type SnapshotExport struct {
	ObjectKey   string    `json:"objectKey"`
	DownloadURL string    `json:"downloadUrl"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ProgressService derives read-only views from the active plan and handles
// progress snapshot exports. All date-dependent derivations evaluate at the
// caller-supplied instant.
type ProgressService interface {
	// Overview returns the progress summary, or (nil, nil) when no plan is
	// active or its catalog entry is gone.
	Overview(ctx context.Context, at time.Time) (*Overview, error)

	// Calendar returns the dated schedule of the active plan, optionally
	// restricted to one month (month == 0 means the whole plan). Returns
	// (nil, nil) when no plan is active.
	Calendar(ctx context.Context, year int, month time.Month) ([]progress.Entry, error)

	// ExportSnapshot uploads the raw progress record to object storage and
	// returns a short-lived download URL. ErrNoActivePlan when none is active.
	ExportSnapshot(ctx context.Context) (*SnapshotExport, error)
}

// progressService implements ProgressService.
type progressService struct {
	planService PlanService
	fileStorage storage.FileStorage
	now         func() time.Time
}

// NewProgressService creates a new progress service. nowFn may be nil, in
// which case time.Now is used (ExportSnapshot timestamps).
func NewProgressService(planService PlanService, fileStorage storage.FileStorage, nowFn func() time.Time) ProgressService {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &progressService{
		planService: planService,
		fileStorage: fileStorage,
		now:         nowFn,
	}
}

// Overview computes every derived aggregate in one pass over the record.
func (s *progressService) Overview(ctx context.Context, at time.Time) (*Overview, error) {
	view, err := s.planService.ActivePlan(ctx)
	if err != nil {
		return nil, err
	}
	if view == nil || view.Plan == nil {
		return nil, nil
	}

	today := domain.DateOf(at)
	completed, total, percentage := progress.Completion(view.Active, view.Plan)
	return &Overview{
		PlanID:       view.Plan.ID,
		PlanName:     view.Plan.Name,
		StartDate:    view.Active.StartDate,
		CurrentWeek:  progress.CurrentWeek(view.Active, view.Plan, today),
		TotalWeeks:   view.Plan.Weeks,
		Completed:    completed,
		Total:        total,
		Percentage:   percentage,
		StreakDays:   progress.Streak(view.Active, today),
		WeeklyVolume: progress.WeeklyVolumeSeries(view.Active, view.Plan, today, 4),
	}, nil
}

// Calendar maps the schedule onto absolute dates for the month-grid view.
func (s *progressService) Calendar(ctx context.Context, year int, month time.Month) ([]progress.Entry, error) {
	view, err := s.planService.ActivePlan(ctx)
	if err != nil {
		return nil, err
	}
	if view == nil || view.Plan == nil {
		return nil, nil
	}
	var entries []progress.Entry
	if month == 0 {
		entries = progress.Entries(view.Active, view.Plan)
	} else {
		entries = progress.EntriesInMonth(view.Active, view.Plan, year, int(month))
	}
	if entries == nil {
		// A plan is active but nothing falls in the requested month; an empty
		// list distinguishes this from the "no active plan" nil result.
		entries = []progress.Entry{}
	}
	return entries, nil
}

// ExportSnapshot uploads the active plan record as a JSON object and returns
// a presigned download URL for it.
func (s *progressService) ExportSnapshot(ctx context.Context) (*SnapshotExport, error) {
	view, err := s.planService.ActivePlan(ctx)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrNoActivePlan
	}

	payload, err := json.Marshal(view.Active)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUpload, err)
	}

	// Random object keys so successive exports never overwrite each other.
	objectKey := path.Join("snapshots", uuid.NewString()+".json")
	if err := s.fileStorage.UploadObject(ctx, objectKey, "application/json", payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotUpload, err)
	}

	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, snapshotExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotURLError, err)
	}

	return &SnapshotExport{
		ObjectKey:   objectKey,
		DownloadURL: downloadURL,
		ExpiresAt:   s.now().Add(snapshotExpiry),
	}, nil
}
