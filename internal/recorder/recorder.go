package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform/clock"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go

// Storage is runs storage.
type Storage interface {
	// SaveRun inserts run without ID or updates existing one. Returns run ID.
	SaveRun(ctx context.Context, run *models.RunRecord) (int, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Stats are run counters collected by pagination loop.
type Stats struct {
	ListingsFound     int32
	ListingsNew       int32
	ListingsUpdated   int32
	ListingsFailed    int32
	ListingsDropped   int32
	PagesScraped      int32
	RequestsMade      int32
	TerminationReason *models.TerminationReason
}

// Option is custom configuration of Recorder.
type Option func(r *Recorder)

// Recorder persists run records.
type Recorder struct {
	storage Storage
	clock   Clock
}

// NewRecorder returns new Recorder.
func NewRecorder(storage Storage, ops ...Option) *Recorder {
	rec := &Recorder{
		storage: storage,
		clock:   clock.System{},
	}

	for _, op := range ops {
		op(rec)
	}

	return rec
}

// Open persists new running run of search and returns it.
func (r *Recorder) Open(ctx context.Context, searchID int) (*models.RunRecord, error) {
	run := &models.RunRecord{
		SearchID:  searchID,
		StartedAt: r.clock.Now(),
		Status:    models.RunStatusRunning,
	}

	id, err := r.storage.SaveRun(ctx, run)
	if err != nil {
		return nil, fmt.Errorf("can't open run: %w", err)
	}
	run.ID = id

	return run, nil
}

// Close finishes run with collected stats. Run fails when cause is not nil.
// It returns cause, joined with saving error if run couldn't be saved.
func (r *Recorder) Close(ctx context.Context, run *models.RunRecord, stats Stats, cause error) error {
	completedAt := r.clock.Now()

	run.CompletedAt = &completedAt
	run.DurationSeconds = lo.ToPtr(completedAt.Sub(run.StartedAt).Seconds())
	run.ListingsFound = stats.ListingsFound
	run.ListingsNew = stats.ListingsNew
	run.ListingsUpdated = stats.ListingsUpdated
	run.ListingsFailed = stats.ListingsFailed
	run.ListingsDropped = stats.ListingsDropped
	run.PagesScraped = stats.PagesScraped
	run.RequestsMade = stats.RequestsMade
	run.TerminationReason = stats.TerminationReason

	if cause != nil {
		run.Status = models.RunStatusFailed
		run.ErrorMessage = lo.ToPtr(cause.Error())
	} else {
		run.Status = models.RunStatusSuccess
	}

	_, err := r.storage.SaveRun(ctx, run)
	if err != nil && cause == nil {
		return fmt.Errorf("can't close run: %w", err)
	}

	if err != nil && cause != nil {
		return fmt.Errorf("can't close failed run: %w (fail reason: %w)", err, cause)
	}

	return cause
}

// WithClock sets Recorder's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Recorder) {
		r.clock = c
	}
}
