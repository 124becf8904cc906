package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/car-tracker/internal/extractor"
	"github.com/MichalMitros/car-tracker/internal/platform/clock"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/query"
	"github.com/MichalMitros/car-tracker/internal/reconciler"
	"github.com/MichalMitros/car-tracker/internal/recorder"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Extractor --filename extractor.go
//go:generate mockery --name Reconciler --filename reconciler.go
//go:generate mockery --name Recorder --filename recorder.go

const (
	// DefaultMaxPages is default limit of pages fetched in single run.
	DefaultMaxPages = 50
	// DefaultRequestDelay is default delay between fetching consecutive pages.
	DefaultRequestDelay = time.Second
)

// Fetcher fetches search results pages.
type Fetcher interface {
	FetchPage(ctx context.Context, url string) ([]byte, error)
}

// Extractor extracts listings from search results pages.
type Extractor interface {
	Extract(body []byte) extractor.Page
}

// Reconciler merges extracted listings into storage.
type Reconciler interface {
	Reconcile(ctx context.Context, raw models.RawListing, searchID int) (reconciler.Outcome, error)
}

// Recorder persists runs.
type Recorder interface {
	// Open persists new running run of search.
	Open(ctx context.Context, searchID int) (*models.RunRecord, error)
	// Close finishes run, with failed status when cause is not nil. Returns cause when it's not nil.
	Close(ctx context.Context, run *models.RunRecord, stats recorder.Stats, cause error) error
}

// QueryBuilder builds marketplace search URLs.
type QueryBuilder interface {
	SearchURL(criteria models.SearchCriteria) string
}

// Sleeper waits between pages.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Option is custom configuration of Tracker.
type Option func(t *Tracker)

// Tracker runs paginated searches and reconciles found listings.
type Tracker struct {
	fetcher      Fetcher
	extractor    Extractor
	reconciler   Reconciler
	recorder     Recorder
	queryBuilder QueryBuilder
	sleeper      Sleeper
	maxPages     int
	requestDelay time.Duration
	logger       *zerolog.Logger
}

// NewTracker returns new Tracker.
func NewTracker(
	pageFetcher Fetcher,
	pageExtractor Extractor,
	listingReconciler Reconciler,
	runRecorder Recorder,
	queryBuilder QueryBuilder,
	logger *zerolog.Logger,
	ops ...Option,
) *Tracker {
	tr := &Tracker{
		fetcher:      pageFetcher,
		extractor:    pageExtractor,
		reconciler:   listingReconciler,
		recorder:     runRecorder,
		queryBuilder: queryBuilder,
		sleeper:      clock.ContextSleeper{},
		maxPages:     DefaultMaxPages,
		requestDelay: DefaultRequestDelay,
		logger:       logger,
	}

	for _, op := range ops {
		op(tr)
	}

	return tr
}

// Run fetches search results pages of criteria one by one and reconciles their listings.
// Returned run is finished with success even if some page couldn't be fetched.
// Unexpected errors finish run as failed and are returned together with the run.
func (t *Tracker) Run(ctx context.Context, criteria models.SearchCriteria) (*models.RunRecord, error) {
	run, err := t.recorder.Open(ctx, criteria.ID)
	if err != nil {
		return nil, fmt.Errorf("can't start run: %w", err)
	}

	logger := t.logger.With().Int("searchId", criteria.ID).Int("runId", run.ID).Logger()
	logger.Info().Msg("run started")

	stats, err := t.paginate(ctx, &logger, criteria)

	// run must be closed even when ctx is already canceled.
	err = t.recorder.Close(context.WithoutCancel(ctx), run, stats, err)
	if err != nil {
		logger.Error().Err(err).Msg("run failed")
		return run, err
	}

	logger.Info().
		Int32("found", stats.ListingsFound).
		Int32("new", stats.ListingsNew).
		Int32("updated", stats.ListingsUpdated).
		Int32("failed", stats.ListingsFailed).
		Int32("pages", stats.PagesScraped).
		Str("reason", string(lo.FromPtr(stats.TerminationReason))).
		Msg("run finished")

	return run, nil
}

func (t *Tracker) paginate(
	ctx context.Context,
	logger *zerolog.Logger,
	criteria models.SearchCriteria,
) (recorder.Stats, error) {
	var stats recorder.Stats
	stop := func(reason models.TerminationReason) (recorder.Stats, error) {
		stats.TerminationReason = &reason
		return stats, nil
	}

	searchURL := t.queryBuilder.SearchURL(criteria)

	for page := 1; ; page++ {
		pageURL := query.PageURL(searchURL, page)
		pageLogger := logger.With().Int("page", page).Str("url", pageURL).Logger()

		stats.RequestsMade++
		body, err := t.fetcher.FetchPage(ctx, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return stats, fmt.Errorf("can't fetch page %d: %w", page, err)
			}
			pageLogger.Warn().Err(err).Msg("can't fetch page, stopping")
			return stop(models.TerminationFetchFailed)
		}

		extracted := t.extractor.Extract(body)
		stats.ListingsDropped += int32(extracted.Dropped)
		if extracted.Dropped > 0 {
			pageLogger.Warn().Int("dropped", extracted.Dropped).Msg("listings without ID dropped")
		}

		if len(extracted.Listings) == 0 {
			pageLogger.Debug().Msg("no listings on page")
			return stop(models.TerminationNoMoreListings)
		}

		if err := t.reconcilePage(ctx, &pageLogger, extracted.Listings, criteria.ID, &stats); err != nil {
			return stats, err
		}
		stats.PagesScraped++

		pageLogger.Debug().
			Int("listings", len(extracted.Listings)).
			Int("misses", len(extracted.Misses)).
			Bool("hasNext", extracted.HasNext).
			Msg("page scraped")

		if !extracted.HasNext {
			return stop(models.TerminationNoContinuationSignal)
		}

		if page >= t.maxPages {
			return stop(models.TerminationPageLimitReached)
		}

		if err := t.sleeper.Sleep(ctx, t.requestDelay); err != nil {
			return stats, fmt.Errorf("can't wait for next page: %w", err)
		}
	}
}

func (t *Tracker) reconcilePage(
	ctx context.Context,
	logger *zerolog.Logger,
	listings []models.RawListing,
	searchID int,
	stats *recorder.Stats,
) error {
	for ix := range listings {
		outcome, err := t.reconciler.Reconcile(ctx, listings[ix], searchID)
		if err != nil {
			if ctx.Err() != nil || !errors.Is(err, reconciler.ErrReconcile) {
				return fmt.Errorf("can't reconcile page: %w", err)
			}
			logger.Warn().Err(err).Str("externalId", listings[ix].ExternalID).Msg("listing skipped")
			stats.ListingsFailed++
			continue
		}

		stats.ListingsFound++
		switch outcome {
		case reconciler.OutcomeCreated:
			stats.ListingsNew++
		case reconciler.OutcomeUpdated:
			stats.ListingsUpdated++
		}
	}

	return nil
}

// WithSleeper sets Tracker's custom Sleeper.
func WithSleeper(s Sleeper) Option {
	return func(t *Tracker) {
		t.sleeper = s
	}
}

// WithMaxPages sets Tracker's limit of pages in single run.
func WithMaxPages(pages int) Option {
	return func(t *Tracker) {
		if pages > 0 {
			t.maxPages = pages
		}
	}
}

// WithRequestDelay sets Tracker's delay between pages.
func WithRequestDelay(d time.Duration) Option {
	return func(t *Tracker) {
		if d >= 0 {
			t.requestDelay = d
		}
	}
}
