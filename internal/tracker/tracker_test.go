package tracker_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MichalMitros/car-tracker/internal/extractor"
	"github.com/MichalMitros/car-tracker/internal/fetcher"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/platform/models/modelstesting"
	"github.com/MichalMitros/car-tracker/internal/query"
	"github.com/MichalMitros/car-tracker/internal/reconciler"
	"github.com/MichalMitros/car-tracker/internal/recorder"
	"github.com/MichalMitros/car-tracker/internal/tracker"
	"github.com/MichalMitros/car-tracker/internal/tracker/mocks"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const requestDelay = 3 * time.Second

var (
	builder  = query.NewBuilder("https://www.autoscout24.it")
	criteria = modelstesting.FakeSearchCriteria()
	run      = &models.RunRecord{
		ID:        17,
		SearchID:  criteria.ID,
		StartedAt: time.Date(2024, time.April, 1, 1, 1, 1, 0, time.UTC),
		Status:    models.RunStatusRunning,
	}
	errFetch                       = fmt.Errorf("%w: page", fetcher.ErrFetchExhausted)
	errShouldContainAssertErrorMsg = "should return error containing assert.AnError"
)

// page is single search results page served by mocks.
type page struct {
	fetchErr  error
	extracted extractor.Page
	outcomes  []outcome
}

type outcome struct {
	outcome reconciler.Outcome
	err     error
}

func TestUnitRun(t *testing.T) {
	listings := fakeListings(3)
	pages := []page{
		{
			extracted: extractor.Page{Listings: listings},
			outcomes: []outcome{
				{outcome: reconciler.OutcomeCreated},
				{outcome: reconciler.OutcomeUpdated},
				{outcome: reconciler.OutcomeCreated},
			},
		},
	}
	wantStats := recorder.Stats{
		ListingsFound:     3,
		ListingsNew:       2,
		ListingsUpdated:   1,
		PagesScraped:      1,
		RequestsMade:      1,
		TerminationReason: lo.ToPtr(models.TerminationNoContinuationSignal),
	}

	fet, ext, rec, recd := newMocks(t)
	mockPages(fet, ext, rec, pages)
	recd.On("Open", mock.Anything, criteria.ID).Return(run, nil)
	recd.On("Close", mock.Anything, run, wantStats, nil).Return(nil)
	sleeper := &recordingSleeper{}

	tr := newTracker(fet, ext, rec, recd, sleeper)

	gotRun, err := tr.Run(context.TODO(), criteria)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, run, gotRun, "should return run")
	assert.Empty(t, sleeper.waits, "shouldn't wait after last page")
}

func TestUnitRunTermination(t *testing.T) {
	tests := map[string]struct {
		pages     []page
		wantStats recorder.Stats
		wantWaits int
	}{
		"empty page": {
			pages: []page{
				{
					extracted: extractor.Page{Listings: fakeListings(2), HasNext: true},
					outcomes:  []outcome{{outcome: reconciler.OutcomeCreated}, {outcome: reconciler.OutcomeCreated}},
				},
				{extracted: extractor.Page{HasNext: true}},
			},
			wantStats: recorder.Stats{
				ListingsFound:     2,
				ListingsNew:       2,
				PagesScraped:      1,
				RequestsMade:      2,
				TerminationReason: lo.ToPtr(models.TerminationNoMoreListings),
			},
			wantWaits: 1,
		},
		"only dropped containers": {
			pages: []page{
				{extracted: extractor.Page{Dropped: 4, HasNext: true}},
			},
			wantStats: recorder.Stats{
				ListingsDropped:   4,
				RequestsMade:      1,
				TerminationReason: lo.ToPtr(models.TerminationNoMoreListings),
			},
		},
		"fetch failed": {
			pages: []page{
				{
					extracted: extractor.Page{Listings: fakeListings(1), Dropped: 1, HasNext: true},
					outcomes:  []outcome{{outcome: reconciler.OutcomeUpdated}},
				},
				{fetchErr: errFetch},
			},
			wantStats: recorder.Stats{
				ListingsFound:     1,
				ListingsUpdated:   1,
				ListingsDropped:   1,
				PagesScraped:      1,
				RequestsMade:      2,
				TerminationReason: lo.ToPtr(models.TerminationFetchFailed),
			},
			wantWaits: 1,
		},
		"listing errors counted": {
			pages: []page{
				{
					extracted: extractor.Page{Listings: fakeListings(3)},
					outcomes: []outcome{
						{outcome: reconciler.OutcomeCreated},
						{err: fmt.Errorf("%w x: %w", reconciler.ErrReconcile, assert.AnError)},
						{outcome: reconciler.OutcomeUpdated},
					},
				},
			},
			wantStats: recorder.Stats{
				ListingsFound:     2,
				ListingsNew:       1,
				ListingsUpdated:   1,
				ListingsFailed:    1,
				PagesScraped:      1,
				RequestsMade:      1,
				TerminationReason: lo.ToPtr(models.TerminationNoContinuationSignal),
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fet, ext, rec, recd := newMocks(t)
			mockPages(fet, ext, rec, tt.pages)
			recd.On("Open", mock.Anything, criteria.ID).Return(run, nil)
			recd.On("Close", mock.Anything, run, tt.wantStats, nil).Return(nil)
			sleeper := &recordingSleeper{}

			tr := newTracker(fet, ext, rec, recd, sleeper)

			_, err := tr.Run(context.TODO(), criteria)

			require.NoError(t, err, "shouldn't return any error")
			assert.Len(t, sleeper.waits, tt.wantWaits, "should wait between pages")
			for _, wait := range sleeper.waits {
				assert.Equal(t, requestDelay, wait, "should wait configured delay")
			}
		})
	}
}

func TestUnitRunPageLimit(t *testing.T) {
	listing := fakeListings(1)
	wantStats := recorder.Stats{
		ListingsFound:     tracker.DefaultMaxPages,
		ListingsUpdated:   tracker.DefaultMaxPages,
		PagesScraped:      tracker.DefaultMaxPages,
		RequestsMade:      tracker.DefaultMaxPages,
		TerminationReason: lo.ToPtr(models.TerminationPageLimitReached),
	}

	fet, ext, rec, recd := newMocks(t)
	fet.On("FetchPage", mock.Anything, mock.AnythingOfType("string")).Return([]byte("page"), nil)
	ext.On("Extract", []byte("page")).Return(extractor.Page{Listings: listing, HasNext: true})
	rec.On("Reconcile", mock.Anything, listing[0], criteria.ID).Return(reconciler.OutcomeUpdated, nil)
	recd.On("Open", mock.Anything, criteria.ID).Return(run, nil)
	recd.On("Close", mock.Anything, run, wantStats, nil).Return(nil)
	sleeper := &recordingSleeper{}

	tr := newTracker(fet, ext, rec, recd, sleeper)

	_, err := tr.Run(context.TODO(), criteria)

	require.NoError(t, err, "shouldn't return any error")
	fet.AssertNumberOfCalls(t, "FetchPage", tracker.DefaultMaxPages)
	fet.AssertCalled(t, "FetchPage", mock.Anything, pageURL(tracker.DefaultMaxPages))
	assert.Len(t, sleeper.waits, tracker.DefaultMaxPages-1, "should wait only between pages")
}

func TestUnitRunFatalError(t *testing.T) {
	t.Run("canceled while waiting", func(t *testing.T) {
		fet, ext, rec, recd := newMocks(t)
		mockPages(fet, ext, rec, []page{
			{
				extracted: extractor.Page{Listings: fakeListings(1), HasNext: true},
				outcomes:  []outcome{{outcome: reconciler.OutcomeCreated}},
			},
		})
		recd.On("Open", mock.Anything, criteria.ID).Return(run, nil)
		mockCloseWithCause(recd, context.Canceled)
		sleeper := &recordingSleeper{err: context.Canceled}

		tr := newTracker(fet, ext, rec, recd, sleeper)

		gotRun, err := tr.Run(context.TODO(), criteria)

		require.ErrorIs(t, err, context.Canceled, "should return cancellation error")
		assert.Equal(t, run, gotRun, "should return failed run")
	})

	t.Run("canceled while fetching", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fet, ext, rec, recd := newMocks(t)
		fet.On("FetchPage", mock.Anything, pageURL(1)).Return(nil, context.Canceled)
		recd.On("Open", mock.Anything, criteria.ID).Return(run, nil)
		mockCloseWithCause(recd, context.Canceled)

		tr := newTracker(fet, ext, rec, recd, &recordingSleeper{})

		_, err := tr.Run(ctx, criteria)

		require.ErrorIs(t, err, context.Canceled, "should return cancellation error")
	})

	t.Run("unexpected reconcile error", func(t *testing.T) {
		fet, ext, rec, recd := newMocks(t)
		mockPages(fet, ext, rec, []page{
			{
				extracted: extractor.Page{Listings: fakeListings(1), HasNext: true},
				outcomes:  []outcome{{err: assert.AnError}},
			},
		})
		recd.On("Open", mock.Anything, criteria.ID).Return(run, nil)
		mockCloseWithCause(recd, assert.AnError)

		tr := newTracker(fet, ext, rec, recd, &recordingSleeper{})

		_, err := tr.Run(context.TODO(), criteria)

		require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	})
}

func TestUnitRunOpenError(t *testing.T) {
	fet, ext, rec, recd := newMocks(t)
	recd.On("Open", mock.Anything, criteria.ID).Return(nil, assert.AnError)

	tr := newTracker(fet, ext, rec, recd, &recordingSleeper{})

	gotRun, err := tr.Run(context.TODO(), criteria)

	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	assert.Nil(t, gotRun, "shouldn't return run")
}

func newMocks(t *testing.T) (*mocks.Fetcher, *mocks.Extractor, *mocks.Reconciler, *mocks.Recorder) {
	return mocks.NewFetcher(t), mocks.NewExtractor(t), mocks.NewReconciler(t), mocks.NewRecorder(t)
}

func newTracker(
	fet *mocks.Fetcher,
	ext *mocks.Extractor,
	rec *mocks.Reconciler,
	recd *mocks.Recorder,
	sleeper tracker.Sleeper,
) *tracker.Tracker {
	logger := zerolog.Nop()
	return tracker.NewTracker(
		fet,
		ext,
		rec,
		recd,
		builder,
		&logger,
		tracker.WithSleeper(sleeper),
		tracker.WithRequestDelay(requestDelay),
	)
}

// mockPages mocks fetching, extraction and reconciliation of consecutive pages.
func mockPages(fet *mocks.Fetcher, ext *mocks.Extractor, rec *mocks.Reconciler, pages []page) {
	for ix, p := range pages {
		body := []byte(fmt.Sprintf("page-%d", ix+1))
		if p.fetchErr != nil {
			fet.On("FetchPage", mock.Anything, pageURL(ix+1)).Return(nil, p.fetchErr).Once()
			continue
		}
		fet.On("FetchPage", mock.Anything, pageURL(ix+1)).Return(body, nil).Once()
		ext.On("Extract", body).Return(p.extracted).Once()
		for jx, o := range p.outcomes {
			rec.On("Reconcile", mock.Anything, p.extracted.Listings[jx], criteria.ID).Return(o.outcome, o.err).Once()
		}
	}
}

func mockCloseWithCause(recd *mocks.Recorder, cause error) {
	recd.On("Close", mock.Anything, run, mock.Anything, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, cause)
	})).Return(func(_ context.Context, _ *models.RunRecord, _ recorder.Stats, err error) error {
		return err
	})
}

func pageURL(page int) string {
	return query.PageURL(builder.SearchURL(criteria), page)
}

func fakeListings(n int) []models.RawListing {
	listings := make([]models.RawListing, 0, n)
	for range n {
		listings = append(listings, modelstesting.FakeRawListing())
	}
	return listings
}

type recordingSleeper struct {
	waits []time.Duration
	err   error
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return s.err
}
