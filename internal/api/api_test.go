package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MichalMitros/car-tracker/internal/api"
	"github.com/MichalMitros/car-tracker/internal/api/mocks"
	"github.com/MichalMitros/car-tracker/internal/platform"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/platform/models/modelstesting"
	"github.com/MichalMitros/car-tracker/internal/scheduler"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitHealth(t *testing.T) {
	rec := serve(t, api.NewAPI(mocks.NewStorage(t), mocks.NewRunTrigger(t), nopLogger()), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code, "should return OK status")
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String(), "should return health status")
}

func TestUnitLatestRun(t *testing.T) {
	started := time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)
	run := &models.RunRecord{
		ID:                3,
		SearchID:          7,
		StartedAt:         started,
		CompletedAt:       lo.ToPtr(started.Add(90 * time.Second)),
		Status:            models.RunStatusSuccess,
		ListingsFound:     20,
		ListingsNew:       5,
		ListingsUpdated:   15,
		PagesScraped:      1,
		RequestsMade:      1,
		DurationSeconds:   lo.ToPtr(90.0),
		TerminationReason: lo.ToPtr(models.TerminationNoContinuationSignal),
	}

	tests := map[string]struct {
		path       string
		run        *models.RunRecord
		storageErr error
		wantCode   int
		wantBody   string
	}{
		"ok": {
			path:     "/searches/7/runs/latest",
			run:      run,
			wantCode: http.StatusOK,
			wantBody: `{
				"id": 3,
				"searchId": 7,
				"status": "success",
				"startedAt": "2024-04-01T10:00:00Z",
				"completedAt": "2024-04-01T10:01:30Z",
				"durationSeconds": 90,
				"listingsFound": 20,
				"listingsNew": 5,
				"listingsUpdated": 15,
				"listingsFailed": 0,
				"listingsDropped": 0,
				"pagesScraped": 1,
				"requestsMade": 1,
				"terminationReason": "no_continuation_signal"
			}`,
		},
		"no runs": {
			path:       "/searches/7/runs/latest",
			storageErr: platform.ErrRunNotFound,
			wantCode:   http.StatusNotFound,
			wantBody:   `{"error":"run not found"}`,
		},
		"storage error": {
			path:       "/searches/7/runs/latest",
			storageErr: assert.AnError,
			wantCode:   http.StatusInternalServerError,
			wantBody:   `{"error":"internal error"}`,
		},
		"invalid id": {
			path:     "/searches/abc/runs/latest",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid search ID: \"abc\""}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			if tt.run != nil || tt.storageErr != nil {
				storage.On("LatestRun", mock.Anything, 7).Return(tt.run, tt.storageErr).Once()
			}

			rec := serve(t, api.NewAPI(storage, mocks.NewRunTrigger(t), nopLogger()), http.MethodGet, tt.path)

			assert.Equal(t, tt.wantCode, rec.Code, "should return correct status")
			assert.JSONEq(t, tt.wantBody, rec.Body.String(), "should return correct body")
		})
	}
}

func TestUnitTriggerRun(t *testing.T) {
	search := modelstesting.FakeSearchCriteria(func(s *models.SearchCriteria) {
		s.ID = 7
	})

	tests := map[string]struct {
		path       string
		searchErr  error
		callSearch bool
		triggerErr error
		callTrig   bool
		wantCode   int
		wantError  string
	}{
		"queued": {
			path:       "/searches/7/run",
			callSearch: true,
			callTrig:   true,
			wantCode:   http.StatusAccepted,
		},
		"unknown search": {
			path:       "/searches/7/run",
			callSearch: true,
			searchErr:  platform.ErrSearchNotFound,
			wantCode:   http.StatusNotFound,
			wantError:  "search not found",
		},
		"storage error": {
			path:       "/searches/7/run",
			callSearch: true,
			searchErr:  assert.AnError,
			wantCode:   http.StatusInternalServerError,
			wantError:  "internal error",
		},
		"already queued": {
			path:       "/searches/7/run",
			callSearch: true,
			callTrig:   true,
			triggerErr: scheduler.ErrAlreadyQueued,
			wantCode:   http.StatusConflict,
			wantError:  scheduler.ErrAlreadyQueued.Error(),
		},
		"queue full": {
			path:       "/searches/7/run",
			callSearch: true,
			callTrig:   true,
			triggerErr: scheduler.ErrQueueFull,
			wantCode:   http.StatusServiceUnavailable,
			wantError:  scheduler.ErrQueueFull.Error(),
		},
		"negative id": {
			path:      "/searches/-1/run",
			wantCode:  http.StatusBadRequest,
			wantError: `invalid search ID: "-1"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			if tt.callSearch {
				var found *models.SearchCriteria
				if tt.searchErr == nil {
					found = &search
				}
				storage.On("GetSearch", mock.Anything, 7).Return(found, tt.searchErr).Once()
			}
			trigger := mocks.NewRunTrigger(t)
			if tt.callTrig {
				trigger.On("Trigger", 7).Return(tt.triggerErr).Once()
			}

			rec := serve(t, api.NewAPI(storage, trigger, nopLogger()), http.MethodPost, tt.path)

			require.Equal(t, tt.wantCode, rec.Code, "should return correct status")
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "should return JSON body")
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"], "should return error message")
				return
			}
			assert.Equal(t, map[string]any{"status": "queued", "searchId": 7.0}, body, "should confirm queued run")
		})
	}
}

func TestUnitMethodNotAllowed(t *testing.T) {
	rec := serve(t, api.NewAPI(mocks.NewStorage(t), mocks.NewRunTrigger(t), nopLogger()), http.MethodGet, "/searches/7/run")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "should reject GET on run trigger")
}

func serve(t *testing.T, a *api.API, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	return rec
}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
