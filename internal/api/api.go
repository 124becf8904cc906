package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/scheduler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name RunTrigger --filename run_trigger.go

// Storage reads searches and runs.
type Storage interface {
	GetSearch(ctx context.Context, id int) (*models.SearchCriteria, error)
	LatestRun(ctx context.Context, searchID int) (*models.RunRecord, error)
}

// RunTrigger queues manual runs.
type RunTrigger interface {
	Trigger(searchID int) error
}

// API serves runs status and manual run triggers over HTTP.
type API struct {
	storage Storage
	trigger RunTrigger
	logger  *zerolog.Logger
}

// NewAPI returns new API.
func NewAPI(storage Storage, trigger RunTrigger, logger *zerolog.Logger) *API {
	return &API{
		storage: storage,
		trigger: trigger,
		logger:  logger,
	}
}

// Routes returns API router.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/searches/{id}", func(r chi.Router) {
		r.Get("/runs/latest", a.latestRun)
		r.Post("/run", a.triggerRun)
	})

	return r
}

type runResponse struct {
	ID                int                       `json:"id"`
	SearchID          int                       `json:"searchId"`
	Status            models.RunStatus          `json:"status"`
	StartedAt         time.Time                 `json:"startedAt"`
	CompletedAt       *time.Time                `json:"completedAt,omitempty"`
	DurationSeconds   *float64                  `json:"durationSeconds,omitempty"`
	ListingsFound     int32                     `json:"listingsFound"`
	ListingsNew       int32                     `json:"listingsNew"`
	ListingsUpdated   int32                     `json:"listingsUpdated"`
	ListingsFailed    int32                     `json:"listingsFailed"`
	ListingsDropped   int32                     `json:"listingsDropped"`
	PagesScraped      int32                     `json:"pagesScraped"`
	RequestsMade      int32                     `json:"requestsMade"`
	TerminationReason *models.TerminationReason `json:"terminationReason,omitempty"`
	ErrorMessage      *string                   `json:"errorMessage,omitempty"`
}

func (a *API) latestRun(w http.ResponseWriter, r *http.Request) {
	searchID, err := searchIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	run, err := a.storage.LatestRun(r.Context(), searchID)
	if errors.Is(err, platform.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		a.internalError(w, err, searchID)
		return
	}

	writeJSON(w, http.StatusOK, runResponse{
		ID:                run.ID,
		SearchID:          run.SearchID,
		Status:            run.Status,
		StartedAt:         run.StartedAt,
		CompletedAt:       run.CompletedAt,
		DurationSeconds:   run.DurationSeconds,
		ListingsFound:     run.ListingsFound,
		ListingsNew:       run.ListingsNew,
		ListingsUpdated:   run.ListingsUpdated,
		ListingsFailed:    run.ListingsFailed,
		ListingsDropped:   run.ListingsDropped,
		PagesScraped:      run.PagesScraped,
		RequestsMade:      run.RequestsMade,
		TerminationReason: run.TerminationReason,
		ErrorMessage:      run.ErrorMessage,
	})
}

func (a *API) triggerRun(w http.ResponseWriter, r *http.Request) {
	searchID, err := searchIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	_, err = a.storage.GetSearch(r.Context(), searchID)
	if errors.Is(err, platform.ErrSearchNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		a.internalError(w, err, searchID)
		return
	}

	err = a.trigger.Trigger(searchID)
	switch {
	case errors.Is(err, scheduler.ErrAlreadyQueued):
		writeError(w, http.StatusConflict, err)
		return
	case errors.Is(err, scheduler.ErrQueueFull):
		writeError(w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		a.internalError(w, err, searchID)
		return
	}

	a.logger.Info().
		Int("searchId", searchID).
		Msg("manual run queued")

	writeJSON(w, http.StatusAccepted, map[string]any{"status": "queued", "searchId": searchID})
}

func (a *API) internalError(w http.ResponseWriter, err error, searchID int) {
	a.logger.Error().
		Err(err).
		Int("searchId", searchID).
		Msg("can't handle request")
	writeError(w, http.StatusInternalServerError, errors.New("internal error"))
}

func searchIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", scheduler.ErrInvalidSearchID, chi.URLParam(r, "id"))
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
