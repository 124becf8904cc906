package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform"
	"github.com/MichalMitros/car-tracker/internal/platform/clock"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Runner --filename runner.go

const (
	// DefaultInterval is default time between scheduled runs of active searches.
	DefaultInterval = 24 * time.Hour
	// DefaultCooldown is default pause between runs of consecutive searches.
	DefaultCooldown = 5 * time.Second
	// DefaultQueueSize is default number of manual runs which can wait for execution.
	DefaultQueueSize = 16
)

// Storage reads saved searches.
type Storage interface {
	ActiveSearches(ctx context.Context) ([]models.SearchCriteria, error)
	GetSearch(ctx context.Context, id int) (*models.SearchCriteria, error)
}

// Runner runs single search.
type Runner interface {
	Run(ctx context.Context, criteria models.SearchCriteria) (*models.RunRecord, error)
}

// Sleeper waits between searches.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Option is custom configuration of Scheduler.
type Option func(s *Scheduler)

// Scheduler runs active searches periodically and manual runs on demand.
// All runs are executed one after another by single loop.
type Scheduler struct {
	storage  Storage
	runner   Runner
	sleeper  Sleeper
	interval time.Duration
	cooldown time.Duration
	enabled  bool
	logger   *zerolog.Logger

	triggers chan int
	mu       sync.Mutex
	queued   map[int]struct{}
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler returns new Scheduler. Scheduled runs are enabled by default.
func NewScheduler(storage Storage, runner Runner, logger *zerolog.Logger, ops ...Option) *Scheduler {
	s := &Scheduler{
		storage:  storage,
		runner:   runner,
		sleeper:  clock.ContextSleeper{},
		interval: DefaultInterval,
		cooldown: DefaultCooldown,
		enabled:  true,
		logger:   logger,
		triggers: make(chan int, DefaultQueueSize),
		queued:   map[int]struct{}{},
		done:     make(chan struct{}),
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// Start starts scheduling loop in background. When scheduled runs are enabled,
// all active searches are run immediately and then every interval.
// Start must be called at most once.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	go func() {
		defer close(s.done)
		s.loop(ctx)
	}()
}

// Stop stops scheduling loop and waits until current run is finished.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

// Done returns channel which is closed when scheduling loop has finished.
// It is never closed when scheduler wasn't started.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Trigger queues manual run of search.
func (s *Scheduler) Trigger(searchID int) error {
	if searchID <= 0 {
		return ErrInvalidSearchID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.queued[searchID]; ok {
		return ErrAlreadyQueued
	}

	select {
	case s.triggers <- searchID:
		s.queued[searchID] = struct{}{}
	default:
		return ErrQueueFull
	}

	return nil
}

func (s *Scheduler) loop(ctx context.Context) {
	var tick <-chan time.Time
	if s.enabled {
		s.runActive(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	} else {
		s.logger.Info().Msg("scheduled runs disabled")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			s.runActive(ctx)
		case searchID := <-s.triggers:
			s.dequeue(searchID)
			s.runSearch(ctx, searchID)
		}
	}
}

func (s *Scheduler) dequeue(searchID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queued, searchID)
}

func (s *Scheduler) runActive(ctx context.Context) {
	searches, err := s.storage.ActiveSearches(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("can't get active searches")
		return
	}

	s.logger.Info().
		Int("searches", len(searches)).
		Msg("scheduled runs started")

	for i, search := range searches {
		if i > 0 {
			if err := s.sleeper.Sleep(ctx, s.cooldown); err != nil {
				return
			}
		}
		s.run(ctx, search)
	}
}

func (s *Scheduler) runSearch(ctx context.Context, searchID int) {
	search, err := s.storage.GetSearch(ctx, searchID)
	if err != nil {
		level := zerolog.ErrorLevel
		if errors.Is(err, platform.ErrSearchNotFound) {
			level = zerolog.WarnLevel
		}
		s.logger.WithLevel(level).
			Err(err).
			Int("searchId", searchID).
			Msg("can't get search")
		return
	}

	s.run(ctx, *search)
}

func (s *Scheduler) run(ctx context.Context, search models.SearchCriteria) {
	run, err := s.runner.Run(ctx, search)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("searchId", search.ID).
			Msg("run failed")
		return
	}

	s.logger.Info().
		Int("searchId", search.ID).
		Int("runId", run.ID).
		Int32("listingsNew", run.ListingsNew).
		Int32("listingsUpdated", run.ListingsUpdated).
		Msg("run completed")
}

// WithInterval sets time between scheduled runs.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.interval = d
	}
}

// WithCooldown sets pause between runs of consecutive searches.
func WithCooldown(d time.Duration) Option {
	return func(s *Scheduler) {
		s.cooldown = d
	}
}

// WithEnabled enables or disables scheduled runs. Manual runs are always executed.
func WithEnabled(enabled bool) Option {
	return func(s *Scheduler) {
		s.enabled = enabled
	}
}

// WithSleeper sets sleeper used for cooldown.
func WithSleeper(sleeper Sleeper) Option {
	return func(s *Scheduler) {
		s.sleeper = sleeper
	}
}

// WithQueueSize sets number of manual runs which can wait for execution.
func WithQueueSize(size int) Option {
	return func(s *Scheduler) {
		s.triggers = make(chan int, size)
	}
}
