package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform"
	"github.com/MichalMitros/car-tracker/internal/platform/clock"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name EventPublisher --filename event_publisher.go

// Storage is listings and price history storage.
type Storage interface {
	// FindListingByExternalID returns listing with provided marketplace ID or platform.ErrListingNotFound.
	FindListingByExternalID(ctx context.Context, externalID string) (*models.Listing, error)
	// SaveListing inserts listing without ID or updates existing one. Returns listing ID.
	SaveListing(ctx context.Context, listing *models.Listing) (int, error)
	// SaveListingWithPrice saves listing and appends price history entry of saved listing atomically.
	SaveListingWithPrice(ctx context.Context, listing *models.Listing, entry models.PriceHistoryEntry) (int, error)
}

// EventPublisher is notified about new listings and price changes.
type EventPublisher interface {
	ListingCreated(ctx context.Context, listing models.Listing) error
	PriceChanged(ctx context.Context, listing models.Listing, oldPrice float64) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Outcome is result of listing reconciliation.
type Outcome int

const (
	// OutcomeCreated means that listing was seen for the first time.
	OutcomeCreated Outcome = iota + 1
	// OutcomeUpdated means that known listing was updated.
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// Option is custom configuration of Reconciler.
type Option func(r *Reconciler)

// Reconciler merges extracted listings into stored listings and their price history.
type Reconciler struct {
	storage   Storage
	clock     Clock
	publisher EventPublisher
	logger    *zerolog.Logger
}

// NewReconciler returns new Reconciler.
func NewReconciler(storage Storage, logger *zerolog.Logger, ops ...Option) *Reconciler {
	rec := &Reconciler{
		storage: storage,
		clock:   clock.System{},
		logger:  logger,
	}

	for _, op := range ops {
		op(rec)
	}

	return rec
}

// Reconcile creates listing seen for the first time or updates known one.
// Returned errors wrap ErrReconcile.
func (r *Reconciler) Reconcile(ctx context.Context, raw models.RawListing, searchID int) (Outcome, error) {
	existing, err := r.storage.FindListingByExternalID(ctx, raw.ExternalID)
	if errors.Is(err, platform.ErrListingNotFound) {
		if err := r.create(ctx, raw, searchID); err != nil {
			return 0, fmt.Errorf("%w %s: %w", ErrReconcile, raw.ExternalID, err)
		}
		return OutcomeCreated, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w %s: can't find listing: %w", ErrReconcile, raw.ExternalID, err)
	}

	if err := r.update(ctx, existing, raw); err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrReconcile, raw.ExternalID, err)
	}
	return OutcomeUpdated, nil
}

func (r *Reconciler) create(ctx context.Context, raw models.RawListing, searchID int) error {
	now := r.clock.Now()
	listing := models.Listing{
		SearchID:     searchID,
		ExternalID:   raw.ExternalID,
		URL:          lo.FromPtr(raw.URL),
		Brand:        lo.FromPtr(raw.Brand),
		Model:        lo.FromPtr(raw.Model),
		Variant:      raw.Variant,
		Year:         raw.Year,
		Mileage:      raw.Mileage,
		Price:        lo.FromPtr(raw.Price),
		FuelType:     raw.FuelType,
		PowerCV:      raw.PowerCV,
		PowerKW:      raw.PowerKW,
		Transmission: raw.Transmission,
		FirstSeen:    now,
		LastSeen:     now,
		IsAvailable:  true,
		RawData:      raw.Snapshot(),
	}

	id, err := r.storage.SaveListingWithPrice(ctx, &listing, models.PriceHistoryEntry{
		Price:      listing.Price,
		Mileage:    listing.Mileage,
		RecordedAt: now,
	})
	if err != nil {
		return fmt.Errorf("can't create listing: %w", err)
	}
	listing.ID = id

	if r.publisher != nil {
		if err := r.publisher.ListingCreated(ctx, listing); err != nil {
			r.logger.Warn().Err(err).Str("externalId", listing.ExternalID).Msg("can't publish created listing")
		}
	}

	return nil
}

func (r *Reconciler) update(ctx context.Context, listing *models.Listing, raw models.RawListing) error {
	now := r.clock.Now()
	oldPrice := listing.Price

	if raw.URL != nil {
		listing.URL = *raw.URL
	}
	if raw.Variant != nil {
		listing.Variant = raw.Variant
	}
	if raw.Mileage != nil {
		listing.Mileage = raw.Mileage
	}
	if raw.Price != nil {
		listing.Price = *raw.Price
	}
	if now.After(listing.LastSeen) {
		listing.LastSeen = now
	}
	listing.RawData = raw.Snapshot()

	if listing.Price == oldPrice {
		if _, err := r.storage.SaveListing(ctx, listing); err != nil {
			return fmt.Errorf("can't update listing: %w", err)
		}
		return nil
	}

	_, err := r.storage.SaveListingWithPrice(ctx, listing, models.PriceHistoryEntry{
		ListingID:  listing.ID,
		Price:      listing.Price,
		Mileage:    listing.Mileage,
		RecordedAt: now,
	})
	if err != nil {
		return fmt.Errorf("can't update listing with changed price: %w", err)
	}

	if r.publisher != nil {
		if err := r.publisher.PriceChanged(ctx, *listing, oldPrice); err != nil {
			r.logger.Warn().Err(err).Str("externalId", listing.ExternalID).Msg("can't publish price change")
		}
	}

	return nil
}

// WithClock sets Reconciler's custom Clock.
func WithClock(c Clock) Option {
	return func(r *Reconciler) {
		r.clock = c
	}
}

// WithPublisher sets Reconciler's EventPublisher.
func WithPublisher(p EventPublisher) Option {
	return func(r *Reconciler) {
		r.publisher = p
	}
}
