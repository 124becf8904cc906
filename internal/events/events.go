package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/redis/go-redis/v9"
)

// DefaultMaxLen is approximate maximum length of events stream.
const DefaultMaxLen = 10000

const (
	// TypeListingCreated is type of event published when new listing was seen first time.
	TypeListingCreated = "listing.created"
	// TypePriceChanged is type of event published when listing price has changed.
	TypePriceChanged = "price.changed"
)

//go:generate mockery --name StreamAdder --filename stream_adder.go

// StreamAdder appends entries to Redis stream.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// ListingCreated is payload of listing.created event.
type ListingCreated struct {
	ListingID  int       `json:"listingId"`
	SearchID   int       `json:"searchId"`
	ExternalID string    `json:"externalId"`
	URL        string    `json:"url"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Price      float64   `json:"price"`
	FirstSeen  time.Time `json:"firstSeen"`
}

// PriceChanged is payload of price.changed event.
type PriceChanged struct {
	ListingID  int       `json:"listingId"`
	SearchID   int       `json:"searchId"`
	ExternalID string    `json:"externalId"`
	URL        string    `json:"url"`
	OldPrice   float64   `json:"oldPrice"`
	NewPrice   float64   `json:"newPrice"`
	SeenAt     time.Time `json:"seenAt"`
}

// RedisPublisher publishes listing events to Redis stream.
type RedisPublisher struct {
	client StreamAdder
	stream string
	maxLen int64
}

// Option is RedisPublisher option.
type Option func(*RedisPublisher)

// WithMaxLen sets approximate maximum length of events stream.
func WithMaxLen(maxLen int64) Option {
	return func(p *RedisPublisher) {
		p.maxLen = maxLen
	}
}

// NewRedisPublisher returns new RedisPublisher writing to provided stream.
func NewRedisPublisher(client StreamAdder, stream string, ops ...Option) *RedisPublisher {
	p := &RedisPublisher{
		client: client,
		stream: stream,
		maxLen: DefaultMaxLen,
	}

	for _, op := range ops {
		op(p)
	}

	return p
}

// ListingCreated publishes listing.created event.
func (p *RedisPublisher) ListingCreated(ctx context.Context, listing models.Listing) error {
	return p.publish(ctx, TypeListingCreated, ListingCreated{
		ListingID:  listing.ID,
		SearchID:   listing.SearchID,
		ExternalID: listing.ExternalID,
		URL:        listing.URL,
		Brand:      listing.Brand,
		Model:      listing.Model,
		Price:      listing.Price,
		FirstSeen:  listing.FirstSeen,
	})
}

// PriceChanged publishes price.changed event.
func (p *RedisPublisher) PriceChanged(ctx context.Context, listing models.Listing, oldPrice float64) error {
	return p.publish(ctx, TypePriceChanged, PriceChanged{
		ListingID:  listing.ID,
		SearchID:   listing.SearchID,
		ExternalID: listing.ExternalID,
		URL:        listing.URL,
		OldPrice:   oldPrice,
		NewPrice:   listing.Price,
		SeenAt:     listing.LastSeen,
	})
}

func (p *RedisPublisher) publish(ctx context.Context, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal %s event: %w", eventType, err)
	}

	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"type":    eventType,
			"payload": string(body),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("can't publish %s event: %w", eventType, err)
	}

	return nil
}
