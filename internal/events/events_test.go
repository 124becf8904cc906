package events_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/car-tracker/internal/events"
	"github.com/MichalMitros/car-tracker/internal/events/mocks"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/platform/models/modelstesting"
	"github.com/go-faker/faker/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitListingCreated(t *testing.T) {
	stream := faker.Word()
	listing := modelstesting.FakeListing()

	client := mocks.NewStreamAdder(t)
	client.On("XAdd", mock.Anything, mock.MatchedBy(func(a *redis.XAddArgs) bool {
		return a.Stream == stream && a.MaxLen == 500 && a.Approx
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*redis.XAddArgs)
		values := a.Values.(map[string]interface{})
		assert.Equal(t, events.TypeListingCreated, values["type"], "should publish correct event type")

		var payload events.ListingCreated
		require.NoError(t, json.Unmarshal([]byte(values["payload"].(string)), &payload))
		assert.Equal(t, events.ListingCreated{
			ListingID:  listing.ID,
			SearchID:   listing.SearchID,
			ExternalID: listing.ExternalID,
			URL:        listing.URL,
			Brand:      listing.Brand,
			Model:      listing.Model,
			Price:      listing.Price,
			FirstSeen:  listing.FirstSeen,
		}, payload, "should publish listing fields")
	}).Return(redis.NewStringResult("1-0", nil)).Once()

	publisher := events.NewRedisPublisher(client, stream, events.WithMaxLen(500))
	err := publisher.ListingCreated(context.TODO(), listing)

	require.NoError(t, err, "should publish event")
}

func TestUnitPriceChanged(t *testing.T) {
	stream := faker.Word()
	listing := modelstesting.FakeListing(func(l *models.Listing) {
		l.Price = 9500
	})

	client := mocks.NewStreamAdder(t)
	client.On("XAdd", mock.Anything, mock.MatchedBy(func(a *redis.XAddArgs) bool {
		return a.Stream == stream && a.MaxLen == events.DefaultMaxLen
	})).Run(func(args mock.Arguments) {
		values := args.Get(1).(*redis.XAddArgs).Values.(map[string]interface{})
		assert.Equal(t, events.TypePriceChanged, values["type"], "should publish correct event type")

		var payload events.PriceChanged
		require.NoError(t, json.Unmarshal([]byte(values["payload"].(string)), &payload))
		assert.Equal(t, 10000.0, payload.OldPrice, "should publish old price")
		assert.Equal(t, 9500.0, payload.NewPrice, "should publish new price")
		assert.Equal(t, listing.ExternalID, payload.ExternalID, "should publish external ID")
		assert.True(t, listing.LastSeen.Equal(payload.SeenAt), "should publish last seen time")
	}).Return(redis.NewStringResult("1-0", nil)).Once()

	publisher := events.NewRedisPublisher(client, stream)
	err := publisher.PriceChanged(context.TODO(), listing, 10000)

	require.NoError(t, err, "should publish event")
}

func TestUnitPublishError(t *testing.T) {
	client := mocks.NewStreamAdder(t)
	client.On("XAdd", mock.Anything, mock.Anything).Return(redis.NewStringResult("", assert.AnError))

	publisher := events.NewRedisPublisher(client, faker.Word())

	err := publisher.ListingCreated(context.TODO(), modelstesting.FakeListing())
	require.ErrorIs(t, err, assert.AnError, "should return client error")
	assert.ErrorContains(t, err, events.TypeListingCreated, "should name event type")

	err = publisher.PriceChanged(context.TODO(), modelstesting.FakeListing(), 1)
	require.ErrorIs(t, err, assert.AnError, "should return client error")
	assert.ErrorContains(t, err, events.TypePriceChanged, "should name event type")
}

func TestIntegrationRedisPublisher(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set, skipping test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err(), "should connect to redis")

	stream := "car-tracker-test:" + faker.UUIDDigit()
	defer client.Del(ctx, stream)

	listing := modelstesting.FakeListing()
	publisher := events.NewRedisPublisher(client, stream)
	require.NoError(t, publisher.ListingCreated(ctx, listing))
	require.NoError(t, publisher.PriceChanged(ctx, listing, listing.Price+100))

	entries, err := client.XRange(ctx, stream, "-", "+").Result()
	require.NoError(t, err, "should read stream")
	require.Len(t, entries, 2, "should publish two events")
	assert.Equal(t, events.TypeListingCreated, entries[0].Values["type"])
	assert.Equal(t, events.TypePriceChanged, entries[1].Values["type"])
}
