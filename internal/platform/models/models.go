package models

import (
	"encoding/json"
	"time"
)

// RunStatus is status of tracking run.
type RunStatus string

const (
	// RunStatusRunning is status of run which hasn't finished yet.
	RunStatusRunning RunStatus = "running"
	// RunStatusSuccess is status of run which finished normally.
	RunStatusSuccess RunStatus = "success"
	// RunStatusFailed is status of run which finished with unrecoverable error.
	RunStatusFailed RunStatus = "failed"
)

// TerminationReason tells why pagination loop stopped.
type TerminationReason string

const (
	// TerminationNoMoreListings means that page had no listings.
	TerminationNoMoreListings TerminationReason = "no_more_listings"
	// TerminationNoContinuationSignal means that page had no next page indicator.
	TerminationNoContinuationSignal TerminationReason = "no_continuation_signal"
	// TerminationFetchFailed means that page couldn't be fetched.
	TerminationFetchFailed TerminationReason = "fetch_failed"
	// TerminationPageLimitReached means that pages limit was reached.
	TerminationPageLimitReached TerminationReason = "page_limit_reached"
)

// SearchCriteria is saved search model. Nil fields are not used for filtering.
type SearchCriteria struct {
	ID           int
	Name         string
	Brand        *string
	Model        *string
	FuelType     *string
	Transmission *string
	BodyType     *string
	Color        *string
	Province     *string
	YearMin      *int
	YearMax      *int
	MileageMin   *int
	MileageMax   *int
	PriceMin     *float64
	PriceMax     *float64
	PowerMin     *int
	PowerMax     *int
	IsActive     bool
	CreatedAt    time.Time
}

// RawListing is listing extracted from search results page before reconciliation.
// Nil fields couldn't be extracted.
type RawListing struct {
	ExternalID   string   `json:"externalId"`
	URL          *string  `json:"url,omitempty"`
	Brand        *string  `json:"brand,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Variant      *string  `json:"variant,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Mileage      *int     `json:"mileage,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	FuelType     *string  `json:"fuelType,omitempty"`
	PowerCV      *int     `json:"powerCv,omitempty"`
	PowerKW      *int     `json:"powerKw,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
}

// Snapshot returns JSON snapshot of raw listing with extracted fields only.
func (l RawListing) Snapshot() json.RawMessage {
	raw, err := json.Marshal(l)
	if err != nil {
		return nil
	}
	return raw
}

// Listing is tracked vehicle offer model.
type Listing struct {
	ID           int
	SearchID     int
	ExternalID   string
	URL          string
	Brand        string
	Model        string
	Variant      *string
	Year         *int
	Mileage      *int
	Price        float64
	FuelType     *string
	PowerCV      *int
	PowerKW      *int
	Transmission *string
	BodyType     *string
	Color        *string
	Province     *string
	Region       *string
	FirstSeen    time.Time
	LastSeen     time.Time
	IsAvailable  bool
	RawData      json.RawMessage
}

// PriceHistoryEntry is single observed listing price.
type PriceHistoryEntry struct {
	ID         int
	ListingID  int
	Price      float64
	Mileage    *int
	RecordedAt time.Time
}

// RunRecord is tracking run telemetry model.
type RunRecord struct {
	ID                int
	SearchID          int
	StartedAt         time.Time
	CompletedAt       *time.Time
	Status            RunStatus
	ListingsFound     int32
	ListingsNew       int32
	ListingsUpdated   int32
	ListingsFailed    int32
	ListingsDropped   int32
	PagesScraped      int32
	RequestsMade      int32
	DurationSeconds   *float64
	TerminationReason *TerminationReason
	ErrorMessage      *string
}
