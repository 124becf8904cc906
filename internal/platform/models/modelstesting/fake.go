package modelstesting

import (
	"math/rand"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeRawListing returns models.RawListing with fake data in every field.
func FakeRawListing(ops ...func(l *models.RawListing)) models.RawListing {
	listing := models.RawListing{
		ExternalID:   faker.UUIDHyphenated(),
		URL:          lo.ToPtr(faker.URL()),
		Brand:        lo.ToPtr(faker.Word()),
		Model:        lo.ToPtr(faker.Word()),
		Variant:      lo.ToPtr(faker.Sentence()),
		Year:         lo.ToPtr(1990 + rand.Intn(35)),
		Mileage:      lo.ToPtr(rand.Intn(300000)),
		Price:        lo.ToPtr(float64(1000 + rand.Intn(50000))),
		FuelType:     lo.ToPtr("Diesel"),
		PowerCV:      lo.ToPtr(60 + rand.Intn(200)),
		PowerKW:      lo.ToPtr(40 + rand.Intn(150)),
		Transmission: lo.ToPtr("Manuale"),
	}

	for _, op := range ops {
		op(&listing)
	}

	return listing
}

// FakeListing returns models.Listing with fake data.
func FakeListing(ops ...func(l *models.Listing)) models.Listing {
	seen := time.Date(2024, time.April, 1, 1, 1, 1, 0, time.UTC)
	listing := models.Listing{
		ID:           rand.Intn(100000) + 1,
		SearchID:     rand.Intn(100) + 1,
		ExternalID:   faker.UUIDHyphenated(),
		URL:          faker.URL(),
		Brand:        faker.Word(),
		Model:        faker.Word(),
		Variant:      lo.ToPtr(faker.Sentence()),
		Year:         lo.ToPtr(1990 + rand.Intn(35)),
		Mileage:      lo.ToPtr(rand.Intn(300000)),
		Price:        float64(1000 + rand.Intn(50000)),
		FuelType:     lo.ToPtr("Benzina"),
		Transmission: lo.ToPtr("Automatico"),
		FirstSeen:    seen,
		LastSeen:     seen,
		IsAvailable:  true,
	}

	for _, op := range ops {
		op(&listing)
	}

	return listing
}

// FakeSearchCriteria returns models.SearchCriteria with brand and model set.
func FakeSearchCriteria(ops ...func(s *models.SearchCriteria)) models.SearchCriteria {
	search := models.SearchCriteria{
		ID:       rand.Intn(100) + 1,
		Name:     faker.Word(),
		Brand:    lo.ToPtr(faker.Word()),
		Model:    lo.ToPtr(faker.Word()),
		IsActive: true,
	}

	for _, op := range ops {
		op(&search)
	}

	return search
}
