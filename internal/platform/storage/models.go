package storage

import (
	"encoding/json"
	"time"

	"github.com/MichalMitros/car-tracker/internal/platform/models"

	pgmodels "github.com/MichalMitros/car-tracker/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toAppSearch(search *pgmodels.Search) *models.SearchCriteria {
	return &models.SearchCriteria{
		ID:           int(search.ID),
		Name:         search.Name,
		Brand:        search.Brand,
		Model:        search.Model,
		FuelType:     search.FuelType,
		Transmission: search.Transmission,
		BodyType:     search.BodyType,
		Color:        search.Color,
		Province:     search.Province,
		YearMin:      toIntPtr(search.YearMin),
		YearMax:      toIntPtr(search.YearMax),
		MileageMin:   toIntPtr(search.MileageMin),
		MileageMax:   toIntPtr(search.MileageMax),
		PriceMin:     search.PriceMin,
		PriceMax:     search.PriceMax,
		PowerMin:     toIntPtr(search.PowerMin),
		PowerMax:     toIntPtr(search.PowerMax),
		IsActive:     search.IsActive,
		CreatedAt:    search.CreatedAt,
	}
}

// ToDBSearch converts models.SearchCriteria into postgres search model.
func ToDBSearch(search *models.SearchCriteria) *pgmodels.Search {
	createdAt := search.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &pgmodels.Search{
		ID:           int32(search.ID),
		Name:         search.Name,
		Brand:        search.Brand,
		Model:        search.Model,
		FuelType:     search.FuelType,
		Transmission: search.Transmission,
		BodyType:     search.BodyType,
		Color:        search.Color,
		Province:     search.Province,
		YearMin:      toInt32Ptr(search.YearMin),
		YearMax:      toInt32Ptr(search.YearMax),
		MileageMin:   toInt32Ptr(search.MileageMin),
		MileageMax:   toInt32Ptr(search.MileageMax),
		PriceMin:     search.PriceMin,
		PriceMax:     search.PriceMax,
		PowerMin:     toInt32Ptr(search.PowerMin),
		PowerMax:     toInt32Ptr(search.PowerMax),
		IsActive:     search.IsActive,
		CreatedAt:    createdAt,
	}
}

func toDBListing(listing *models.Listing) *pgmodels.Listing {
	var rawData *string
	if len(listing.RawData) > 0 {
		raw := string(listing.RawData)
		rawData = &raw
	}

	return &pgmodels.Listing{
		ID:           int32(listing.ID),
		SearchID:     int32(listing.SearchID),
		ExternalID:   listing.ExternalID,
		URL:          listing.URL,
		Brand:        listing.Brand,
		Model:        listing.Model,
		Variant:      listing.Variant,
		Year:         toInt32Ptr(listing.Year),
		Mileage:      toInt32Ptr(listing.Mileage),
		Price:        listing.Price,
		FuelType:     listing.FuelType,
		PowerCv:      toInt32Ptr(listing.PowerCV),
		PowerKw:      toInt32Ptr(listing.PowerKW),
		Transmission: listing.Transmission,
		BodyType:     listing.BodyType,
		Color:        listing.Color,
		Province:     listing.Province,
		Region:       listing.Region,
		FirstSeen:    listing.FirstSeen,
		LastSeen:     listing.LastSeen,
		IsAvailable:  listing.IsAvailable,
		RawData:      rawData,
	}
}

func toAppListing(listing *pgmodels.Listing) *models.Listing {
	var rawData json.RawMessage
	if listing.RawData != nil {
		rawData = json.RawMessage(*listing.RawData)
	}

	return &models.Listing{
		ID:           int(listing.ID),
		SearchID:     int(listing.SearchID),
		ExternalID:   listing.ExternalID,
		URL:          listing.URL,
		Brand:        listing.Brand,
		Model:        listing.Model,
		Variant:      listing.Variant,
		Year:         toIntPtr(listing.Year),
		Mileage:      toIntPtr(listing.Mileage),
		Price:        listing.Price,
		FuelType:     listing.FuelType,
		PowerCV:      toIntPtr(listing.PowerCv),
		PowerKW:      toIntPtr(listing.PowerKw),
		Transmission: listing.Transmission,
		BodyType:     listing.BodyType,
		Color:        listing.Color,
		Province:     listing.Province,
		Region:       listing.Region,
		FirstSeen:    listing.FirstSeen,
		LastSeen:     listing.LastSeen,
		IsAvailable:  listing.IsAvailable,
		RawData:      rawData,
	}
}

func toDBPriceHistory(entry *models.PriceHistoryEntry) *pgmodels.PriceHistory {
	return &pgmodels.PriceHistory{
		ID:         int32(entry.ID),
		ListingID:  int32(entry.ListingID),
		Price:      entry.Price,
		Mileage:    toInt32Ptr(entry.Mileage),
		RecordedAt: entry.RecordedAt,
	}
}

func toAppPriceHistory(entry *pgmodels.PriceHistory) models.PriceHistoryEntry {
	return models.PriceHistoryEntry{
		ID:         int(entry.ID),
		ListingID:  int(entry.ListingID),
		Price:      entry.Price,
		Mileage:    toIntPtr(entry.Mileage),
		RecordedAt: entry.RecordedAt,
	}
}

func toDBRun(run *models.RunRecord) *pgmodels.Run {
	var reason *string
	if run.TerminationReason != nil {
		r := string(*run.TerminationReason)
		reason = &r
	}

	return &pgmodels.Run{
		ID:                int32(run.ID),
		SearchID:          int32(run.SearchID),
		StartedAt:         run.StartedAt,
		CompletedAt:       run.CompletedAt,
		Status:            string(run.Status),
		ListingsFound:     run.ListingsFound,
		ListingsNew:       run.ListingsNew,
		ListingsUpdated:   run.ListingsUpdated,
		ListingsFailed:    run.ListingsFailed,
		ListingsDropped:   run.ListingsDropped,
		PagesScraped:      run.PagesScraped,
		RequestsMade:      run.RequestsMade,
		DurationSeconds:   run.DurationSeconds,
		TerminationReason: reason,
		ErrorMessage:      run.ErrorMessage,
	}
}

func toAppRun(run *pgmodels.Run) *models.RunRecord {
	var reason *models.TerminationReason
	if run.TerminationReason != nil {
		r := models.TerminationReason(*run.TerminationReason)
		reason = &r
	}

	return &models.RunRecord{
		ID:                int(run.ID),
		SearchID:          int(run.SearchID),
		StartedAt:         run.StartedAt,
		CompletedAt:       run.CompletedAt,
		Status:            models.RunStatus(run.Status),
		ListingsFound:     run.ListingsFound,
		ListingsNew:       run.ListingsNew,
		ListingsUpdated:   run.ListingsUpdated,
		ListingsFailed:    run.ListingsFailed,
		ListingsDropped:   run.ListingsDropped,
		PagesScraped:      run.PagesScraped,
		RequestsMade:      run.RequestsMade,
		DurationSeconds:   run.DurationSeconds,
		TerminationReason: reason,
		ErrorMessage:      run.ErrorMessage,
	}
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	converted := int32(*v)
	return &converted
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	converted := int(*v)
	return &converted
}
