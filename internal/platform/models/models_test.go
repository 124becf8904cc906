package models_test

import (
	"testing"

	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestUnitRawListingSnapshot(t *testing.T) {
	raw := models.RawListing{
		ExternalID: "a1",
		Price:      lo.ToPtr(1500.0),
		Year:       lo.ToPtr(2019),
	}

	assert.JSONEq(t, `{"externalId":"a1","price":1500,"year":2019}`, string(raw.Snapshot()),
		"should snapshot only extracted fields",
	)
}
