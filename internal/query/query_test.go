package query_test

import (
	"net/url"
	"testing"

	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/MichalMitros/car-tracker/internal/query"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://www.autoscout24.it"

func TestUnitSearchURL(t *testing.T) {
	tests := map[string]struct {
		criteria   models.SearchCriteria
		wantParams url.Values
	}{
		"no criteria": {
			criteria: models.SearchCriteria{},
			wantParams: url.Values{
				"sort": {"age"},
				"desc": {"1"},
			},
		},
		"all criteria": {
			criteria: models.SearchCriteria{
				Brand:        lo.ToPtr("Volkswagen"),
				Model:        lo.ToPtr("Golf"),
				FuelType:     lo.ToPtr("D"),
				Transmission: lo.ToPtr("M"),
				BodyType:     lo.ToPtr("1"),
				Color:        lo.ToPtr("2"),
				Province:     lo.ToPtr("Lombardia"),
				YearMin:      lo.ToPtr(2015),
				YearMax:      lo.ToPtr(2020),
				MileageMin:   lo.ToPtr(10000),
				MileageMax:   lo.ToPtr(90000),
				PriceMin:     lo.ToPtr(5000.99),
				PriceMax:     lo.ToPtr(15000.0),
				PowerMin:     lo.ToPtr(90),
				PowerMax:     lo.ToPtr(150),
			},
			wantParams: url.Values{
				"make":         {"Volkswagen"},
				"model":        {"Golf"},
				"fuel":         {"D"},
				"transmission": {"M"},
				"body":         {"1"},
				"color":        {"2"},
				"region":       {"Lombardia"},
				"yearfrom":     {"2015"},
				"yearto":       {"2020"},
				"kmfrom":       {"10000"},
				"kmto":         {"90000"},
				"pricefrom":    {"5000"},
				"priceto":      {"15000"},
				"powerfrom":    {"90"},
				"powerto":      {"150"},
				"sort":         {"age"},
				"desc":         {"1"},
			},
		},
		"blank fields are omitted": {
			criteria: models.SearchCriteria{
				Brand: lo.ToPtr("  "),
				Model: lo.ToPtr("Panda"),
			},
			wantParams: url.Values{
				"model": {"Panda"},
				"sort":  {"age"},
				"desc":  {"1"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := query.NewBuilder(baseURL + "/").SearchURL(tt.criteria)

			parsed, err := url.Parse(got)
			require.NoError(t, err, "should build valid URL")
			assert.Equal(t, "/risultati", parsed.Path, "should use results path")
			assert.Equal(t, "www.autoscout24.it", parsed.Host, "should use base URL host")
			assert.Equal(t, tt.wantParams, parsed.Query(), "should translate criteria into params")
		})
	}
}

func TestUnitSearchURLDeterministic(t *testing.T) {
	criteria := models.SearchCriteria{Brand: lo.ToPtr("Fiat"), Model: lo.ToPtr("Panda"), YearMin: lo.ToPtr(2018)}
	builder := query.NewBuilder(baseURL)

	assert.Equal(t, builder.SearchURL(criteria), builder.SearchURL(criteria), "should build the same URL every time")
}

func TestUnitPageURL(t *testing.T) {
	assert.Equal(t, baseURL+"/risultati?sort=age&page=3", query.PageURL(baseURL+"/risultati?sort=age", 3))
	assert.Equal(t, baseURL+"/risultati?page=1", query.PageURL(baseURL+"/risultati", 1))
}
