package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/MichalMitros/car-tracker/internal/platform/models"
)

const resultsPath = "/risultati"

// Builder translates saved searches into marketplace search URLs.
type Builder struct {
	baseURL string
}

// NewBuilder returns new Builder for marketplace served under baseURL.
func NewBuilder(baseURL string) Builder {
	return Builder{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchURL returns search results URL for provided criteria.
// Only set criteria fields are translated into query parameters, results are always sorted newest first.
func (b Builder) SearchURL(criteria models.SearchCriteria) string {
	params := url.Values{}

	setString(params, "make", criteria.Brand)
	setString(params, "model", criteria.Model)
	setString(params, "fuel", criteria.FuelType)
	setString(params, "transmission", criteria.Transmission)
	setString(params, "body", criteria.BodyType)
	setString(params, "color", criteria.Color)

	setInt(params, "yearfrom", criteria.YearMin)
	setInt(params, "yearto", criteria.YearMax)
	setInt(params, "kmfrom", criteria.MileageMin)
	setInt(params, "kmto", criteria.MileageMax)
	setPrice(params, "pricefrom", criteria.PriceMin)
	setPrice(params, "priceto", criteria.PriceMax)
	setInt(params, "powerfrom", criteria.PowerMin)
	setInt(params, "powerto", criteria.PowerMax)

	setString(params, "region", criteria.Province)

	params.Set("sort", "age")
	params.Set("desc", "1")

	return b.baseURL + resultsPath + "?" + params.Encode()
}

// PageURL returns URL of provided results page of search URL.
func PageURL(searchURL string, page int) string {
	separator := "&"
	if !strings.Contains(searchURL, "?") {
		separator = "?"
	}
	return searchURL + separator + "page=" + strconv.Itoa(page)
}

func setString(params url.Values, key string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	params.Set(key, strings.TrimSpace(*value))
}

func setInt(params url.Values, key string, value *int) {
	if value == nil || *value == 0 {
		return
	}
	params.Set(key, strconv.Itoa(*value))
}

// setPrice sets price truncated to whole currency units.
func setPrice(params url.Values, key string, value *float64) {
	if value == nil || *value == 0 {
		return
	}
	params.Set(key, strconv.Itoa(int(*value)))
}
