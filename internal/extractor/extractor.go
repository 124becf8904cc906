package extractor

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/MichalMitros/car-tracker/internal/fields"
	"github.com/MichalMitros/car-tracker/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/net/html"
)

// Page is result of single search results page extraction.
type Page struct {
	Listings []models.RawListing
	// Dropped is number of containers without resolvable external ID.
	Dropped int
	// Duplicates is number of containers repeating external ID of earlier container, e.g. nested ones.
	Duplicates int
	// Misses are fields which couldn't be extracted from listings.
	Misses []fields.Miss
	// HasNext is true when page contains next page indicator.
	HasNext bool
}

// Option is custom configuration of Extractor.
type Option func(e *Extractor)

// Extractor extracts raw listings from search results pages.
type Extractor struct {
	baseURL    *url.URL
	strategies []ContainerStrategy
	logger     *zerolog.Logger
}

// NewExtractor returns new Extractor which resolves relative listing URLs against baseURL.
func NewExtractor(baseURL string, logger *zerolog.Logger, ops ...Option) (*Extractor, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, err
	}

	ext := &Extractor{
		baseURL:    base,
		strategies: DefaultContainerStrategies,
		logger:     logger,
	}

	for _, op := range ops {
		op(ext)
	}

	return ext, nil
}

// Extract extracts listings and next page indicator from page body.
// Malformed markup never fails, it results in fewer listings.
func (e *Extractor) Extract(body []byte) Page {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		e.logger.Warn().Err(err).Msg("can't parse page")
		return Page{}
	}

	page := Page{HasNext: HasNextPage(doc)}

	containers, strategy := e.findContainers(doc)
	if containers.Length() == 0 {
		return page
	}

	seen := map[string]struct{}{}
	containers.Each(func(_ int, s *goquery.Selection) {
		listing, misses, ok := e.extractListing(s)
		if !ok {
			page.Dropped++
			return
		}
		if _, dup := seen[listing.ExternalID]; dup {
			page.Duplicates++
			return
		}
		seen[listing.ExternalID] = struct{}{}
		page.Listings = append(page.Listings, listing)
		page.Misses = append(page.Misses, misses...)
	})

	e.logger.Debug().
		Str("strategy", strategy).
		Int("containers", containers.Length()).
		Int("listings", len(page.Listings)).
		Int("dropped", page.Dropped).
		Int("duplicates", page.Duplicates).
		Int("misses", len(page.Misses)).
		Msg("page extracted")

	return page
}

func (e *Extractor) findContainers(doc *goquery.Document) (*goquery.Selection, string) {
	for _, strategy := range e.strategies {
		if found := strategy.Find(doc); found.Length() > 0 {
			return found, strategy.Name
		}
	}
	return doc.Selection.Slice(0, 0), ""
}

// extractListing returns listing extracted from container. Reports false when container has no ID.
func (e *Extractor) extractListing(s *goquery.Selection) (models.RawListing, []fields.Miss, bool) {
	anchor := listingAnchor(s)

	id := externalID(s, anchor)
	if id == "" {
		return models.RawListing{}, nil, false
	}

	listing := models.RawListing{
		ExternalID: id,
		URL:        lo.ToPtr(e.listingURL(id, anchor)),
	}
	var misses []fields.Miss
	miss := func(f fields.Field) {
		misses = append(misses, fields.Miss{ExternalID: id, Field: f})
	}

	if title := firstText(s, titleSelectors); title != "" {
		brand, model := fields.BrandModel(title)
		listing.Brand = lo.EmptyableToPtr(brand)
		listing.Model = lo.EmptyableToPtr(model)
		listing.Variant = lo.ToPtr(title)
	} else {
		miss(fields.FieldTitle)
	}
	if listing.Brand == nil {
		miss(fields.FieldBrand)
	}
	if listing.Model == nil {
		miss(fields.FieldModel)
	}

	if price, ok := firstPrice(s); ok {
		listing.Price = lo.ToPtr(price)
	} else {
		miss(fields.FieldPrice)
	}

	specs := spacedText(s)
	if year, ok := fields.Year(specs); ok {
		listing.Year = lo.ToPtr(year)
	} else {
		miss(fields.FieldYear)
	}
	if mileage, ok := fields.Mileage(specs); ok {
		listing.Mileage = lo.ToPtr(mileage)
	} else {
		miss(fields.FieldMileage)
	}
	if fuel, ok := fields.FuelType(specs); ok {
		listing.FuelType = lo.ToPtr(fuel)
	} else {
		miss(fields.FieldFuelType)
	}
	if transmission, ok := fields.Transmission(specs); ok {
		listing.Transmission = lo.ToPtr(transmission)
	} else {
		miss(fields.FieldTransmission)
	}
	listing.PowerCV, listing.PowerKW = fields.Power(specs)
	if listing.PowerCV == nil {
		miss(fields.FieldPowerCV)
	}
	if listing.PowerKW == nil {
		miss(fields.FieldPowerKW)
	}

	return listing, misses, true
}

// listingAnchor returns first anchor linking to listing, it may be the container itself.
func listingAnchor(s *goquery.Selection) *goquery.Selection {
	if goquery.NodeName(s) == "a" {
		if href, ok := s.Attr("href"); ok && strings.Contains(href, "/auto/") {
			return s
		}
	}
	return s.Find(`a[href*="/auto/"]`).First()
}

func externalID(s, anchor *goquery.Selection) string {
	for _, attr := range idAttributes {
		if id := strings.TrimSpace(s.AttrOr(attr, "")); id != "" {
			return id
		}
	}

	match := listingPathRe.FindStringSubmatch(anchor.AttrOr("href", ""))
	if match == nil {
		return ""
	}
	return match[1]
}

func (e *Extractor) listingURL(id string, anchor *goquery.Selection) string {
	href := strings.TrimSpace(anchor.AttrOr("href", ""))
	if href != "" {
		if ref, err := url.Parse(href); err == nil {
			return e.baseURL.ResolveReference(ref).String()
		}
	}
	return e.baseURL.String() + "/auto/" + url.PathEscape(id)
}

func firstText(s *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if found := s.Find(sel).First(); found.Length() > 0 {
			return strings.TrimSpace(spacedText(found))
		}
	}
	return ""
}

func firstPrice(s *goquery.Selection) (float64, bool) {
	for _, sel := range priceSelectors {
		found := s.Find(sel).First()
		if found.Length() == 0 {
			continue
		}
		if price, ok := fields.Price(spacedText(found)); ok {
			return price, true
		}
	}
	return 0, false
}

// HasNextPage reports whether document contains any next page indicator.
func HasNextPage(doc *goquery.Document) bool {
	if doc.Find(`a[aria-label="Next page"]`).Length() > 0 {
		return true
	}

	next := doc.Find("a").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return nextTextRe.MatchString(s.Text())
	})
	if next.Length() > 0 {
		return true
	}

	return doc.Find(".pagination .next:not(.disabled)").Length() > 0
}

// spacedText returns text of selection with text nodes separated by single spaces.
func spacedText(s *goquery.Selection) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
				parts = append(parts, text)
			}
			return
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	for _, n := range s.Nodes {
		walk(n)
	}

	return strings.Join(parts, " ")
}

// WithStrategies sets container strategies tried in order.
func WithStrategies(strategies []ContainerStrategy) Option {
	return func(e *Extractor) {
		e.strategies = strategies
	}
}
