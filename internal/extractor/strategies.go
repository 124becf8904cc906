package extractor

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// ContainerStrategy finds listing containers in search results document.
type ContainerStrategy struct {
	Name string
	Find func(doc *goquery.Document) *goquery.Selection
}

var (
	listingClassRe    = regexp.MustCompile(`listing`)
	resultItemClassRe = regexp.MustCompile(`result.*item`)
	listingPathRe     = regexp.MustCompile(`/auto/[^/]+/([^/?#]+)`)
	nextTextRe        = regexp.MustCompile(`Successiv|Next|>`)
)

// DefaultContainerStrategies are tried in order, first strategy which finds any container wins.
var DefaultContainerStrategies = []ContainerStrategy{
	{Name: "resultItem", Find: selector(`div[data-item-name="result-item"]`)},
	{Name: "listingArticle", Find: classMatching("article", listingClassRe)},
	{Name: "resultItemClass", Find: classMatching("div", resultItemClassRe)},
	{Name: "dataID", Find: selector(`div[data-id]`)},
	{Name: "listingAnchor", Find: selector(`a[href*="/auto/"]`)},
}

// Title and price selectors are tried in order, first match wins.
var (
	titleSelectors = []string{
		"h2",
		"h3",
		".title",
		".listing-title",
		`[data-testid="ad-title"]`,
		".cldt-summary-title",
	}
	priceSelectors = []string{
		".price",
		".listing-price",
		`[data-testid="price"]`,
		".cldt-price",
		".price-block",
	}
	idAttributes = []string{"data-id", "data-item-id", "id"}
)

func selector(sel string) func(doc *goquery.Document) *goquery.Selection {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(sel)
	}
}

// classMatching returns elements with tag whose class attribute matches re.
func classMatching(tag string, re *regexp.Regexp) func(doc *goquery.Document) *goquery.Selection {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(tag + "[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			class, _ := s.Attr("class")
			return re.MatchString(class)
		})
	}
}
