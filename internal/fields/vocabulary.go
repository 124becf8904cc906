package fields

import (
	"strings"
	"unicode"
)

// FuelTypes are known fuel types in matching order.
var FuelTypes = []string{"Benzina", "Diesel", "GPL", "Metano", "Elettrica", "Ibrida"}

type transmissionTerm struct {
	term      string
	canonical string
}

var transmissionTerms = []transmissionTerm{
	{term: "automatico", canonical: "Automatico"},
	{term: "automatic", canonical: "Automatico"},
	{term: "manuale", canonical: "Manuale"},
	{term: "manual", canonical: "Manuale"},
}

// Brands are known car brands in canonical spelling.
var Brands = []string{
	"Alfa Romeo", "Audi", "BMW", "Fiat", "Ford", "Mercedes", "Mercedes-Benz",
	"Nissan", "Opel", "Peugeot", "Renault", "Toyota", "Volkswagen", "Volvo",
	"Citroen", "Hyundai", "Kia", "Mazda", "Mitsubishi", "Seat", "Skoda",
	"Suzuki", "Honda", "Jeep", "Land Rover", "Jaguar", "Mini", "Smart",
	"Lancia", "Dacia", "Tesla",
}

// FuelType returns first fuel type from FuelTypes contained in text.
func FuelType(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, fuel := range FuelTypes {
		if strings.Contains(lower, strings.ToLower(fuel)) {
			return fuel, true
		}
	}
	return "", false
}

// Transmission returns canonical transmission name of first known term contained in text.
func Transmission(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, t := range transmissionTerms {
		if strings.Contains(lower, t.term) {
			return t.canonical, true
		}
	}
	return "", false
}

// BrandModel returns brand and model parsed from listing title.
// Title starting with known brand (longest one wins) gives canonical brand and the next word as model.
// Otherwise first word is used as brand and second as model, which is often wrong for
// brands missing from Brands. Empty model means it couldn't be found.
func BrandModel(title string) (brand string, model string) {
	title = strings.TrimSpace(title)
	upper := strings.ToUpper(title)

	matched := ""
	for _, known := range Brands {
		if len(known) > len(matched) && hasWordPrefix(upper, strings.ToUpper(known)) {
			matched = known
		}
	}

	if matched != "" {
		rest := strings.Fields(title[len(matched):])
		if len(rest) > 0 {
			return matched, rest[0]
		}
		return matched, ""
	}

	words := strings.Fields(title)
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	default:
		return words[0], words[1]
	}
}

// hasWordPrefix reports whether text starts with prefix followed by end of text or non-letter.
func hasWordPrefix(text, prefix string) bool {
	if !strings.HasPrefix(text, prefix) {
		return false
	}
	rest := text[len(prefix):]
	if rest == "" {
		return true
	}
	next := []rune(rest)[0]
	return !unicode.IsLetter(next) && !unicode.IsDigit(next)
}
