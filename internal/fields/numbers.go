// Package fields extracts typed listing fields from raw listing text.
// Parsers never fail: when nothing matches, the field is reported as not found.
package fields

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyAndSpaces = regexp.MustCompile(`[€$£\s\x{00a0}]`)
	groupedNumber     = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
	yearPattern       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	mileagePattern    = regexp.MustCompile(`(?i)(\d+(?:[.,]\d{3})*)\s*km\b`)
	powerCVPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:cv|hp)\b`)
	powerKWPattern    = regexp.MustCompile(`(?i)(\d+)\s*kw\b`)
)

// Price returns first price found in text. Dots and commas followed by three digits
// are treated as thousands separators, any other trailing separator as decimal point.
func Price(text string) (float64, bool) {
	cleaned := currencyAndSpaces.ReplaceAllString(text, "")

	match := groupedNumber.FindString(cleaned)
	if match == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(normalizeNumber(match), 64)
	if err != nil {
		return 0, false
	}

	return price, true
}

// Year returns first year between 1900 and 2099 found in text.
func Year(text string) (int, bool) {
	match := yearPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	year, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	return year, true
}

// Mileage returns first number followed by km unit found in text.
// Values not fitting into 32-bit integer are not found.
func Mileage(text string) (int, bool) {
	match := mileagePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	return atoi32(stripSeparators(match[1]))
}

// Power returns horse power (CV/HP) and kilowatts found in text.
// Both values are independent, either may be nil.
func Power(text string) (cv *int, kw *int) {
	return firstInt(powerCVPattern, text), firstInt(powerKWPattern, text)
}

func firstInt(pattern *regexp.Regexp, text string) *int {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	value, ok := atoi32(match[1])
	if !ok {
		return nil
	}

	return &value
}

// atoi32 parses decimal number, out of int32 range numbers are rejected.
func atoi32(number string) (int, bool) {
	value, err := strconv.ParseInt(number, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(value), true
}

// normalizeNumber converts number with grouping separators to strconv.ParseFloat format.
func normalizeNumber(number string) string {
	groups := strings.FieldsFunc(number, func(r rune) bool { return r == '.' || r == ',' })
	if len(groups) == 1 {
		return groups[0]
	}

	last := groups[len(groups)-1]
	if len(last) == 3 {
		return strings.Join(groups, "")
	}

	return strings.Join(groups[:len(groups)-1], "") + "." + last
}

func stripSeparators(number string) string {
	return strings.NewReplacer(".", "", ",", "").Replace(number)
}
