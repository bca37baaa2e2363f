package normalize

import (
	"regexp"
	"strings"
	"time"
)

// OutputDateLayout is the canonical rendering for normalized dates.
const OutputDateLayout = "02.01.2006"

var (
	reOrdinal    = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)
	reDateNoise  = regexp.MustCompile(`(?i)\bof\b|[*,]`)
	reDateSpaces = regexp.MustCompile(`\s+`)
)

// dayFirstLayouts are tried in order when parsing "day month-name year" text.
var dayFirstLayouts = []string{
	"2 January 2006",
	"2 Jan 2006",
	"2 January, 2006",
	"2 Jan, 2006",
}

// Date converts a free-text date answer ("1st April, 2008",
// "15th day of March 2019") to DD.MM.YYYY. Ordinal suffixes, the word "of",
// asterisks and commas are stripped before parsing. If the cleaned text still
// does not parse, the original answer is returned unchanged.
func Date(s string) string {
	cleaned := reOrdinal.ReplaceAllString(s, "$1")
	cleaned = reDateNoise.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(reDateSpaces.ReplaceAllString(cleaned, " "))

	// "15 day March 2019" -> "15 March 2019"
	cleaned = strings.ReplaceAll(cleaned, " day ", " ")

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(OutputDateLayout)
		}
	}
	return s
}

// ParseDayFirst parses a date string day-first, accepting both the canonical
// DD.MM.YYYY rendering and the month-name forms found in ground-truth tables.
func ParseDayFirst(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	layouts := append([]string{
		"02.01.2006",
		"2.1.2006",
		"02/01/2006",
		"2/1/2006",
		"02-01-2006",
		"2-1-2006",
	}, dayFirstLayouts...)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	// fall back to the same cleanup the normalizer applies
	if out := Date(s); out != s {
		t, err := time.Parse(OutputDateLayout, out)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
