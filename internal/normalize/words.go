package normalize

import (
	"fmt"
	"strings"
)

// Spelled-out number vocabulary. Indian scales (lakh, crore) appear in the
// agreement corpus alongside western ones.
var smallNumbers = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var scales = map[string]int{
	"hundred":  100,
	"thousand": 1000,
	"lakh":     100000,
	"lakhs":    100000,
	"million":  1000000,
	"crore":    10000000,
	"crores":   10000000,
}

// ParseNumberWords converts a spelled-out English number to an integer,
// e.g. "twelve thousand" -> 12000, "one lakh fifty thousand" -> 150000.
// Filler words ("and") and hyphens are tolerated.
func ParseNumberWords(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")
	if s == "" {
		return 0, fmt.Errorf("empty number phrase")
	}

	total, current := 0, 0
	seen := false
	for _, tok := range strings.Fields(s) {
		tok = strings.Trim(tok, ",.")
		if tok == "" || tok == "and" {
			continue
		}
		if n, ok := smallNumbers[tok]; ok {
			current += n
			seen = true
			continue
		}
		if scale, ok := scales[tok]; ok {
			if current == 0 {
				current = 1
			}
			if scale == 100 {
				current *= scale
			} else {
				total += current * scale
				current = 0
			}
			seen = true
			continue
		}
		return 0, fmt.Errorf("not a number word: %q", tok)
	}
	if !seen {
		return 0, fmt.Errorf("no number words in %q", s)
	}
	return total + current, nil
}
