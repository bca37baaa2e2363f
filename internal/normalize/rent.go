package normalize

import (
	"fmt"
	"regexp"
	"strconv"
)

var reNonDigit = regexp.MustCompile(`[^\d]`)

// RentValue converts a free-text rent answer to an integer. Spelled-out
// numbers are tried first ("twelve thousand" -> 12000); otherwise all
// non-digit characters are stripped and the remainder parsed
// ("Rs. 12,000/-" -> 12000). Failure of both paths is returned to the caller.
func RentValue(s string) (int, error) {
	if n, err := ParseNumberWords(s); err == nil {
		return n, nil
	}
	digits := reNonDigit.ReplaceAllString(s, "")
	if digits == "" {
		return 0, fmt.Errorf("no numeric content in %q", s)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("parse rent %q: %w", s, err)
	}
	return n, nil
}
