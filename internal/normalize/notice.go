package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var reNoticePhrase = regexp.MustCompile(`(?i)([a-z]+|\d+)\s*(month|day)s?\b`)

// NoticeDays converts a free-text notice-period answer to a day count:
// "<n> month(s)" -> n*30, "<n> day(s)" -> n, where n is a digit or a
// spelled-out number. Anything else yields 0.
func NoticeDays(s string) int {
	m := reNoticePhrase.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	var n int
	if v, err := strconv.Atoi(m[1]); err == nil {
		n = v
	} else if v, err := ParseNumberWords(m[1]); err == nil {
		n = v
	} else {
		return 0
	}

	if strings.EqualFold(m[2], "month") {
		return n * 30
	}
	return n
}
