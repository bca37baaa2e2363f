package textract

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
)

var reBoxNoise = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)

// ocrArtifacts fixes the two substitutions tesseract reliably gets wrong on
// scanned agreements: pipes for capital I, backticks for apostrophes.
var ocrArtifacts = strings.NewReplacer(
	"|", "I",
	"`", "'",
)

// Normalize collapses noisy whitespace and fixes common OCR artifacts.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank line.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	// collapse too many blank lines
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	// trim trailing spaces on lines
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	s = ocrArtifacts.Replace(s)
	return strings.TrimSpace(s)
}

var (
	reDateish  = regexp.MustCompile(`\b\d{1,2}(st|nd|rd|th)?\s+[a-z]+,?\s+\d{4}\b`)
	reMoneyish = regexp.MustCompile(`(rs\.?|rupees|inr|\$|usd)\s*[\d,]*`)
	reLeaseish = regexp.MustCompile(`\b(agreement|lease|rent|tenant|lessor|lessee)\b`)
)

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// boost if we see common agreement artifacts (date-ish, money-ish,
	// lease vocabulary). Each adds a little.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reDateish.MatchString(txtL) {
		score += 0.2
	}
	if reMoneyish.MatchString(txtL) {
		score += 0.15
	}
	if reLeaseish.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
