package util

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultConfidenceScore is used when no score can be recovered from the
// evaluation text. An unparsable reply never fails the whole evaluation.
const DefaultConfidenceScore = 75

// NoDateSentinel is the literal reply the date-extraction prompt asks the
// model to return when the transcript contains no interview date.
const NoDateSentinel = "NO_DATE_FOUND"

// Ordered most specific to least specific. The first pattern that matches
// wins, so keep the order stable: scoring must stay deterministic for
// identical model output.
var scorePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)OVERALL ASSESSMENT SCORE.*?(\d+)/100`),
	regexp.MustCompile(`(?i)(?:assign.*?score.*?of|score.*?of).*?(\d+)/100`),
	regexp.MustCompile(`(?i)(?:confidence|score).*?(\d+)/100`),
	regexp.MustCompile(`(?i)(?:confidence|score).*?(\d+)%`),
	regexp.MustCompile(`(\d+)/100`),
}

// ExtractConfidenceScore recovers the 0-100 confidence score from the
// free-text interview evaluation.
func ExtractConfidenceScore(text string) int {
	score := DefaultConfidenceScore
	for _, p := range scorePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			score = n
			break
		}
	}
	return ClampScore(score)
}

// ClampScore bounds a score to [0, 100].
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// ExtractInterviewDate interprets the date-extraction reply. The returned
// string is trusted verbatim; no date format validation is done here.
func ExtractInterviewDate(reply string) (string, bool) {
	date := strings.TrimSpace(reply)
	if date == "" || date == NoDateSentinel {
		return "", false
	}
	return date, true
}
