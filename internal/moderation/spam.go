package moderation

import (
	"regexp"
	"strings"
	"unicode"
)

// urlPattern matches the scheme prefix of http/https URLs. Counting scheme
// prefixes is enough for density checks; full URL extraction isn't needed.
var urlPattern = regexp.MustCompile(`(?i)https?://`)

// spamPhrases are checked case-insensitively as substrings.
var spamPhrases = []string{"click here", "buy now", "limited offer", "act now"}

// LooksLikeSpam flags content as likely spam when at least two indicators
// hold: URL count above 2, more than 5 exclamation marks, mostly-uppercase
// text, a character repeated 5+ times in a row, or a known spam phrase.
func LooksLikeSpam(content string) bool {
	indicators := 0

	if countURLs(content) > 2 {
		indicators++
	}

	if strings.Count(content, "!") > 5 {
		indicators++
	}

	letters, uppers := countLetters(content)
	if letters > 10 && float64(uppers) > float64(letters)*0.5 {
		indicators++
	}

	if hasRepeatedRun(content, 5) {
		indicators++
	}

	lower := strings.ToLower(content)
	for _, phrase := range spamPhrases {
		if strings.Contains(lower, phrase) {
			indicators++
			break
		}
	}

	return indicators >= 2
}

// Score computes a spam score in [0,1] from three capped factors: URL
// density (up to 0.4), uppercase ratio among letters (up to 0.3), and
// exclamation density (up to 0.3). The caps bound the sum to 1 by
// construction, and each factor is non-decreasing in its input.
func Score(content string) float64 {
	score := 0.0

	urlCount := countURLs(content)
	score += min(float64(urlCount)*0.2, 0.4)

	letters, uppers := countLetters(content)
	if letters > 0 {
		score += float64(uppers) / float64(letters) * 0.3
	}

	score += min(float64(strings.Count(content, "!"))*0.05, 0.3)

	return score
}

func countURLs(content string) int {
	return len(urlPattern.FindAllStringIndex(content, -1))
}

func countLetters(content string) (letters, uppers int) {
	for _, r := range content {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		}
	}
	return letters, uppers
}

// hasRepeatedRun reports whether any single character repeats at least n
// times consecutively. RE2 has no backreferences, so this is a linear scan.
func hasRepeatedRun(content string, n int) bool {
	count := 1
	prev := rune(-1)
	for _, r := range content {
		if r == prev {
			count++
			if count >= n {
				return true
			}
		} else {
			count = 1
			prev = r
		}
	}
	return false
}
