package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsMeaningful rejects text too short to embed usefully: under three
// characters, a single word, a run of four identical characters, or nothing
// but digits, spaces and punctuation.
func IsMeaningful(text string) bool {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < 3 {
		return false
	}
	if len(strings.Fields(text)) < 2 {
		return false
	}
	if hasRepeatedRun(text, 4) {
		return false
	}
	return !onlyNumericOrPunct(trimmed)
}

func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

func onlyNumericOrPunct(text string) bool {
	for _, r := range text {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}
