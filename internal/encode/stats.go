package encode

import (
	"strings"
	"unicode/utf8"
)

// Stats describes the size of an encoded text: line count, character count,
// and a rough estimate of one token per four characters, rounded up.
type Stats struct {
	Lines  int `json:"lines"`
	Chars  int `json:"chars"`
	Tokens int `json:"tokens"`
}

// Measure computes the stats of an encoded text.
func Measure(text string) Stats {
	if text == "" {
		return Stats{}
	}
	lines := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		lines++
	}
	chars := utf8.RuneCountInString(text)
	return Stats{
		Lines:  lines,
		Chars:  chars,
		Tokens: (chars + 3) / 4,
	}
}
