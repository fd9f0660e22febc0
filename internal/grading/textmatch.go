package grading

import (
	"strings"
	"unicode"
)

// foldOption lowercases option text, drops punctuation and collapses
// whitespace, so "Mr. Meeseeks" and "mr  meeseeks" compare equal.
func foldOption(s string) string {
	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		w = strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) {
				return -1
			}
			return unicode.ToLower(r)
		}, w)
		if w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
