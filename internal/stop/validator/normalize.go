package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize strips leading/trailing whitespace and removes characters
// from the supplementary Unicode planes (code points >= U+10000, which
// covers most emoji). The supplementary-plane cut is a deliberate
// approximation of emoji removal; it also drops rare non-emoji scripts.
//
// Input that is not valid UTF-8 cannot be filtered by code point, so it
// degrades to keeping printable runes only. Normalize never fails.
func Normalize(s string) string {
	if !utf8.ValidString(s) {
		return strings.TrimSpace(stripNonPrintable(s))
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x10000 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// stripNonPrintable keeps only printable runes. Decoding errors map to
// utf8.RuneError, which is dropped explicitly so malformed bytes fall
// out too.
func stripNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			return -1
		}
		return r
	}, s)
}
