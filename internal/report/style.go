package report

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Styler decorates report text.
type Styler interface {
	Bold(s string) string
	Underline(s string) string
}

// Overstrike styles text the way terminals and less render man pages:
// bold is c\bc and underline is _\bc.
type Overstrike struct{}

// Bold overstrikes every rune with itself.
func (Overstrike) Bold(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r == '\n' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(r)
		b.WriteByte('\b')
		b.WriteRune(r)
	}
	return b.String()
}

// Underline overstrikes every rune with an underscore.
func (Overstrike) Underline(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if r == '\n' {
			b.WriteRune(r)
			continue
		}
		b.WriteString("_\b")
		b.WriteRune(r)
	}
	return b.String()
}

// Plain leaves text untouched.
type Plain struct{}

// Bold returns s.
func (Plain) Bold(s string) string { return s }

// Underline returns s.
func (Plain) Underline(s string) string { return s }

// Strip removes overstrike sequences, keeping the character that was struck.
func Strip(s string) string {
	if !strings.ContainsRune(s, '\b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		rest := s[size:]
		if len(rest) > 0 && rest[0] == '\b' {
			// drop "x\b" and keep what follows
			s = rest[1:]
			continue
		}
		b.WriteRune(r)
		s = rest
	}
	return b.String()
}

// Upper upper-cases s with Unicode case mapping.
// A Caser is stateful, so each call gets its own.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
