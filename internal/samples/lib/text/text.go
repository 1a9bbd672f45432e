// Package text shows string utilities from the strings and unicode packages.
package text

import (
	"strings"
	"unicode"
)

// category: splitting

// Fields splits around runs of white space.
func Fields() []string {
	return strings.Fields("  swing   bebop\tcool ")
}

// SplitN limits the number of pieces.
func SplitN() []string {
	return strings.SplitN("a:b:c:d", ":", 2)
}

// Cut slices around the first separator.
func Cut() []string {
	key, value, _ := strings.Cut("tempo=120", "=")
	return []string{key, value}
}

// category: building

// Join concatenates with a separator.
func Join() string {
	return strings.Join([]string{"C", "E", "G"}, "-")
}

// Repeat repeats a string.
func Repeat() string {
	return strings.Repeat("cha", 2) + "-" + strings.Repeat("cha", 3)
}

// Replacer replaces several strings in one pass.
func Replacer() string {
	r := strings.NewReplacer("b", "♭", "#", "♯")
	return r.Replace("Bb and F#")
}

// category: searching

// Contains reports whether a substring is present.
func Contains() bool {
	return strings.Contains("syncopation", "cop")
}

// Index finds the first occurrence.
func Index() int {
	return strings.Index("allegro", "gro")
}

// EqualFold compares under Unicode case folding.
func EqualFold() bool {
	return strings.EqualFold("Ragtime", "RAGTIME")
}

// category: transforming

// TrimFunc trims runes matching a predicate.
func TrimFunc() string {
	return strings.TrimFunc("123Track456", unicode.IsDigit)
}

// Map transforms each rune, dropping negative results.
func Map() string {
	vowelless := func(r rune) rune {
		if strings.ContainsRune("aeiou", r) {
			return -1
		}
		return r
	}
	return strings.Map(vowelless, "saxophone")
}

// ToTitle upper-cases every letter.
func ToTitle() string {
	return strings.ToTitle("hip hop")
}
