// Package regex shows regular expressions with the regexp package.
package regex

import (
	"regexp"
	"strings"
)

// category: matching

// MatchString reports whether the pattern matches anywhere.
func MatchString() bool {
	matched, _ := regexp.MatchString(`^\d{3}-\d{4}$`, "555-0199")
	return matched
}

// FindString returns the leftmost match.
func FindString() string {
	re := regexp.MustCompile(`[A-G][#b]?m?`)
	return re.FindString("progression: Am F C G")
}

// FindAllString returns every match, up to n.
func FindAllString() []string {
	re := regexp.MustCompile(`\b\w{4}\b`)
	return re.FindAllString("free jazz cool bop soul funk", -1)
}

// category: groups

// Submatch returns the match and its capture groups.
func Submatch() []string {
	re := regexp.MustCompile(`(\d+)/(\d+)`)
	return re.FindStringSubmatch("time signature 6/8")
}

// NamedGroups maps group names to submatches.
func NamedGroups() map[string]string {
	re := regexp.MustCompile(`(?P<key>\w+)=(?P<value>\w+)`)
	m := re.FindStringSubmatch("key=tempo")
	out := map[string]string{}
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out
}

// category: replacing

// ReplaceAll expands $1 style references.
func ReplaceAll() string {
	re := regexp.MustCompile(`(\w+)@(\w+)`)
	return re.ReplaceAllString("miles@davis", "$2, $1")
}

// ReplaceFunc computes each replacement.
func ReplaceFunc() string {
	re := regexp.MustCompile(`\bb\w+`)
	return re.ReplaceAllStringFunc("blues and bossa nova", strings.ToUpper)
}

// Split splits around matches.
func Split() []string {
	re := regexp.MustCompile(`\s*[,;]\s*`)
	return re.Split("piano , bass;drums ,  sax", -1)
}

// category: flags

// CaseInsensitive (?i) ignores case.
func CaseInsensitive() bool {
	return regexp.MustCompile(`(?i)^swing$`).MatchString("SWING")
}

// Longest switches to leftmost-longest matching.
func Longest() string {
	re := regexp.MustCompile(`a+?`)
	re.Longest()
	return re.FindString("aaa")
}
