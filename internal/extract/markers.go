package extract

import "strings"

// Uncategorized is the category of routines that precede every marker.
const Uncategorized = "uncategorized"

// DefaultTag introduces a category marker line.
const DefaultTag = "// category: "

// Boundary is a category marker and the 0-based line it sits on.
type Boundary struct {
	Category string
	Line     int
}

// Markers scans source line by line and returns the category boundaries in
// source order. The first boundary is always Uncategorized at line -1.
func Markers(source []byte, tag string) []Boundary {
	if tag == "" {
		tag = DefaultTag
	}
	bounds := []Boundary{{Category: Uncategorized, Line: -1}}
	for i, line := range strings.Split(string(source), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, tag) {
			continue
		}
		bounds = append(bounds, Boundary{
			Category: strings.TrimSpace(strings.TrimPrefix(trimmed, tag)),
			Line:     i,
		})
	}
	return bounds
}

// CategoryOf returns the category of the last boundary in bounds whose line
// precedes line.
func CategoryOf(bounds []Boundary, line int) string {
	category := Uncategorized
	for _, b := range bounds {
		if b.Line < line {
			category = b.Category
		}
	}
	return category
}

// CodeLines drops blank lines and bare block-comment delimiters from a
// routine's source for display.
func CodeLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch strings.TrimSpace(line) {
		case "", "/*", "*/":
			continue
		}
		out = append(out, strings.TrimRight(line, " \t\r"))
	}
	return out
}
