package ui

import "strings"

type runKind int

const (
	runPlain runKind = iota
	runBold
	runUnderline
)

// Translate turns overstrike sequences ("c\bc" bold, "_\bc" underline) into
// lipgloss styled runs. Plain text passes through untouched.
func Translate(text string, s Styles) string {
	runes := []rune(text)

	var out, run strings.Builder
	kind := runPlain
	flush := func() {
		if run.Len() == 0 {
			return
		}
		switch kind {
		case runBold:
			out.WriteString(s.Bold.Render(run.String()))
		case runUnderline:
			out.WriteString(s.Underline.Render(run.String()))
		default:
			out.WriteString(run.String())
		}
		run.Reset()
	}

	for i := 0; i < len(runes); i++ {
		next := runPlain
		r := runes[i]
		if i+2 < len(runes) && runes[i+1] == '\b' {
			switch {
			case runes[i] == runes[i+2]:
				next = runBold
			case runes[i] == '_':
				next = runUnderline
			}
			if next != runPlain {
				r = runes[i+2]
				i += 2
			}
		}
		if next != kind {
			flush()
			kind = next
		}
		run.WriteRune(r)
	}
	flush()
	return out.String()
}
