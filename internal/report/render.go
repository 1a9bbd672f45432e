package report

import (
	"fmt"
	"strings"

	"gohow/internal/logging"
)

const codeGutter = "    |"

// RenderOptions controls layout details.
type RenderOptions struct {
	Style    Styler
	TabWidth int // spaces per tab in code lines; 0 keeps tabs
}

// Render lays out the report:
//
//	>>> UNIT DESCRIPTION
//
//	1/2 CATEGORY
//
//	  NAME: doc
//	    |
//	    |  code
//	    |
//	    |-- name() = result
func Render(r *Report, opts RenderOptions) string {
	style := opts.Style
	if style == nil {
		style = Plain{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n>>> %s\n\n\n", style.Bold(Upper(r.Unit.Description)))

	for _, cat := range r.Categories {
		step := fmt.Sprintf("%d/%d", cat.Step, cat.Total)
		fmt.Fprintf(&b, "%s %s\n\n\n", style.Bold(step), style.Underline(Upper(cat.Name)))
		logging.RenderDebug("category %s %s: %d entries", step, cat.Name, len(cat.Entries))

		for _, e := range cat.Entries {
			fmt.Fprintf(&b, "  %s: %s\n", style.Bold(Upper(e.Name)), style.Bold(e.Doc))
			b.WriteString(codeGutter + "\n")
			for _, line := range e.Code {
				b.WriteString(codeGutter + "  " + expandTabs(line, opts.TabWidth) + "\n")
			}
			b.WriteString(codeGutter + "\n")
			fmt.Fprintf(&b, "%s-- %s() = %s\n\n\n", codeGutter, style.Bold(e.Name), e.Result)
		}
		b.WriteString("\n")
	}

	out := b.String()
	logging.Render("rendered %s: %d bytes", r.Unit.Name, len(out))
	return out
}

func expandTabs(line string, width int) string {
	if width <= 0 {
		return line
	}
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", width))
}
