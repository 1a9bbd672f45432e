package ui

import (
	"strings"
	"testing"

	"gohow/internal/report"
)

func TestDetectPalette(t *testing.T) {
	tests := []struct {
		name     string
		colorbg  string
		darkMode string
		wantDark bool
	}{
		{"default light", "", "", false},
		{"dark background", "15;0", "", true},
		{"dark grey background", "7;8", "", true},
		{"light background", "0;15", "", false},
		{"rxvt dark background", "15;default;0", "", true},
		{"rxvt light background", "0;default;7", "", false},
		{"malformed", "15;black", "", false},
		{"explicit dark mode", "0;15", "1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorbg)
			t.Setenv("GOHOW_DARK_MODE", tt.darkMode)
			if got := DetectPalette().Dark; got != tt.wantDark {
				t.Errorf("DetectPalette().Dark = %v, want %v", got, tt.wantDark)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	s := StylesFor(Light)
	o := report.Overstrike{}

	if got := Translate("plain\ntext", s); got != "plain\ntext" {
		t.Errorf("plain text changed: %q", got)
	}

	got := Translate(o.Bold("1/2")+" "+o.Underline("RANGE")+"\n", s)
	if strings.ContainsRune(got, '\b') {
		t.Errorf("backspace left in %q", got)
	}
	for _, want := range []string{"1/2", "RANGE"} {
		if !strings.Contains(got, want) {
			t.Errorf("Translate() = %q, missing %q", got, want)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("newline lost: %q", got)
	}

	// A backspace between different letters is not a style.
	if got := Translate("a\bb", s); got != "a\bb" {
		t.Errorf("Translate(a\\bb) = %q", got)
	}
}
