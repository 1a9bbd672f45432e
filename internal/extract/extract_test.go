package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const unitSource = `// Package demo shows
// a few things.
package demo

import (
	"fmt"
	str "strings"
)

// Loose sits before every marker.
func Loose() int { return 1 }

// category: first

// Alpha says hello.
func Alpha() string {

	return fmt.Sprint("hello")
}

type thing struct{}

func (thing) Method() int { return 2 }

// category: second
// Beta is documented
// over two lines.
func Beta() string {
	/*
	inner
	*/
	return str.ToUpper("b")
}

func main() {}

func init() {}

func helper(a, b int) int { return a + b }
`

func TestMarkers(t *testing.T) {
	got := Markers([]byte(unitSource), DefaultTag)
	want := []Boundary{
		{Category: Uncategorized, Line: -1},
		{Category: "first", Line: 12},
		{Category: "second", Line: 24},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Markers mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkers_IndentedAndCustomTag(t *testing.T) {
	src := "x\n\t  # section: one  \n#section: no\n# section: two"
	got := Markers([]byte(src), "# section: ")
	want := []Boundary{
		{Category: Uncategorized, Line: -1},
		{Category: "one", Line: 1},
		{Category: "two", Line: 3},
	}
	assert.Equal(t, want, got)
}

func TestMarkers_EmptyTagFallsBackToDefault(t *testing.T) {
	got := Markers([]byte("// category: x"), "")
	require.Len(t, got, 2)
	assert.Equal(t, "x", got[1].Category)
}

func TestCategoryOf(t *testing.T) {
	bounds := []Boundary{
		{Category: Uncategorized, Line: -1},
		{Category: "a", Line: 5},
		{Category: "b", Line: 10},
	}
	tests := []struct {
		line int
		want string
	}{
		{0, Uncategorized},
		{5, Uncategorized},
		{6, "a"},
		{10, "a"},
		{11, "b"},
		{500, "b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryOf(bounds, tt.line), "line %d", tt.line)
	}
}

func TestCategoryOf_NoBoundaries(t *testing.T) {
	assert.Equal(t, Uncategorized, CategoryOf(nil, 3))
}

func TestCodeLines(t *testing.T) {
	in := []string{
		"func Beta() string {",
		"\t/*",
		"\tinner",
		"\t*/",
		"",
		"   ",
		"\treturn \"b\"   ",
		"}",
	}
	want := []string{
		"func Beta() string {",
		"\tinner",
		"\treturn \"b\"",
		"}",
	}
	assert.Equal(t, want, CodeLines(in))
}

func TestParse(t *testing.T) {
	f, err := Parse(context.Background(), []byte(unitSource), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "demo", f.Package)
	assert.Equal(t, "Package demo shows a few things.", f.Doc)
	assert.Equal(t, []string{"fmt", "strings"}, f.Imports)

	var names []string
	for _, r := range f.Routines {
		names = append(names, r.Name)
	}
	// Methods and reserved names are not routines.
	assert.Equal(t, []string{"Loose", "Alpha", "Beta", "helper"}, names)

	alpha := f.Routines[1]
	assert.Equal(t, "Alpha says hello.", alpha.Doc)
	assert.Equal(t, 15, alpha.Line)
	assert.Equal(t, 0, alpha.Params)
	assert.Equal(t, "func Alpha() string {", alpha.Source[0])
	assert.Equal(t, "}", alpha.Source[len(alpha.Source)-1])

	beta := f.Routines[2]
	assert.Equal(t, "Beta is documented over two lines.", beta.Doc, "marker must not leak into doc")

	assert.Equal(t, 2, f.Routines[3].Params)
	assert.Empty(t, f.Routines[3].Doc)
}

func TestParse_CustomReserved(t *testing.T) {
	opts := Options{Tag: DefaultTag, Reserved: []string{"Loose", "helper"}}
	f, err := Parse(context.Background(), []byte(unitSource), opts)
	require.NoError(t, err)

	var names []string
	for _, r := range f.Routines {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Alpha", "Beta", "main", "init"}, names)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), []byte("package broken\n\nfunc X( {\n"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
}

func TestExtract_AssignsCategories(t *testing.T) {
	f, err := Extract(context.Background(), []byte(unitSource), DefaultOptions())
	require.NoError(t, err)

	got := map[string]string{}
	for _, r := range f.Routines {
		got[r.Name] = r.Category
	}
	want := map[string]string{
		"Loose":  Uncategorized,
		"Alpha":  "first",
		"Beta":   "second",
		"helper": "second",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ParamCount(t *testing.T) {
	tests := []struct {
		sig  string
		want int
	}{
		{"func F() int", 0},
		{"func F(a, b int) int", 2},
		{"func F(a int, s string) int", 2},
		{"func F(int, string) int", 2},
		{"func F(a, b, c int, more ...string) int", 4},
		{"func F(fn func(x, y int) int) int", 1},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			src := "package p\n\n" + tt.sig + " { return 0 }\n"
			f, err := Parse(context.Background(), []byte(src), DefaultOptions())
			require.NoError(t, err)
			require.Len(t, f.Routines, 1)
			assert.Equal(t, tt.want, f.Routines[0].Params)
		})
	}
}
