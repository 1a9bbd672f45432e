package catalogue

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(src string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(src)}
}

func TestLoad_NamesAndSkips(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/chans/chans.go":      file("// Package chans shows channels.\npackage chans\n\nfunc A() int { return 1 }\n"),
		"lib/chans/chans_test.go": file("package chans\n"),
		"lib/_draft/draft.go":     file("package draft\n"),
		"lib/_hidden.go":          file("package hidden\n"),
		"lib/loose.go":            file("// Package loose is flat.\npackage loose\n"),
		"README.md":               file("# not a unit"),
	}

	c, err := Load(context.Background(), fsys, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"lib.chans", "lib.loose"}, c.Names())

	u, err := c.Lookup("lib.chans")
	require.NoError(t, err)
	assert.Equal(t, "chans", u.Package)
	assert.Equal(t, "Package chans shows channels.", u.Description)
	assert.Equal(t, "lib/chans/chans.go", u.Path)
	assert.Contains(t, string(u.Source), "func A()")
}

func TestLoad_SubRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"units/syntax/verbs/verbs.go": file("package verbs\n"),
	}
	c, err := Load(context.Background(), fsys, "units")
	require.NoError(t, err)
	assert.Equal(t, []string{"syntax.verbs"}, c.Names())
}

func TestLoad_SyntaxErrorNamesFile(t *testing.T) {
	fsys := fstest.MapFS{
		"bad/bad.go": file("package bad\nfunc ( {\n"),
	}
	_, err := Load(context.Background(), fsys, ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad/bad.go")
}

func TestLookup_Unknown(t *testing.T) {
	c := New()
	c.Add(Unit{Name: "impl.functions"})
	c.Add(Unit{Name: "builtin.errs"})

	_, err := c.Lookup("impl.nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownUnit))
	assert.Contains(t, err.Error(), "builtin.errs, impl.functions")
}

func TestMerge_OtherWins(t *testing.T) {
	base := New()
	base.Add(Unit{Name: "lib.text", Path: "embedded"})
	base.Add(Unit{Name: "lib.sorting", Path: "embedded"})

	extra := New()
	extra.Add(Unit{Name: "lib.text", Path: "disk"})
	extra.Add(Unit{Name: "local.mine", Path: "disk"})

	base.Merge(extra)
	assert.Equal(t, 3, base.Len())

	u, err := base.Lookup("lib.text")
	require.NoError(t, err)
	assert.Equal(t, "disk", u.Path)

	var names []string
	for _, u := range base.Units() {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"lib.sorting", "lib.text", "local.mine"}, names)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mine"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine", "mine.go"),
		[]byte("// Package mine is local.\npackage mine\n"), 0644))

	c, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"mine"}, c.Names())
}

func TestBuiltin(t *testing.T) {
	c, err := Builtin(context.Background())
	require.NoError(t, err)

	want := []string{
		"builtin.collections",
		"builtin.errs",
		"impl.conversions",
		"impl.functions",
		"impl.interfaces",
		"impl.iteration",
		"lib.containers",
		"lib.serialization",
		"lib.sorting",
		"lib.text",
		"lib.timing",
		"syntax.formatting",
		"syntax.regex",
	}
	assert.Equal(t, want, c.Names())

	for _, u := range c.Units() {
		assert.True(t, strings.HasPrefix(u.Description, "Package "+u.Package+" "), "unit %s description %q", u.Name, u.Description)
	}
}
