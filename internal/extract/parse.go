// Package extract finds the example routines of a sample unit and the
// category each one belongs to.
//
// Routines are discovered with tree-sitter's Go grammar; category markers are
// plain comment lines found by a line scan, so a marker is recognised even
// where the grammar would attach the comment to a neighbouring node.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gohow/internal/logging"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// ErrSyntax is returned when a unit's source does not parse.
var ErrSyntax = errors.New("syntax error")

// Routine is one top-level function of a sample unit.
type Routine struct {
	Name     string
	Line     int // 0-based line of the func keyword
	Doc      string
	Params   int // declared parameters; examples take none
	Source   []string
	Category string
}

// File is the parsed outline of a sample unit.
type File struct {
	Package  string
	Doc      string
	Imports  []string
	Routines []Routine
}

// Options controls marker recognition and routine filtering.
type Options struct {
	Tag      string
	Reserved []string
}

// DefaultOptions returns the standard marker tag and reserved names.
func DefaultOptions() Options {
	return Options{Tag: DefaultTag, Reserved: []string{"main", "init"}}
}

func (o Options) reserved(name string) bool {
	for _, r := range o.Reserved {
		if r == name {
			return true
		}
	}
	return false
}

// Parse outlines a unit: package name and doc, imports, and every top-level
// function that is not reserved. Routine categories are left empty.
func Parse(ctx context.Context, source []byte, opts Options) (*File, error) {
	start := time.Now()

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, describeError(root))
	}

	f := &File{}
	count := int(root.ChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, root.Child(i))
	}

	for i, n := range children {
		switch n.Type() {
		case "package_clause":
			if id := firstNamed(n, "package_identifier"); id != nil {
				f.Package = id.Content(source)
			}
			f.Doc = docAbove(children, i, source, opts.Tag)

		case "import_declaration":
			f.Imports = append(f.Imports, importPaths(n, source)...)

		case "function_declaration":
			nameNode := n.ChildByFieldName("name")
			if nameNode == nil {
				continue
			}
			name := nameNode.Content(source)
			if opts.reserved(name) {
				logging.ExtractDebug("skipping reserved routine %s", name)
				continue
			}
			f.Routines = append(f.Routines, Routine{
				Name:   name,
				Line:   int(n.StartPoint().Row),
				Doc:    docAbove(children, i, source, opts.Tag),
				Params: paramCount(n),
				Source: strings.Split(n.Content(source), "\n"),
			})
		}
	}

	logging.ExtractDebug("parsed package %s: %d imports, %d routines in %v",
		f.Package, len(f.Imports), len(f.Routines), time.Since(start))
	return f, nil
}

// Extract parses a unit and assigns each routine the category of the nearest
// marker above it.
func Extract(ctx context.Context, source []byte, opts Options) (*File, error) {
	f, err := Parse(ctx, source, opts)
	if err != nil {
		return nil, err
	}
	bounds := Markers(source, opts.Tag)
	for i := range f.Routines {
		f.Routines[i].Category = CategoryOf(bounds, f.Routines[i].Line)
	}
	logging.Extract("package %s: %d routines across %d markers", f.Package, len(f.Routines), len(bounds)-1)
	return f, nil
}

// docAbove collects the comment lines that end directly above children[i].
// A category marker ends the doc block.
func docAbove(children []*sitter.Node, i int, source []byte, tag string) string {
	var parts []string
	row := children[i].StartPoint().Row
	for j := i - 1; j >= 0; j-- {
		c := children[j]
		if c.Type() != "comment" || c.EndPoint().Row+1 != row {
			break
		}
		text := c.Content(source)
		if tag != "" && strings.HasPrefix(strings.TrimSpace(text), tag) {
			break
		}
		parts = append([]string{commentText(text)}, parts...)
		row = c.StartPoint().Row
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func commentText(raw string) string {
	if strings.HasPrefix(raw, "/*") {
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "/*"), "*/")
		return strings.Join(strings.Fields(raw), " ")
	}
	return strings.TrimSpace(strings.TrimPrefix(raw, "//"))
}

func importPaths(n *sitter.Node, source []byte) []string {
	var paths []string
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "import_spec" {
			if p := n.ChildByFieldName("path"); p != nil {
				if path, err := strconv.Unquote(p.Content(source)); err == nil {
					paths = append(paths, path)
				}
			}
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(n)
	return paths
}

// paramCount counts declared parameters: each name in "a, b int", or one for
// an unnamed declaration such as "int".
func paramCount(fn *sitter.Node) int {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return 0
	}
	count := 0
	for i := 0; i < int(params.NamedChildCount()); i++ {
		decl := params.NamedChild(i)
		switch decl.Type() {
		case "parameter_declaration", "variadic_parameter_declaration":
		default:
			continue
		}
		names := 0
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			if decl.NamedChild(j).Type() == "identifier" {
				names++
			}
		}
		if names == 0 {
			names = 1
		}
		count += names
	}
	return count
}

func firstNamed(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}
	return nil
}

// describeError locates the first ERROR or missing node for the message.
func describeError(n *sitter.Node) string {
	if n.Type() == "ERROR" || n.IsMissing() {
		p := n.StartPoint()
		return fmt.Sprintf("line %d, column %d", p.Row+1, p.Column+1)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.HasError() {
			return describeError(c)
		}
	}
	return "unknown location"
}
