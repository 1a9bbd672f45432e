// Package catalogue holds the registry of sample units shown by gohow.
package catalogue

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gohow/internal/extract"
	"gohow/internal/logging"
	"gohow/internal/samples"
)

// ErrUnknownUnit is returned by Lookup for a name that is not registered.
var ErrUnknownUnit = errors.New("unknown sample unit")

// Unit is one sample unit: a Go source file of example routines.
type Unit struct {
	Name        string // dotted path, e.g. "lib.containers"
	Package     string
	Description string
	Path        string // path inside the source filesystem
	Imports     []string
	Source      []byte
}

// Catalogue maps unit names to units.
type Catalogue struct {
	units map[string]Unit
}

// New returns an empty catalogue.
func New() *Catalogue {
	return &Catalogue{units: make(map[string]Unit)}
}

// Load walks fsys from root and registers every non-test .go file as a unit.
// Files whose name starts with an underscore are skipped.
func Load(ctx context.Context, fsys fs.FS, root string) (*Catalogue, error) {
	c := New()
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return fs.SkipDir
			}
			return nil
		}
		base := d.Name()
		if !strings.HasSuffix(base, ".go") || strings.HasSuffix(base, "_test.go") || strings.HasPrefix(base, "_") {
			return nil
		}

		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		outline, err := extract.Parse(ctx, src, extract.Options{})
		if err != nil {
			return fmt.Errorf("unit %s: %w", p, err)
		}

		u := Unit{
			Name:        unitName(root, p),
			Package:     outline.Package,
			Description: outline.Doc,
			Path:        p,
			Imports:     outline.Imports,
			Source:      src,
		}
		if _, dup := c.units[u.Name]; dup {
			return fmt.Errorf("duplicate sample unit %q at %s", u.Name, p)
		}
		c.Add(u)
		logging.CatalogueDebug("registered %s from %s", u.Name, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	logging.Catalogue("loaded %d units from %s", len(c.units), root)
	return c, nil
}

// Builtin loads the units embedded in the binary.
func Builtin(ctx context.Context) (*Catalogue, error) {
	return Load(ctx, samples.FS(), ".")
}

// LoadDir loads units from a directory on disk.
func LoadDir(ctx context.Context, dir string) (*Catalogue, error) {
	return Load(ctx, os.DirFS(dir), ".")
}

// unitName derives the dotted name from the file's directory below root.
// The file name is appended unless it repeats the directory name.
func unitName(root, p string) string {
	rel := p
	if root != "." {
		rel = strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
	}
	dir, file := path.Split(rel)
	dir = strings.Trim(dir, "/")
	stem := strings.TrimSuffix(file, ".go")

	var parts []string
	if dir != "" {
		parts = strings.Split(dir, "/")
	}
	if len(parts) == 0 || parts[len(parts)-1] != stem {
		parts = append(parts, stem)
	}
	return strings.Join(parts, ".")
}

// Add registers a unit, replacing any unit of the same name.
func (c *Catalogue) Add(u Unit) {
	c.units[u.Name] = u
}

// Merge adds every unit of other, which wins on name clashes.
func (c *Catalogue) Merge(other *Catalogue) {
	for _, u := range other.units {
		if _, ok := c.units[u.Name]; ok {
			logging.Catalogue("unit %s overridden by %s", u.Name, u.Path)
		}
		c.Add(u)
	}
}

// Lookup returns the unit registered under name.
func (c *Catalogue) Lookup(name string) (Unit, error) {
	u, ok := c.units[name]
	if !ok {
		return Unit{}, fmt.Errorf("%w %q (choose from %s)", ErrUnknownUnit, name, strings.Join(c.Names(), ", "))
	}
	return u, nil
}

// Names returns the sorted unit names.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.units))
	for name := range c.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Units returns every unit sorted by name.
func (c *Catalogue) Units() []Unit {
	units := make([]Unit, 0, len(c.units))
	for _, name := range c.Names() {
		units = append(units, c.units[name])
	}
	return units
}

// Len returns the number of registered units.
func (c *Catalogue) Len() int {
	return len(c.units)
}
