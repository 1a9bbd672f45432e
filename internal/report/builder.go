// Package report builds the categorized example report for a sample unit.
//
// Build extracts the unit's routines, runs each one, and orders them by
// category then name. Render lays the result out as text for a pager.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gohow/internal/catalogue"
	"gohow/internal/extract"
	"gohow/internal/logging"
	"gohow/internal/runner"
)

// Entry is one rendered example.
type Entry struct {
	Name   string
	Doc    string
	Code   []string
	Result string
}

// Category is a group of entries sharing a category marker.
type Category struct {
	Name    string
	Step    int // 1-based position among the report's categories
	Total   int
	Entries []Entry
}

// Report is the built, not yet rendered, view of a unit.
type Report struct {
	Unit       catalogue.Unit
	Categories []Category
}

// Options configures Build.
type Options struct {
	Extract     extract.Options
	Executor    *runner.Executor
	CallTimeout time.Duration // per routine; zero means no limit beyond ctx
}

// DefaultOptions returns the default marker tag, reserved names and allow list.
func DefaultOptions() Options {
	return Options{
		Extract:     extract.DefaultOptions(),
		Executor:    runner.NewExecutor(nil),
		CallTimeout: 10 * time.Second,
	}
}

type item struct {
	category string
	entry    Entry
}

// Build extracts, executes and groups the routines of unit.
// The first failing routine aborts the build.
func Build(ctx context.Context, unit catalogue.Unit, opts Options) (*Report, error) {
	if opts.Executor == nil {
		opts.Executor = runner.NewExecutor(nil)
	}
	start := time.Now()
	log := logging.Get(logging.CategoryRender).With("unit", unit.Name)

	outline, err := extract.Extract(ctx, unit.Source, opts.Extract)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", unit.Name, err)
	}

	session, err := opts.Executor.Load(ctx, unit)
	if err != nil {
		return nil, err
	}

	items := make([]item, 0, len(outline.Routines))
	for _, r := range outline.Routines {
		if r.Params > 0 {
			return nil, fmt.Errorf("%s.%s(): %w: routine takes %d parameters",
				unit.Package, r.Name, runner.ErrExecution, r.Params)
		}
		res, err := call(ctx, session, r.Name, opts.CallTimeout)
		if err != nil {
			log.Warn("routine %s failed: %v", r.Name, err)
			return nil, err
		}
		items = append(items, item{
			category: r.Category,
			entry: Entry{
				Name:   r.Name,
				Doc:    r.Doc,
				Code:   extract.CodeLines(r.Source),
				Result: res.Repr(),
			},
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].entry.Name < items[j].entry.Name
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].category < items[j].category
	})

	rep := &Report{Unit: unit, Categories: group(items)}
	log.Info("built %d routines in %d categories (%v)",
		len(items), len(rep.Categories), time.Since(start))
	return rep, nil
}

func call(ctx context.Context, s *runner.Session, name string, timeout time.Duration) (runner.Result, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.Call(ctx, name)
}

// group splits sorted items into runs of equal category.
func group(items []item) []Category {
	var cats []Category
	for _, it := range items {
		if n := len(cats); n == 0 || cats[n-1].Name != it.category {
			cats = append(cats, Category{Name: it.category})
		}
		last := &cats[len(cats)-1]
		last.Entries = append(last.Entries, it.entry)
	}
	for i := range cats {
		cats[i].Step = i + 1
		cats[i].Total = len(cats)
	}
	return cats
}

// Len returns the number of entries across all categories.
func (r *Report) Len() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Entries)
	}
	return n
}
