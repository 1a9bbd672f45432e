// Package runner executes sample routines with the Yaegi Go interpreter.
//
// A unit's source is evaluated once per Session; each routine is then called
// by evaluating "<package>.<Name>()" and its single result is captured.
//
// SAFETY RESTRICTIONS:
// - Only stdlib imports on the allow list are accepted
// - No filesystem, process, network or unsafe access
// - Every evaluation honours the context deadline
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"gohow/internal/catalogue"
	"gohow/internal/logging"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

var (
	// ErrForbiddenImport is returned when a unit imports a package outside the allow list.
	ErrForbiddenImport = errors.New("forbidden import")

	// ErrExecution wraps failures raised while evaluating a unit or calling a routine.
	ErrExecution = errors.New("execution failed")
)

// DefaultAllowed lists the stdlib packages sample units may import.
//
// EXPLICITLY BLOCKED (unsafe packages):
// "os", "os/exec", "net", "net/http", "syscall", "unsafe", "plugin"
var DefaultAllowed = []string{
	"bytes",
	"container/heap",
	"container/list",
	"container/ring",
	"encoding/base64",
	"encoding/csv",
	"encoding/hex",
	"encoding/json",
	"errors",
	"fmt",
	"io",
	"math",
	"math/big",
	"path",
	"regexp",
	"sort",
	"strconv",
	"strings",
	"text/tabwriter",
	"text/template",
	"time",
	"unicode",
	"unicode/utf8",
}

// Executor creates interpreter sessions.
type Executor struct {
	allowedPackages map[string]bool
}

// NewExecutor creates an executor accepting the given import paths.
// A nil list means DefaultAllowed.
func NewExecutor(allowed []string) *Executor {
	if allowed == nil {
		allowed = DefaultAllowed
	}
	e := &Executor{allowedPackages: make(map[string]bool, len(allowed))}
	for _, p := range allowed {
		e.allowedPackages[p] = true
	}
	return e
}

// Session is a unit loaded into its own interpreter.
type Session struct {
	unit   catalogue.Unit
	interp *interp.Interpreter
	out    *outputBuffer
}

// outputBuffer collects what the interpreter writes to stdout and stderr.
// Routines may print from goroutines, so writes are serialized.
type outputBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *outputBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *outputBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

// since returns the text written after offset.
func (b *outputBuffer) since(offset int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset > b.buf.Len() {
		return ""
	}
	return string(b.buf.Bytes()[offset:])
}

// Load validates the unit's imports and evaluates its source.
func (e *Executor) Load(ctx context.Context, unit catalogue.Unit) (*Session, error) {
	if err := e.validateImports(unit.Imports); err != nil {
		return nil, fmt.Errorf("unit %s: %w", unit.Name, err)
	}
	if unit.Package == "" {
		return nil, fmt.Errorf("unit %s: %w: no package clause", unit.Name, ErrExecution)
	}

	out := &outputBuffer{}
	i := interp.New(interp.Options{Stdout: out, Stderr: out})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib: %w", err)
	}

	start := time.Now()
	if _, err := i.EvalWithContext(ctx, string(unit.Source)); err != nil {
		if text := strings.TrimSpace(out.since(0)); text != "" {
			logging.ExecuteError("unit %s output: %s", unit.Name, text)
		}
		return nil, fmt.Errorf("unit %s: %w: %w", unit.Name, ErrExecution, err)
	}
	logging.Execute("loaded unit %s in %v", unit.Name, time.Since(start))

	return &Session{unit: unit, interp: i, out: out}, nil
}

// output returns everything the unit's code has printed so far,
// including the interpreter's panic traces.
func (s *Session) output() string {
	return s.out.since(0)
}

// Call runs the named niladic routine and returns its result.
func (s *Session) Call(ctx context.Context, name string) (result Result, err error) {
	expr := fmt.Sprintf("%s.%s()", s.unit.Package, name)

	// Yaegi reports most panics as errors; anything that escapes is still a failed call.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %w: panic: %v", expr, ErrExecution, r)
		}
	}()

	start := time.Now()
	mark := s.out.Len()
	v, err := s.interp.EvalWithContext(ctx, expr)
	printed := strings.TrimSpace(s.out.since(mark))
	if err != nil {
		logging.ExecuteError("%s failed: %v", expr, err)
		if printed != "" {
			logging.ExecuteError("%s output: %s", expr, printed)
		}
		return Result{}, fmt.Errorf("%s: %w: %w", expr, ErrExecution, err)
	}
	if printed != "" {
		logging.ExecuteDebug("%s printed: %s", expr, printed)
	}
	logging.ExecuteDebug("%s returned in %v", expr, time.Since(start))
	return newResult(v), nil
}

// validateImports checks that the unit only imports allowed packages.
func (e *Executor) validateImports(imports []string) error {
	var forbidden []string
	for _, pkg := range imports {
		if !e.allowedPackages[pkg] {
			forbidden = append(forbidden, pkg)
		}
	}
	if len(forbidden) > 0 {
		return fmt.Errorf("%w: %v (allowed: %v)", ErrForbiddenImport, forbidden, e.getAllowedPackages())
	}
	return nil
}

// getAllowedPackages returns the sorted allow list for error messages.
func (e *Executor) getAllowedPackages() []string {
	pkgs := make([]string, 0, len(e.allowedPackages))
	for pkg := range e.allowedPackages {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}

// Result is the value returned by a routine.
type Result struct {
	value reflect.Value
}

func newResult(v reflect.Value) Result {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Result{}
		}
		v = v.Elem()
	}
	return Result{value: v}
}

// Value returns the result as an interface value; nil when the routine returned nothing.
func (r Result) Value() interface{} {
	if !r.value.IsValid() || !r.value.CanInterface() {
		return nil
	}
	return r.value.Interface()
}

// Repr renders the result as a Go literal.
func (r Result) Repr() string {
	v := r.Value()
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%#v", v)
}
