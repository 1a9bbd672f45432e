// Package errs shows error values, wrapping and panics.
package errs

import (
	"errors"
	"fmt"
	"strconv"
)

var errOffKey = errors.New("off key")

// category: error values

// New creates an error holding a message.
func New() string {
	return errors.New("string broken").Error()
}

// Wrap adds context with %w and keeps the original error.
func Wrap() string {
	err := fmt.Errorf("rehearsal: %w", errOffKey)
	return err.Error()
}

// Is matches a sentinel anywhere in the chain.
func Is() bool {
	err := fmt.Errorf("concert: %w", fmt.Errorf("rehearsal: %w", errOffKey))
	return errors.Is(err, errOffKey)
}

// As extracts a typed error from the chain.
func As() string {
	_, err := strconv.Atoi("forte")
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Func + ": " + numErr.Num
	}
	return ""
}

// Unwrap peels one layer.
func Unwrap() bool {
	err := fmt.Errorf("tuning: %w", errOffKey)
	return errors.Unwrap(err) == errOffKey
}

// Join combines several errors into one.
func Join() string {
	err := errors.Join(errors.New("flat"), errors.New("sharp"))
	return err.Error()
}

// category: custom errors

type tuningError struct {
	note  string
	cents int
}

func (e *tuningError) Error() string {
	return fmt.Sprintf("%s is %d cents off", e.note, e.cents)
}

// CustomType any type with an Error method is an error.
func CustomType() string {
	var err error = &tuningError{note: "A", cents: 12}
	return err.Error()
}

// category: panics

// Recover stops a panic inside a deferred call.
func Recover() (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprint("recovered: ", r)
		}
	}()
	panic("amplifier on fire")
}

// DeferredRuns deferred calls still run while panicking.
func DeferredRuns() (steps []string) {
	defer func() {
		recover()
		steps = append(steps, "recovered")
	}()
	defer func() {
		steps = append(steps, "unplug")
	}()
	panic("feedback")
}
