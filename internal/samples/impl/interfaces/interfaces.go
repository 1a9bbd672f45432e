// Package interfaces shows implicit interface satisfaction, type switches and embedding.
package interfaces

import (
	"fmt"
	"math"
)

type shape interface {
	area() float64
}

type square struct{ side float64 }

func (s square) area() float64 { return s.side * s.side }

type circle struct{ radius float64 }

func (c circle) area() float64 { return math.Pi * c.radius * c.radius }

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

type volumeError struct{ level int }

func (e *volumeError) Error() string { return fmt.Sprintf("volume %d is too loud", e.level) }

type instrument struct{ name string }

func (i instrument) describe() string { return "a " + i.name }

type guitar struct {
	instrument
	strings int
}

// category: dispatch

// DynamicDispatch calls the method of the concrete type behind the interface.
func DynamicDispatch() float64 {
	shapes := []shape{square{side: 2}, circle{radius: 1}}
	total := 0.0
	for _, s := range shapes {
		total += s.area()
	}
	return math.Round(total*100) / 100
}

// TypeSwitch branches on the dynamic type.
func TypeSwitch() []string {
	var kinds []string
	for _, v := range []interface{}{42, "riff", 1.5, nil} {
		switch v.(type) {
		case int:
			kinds = append(kinds, "int")
		case string:
			kinds = append(kinds, "string")
		case nil:
			kinds = append(kinds, "nil")
		default:
			kinds = append(kinds, "other")
		}
	}
	return kinds
}

// TypeAssertion the comma-ok form avoids a panic.
func TypeAssertion() bool {
	var v interface{} = "chord"
	_, ok := v.(int)
	return ok
}

// EmptyInterface any value fits in interface{}.
func EmptyInterface() string {
	values := []interface{}{7, "seven", 7.0, []int{7}}
	return fmt.Sprintf("%T %T %T %T", values...)
}

// category: composition

// Embedding the methods of an embedded struct are promoted.
func Embedding() string {
	g := guitar{instrument: instrument{name: "telecaster"}, strings: 6}
	return g.describe()
}

// category: standard interfaces

// Stringer a String method controls how a value prints.
func Stringer() string {
	var s fmt.Stringer = celsius(21.5)
	return s.String()
}

// ErrorInterface with a pointer receiver only *volumeError satisfies error.
func ErrorInterface() string {
	var err error = &volumeError{level: 11}
	return err.Error()
}
