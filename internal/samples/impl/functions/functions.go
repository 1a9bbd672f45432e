// Package functions shows function values, closures, variadics and defer.
package functions

import (
	"sort"
	"strings"
)

type metronome struct{ bpm int }

func (m metronome) tick(beats int) int { return m.bpm * beats }

// category: closures

// Closure a function literal captures variables from its scope.
func Closure() []int {
	count := 0
	next := func() int {
		count++
		return count
	}
	return []int{next(), next(), next()}
}

// Generator closures keep state between calls.
func Generator() []int {
	a, b := 0, 1
	fib := func() int {
		a, b = b, a+b
		return a
	}
	var out []int
	for i := 0; i < 7; i++ {
		out = append(out, fib())
	}
	return out
}

// category: signatures

// Variadic collects trailing arguments into a slice.
func Variadic() int {
	sum := func(nums ...int) int {
		total := 0
		for _, n := range nums {
			total += n
		}
		return total
	}
	scale := []int{3, 4, 5}
	return sum(1, 2) + sum(scale...)
}

// MultipleResults functions can return several values.
func MultipleResults() string {
	split := func(s string) (string, string) {
		parts := strings.SplitN(s, "/", 2)
		return parts[0], parts[1]
	}
	num, den := split("3/4")
	return den + "/" + num
}

// NamedResults named results can be set before a bare return.
func NamedResults() int {
	bars := func(beats, perBar int) (full int) {
		full = beats / perBar
		return
	}
	return bars(14, 4)
}

// category: function values

// FunctionTable functions are values and can live in maps.
func FunctionTable() []int {
	ops := map[string]func(int, int) int{
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
	}
	return []int{ops["add"](3, 4), ops["mul"](3, 4)}
}

// MethodValue binds a method to its receiver.
func MethodValue() int {
	tick := metronome{bpm: 120}.tick
	return tick(2)
}

// HigherOrder functions take functions as arguments.
func HigherOrder() []string {
	words := []string{"Banjo", "accordion", "Cello"}
	sort.Slice(words, func(i, j int) bool {
		return strings.ToLower(words[i]) < strings.ToLower(words[j])
	})
	return words
}

// category: defer

// DeferOrder deferred calls run last in, first out.
func DeferOrder() (order []string) {
	record := func(s string) { order = append(order, s) }
	func() {
		defer record("first")
		defer record("second")
		record("body")
	}()
	return order
}

// DeferArguments arguments of a deferred call are evaluated immediately.
func DeferArguments() (seen int) {
	n := 1
	func() {
		defer func(v int) { seen = v }(n)
		n = 2
	}()
	return seen
}
