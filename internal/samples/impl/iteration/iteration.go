// Package iteration shows the forms of the for statement and range.
package iteration

import (
	"sort"
	"strings"
)

// Classic the three-clause loop.
func Classic() int {
	total := 0
	for i := 1; i <= 10; i++ {
		total += i
	}
	return total
}

// category: range

// RangeSlice yields index and element.
func RangeSlice() []string {
	var out []string
	for i, note := range []string{"do", "re", "mi"} {
		out = append(out, strings.Repeat("*", i)+note)
	}
	return out
}

// RangeMap iteration order is unspecified, sort the keys for stable output.
func RangeMap() []string {
	scores := map[string]int{"viola": 3, "cello": 1, "harp": 2}
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RangeString ranges over runes and reports byte offsets.
func RangeString() []int {
	var offsets []int
	for i := range "çava" {
		offsets = append(offsets, i)
	}
	return offsets
}

// RangeChannel receives until the channel is closed.
func RangeChannel() []int {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	var got []int
	for v := range ch {
		got = append(got, v*v)
	}
	return got
}

// category: control flow

// While a for with only a condition.
func While() int {
	n := 1
	for n < 100 {
		n *= 3
	}
	return n
}

// Continue skips the rest of the body.
func Continue() []int {
	var odd []int
	for i := 0; i < 8; i++ {
		if i%2 == 0 {
			continue
		}
		odd = append(odd, i)
	}
	return odd
}

// LabeledBreak leaves an outer loop.
func LabeledBreak() [2]int {
	var found [2]int
outer:
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i*j == 6 {
				found = [2]int{i, j}
				break outer
			}
		}
	}
	return found
}

// category: iterator pattern

// PullIterator a closure returning (value, ok) acts as an iterator.
func PullIterator() []string {
	items := []string{"intro", "verse", "chorus"}
	pos := 0
	next := func() (string, bool) {
		if pos >= len(items) {
			return "", false
		}
		pos++
		return items[pos-1], true
	}
	var seen []string
	for v, ok := next(); ok; v, ok = next() {
		seen = append(seen, v)
	}
	return seen
}

// PushIterator a function that calls yield for each element.
func PushIterator() int {
	each := func(yield func(int) bool) {
		for _, v := range []int{4, 8, 15, 16, 23, 42} {
			if !yield(v) {
				return
			}
		}
	}
	sum := 0
	each(func(v int) bool {
		sum += v
		return v < 15
	})
	return sum
}
