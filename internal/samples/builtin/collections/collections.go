// Package collections shows the built-in slice and map types and the builtins that work on them.
package collections

import "unicode/utf8"

// category: slices

// Append adds elements and grows the backing array when needed.
func Append() []string {
	instruments := []string{"guitar"}
	instruments = append(instruments, "bass", "drums")
	return instruments
}

// Copy copies the smaller of the two lengths.
func Copy() int {
	dst := make([]int, 2)
	return copy(dst, []int{7, 8, 9})
}

// Aliasing sub-slices share storage with their parent.
func Aliasing() []int {
	notes := []int{1, 2, 3, 4}
	head := notes[:2]
	head[0] = 100
	return notes
}

// FullSliceExpr a third index caps the capacity of the result.
func FullSliceExpr() int {
	notes := []int{1, 2, 3, 4}
	head := notes[0:2:2]
	return cap(head)
}

// AppendDetaches appending past capacity allocates a new array.
func AppendDetaches() []int {
	notes := []int{1, 2, 3, 4}
	head := notes[0:2:2]
	head = append(head, 30)
	head[0] = 10
	return notes
}

// category: maps

// Lookup the comma-ok form tells a zero value from a missing key.
func Lookup() bool {
	tempo := map[string]int{"largo": 50}
	_, ok := tempo["presto"]
	return ok
}

// Delete removes a key, deleting a missing key is a no-op.
func Delete() map[string]int {
	tempo := map[string]int{"largo": 50, "presto": 180}
	delete(tempo, "largo")
	delete(tempo, "vivace")
	return tempo
}

// ZeroValue reading a missing key yields the zero value.
func ZeroValue() int {
	counts := map[string]int{}
	counts["kick"]++
	counts["kick"]++
	return counts["kick"] + counts["snare"]
}

// Grouping maps of slices collect values per key.
func Grouping() map[int][]string {
	groups := map[int][]string{}
	for _, word := range []string{"sol", "fa", "mi", "do", "la"} {
		groups[len(word)] = append(groups[len(word)], word)
	}
	return groups
}

// category: strings

// ByteLength len counts bytes, not characters.
func ByteLength() int {
	return len("déjà")
}

// RuneCount utf8 counts characters.
func RuneCount() int {
	return utf8.RuneCountInString("déjà")
}

// Indexing indexing a string yields a byte.
func Indexing() byte {
	return "jazz"[0]
}
