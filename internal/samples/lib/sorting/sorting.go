// Package sorting shows sorting and searching with the sort package.
package sorting

import (
	"sort"
	"strings"
)

// category: sorting

// Ints sorts a slice of ints in place.
func Ints() []int {
	beats := []int{4, 1, 3, 2}
	sort.Ints(beats)
	return beats
}

// Strings sorts by byte-wise comparison, upper case first.
func Strings() []string {
	names := []string{"oboe", "Flute", "clarinet"}
	sort.Strings(names)
	return names
}

// Slice sorts with a less function.
func Slice() []string {
	names := []string{"trombone", "horn", "sax"}
	sort.Slice(names, func(i, j int) bool {
		return len(names[i]) < len(names[j])
	})
	return names
}

// SliceStable keeps the order of equal elements.
func SliceStable() []string {
	names := []string{"bb", "a", "cc", "d", "ee"}
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) < len(names[j])
	})
	return names
}

// Reverse flips the order of a sort.Interface.
func Reverse() []int {
	beats := []int{2, 5, 1}
	sort.Sort(sort.Reverse(sort.IntSlice(beats)))
	return beats
}

// category: searching

// SearchInts binary-searches a sorted slice.
func SearchInts() int {
	return sort.SearchInts([]int{10, 20, 30, 40}, 30)
}

// Search finds the smallest index for which the predicate holds.
func Search() int {
	words := []string{"alto", "bass", "soprano", "tenor"}
	return sort.Search(len(words), func(i int) bool {
		return strings.Compare(words[i], "s") >= 0
	})
}

// IsSorted checks the order without sorting.
func IsSorted() bool {
	return sort.IntsAreSorted([]int{1, 2, 2, 5})
}
