// Package containers shows the doubly linked list and ring from the container packages.
package containers

import (
	"container/list"
	"container/ring"
)

// category: list

// PushBoth pushes at both ends of a list.
func PushBoth() []interface{} {
	l := list.New()
	l.PushBack("verse")
	l.PushFront("intro")
	l.PushBack("outro")
	var out []interface{}
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}

// InsertAfter inserts relative to an existing element.
func InsertAfter() []interface{} {
	l := list.New()
	first := l.PushBack(1)
	l.PushBack(3)
	l.InsertAfter(2, first)
	var out []interface{}
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}
	return out
}

// Remove unlinks an element in constant time.
func Remove() int {
	l := list.New()
	l.PushBack("a")
	b := l.PushBack("b")
	l.PushBack("c")
	l.Remove(b)
	return l.Len()
}

// Backward walks from the tail.
func Backward() []interface{} {
	l := list.New()
	for _, n := range []string{"do", "re", "mi"} {
		l.PushBack(n)
	}
	var out []interface{}
	for e := l.Back(); e != nil; e = e.Prev() {
		out = append(out, e.Value)
	}
	return out
}

// category: ring

// RingDo visits every element of a circular list.
func RingDo() int {
	r := ring.New(4)
	for i := 1; i <= 4; i++ {
		r.Value = i
		r = r.Next()
	}
	sum := 0
	r.Do(func(v interface{}) {
		sum += v.(int)
	})
	return sum
}

// RingMove rotates the ring.
func RingMove() interface{} {
	r := ring.New(3)
	for _, s := range []string{"kick", "snare", "hat"} {
		r.Value = s
		r = r.Next()
	}
	return r.Move(-1).Value
}
