package ringq

import (
	"fmt"
	"iter"
	"slices"
)

// All returns an iterator over the values of q from head to tail.
// The iterator may be used more than once.
func (q *Queue) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := range q.Elements() {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values of q from tail to head.
func (q *Queue) Backward() iter.Seq[string] {
	return func(yield func(string) bool) {
		if q == nil {
			return
		}
		for n := range q.ring().Backward() {
			if !yield(elementOf(n).value) {
				return
			}
		}
	}
}

// Elements returns an iterator over the elements of q from head to
// tail. The queue still owns the yielded elements, but it is safe to
// remove the currently-yielded element during iteration.
func (q *Queue) Elements() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if q == nil {
			return
		}
		for e := range q.ring().Owners() {
			if !yield(e) {
				return
			}
		}
	}
}

// Strings returns the values of q from head to tail.
func (q *Queue) Strings() []string {
	return slices.Collect(q.All())
}

func (q *Queue) String() string {
	return fmt.Sprint(q.Strings())
}
