// Package list implements an intrusive, circular, doubly-linked list.
//
// A list is anchored by a sentinel [Head] that never carries a value.
// Values that want to be members of a list embed a Head of their own
// and initialize it with a pointer back to themselves, so that a node
// reached while walking the ring can be turned back into the value
// that owns it.
package list

import "iter"

// Head is a link in a circular doubly-linked list. A Head must be
// initialized with [Head.Init] before use. An initialized Head that
// is not a member of any larger ring points to itself in both
// directions.
type Head[T any] struct {
	next, prev *Head[T]
	owner      *T
}

// Init makes h a single-node ring owned by owner. Sentinels pass nil.
func (h *Head[T]) Init(owner *T) {
	h.next = h
	h.prev = h
	h.owner = owner
}

// Initialized reports whether h has been through Init.
func (h *Head[T]) Initialized() bool {
	return h.next != nil
}

// Owner returns the value that h was initialized with.
func (h *Head[T]) Owner() *T {
	return h.owner
}

func (h *Head[T]) Next() *Head[T] { return h.next }
func (h *Head[T]) Prev() *Head[T] { return h.prev }

// Empty reports whether the ring anchored at h contains no other
// nodes.
func (h *Head[T]) Empty() bool {
	return h.next == h
}

// Linked reports whether h is currently part of a ring with at least
// one other node.
func (h *Head[T]) Linked() bool {
	return h.next != nil && h.next != h
}

// LinkAfter splices h into the ring immediately after at. h must not
// be linked into another ring.
func (h *Head[T]) LinkAfter(at *Head[T]) {
	next := at.next
	h.prev = at
	h.next = next
	next.prev = h
	at.next = h
}

// LinkBefore splices h into the ring immediately before at.
func (h *Head[T]) LinkBefore(at *Head[T]) {
	h.LinkAfter(at.prev)
}

// Unlink removes h from its ring, joining its former neighbors to
// each other. Afterwards h is a single-node ring.
func (h *Head[T]) Unlink() {
	h.next.prev = h.prev
	h.prev.next = h.next
	h.next = h
	h.prev = h
}

// Len counts the nodes of the ring other than h.
func (h *Head[T]) Len() int {
	var n int
	for cur := h.next; cur != h; cur = cur.next {
		n++
	}
	return n
}

// Nodes returns an iterator over the nodes of the ring anchored at h,
// starting with h.Next and stopping before h is reached again. It is
// safe to unlink the currently-yielded node during iteration.
func (h *Head[T]) Nodes() iter.Seq[*Head[T]] {
	return func(yield func(*Head[T]) bool) {
		cur := h.next
		for cur != h {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

// Backward is like [Head.Nodes] but walks the ring in the opposite
// direction, starting with h.Prev.
func (h *Head[T]) Backward() iter.Seq[*Head[T]] {
	return func(yield func(*Head[T]) bool) {
		cur := h.prev
		for cur != h {
			prev := cur.prev
			if !yield(cur) {
				return
			}
			cur = prev
		}
	}
}

// Owners is like [Head.Nodes] but yields the owner of each node.
func (h *Head[T]) Owners() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := range h.Nodes() {
			if !yield(n.owner) {
				return
			}
		}
	}
}
