package list

// Reverse reverses the order of the ring anchored at h in place by
// exchanging the next and prev references of every node, h included.
// No node changes ring membership.
func (h *Head[T]) Reverse() {
	cur := h
	for {
		next := cur.next
		cur.next, cur.prev = cur.prev, next
		cur = next
		if cur == h {
			return
		}
	}
}

// SwapPairs exchanges the positions of each adjacent pair of nodes,
// walking from h.Next. A trailing unpaired node stays where it is.
func (h *Head[T]) SwapPairs() {
	for a := h.next; a != h && a.next != h; a = a.next {
		b := a.next
		b.Unlink()
		b.LinkBefore(a)
	}
}
