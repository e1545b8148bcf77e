package list

// SortFunc sorts the ring anchored at h in ascending order as
// determined by cmp, which is called with the owners of two nodes.
// The sort is stable.
//
// While sorting, the ring is opened into a nil-terminated run that
// only follows next references. The prev references are rebuilt once
// the run is sorted.
func (h *Head[T]) SortFunc(cmp func(a, b *T) int) {
	if h.next == h || h.next.next == h {
		return
	}

	h.prev.next = nil
	first := mergeSort(h.next, cmp)

	prev := h
	for cur := first; cur != nil; cur = cur.next {
		cur.prev = prev
		prev = cur
	}
	prev.next = h
	h.prev = prev
}

func mergeSort[T any](first *Head[T], cmp func(a, b *T) int) *Head[T] {
	if first == nil || first.next == nil {
		return first
	}

	second := split(first)
	return merge(mergeSort(first, cmp), mergeSort(second, cmp), cmp)
}

// split cuts the run starting at first after its midpoint and returns
// the start of the second half. The first half is never shorter.
func split[T any](first *Head[T]) *Head[T] {
	slow, fast := first, first.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	second := slow.next
	slow.next = nil
	return second
}

// merge combines two sorted runs. On ties the node from left wins.
func merge[T any](left, right *Head[T], cmp func(a, b *T) int) *Head[T] {
	var first *Head[T]
	tail := &first
	for left != nil && right != nil {
		if cmp(right.owner, left.owner) < 0 {
			*tail = right
			right = right.next
		} else {
			*tail = left
			left = left.next
		}
		tail = &(*tail).next
	}

	if left != nil {
		*tail = left
	} else {
		*tail = right
	}
	return first
}
