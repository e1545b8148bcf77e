package ringq

import "strings"

// DeleteMiddle deletes the middle element of q, which for n elements
// is the one at zero-based index n/2: the third of five elements and
// the fourth of six. It returns false if q is empty.
func (q *Queue) DeleteMiddle() bool {
	if q == nil {
		return false
	}

	ring := q.ring()
	if ring.Empty() {
		q.rejectEmpty("delete_middle")
		return false
	}

	// fast moves two links for each one of slow, so slow is halfway
	// there when fast reaches the sentinel or the node before it.
	slow, fast := ring.Next(), ring.Next()
	for fast != ring && fast.Next() != ring {
		slow = slow.Next()
		fast = fast.Next().Next()
	}

	q.delete(slow)
	return true
}

// DeleteDuplicates deletes every element whose value is equal to that
// of a neighbor, leaving only the values that appeared exactly once.
// q must already be sorted. Runs of equal values in an unsorted queue
// are still deleted, but equal values that are not adjacent are not
// noticed.
//
// DeleteDuplicates always returns true.
func (q *Queue) DeleteDuplicates() bool {
	if q == nil {
		return true
	}

	ring := q.ring()
	for cur := ring.Next(); cur != ring; {
		v := elementOf(cur).value

		next := cur.Next()
		dup := false
		for next != ring && elementOf(next).value == v {
			after := next.Next()
			q.delete(next)
			next = after
			dup = true
		}
		if dup {
			q.delete(cur)
		}

		cur = next
	}

	return true
}

// Swap exchanges the positions of every two adjacent elements of q,
// starting from the head. With an odd number of elements the last one
// stays in place.
func (q *Queue) Swap() {
	if q == nil {
		return
	}
	q.ring().SwapPairs()
}

// Reverse reverses the order of the elements of q.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	q.ring().Reverse()
}

// Sort sorts q in ascending order by bytewise comparison of values.
// Elements with equal values keep their relative order.
func (q *Queue) Sort() {
	if q == nil {
		return
	}
	q.ring().SortFunc(compareElements)
}

func compareElements(a, b *Element) int {
	return strings.Compare(a.value, b.value)
}
