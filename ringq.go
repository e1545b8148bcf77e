// Package ringq provides a queue of strings built on an intrusive,
// circular, doubly-linked list anchored by a sentinel node.
//
// Besides insertion and removal at both ends, a [Queue] can be
// rearranged in place: reversed, swapped pairwise, stably sorted, and
// pruned of its middle element or of duplicated runs. Rearrangements
// only relink existing elements and never allocate.
//
// A Queue exclusively owns the elements linked into it. Removing an
// element hands ownership to the caller, who releases it with
// [Element.Release] once done with it. A Queue is not safe for
// concurrent use; callers that share one must serialize access
// themselves.
package ringq

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
