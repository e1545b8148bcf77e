package ringq

import "strings"

// An Allocator provides the storage for the elements of a [Queue].
// Either allocation may fail, in which case the insertion that asked
// for it fails without changing the queue.
type Allocator interface {
	// AllocElement returns a new, zeroed element.
	AllocElement() (*Element, error)

	// AllocPayload returns a copy of s that the element will own.
	AllocPayload(s string) (string, error)

	// FreeElement takes back an element, either when an insertion is
	// rolled back or when the element is released by its owner.
	FreeElement(e *Element)
}

// HeapAllocator is the default [Allocator]. It allocates from the Go
// heap and never fails.
type HeapAllocator struct{}

func (HeapAllocator) AllocElement() (*Element, error) {
	return new(Element), nil
}

func (HeapAllocator) AllocPayload(s string) (string, error) {
	return strings.Clone(s), nil
}

func (HeapAllocator) FreeElement(*Element) {}
