package ringq

import (
	"log/slog"

	"deedles.dev/ringq/internal/list"
)

// An Element is a member of a [Queue]. It owns a copy of the string
// it was inserted with.
type Element struct {
	link     list.Head[Element]
	value    string
	alloc    Allocator
	released bool
}

// Value returns the element's payload. It returns the empty string for
// a nil or released element.
func (e *Element) Value() string {
	if e == nil {
		return ""
	}
	return e.value
}

// Release frees the payload of e and returns e to the allocator it came
// from. It must only be called by the owner of e, that is, after e has
// been removed from its queue. Releasing a nil or already released
// element does nothing. An element that is still linked into a queue
// belongs to that queue and is left untouched; Release reports whether
// it released e.
func (e *Element) Release() bool {
	if e == nil || e.released {
		return false
	}
	if e.link.Linked() {
		slog.Debug("element is still in a queue", slog.String("op", "release"))
		return false
	}

	e.released = true
	e.value = ""
	if e.alloc != nil {
		e.alloc.FreeElement(e)
	}
	return true
}

// Released reports whether e has been released.
func (e *Element) Released() bool {
	return e != nil && e.released
}

// copyTo copies as much of the payload as fits into buf, leaving room
// for a terminating zero byte, which it always writes. It returns the
// number of payload bytes copied.
func (e *Element) copyTo(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	n := copy(buf[:len(buf)-1], e.value)
	buf[n] = 0
	return n
}

func elementOf(h *list.Head[Element]) *Element {
	return h.Owner()
}
