package ringq

import (
	"log/slog"

	"github.com/pkg/errors"

	"deedles.dev/ringq/internal/list"
)

// ErrNilQueue is returned when inserting into a nil *Queue.
var ErrNilQueue = errors.New("ringq: nil queue")

// A Queue is a sequence of strings held in a circular doubly-linked
// list. A zero value Queue is ready to use and allocates from the heap.
// A Queue must not be copied after first use.
//
// All methods may be called on a nil *Queue. Such a queue is always
// empty, operations that report success report failure, and the
// others do nothing.
type Queue struct {
	_ noCopy

	head   list.Head[Element]
	alloc  Allocator
	logger *slog.Logger
}

// New returns an empty queue configured by opts.
func New(opts ...Option) *Queue {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	q := Queue{
		alloc:  o.alloc,
		logger: o.logger,
	}
	q.head.Init(nil)
	return &q
}

func (q *Queue) ring() *list.Head[Element] {
	if !q.head.Initialized() {
		q.head.Init(nil)
	}
	return &q.head
}

func (q *Queue) allocator() Allocator {
	if q.alloc == nil {
		return HeapAllocator{}
	}
	return q.alloc
}

func (q *Queue) log() *slog.Logger {
	if q.logger == nil {
		return slog.Default()
	}
	return q.logger
}

// Free removes and releases every element of q, leaving it empty.
func (q *Queue) Free() {
	if q == nil {
		return
	}

	for n := range q.ring().Nodes() {
		q.delete(n)
	}
}

// Size returns the number of elements in q. It walks the whole queue.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.ring().Len()
}

// Empty reports whether q has no elements.
func (q *Queue) Empty() bool {
	return q == nil || q.ring().Empty()
}

// InsertHead inserts a copy of s at the head of q.
//
// If either the element or its payload can't be allocated, q is left
// unchanged and the allocator's error is returned wrapped. Any part
// of the element that was already allocated is handed back to the
// allocator first.
func (q *Queue) InsertHead(s string) error {
	if q == nil {
		return ErrNilQueue
	}

	e, err := q.newElement(s)
	if err != nil {
		q.log().Debug("insert failed", slog.String("op", "insert_head"), slog.Any("err", err))
		return err
	}
	e.link.LinkAfter(q.ring())
	return nil
}

// InsertTail is like [Queue.InsertHead] but inserts s at the tail.
func (q *Queue) InsertTail(s string) error {
	if q == nil {
		return ErrNilQueue
	}

	e, err := q.newElement(s)
	if err != nil {
		q.log().Debug("insert failed", slog.String("op", "insert_tail"), slog.Any("err", err))
		return err
	}
	e.link.LinkBefore(q.ring())
	return nil
}

func (q *Queue) newElement(s string) (*Element, error) {
	alloc := q.allocator()

	e, err := alloc.AllocElement()
	if err != nil {
		return nil, errors.Wrap(err, "ringq: allocate element")
	}

	v, err := alloc.AllocPayload(s)
	if err != nil {
		alloc.FreeElement(e)
		return nil, errors.Wrap(err, "ringq: allocate payload")
	}

	*e = Element{value: v, alloc: alloc}
	e.link.Init(e)
	return e, nil
}

// RemoveHead unlinks the element at the head of q and returns it, or
// returns nil if q is empty. The caller becomes the owner of the
// element and is responsible for releasing it.
//
// If buf is not empty, the element's value is also copied into it,
// followed by a zero byte. Values that don't fit in len(buf)-1 bytes
// are truncated.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q.Empty() {
		q.rejectEmpty("remove_head")
		return nil
	}
	return q.remove(q.head.Next(), buf)
}

// RemoveTail is like [Queue.RemoveHead] but removes the element at the
// tail.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q.Empty() {
		q.rejectEmpty("remove_tail")
		return nil
	}
	return q.remove(q.head.Prev(), buf)
}

func (q *Queue) remove(n *list.Head[Element], buf []byte) *Element {
	n.Unlink()
	e := elementOf(n)
	e.copyTo(buf)
	return e
}

func (q *Queue) rejectEmpty(op string) {
	if q == nil {
		return
	}
	q.log().Debug("queue is empty", slog.String("op", op))
}

// delete unlinks and releases the element at n.
func (q *Queue) delete(n *list.Head[Element]) {
	n.Unlink()
	elementOf(n).Release()
}
