package strq

import (
	"iter"
	"strings"

	"deedles.dev/strq/internal/list"
)

// A Queue is an ordered sequence of strings with constant-time
// insertion at the head or tail and constant-time removal from the
// head. A zero value Queue is ready to use.
//
// Every node of the underlying list belongs to exactly one Queue, so
// a Queue must not be copied after first use; doing so would leave
// two queues sharing nodes. Mutating methods report failure with a
// boolean result instead of panicking, and they tolerate a nil
// receiver, which they treat the same as calling no operation at all.
//
// A Queue is not safe for concurrent use. Callers that share one
// across goroutines must serialize access themselves.
type Queue struct {
	_ noCopy

	list list.Single[string]
	size int
}

// New returns a new empty Queue.
func New() *Queue {
	return new(Queue)
}

// Len returns the number of elements in the queue. It is 0 for a nil
// Queue. It does not traverse the list; the count is maintained by
// the mutating methods.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.size
}

// PushFront inserts s at the head of the queue. It reports whether
// the insert happened; it does not for a nil Queue.
func (q *Queue) PushFront(s string) bool {
	if q == nil {
		return false
	}

	q.list.PushFront(s)
	q.size++
	return true
}

// PushBack inserts s at the tail of the queue. It reports whether the
// insert happened; it does not for a nil Queue.
func (q *Queue) PushBack(s string) bool {
	if q == nil {
		return false
	}

	q.list.PushBack(s)
	q.size++
	return true
}

// PopFront removes the element at the head of the queue and returns
// it. It returns false, leaving the queue unchanged, if the Queue is
// nil or empty.
func (q *Queue) PopFront() (string, bool) {
	if q == nil {
		return "", false
	}

	v, ok := q.list.Pop()
	if !ok {
		return "", false
	}
	q.size--
	return v, true
}

// PopFrontInto removes the element at the head of the queue and
// copies it into buf, truncated to len(buf) bytes. It returns the
// number of bytes copied. It returns false, leaving the queue
// unchanged, if the Queue is nil, buf is nil, or the queue is empty.
// It never writes past the end of buf, however long the element is.
func (q *Queue) PopFrontInto(buf []byte) (n int, ok bool) {
	if q == nil || buf == nil {
		return 0, false
	}

	v, ok := q.PopFront()
	if !ok {
		return 0, false
	}
	return copy(buf, v), true
}

// Reverse reverses the order of the queue's elements in place. It
// relinks the existing nodes without allocating or copying any
// element. It is a no-op on a nil or empty Queue.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}
	q.list.Reverse()
}

// Sort sorts the queue's elements in place into ascending byte-wise
// lexicographic order. The sort is stable: elements comparing equal
// keep their relative order. It is a no-op on a nil Queue or one with
// fewer than two elements.
func (q *Queue) Sort() {
	if q == nil || q.size < 2 {
		return
	}
	q.list.SortFunc(strings.Compare)
}

// Clear removes every element from the queue, leaving it empty. It is
// a no-op on a nil Queue.
func (q *Queue) Clear() {
	if q == nil {
		return
	}
	q.list.Clear()
	q.size = 0
}

// All returns an iterator over the queue's elements from head to
// tail. The queue must not be mutated during iteration.
func (q *Queue) All() iter.Seq[string] {
	if q == nil {
		return func(yield func(string) bool) {}
	}
	return q.list.All()
}
