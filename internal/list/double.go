package list

import "iter"

// Double is a doubly-linked list. Unlike [Single], a Double can
// remove from both ends, which makes it usable as a bounded ring:
// push at the tail, shift from the head once over capacity.
type Double[T any] struct {
	head, tail *DoubleNode[T]
	len        int
}

// Len returns the number of nodes in the list.
func (ls *Double[T]) Len() int { return ls.len }

// Push adds a new node containing v to the tail of the list.
func (ls *Double[T]) Push(v T) {
	n := DoubleNode[T]{Val: v, prev: ls.tail}
	ls.len++

	if ls.head == nil {
		ls.head = &n
		ls.tail = &n
		return
	}

	ls.tail.next = &n
	ls.tail = &n
}

// Shift removes the head node and returns its value. It returns
// false if the list was empty.
func (ls *Double[T]) Shift() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	} else {
		ls.head.prev = nil
	}
	n.next = nil
	ls.len--

	return n.Val, true
}

// All returns an iterator over the values of the list from head to
// tail.
func (ls *Double[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// DoubleNode is a node of a [Double].
type DoubleNode[T any] struct {
	Val        T
	prev, next *DoubleNode[T]
}
