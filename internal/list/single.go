// Package list implements the linked lists underlying the public
// queue type.
package list

import "iter"

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at either end and removals at the
// head. Every node is owned by exactly one list; transformations
// relink nodes in place instead of copying values between them.
type Single[T any] struct {
	head, tail *SingleNode[T]
}

// PushFront adds v as a new node at the head of the list.
func (ls *Single[T]) PushFront(v T) {
	n := &SingleNode[T]{Val: v, next: ls.head}
	ls.head = n

	if ls.tail == nil {
		ls.tail = n
	}
}

// PushBack adds v as a new node at the tail of the list.
func (ls *Single[T]) PushBack(v T) {
	n := &SingleNode[T]{Val: v}
	if ls.tail == nil {
		ls.head = n
	} else {
		ls.tail.next = n
	}
	ls.tail = n
}

// Peek returns the value of the head node or the zero value if the
// list is empty.
func (ls *Single[T]) Peek() (v T) {
	if ls.head == nil {
		return v
	}
	return ls.head.Val
}

// Pop removes the head node from the list and returns its value. It
// returns false if the list was already empty.
func (ls *Single[T]) Pop() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}

	n := ls.head
	ls.head = n.next
	if ls.head == nil {
		// Removing the last node has to drop the tail as well, or a
		// later PushBack would append to a node the list no longer
		// reaches.
		ls.tail = nil
	}
	n.next = nil

	return n.Val, true
}

// Reverse relinks the nodes of the list in the opposite order. It
// allocates nothing; the old tail becomes the head and vice versa.
func (ls *Single[T]) Reverse() {
	var prev *SingleNode[T]
	cur := ls.head
	ls.tail = cur
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	ls.head = prev
}

// SortFunc sorts the list in ascending order as determined by the cmp
// function, which follows the contract of [cmp.Compare]. The sort is
// a top-down merge sort: it relinks the existing nodes and allocates
// nothing beyond the recursion stack. It is stable.
func (ls *Single[T]) SortFunc(cmp func(a, b T) int) {
	if ls.head == nil || ls.head.next == nil {
		return
	}

	ls.head = mergeSort(ls.head, cmp)

	n := ls.head
	for n.next != nil {
		n = n.next
	}
	ls.tail = n
}

func mergeSort[T any](head *SingleNode[T], cmp func(a, b T) int) *SingleNode[T] {
	if head == nil || head.next == nil {
		return head
	}

	second := split(head)
	return merge(mergeSort(head, cmp), mergeSort(second, cmp), cmp)
}

// split severs the list after its midpoint and returns the second
// half. The fast cursor starts one node ahead so that odd-length
// lists leave the extra node in the first half.
func split[T any](head *SingleNode[T]) *SingleNode[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	second := slow.next
	slow.next = nil
	return second
}

// merge interleaves two sorted lists into one by relinking. Ties go
// to the first list, which keeps the sort stable.
func merge[T any](a, b *SingleNode[T], cmp func(a, b T) int) *SingleNode[T] {
	var head *SingleNode[T]
	next := &head

	for a != nil && b != nil {
		if cmp(a.Val, b.Val) <= 0 {
			*next = a
			a = a.next
		} else {
			*next = b
			b = b.next
		}
		next = &(*next).next
	}

	if a != nil {
		*next = a
	} else {
		*next = b
	}

	return head
}

// Clear removes every node from the list, severing the links between
// them so that no node can still reach another.
func (ls *Single[T]) Clear() {
	cur := ls.head
	ls.head = nil
	ls.tail = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
	}
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
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

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val  T
	next *SingleNode[T]
}
