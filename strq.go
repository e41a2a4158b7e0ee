// Package strq provides an ordered queue of strings backed by a
// singly-linked list, with insertion at either end, removal from the
// head, and in-place reversal and sorting.
package strq

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
