package list

import (
	"slices"
	"testing"
)

func TestDouble(t *testing.T) {
	var ls Double[int]
	if ls.Len() != 0 {
		t.Fatal(ls.Len())
	}
	if _, ok := ls.Shift(); ok {
		t.Fatal("shifted from an empty list")
	}

	ls.Push(1)
	ls.Push(2)
	ls.Push(3)
	if ls.Len() != 3 {
		t.Fatal(ls.Len())
	}
	if got := slices.Collect(ls.All()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatal(got)
	}

	v, ok := ls.Shift()
	if !ok || v != 1 {
		t.Fatalf("got %v, %v", v, ok)
	}
	if ls.head.prev != nil {
		t.Fatal("new head still links backward")
	}

	ls.Shift()
	ls.Shift()
	if ls.Len() != 0 || ls.head != nil || ls.tail != nil {
		t.Fatal("list not empty after shifting everything")
	}

	ls.Push(4)
	if got := slices.Collect(ls.All()); !slices.Equal(got, []int{4}) {
		t.Fatal(got)
	}
}
