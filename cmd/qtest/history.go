package main

import (
	"iter"

	"deedles.dev/strq/internal/list"
)

// history keeps the most recent commands, oldest first, evicting from
// the front once over capacity. A max of 0 disables it.
type history struct {
	max int
	ls  list.Double[string]
}

func (h *history) add(cmd string) {
	if h.max == 0 {
		return
	}

	h.ls.Push(cmd)
	for h.ls.Len() > h.max {
		h.ls.Shift()
	}
}

func (h *history) all() iter.Seq[string] {
	return h.ls.All()
}
