package main

import (
	"strings"
	"testing"
)

func runScript(t *testing.T, cfg config, script string) string {
	t.Helper()

	var out strings.Builder
	s := newSession(cfg, false)
	if err := s.run(strings.NewReader(script), &out); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestRunScenario(t *testing.T) {
	script := `
# build the queue out of order, then fix it up
it banana
it apple
ih cherry
size
sort
reverse
rh cherry
rh
size
free
size
quit
`
	want := `q = [banana]
q = [banana apple]
q = [cherry banana apple]
3
q = [apple banana cherry]
q = [cherry banana apple]
removed "cherry"
q = [banana apple]
removed "banana"
q = [apple]
1
q = NULL
0
`
	got := runScript(t, config{BufSize: 16, HistorySize: 10}, script)
	if got != want {
		t.Fatalf("transcript:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunTruncation(t *testing.T) {
	got := runScript(t, config{BufSize: 3}, "it longword\nrh\n")
	want := `q = [longword]
removed "lon"
q = []
`
	if got != want {
		t.Fatalf("transcript:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunMismatch(t *testing.T) {
	got := runScript(t, config{BufSize: 16}, "it a\nrh b\n")
	if !strings.Contains(got, `MISMATCH: expected "b"`) {
		t.Fatalf("no mismatch reported:\n%s", got)
	}
}

func TestRunRepeatCount(t *testing.T) {
	got := runScript(t, config{BufSize: 16}, "ih a 3\nshow\n")
	if !strings.Contains(got, "q = [a a a]") {
		t.Fatalf("transcript:\n%s", got)
	}
}

func TestRunFreedQueue(t *testing.T) {
	got := runScript(t, config{BufSize: 16}, "free\nih a\nrh\nsize\nnew\nih a\n")
	for _, want := range []string{
		"q = NULL",
		"error: no queue; use new",
		"error: queue is empty or missing",
		"0",
		"q = []",
		"q = [a]",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in transcript:\n%s", want, got)
		}
	}
}

func TestRunErrorsContinue(t *testing.T) {
	got := runScript(t, config{BufSize: 16}, "bogus\nrh\nih x 0\nit y\n")
	for _, want := range []string{
		`error: unknown command "bogus"; try help`,
		"error: queue is empty or missing",
		`error: ih: bad repeat count "0"`,
		"q = [y]",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in transcript:\n%s", want, got)
		}
	}
}

func TestRunHistory(t *testing.T) {
	got := runScript(t, config{BufSize: 16, HistorySize: 2}, "it a\nit b\nit c\nhistory\n")
	if !strings.Contains(got, "it c\nhistory\n") {
		t.Fatalf("history not trimmed to the last commands:\n%s", got)
	}
	if strings.Contains(got, "it a\nit b") {
		t.Fatalf("history kept evicted commands:\n%s", got)
	}
}
