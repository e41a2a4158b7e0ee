package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"deedles.dev/strq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const helpText = `Commands:
  new             create a fresh queue
  free            release the queue
  ih <str> [n]    insert str at the head, n times (default 1)
  it <str> [n]    insert str at the tail, n times (default 1)
  rh [expected]   remove from the head; warn if not equal to expected
  size            print the number of elements
  reverse         reverse the queue in place
  sort            sort the queue ascending
  show            print the queue
  history         print recent commands
  help            print this message
  quit            exit
Lines starting with # are comments.`

// A session is one interpreter over one queue. The removal buffer is
// fixed for the session's lifetime, so over-long elements come back
// truncated the way a caller with a bounded buffer would see them.
type session struct {
	q       *strq.Queue
	buf     []byte
	hist    history
	verbose bool
}

func newSession(cfg config, verbose bool) *session {
	return &session{
		q:       strq.New(),
		buf:     make([]byte, cfg.BufSize),
		hist:    history{max: cfg.HistorySize},
		verbose: verbose,
	}
}

// run evaluates commands from r line by line until EOF or quit.
// Command failures are reported on w and evaluation continues; only a
// read failure ends the run early.
func (s *session) run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if s.verbose {
			log.Info("cmd: ", line)
		}
		s.hist.add(line)

		quit, err := s.eval(line, w)
		if err != nil {
			fmt.Fprintln(w, "error:", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return errors.Wrap(sc.Err(), "read commands")
}

func (s *session) eval(line string, w io.Writer) (quit bool, err error) {
	args := strings.Fields(line)
	cmd, args := args[0], args[1:]

	switch cmd {
	case "new":
		s.q.Clear()
		s.q = strq.New()
		s.show(w)

	case "free":
		s.q.Clear()
		s.q = nil
		s.show(w)

	case "ih", "it":
		str, n, err := insertArgs(cmd, args)
		if err != nil {
			return false, err
		}
		push := s.q.PushFront
		if cmd == "it" {
			push = s.q.PushBack
		}
		for range n {
			if !push(str) {
				return false, errors.New("no queue; use new")
			}
		}
		s.show(w)

	case "rh":
		if len(args) > 1 {
			return false, errors.Errorf("usage: rh [expected]")
		}
		n, ok := s.q.PopFrontInto(s.buf)
		if !ok {
			return false, errors.New("queue is empty or missing")
		}
		got := string(s.buf[:n])
		fmt.Fprintf(w, "removed %q\n", got)
		if len(args) == 1 && got != args[0] {
			fmt.Fprintf(w, "MISMATCH: expected %q\n", args[0])
		}
		s.show(w)

	case "size":
		fmt.Fprintln(w, s.q.Len())

	case "reverse":
		s.q.Reverse()
		s.show(w)

	case "sort":
		s.q.Sort()
		s.show(w)

	case "show":
		s.show(w)

	case "history":
		for c := range s.hist.all() {
			fmt.Fprintln(w, c)
		}

	case "help":
		fmt.Fprintln(w, helpText)

	case "quit", "exit":
		return true, nil

	default:
		return false, errors.Errorf("unknown command %q; try help", cmd)
	}

	return false, nil
}

func (s *session) show(w io.Writer) {
	if s.q == nil {
		fmt.Fprintln(w, "q = NULL")
		return
	}
	fmt.Fprintf(w, "q = [%s]\n", strings.Join(slices.Collect(s.q.All()), " "))
}

func insertArgs(cmd string, args []string) (str string, n int, err error) {
	if len(args) < 1 || len(args) > 2 {
		return "", 0, errors.Errorf("usage: %s <str> [n]", cmd)
	}

	n = 1
	if len(args) == 2 {
		n, err = strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return "", 0, errors.Errorf("%s: bad repeat count %q", cmd, args[1])
		}
	}

	return args[0], n, nil
}
