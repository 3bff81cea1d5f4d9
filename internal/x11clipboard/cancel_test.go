package x11clipboard

import (
	"errors"
	"testing"
)

func TestCancellerCancelAndDrain(t *testing.T) {
	c := newCanceller()

	if err := c.cancel(1); err != nil {
		t.Fatalf("cancel(1): %v", err)
	}
	if err := c.cancel(2); err != nil {
		t.Fatalf("cancel(2): %v", err)
	}

	got := c.drain()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("drain() = %v, want [1 2]", got)
	}

	// A second drain with nothing queued returns empty, not nil-panic.
	if got := c.drain(); len(got) != 0 {
		t.Fatalf("drain() after empty = %v, want empty", got)
	}
}

func TestCancellerWorkerGone(t *testing.T) {
	c := newCanceller()

	// Fill the buffered channel so a send would block, forcing cancel to
	// resolve the select via the done case once the worker is gone.
	for i := 0; i < cap(c.ch); i++ {
		c.ch <- 0
	}
	c.workerGone()

	err := c.cancel(1)
	if !errors.Is(err, ErrWorkerGone) {
		t.Fatalf("cancel after workerGone: err = %v, want ErrWorkerGone", err)
	}
}
