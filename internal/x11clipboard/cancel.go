package x11clipboard

import "github.com/jezek/xgb/xproto"

// canceller is the single-producer/single-consumer queue from the
// foreground write path to the background worker, carrying selection atoms
// whose in-flight INCR transfer should be aborted because the payload was
// just replaced. The worker drains it before every event dispatch (see
// worker.go), so an INCR transfer started under an old payload can never be
// resumed after write has installed a newer one.
type canceller struct {
	ch   chan xproto.Atom
	done chan struct{}
}

func newCanceller() canceller {
	return canceller{ch: make(chan xproto.Atom, 16), done: make(chan struct{})}
}

// cancel enqueues selection for abort. It returns ErrWorkerGone instead of
// blocking once the worker goroutine has exited (workerGone has been
// called), rather than leaking a blocked sender.
func (c canceller) cancel(selection xproto.Atom) error {
	select {
	case c.ch <- selection:
		return nil
	case <-c.done:
		return ErrWorkerGone
	}
}

// drain non-blockingly removes every pending cancellation; called once per
// worker event-loop iteration before dispatching.
func (c canceller) drain() []xproto.Atom {
	var out []xproto.Atom
	for {
		select {
		case sel := <-c.ch:
			out = append(out, sel)
		default:
			return out
		}
	}
}

// workerGone marks the channel's consumer as gone; subsequent cancel calls
// fail instead of blocking. Called once, by the worker goroutine, when its
// connection dies and its event loop returns.
func (c canceller) workerGone() {
	close(c.done)
}
