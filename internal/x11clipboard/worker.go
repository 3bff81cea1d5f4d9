package x11clipboard

import (
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// incrChunkSize is the maximum number of bytes sent per INCR property
// update.
const incrChunkSize = 4000

// incrState tracks one in-flight outgoing INCR transfer, keyed by the
// drop-off property atom on the requestor's window.
type incrState struct {
	selection xproto.Atom
	requestor xproto.Window
	property  xproto.Atom
	pos       int
}

// Run is the dedicated server/worker goroutine launched once from New. It
// blocks on WaitForEvent and dispatches SelectionRequest, PropertyNotify,
// and SelectionClear against store, implementing both the small-value and
// INCR response modes. It returns when the connection dies (WaitForEvent
// errors), at which point it marks cancel's receiver gone so pending and
// future writes stop blocking on it.
func Run(ctx *Context, store *Store, cancel canceller, maxRequestBytes int, logger *log.Logger) {
	defer cancel.workerGone()

	incrBySelection := make(map[xproto.Atom]xproto.Atom) // selection -> property
	stateByProperty := make(map[xproto.Atom]*incrState)   // property -> state

	for {
		ev, err := ctx.Conn.WaitForEvent()
		if err != nil {
			logger.Printf("worker: connection lost, exiting: %v", err)
			return
		}
		if ev == nil {
			continue
		}

		for _, selection := range cancel.drain() {
			if property, ok := incrBySelection[selection]; ok {
				delete(incrBySelection, selection)
				delete(stateByProperty, property)
			}
		}

		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			handleSelectionRequest(ctx, store, e, maxRequestBytes, incrBySelection, stateByProperty, logger)

		case xproto.PropertyNotifyEvent:
			handlePropertyNotify(ctx, store, e, stateByProperty, logger)

		case xproto.SelectionClearEvent:
			if property, ok := incrBySelection[e.Selection]; ok {
				delete(incrBySelection, e.Selection)
				delete(stateByProperty, property)
			}
			store.Remove(e.Selection)

		default:
			// ignore
		}
	}
}

func handleSelectionRequest(
	ctx *Context,
	store *Store,
	e xproto.SelectionRequestEvent,
	maxRequestBytes int,
	incrBySelection map[xproto.Atom]xproto.Atom,
	stateByProperty map[xproto.Atom]*incrState,
	logger *log.Logger,
) {
	target, value, ok := store.Get(e.Selection)
	if !ok {
		// No entry: we do not own this selection. The ICCCM-mandated
		// refusal SelectionNotify (property = None) is deliberately not
		// sent here; see DESIGN.md.
		return
	}

	switch {
	case e.Target == ctx.Atoms.Targets:
		buf := atomListBytes(ctx.Atoms.Targets, target)
		err := xproto.ChangePropertyChecked(
			ctx.Conn, xproto.PropModeReplace, e.Requestor, e.Property,
			xproto.AtomAtom, 32, uint32(len(buf)/4), buf,
		).Check()
		if err != nil {
			logger.Printf("worker: change TARGETS property: %v", err)
			return
		}

	case len(value) < maxRequestBytes-24:
		err := xproto.ChangePropertyChecked(
			ctx.Conn, xproto.PropModeReplace, e.Requestor, e.Property,
			target, 8, uint32(len(value)), value,
		).Check()
		if err != nil {
			logger.Printf("worker: change property (inline): %v", err)
			return
		}

	default:
		err := xproto.ChangeWindowAttributesChecked(
			ctx.Conn, e.Requestor, xproto.CwEventMask,
			[]uint32{xproto.EventMaskPropertyChange},
		).Check()
		if err != nil {
			logger.Printf("worker: watch requestor property changes: %v", err)
			return
		}
		err = xproto.ChangePropertyChecked(
			ctx.Conn, xproto.PropModeReplace, e.Requestor, e.Property,
			ctx.Atoms.Incr, 32, 0, []byte{},
		).Check()
		if err != nil {
			logger.Printf("worker: start INCR: %v", err)
			return
		}

		incrBySelection[e.Selection] = e.Property
		stateByProperty[e.Property] = &incrState{
			selection: e.Selection,
			requestor: e.Requestor,
			property:  e.Property,
		}
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  e.Property,
	}
	err := xproto.SendEventChecked(ctx.Conn, false, e.Requestor, 0, string(notify.Bytes())).Check()
	if err != nil {
		logger.Printf("worker: send SelectionNotify: %v", err)
	}
}

func handlePropertyNotify(ctx *Context, store *Store, e xproto.PropertyNotifyEvent, stateByProperty map[xproto.Atom]*incrState, logger *log.Logger) {
	if e.State != xproto.PropertyDelete {
		return
	}
	state, ok := stateByProperty[e.Atom]
	if !ok {
		return
	}
	target, value, ok := store.Get(state.selection)
	if !ok {
		delete(stateByProperty, e.Atom)
		return
	}

	remaining := len(value) - state.pos
	n := incrChunkSize
	if remaining < n {
		n = remaining
	}
	if n < 0 {
		n = 0
	}

	err := xproto.ChangePropertyChecked(
		ctx.Conn, xproto.PropModeReplace, state.requestor, state.property,
		target, 8, uint32(n), value[state.pos:state.pos+n],
	).Check()
	if err != nil {
		logger.Printf("worker: advance INCR chunk: %v", err)
		return
	}
	state.pos += n

	if n == 0 {
		delete(stateByProperty, e.Atom)
	}
}

// atomListBytes serializes a list of 32-bit atoms for a ChangeProperty
// request with format 32.
func atomListBytes(atoms ...xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, a := range atoms {
		xgb.Put32(buf[i*4:], uint32(a))
	}
	return buf
}
