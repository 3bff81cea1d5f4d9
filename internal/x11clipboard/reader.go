package x11clipboard

import (
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// pollInterval is how long the reader parks between PollForEvent calls when
// no event is pending; park is implemented in park_unix.go/park_other.go.
const pollInterval = 50 * time.Microsecond

// readBufferInitial is the starting capacity for the accumulated buffer
// before an INCR size hint (if any) arrives.
const readBufferInitial = 0

// Load issues ConvertSelection for selection/target on ctx.Window, drops the
// result in property, and drains events until SelectionNotify completes (or
// an INCR stream finishes), or timeout elapses.
//
// Known limitation: ICCCM forbids CurrentTime as the time argument to
// ConvertSelection (clients should use the timestamp of the triggering
// input event); no such timestamp is available at this boundary, so
// CurrentTime is used here.
func Load(ctx *Context, selection, target, property xproto.Atom, timeout time.Duration) ([]byte, error) {
	err := xproto.ConvertSelectionChecked(ctx.Conn, ctx.Window, selection, target, property, xproto.TimeCurrentTime).Check()
	if err != nil {
		return nil, &ConnectionErroredError{Op: "ConvertSelection", Err: err}
	}

	buf := make([]byte, 0, readBufferInitial)
	buf, err = drainEvents(ctx, buf, selection, target, property, timeout)
	if err != nil {
		return nil, err
	}

	// Clean up the drop-off property after a completed read. On an error
	// return (including ErrTimeout) the property is left as it is; the next
	// Load's ConvertSelection overwrites it.
	xproto.DeletePropertyChecked(ctx.Conn, ctx.Window, property).Check() //nolint:errcheck // best-effort cleanup

	return buf, nil
}

func drainEvents(ctx *Context, buf []byte, selection, target, property xproto.Atom, timeout time.Duration) ([]byte, error) {
	isIncr := false
	deadline := time.Now().Add(timeout)

	for {
		if timeout > 0 && time.Now().After(deadline) {
			return nil, ErrTimeout
		}

		ev, err := ctx.Conn.PollForEvent()
		if err != nil {
			return nil, &ConnectionErroredError{Op: "poll for event", Err: err}
		}
		if ev == nil {
			park(pollInterval)
			continue
		}

		switch e := ev.(type) {
		case xproto.SelectionNotifyEvent:
			if e.Selection != selection {
				continue
			}
			if e.Property == 0 {
				// The owner refused the conversion: return whatever was
				// accumulated so far (empty for a non-INCR refusal).
				return buf, nil
			}

			reply, err := xproto.GetProperty(ctx.Conn, false, ctx.Window, e.Property, xproto.AtomAny, uint32(len(buf)/4), ^uint32(0)).Reply()
			if err != nil {
				return nil, &ReplyError{Op: "GetProperty", Err: err}
			}

			if reply.Type == ctx.Atoms.Incr {
				if len(reply.Value) >= 4 {
					sizeHint := int(xgb.Get32(reply.Value))
					if sizeHint > cap(buf) {
						grown := make([]byte, len(buf), sizeHint)
						copy(grown, buf)
						buf = grown
					}
				}
				xproto.DeletePropertyChecked(ctx.Conn, ctx.Window, property).Check() //nolint:errcheck
				isIncr = true
				continue
			}
			if reply.Type != target {
				return nil, &UnexpectedTypeError{Got: reply.Type}
			}

			buf = append(buf, reply.Value...)
			return buf, nil

		case xproto.PropertyNotifyEvent:
			if !isIncr || e.State != xproto.PropertyNewValue {
				continue
			}

			probe, err := xproto.GetProperty(ctx.Conn, false, ctx.Window, property, xproto.AtomAny, 0, 0).Reply()
			if err != nil {
				return nil, &ReplyError{Op: "probe INCR property length", Err: err}
			}

			reply, err := xproto.GetProperty(ctx.Conn, true, ctx.Window, property, xproto.AtomAny, 0, probe.BytesAfter).Reply()
			if err != nil {
				return nil, &ReplyError{Op: "GetProperty (INCR chunk)", Err: err}
			}
			if reply.Type != target {
				continue // stray property of another type: ignore
			}
			if len(reply.Value) == 0 {
				return buf, nil // terminating empty chunk: end of stream
			}
			buf = append(buf, reply.Value...)

		default:
			// ignore anything else
		}
	}
}
