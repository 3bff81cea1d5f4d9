package x11clipboard

import (
	"errors"
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// Sentinel errors a caller can match with errors.Is.
var (
	// ErrTimeout is returned when a read's deadline elapses with no
	// SelectionNotify, or an INCR stream never completes.
	ErrTimeout = errors.New("x11clipboard: timeout waiting for selection owner")

	// ErrSelectionLocked corresponds to a poisoned store lock. Go's
	// sync.RWMutex cannot be poisoned, so this is unreachable in practice;
	// kept for API parity with the error taxonomy.
	ErrSelectionLocked = errors.New("x11clipboard: selection store lock unavailable")

	// ErrInvalidOwner is returned when, after SetSelectionOwner, the server
	// reports a different window as owner: another client raced us.
	ErrInvalidOwner = errors.New("x11clipboard: lost the ownership race")

	// ErrWorkerGone is returned by write when the cancellation channel's
	// receiver (the worker goroutine) is no longer draining it.
	ErrWorkerGone = errors.New("x11clipboard: worker goroutine is gone")

	// ErrUnsupported names an operation a backend does not implement. No
	// function in this package returns it; the non-X11 passthrough reports
	// unsupported PRIMARY calls with the root package's ErrUnsupported.
	ErrUnsupported = errors.New("x11clipboard: operation not supported by this backend")
)

// ConnectionFailedError wraps a failure to open the display or bootstrap the
// context (window creation, atom interning).
type ConnectionFailedError struct {
	Op  string
	Err error
}

func (e *ConnectionFailedError) Error() string {
	return fmt.Sprintf("x11clipboard: connection failed during %s: %v", e.Op, e.Err)
}

func (e *ConnectionFailedError) Unwrap() error { return e.Err }

// ConnectionErroredError wraps a transport-level failure on an established
// connection (a request could not be sent or the socket died).
type ConnectionErroredError struct {
	Op  string
	Err error
}

func (e *ConnectionErroredError) Error() string {
	return fmt.Sprintf("x11clipboard: connection errored during %s: %v", e.Op, e.Err)
}

func (e *ConnectionErroredError) Unwrap() error { return e.Err }

// ReplyError wraps an X11 error reply to a specific request.
type ReplyError struct {
	Op  string
	Err error
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("x11clipboard: %s: %v", e.Op, e.Err)
}

func (e *ReplyError) Unwrap() error { return e.Err }

// UnexpectedTypeError is returned when the selection owner replies with a
// property type that doesn't match the target we requested.
type UnexpectedTypeError struct {
	Got xproto.Atom
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("x11clipboard: unexpected property type atom %d", e.Got)
}

// InvalidUTF8Error wraps the bytes a non-conforming owner returned under
// UTF8_STRING.
type InvalidUTF8Error struct {
	Err error
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("x11clipboard: selection owner returned invalid UTF-8: %v", e.Err)
}

func (e *InvalidUTF8Error) Unwrap() error { return e.Err }
