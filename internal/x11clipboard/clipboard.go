package x11clipboard

import (
	"time"

	"github.com/jezek/xgb/xproto"

	"github.com/hecrj/window-clipboard/internal/clipboardutil"
)

// readTimeout is the default deadline for Read/ReadPrimary.
const readTimeout = 3 * time.Second

// Clipboard holds the reader context, the shared writer context (also held
// by the worker goroutine), the selection store, and the cancellation
// sender. Two connections are mandatory: the worker blocks on WaitForEvent
// on the writer connection while the reader polls for SelectionNotify on its
// own; sharing one connection between the two would deadlock.
type Clipboard struct {
	reader *Context
	writer *Context
	store  *Store
	cancel canceller
}

// New connects to the X display named by displayName (empty honours
// $DISPLAY), opening two independent connections, and starts the
// background worker goroutine that serves SelectionRequest events against
// the writer connection.
func New(displayName string) (*Clipboard, error) {
	reader, err := NewContext(displayName)
	if err != nil {
		return nil, err
	}
	writer, err := NewContext(displayName)
	if err != nil {
		reader.Close()
		return nil, err
	}

	c := &Clipboard{
		reader: reader,
		writer: writer,
		store:  NewStore(),
		cancel: newCanceller(),
	}

	maxRequestBytes := MaxRequestBytes(writer.Conn)
	go Run(c.writer, c.store, c.cancel, maxRequestBytes, defaultLogger)

	return c, nil
}

// Read returns the CLIPBOARD selection's value as UTF-8 text, with a 3s
// timeout.
func (c *Clipboard) Read() (string, error) {
	return c.read(c.reader.Atoms.Clipboard)
}

// ReadPrimary returns the PRIMARY selection's value as UTF-8 text, with a 3s
// timeout.
func (c *Clipboard) ReadPrimary() (string, error) {
	return c.read(c.reader.Atoms.Primary)
}

func (c *Clipboard) read(selection xproto.Atom) (string, error) {
	data, err := Load(c.reader, selection, c.reader.Atoms.UTF8String, c.reader.Atoms.Property, readTimeout)
	if err != nil {
		return "", err
	}
	text, err := clipboardutil.ValidateUTF8(data)
	if err != nil {
		return "", &InvalidUTF8Error{Err: err}
	}
	return text, nil
}

// Write replaces the CLIPBOARD selection's value.
func (c *Clipboard) Write(s string) error {
	return c.write(c.writer.Atoms.Clipboard, s)
}

// WritePrimary replaces the PRIMARY selection's value.
func (c *Clipboard) WritePrimary(s string) error {
	return c.write(c.writer.Atoms.Primary, s)
}

func (c *Clipboard) write(selection xproto.Atom, s string) error {
	if err := c.cancel.cancel(selection); err != nil {
		return err
	}

	c.store.Insert(selection, c.writer.Atoms.UTF8String, []byte(s))

	err := xproto.SetSelectionOwnerChecked(c.writer.Conn, c.writer.Window, selection, xproto.TimeCurrentTime).Check()
	if err != nil {
		return &ConnectionErroredError{Op: "SetSelectionOwner", Err: err}
	}

	reply, err := xproto.GetSelectionOwner(c.writer.Conn, selection).Reply()
	if err != nil {
		return &ReplyError{Op: "GetSelectionOwner", Err: err}
	}
	if reply.Owner != c.writer.Window {
		return ErrInvalidOwner
	}
	return nil
}

// Close closes both connections. The worker goroutine exits on its next
// WaitForEvent call once the writer connection is gone.
func (c *Clipboard) Close() error {
	rerr := c.reader.Close()
	werr := c.writer.Close()
	if rerr != nil {
		return rerr
	}
	return werr
}
