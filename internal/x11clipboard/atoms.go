// Package x11clipboard implements the X11 selection-transfer protocol core:
// two independent connections (a reader and a server/owner), a background
// worker goroutine answering SelectionRequest events, a shared selection
// store, and a cancellation channel coordinating the two when an in-flight
// INCR transfer's payload is replaced.
package x11clipboard

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Atoms holds every atom the core needs, interned once per Context.
type Atoms struct {
	Primary    xproto.Atom
	Clipboard  xproto.Atom
	Targets    xproto.Atom
	UTF8String xproto.Atom
	String     xproto.Atom
	Incr       xproto.Atom
	Property   xproto.Atom // THIS_CLIPBOARD_OUT
}

// Context owns one X11 connection, the screen it talks to, a small unmapped
// window on that connection, and the interned atom table. The reader and the
// writer each hold their own Context; they must never share a connection
// (see Clipboard in clipboard.go).
type Context struct {
	Conn   *xgb.Conn
	Screen int
	Window xproto.Window
	Atoms  Atoms
}

// NewContext opens a new connection to the X display named by displayName
// (the empty string honours $DISPLAY, matching xgb.NewConnDisplay), creates
// the unmapped bookkeeping window, and interns the atom table.
func NewContext(displayName string) (*Context, error) {
	conn, err := xgb.NewConnDisplay(displayName)
	if err != nil {
		return nil, &ConnectionFailedError{Op: "dial display", Err: err}
	}
	ctx, err := NewFromConn(conn, -1)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return ctx, nil
}

// NewFromConn builds a Context around an already-open connection, skipping
// the dial step. It lets a host application that already owns an X11
// connection reuse it instead of opening a second socket. screen selects
// which root screen to use; a negative value picks the connection's default
// screen.
func NewFromConn(conn *xgb.Conn, screen int) (*Context, error) {
	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) == 0 {
		return nil, &ConnectionFailedError{Op: "read setup", Err: fmt.Errorf("no screens advertised")}
	}

	var root xproto.ScreenInfo
	if screen < 0 {
		def := setup.DefaultScreen(conn)
		if def == nil {
			return nil, &ConnectionFailedError{Op: "select screen", Err: fmt.Errorf("no default screen")}
		}
		root = *def
		for i := range setup.Roots {
			if setup.Roots[i].Root == def.Root {
				screen = i
				break
			}
		}
	} else {
		if screen >= len(setup.Roots) {
			return nil, &ConnectionFailedError{Op: "select screen", Err: fmt.Errorf("screen %d out of range (have %d)", screen, len(setup.Roots))}
		}
		root = setup.Roots[screen]
	}

	window, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, &ConnectionFailedError{Op: "allocate window id", Err: err}
	}

	err = xproto.CreateWindowChecked(
		conn,
		root.RootDepth,
		window,
		root.Root,
		0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput,
		root.RootVisual,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange},
	).Check()
	if err != nil {
		return nil, &ConnectionFailedError{Op: "create window", Err: err}
	}

	atoms, err := internAtoms(conn)
	if err != nil {
		return nil, err
	}

	return &Context{
		Conn:   conn,
		Screen: screen,
		Window: window,
		Atoms:  atoms,
	}, nil
}

func internAtoms(conn *xgb.Conn) (Atoms, error) {
	names := []string{"CLIPBOARD", "PRIMARY", "TARGETS", "UTF8_STRING", "STRING", "INCR", "THIS_CLIPBOARD_OUT"}
	resolved := make(map[string]xproto.Atom, len(names))
	for _, name := range names {
		atom, err := internAtom(conn, name)
		if err != nil {
			return Atoms{}, &ConnectionFailedError{Op: fmt.Sprintf("intern atom %s", name), Err: err}
		}
		resolved[name] = atom
	}
	return Atoms{
		Clipboard:  resolved["CLIPBOARD"],
		Primary:    resolved["PRIMARY"],
		Targets:    resolved["TARGETS"],
		UTF8String: resolved["UTF8_STRING"],
		String:     resolved["STRING"],
		Incr:       resolved["INCR"],
		Property:   resolved["THIS_CLIPBOARD_OUT"],
	}, nil
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Atom, nil
}

// MaxRequestBytes returns the server's advertised maximum request length in
// bytes, used to decide whether a stored value fits inline or must switch to
// INCR: a value fits iff len(value) < MaxRequestBytes-24.
func MaxRequestBytes(conn *xgb.Conn) int {
	return int(xproto.Setup(conn).MaximumRequestLength) * 4
}

// Close closes the underlying connection.
func (c *Context) Close() error {
	c.Conn.Close()
	return nil
}
