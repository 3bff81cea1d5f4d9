package clipboard

import "unsafe"

// displayKind discriminates which windowing system a DisplayHandle carries a
// pointer for.
type displayKind int

const (
	// KindDefault lets Connect pick the platform's native backend (X11 on
	// Linux via $DISPLAY, the OS pasteboard/clipboard elsewhere).
	KindDefault displayKind = iota
	// KindXcb carries an already-open XCB connection pointer. This module's
	// X11 backend is a pure-Go binding (github.com/jezek/xgb) rather than a
	// cgo wrapper around libxcb, so a raw xcb_connection_t* cannot be
	// adopted here; Connect returns ErrUnsupported for it. Embedding an
	// already-open *xgb.Conn from Go code should call
	// internal/x11clipboard.NewFromConn directly instead of going through
	// this discriminator.
	KindXcb
	// KindXlib carries an Xlib Display pointer. Not implemented; see KindXcb.
	KindXlib
	// KindWayland carries a wl_display pointer. Not implemented by this
	// module; dispatch returns ErrUnsupported. The cross-platform dispatcher
	// is deliberately shallow — only X11 gets a deeply designed backend —
	// so Wayland support is left to a dedicated library rather than built
	// here.
	KindWayland
)

// DisplayHandle is the tagged discriminator the cross-platform façade
// dispatches on. The X11 core itself never constructs one of these — it
// opens its own connection from the display name it is given ($DISPLAY when
// that name is empty).
type DisplayHandle struct {
	kind displayKind
	ptr  unsafe.Pointer
	// screen records the X screen index passed to Xcb; -1 means "use the
	// connection's default screen." Connect does not read it, since it does
	// not adopt KindXcb handles.
	screen int
}

// Default returns a handle requesting the platform's native backend.
func Default() DisplayHandle { return DisplayHandle{kind: KindDefault, screen: -1} }

// Xcb wraps an already-open XCB connection (xcb_connection_t*) and the
// screen index to use.
func Xcb(conn unsafe.Pointer, screen int) DisplayHandle {
	return DisplayHandle{kind: KindXcb, ptr: conn, screen: screen}
}

// Xlib wraps an Xlib Display pointer.
func Xlib(display unsafe.Pointer) DisplayHandle {
	return DisplayHandle{kind: KindXlib, ptr: display, screen: -1}
}

// Wayland wraps a wl_display pointer. Connect returns ErrUnsupported for it.
func Wayland(display unsafe.Pointer) DisplayHandle {
	return DisplayHandle{kind: KindWayland, ptr: display, screen: -1}
}
