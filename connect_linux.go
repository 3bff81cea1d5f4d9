//go:build linux

package clipboard

import (
	"os"

	"github.com/hecrj/window-clipboard/internal/x11clipboard"
)

// Connect dispatches on h's kind. KindDefault opens the X11 backend against
// $DISPLAY; KindXcb/KindXlib/KindWayland are not implemented by this
// dispatcher (see displayhandle.go) and return ErrUnsupported.
func Connect(h DisplayHandle) (Clipboard, error) {
	switch h.kind {
	case KindDefault:
		return connectX11(os.Getenv("DISPLAY"))
	default:
		return nil, ErrUnsupported
	}
}

func connectX11(displayName string) (Clipboard, error) {
	cb, err := x11clipboard.New(displayName)
	if err != nil {
		return nil, err
	}
	// *x11clipboard.Clipboard already implements Read/Write/ReadPrimary/
	// WritePrimary/Close, so it satisfies Clipboard directly.
	return cb, nil
}
