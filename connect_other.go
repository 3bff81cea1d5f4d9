//go:build !linux && !js

package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/hecrj/window-clipboard/internal/clipboardutil"
)

// Connect on non-Linux, non-WASM platforms always uses the passthrough
// backend: these OS clipboards (macOS pasteboard, Windows clipboard) have no
// X11 selection-transfer protocol to implement, so they get a trivial
// wrapper rather than a designed component. KindXcb/KindXlib don't apply off
// Linux either.
func Connect(h DisplayHandle) (Clipboard, error) {
	switch h.kind {
	case KindDefault:
		return connectX11("")
	default:
		return nil, ErrUnsupported
	}
}

// connectX11 is misnamed on this build only for symmetry with connect_linux.go,
// since ConnectX11 calls it on every build; there is no X11 here; it returns
// the OS passthrough.
func connectX11(string) (Clipboard, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	return passthrough{}, nil
}

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	return initErr
}

// passthrough adapts golang.design/x/clipboard's global Read/Write API to
// the Clipboard interface. It has no notion of PRIMARY.
type passthrough struct{}

func (passthrough) Read() (string, error) {
	data := clipboard.Read(clipboard.FmtText)
	return clipboardutil.ValidateUTF8(data)
}

func (passthrough) Write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (passthrough) ReadPrimary() (string, error) { return "", ErrUnsupported }
func (passthrough) WritePrimary(string) error    { return ErrUnsupported }
func (passthrough) Close() error                 { return nil }
