//go:build js

package clipboard

// Connect on the js/wasm target is a dummy backend: there is no window
// system to bind to, so every operation simply reports unsupported.
func Connect(h DisplayHandle) (Clipboard, error) {
	return dummy{}, nil
}

func connectX11(string) (Clipboard, error) { return dummy{}, nil }

type dummy struct{}

func (dummy) Read() (string, error)        { return "", ErrUnsupported }
func (dummy) Write(string) error           { return ErrUnsupported }
func (dummy) ReadPrimary() (string, error) { return "", ErrUnsupported }
func (dummy) WritePrimary(string) error    { return ErrUnsupported }
func (dummy) Close() error                 { return nil }
