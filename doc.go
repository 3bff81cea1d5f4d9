// Package clipboard is a cross-platform clipboard library. Its one deeply
// designed backend is X11 (internal/x11clipboard), which implements the
// X11 selection-transfer protocol directly: two connections, a background
// worker goroutine serving SelectionRequest events, INCR chunking for large
// payloads, and a shared selection store connecting the read and write
// paths. Non-X11 platforms are served by a thin passthrough backend; see
// connect_other.go.
package clipboard

import "errors"

// ErrUnsupported is returned by operations a backend doesn't implement for
// the current platform or display handle kind (e.g. PRIMARY on a
// non-X11 passthrough, or an unadopted DisplayHandle kind).
var ErrUnsupported = errors.New("clipboard: operation not supported by this backend")
