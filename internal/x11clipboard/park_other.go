//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package x11clipboard

import "time"

// park sleeps for d. Non-unix build: fall back to the standard runtime
// timer, since there is no direct nanosleep(2) to reach for.
func park(d time.Duration) {
	time.Sleep(d)
}
