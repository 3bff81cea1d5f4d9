//go:build linux || freebsd || openbsd || netbsd || dragonfly

package x11clipboard

import (
	"time"

	"golang.org/x/sys/unix"
)

// park sleeps for d with sub-millisecond resolution via a direct
// nanosleep(2), which busy-poll loops like the reader's event drain need and
// time.Sleep's coarser runtime timer does not reliably give at microsecond
// scale.
func park(d time.Duration) {
	ts := unix.NsecToTimespec(d.Nanoseconds())
	for {
		rem := &unix.Timespec{}
		if err := unix.Nanosleep(&ts, rem); err != unix.EINTR {
			return
		}
		ts = *rem
	}
}
