package x11clipboard

import (
	"log"
	"os"
)

// defaultLogger is the logger New hands to the worker goroutine. The
// worker goroutine never surfaces errors to the caller (see worker.go); it
// logs them here instead of panicking, matching the rest of this repo's
// log.Printf-based diagnostics.
var defaultLogger = log.New(os.Stderr, "", log.LstdFlags)
