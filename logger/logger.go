package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of a layout run.
var ProgressLogger = log.New(os.Stdout, "flexbox.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like unsupported
// style properties or degraded layout fallbacks.
var WarningLogger = log.New(os.Stdout, "flexbox.warning: ", log.Lmsgprefix)
