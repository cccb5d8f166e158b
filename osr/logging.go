package osr

/*
#include "cpl_error.h"

void osrInstallLogHandler(void);
void osrRemoveLogHandler(void);
*/
import "C"

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	logMu     sync.Mutex
	logTarget *zerolog.Logger
)

// SetLogger routes the engine's diagnostic stream (debug, warning and
// failure messages) into the given zerolog logger. Failure messages remain
// available to the engine's last-error channel, so error Detail fields are
// unaffected.
func SetLogger(zl *zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	if logTarget == nil {
		C.osrInstallLogHandler()
	}
	logTarget = zl
}

// ClearLogger restores the engine's default diagnostic handler.
func ClearLogger() {
	logMu.Lock()
	defer logMu.Unlock()
	if logTarget != nil {
		C.osrRemoveLogHandler()
		logTarget = nil
	}
}

//export goCPLLogHandler
func goCPLLogHandler(class C.CPLErr, code C.CPLErrorNum, msg *C.char) {
	logMu.Lock()
	zl := logTarget
	logMu.Unlock()
	if zl == nil {
		return
	}
	var ev *zerolog.Event
	switch class {
	case C.CE_Debug:
		ev = zl.Debug()
	case C.CE_Warning:
		ev = zl.Warn()
	case C.CE_Failure, C.CE_Fatal:
		ev = zl.Error()
	default:
		ev = zl.Info()
	}
	ev.Int("code", int(code)).Msg(C.GoString(msg))
}
