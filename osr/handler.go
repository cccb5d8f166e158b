package osr

// The C bridge for the diagnostic handler lives in this file because a cgo
// preamble in a file with //export directives may contain declarations
// only.

/*
#include "cpl_error.h"

extern void goCPLLogHandler(CPLErr, CPLErrorNum, char *);

static void osrLogHandlerBridge(CPLErr eclass, CPLErrorNum code, const char *msg) {
	goCPLLogHandler(eclass, code, (char *)msg);
}

void osrInstallLogHandler(void) {
	CPLPushErrorHandler(osrLogHandlerBridge);
}

void osrRemoveLogHandler(void) {
	CPLPopErrorHandler();
}
*/
import "C"
