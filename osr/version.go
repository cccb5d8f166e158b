package osr

/*
#include <stdlib.h>
#include "gdal.h"
*/
import "C"

import (
	"fmt"
	"strconv"
	"unsafe"
)

// LibVersion is a GDAL version number, as a single integer in the encoding
// of GDAL_VERSION_NUM (e.g. 3040100 for 3.4.1).
type LibVersion int

// Major returns the GDAL major version (e.g. 3)
func (lv LibVersion) Major() int {
	return int(lv) / 1000000
}

// Minor returns the GDAL minor version (e.g. 4)
func (lv LibVersion) Minor() int {
	return (int(lv) % 1000000) / 10000
}

// Revision returns the GDAL revision number (e.g. 1)
func (lv LibVersion) Revision() int {
	return (int(lv) % 10000) / 100
}

// Version returns the runtime version of the gdal library.
func Version() LibVersion {
	cstr := C.CString("VERSION_NUM")
	defer C.free(unsafe.Pointer(cstr))
	version := C.GoString(C.GDALVersionInfo(cstr))
	iversion, _ := strconv.Atoi(version)
	return LibVersion(iversion)
}

// AssertMinVersion panics if the runtime version of the gdal library is
// below the given version.
func AssertMinVersion(major, minor, revision int) {
	runtimeVersion := Version()
	if runtimeVersion.Major() < major ||
		(runtimeVersion.Major() == major && runtimeVersion.Minor() < minor) ||
		(runtimeVersion.Major() == major && runtimeVersion.Minor() == minor && runtimeVersion.Revision() < revision) {
		panic(fmt.Errorf("runtime version %d.%d.%d < %d.%d.%d",
			runtimeVersion.Major(), runtimeVersion.Minor(), runtimeVersion.Revision(), major, minor, revision))
	}
}

func init() {
	// the compile-time floor is enforced in the cgo preamble; this guards
	// against linking a runtime library older than the build headers
	compiledVersion := LibVersion(C.GDAL_VERSION_NUM)
	AssertMinVersion(compiledVersion.Major(), compiledVersion.Minor(), 0)
}
