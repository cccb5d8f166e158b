package osr

/*
#include <stdlib.h>
#include "ogr_srs_api.h"
#include "cpl_conv.h"
*/
import "C"

import (
	"unsafe"
)

// Every export call follows the same discipline: the engine allocates the
// returned buffer, the result is copied into an owned Go string, and the
// engine buffer is freed on every path. CPLFree on a null pointer is a
// no-op, so the deferred free also covers the failure path.

// WKT returns the spatial reference as an OGC WKT string.
func (sr *SpatialRef) WKT() (string, error) {
	var cwkt *C.char
	rv := C.OSRExportToWkt(sr.handle, &cwkt)
	defer C.CPLFree(unsafe.Pointer(cwkt))
	if rv != C.OGRERR_NONE {
		return "", ogrErr(rv, "OSRExportToWkt")
	}
	return goString(cwkt, "OSRExportToWkt")
}

// PrettyWKT returns the spatial reference as multi-line indented WKT.
func (sr *SpatialRef) PrettyWKT() (string, error) {
	var cwkt *C.char
	rv := C.OSRExportToPrettyWkt(sr.handle, &cwkt, C.int(0))
	defer C.CPLFree(unsafe.Pointer(cwkt))
	if rv != C.OGRERR_NONE {
		return "", ogrErr(rv, "OSRExportToPrettyWkt")
	}
	return goString(cwkt, "OSRExportToPrettyWkt")
}

// XML returns the spatial reference in the OGC XML scheme.
func (sr *SpatialRef) XML() (string, error) {
	var cxml *C.char
	rv := C.OSRExportToXML(sr.handle, &cxml, nil)
	defer C.CPLFree(unsafe.Pointer(cxml))
	if rv != C.OGRERR_NONE {
		return "", ogrErr(rv, "OSRExportToXML")
	}
	return goString(cxml, "OSRExportToXML")
}

// Proj4 returns the spatial reference as a PROJ string.
func (sr *SpatialRef) Proj4() (string, error) {
	var cproj *C.char
	rv := C.OSRExportToProj4(sr.handle, &cproj)
	defer C.CPLFree(unsafe.Pointer(cproj))
	if rv != C.OGRERR_NONE {
		return "", ogrErr(rv, "OSRExportToProj4")
	}
	return goString(cproj, "OSRExportToProj4")
}

// PROJJSON returns the spatial reference in the PROJJSON encoding.
func (sr *SpatialRef) PROJJSON() (string, error) {
	var cjson *C.char
	rv := C.OSRExportToPROJJSON(sr.handle, &cjson, nil)
	defer C.CPLFree(unsafe.Pointer(cjson))
	if rv != C.OGRERR_NONE {
		return "", ogrErr(rv, "OSRExportToPROJJSON")
	}
	return goString(cjson, "OSRExportToPROJJSON")
}

// MorphToESRI converts the spatial reference in place to the dialect
// understood by ESRI software.
func (sr *SpatialRef) MorphToESRI() error {
	if rv := C.OSRMorphToESRI(sr.handle); rv != C.OGRERR_NONE {
		return ogrErr(rv, "OSRMorphToESRI")
	}
	return nil
}
