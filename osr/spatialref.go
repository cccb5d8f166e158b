package osr

/*
#cgo pkg-config: gdal
#include <stdlib.h>
#include "gdal_version.h"
#include "ogr_srs_api.h"
#include "cpl_conv.h"

#if GDAL_VERSION_NUM < GDAL_COMPUTE_VERSION(3,1,0)
#error "package osr requires GDAL >= 3.1"
#endif
*/
import "C"

import (
	"runtime"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// A SpatialRef is an OpenGIS Spatial Reference System definition, used in
// geo-referencing raster and vector data and in coordinate transformations.
//
// A SpatialRef exclusively owns its underlying OGRSpatialReferenceH for its
// whole lifetime. Copying the struct does not duplicate the definition; use
// Clone for an independent copy.
type SpatialRef struct {
	handle C.OGRSpatialReferenceH
}

func newSpatialRef(handle C.OGRSpatialReferenceH) *SpatialRef {
	sr := &SpatialRef{handle: handle}
	runtime.SetFinalizer(sr, (*SpatialRef).Close)
	return sr
}

// New allocates a fresh, unset spatial reference.
func New() (*SpatialRef, error) {
	handle := C.OSRNewSpatialReference(nil)
	if handle == nil {
		return nil, nullHandleErr("OSRNewSpatialReference")
	}
	return newSpatialRef(handle), nil
}

// FromUserInput creates a spatial reference from various text formats.
//
// The engine examines the input and deduces the format (WKT, PROJ string,
// "EPSG:n", URN, ...). See the GDAL documentation of SetFromUserInput for
// the accepted forms.
func FromUserInput(definition string) (*SpatialRef, error) {
	cdef, err := cString(definition, "OSRSetFromUserInput")
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cdef))
	handle := C.OSRNewSpatialReference(nil)
	if handle == nil {
		return nil, nullHandleErr("OSRNewSpatialReference")
	}
	if rv := C.OSRSetFromUserInput(handle, cdef); rv != C.OGRERR_NONE {
		C.OSRRelease(handle)
		return nil, ogrErr(rv, "OSRSetFromUserInput")
	}
	return newSpatialRef(handle), nil
}

// FromWKT creates a spatial reference from an OGC WKT description.
func FromWKT(wkt string) (*SpatialRef, error) {
	cwkt, err := cString(wkt, "OSRNewSpatialReference")
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cwkt))
	handle := C.OSRNewSpatialReference(cwkt)
	if handle == nil {
		return nil, nullHandleErr("OSRNewSpatialReference")
	}
	return newSpatialRef(handle), nil
}

// FromEPSG creates a spatial reference from an EPSG code.
func FromEPSG(code int) (*SpatialRef, error) {
	handle := C.OSRNewSpatialReference(nil)
	if handle == nil {
		return nil, nullHandleErr("OSRNewSpatialReference")
	}
	if rv := C.OSRImportFromEPSG(handle, C.int(code)); rv != C.OGRERR_NONE {
		C.OSRRelease(handle)
		return nil, ogrErr(rv, "OSRImportFromEPSG")
	}
	return newSpatialRef(handle), nil
}

// FromProj4 creates a spatial reference from a PROJ string.
func FromProj4(proj string) (*SpatialRef, error) {
	cproj, err := cString(proj, "OSRImportFromProj4")
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cproj))
	handle := C.OSRNewSpatialReference(nil)
	if handle == nil {
		return nil, nullHandleErr("OSRNewSpatialReference")
	}
	if rv := C.OSRImportFromProj4(handle, cproj); rv != C.OGRERR_NONE {
		C.OSRRelease(handle)
		return nil, ogrErr(rv, "OSRImportFromProj4")
	}
	return newSpatialRef(handle), nil
}

// FromESRI creates a spatial reference from an ESRI WKT description.
func FromESRI(esriWKT string) (*SpatialRef, error) {
	cwkt, err := cString(esriWKT, "OSRImportFromESRI")
	if err != nil {
		return nil, err
	}
	defer C.free(unsafe.Pointer(cwkt))
	handle := C.OSRNewSpatialReference(nil)
	if handle == nil {
		return nil, nullHandleErr("OSRNewSpatialReference")
	}
	// the import takes a null terminated array of strings
	papszPrj := []*C.char{cwkt, nil}
	if rv := C.OSRImportFromESRI(handle, &papszPrj[0]); rv != C.OGRERR_NONE {
		C.OSRRelease(handle)
		return nil, ogrErr(rv, "OSRImportFromESRI")
	}
	return newSpatialRef(handle), nil
}

// FromHandle wraps a raw OGRSpatialReferenceH by taking an engine-level
// clone of it, so closing the returned SpatialRef never affects the
// original.
//
// The handle passed to this function must be a valid OGRSpatialReferenceH.
func FromHandle(handle unsafe.Pointer) (*SpatialRef, error) {
	cloned := C.OSRClone(C.OGRSpatialReferenceH(handle))
	if cloned == nil {
		return nil, nullHandleErr("OSRClone")
	}
	return newSpatialRef(cloned), nil
}

// Clone returns an independent copy of the spatial reference.
func (sr *SpatialRef) Clone() (*SpatialRef, error) {
	handle := C.OSRClone(sr.handle)
	if handle == nil {
		return nil, nullHandleErr("OSRClone")
	}
	return newSpatialRef(handle), nil
}

// Close releases the underlying engine object. It is safe to call Close
// more than once; other methods must not be called afterwards.
func (sr *SpatialRef) Close() {
	if sr.handle == nil {
		return
	}
	C.OSRRelease(sr.handle)
	sr.handle = nil
}

// Handle returns the raw OGRSpatialReferenceH, for composition with other
// GDAL bindings. The pointer stays owned by the SpatialRef.
func (sr *SpatialRef) Handle() unsafe.Pointer {
	return unsafe.Pointer(sr.handle)
}

// IsSame reports whether two spatial references describe the same system,
// using the engine's semantic equivalence predicate rather than textual
// comparison.
func (sr *SpatialRef) IsSame(other *SpatialRef) bool {
	return C.OSRIsSame(sr.handle, other.handle) != 0
}

// cString converts s for the engine calling convention. Strings with an
// embedded NUL byte cannot cross the boundary and are rejected up front,
// C.CString would silently truncate them.
func cString(s, method string) (*C.char, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &Error{Kind: KindTextEncoding, Method: method, Detail: "string contains an embedded NUL byte"}
	}
	return C.CString(s), nil
}

// goString copies an engine-owned C string into an owned Go string,
// validating that it decodes as text.
func goString(p *C.char, method string) (string, error) {
	s := C.GoString(p)
	if !utf8.ValidString(s) {
		return "", &Error{Kind: KindTextEncoding, Method: method, Detail: "engine returned invalid UTF-8"}
	}
	return s, nil
}
