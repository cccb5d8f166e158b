package osr

/*
#include <stdlib.h>
#include "ogr_srs_api.h"
*/
import "C"

import (
	"strconv"
	"unsafe"
)

// AuthorityName returns the authority name (e.g. "EPSG") attached to the
// root node of the definition. Spatial references without registry linkage,
// such as ones built from a bare PROJ string, have none.
func (sr *SpatialRef) AuthorityName() (string, error) {
	cname := C.OSRGetAuthorityName(sr.handle, nil)
	if cname == nil {
		return "", nullHandleErr("OSRGetAuthorityName")
	}
	return goString(cname, "OSRGetAuthorityName")
}

// AuthorityCode returns the authority code attached to the root node of
// the definition, parsed as a base-10 integer.
func (sr *SpatialRef) AuthorityCode() (int, error) {
	ccode := C.OSRGetAuthorityCode(sr.handle, nil)
	if ccode == nil {
		return 0, nullHandleErr("OSRGetAuthorityCode")
	}
	s, err := goString(ccode, "OSRGetAuthorityCode")
	if err != nil {
		return 0, err
	}
	code, perr := strconv.Atoi(s)
	if perr != nil {
		return 0, &Error{Kind: KindParse, Method: "OSRGetAuthorityCode", Detail: "authority code " + strconv.Quote(s) + " is not numeric"}
	}
	return code, nil
}

// Authority returns the authority of the root node as "NAME:code".
func (sr *SpatialRef) Authority() (string, error) {
	name, err := sr.AuthorityName()
	if err != nil {
		return "", err
	}
	ccode := C.OSRGetAuthorityCode(sr.handle, nil)
	if ccode == nil {
		return "", nullHandleErr("OSRGetAuthorityCode")
	}
	code, err := goString(ccode, "OSRGetAuthorityCode")
	if err != nil {
		return "", err
	}
	return name + ":" + code, nil
}

// AutoIdentifyEPSG matches the definition against the EPSG database and
// adds authority nodes in place where a match is found.
func (sr *SpatialRef) AutoIdentifyEPSG() error {
	if rv := C.OSRAutoIdentifyEPSG(sr.handle); rv != C.OGRERR_NONE {
		return ogrErr(rv, "OSRAutoIdentifyEPSG")
	}
	return nil
}

// Name returns the name of the spatial reference.
func (sr *SpatialRef) Name() (string, error) {
	cname := C.OSRGetName(sr.handle)
	if cname == nil {
		return "", nullHandleErr("OSRGetName")
	}
	return goString(cname, "OSRGetName")
}

// AngularUnitsName returns the name of the angular unit of the geographic
// coordinate system.
func (sr *SpatialRef) AngularUnitsName() (string, error) {
	var cname *C.char
	C.OSRGetAngularUnits(sr.handle, &cname)
	if cname == nil {
		return "", nullHandleErr("OSRGetAngularUnits")
	}
	return goString(cname, "OSRGetAngularUnits")
}

// AngularUnits returns the factor converting the angular unit to radians.
func (sr *SpatialRef) AngularUnits() float64 {
	return float64(C.OSRGetAngularUnits(sr.handle, nil))
}

// LinearUnitsName returns the name of the linear unit of the projected or
// local coordinate system.
func (sr *SpatialRef) LinearUnitsName() (string, error) {
	var cname *C.char
	C.OSRGetLinearUnits(sr.handle, &cname)
	if cname == nil {
		return "", nullHandleErr("OSRGetLinearUnits")
	}
	return goString(cname, "OSRGetLinearUnits")
}

// LinearUnits returns the factor converting the linear unit to meters.
func (sr *SpatialRef) LinearUnits() float64 {
	return float64(C.OSRGetLinearUnits(sr.handle, nil))
}

// IsGeographic reports whether the root is a geographic coordinate system.
func (sr *SpatialRef) IsGeographic() bool {
	return C.OSRIsGeographic(sr.handle) != 0
}

// IsDerivedGeographic reports whether the root is a derived geographic
// coordinate system.
func (sr *SpatialRef) IsDerivedGeographic() bool {
	return C.OSRIsDerivedGeographic(sr.handle) != 0
}

// IsLocal reports whether the root is a local coordinate system.
func (sr *SpatialRef) IsLocal() bool {
	return C.OSRIsLocal(sr.handle) != 0
}

// IsProjected reports whether the root is a projected coordinate system.
func (sr *SpatialRef) IsProjected() bool {
	return C.OSRIsProjected(sr.handle) != 0
}

// IsCompound reports whether the root is a compound coordinate system.
func (sr *SpatialRef) IsCompound() bool {
	return C.OSRIsCompound(sr.handle) != 0
}

// IsGeocentric reports whether the root is a geocentric coordinate system.
func (sr *SpatialRef) IsGeocentric() bool {
	return C.OSRIsGeocentric(sr.handle) != 0
}

// IsVertical reports whether the root is a vertical coordinate system.
func (sr *SpatialRef) IsVertical() bool {
	return C.OSRIsVertical(sr.handle) != 0
}

// SemiMajor returns the semi-major axis of the ellipsoid, in meters. The
// engine may return a best-effort default together with a failure code, so
// the value is returned in both cases.
func (sr *SpatialRef) SemiMajor() (float64, error) {
	rv := C.OGRErr(C.OGRERR_NONE)
	a := C.OSRGetSemiMajor(sr.handle, &rv)
	if rv != C.OGRERR_NONE {
		return float64(a), ogrErr(rv, "OSRGetSemiMajor")
	}
	return float64(a), nil
}

// SemiMinor returns the semi-minor axis of the ellipsoid, in meters.
func (sr *SpatialRef) SemiMinor() (float64, error) {
	rv := C.OGRErr(C.OGRERR_NONE)
	b := C.OSRGetSemiMinor(sr.handle, &rv)
	if rv != C.OGRERR_NONE {
		return float64(b), ogrErr(rv, "OSRGetSemiMinor")
	}
	return float64(b), nil
}

// ProjParam returns the value of the named projection parameter, e.g.
// "central_meridian" or "scale_factor".
func (sr *SpatialRef) ProjParam(name string) (float64, error) {
	cname, err := cString(name, "OSRGetProjParm")
	if err != nil {
		return 0, err
	}
	defer C.free(unsafe.Pointer(cname))
	rv := C.OGRErr(C.OGRERR_NONE)
	// the default passed here is a placeholder, discarded on both paths
	v := C.OSRGetProjParm(sr.handle, cname, 0.0, &rv)
	if rv != C.OGRERR_NONE {
		return 0, ogrErr(rv, "OSRGetProjParm")
	}
	return float64(v), nil
}

// ProjParamOrDefault returns the value of the named projection parameter,
// or def when the parameter is absent or the name cannot be encoded.
func (sr *SpatialRef) ProjParamOrDefault(name string, def float64) float64 {
	cname, err := cString(name, "OSRGetProjParm")
	if err != nil {
		return def
	}
	defer C.free(unsafe.Pointer(cname))
	return float64(C.OSRGetProjParm(sr.handle, cname, C.double(def), nil))
}

// SetProjParam sets the named projection parameter in place.
func (sr *SpatialRef) SetProjParam(name string, value float64) error {
	cname, err := cString(name, "OSRSetProjParm")
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(cname))
	if rv := C.OSRSetProjParm(sr.handle, cname, C.double(value)); rv != C.OGRERR_NONE {
		return ogrErr(rv, "OSRSetProjParm")
	}
	return nil
}

// SetAttrValue sets the value of a node of the definition tree addressed
// by a path like "PROJCS|GEOGCS|UNIT".
func (sr *SpatialRef) SetAttrValue(nodePath, value string) error {
	cpath, err := cString(nodePath, "OSRSetAttrValue")
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(cpath))
	cvalue, err := cString(value, "OSRSetAttrValue")
	if err != nil {
		return err
	}
	defer C.free(unsafe.Pointer(cvalue))
	if rv := C.OSRSetAttrValue(sr.handle, cpath, cvalue); rv != C.OGRERR_NONE {
		return ogrErr(rv, "OSRSetAttrValue")
	}
	return nil
}

// AttrValue returns the value of the child'th child of the definition
// tree node addressed by nodePath.
func (sr *SpatialRef) AttrValue(nodePath string, child int) (string, error) {
	cpath, err := cString(nodePath, "OSRGetAttrValue")
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(cpath))
	cvalue := C.OSRGetAttrValue(sr.handle, cpath, C.int(child))
	if cvalue == nil {
		return "", nullHandleErr("OSRGetAttrValue")
	}
	return goString(cvalue, "OSRGetAttrValue")
}

// CloneGeogCS returns a new SpatialRef holding the geographic coordinate
// system underlying this one.
func (sr *SpatialRef) CloneGeogCS() (*SpatialRef, error) {
	handle := C.OSRCloneGeogCS(sr.handle)
	if handle == nil {
		return nil, nullHandleErr("OSRCloneGeogCS")
	}
	return newSpatialRef(handle), nil
}
