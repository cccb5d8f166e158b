package osr

/*
#include <stdlib.h>
#include "ogr_srs_api.h"
*/
import "C"

import (
	"unsafe"
)

// AxisOrientation is the semantic direction of a coordinate axis.
type AxisOrientation C.OGRAxisOrientation

const (
	OAOOther = AxisOrientation(C.OAO_Other)
	OAONorth = AxisOrientation(C.OAO_North)
	OAOSouth = AxisOrientation(C.OAO_South)
	OAOEast  = AxisOrientation(C.OAO_East)
	OAOWest  = AxisOrientation(C.OAO_West)
	OAOUp    = AxisOrientation(C.OAO_Up)
	OAODown  = AxisOrientation(C.OAO_Down)
)

// String implements Stringer
func (ao AxisOrientation) String() string {
	return C.GoString(C.OSRAxisEnumToName(C.OGRAxisOrientation(ao)))
}

// AxisMappingStrategy is the policy mapping data axes to the axes defined
// by the coordinate reference system.
type AxisMappingStrategy C.OSRAxisMappingStrategy

const (
	// TraditionalGisOrder forces the conventional x/y (longitude/latitude,
	// easting/northing) order regardless of the authority definition.
	TraditionalGisOrder = AxisMappingStrategy(C.OAMS_TRADITIONAL_GIS_ORDER)
	// AuthorityCompliant follows the axis order of the authority
	// definition.
	AuthorityCompliant = AxisMappingStrategy(C.OAMS_AUTHORITY_COMPLIANT)
	// CustomAxisMapping is reported for mappings set through means outside
	// this package.
	CustomAxisMapping = AxisMappingStrategy(C.OAMS_CUSTOM)
)

// AxisOrientation returns the orientation of an axis of the node addressed
// by targetKey ("GEOGCS", "PROJCS", ...).
func (sr *SpatialRef) AxisOrientation(targetKey string, axis int) (AxisOrientation, error) {
	ckey, err := cString(targetKey, "OSRGetAxis")
	if err != nil {
		return OAOOther, err
	}
	defer C.free(unsafe.Pointer(ckey))
	orientation := C.OGRAxisOrientation(C.OAO_Other)
	cname := C.OSRGetAxis(sr.handle, ckey, C.int(axis), &orientation)
	// a null return signals failure without any CPL diagnostic
	if cname == nil {
		return OAOOther, axisNotFoundErr(targetKey, "OSRGetAxis")
	}
	return AxisOrientation(orientation), nil
}

// AxisName returns the name of an axis of the node addressed by targetKey.
func (sr *SpatialRef) AxisName(targetKey string, axis int) (string, error) {
	ckey, err := cString(targetKey, "OSRGetAxis")
	if err != nil {
		return "", err
	}
	defer C.free(unsafe.Pointer(ckey))
	cname := C.OSRGetAxis(sr.handle, ckey, C.int(axis), nil)
	if cname == nil {
		return "", axisNotFoundErr(targetKey, "OSRGetAxis")
	}
	return goString(cname, "OSRGetAxis")
}

// AxesCount returns the number of axes of the coordinate system.
func (sr *SpatialRef) AxesCount() int {
	return int(C.OSRGetAxesCount(sr.handle))
}

// AxisMappingStrategy returns the data axis to CRS axis mapping strategy.
func (sr *SpatialRef) AxisMappingStrategy() AxisMappingStrategy {
	return AxisMappingStrategy(C.OSRGetAxisMappingStrategy(sr.handle))
}

// SetAxisMappingStrategy sets the data axis to CRS axis mapping strategy.
func (sr *SpatialRef) SetAxisMappingStrategy(strategy AxisMappingStrategy) {
	C.OSRSetAxisMappingStrategy(sr.handle, C.OSRAxisMappingStrategy(strategy))
}
