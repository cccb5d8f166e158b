package osr

/*
#include "ogr_srs_api.h"
*/
import "C"

import (
	"github.com/paulmach/orb"
)

// AreaOfUse is the bounding area of valid use for a SpatialRef, in
// geographic degrees.
type AreaOfUse struct {
	WestLonDegree  float64
	SouthLatDegree float64
	EastLonDegree  float64
	NorthLatDegree float64
	Name           string
}

// Bound returns the area as an orb.Bound.
func (a *AreaOfUse) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{a.WestLonDegree, a.SouthLatDegree},
		Max: orb.Point{a.EastLonDegree, a.NorthLatDegree},
	}
}

// AreaOfUse returns the bounding area of valid use for the spatial
// reference, queried fresh from the engine. The second return value is
// false when the definition carries no area of use, which is a normal
// outcome and not an error.
func (sr *SpatialRef) AreaOfUse() (*AreaOfUse, bool) {
	var west, south, east, north C.double
	var cname *C.char
	if C.OSRGetAreaOfUse(sr.handle, &west, &south, &east, &north, &cname) == 0 {
		return nil, false
	}
	return &AreaOfUse{
		WestLonDegree:  float64(west),
		SouthLatDegree: float64(south),
		EastLonDegree:  float64(east),
		NorthLatDegree: float64(north),
		Name:           C.GoString(cname),
	}, true
}
