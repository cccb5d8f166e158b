package osr

/*
#include "ogr_srs_api.h"
*/
import "C"

import (
	"runtime"

	"github.com/paulmach/orb"
)

// A Transform reprojects coordinates from one SpatialRef to another using
// the engine's own transformation object.
type Transform struct {
	handle C.OGRCoordinateTransformationH
}

// NewTransform creates a transformation from src to dst. The axis order of
// the input and output follows the axis mapping strategy of the two
// spatial references.
func NewTransform(src, dst *SpatialRef) (*Transform, error) {
	handle := C.OCTNewCoordinateTransformation(src.handle, dst.handle)
	if handle == nil {
		return nil, nullHandleErr("OCTNewCoordinateTransformation")
	}
	trn := &Transform{handle: handle}
	runtime.SetFinalizer(trn, (*Transform).Close)
	return trn, nil
}

// Close releases the transformation object. Safe to call more than once.
func (trn *Transform) Close() {
	if trn.handle == nil {
		return
	}
	C.OCTDestroyCoordinateTransformation(trn.handle)
	trn.handle = nil
}

// Run reprojects points in place.
//
// x and y must not be nil and must be of the same length. z may be nil, or
// of the same length as x and y. successful may be nil, or of the same
// length as x and y; when non nil it records per point whether the
// transformation succeeded.
func (trn *Transform) Run(x, y, z []float64, successful []bool) error {
	if x == nil || y == nil {
		return &Error{Kind: KindOGR, Method: "OCTTransformEx", Code: ErrNotEnoughData, Detail: "x and y must not be nil"}
	}
	if len(x) != len(y) || (z != nil && len(z) != len(x)) || (successful != nil && len(successful) != len(x)) {
		return &Error{Kind: KindOGR, Method: "OCTTransformEx", Code: ErrNotEnoughData, Detail: "input slice lengths differ"}
	}
	if len(x) == 0 {
		return nil
	}

	cx := make([]C.double, len(x))
	cy := make([]C.double, len(x))
	pcx, pcy := &cx[0], &cy[0]
	pcz := (*C.double)(nil)
	pcs := (*C.int)(nil)
	var cz []C.double
	var cs []C.int
	if z != nil {
		cz = make([]C.double, len(x))
		pcz = &cz[0]
	}
	if successful != nil {
		cs = make([]C.int, len(x))
		pcs = &cs[0]
	}
	for i := range x {
		cx[i] = C.double(x[i])
		cy[i] = C.double(y[i])
		if cz != nil {
			cz[i] = C.double(z[i])
		}
	}

	ret := C.OCTTransformEx(trn.handle, C.int(len(x)), pcx, pcy, pcz, pcs)

	for i := range x {
		x[i] = float64(cx[i])
		y[i] = float64(cy[i])
		if cz != nil {
			z[i] = float64(cz[i])
		}
		if cs != nil {
			successful[i] = cs[i] > 0
		}
	}
	if ret == 0 {
		return &Error{Kind: KindOGR, Method: "OCTTransformEx", Code: ErrFailure, Detail: "some or all points failed to transform"}
	}
	return nil
}

// Point reprojects a single orb.Point.
func (trn *Transform) Point(p orb.Point) (orb.Point, error) {
	x := []float64{p[0]}
	y := []float64{p[1]}
	if err := trn.Run(x, y, nil, nil); err != nil {
		return orb.Point{}, err
	}
	return orb.Point{x[0], y[0]}, nil
}

// Bound reprojects an orb.Bound by transforming its four corners and
// taking the envelope of the results.
func (trn *Transform) Bound(b orb.Bound) (orb.Bound, error) {
	x := []float64{b.Min[0], b.Min[0], b.Max[0], b.Max[0]}
	y := []float64{b.Min[1], b.Max[1], b.Max[1], b.Min[1]}
	if err := trn.Run(x, y, nil, nil); err != nil {
		return orb.Bound{}, err
	}
	out := orb.Bound{
		Min: orb.Point{x[0], y[0]},
		Max: orb.Point{x[0], y[0]},
	}
	for i := 1; i < 4; i++ {
		out = out.Extend(orb.Point{x[i], y[i]})
	}
	return out, nil
}
