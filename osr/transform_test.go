package osr_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/roger120981/gdal/osr"
)

// webMercator returns a transform from WGS 84 to EPSG:3857 taking
// conventional lon/lat input.
func webMercator(t *testing.T) *osr.Transform {
	t.Helper()
	src, err := osr.FromEPSG(4326)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(src.Close)
	dst, err := osr.FromEPSG(3857)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(dst.Close)
	src.SetAxisMappingStrategy(osr.TraditionalGisOrder)
	dst.SetAxisMappingStrategy(osr.TraditionalGisOrder)
	trn, err := osr.NewTransform(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(trn.Close)
	return trn
}

func TestTransformRun(t *testing.T) {
	trn := webMercator(t)

	x := []float64{0, 2, 2}
	y := []float64{0, 0, 45}
	successful := make([]bool, 3)
	if err := trn.Run(x, y, nil, successful); err != nil {
		t.Fatal(err)
	}
	// x = a * lon(rad), y = a * ln(tan(pi/4 + lat(rad)/2))
	assertAlmostEq(t, x[0], 0)
	assertAlmostEq(t, y[0], 0)
	assertAlmostEq(t, x[1], 222638.98158654713)
	assertAlmostEq(t, y[1], 0)
	assertAlmostEq(t, x[2], 222638.98158654713)
	assertAlmostEq(t, y[2], 5621521.486192767)
	for i, ok := range successful {
		if !ok {
			t.Errorf("point %d should have transformed", i)
		}
	}
}

func TestTransformRunBadInput(t *testing.T) {
	trn := webMercator(t)

	if err := trn.Run(nil, nil, nil, nil); err == nil {
		t.Error("nil input should fail")
	}
	if err := trn.Run([]float64{1, 2}, []float64{1}, nil, nil); err == nil {
		t.Error("mismatched lengths should fail")
	}
	if err := trn.Run([]float64{}, []float64{}, nil, nil); err != nil {
		t.Errorf("empty input should be a no-op, got %v", err)
	}
}

func TestTransformPoint(t *testing.T) {
	trn := webMercator(t)

	p, err := trn.Point(orb.Point{2, 45})
	if err != nil {
		t.Fatal(err)
	}
	assertAlmostEq(t, p[0], 222638.98158654713)
	assertAlmostEq(t, p[1], 5621521.486192767)
}

func TestTransformBound(t *testing.T) {
	trn := webMercator(t)

	b, err := trn.Bound(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 45}})
	if err != nil {
		t.Fatal(err)
	}
	assertAlmostEq(t, b.Min[0], 0)
	assertAlmostEq(t, b.Min[1], 0)
	assertAlmostEq(t, b.Max[0], 222638.98158654713)
	assertAlmostEq(t, b.Max[1], 5621521.486192767)
}

func TestTransformRoundTrip(t *testing.T) {
	src, err := osr.FromEPSG(4326)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	dst, err := osr.FromEPSG(2154)
	if err != nil {
		t.Fatal(err)
	}
	defer dst.Close()
	src.SetAxisMappingStrategy(osr.TraditionalGisOrder)
	dst.SetAxisMappingStrategy(osr.TraditionalGisOrder)

	fwd, err := osr.NewTransform(src, dst)
	if err != nil {
		t.Fatal(err)
	}
	defer fwd.Close()
	inv, err := osr.NewTransform(dst, src)
	if err != nil {
		t.Fatal(err)
	}
	defer inv.Close()

	in := orb.Point{2.3522, 48.8566}
	projected, err := fwd.Point(in)
	if err != nil {
		t.Fatal(err)
	}
	back, err := inv.Point(projected)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(back[0]-in[0]) > 1e-9 || math.Abs(back[1]-in[1]) > 1e-9 {
		t.Errorf("round trip = %v, want %v", back, in)
	}
}
