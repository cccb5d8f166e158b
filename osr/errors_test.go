package osr_test

import (
	"errors"
	"testing"

	"github.com/roger120981/gdal/osr"
)

func TestErrorString(t *testing.T) {
	for _, tc := range []struct {
		err  *osr.Error
		want string
	}{
		{
			&osr.Error{Kind: osr.KindNullHandle, Method: "OSRGetAuthorityName"},
			"null_handle: OSRGetAuthorityName returned a null reference",
		},
		{
			&osr.Error{Kind: osr.KindOGR, Method: "OSRGetProjParm", Code: osr.ErrFailure},
			"ogr: OSRGetProjParm returned OGRERR_FAILURE",
		},
		{
			&osr.Error{Kind: osr.KindAxisNotFound, Method: "OSRGetAxis", Key: "DOES_NOT_EXIST"},
			`axis_not_found: OSRGetAxis: no axis under key "DOES_NOT_EXIST"`,
		},
		{
			&osr.Error{Kind: osr.KindTextEncoding, Method: "OSRImportFromProj4", Detail: "string contains an embedded NUL byte"},
			"text_encoding: OSRImportFromProj4 (string contains an embedded NUL byte)",
		},
	} {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}

func TestErrorIsMatchesByKind(t *testing.T) {
	sr, err := osr.FromEPSG(4326)
	if err != nil {
		t.Fatal(err)
	}
	defer sr.Close()

	_, err = sr.AxisName("DOES_NOT_EXIST", 0)
	if !errors.Is(err, &osr.Error{Kind: osr.KindAxisNotFound}) {
		t.Errorf("err = %v, should match axis_not_found", err)
	}
	if errors.Is(err, &osr.Error{Kind: osr.KindOGR}) {
		t.Errorf("err = %v, should not match ogr", err)
	}
}

func TestErrCodeString(t *testing.T) {
	if got := osr.ErrFailure.String(); got != "OGRERR_FAILURE" {
		t.Errorf("String = %q, want %q", got, "OGRERR_FAILURE")
	}
	if got := osr.ErrUnsupportedSRS.String(); got != "OGRERR_UNSUPPORTED_SRS" {
		t.Errorf("String = %q, want %q", got, "OGRERR_UNSUPPORTED_SRS")
	}
	if got := osr.ErrCode(42).String(); got != "OGRERR_42" {
		t.Errorf("String = %q, want %q", got, "OGRERR_42")
	}
}
