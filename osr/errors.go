package osr

/*
#include "ogr_core.h"
#include "cpl_error.h"
*/
import "C"

import (
	"strconv"
	"strings"
)

// Kind categorizes an error reported across the engine boundary.
type Kind string

const (
	// KindNullHandle: the engine returned a null object or value reference
	// with no accompanying result code.
	KindNullHandle Kind = "null_handle"
	// KindOGR: the engine returned a non-success OGRErr result code.
	KindOGR Kind = "ogr"
	// KindAxisNotFound: an axis query returned null; the engine signals
	// this purely by nullity, with no diagnostic.
	KindAxisNotFound Kind = "axis_not_found"
	// KindTextEncoding: a string could not cross the engine boundary in
	// either direction.
	KindTextEncoding Kind = "text_encoding"
	// KindParse: the engine returned non-numeric text where a numeric
	// value was expected.
	KindParse Kind = "parse"
)

// ErrCode is an OGRErr result code.
type ErrCode int

const (
	ErrNone                    = ErrCode(C.OGRERR_NONE)
	ErrNotEnoughData           = ErrCode(C.OGRERR_NOT_ENOUGH_DATA)
	ErrNotEnoughMemory         = ErrCode(C.OGRERR_NOT_ENOUGH_MEMORY)
	ErrUnsupportedGeometryType = ErrCode(C.OGRERR_UNSUPPORTED_GEOMETRY_TYPE)
	ErrUnsupportedOperation    = ErrCode(C.OGRERR_UNSUPPORTED_OPERATION)
	ErrCorruptData             = ErrCode(C.OGRERR_CORRUPT_DATA)
	ErrFailure                 = ErrCode(C.OGRERR_FAILURE)
	ErrUnsupportedSRS          = ErrCode(C.OGRERR_UNSUPPORTED_SRS)
	ErrInvalidHandle           = ErrCode(C.OGRERR_INVALID_HANDLE)
	ErrNonExistingFeature      = ErrCode(C.OGRERR_NON_EXISTING_FEATURE)
)

// String implements Stringer
func (c ErrCode) String() string {
	switch c {
	case ErrNone:
		return "OGRERR_NONE"
	case ErrNotEnoughData:
		return "OGRERR_NOT_ENOUGH_DATA"
	case ErrNotEnoughMemory:
		return "OGRERR_NOT_ENOUGH_MEMORY"
	case ErrUnsupportedGeometryType:
		return "OGRERR_UNSUPPORTED_GEOMETRY_TYPE"
	case ErrUnsupportedOperation:
		return "OGRERR_UNSUPPORTED_OPERATION"
	case ErrCorruptData:
		return "OGRERR_CORRUPT_DATA"
	case ErrFailure:
		return "OGRERR_FAILURE"
	case ErrUnsupportedSRS:
		return "OGRERR_UNSUPPORTED_SRS"
	case ErrInvalidHandle:
		return "OGRERR_INVALID_HANDLE"
	case ErrNonExistingFeature:
		return "OGRERR_NON_EXISTING_FEATURE"
	default:
		return "OGRERR_" + strconv.Itoa(int(c))
	}
}

// Error is the structured error type returned by every fallible operation
// in this package. Every failure mode of the engine (null reference,
// result code, missing axis, text encoding, non-numeric authority code)
// is translated into one of its kinds at the boundary.
type Error struct {
	Kind   Kind
	Method string  // engine entry point that failed
	Code   ErrCode // result code, for KindOGR
	Key    string  // requested node key, for KindAxisNotFound
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Method)
	switch e.Kind {
	case KindOGR:
		b.WriteString(" returned ")
		b.WriteString(e.Code.String())
	case KindNullHandle:
		b.WriteString(" returned a null reference")
	case KindAxisNotFound:
		b.WriteString(": no axis under key ")
		b.WriteString(strconv.Quote(e.Key))
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteByte(')')
	}
	return b.String()
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// nullHandleErr builds a KindNullHandle error carrying the engine's last
// error message, then resets the engine error state.
func nullHandleErr(method string) *Error {
	detail := C.GoString(C.CPLGetLastErrorMsg())
	C.CPLErrorReset()
	return &Error{Kind: KindNullHandle, Method: method, Detail: detail}
}

func ogrErr(code C.OGRErr, method string) *Error {
	return &Error{Kind: KindOGR, Method: method, Code: ErrCode(code)}
}

func axisNotFoundErr(key, method string) *Error {
	return &Error{Kind: KindAxisNotFound, Method: method, Key: key}
}
