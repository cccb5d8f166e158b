package osr

/*
#include <stdlib.h>
#include "cpl_conv.h"
*/
import "C"

import (
	"unsafe"
)

// SetConfigOption sets a process-wide engine configuration option, e.g.
// "OSR_DEFAULT_AXIS_MAPPING_STRATEGY". Engine defaults vary between linked
// versions; options that matter should be set explicitly at startup rather
// than inherited. An empty value clears the option.
func SetConfigOption(key, value string) {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	if value == "" {
		C.CPLSetConfigOption(ckey, nil)
		return
	}
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))
	C.CPLSetConfigOption(ckey, cvalue)
}

// ConfigOption returns the value of a process-wide engine configuration
// option, or def when the option is not set.
func ConfigOption(key, def string) string {
	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cdef := C.CString(def)
	defer C.free(unsafe.Pointer(cdef))
	return C.GoString(C.CPLGetConfigOption(ckey, cdef))
}
