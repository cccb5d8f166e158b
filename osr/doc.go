/*
Package osr provides an interface to the GDAL/OGR Spatial Reference System API.

See: https://gdal.org/tutorials/osr_api_tut.html

This package requires GDAL version 3.1 or above.
*/
package osr
