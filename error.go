package geogen

import "errors"

var (
	ErrValidation       = errors.New("invalid generation request")
	ErrCRSResolution    = errors.New("CRS resolution failed")
	ErrGeneration       = errors.New("geometry generation failed")
	ErrInvalidWKT       = errors.New("invalid WKT")
	ErrGdalWrongGeoType = errors.New("gdal wrong geo type")
	ErrGdalWrongGeoJSON = errors.New("gdal wrong GeoJSON")
	ErrEmptyResult      = errors.New("empty feature result")
)
