package geometry

import "github.com/pkg/errors"

// The geometry routines are leaf computations called from tight perception
// loops; threading error returns through them for caller mistakes (too few
// polygon vertices, a non-positive raster step) would clutter every
// signature. Instead precondition violations panic, and the public wrappers
// in the root package recover and convert to an error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

// HandleGeometryPanicRecover converts a recovered GeometryError into a plain
// error. Any other panic value is re-raised, since it indicates a real bug
// rather than a precondition failure.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
