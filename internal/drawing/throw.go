package drawing

import "github.com/pkg/errors"

// Threading errors through every step of the path data scanner would bury the
// grammar under error checks. Instead the scanner panics with a pathDataError,
// and the exported entry points recover to convert it to an error.

type pathDataError struct {
	error
}

// Panic with a pathDataError.
func fatalf(format string, args ...interface{}) {
	panic(pathDataError{errors.Errorf(format, args...)})
}

// Anything that isn't a pathDataError is a real bug, so it keeps panicking.
func handlePathDataPanicRecover(r interface{}) error {
	if r != nil {
		if pathErr, ok := r.(pathDataError); ok {
			return pathErr.error
		}
		panic(r)
	}
	return nil
}
