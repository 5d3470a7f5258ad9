package internal

import "github.com/pkg/errors"

// Threading errors through every step of labeling and tracing would add a lot
// of noise to tight pixel loops. Instead, we use panics, and the public API
// recovers to convert to an error.

// Only panics carrying this type are converted. Anything else, including
// runtime errors, is a real bug and keeps panicking.
type SimplifyError struct {
	error
}

func (e SimplifyError) Cause() error  { return e.error }
func (e SimplifyError) Unwrap() error { return e.error }

// Returned (wrapped) for input the algorithms cannot work with at all: rings
// with fewer than 3 points, ragged rasters, unknown connectivity. Check with
// errors.Cause.
var ErrInvalidInput = errors.New("invalid input")

// Panic with a SimplifyError.
func fatalf(format string, args ...interface{}) {
	panic(SimplifyError{errors.Errorf(format, args...)})
}

// Panic with a SimplifyError carrying err, unless err is nil.
func throwIf(err error) {
	if err != nil {
		panic(SimplifyError{err})
	}
}

func HandleSimplifyPanicRecover(r interface{}) error {
	if r != nil {
		if simplifyError, ok := r.(SimplifyError); ok {
			return simplifyError
		}
		panic(r)
	}
	return nil
}
