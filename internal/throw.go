package internal

import "github.com/pkg/errors"

// The builders never fail on valid input, so there's no error plumbing through
// the chain and frame loops. A broken invariant is a bug; we panic, and the
// public API recovers to convert to an error.

type HullError struct {
	error
}

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(HullError{errors.Errorf(format, args...)})
}

// Convert a recovered HullError back into an error. Any other panic value is
// re-panicked, since it isn't one of ours.
func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError.error
		}
		panic(r)
	}
	return nil
}
