// Package types defines the error categories shared by every ppkit package.
//
// Every failure surfaced by the codec is an *Error whose Kind is one of
// format, validation, bounds or io. Callers branch with errors.Is against the
// sentinels:
//
//	if errors.Is(err, types.ErrValidation) {
//	    // structure_size did not match the payload length, etc.
//	}
//
// This package has no dependencies beyond the standard library.
package types
