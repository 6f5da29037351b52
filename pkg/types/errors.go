package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat     ErrKind = iota // container marker missing or hex stream unusable
	ErrKindValidation                // decoded data contradicts itself (size, counts, offsets)
	ErrKindBounds                    // offset or offset+width outside the payload
	ErrKindIO                        // file could not be read or written
)

// String returns the category name used in messages.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindValidation:
		return "validation"
	case ErrKindBounds:
		return "bounds"
	case ErrKindIO:
		return "io"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so sentinels
// match any error of their category through errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is. They carry no detail of their own.
var (
	// ErrFormat indicates the registry container could not be parsed.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "format error"}
	// ErrValidation indicates a structural inconsistency in the payload.
	ErrValidation = &Error{Kind: ErrKindValidation, Msg: "validation error"}
	// ErrBounds indicates an access past the end of the payload.
	ErrBounds = &Error{Kind: ErrKindBounds, Msg: "bounds error"}
	// ErrIO indicates a file operation failed.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o error"}
)

// FormatError builds an ErrKindFormat error.
func FormatError(format string, args ...any) error {
	return &Error{Kind: ErrKindFormat, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError builds an ErrKindValidation error.
func ValidationError(format string, args ...any) error {
	return &Error{Kind: ErrKindValidation, Msg: fmt.Sprintf(format, args...)}
}

// BoundsError reports that [off, off+width) does not fit in a buffer of size length.
func BoundsError(off, width, length int) error {
	return &Error{
		Kind: ErrKindBounds,
		Msg:  fmt.Sprintf("offset %d width %d exceeds buffer of %d bytes", off, width, length),
	}
}

// BoundsErrorf builds an ErrKindBounds error with a custom message, for
// indices rather than byte ranges.
func BoundsErrorf(format string, args ...any) error {
	return &Error{Kind: ErrKindBounds, Msg: fmt.Sprintf(format, args...)}
}

// IOError wraps a file system failure for path.
func IOError(op, path string, err error) error {
	return &Error{Kind: ErrKindIO, Msg: fmt.Sprintf("%s %s", op, path), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
