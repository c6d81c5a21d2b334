package materialcolors

import "github.com/pkg/errors"

// Errors returned while generating color artifacts. Every failure of a run
// matches exactly one of them with errors.Is.
var (
	ErrNetwork       = errors.New("network error")
	ErrParse         = errors.New("parse error")
	ErrInvalidFormat = errors.New("invalid color format")
	ErrIllegalState  = errors.New("illegal state")
	ErrIO            = errors.New("io error")
	ErrMismatch      = errors.New("artifacts mismatch")
)
