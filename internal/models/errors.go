package models

import "fmt"

// ErrorKind represents different categories of errors
type ErrorKind int

const (
	ErrValidation ErrorKind = iota
	ErrUnsupportedType
	ErrCollision
	ErrStructural
	ErrFileOp
	ErrStartup
)

// String returns the string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case ErrValidation:
		return "Validation"
	case ErrUnsupportedType:
		return "UnsupportedType"
	case ErrCollision:
		return "Collision"
	case ErrStructural:
		return "Structural"
	case ErrFileOp:
		return "FileOp"
	case ErrStartup:
		return "Startup"
	default:
		return "Unknown"
	}
}

// Skippable reports whether the kind is an expected per-record skip,
// logged at warn level, rather than a genuine per-record failure.
func (k ErrorKind) Skippable() bool {
	switch k {
	case ErrValidation, ErrUnsupportedType, ErrCollision:
		return true
	default:
		return false
	}
}

// GenError represents an error during recipe generation
type GenError struct {
	Kind   ErrorKind
	Record string
	Err    error
}

// Error implements the error interface
func (e *GenError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Record, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Kind, e.Err)
}

// Unwrap returns the wrapped error
func (e *GenError) Unwrap() error {
	return e.Err
}
