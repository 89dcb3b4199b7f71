package domain

import "errors"

// Sentinel errors for the two user-recoverable failure modes. Services wrap
// these with fmt.Errorf("%w: ...") so handlers can classify with errors.Is.
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnsupportedCombination = errors.New("unsupported combination")
)
