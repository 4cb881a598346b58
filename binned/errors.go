package binned

import "errors"

// Errors returned by binned constructors and transforms.
var (
	ErrDimensionMismatch = errors.New("binned: dimension mismatch")
	ErrInvalidFactor     = errors.New("binned: rebin factor must divide the bin count")
)
