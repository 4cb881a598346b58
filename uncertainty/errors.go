package uncertainty

import "errors"

// Errors returned by uncertainty functions.
var (
	ErrLengthMismatch = errors.New("uncertainty: arrays must have the output length")
	ErrInvalidBinning = errors.New("uncertainty: bins and binning must be positive")
	ErrNoEvaluator    = errors.New("uncertainty: no evaluator factory configured")
)
