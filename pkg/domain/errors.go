package domain

import "errors"

// ErrValidation marks synchronous rejections of malformed write input.
// Callers branch on it with errors.Is to distinguish bad input from
// degraded-but-successful results.
var ErrValidation = errors.New("validation error")
