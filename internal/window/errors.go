package window

import "errors"

var (
	errInvalidSize    = errors.New("window: size must be > 0")
	errUnknownType    = errors.New("window: unknown window type")
	errLengthMismatch = errors.New("window: signal and window must have same length")
)
