package mapspace

import "errors"

// Configuration errors. They are wrapped with context, so match them with
// errors.Is.
var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrInvalidLevel     = errors.New("invalid level")
	ErrInvalidPattern   = errors.New("invalid loop-order pattern")
	ErrInvalidSplit     = errors.New("invalid spatial split")
)
