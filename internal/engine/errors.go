package engine

import "errors"

var (
	// ErrInvalidGrid is returned by New when the grid has no usable cells.
	ErrInvalidGrid = errors.New("engine: invalid grid dimensions")

	// ErrInvalidMoveDelay is returned by New when the tick interval is not positive.
	ErrInvalidMoveDelay = errors.New("engine: move delay must be positive")
)
