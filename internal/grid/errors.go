package grid

import "errors"

// Domain errors for grid operations.
var (
	// ErrOutOfRange indicates a direct cell access outside the grid extents.
	ErrOutOfRange = errors.New("grid: coordinates outside grid extents")

	// ErrInvalidColor indicates a cell value outside the valid state set.
	ErrInvalidColor = errors.New("grid: invalid cell state")

	// ErrRaggedPattern indicates a pattern whose rows disagree in length.
	ErrRaggedPattern = errors.New("grid: pattern rows have unequal lengths")

	// ErrBadDimensions indicates non-positive or inconsistent dimensions.
	ErrBadDimensions = errors.New("grid: invalid dimensions")
)
