package grid

import "errors"

var (
	// ErrEmptyGrid indicates a definition with no rows or columns.
	ErrEmptyGrid = errors.New("grid: definition must have at least one row and one column")
	// ErrShapeMismatch indicates operand grids of differing extent, resolution or alignment.
	ErrShapeMismatch = errors.New("grid: operand grids must share extent, resolution and alignment")
	// ErrResolution indicates a non-positive cell width.
	ErrResolution = errors.New("grid: cell width must be positive")
)
