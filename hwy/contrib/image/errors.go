package image

import "errors"

var (
	// ErrInvalidShape is returned when a buffer dimension is negative.
	ErrInvalidShape = errors.New("image: invalid buffer shape")

	// ErrInvalidStride is returned when a requested row stride cannot hold a
	// packed row or is not a whole number of elements.
	ErrInvalidStride = errors.New("image: invalid buffer stride")

	// ErrTooLarge is returned when the requested storage size overflows.
	ErrTooLarge = errors.New("image: buffer too large")
)
