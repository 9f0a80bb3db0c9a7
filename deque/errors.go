package deque

import "errors"

var (
	// ErrInvalidArgument is returned by New when the capacity or entry size
	// is zero or negative.
	ErrInvalidArgument = errors.New("deque: invalid argument")

	// ErrAllocation is returned by New when the backing store cannot be
	// obtained.
	ErrAllocation = errors.New("deque: allocation failure")
)
