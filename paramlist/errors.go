package paramlist

import "errors"

var (
	// ErrNoGenerator indicates AppendAt on a list without a generation
	// function.
	ErrNoGenerator = errors.New("paramlist: no generator function")

	// ErrOutOfRange indicates an entry index outside valid bounds.
	ErrOutOfRange = errors.New("paramlist: index out of range")
)
