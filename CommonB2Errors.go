package box2dlite

import "errors"

var (
	// ErrInvalidArgumentType is returned when a missing or malformed value is handed to the world,
	// an arbiter or a body.
	ErrInvalidArgumentType = errors.New("box2dlite: invalid argument type")

	// ErrInvalidArgumentCount is returned when an operation receives the wrong number of values.
	ErrInvalidArgumentCount = errors.New("box2dlite: invalid argument count")
)
