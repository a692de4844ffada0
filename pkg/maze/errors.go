package maze

import "errors"

var (
	// ErrInvalidDimensions reports a width or height outside [1, MaxDimension].
	ErrInvalidDimensions = errors.New("maze: invalid dimensions")
	// ErrOutOfRange reports a wall or cell query outside the stored grid.
	ErrOutOfRange = errors.New("maze: coordinate out of range")
	// ErrNoActiveGeneration is returned by step calls when no run is in progress.
	ErrNoActiveGeneration = errors.New("maze: no active generation")
	// ErrUnknownAlgorithm reports a Kind outside the supported set.
	ErrUnknownAlgorithm = errors.New("maze: unknown algorithm")
)
