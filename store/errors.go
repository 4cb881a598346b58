package store

import (
	"errors"
	"fmt"
)

// Errors returned by container operations.
var (
	// ErrObjectNotFound is returned when a required named object is absent.
	// Callers building a response matrix treat it as fatal.
	ErrObjectNotFound = errors.New("store: object not found")

	// ErrKindMismatch is returned when an object exists with a different kind
	// than requested (e.g. reading an array as a matrix).
	ErrKindMismatch = errors.New("store: object kind mismatch")

	// ErrNotContainer is returned when a file is not a container.
	ErrNotContainer = errors.New("store: not a container file")

	// ErrCorrupt is returned when stored rows disagree with the object shape.
	ErrCorrupt = errors.New("store: corrupt object data")
)

func notFound(path, name string) error {
	return fmt.Errorf("%w: no object called %q in %s", ErrObjectNotFound, name, path)
}
