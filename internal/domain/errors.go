package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the only failure the catalog produces; the three
// single-record lookups raise it, everything else is total.
var ErrNotFound = errors.New("catalog: not found")

// NotFoundError carries the entity kind ("trip", "hotel", "attraction")
// and the id that missed. It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
