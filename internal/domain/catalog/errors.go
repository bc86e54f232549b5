package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID indicates two entities of the same kind share an id.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrOrphan indicates a parent reference that does not resolve.
	ErrOrphan = errors.New("orphaned entity")
)

// DuplicateIDError reports the first duplicated id found while indexing.
type DuplicateIDError struct {
	Kind EntityKind
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrDuplicateID, e.Kind, e.ID)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

// OrphanError describes a module or lesson excluded from the index because
// its parent does not resolve to a known course.
type OrphanError struct {
	Kind     EntityKind `json:"kind"`
	ID       string     `json:"id"`
	ParentID string     `json:"parent_id"`
}

func (e *OrphanError) Error() string {
	return fmt.Sprintf("%s: %s %q: parent %q does not resolve to a course", ErrOrphan, e.Kind, e.ID, e.ParentID)
}

func (e *OrphanError) Unwrap() error {
	return ErrOrphan
}
