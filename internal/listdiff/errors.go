package listdiff

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Apply when a transition does not fit the
// list it is applied to
var ErrIndexOutOfRange = errors.New("transition index out of range")

// DuplicateIDError reports a stable id that occurs twice in one list version
type DuplicateIDError struct {
	List   string // "previous" or "next"
	ID     any
	First  int
	Second int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate stable id %v in %s list at positions %d and %d", e.ID, e.List, e.First, e.Second)
}

// OrderError reports an entry whose sort index is lower than its predecessor's
type OrderError struct {
	List     string
	Position int
	Index    int
	Previous int
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s list not ordered: sort index %d at position %d follows %d", e.List, e.Index, e.Position, e.Previous)
}

// Validate checks the list contract: unique stable ids and ascending sort
// indexes. All violations are returned joined.
func Validate[K comparable, E Entry[K, E]](list string, entries []E) error {
	var errs []error
	seen := make(map[K]int, len(entries))
	for i, e := range entries {
		id := e.StableID()
		if first, ok := seen[id]; ok {
			errs = append(errs, &DuplicateIDError{List: list, ID: id, First: first, Second: i})
		} else {
			seen[id] = i
		}
		if i > 0 && e.SortIndex() < entries[i-1].SortIndex() {
			errs = append(errs, &OrderError{List: list, Position: i, Index: e.SortIndex(), Previous: entries[i-1].SortIndex()})
		}
	}
	return errors.Join(errs...)
}

func checkUnique[E any, K comparable](list string, entries []E, id func(E) K) error {
	seen := make(map[K]int, len(entries))
	for i, e := range entries {
		k := id(e)
		if first, ok := seen[k]; ok {
			return &DuplicateIDError{List: list, ID: k, First: first, Second: i}
		}
		seen[k] = i
	}
	return nil
}
