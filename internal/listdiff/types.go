// Package listdiff computes keyed, order-preserving transitions between two
// versions of an entry list.
package listdiff

// Entry is an immutable row value. StableID identifies the row across list
// versions, SortIndex orders it within one version and Equal reports whether
// two rows with the same identity render the same.
type Entry[K comparable, E any] interface {
	StableID() K
	SortIndex() int
	Equal(other E) bool
}

// NoIndex marks an insertion without a previous position
const NoIndex = -1

// Direction is an animation hint attached to deletions and insertions
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Deletion removes the entry at Index in the previous list
type Deletion struct {
	Index     int
	Direction Direction
}

// Insertion places Entry at Index in the next list. PreviousIndex is the
// entry's position in the previous list when the insertion is half of a
// reorder, NoIndex otherwise.
type Insertion[E any] struct {
	Index         int
	PreviousIndex int
	Entry         E
	Direction     Direction
}

// Update replaces the entry at Index in the next list. The entry kept its
// identity and relative order but its content changed.
type Update[E any] struct {
	Index         int
	PreviousIndex int
	Entry         E
}

// Transition describes how to turn one list version into the next
type Transition[E any] struct {
	Deletions  []Deletion
	Insertions []Insertion[E]
	Updates    []Update[E]
	Crossfade  bool
	Entries    []E // the full next list, kept for the following diff
}

// IsEmpty reports whether the transition carries no operations
func (t *Transition[E]) IsEmpty() bool {
	return t == nil || (len(t.Deletions) == 0 && len(t.Insertions) == 0 && len(t.Updates) == 0)
}

// Counts returns the number of deletions, insertions and updates
func (t *Transition[E]) Counts() (deleted, inserted, updated int) {
	if t == nil {
		return 0, 0, 0
	}
	return len(t.Deletions), len(t.Insertions), len(t.Updates)
}

// Options control a single Compute call
type Options struct {
	// Crossfade is passed through to the transition untouched
	Crossfade bool
	// ForceUpdate reports every retained entry as an update
	ForceUpdate bool
	// Strict fails on duplicate ids or unordered sort indexes instead of
	// resolving them first-wins
	Strict bool
}
