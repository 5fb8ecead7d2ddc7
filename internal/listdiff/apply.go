package listdiff

import (
	"fmt"
	"slices"
)

// Apply replays a transition onto a copy of previous. Deletion indices are
// taken against the original list and removed from the highest down,
// insertions are placed in ascending final index and updates replace by
// final index.
func Apply[E any](previous []E, t *Transition[E]) ([]E, error) {
	out := slices.Clone(previous)
	if t == nil {
		return out, nil
	}

	for n := len(t.Deletions) - 1; n >= 0; n-- {
		idx := t.Deletions[n].Index
		if idx < 0 || idx >= len(out) {
			return nil, fmt.Errorf("%w: deletion at %d, list has %d entries", ErrIndexOutOfRange, idx, len(out))
		}
		if n > 0 && t.Deletions[n-1].Index >= idx {
			return nil, fmt.Errorf("%w: deletions not ascending at %d", ErrIndexOutOfRange, idx)
		}
		out = slices.Delete(out, idx, idx+1)
	}

	insertions := slices.Clone(t.Insertions)
	slices.SortStableFunc(insertions, func(a, b Insertion[E]) int { return a.Index - b.Index })
	for _, ins := range insertions {
		if ins.Index < 0 || ins.Index > len(out) {
			return nil, fmt.Errorf("%w: insertion at %d, list has %d entries", ErrIndexOutOfRange, ins.Index, len(out))
		}
		out = slices.Insert(out, ins.Index, ins.Entry)
	}

	for _, upd := range t.Updates {
		if upd.Index < 0 || upd.Index >= len(out) {
			return nil, fmt.Errorf("%w: update at %d, list has %d entries", ErrIndexOutOfRange, upd.Index, len(out))
		}
		out[upd.Index] = upd.Entry
	}

	return out, nil
}
