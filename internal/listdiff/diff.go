package listdiff

import (
	"errors"
	"slices"
	"sort"
)

// Compute diffs two versions of an entry list. Both lists are expected to be
// ordered by SortIndex with unique stable ids; see Options.Strict for what
// happens when they are not.
//
// Entries whose relative order changed are reported as a deletion at the old
// position plus an insertion at the new one. There is no move operation.
func Compute[K comparable, E Entry[K, E]](previous, next []E, opts Options) (*Transition[E], error) {
	if opts.Strict {
		if err := errors.Join(Validate[K]("previous", previous), Validate[K]("next", next)); err != nil {
			return nil, err
		}
	}
	return ComputeFunc(previous, next,
		func(e E) K { return e.StableID() },
		func(a, b E) bool { return a.Equal(b) },
		opts)
}

// ComputeFunc is Compute for element types that carry identity and equality
// outside of the Entry interface
func ComputeFunc[E any, K comparable](previous, next []E, id func(E) K, equal func(a, b E) bool, opts Options) (*Transition[E], error) {
	if opts.Strict {
		if err := checkUnique("previous", previous, id); err != nil {
			return nil, err
		}
		if err := checkUnique("next", next, id); err != nil {
			return nil, err
		}
	}

	// First occurrence wins; later duplicates fall out as deletions or
	// insertions below.
	previousIndex := make(map[K]int, len(previous))
	for i, e := range previous {
		k := id(e)
		if _, exists := previousIndex[k]; !exists {
			previousIndex[k] = i
		}
	}

	// previousOf[j] is the previous position matched to next[j], or NoIndex
	previousOf := make([]int, len(next))
	claimed := make([]bool, len(previous))
	var matchedNext, matchedPrev []int
	for j, e := range next {
		previousOf[j] = NoIndex
		if i, ok := previousIndex[id(e)]; ok && !claimed[i] {
			claimed[i] = true
			previousOf[j] = i
			matchedNext = append(matchedNext, j)
			matchedPrev = append(matchedPrev, i)
		}
	}

	retained := make([]bool, len(previous))
	firstRetained, lastRetained := NoIndex, NoIndex
	for m, keep := range longestIncreasing(matchedPrev) {
		if !keep {
			continue
		}
		p := matchedPrev[m]
		retained[p] = true
		if firstRetained == NoIndex || p < firstRetained {
			firstRetained = p
		}
		if p > lastRetained {
			lastRetained = p
		}
	}

	t := &Transition[E]{
		Crossfade: opts.Crossfade,
		Entries:   slices.Clone(next),
	}

	for i := range previous {
		if retained[i] {
			continue
		}
		t.Deletions = append(t.Deletions, Deletion{
			Index:     i,
			Direction: deletionDirection(i, firstRetained, lastRetained),
		})
	}

	for j, e := range next {
		p := previousOf[j]
		switch {
		case p == NoIndex:
			t.Insertions = append(t.Insertions, Insertion[E]{Index: j, PreviousIndex: NoIndex, Entry: e, Direction: DirectionDown})
		case !retained[p]:
			dir := DirectionDown
			if j < p {
				dir = DirectionUp
			}
			t.Insertions = append(t.Insertions, Insertion[E]{Index: j, PreviousIndex: p, Entry: e, Direction: dir})
		case opts.ForceUpdate || !equal(previous[p], e):
			t.Updates = append(t.Updates, Update[E]{Index: j, PreviousIndex: p, Entry: e})
		}
	}

	return t, nil
}

// deletionDirection biases the slide-out of a removed row towards the edge
// of the surviving block it sat beyond
func deletionDirection(i, first, last int) Direction {
	switch {
	case first == NoIndex:
		return DirectionNone
	case i < first:
		return DirectionUp
	case i > last:
		return DirectionDown
	default:
		return DirectionNone
	}
}

// longestIncreasing marks one longest strictly increasing subsequence of seq
func longestIncreasing(seq []int) []bool {
	keep := make([]bool, len(seq))
	if len(seq) == 0 {
		return keep
	}

	tails := make([]int, 0, len(seq)) // positions in seq
	parent := make([]int, len(seq))
	for i, v := range seq {
		k := sort.Search(len(tails), func(n int) bool { return seq[tails[n]] >= v })
		parent[i] = -1
		if k > 0 {
			parent[i] = tails[k-1]
		}
		if k == len(tails) {
			tails = append(tails, i)
		} else {
			tails[k] = i
		}
	}

	for i := tails[len(tails)-1]; i >= 0; i = parent[i] {
		keep[i] = true
	}
	return keep
}
