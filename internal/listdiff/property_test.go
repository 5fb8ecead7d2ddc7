package listdiff

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// listFrom turns raw generated keys into an ordered list with unique ids.
// Repeated keys are skipped; values cycle through vals.
func listFrom(keys, vals []int) []row {
	seen := make(map[int]bool)
	var out []row
	for i, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		v := 0
		if len(vals) > 0 {
			v = vals[i%len(vals)]
		}
		out = append(out, row{ID: fmt.Sprintf("k%d", k), Index: len(out), V: v})
	}
	return out
}

func sameRows(a, b []row) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

func listGens() []gopter.Gen {
	return []gopter.Gen{
		gen.SliceOf(gen.IntRange(0, 12)),
		gen.SliceOf(gen.IntRange(0, 3)),
		gen.SliceOf(gen.IntRange(0, 12)),
		gen.SliceOf(gen.IntRange(0, 3)),
	}
}

func TestPropertyApplyReconstructsNext(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("applying the transition to previous yields next", prop.ForAll(
		func(pk, pv, nk, nv []int) bool {
			previous, next := listFrom(pk, pv), listFrom(nk, nv)
			tr, err := Compute[string](previous, next, Options{Strict: true})
			if err != nil {
				return false
			}
			got, err := Apply(previous, tr)
			return err == nil && sameRows(next, got)
		},
		listGens()...,
	))

	properties.TestingRun(t)
}

func TestPropertyIdempotence(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("diffing a list against itself is empty", prop.ForAll(
		func(keys, vals []int) bool {
			list := listFrom(keys, vals)
			tr, err := Compute[string](list, list, Options{})
			return err == nil && tr.IsEmpty()
		},
		gen.SliceOf(gen.IntRange(0, 20)),
		gen.SliceOf(gen.IntRange(0, 3)),
	))

	properties.TestingRun(t)
}

func TestPropertyRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("A to B then B to A restores A", prop.ForAll(
		func(ak, av, bk, bv []int) bool {
			a, b := listFrom(ak, av), listFrom(bk, bv)
			forward, err := Compute[string](a, b, Options{})
			if err != nil {
				return false
			}
			mid, err := Apply(a, forward)
			if err != nil {
				return false
			}
			backward, err := Compute[string](b, a, Options{})
			if err != nil {
				return false
			}
			got, err := Apply(mid, backward)
			return err == nil && sameRows(a, got)
		},
		listGens()...,
	))

	properties.TestingRun(t)
}

func TestPropertyDeletionsAscending(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("deletions are strictly ascending", prop.ForAll(
		func(pk, pv, nk, nv []int) bool {
			tr, err := Compute[string](listFrom(pk, pv), listFrom(nk, nv), Options{})
			if err != nil {
				return false
			}
			for i := 1; i < len(tr.Deletions); i++ {
				if tr.Deletions[i-1].Index >= tr.Deletions[i].Index {
					return false
				}
			}
			return true
		},
		listGens()...,
	))

	properties.TestingRun(t)
}
