// Package applier feeds list transitions, one at a time and in order, into a
// live visual collection.
package applier

import (
	"errors"

	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/listdiff"
)

// ErrCollectionGone is returned by a Collection whose view was torn down
var ErrCollectionGone = errors.New("visual collection is gone")

// ScrollPosition anchors a scroll target inside the viewport
type ScrollPosition int

const (
	ScrollTop ScrollPosition = iota
	ScrollCenter
	ScrollBottom
)

// ScrollTarget asks the collection to bring Index into view
type ScrollTarget struct {
	Index    int
	Position ScrollPosition
	Overflow int // extra rows revealed beyond the anchor
	Animated bool
}

// Batch is one transition as handed to the collection
type Batch[E any] struct {
	Deletions   []listdiff.Deletion
	Insertions  []listdiff.Insertion[E]
	Updates     []listdiff.Update[E]
	Entries     []E
	Synchronous bool
	Crossfade   bool
	ScrollTo    *ScrollTarget
}

// Collection is the live, ordered item list transitions are applied to.
// Apply must call done exactly once when the batch has finished animating,
// on the goroutine that drives the Applier. A synchronous batch may call
// done before Apply returns.
type Collection[E any] interface {
	Apply(batch Batch[E], done func()) error
}

type pending[E any] struct {
	transition  *listdiff.Transition[E]
	synchronous bool
}

// Applier queues transitions and applies them to a collection strictly in
// FIFO order. It is not safe for concurrent use; all calls, including the
// collection's done callbacks, must happen on one goroutine.
type Applier[E any] struct {
	collection Collection[E]
	logger     *zap.Logger

	enqueuedTransitions []pending[E]
	busy                bool
	draining            bool
	generation          uint64
	initialized         bool
	applied             int

	focus    func(E) bool
	overflow int
}

// Option configures an Applier
type Option[E any] func(*Applier[E])

// WithLogger sets the logger used for dropped work and collection errors
func WithLogger[E any](logger *zap.Logger) Option[E] {
	return func(a *Applier[E]) {
		a.logger = logger
	}
}

// WithFocus sets the predicate used on the first application to pick the
// entry to scroll to, and the overflow rows revealed below it
func WithFocus[E any](focus func(E) bool, overflow int) Option[E] {
	return func(a *Applier[E]) {
		a.focus = focus
		a.overflow = overflow
	}
}

// New creates an Applier bound to collection
func New[E any](collection Collection[E], opts ...Option[E]) *Applier[E] {
	a := &Applier[E]{
		collection: collection,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Enqueue appends a transition and starts draining if nothing is animating.
// synchronous asks the collection to apply without animation.
func (a *Applier[E]) Enqueue(t *listdiff.Transition[E], synchronous bool) {
	if a.collection == nil {
		a.logger.Debug("dropping transition for detached collection")
		return
	}
	a.enqueuedTransitions = append(a.enqueuedTransitions, pending[E]{transition: t, synchronous: synchronous})
	a.drain()
}

// drain applies queued transitions until one is still animating. A done
// callback fired from inside Apply lands back in this loop instead of
// recursing.
func (a *Applier[E]) drain() {
	if a.draining {
		return
	}
	a.draining = true
	defer func() { a.draining = false }()

	for !a.busy && len(a.enqueuedTransitions) > 0 && a.collection != nil {
		a.dequeueTransition()
	}
}

func (a *Applier[E]) dequeueTransition() {
	next := a.enqueuedTransitions[0]
	a.enqueuedTransitions = a.enqueuedTransitions[1:]

	t := next.transition
	if t.IsEmpty() {
		return
	}

	batch := Batch[E]{
		Deletions:   t.Deletions,
		Insertions:  t.Insertions,
		Updates:     t.Updates,
		Entries:     t.Entries,
		Synchronous: next.synchronous,
		Crossfade:   a.initialized && t.Crossfade,
	}

	if !a.initialized {
		batch.ScrollTo = a.initialScrollTarget(t.Entries)
		a.initialized = true
	}

	a.busy = true
	a.generation++
	gen := a.generation
	done := func() {
		if gen != a.generation || !a.busy {
			return
		}
		a.busy = false
		a.applied++
		a.drain()
	}

	if err := a.collection.Apply(batch, done); err != nil {
		a.busy = false
		if errors.Is(err, ErrCollectionGone) {
			a.logger.Debug("collection gone, dropping queued transitions", zap.Int("dropped", len(a.enqueuedTransitions)))
		} else {
			a.logger.Warn("applying transition failed, detaching collection", zap.Error(err))
		}
		a.Detach()
	}
}

func (a *Applier[E]) initialScrollTarget(entries []E) *ScrollTarget {
	if a.focus == nil {
		return nil
	}
	for i, e := range entries {
		if a.focus(e) {
			return &ScrollTarget{Index: i, Position: ScrollBottom, Overflow: a.overflow}
		}
	}
	return nil
}

// Detach drops the collection and any queued transitions. Callbacks from an
// in-flight batch are ignored afterwards.
func (a *Applier[E]) Detach() {
	a.collection = nil
	a.enqueuedTransitions = nil
	a.busy = false
	a.generation++
}

// Pending returns the number of queued, not yet applied transitions
func (a *Applier[E]) Pending() int {
	return len(a.enqueuedTransitions)
}

// Busy reports whether a batch is still animating
func (a *Applier[E]) Busy() bool {
	return a.busy
}

// Initialized reports whether the first non-empty transition was applied
func (a *Applier[E]) Initialized() bool {
	return a.initialized
}

// Applied returns the number of batches the collection finished
func (a *Applier[E]) Applied() int {
	return a.applied
}
