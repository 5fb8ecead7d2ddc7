package ui

import (
	"fmt"
	"sync"
	"time"
)

// ActivityKind separates plain status lines from warnings and applied
// list transitions
type ActivityKind int

const (
	ActivityStatus ActivityKind = iota
	ActivityWarning
	ActivityTransition
)

// Activity is one line of the picker's recent activity
type Activity struct {
	Kind ActivityKind
	Text string
	At   time.Time

	// set for ActivityTransition
	Deleted   int
	Inserted  int
	Updated   int
	Crossfade bool
}

func (a Activity) String() string {
	switch a.Kind {
	case ActivityWarning:
		return "! " + a.Text
	case ActivityTransition:
		s := fmt.Sprintf("~ %d deleted, %d inserted, %d updated", a.Deleted, a.Inserted, a.Updated)
		if a.Crossfade {
			s += " (crossfade)"
		}
		return s
	default:
		return a.Text
	}
}

// ActivityLog keeps the last limit activities. The list view records
// transitions from the applier while the app records status lines.
type ActivityLog struct {
	mu      sync.Mutex
	entries []Activity
	limit   int
	now     func() time.Time
}

func NewActivityLog(limit int) *ActivityLog {
	if limit <= 0 {
		limit = 1
	}
	return &ActivityLog{limit: limit, now: time.Now}
}

// Status records a status line; empty text is ignored
func (l *ActivityLog) Status(text string) {
	if text != "" {
		l.add(Activity{Kind: ActivityStatus, Text: text})
	}
}

// Warn records a failed action
func (l *ActivityLog) Warn(text string) {
	if text != "" {
		l.add(Activity{Kind: ActivityWarning, Text: text})
	}
}

// Transition records the counts of an applied batch
func (l *ActivityLog) Transition(deleted, inserted, updated int, crossfade bool) {
	l.add(Activity{
		Kind:      ActivityTransition,
		Deleted:   deleted,
		Inserted:  inserted,
		Updated:   updated,
		Crossfade: crossfade,
	})
}

func (l *ActivityLog) add(a Activity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a.At = l.now()
	l.entries = append(l.entries, a)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// Recent returns the retained activities, newest first
func (l *ActivityLog) Recent() []Activity {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Activity, len(l.entries))
	for i, a := range l.entries {
		out[len(l.entries)-1-i] = a
	}
	return out
}

// Len returns the number of retained activities
func (l *ActivityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
