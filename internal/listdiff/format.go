package listdiff

import "fmt"

// LineType indicates the type of a formatted transition line
type LineType int

const (
	LineHeader LineType = iota
	LineDeletedSection
	LineInsertedSection
	LineUpdatedSection
	LineDeleted
	LineInserted
	LineUpdated
	LineSummary
	LineBlank
)

// Line is one rendered line of a transition report
type Line struct {
	Type    LineType
	Content string
	Indent  int
}

// BuildLines converts a transition into display lines. previous is the list
// the transition was computed from; label names an entry for display.
func BuildLines[E any](previous []E, t *Transition[E], label func(E) string) []Line {
	var lines []Line
	if t.IsEmpty() {
		return []Line{{Type: LineSummary, Content: "No changes"}}
	}

	if len(t.Deletions) > 0 {
		lines = append(lines, Line{Type: LineDeletedSection, Content: "Deleted:"})
		for _, d := range t.Deletions {
			name := "?"
			if d.Index >= 0 && d.Index < len(previous) {
				name = label(previous[d.Index])
			}
			lines = append(lines, Line{
				Type:    LineDeleted,
				Content: fmt.Sprintf("- [%d] %s (%s)", d.Index, name, d.Direction),
				Indent:  1,
			})
		}
		lines = append(lines, Line{Type: LineBlank})
	}

	if len(t.Insertions) > 0 {
		lines = append(lines, Line{Type: LineInsertedSection, Content: "Inserted:"})
		for _, ins := range t.Insertions {
			content := fmt.Sprintf("+ [%d] %s", ins.Index, label(ins.Entry))
			if ins.PreviousIndex != NoIndex {
				content += fmt.Sprintf(" (moved from %d)", ins.PreviousIndex)
			}
			lines = append(lines, Line{Type: LineInserted, Content: content, Indent: 1})
		}
		lines = append(lines, Line{Type: LineBlank})
	}

	if len(t.Updates) > 0 {
		lines = append(lines, Line{Type: LineUpdatedSection, Content: "Updated:"})
		for _, upd := range t.Updates {
			lines = append(lines, Line{
				Type:    LineUpdated,
				Content: fmt.Sprintf("~ [%d<-%d] %s", upd.Index, upd.PreviousIndex, label(upd.Entry)),
				Indent:  1,
			})
		}
		lines = append(lines, Line{Type: LineBlank})
	}

	d, i, u := t.Counts()
	summary := fmt.Sprintf("%d deleted, %d inserted, %d updated", d, i, u)
	if t.Crossfade {
		summary += " (crossfade)"
	}
	lines = append(lines, Line{Type: LineSummary, Content: summary})
	return lines
}
