package picker

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-reconcile/internal/model"
)

// Filter narrows the theme list with a fuzzy query. The "no theme" row is
// always kept so the selection can be reset while filtering.
type Filter struct {
	query string
}

// SetQuery replaces the query; an empty query keeps every row
func (f *Filter) SetQuery(query string) {
	f.query = strings.TrimSpace(query)
}

// Query returns the active query
func (f *Filter) Query() string {
	return f.query
}

// IsActive reports whether a non-empty query is set
func (f *Filter) IsActive() bool {
	return f.query != ""
}

// Matches reports whether an entry passes the query
func (f *Filter) Matches(e model.Entry) bool {
	if f.query == "" || e.Kind == model.KindNone {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{e.Title, e.Emoticon, e.Peer.Name, e.ThemeID}, " "))
	return fuzzy.MatchFold(f.query, haystack)
}

// Apply returns the matching entries renumbered from zero
func (f *Filter) Apply(entries []model.Entry) []model.Entry {
	if f.query == "" {
		return entries
	}
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			e.Index = len(out)
			out = append(out, e)
		}
	}
	return out
}
