// Package model contains the entries shown in the theme list and the raw
// catalog state they are built from
package model

import (
	"strings"

	"github.com/pstuifzand/tui-reconcile/internal/theme"
)

// Row ids outside the catalog's gift id space
const (
	NoThemeID      = "none:"
	EmoticonPrefix = "emoticon:"
)

// ReservedID reports whether id collides with the ids of the reset row or
// the emoticon themes; gift themes may not use it
func ReservedID(id string) bool {
	return strings.HasPrefix(id, NoThemeID) || strings.HasPrefix(id, EmoticonPrefix)
}

// Kind is the closed set of row kinds in the theme list
type Kind int

const (
	KindNone Kind = iota // "no theme" reset row
	KindEmoticon
	KindGift
)

func (k Kind) String() string {
	switch k {
	case KindEmoticon:
		return "emoticon"
	case KindGift:
		return "gift"
	default:
		return "none"
	}
}

// Entry is one row of the theme list. It is a value; a new list version is
// built for every state change.
type Entry struct {
	Index     int
	Kind      Kind
	ThemeID   string
	Emoticon  string
	Title     string
	Emoji     string
	Wallpaper string
	Peer      Peer
	NightMode bool
	Selected  bool
	Palette   *theme.Theme // shared; compared by identity
}

// StableID returns the theme id, or NoThemeID for the reset row
func (e Entry) StableID() string {
	if e.ThemeID != "" {
		return e.ThemeID
	}
	return NoThemeID
}

// SortIndex returns the row position within its list version
func (e Entry) SortIndex() int {
	return e.Index
}

// Equal reports whether two entries render identically
func (e Entry) Equal(other Entry) bool {
	return e.Index == other.Index &&
		e.Kind == other.Kind &&
		e.ThemeID == other.ThemeID &&
		e.Emoticon == other.Emoticon &&
		e.Title == other.Title &&
		e.Emoji == other.Emoji &&
		e.Wallpaper == other.Wallpaper &&
		e.Peer == other.Peer &&
		e.NightMode == other.NightMode &&
		e.Selected == other.Selected &&
		e.Palette == other.Palette
}

// Label is a short human readable name for logs and reports
func (e Entry) Label() string {
	switch e.Kind {
	case KindNone:
		return "No Theme"
	case KindEmoticon:
		return e.Emoticon + " " + e.Title
	default:
		if e.Title != "" {
			return e.Title
		}
		return e.ThemeID
	}
}
