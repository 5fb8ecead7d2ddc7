package ui

import (
	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pstuifzand/tui-reconcile/internal/model"
	"github.com/pstuifzand/tui-reconcile/internal/theme"
)

// DefaultBorderCacheSize bounds the renderer's border memo
const DefaultBorderCacheSize = 64

// Border is the glyph and color drawn on the left edge of a row
type Border struct {
	Glyph rune
	Color tcell.Color
}

// RenderDescriptor is everything needed to paint one row
type RenderDescriptor struct {
	Emoji    string
	Title    string
	Subtitle string
	Fg       tcell.Color
	Sub      tcell.Color
	Bg       tcell.Color
	Cursor   tcell.Color
	Border   Border
	Selected bool
}

var fallbackPalette = theme.Default()

type borderKey struct {
	kind     model.Kind
	selected bool
	palette  *theme.Theme
}

// Renderer turns entries into render descriptors. Its output depends only
// on the entry; border descriptors are memoized per kind, selection and
// palette.
type Renderer struct {
	borders *lru.Cache[borderKey, Border]
}

// NewRenderer creates a renderer whose border memo holds at most size
// descriptors
func NewRenderer(size int) *Renderer {
	if size <= 0 {
		size = DefaultBorderCacheSize
	}
	// lru.New only fails for a non-positive size
	borders, _ := lru.New[borderKey, Border](size)
	return &Renderer{borders: borders}
}

// Describe renders one entry
func (r *Renderer) Describe(e model.Entry) RenderDescriptor {
	palette := e.Palette
	if palette == nil {
		palette = fallbackPalette
	}
	colors := palette.Colors

	d := RenderDescriptor{
		Fg:       colors.ListText,
		Sub:      colors.ListSubtitle,
		Bg:       colors.Background,
		Cursor:   colors.ListCursorBg,
		Border:   r.border(e, palette),
		Selected: e.Selected,
	}
	if e.Selected {
		d.Fg = colors.ListSelected
	}

	switch e.Kind {
	case model.KindNone:
		d.Emoji = "✕"
		d.Title = "No Theme"
		d.Subtitle = "reset to the default look"
	case model.KindEmoticon:
		d.Emoji = e.Emoticon
		d.Title = e.Title
		if d.Title == "" {
			d.Title = e.Emoticon
		}
		d.Subtitle = e.Wallpaper
	case model.KindGift:
		d.Emoji = e.Emoji
		d.Title = e.Title
		if d.Title == "" {
			d.Title = e.ThemeID
		}
		switch {
		case e.Peer.Name != "":
			d.Subtitle = "owned by " + e.Peer.Name
		default:
			d.Subtitle = e.Wallpaper
		}
	}

	return d
}

func (r *Renderer) border(e model.Entry, palette *theme.Theme) Border {
	key := borderKey{kind: e.Kind, selected: e.Selected, palette: palette}
	if b, ok := r.borders.Get(key); ok {
		return b
	}

	b := Border{Glyph: '│', Color: palette.Colors.ListBorder}
	switch {
	case e.Selected:
		b = Border{Glyph: '┃', Color: palette.Colors.ListBorderSelected}
	case e.Kind == model.KindGift:
		b.Glyph = '╎'
	}
	r.borders.Add(key, b)
	return b
}

// CachedBorders returns the number of memoized border descriptors
func (r *Renderer) CachedBorders() int {
	return r.borders.Len()
}
