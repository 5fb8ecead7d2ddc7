// Package picker turns catalog state and the user's selection into theme
// list entries and feeds their transitions to the list view
package picker

import (
	"github.com/pstuifzand/tui-reconcile/internal/model"
	"github.com/pstuifzand/tui-reconcile/internal/theme"
)

// pinnedGiftWindow is how deep in the loaded gifts the initially selected
// gift may sit before it is pinned to the front of the list
const pinnedGiftWindow = 50

// Input is everything BuildEntries needs for one list version
type Input struct {
	Snapshot  model.Snapshot
	Selected  string // selected theme id, "" for no theme
	Initial   *model.GiftTheme
	InitialID string
	NightMode bool
	Palette   *theme.Theme
}

// BuildEntries builds the ordered theme list: the "no theme" row, then gift
// themes, then emoticon themes once every gift page is loaded
func BuildEntries(in Input) []model.Entry {
	entries := []model.Entry{{
		Index:    0,
		Kind:     model.KindNone,
		Selected: in.Selected == "",
		Palette:  in.Palette,
	}}

	gifts := in.Snapshot.Gifts.Themes
	if in.Initial != nil {
		pos := -1
		for i, g := range gifts {
			if g.ID == in.Initial.ID {
				pos = i
				break
			}
		}
		if pos < 0 || pos > pinnedGiftWindow {
			gifts = append([]model.GiftTheme{*in.Initial}, gifts...)
		}
	}

	existing := make(map[string]bool)
	for _, g := range gifts {
		if existing[g.ID] {
			continue
		}
		var peer model.Peer
		if g.OwnerPeerID != "" && g.ID != in.InitialID {
			peer = in.Snapshot.Peers[g.OwnerPeerID]
		}
		entries = append(entries, model.Entry{
			Index:     len(entries),
			Kind:      model.KindGift,
			ThemeID:   g.ID,
			Title:     g.Title,
			Emoji:     g.ModelEmoji,
			Wallpaper: giftWallpaper(g, in.NightMode),
			Peer:      peer,
			NightMode: in.NightMode,
			Selected:  in.Selected == g.ID,
			Palette:   in.Palette,
		})
		existing[g.ID] = true
	}

	state := in.Snapshot.Gifts
	if len(state.Themes) == 0 || (state.DataState.Ready() && !state.DataState.CanLoadMore) {
		for _, t := range in.Snapshot.Themes {
			if t.Emoticon == "" {
				continue
			}
			entries = append(entries, model.Entry{
				Index:     len(entries),
				Kind:      model.KindEmoticon,
				ThemeID:   t.ID(),
				Emoticon:  t.Emoticon,
				Title:     t.Title,
				Emoji:     t.Emoticon,
				Wallpaper: t.Wallpaper,
				NightMode: in.NightMode,
				Selected:  in.Selected == t.ID(),
				Palette:   in.Palette,
			})
		}
	}

	return entries
}

// giftWallpaper picks the wallpaper of the first variant made for the
// current appearance
func giftWallpaper(g model.GiftTheme, night bool) string {
	for _, s := range g.Settings {
		if night && s.BaseTheme.IsDark() {
			return s.Wallpaper
		}
		if !night && (s.BaseTheme == model.BaseClassic || s.BaseTheme == model.BaseDay) {
			return s.Wallpaper
		}
	}
	return ""
}
