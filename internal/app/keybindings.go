package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/pstuifzand/tui-reconcile/internal/ui"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Label       string // display name when the key is not printable
	Description string
	Handler     func(*App)
}

// GetKey returns the display name of this keybinding
func (kb *KeyBinding) GetKey() string {
	if kb.Label != "" {
		return kb.Label
	}
	return string(kb.Key)
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// InitializeKeybindings sets up all the key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Key:         'j',
			Description: "Move down",
			Handler: func(app *App) {
				app.list.SelectNext()
			},
		},
		{
			Key:         'k',
			Description: "Move up",
			Handler: func(app *App) {
				app.list.SelectPrev()
			},
		},
		{
			Key:         'g',
			Description: "Go to first theme",
			Handler: func(app *App) {
				app.list.SelectFirst()
			},
		},
		{
			Key:         'G',
			Description: "Go to last theme",
			Handler: func(app *App) {
				app.list.SelectLast()
			},
		},
		{
			Key:         ' ',
			Label:       "space",
			Description: "Apply the theme under the cursor",
			Handler: func(app *App) {
				app.selectCursor()
			},
		},
		{
			Key:         'x',
			Description: "Reset to no theme",
			Handler: func(app *App) {
				app.Select("")
			},
		},
		{
			Key:         'n',
			Description: "Toggle night mode",
			Handler: func(app *App) {
				app.SetNightMode(!app.picker.NightMode())
			},
		},
		{
			Key:         '/',
			Description: "Filter themes",
			Handler: func(app *App) {
				app.filter.Start(app.picker.Query())
			},
		},
		{
			Key:         ':',
			Description: "Command line",
			Handler: func(app *App) {
				app.command.Start("")
			},
		},
		{
			Key:         'm',
			Description: "Load more gift themes",
			Handler: func(app *App) {
				if !app.loadMore() {
					app.SetStatus("All gift themes loaded")
				}
			},
		},
		{
			Key:         'r',
			Description: "Reload the catalog",
			Handler: func(app *App) {
				app.reloadWithStatus()
			},
		},
		{
			Key:         'R',
			Description: "Redraw every row",
			Handler: func(app *App) {
				app.picker.Refresh()
			},
		},
		{
			Key:         't',
			Description: "Show the last list transition",
			Handler: func(app *App) {
				app.trace.Show(app.list.LastTransition())
			},
		},
		{
			Key:         '?',
			Description: "Toggle help",
			Handler: func(app *App) {
				app.help.Toggle()
			},
		},
		{
			Key:         'q',
			Description: "Quit",
			Handler: func(app *App) {
				app.Quit()
			},
		},
	}
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
		a.syncViewport()
		return
	}

	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	if a.command.IsActive() {
		if a.command.HandleKey(keyEv) == ui.PromptSubmitted {
			a.handleCommand(a.command.Input())
		}
		return
	}

	if a.filter.IsActive() {
		switch a.filter.HandleKey(keyEv) {
		case ui.PromptChanged, ui.PromptSubmitted:
			a.SetFilter(a.filter.Input())
		case ui.PromptCancelled:
			a.filter.SetText("")
			a.SetFilter("")
		}
		return
	}

	if a.trace.IsVisible() {
		a.trace.HandleKeyEvent(keyEv)
		return
	}

	if a.help.IsVisible() {
		if keyEv.Key() == tcell.KeyEscape || keyEv.Rune() == '?' {
			a.help.Toggle()
		}
		return
	}

	a.handleKeypress(keyEv)
}

// handleKeypress handles a single keypress in normal mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	if a.debugMode {
		a.SetStatus(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
	}

	switch ev.Key() {
	case tcell.KeyDown:
		a.list.SelectNext()
		return
	case tcell.KeyUp:
		a.list.SelectPrev()
		return
	case tcell.KeyPgDn:
		a.list.ScrollPage(1)
		return
	case tcell.KeyPgUp:
		a.list.ScrollPage(-1)
		return
	case tcell.KeyHome:
		a.list.SelectFirst()
		return
	case tcell.KeyEnd:
		a.list.SelectLast()
		return
	case tcell.KeyEnter:
		a.selectCursor()
		return
	case tcell.KeyEscape:
		if a.picker.Query() != "" {
			a.filter.SetText("")
			a.SetFilter("")
		}
		return
	case tcell.KeyCtrlC:
		a.Quit()
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	for i := range a.keybindings {
		if a.keybindings[i].Key == r {
			a.keybindings[i].Handler(a)
			return
		}
	}
	a.logger.Debug("unbound key", zap.String("rune", string(r)))
}

func (a *App) selectCursor() {
	e, ok := a.list.GetSelected()
	if !ok {
		return
	}
	a.Select(e.ThemeID)
}

func (a *App) reloadWithStatus() {
	if err := a.Reload(); err != nil {
		a.SetWarning("Reload failed: " + err.Error())
		return
	}
	a.SetStatus("Catalog reloaded")
}
