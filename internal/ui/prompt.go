package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-reconcile/internal/history"
)

// PromptEvent is what a key press did to a prompt
type PromptEvent int

const (
	PromptNone PromptEvent = iota
	PromptChanged
	PromptSubmitted
	PromptCancelled
)

// Prompt is a one line input with a label and history, used for the
// `:command` line and the `/` filter
type Prompt struct {
	label     string
	active    bool
	input     []rune
	cursorPos int

	entries    []string
	navIndex   int // -1 while not navigating
	temporary  string
	maxEntries int
	manager    *history.Manager
	list       string
}

// NewPrompt creates a prompt without history persistence
func NewPrompt(label string, maxEntries int) *Prompt {
	return &Prompt{
		label:      label,
		navIndex:   -1,
		maxEntries: maxEntries,
	}
}

// NewPromptWithHistory creates a prompt whose history is loaded from and
// saved to the named list through manager
func NewPromptWithHistory(label string, maxEntries int, manager *history.Manager, list string) (*Prompt, error) {
	p := NewPrompt(label, maxEntries)
	p.manager = manager
	p.list = list

	entries, err := manager.Load(list)
	if err != nil {
		return p, err
	}
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
	p.entries = entries
	return p, nil
}

// Start activates the prompt with initial text
func (p *Prompt) Start(initial string) {
	p.active = true
	p.input = []rune(initial)
	p.cursorPos = len(p.input)
	p.navIndex = -1
	p.temporary = ""
}

// SetText replaces the text without activating the prompt
func (p *Prompt) SetText(text string) {
	p.setInput(text)
}

// Stop deactivates the prompt
func (p *Prompt) Stop() {
	p.active = false
}

// IsActive returns whether the prompt takes input
func (p *Prompt) IsActive() bool {
	return p.active
}

// Input returns the current text
func (p *Prompt) Input() string {
	return string(p.input)
}

// History returns the stored entries, oldest first
func (p *Prompt) History() []string {
	out := make([]string, len(p.entries))
	copy(out, p.entries)
	return out
}

// HandleKey processes a key press
func (p *Prompt) HandleKey(ev *tcell.EventKey) PromptEvent {
	switch ev.Key() {
	case tcell.KeyEscape:
		p.Stop()
		return PromptCancelled
	case tcell.KeyEnter:
		p.addHistory(string(p.input))
		p.Stop()
		return PromptSubmitted
	case tcell.KeyUp:
		if p.navIndex < 0 {
			p.temporary = string(p.input)
		}
		if entry, ok := p.previous(); ok {
			p.setInput(entry)
			return PromptChanged
		}
	case tcell.KeyDown:
		if entry, ok := p.next(); ok {
			p.setInput(entry)
			return PromptChanged
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.cursorPos > 0 {
			p.input = append(p.input[:p.cursorPos-1], p.input[p.cursorPos:]...)
			p.cursorPos--
			return PromptChanged
		}
		if len(p.input) == 0 {
			p.Stop()
			return PromptCancelled
		}
	case tcell.KeyDelete:
		if p.cursorPos < len(p.input) {
			p.input = append(p.input[:p.cursorPos], p.input[p.cursorPos+1:]...)
			return PromptChanged
		}
	case tcell.KeyCtrlW:
		if p.deleteWordBackwards() {
			return PromptChanged
		}
	case tcell.KeyCtrlU:
		if p.cursorPos > 0 {
			p.input = append([]rune{}, p.input[p.cursorPos:]...)
			p.cursorPos = 0
			return PromptChanged
		}
	case tcell.KeyLeft:
		if p.cursorPos > 0 {
			p.cursorPos--
		}
	case tcell.KeyRight:
		if p.cursorPos < len(p.input) {
			p.cursorPos++
		}
	case tcell.KeyHome:
		p.cursorPos = 0
	case tcell.KeyEnd:
		p.cursorPos = len(p.input)
	case tcell.KeyRune:
		r := ev.Rune()
		p.input = append(p.input[:p.cursorPos], append([]rune{r}, p.input[p.cursorPos:]...)...)
		p.cursorPos++
		return PromptChanged
	}
	return PromptNone
}

func (p *Prompt) setInput(s string) {
	p.input = []rune(s)
	p.cursorPos = len(p.input)
}

func (p *Prompt) deleteWordBackwards() bool {
	if p.cursorPos == 0 {
		return false
	}
	pos := p.cursorPos - 1
	for pos >= 0 && (p.input[pos] == ' ' || p.input[pos] == '\t') {
		pos--
	}
	for pos >= 0 && p.input[pos] != ' ' && p.input[pos] != '\t' {
		pos--
	}
	start := pos + 1
	p.input = append(p.input[:start], p.input[p.cursorPos:]...)
	p.cursorPos = start
	return true
}

func (p *Prompt) addHistory(entry string) {
	p.navIndex = -1
	p.temporary = ""
	if entry == "" || (len(p.entries) > 0 && p.entries[len(p.entries)-1] == entry) {
		return
	}
	p.entries = append(p.entries, entry)
	if len(p.entries) > p.maxEntries {
		p.entries = p.entries[len(p.entries)-p.maxEntries:]
	}
	if p.manager != nil && p.list != "" {
		// best effort; a lost history line is not worth an error
		_ = p.manager.Save(p.list, p.entries)
	}
}

func (p *Prompt) previous() (string, bool) {
	if len(p.entries) == 0 {
		return "", false
	}
	switch {
	case p.navIndex < 0:
		p.navIndex = len(p.entries) - 1
	case p.navIndex > 0:
		p.navIndex--
	}
	return p.entries[p.navIndex], true
}

func (p *Prompt) next() (string, bool) {
	if p.navIndex < 0 {
		return "", false
	}
	p.navIndex++
	if p.navIndex >= len(p.entries) {
		p.navIndex = -1
		temp := p.temporary
		p.temporary = ""
		return temp, true
	}
	return p.entries[p.navIndex], true
}

// Render draws the prompt on line y. An inactive prompt still shows a
// non-empty text, so an applied filter stays visible.
func (p *Prompt) Render(screen *Screen, y, width int) {
	if !p.active && len(p.input) == 0 {
		return
	}

	labelStyle := screen.FilterLabelStyle()
	textStyle := screen.FilterTextStyle()
	cursorStyle := textStyle.Reverse(true)

	screen.FillLine(0, y, width, textStyle)
	x := screen.DrawString(0, y, p.label, labelStyle)
	for i, r := range p.input {
		if x >= width {
			return
		}
		style := textStyle
		if p.active && i == p.cursorPos {
			style = cursorStyle
		}
		screen.SetCell(x, y, r, style)
		x += max(RuneWidth(r), 1)
	}
	if p.active && p.cursorPos >= len(p.input) && x < width {
		screen.SetCell(x, y, ' ', cursorStyle)
	}
}
