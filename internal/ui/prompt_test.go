package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-reconcile/internal/history"
)

func typeText(p *Prompt, text string) {
	for _, r := range text {
		p.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func press(p *Prompt, k tcell.Key) PromptEvent {
	return p.HandleKey(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func TestPromptEditing(t *testing.T) {
	p := NewPrompt(":", 10)
	p.Start("")
	typeText(p, "select g1")
	assert.Equal(t, "select g1", p.Input())

	assert.Equal(t, PromptChanged, press(p, tcell.KeyCtrlW))
	assert.Equal(t, "select ", p.Input())

	press(p, tcell.KeyHome)
	typeText(p, "x")
	assert.Equal(t, "xselect ", p.Input())
	press(p, tcell.KeyLeft)
	assert.Equal(t, PromptChanged, press(p, tcell.KeyDelete))
	assert.Equal(t, "select ", p.Input())

	press(p, tcell.KeyEnd)
	assert.Equal(t, PromptChanged, press(p, tcell.KeyCtrlU))
	assert.Equal(t, "", p.Input())

	// backspace on an empty line cancels
	assert.Equal(t, PromptCancelled, press(p, tcell.KeyBackspace2))
	assert.False(t, p.IsActive())
}

func TestPromptHistoryNavigation(t *testing.T) {
	p := NewPrompt(":", 2)
	for _, line := range []string{"reload", "more", "refresh"} {
		p.Start("")
		typeText(p, line)
		require.Equal(t, PromptSubmitted, press(p, tcell.KeyEnter))
	}
	assert.Equal(t, []string{"more", "refresh"}, p.History())

	p.Start("")
	typeText(p, "dra")
	press(p, tcell.KeyUp)
	assert.Equal(t, "refresh", p.Input())
	press(p, tcell.KeyUp)
	assert.Equal(t, "more", p.Input())
	press(p, tcell.KeyUp)
	assert.Equal(t, "more", p.Input())
	press(p, tcell.KeyDown)
	assert.Equal(t, "refresh", p.Input())
	press(p, tcell.KeyDown)
	assert.Equal(t, "dra", p.Input())
}

func TestPromptHistoryPersists(t *testing.T) {
	m, err := history.NewManagerAt(t.TempDir())
	require.NoError(t, err)

	p, err := NewPromptWithHistory(":", 5, m, "command")
	require.NoError(t, err)
	p.Start("")
	typeText(p, "night on")
	press(p, tcell.KeyEnter)

	reopened, err := NewPromptWithHistory(":", 5, m, "command")
	require.NoError(t, err)
	assert.Equal(t, []string{"night on"}, reopened.History())
}

func TestPromptRenderShowsInactiveText(t *testing.T) {
	screen, sim := simScreen(t, 20, 2)
	p := NewPrompt("/", 5)
	p.SetText("chk")
	assert.False(t, p.IsActive())

	p.Render(screen, 1, 20)
	screen.Show()
	assert.Equal(t, "/chk", screenLine(sim, 1))
}
