package ui

import (
	"strings"
	"testing"
)

func TestEmptyStateLines(t *testing.T) {
	e := NewEmptyState("/tmp/catalog.yaml")

	content := strings.Join(e.Lines(""), "\n")
	for _, required := range []string{"No chat themes", "/tmp/catalog.yaml", ":reload"} {
		if !strings.Contains(content, required) {
			t.Errorf("empty state should contain %q", required)
		}
	}

	filtered := e.Lines("xyz")
	if filtered[0] != `No themes match "xyz"` {
		t.Errorf("unexpected first line %q", filtered[0])
	}
}

func TestEmptyStateRenderCentered(t *testing.T) {
	screen, sim := simScreen(t, 40, 14)
	e := NewEmptyState("c.yaml")

	e.Render(screen, 0, 2, 40, 12, "")
	screen.Show()

	// ten lines centered in twelve rows start one row down
	if got := screenLine(sim, 3); !strings.Contains(got, "No chat themes") {
		t.Errorf("line 3 = %q", got)
	}
	if got := screenLine(sim, 2); got != "" {
		t.Errorf("line 2 should be empty, got %q", got)
	}
}
