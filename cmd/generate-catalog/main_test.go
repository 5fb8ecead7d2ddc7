package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCatalog(t *testing.T) {
	c := generateCatalog(25, 3)

	require.Len(t, c.Gifts, 25)
	assert.Len(t, c.Peers, 3)
	assert.Len(t, c.Themes, len(emoticons))

	seen := make(map[string]bool)
	for i, g := range c.Gifts {
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		seen[g.ID] = true
		assert.Equal(t, c.Peers[i%3].ID, g.OwnerPeerID)
		require.Len(t, g.Settings, 2)
	}
	assert.Equal(t, "Snow Globe #1", c.Gifts[0].Title)
	assert.Equal(t, "aurora-night", c.Gifts[0].Settings[1].Wallpaper)
}
