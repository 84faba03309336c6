package debug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesFollowToggles(t *testing.T) {
	d := New()
	d.tick(60)
	assert.Empty(t, d.Lines())

	d.SetShowFPS(true)
	d.tick(60)
	assert.Equal(t, []string{"FPS: 60"}, d.Lines())

	// cached until the next refresh
	d.tick(30)
	assert.Equal(t, []string{"FPS: 60"}, d.Lines())

	d.SetShowMemAlloc(true)
	d.ShowStatus = true
	d.SetStatus("mode sphere")
	d.tick(60)
	lines := d.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "Mem: "))
	assert.Equal(t, "mode sphere", lines[2])
}

func TestRefreshInterval(t *testing.T) {
	d := New()
	d.SetShowFPS(true)
	for i := 0; i < updateInterval; i++ {
		d.tick(int32(i))
	}
	assert.Equal(t, []string{"FPS: 29"}, d.Lines())
}
