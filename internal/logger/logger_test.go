package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
}

func TestLoggerWritesFileAndMirror(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	var mirror bytes.Buffer
	l := NewWithWriter(path, &mirror)
	l.now = fixedClock

	l.Infof("mode %s", "grid")
	l.Warnf("no coordinates for %q", "cube")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "[2024-03-01 12:30:00] INFO mode grid", lines[0])
	assert.Equal(t, `[2024-03-01 12:30:00] WARN no coordinates for "cube"`, lines[1])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(data))
	assert.Contains(t, mirror.String(), "mode grid")
}

func TestLoggerLevelFilter(t *testing.T) {
	l := NewWithWriter("-", nil)
	l.Debugf("hidden")
	assert.Empty(t, l.Lines())

	l.SetLevel(LevelDebug)
	l.Debugf("shown")
	require.Len(t, l.Lines(), 1)
	assert.Contains(t, l.Lines()[0], "DEBUG shown")
}

func TestLoggerCapsHistory(t *testing.T) {
	l := NewWithWriter("-", nil)
	for i := 0; i < maxLines+25; i++ {
		l.Infof("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "line 25"))
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "line 524"))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"": LevelInfo, "DEBUG": LevelDebug, "warning": LevelWarn, " error ": LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
