package terminal

import (
	"errors"
	"strings"
	"testing"

	"periodic-table/internal/commands"
	"periodic-table/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	log := logger.NewWithWriter("-", nil)
	reg := commands.NewRegistry(log.Log)
	var got []string
	reg.Register("echo", "echo <words>", commands.NewFlagSet("echo"), func(args []string) error {
		got = append(got, strings.Join(args, " "))
		return nil
	})
	reg.Register("fail", "fail", commands.NewFlagSet("fail"), func([]string) error {
		return errors.New("boom")
	})
	term := New(log, reg)

	term.Submit("echo hello world")
	term.Submit("cmd echo again")
	term.Submit("fail")
	term.Submit("")
	assert.Equal(t, []string{"hello world", "again"}, got)

	lines := log.Lines()
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "INFO > echo hello world")
	assert.Contains(t, lines[3], "ERROR")
	assert.Contains(t, lines[3], "boom")
}

func TestSetOpenClearsInput(t *testing.T) {
	term := New(logger.NewWithWriter("-", nil), commands.NewRegistry(nil))
	term.SetOpen(true)
	term.inputBuf = "mode sph"
	assert.True(t, term.IsOpen())
	term.SetOpen(false)
	assert.False(t, term.IsOpen())
	assert.Empty(t, term.Input())
}

func TestVisibleLines(t *testing.T) {
	lines := []string{"a", "b", strings.Repeat("x", 300)}
	out := visibleLines(lines, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0])
	assert.Len(t, out[1], maxLineLen)
	assert.True(t, strings.HasSuffix(out[1], "..."))
}
