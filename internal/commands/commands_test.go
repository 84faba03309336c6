package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for line, want := range map[string][]string{
		"mode sphere":        {"mode", "sphere"},
		"cmd mode sphere":    {"mode", "sphere"},
		"  focus --card Fe ": {"focus", "--card", "Fe"},
		`focus --card "Fe"`:  {"focus", "--card", "Fe"},
		"fps --show":         {"fps", "--show"},
		"help":               {"help"},
	} {
		got, err := Parse(line)
		require.NoError(t, err, line)
		assert.Equal(t, want, got, line)
	}

	args, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, args)

	_, err = Parse(`mode "sphere`)
	assert.Error(t, err)
}

func TestExecuteFlagsAndArgs(t *testing.T) {
	r := NewRegistry(nil)
	fs := NewFlagSet("focus")
	all := fs.Bool("all", false, "frame every card")
	card := fs.String("card", "", "number or symbol")
	var gotAll bool
	var gotCard string
	var gotArgs []string
	r.Register("focus", "focus [--all] [--card N|SYMBOL]", fs, func(args []string) error {
		gotAll, gotCard, gotArgs = *all, *card, args
		return nil
	})

	require.NoError(t, r.Run("focus --card Fe extra"))
	assert.False(t, gotAll)
	assert.Equal(t, "Fe", gotCard)
	assert.Equal(t, []string{"extra"}, gotArgs)

	// flags from the previous run are reset
	require.NoError(t, r.Run("cmd focus --all"))
	assert.True(t, gotAll)
	assert.Equal(t, "", gotCard)
	assert.Empty(t, gotArgs)

	err := r.Run("focus --bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestUnknownAndEmpty(t *testing.T) {
	r := NewRegistry(nil)
	assert.ErrorIs(t, r.Run("teleport"), ErrUnknown)
	assert.Error(t, r.Execute(nil))
}

func TestRunErrorPropagates(t *testing.T) {
	r := NewRegistry(nil)
	boom := errors.New("boom")
	r.Register("flip", "flip", nil, func([]string) error { return boom })
	assert.ErrorIs(t, r.Run("FLIP"), boom)
}

func TestHelpListsCommands(t *testing.T) {
	var printed string
	r := NewRegistry(func(s string) { printed = s })
	r.Register("mode", "mode <grid|block|sphere>", nil, func([]string) error { return nil })
	assert.Equal(t, []string{"help", "mode"}, r.Names())

	require.NoError(t, r.Run("help"))
	assert.Contains(t, printed, "mode <grid|block|sphere>")
	assert.Contains(t, printed, "help: list commands")
}
