package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periodic-table/internal/layout"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, layout.DefaultParams(), c.Params())
	assert.Equal(t, layout.ModeGrid, c.Mode())

	opts := c.TableOptions()
	assert.Equal(t, time.Second, opts.MoveDuration)
	assert.Equal(t, float32(500), opts.FocusDistance)
	assert.Equal(t, float32(45), opts.FOV)
}

func TestRoundTripEachFormat(t *testing.T) {
	want := Default()
	want.InitialMode = "sphere"
	want.Animation.Ease = "cubic-out"
	want.Debug.ShowFPS = true
	want.Card.Color = "#336699"
	want.Layout.SphereCardsAround = 24

	for _, name := range []string{"pt.json", "pt.yaml", "pt.yml", "pt.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, Save(path, want))
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_mode: block\ncamera:\n  fov: 60\n"), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, layout.ModeBlock, c.Mode())
	assert.Equal(t, float32(60), c.Camera.FOV)
	assert.Equal(t, float32(500), c.Camera.FocusDistance)
	assert.Equal(t, 1280, c.Window.Width)
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	c, err := Load(bad)
	assert.Error(t, err)
	assert.Equal(t, Default(), c)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[animation]\nmove_ms = 0\n"), 0644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalid)

	unknown := filepath.Join(dir, "pt.ini")
	require.NoError(t, os.WriteFile(unknown, []byte("x=1"), 0644))
	_, err = Load(unknown)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"window":  func(c *Config) { c.Window.Width = 0 },
		"fov":     func(c *Config) { c.Camera.FOV = 180 },
		"clip":    func(c *Config) { c.Camera.Far = c.Camera.Near },
		"damping": func(c *Config) { c.Camera.Damping = 2 },
		"card":    func(c *Config) { c.Card.Width = -1 },
		"block":   func(c *Config) { c.Layout.BlockDepth = 0 },
		"mode":    func(c *Config) { c.InitialMode = "cube" },
		"ease":    func(c *Config) { c.Animation.Ease = "bounce" },
		"color":   func(c *Config) { c.Background = "#12" },
		"opacity": func(c *Config) { c.Card.TextOpacity = 1.5 },
	} {
		c := Default()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalid, name)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#006699")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), c.R)
	assert.Equal(t, uint8(0x66), c.G)
	assert.Equal(t, uint8(0x99), c.B)
	assert.Equal(t, uint8(0xff), c.A)

	c, err = ParseColor("f0f")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0x00), c.G)

	c, err = ParseColor("#00669980")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pt.json")
	require.NoError(t, Save(path, Default()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	changed := Default()
	changed.InitialMode = "block"
	require.NoError(t, Save(path, changed))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case u := <-updates:
			if u.Err == nil && u.Config.InitialMode == "block" {
				cancel()
				for range updates {
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload seen")
		}
	}
}

func TestShippedConfigIsDefault(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
