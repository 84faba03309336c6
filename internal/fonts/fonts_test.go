package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFonts(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("font"), 0644))
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFonts(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono.otf", "readme.txt")

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Mono.otf"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSearchCandidates(t *testing.T) {
	assert.Equal(t, []string{"Inter/Inter-Regular.ttf", "Inter", "Inter/Inter", "Inter/Inter-Regular"}, SearchCandidates("Inter/Inter-Regular.ttf"))
	assert.Equal(t, []string{"Roboto"}, SearchCandidates(" Roboto "))
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFonts(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf")

	p, err := findIn([]string{dir}, "inter")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"), p)

	_, err = findIn([]string{dir}, "Helvetica")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = findIn([]string{dir}, " ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFonts(t, dir, "Open_Sans/OpenSans-Regular.ttf")

	direct := filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf")
	p, err := resolveIn(nil, direct)
	require.NoError(t, err)
	assert.Equal(t, direct, p)

	// a wrong path still resolves by family name
	p, err = resolveIn([]string{dir}, "Open Sans-Bold.ttf")
	require.NoError(t, err)
	assert.Equal(t, direct, p)

	_, err = resolveIn([]string{dir}, "Comic")
	assert.ErrorIs(t, err, ErrNotFound)
}
