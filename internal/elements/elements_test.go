package elements

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	require.Equal(t, 118, d.Len())

	type cell struct{ x, y int }
	seen := map[cell]bool{}
	for i, e := range d.Elements {
		assert.Equal(t, i+1, e.Number)
		c := cell{e.XPos, e.YPos}
		assert.False(t, seen[c], "cell %v reused by %s", c, e.Symbol)
		seen[c] = true
	}

	i, ok := d.BySymbol("Au")
	require.True(t, ok)
	au := d.Elements[i]
	assert.Equal(t, 79, au.Number)
	assert.Equal(t, 11, au.XPos)
	assert.Equal(t, 6, au.YPos)

	i, ok = d.ByNumber(57)
	require.True(t, ok)
	assert.Equal(t, "La", d.Elements[i].Symbol)
	assert.Equal(t, 9, d.Elements[i].YPos)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", `{"elements":[]}`, ErrEmpty},
		{"number out of range", `{"elements":[{"number":2,"symbol":"H","name":"Hydrogen","xpos":1,"ypos":1}]}`, ErrInvalid},
		{"duplicate number", `{"elements":[
			{"number":1,"symbol":"H","name":"Hydrogen","xpos":1,"ypos":1},
			{"number":1,"symbol":"He","name":"Helium","xpos":18,"ypos":1}]}`, ErrInvalid},
		{"missing symbol", `{"elements":[{"number":1,"name":"Hydrogen","xpos":1,"ypos":1}]}`, ErrInvalid},
		{"zero cell", `{"elements":[{"number":1,"symbol":"H","name":"Hydrogen","xpos":0,"ypos":1}]}`, ErrInvalid},
		{"shared cell", `{"elements":[
			{"number":1,"symbol":"H","name":"Hydrogen","xpos":1,"ypos":1},
			{"number":2,"symbol":"He","name":"Helium","xpos":1,"ypos":1}]}`, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"elements":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode dataset")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pt.json")
	doc := `{"elements":[
		{"number":1,"symbol":"H","name":"Hydrogen","atomic_mass":1.008,"discovered_by":"Henry Cavendish","xpos":1,"ypos":1},
		{"number":2,"symbol":"He","name":"Helium","atomic_mass":4.0026,"xpos":18,"ypos":1}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "Henry Cavendish", d.Elements[0].DiscoveredBy)
	assert.InDelta(t, 4.0026, d.Elements[1].AtomicMass, 1e-9)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
