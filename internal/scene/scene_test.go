package scene

import (
	"testing"

	"periodic-table/internal/card"
	"periodic-table/internal/elements"

	"cogentcore.org/core/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerClick(t *testing.T) {
	var p Pointer
	p.Press(100, 100)
	_, _, dragging := p.Move(102, 101)
	assert.False(t, dragging)
	assert.True(t, p.Release(102, 101))
	assert.False(t, p.Down())
}

func TestPointerDrag(t *testing.T) {
	var p Pointer
	p.Press(100, 100)
	dx, dy, dragging := p.Move(110, 100)
	require.True(t, dragging)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(0), dy)

	dx, dy, _ = p.Move(110, 95)
	assert.Equal(t, float32(0), dx)
	assert.Equal(t, float32(-5), dy)

	// back at the start but it was a drag
	assert.False(t, p.Release(100, 100))
}

func TestPointerCancel(t *testing.T) {
	var p Pointer
	assert.False(t, p.Release(0, 0))
	p.Press(5, 5)
	p.Cancel()
	_, _, dragging := p.Move(50, 50)
	assert.False(t, dragging)
	assert.False(t, p.Release(5, 5))
}

func TestFaceGeometry(t *testing.T) {
	size := card.Size{Width: 120, Height: 160}
	c := card.New(0, elements.Element{Number: 1, Symbol: "H", Name: "Hydrogen", AtomicMass: 1.008}, size, math32.Vector3{})
	c.Draw()

	w, h := textureSize(size)
	assert.Equal(t, int32(240), w)
	assert.Equal(t, int32(320), h)

	var labels []card.Primitive
	for _, p := range c.FacePrimitives(card.Front) {
		switch p.Kind {
		case card.Panel:
			assert.Equal(t, rl.NewRectangle(0, 0, 240, 320), panelRect(p, size))
		case card.Label:
			labels = append(labels, p)
		}
	}
	require.NotEmpty(t, labels)

	// every label lands inside the texture
	for _, p := range labels {
		at := labelOrigin(p, size, 0)
		assert.GreaterOrEqual(t, at.X, float32(0), p.Text)
		assert.LessOrEqual(t, at.X, float32(w), p.Text)
		assert.GreaterOrEqual(t, at.Y, float32(0), p.Text)
		assert.LessOrEqual(t, at.Y+p.TextSize*pixelsPerUnit, float32(h), p.Text)
	}
}

func TestFade(t *testing.T) {
	c := fade(rl.NewColor(0, 102, 153, 255), 0.4)
	assert.Equal(t, uint8(102), c.A)
	assert.Equal(t, uint8(153), c.B)
}
