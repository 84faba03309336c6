package table

import (
	"cogentcore.org/core/math32"
)

// Pick returns the index of the nearest card under a point in normalized device
// coordinates, or -1.
func (t *Table) Pick(ndcX, ndcY float32) int {
	ray := t.camera.Ray(ndcX, ndcY)
	best, bestDist := -1, math32.Infinity
	for i, c := range t.cards {
		hit, ok := ray.IntersectBox(c.Bounds())
		if !ok {
			continue
		}
		if d := hit.Sub(ray.Origin).Length(); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ToNDC converts a pointer position in viewport pixels to normalized device coordinates.
func (t *Table) ToNDC(px, py float32) (x, y float32) {
	w, h := float32(t.width), float32(t.height)
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return px/w*2 - 1, -(py/h*2 - 1)
}

// Click picks at a pointer position in viewport pixels and applies the selection rules.
// It returns the picked index or -1.
func (t *Table) Click(px, py float32) int {
	if t.closed {
		return -1
	}
	i := t.Pick(t.ToNDC(px, py))
	t.Select(i)
	return i
}

// Select applies a pick result. A card other than the focused one is focused and the
// camera flies to it, turning any flipped card back first. Picking the focused card
// again flips it. Anything else turns the flipped card back and clears the focus.
func (t *Table) Select(i int) {
	c := t.Card(i)
	switch {
	case c == nil:
		t.restoreSelected()
		t.focused = -1
	case i != t.focused:
		t.restoreSelected()
		t.focused = i
		t.FocusOnCard(i)
		t.log.Infof("focus %s", c)
	default:
		t.flip(i, false)
		if c.IsFlipped() {
			t.selected = i
		} else {
			t.selected = -1
		}
	}
}

// Focused is the index of the card the camera is framing, or -1.
func (t *Table) Focused() int {
	return t.focused
}

// Selected is the index of the flipped card, or -1.
func (t *Table) Selected() int {
	return t.selected
}

func (t *Table) restoreSelected() {
	if t.selected >= 0 {
		t.flip(t.selected, true)
		t.selected = -1
	}
}

// Flip turns the focused card over. It reports false when no card has focus.
func (t *Table) Flip() bool {
	if t.focused < 0 {
		return false
	}
	t.Select(t.focused)
	return true
}

func (t *Table) flip(i int, forceFront bool) {
	c := t.Card(i)
	if c == nil {
		return
	}
	tr := c.Flip(forceFront, t.opts.FlipDuration)
	if tr == nil {
		return
	}
	if prev := t.flips[i]; prev != nil {
		prev.Cancel()
	}
	t.flips[i] = tr
	tr.OnComplete(func() {
		if t.flips[i] == tr {
			delete(t.flips, i)
		}
	})
	t.driver.Start(tr)
}
