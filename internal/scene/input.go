package scene

// DragThreshold is how far in pixels a press may travel and still count as a click.
const DragThreshold = 4

// Pointer tells clicks from drags for one button.
type Pointer struct {
	down     bool
	dragging bool
	startX   float32
	startY   float32
	lastX    float32
	lastY    float32
}

// Press starts tracking at x, y.
func (p *Pointer) Press(x, y float32) {
	*p = Pointer{down: true, startX: x, startY: y, lastX: x, lastY: y}
}

// Move returns the motion since the last call once the press has become a drag.
func (p *Pointer) Move(x, y float32) (dx, dy float32, dragging bool) {
	if !p.down {
		return 0, 0, false
	}
	if !p.dragging {
		ox, oy := x-p.startX, y-p.startY
		if ox*ox+oy*oy < DragThreshold*DragThreshold {
			return 0, 0, false
		}
		p.dragging = true
	}
	dx, dy = x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	return dx, dy, true
}

// Release ends the press and reports whether it was a click.
func (p *Pointer) Release(x, y float32) bool {
	if !p.down {
		return false
	}
	ox, oy := x-p.startX, y-p.startY
	click := !p.dragging && ox*ox+oy*oy < DragThreshold*DragThreshold
	*p = Pointer{}
	return click
}

// Cancel forgets the press.
func (p *Pointer) Cancel() {
	*p = Pointer{}
}

// Down reports whether a press is being tracked.
func (p *Pointer) Down() bool {
	return p.down
}
