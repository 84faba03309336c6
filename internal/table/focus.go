package table

import (
	"cogentcore.org/core/math32"

	"periodic-table/internal/tween"
)

// Bounds is the world box around every card.
func (t *Table) Bounds() math32.Box3 {
	box := math32.B3Empty()
	for _, c := range t.cards {
		box.ExpandByBox(c.Bounds())
	}
	return box
}

// frameAll returns a camera position and target showing every card.
func (t *Table) frameAll() (position, target math32.Vector3) {
	if len(t.cards) == 0 {
		return math32.Vec3(0, 0, t.opts.FocusDistance), math32.Vector3{}
	}
	box := t.Bounds()
	center := box.Center()
	half := box.Size().MulScalar(0.5)
	margin := t.opts.FrameMargin
	if margin <= 0 {
		margin = 1
	}
	dist := margin*math32.Max(half.X, half.Y)/math32.Tan(math32.DegToRad(t.opts.FOV)/2) + half.Z
	return center.Add(math32.Vec3(0, 0, dist)), center
}

// FocusAllCards flies the camera back far enough to frame the whole table.
func (t *Table) FocusAllCards() {
	pos, target := t.frameAll()
	t.flyTo(pos, target)
}

// FocusTarget returns where FocusOnCard sends the camera and the controls target for
// card i: centered on the card, the target in the z=0 plane and the camera
// FocusDistance in front of it.
func (t *Table) FocusTarget(i int) (position, target math32.Vector3, ok bool) {
	c := t.Card(i)
	if c == nil {
		return position, target, false
	}
	center := c.Bounds().Center()
	target = math32.Vec3(center.X, center.Y, 0)
	position = math32.Vec3(center.X, center.Y, t.opts.FocusDistance)
	return position, target, true
}

// FocusOnCard flies the camera to card i. It reports false for an unknown index.
func (t *Table) FocusOnCard(i int) bool {
	pos, target, ok := t.FocusTarget(i)
	if !ok {
		return false
	}
	t.flyTo(pos, target)
	return true
}

// flyTo moves the controls target and, starting with it, the camera. A flight already
// under way is cancelled.
func (t *Table) flyTo(position, target math32.Vector3) {
	t.cancelFlight()
	d := t.opts.FlightDuration

	var fromPos math32.Vector3
	move := tween.New(d, func(p float32) {
		t.camera.Position = lerp(fromPos, position, p)
	}).WithEase(tween.SineInOut)
	move.OnStart(func() { fromPos = t.camera.Position })

	var fromTarget math32.Vector3
	aim := tween.New(d, func(p float32) {
		t.controls.Target = lerp(fromTarget, target, p)
	}).WithEase(tween.SineInOut)
	aim.OnStart(func() {
		fromTarget = t.controls.Target
		t.controls.Stop()
		t.driver.Start(move)
	})

	t.driver.Start(aim)
	t.flight = []*tween.Transition{aim, move}
}

func (t *Table) cancelFlight() {
	for _, f := range t.flight {
		f.Cancel()
	}
	t.flight = nil
}

// Flying reports whether a camera flight is under way.
func (t *Table) Flying() bool {
	for _, f := range t.flight {
		if !f.Done() && !f.Cancelled() {
			return true
		}
	}
	return false
}

func lerp(a, b math32.Vector3, p float32) math32.Vector3 {
	if p >= 1 {
		return b
	}
	return a.Add(b.Sub(a).MulScalar(p))
}
