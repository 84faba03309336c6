// Package card holds the state of one element card: what it draws, where it is and
// which way it faces. Cards never animate themselves; they hand out transitions that a
// tween.Driver runs.
package card

import (
	"fmt"
	"strconv"
	"time"

	"cogentcore.org/core/math32"

	"periodic-table/internal/elements"
	"periodic-table/internal/tween"
)

// Size is the card footprint in world units.
type Size struct {
	Width  float32
	Height float32
}

// Depth is the thickness used for bounds, covering the panel and its labels.
const Depth = labelZ

var (
	up      = math32.Vec3(0, 1, 0)
	forward = math32.Vec3(0, 0, 1)
)

// Card is one element card. Index is its position in dataset order and in every
// layout slice.
type Card struct {
	Index   int
	Element elements.Element
	Size    Size
	// Ease is used by Move, LookAt and Orient. Flip always uses SineInOut.
	Ease tween.EaseFunc

	initial     math32.Vector3
	position    math32.Vector3
	orientation math32.Quat
	flipAngle   float32
	flipped     bool
	primitives  []Primitive
	version     int
}

// New returns a card for el that Draw will place at at.
func New(index int, el elements.Element, size Size, at math32.Vector3) *Card {
	return &Card{
		Index:       index,
		Element:     el,
		Size:        size,
		Ease:        tween.Linear,
		initial:     at,
		orientation: math32.NewQuatAxisAngle(up, 0),
	}
}

// Mass is the atomic mass as printed on the card.
func (c *Card) Mass() string {
	return fmt.Sprintf("%.2f", c.Element.AtomicMass)
}

// Draw builds the primitives for both faces and moves the card to its initial position.
// Calling it again rebuilds the primitives.
func (c *Card) Draw() {
	w, h := c.Size.Width, c.Size.Height
	el := c.Element
	c.primitives = []Primitive{
		panel(Front, c.Size),
		label(Front, c.Size, strconv.Itoa(el.Number), w*0.8, h*0.8, h*0.075),
		label(Front, c.Size, el.Symbol, w*0.5, h*0.37, h*0.3),
		label(Front, c.Size, el.Name, w*0.5, h*0.19, h*0.075),
		label(Front, c.Size, c.Mass(), w*0.5, h*0.075, h*0.075),

		panel(Back, c.Size),
		label(Back, c.Size, el.Symbol, w*0.5, h*0.62, h*0.2),
		label(Back, c.Size, el.Name, w*0.5, h*0.48, h*0.075),
		label(Back, c.Size, "Discovered by", w*0.5, h*0.3, h*0.06),
	}
	if el.DiscoveredBy != "" {
		c.primitives = append(c.primitives, label(Back, c.Size, el.DiscoveredBy, w*0.5, h*0.2, h*0.06))
	}
	c.position = c.initial
	c.version++
}

// Primitives returns the drawable pieces built by Draw.
func (c *Card) Primitives() []Primitive {
	return c.primitives
}

// FacePrimitives returns the primitives drawn on face.
func (c *Card) FacePrimitives(face Face) []Primitive {
	var out []Primitive
	for _, p := range c.primitives {
		if p.Face == face {
			out = append(out, p)
		}
	}
	return out
}

// Version changes every time the primitives are rebuilt.
func (c *Card) Version() int {
	return c.version
}

func (c *Card) Position() math32.Vector3 {
	return c.position
}

func (c *Card) SetPosition(p math32.Vector3) {
	c.position = p
}

// Orientation is the rotation set by LookAt and Orient, without the flip.
func (c *Card) Orientation() math32.Quat {
	return c.orientation
}

func (c *Card) SetOrientation(q math32.Quat) {
	c.orientation = q
}

// Rotation is the full rotation: orientation followed by the flip about local Y.
func (c *Card) Rotation() math32.Quat {
	r := c.orientation
	r.SetMul(math32.NewQuatAxisAngle(up, c.flipAngle))
	return r
}

// Facing is the world direction the front face points to, ignoring the flip.
func (c *Card) Facing() math32.Vector3 {
	return forward.MulQuat(c.orientation).Normal()
}

// CurrentLookAt is the point one unit in front of the card.
func (c *Card) CurrentLookAt() math32.Vector3 {
	return c.position.Add(c.Facing())
}

// Bounds is the world-space box of the rotated and translated card.
func (c *Card) Bounds() math32.Box3 {
	w, h := c.Size.Width/2, c.Size.Height/2
	local := math32.B3(-w, -h, 0, w, h, Depth)
	return local.MulQuat(c.Rotation()).Translate(c.position)
}

// IsFlipped reports whether the back face is shown or being turned to.
func (c *Card) IsFlipped() bool {
	return c.flipped
}

// FlipAngle is the current rotation about local Y, 0 front and Pi back.
func (c *Card) FlipAngle() float32 {
	return c.flipAngle
}

// Move returns an unstarted transition taking the card from wherever it is when the
// transition starts to to.
func (c *Card) Move(to math32.Vector3, d time.Duration) *tween.Transition {
	var from math32.Vector3
	t := tween.New(d, func(p float32) {
		c.position = lerp(from, to, p)
	}).WithEase(c.Ease)
	t.OnStart(func() { from = c.position })
	return t
}

// LookAt returns an unstarted transition sweeping the look-at point from in front of
// the card to target, turning the card each step so its front faces the point.
func (c *Card) LookAt(target math32.Vector3, d time.Duration) *tween.Transition {
	var from math32.Vector3
	t := tween.New(d, func(p float32) {
		c.face(lerp(from, target, p))
	}).WithEase(c.Ease)
	t.OnStart(func() {
		dist := target.Sub(c.position).Length()
		if dist < 1 {
			dist = 1
		}
		from = c.position.Add(c.Facing().MulScalar(dist))
	})
	return t
}

// Orient returns an unstarted transition turning the card to orientation q.
func (c *Card) Orient(q math32.Quat, d time.Duration) *tween.Transition {
	var from math32.Quat
	t := tween.New(d, func(p float32) {
		r := from
		r.Slerp(q, p)
		c.orientation = r
	}).WithEase(c.Ease)
	t.OnStart(func() { from = c.orientation })
	return t
}

// face turns the card so +Z points at target. It keeps the orientation when target is
// at the card position.
func (c *Card) face(target math32.Vector3) {
	if target.Sub(c.position).Length() < 1e-4 {
		return
	}
	var q math32.Quat
	q.SetFromRotationMatrix(math32.NewLookAt(target, c.position, up))
	c.orientation = q
}

// Flip toggles the card between front and back. It returns nil when forceFront is set
// and the card already shows its front. Otherwise the flipped state changes at once and
// the returned transition turns the card to match.
func (c *Card) Flip(forceFront bool, d time.Duration) *tween.Transition {
	if forceFront && !c.flipped {
		return nil
	}
	c.flipped = !c.flipped
	to := float32(0)
	if c.flipped {
		to = math32.Pi
	}
	var from float32
	t := tween.New(d, func(p float32) {
		c.flipAngle = from + (to-from)*p
	}).WithEase(tween.SineInOut)
	t.OnStart(func() { from = c.flipAngle })
	return t
}

func (c *Card) String() string {
	return fmt.Sprintf("%d %s (%s)", c.Element.Number, c.Element.Symbol, c.Element.Name)
}

// lerp ends exactly on b.
func lerp(a, b math32.Vector3, p float32) math32.Vector3 {
	if p >= 1 {
		return b
	}
	return a.Add(b.Sub(a).MulScalar(p))
}
