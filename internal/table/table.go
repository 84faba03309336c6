// Package table owns the cards of one periodic table together with the camera, the
// orbit controls and the animations that move between layouts. Everything runs on the
// frame loop goroutine; nothing here is safe for concurrent use.
package table

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cogentcore.org/core/math32"

	"periodic-table/internal/card"
	"periodic-table/internal/elements"
	"periodic-table/internal/layout"
	"periodic-table/internal/tween"
)

// ErrClosed is returned by operations on a closed table.
var ErrClosed = errors.New("table closed")

// Logger is the subset of *logger.Logger the table writes to.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warnf(string, ...any) {}

// Options tunes animation and camera behavior.
type Options struct {
	Card card.Size
	// MoveDuration is the time each card takes to reach its place in a mode switch.
	MoveDuration time.Duration
	// LookDuration is the time each card takes to turn in a mode switch.
	LookDuration   time.Duration
	FlipDuration   time.Duration
	FlightDuration time.Duration
	Ease           tween.EaseFunc

	FOV           float32
	Near          float32
	Far           float32
	FocusDistance float32
	FrameMargin   float32
	Damping       float32

	Width  int
	Height int
}

// DefaultOptions matches the stock layout parameters.
func DefaultOptions() Options {
	return Options{
		Card:           card.Size{Width: 120, Height: 162},
		MoveDuration:   time.Second,
		LookDuration:   time.Second,
		FlipDuration:   time.Second,
		FlightDuration: time.Second,
		Ease:           tween.Linear,
		FOV:            45,
		Near:           1,
		Far:            100000,
		FocusDistance:  500,
		FrameMargin:    1.5,
		Damping:        0.1,
		Width:          1280,
		Height:         720,
	}
}

// Table is the scene context: cards in dataset order, their coordinates per mode, the
// camera and every running animation.
type Table struct {
	cards    []*card.Card
	coords   *layout.CoordinateSet
	driver   *tween.Driver
	camera   Camera
	controls *Controls
	opts     Options
	log      Logger

	mode     layout.Mode
	switches []*tween.Sequence
	flight   []*tween.Transition
	flips    map[int]*tween.Transition

	focused  int
	selected int
	width    int
	height   int
	closed   bool
}

// New builds one card per element at the origin and frames the camera on them. The
// coordinate set must cover exactly the given elements.
func New(els []elements.Element, coords *layout.CoordinateSet, opts Options, log Logger) (*Table, error) {
	if coords == nil {
		return nil, errors.New("table: nil coordinate set")
	}
	if coords.Count() != len(els) {
		return nil, fmt.Errorf("table: coordinates for %d cards, have %d elements", coords.Count(), len(els))
	}
	if log == nil {
		log = nopLogger{}
	}
	if opts.Ease == nil {
		opts.Ease = tween.Linear
	}
	t := &Table{
		coords:   coords,
		driver:   tween.NewDriver(),
		opts:     opts,
		log:      log,
		flips:    make(map[int]*tween.Transition),
		focused:  -1,
		selected: -1,
	}
	t.cards = make([]*card.Card, len(els))
	for i, el := range els {
		c := card.New(i, el, opts.Card, math32.Vector3{})
		c.Ease = opts.Ease
		c.Draw()
		t.cards[i] = c
	}
	t.Resize(opts.Width, opts.Height)
	t.InitCamera()
	return t, nil
}

// InitCamera places the camera in front of the cards as they are now, without flying.
func (t *Table) InitCamera() {
	pos, target := t.frameAll()
	t.camera = Camera{
		Position: pos,
		Target:   target,
		Up:       math32.Vec3(0, 1, 0),
		FOV:      t.opts.FOV,
		Aspect:   t.aspect(),
		Near:     t.opts.Near,
		Far:      t.opts.Far,
	}
	t.controls = newControls(target, t.opts.Damping, t.opts.Far/2)
	t.controls.Update(&t.camera)
}

// Cards returns the cards in dataset order.
func (t *Table) Cards() []*card.Card {
	return t.cards
}

// Card returns card i, or nil when out of range.
func (t *Table) Card(i int) *card.Card {
	if i < 0 || i >= len(t.cards) {
		return nil
	}
	return t.cards[i]
}

// Find returns the index of the card with the given atomic number or symbol (any case), or -1.
func (t *Table) Find(number int, symbol string) int {
	for i, c := range t.cards {
		if (number > 0 && c.Element.Number == number) || (symbol != "" && strings.EqualFold(c.Element.Symbol, symbol)) {
			return i
		}
	}
	return -1
}

func (t *Table) Camera() Camera {
	return t.camera
}

func (t *Table) Controls() *Controls {
	return t.controls
}

func (t *Table) Coordinates() *layout.CoordinateSet {
	return t.coords
}

// Mode is the last mode switched to, empty before the first switch.
func (t *Table) Mode() layout.Mode {
	return t.mode
}

// Viewport returns the size set by Resize.
func (t *Table) Viewport() (width, height int) {
	return t.width, t.height
}

// Animating reports whether any transition is still running.
func (t *Table) Animating() bool {
	return !t.driver.Idle()
}

// SetMode moves every card to its place in mode, one card starting per tick, turning
// each towards the mode's look-at target or to face forward when it has none. A
// switch in progress is cancelled first so cards are never driven by two switches.
// The camera reframes once the last card arrives.
func (t *Table) SetMode(mode layout.Mode) error {
	if t.closed {
		return ErrClosed
	}
	positions, ok := t.coords.Positions(mode)
	if !ok {
		t.log.Warnf("no coordinates for mode %q", mode)
		return fmt.Errorf("%w: %q", layout.ErrUnknownMode, mode)
	}
	t.cancelSwitch()

	lookAt, hasLookAt := t.coords.LookAt(mode)
	forward := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 0)
	moves := make([]*tween.Transition, len(t.cards))
	turns := make([]*tween.Transition, len(t.cards))
	for i, c := range t.cards {
		moves[i] = c.Move(positions[i], t.opts.MoveDuration)
		if hasLookAt {
			turns[i] = c.LookAt(lookAt[i], t.opts.LookDuration)
		} else {
			turns[i] = c.Orient(forward, t.opts.LookDuration)
		}
	}
	move := tween.NewSequence(moves...).OnComplete(t.FocusAllCards)
	turn := tween.NewSequence(turns...)
	t.driver.Run(move)
	t.driver.Run(turn)
	t.switches = []*tween.Sequence{move, turn}
	t.mode = mode
	t.log.Infof("mode %s: moving %d cards", mode, len(t.cards))
	return nil
}

func (t *Table) cancelSwitch() {
	for _, s := range t.switches {
		s.Cancel()
	}
	t.switches = nil
}

// Tick advances all animations by dt and applies the orbit controls.
func (t *Table) Tick(dt time.Duration) {
	if t.closed {
		return
	}
	t.driver.Tick(dt)
	t.controls.Update(&t.camera)
}

// Resize keeps the camera aspect in step with the viewport. Zero sizes are ignored.
func (t *Table) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	t.width, t.height = width, height
	t.camera.Aspect = t.aspect()
}

func (t *Table) aspect() float32 {
	if t.width <= 0 || t.height <= 0 {
		return 1
	}
	return float32(t.width) / float32(t.height)
}

// CameraInfo describes the camera and the controls target.
func (t *Table) CameraInfo() string {
	return fmt.Sprintf("camera %s controls target (%.2f, %.2f, %.2f)", t.camera,
		t.controls.Target.X, t.controls.Target.Y, t.controls.Target.Z)
}

// Close cancels every animation. Further calls to SetMode fail and Tick does nothing.
func (t *Table) Close() error {
	if t.closed {
		return nil
	}
	t.cancelSwitch()
	t.cancelFlight()
	for _, f := range t.flips {
		f.Cancel()
	}
	t.driver.Tick(0)
	t.closed = true
	return nil
}
