package layout

import (
	"fmt"

	"cogentcore.org/core/math32"

	"periodic-table/internal/elements"
)

// CoordinateSet maps each mode to one position per card and, optionally, one look-at
// target per card. It is read-only once built.
type CoordinateSet struct {
	count     int
	positions map[Mode][]math32.Vector3
	lookAt    map[Mode][]math32.Vector3
	sphere    SpherePlan
}

// NewCoordinateSet returns an empty set for count cards.
func NewCoordinateSet(count int) *CoordinateSet {
	return &CoordinateSet{
		count:     count,
		positions: make(map[Mode][]math32.Vector3),
		lookAt:    make(map[Mode][]math32.Vector3),
	}
}

// Count is the number of cards every slice must cover.
func (cs *CoordinateSet) Count() int {
	return cs.count
}

// SetPositions registers the positions for mode.
func (cs *CoordinateSet) SetPositions(mode Mode, pts []math32.Vector3) error {
	if len(pts) != cs.count {
		return fmt.Errorf("mode %s: %d positions for %d cards", mode, len(pts), cs.count)
	}
	cs.positions[mode] = pts
	return nil
}

// SetLookAt registers the look-at targets for mode.
func (cs *CoordinateSet) SetLookAt(mode Mode, pts []math32.Vector3) error {
	if len(pts) != cs.count {
		return fmt.Errorf("mode %s: %d look-at targets for %d cards", mode, len(pts), cs.count)
	}
	cs.lookAt[mode] = pts
	return nil
}

// Positions returns the positions for mode.
func (cs *CoordinateSet) Positions(mode Mode) ([]math32.Vector3, bool) {
	pts, ok := cs.positions[mode]
	return pts, ok
}

// LookAt returns the look-at targets for mode, if any were registered.
func (cs *CoordinateSet) LookAt(mode Mode) ([]math32.Vector3, bool) {
	pts, ok := cs.lookAt[mode]
	return pts, ok
}

// Has reports whether positions exist for mode.
func (cs *CoordinateSet) Has(mode Mode) bool {
	_, ok := cs.positions[mode]
	return ok
}

// SpherePlan returns the ring assignment used for sphere mode.
func (cs *CoordinateSet) SpherePlan() SpherePlan {
	return cs.sphere
}

// Compute builds grid, block and sphere coordinates for els, plus sphere look-at targets.
func Compute(els []elements.Element, p Params) (*CoordinateSet, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cs := NewCoordinateSet(len(els))
	if err := cs.SetPositions(ModeGrid, Grid(els, p)); err != nil {
		return nil, err
	}
	if err := cs.SetPositions(ModeBlock, Block(els, p)); err != nil {
		return nil, err
	}
	pos, look, plan := Sphere(len(els), p)
	if err := cs.SetPositions(ModeSphere, pos); err != nil {
		return nil, err
	}
	if err := cs.SetLookAt(ModeSphere, look); err != nil {
		return nil, err
	}
	cs.sphere = plan
	return cs, nil
}
