// Package layout computes card coordinates for each display mode. Every generator is a
// pure function of the element attributes and Params.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Mode names one spatial arrangement of the cards.
type Mode string

const (
	ModeGrid   Mode = "grid"
	ModeBlock  Mode = "block"
	ModeSphere Mode = "sphere"
)

// Modes lists the supported modes in toolbar order.
var Modes = []Mode{ModeGrid, ModeBlock, ModeSphere}

// ErrUnknownMode is returned by ParseMode for names that map to no mode.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode accepts the canonical names plus the aliases used by the toolbar
// ("table", "periodic" for grid; "paraflow" for block).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "table", "periodic", "periodictable":
		return ModeGrid, nil
	case "block", "paraflow":
		return ModeBlock, nil
	case "sphere":
		return ModeSphere, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Params holds the card geometry and per-mode constants.
type Params struct {
	CardWidth  float32
	CardHeight float32
	Spacing    float32

	// GridZ is the forward offset of the flat table.
	GridZ float32

	// BlockWidth × BlockHeight × BlockDepth is the block lattice; indices wrap beyond it.
	BlockWidth  int
	BlockHeight int
	BlockDepth  int

	// SphereCardsAround is the number of cards targeted around the equator.
	// It grows when the sphere cannot hold every card.
	SphereCardsAround int
}

// DefaultParams returns the stock card size (120×162, spacing 10), a 6×5×4 block and a
// 30-card sphere equator.
func DefaultParams() Params {
	return Params{
		CardWidth:         120,
		CardHeight:        162,
		Spacing:           10,
		GridZ:             100,
		BlockWidth:        6,
		BlockHeight:       5,
		BlockDepth:        4,
		SphereCardsAround: 30,
	}
}

// Validate rejects geometry the generators cannot place.
func (p Params) Validate() error {
	switch {
	case p.CardWidth <= 0 || p.CardHeight <= 0:
		return fmt.Errorf("card size %gx%g must be positive", p.CardWidth, p.CardHeight)
	case p.Spacing < 0:
		return fmt.Errorf("spacing %g must not be negative", p.Spacing)
	case p.BlockWidth < 1 || p.BlockHeight < 1 || p.BlockDepth < 1:
		return fmt.Errorf("block %dx%dx%d must be at least 1x1x1", p.BlockWidth, p.BlockHeight, p.BlockDepth)
	case p.SphereCardsAround < 1:
		return fmt.Errorf("sphere cards around %d must be at least 1", p.SphereCardsAround)
	}
	return nil
}
