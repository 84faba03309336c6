package card

import "cogentcore.org/core/math32"

// Face selects which side of the card a primitive is drawn on.
type Face int

const (
	Front Face = iota
	Back
)

func (f Face) String() string {
	if f == Back {
		return "back"
	}
	return "front"
}

// Kind is the shape of a primitive.
type Kind int

const (
	Panel Kind = iota
	Label
)

// Primitive is one drawable piece of a card, in card-local units with the origin at the
// card center and +Y up. Back face offsets are read from behind the card, so a renderer
// draws them unmirrored on the rotated back plane.
//
// A Panel's Offset is its bottom-left corner. A Label's Offset X is its horizontal
// center and Y its baseline.
type Primitive struct {
	Kind     Kind
	Face     Face
	Offset   math32.Vector3
	Width    float32
	Height   float32
	Radius   float32
	Text     string
	TextSize float32
}

// labelZ is the distance labels float above the panel.
const labelZ = 2

// cornerRadius of the panel.
const cornerRadius = 5

func panel(face Face, s Size) Primitive {
	return Primitive{
		Kind:   Panel,
		Face:   face,
		Offset: math32.Vec3(-s.Width/2, -s.Height/2, 0),
		Width:  s.Width,
		Height: s.Height,
		Radius: cornerRadius,
	}
}

// label places text at (x, y) measured from the bottom-left corner of the card.
func label(face Face, s Size, text string, x, y, size float32) Primitive {
	return Primitive{
		Kind:     Label,
		Face:     face,
		Offset:   math32.Vec3(x-s.Width/2, y-s.Height/2, labelZ),
		Text:     text,
		TextSize: size,
	}
}
