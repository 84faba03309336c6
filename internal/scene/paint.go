package scene

import (
	"periodic-table/internal/card"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// pixelsPerUnit is the face texture resolution.
const pixelsPerUnit = 2

// GL blend factors for painting text over the translucent panel.
const (
	glOne              = 1
	glSrcAlpha         = 0x0302
	glOneMinusSrcAlpha = 0x0303
	glFuncAdd          = 0x8006
)

// panelRect is the panel in texture pixels, (0,0) at the top left.
func panelRect(p card.Primitive, s card.Size) rl.Rectangle {
	return rl.NewRectangle(
		(p.Offset.X+s.Width/2)*pixelsPerUnit,
		(s.Height/2-p.Offset.Y-p.Height)*pixelsPerUnit,
		p.Width*pixelsPerUnit,
		p.Height*pixelsPerUnit,
	)
}

// labelOrigin is the top-left corner of a label textWidth pixels wide.
func labelOrigin(p card.Primitive, s card.Size, textWidth float32) rl.Vector2 {
	return rl.NewVector2(
		(p.Offset.X+s.Width/2)*pixelsPerUnit-textWidth/2,
		(s.Height/2-p.Offset.Y-p.TextSize)*pixelsPerUnit,
	)
}

// textureSize is the face texture size for s.
func textureSize(s card.Size) (width, height int32) {
	return int32(s.Width * pixelsPerUnit), int32(s.Height * pixelsPerUnit)
}

func fade(c rl.Color, alpha float32) rl.Color {
	c.A = uint8(alpha * 255)
	return c
}

// paint draws one face of c into the current render target.
func (s *Scene) paint(c *card.Card, face card.Face) {
	panelColor := fade(s.style.Card, s.style.PanelAlpha)
	textColor := fade(s.style.Card, s.style.TextAlpha)
	prims := c.FacePrimitives(face)
	for _, p := range prims {
		if p.Kind != card.Panel {
			continue
		}
		r := panelRect(p, c.Size)
		roundness := float32(0)
		if p.Radius > 0 {
			roundness = min(1, 2*p.Radius*pixelsPerUnit/min(r.Width, r.Height))
		}
		rl.DrawRectangleRounded(r, roundness, 8, panelColor)
	}

	rl.SetBlendFactorsSeparate(glSrcAlpha, glOneMinusSrcAlpha, glOne, glOneMinusSrcAlpha, glFuncAdd, glFuncAdd)
	rl.BeginBlendMode(rl.BlendCustomSeparate)
	for _, p := range prims {
		if p.Kind != card.Label || p.Text == "" {
			continue
		}
		size := p.TextSize * pixelsPerUnit
		if s.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(s.font, p.Text, size, 1).X
			rl.DrawTextEx(s.font, p.Text, labelOrigin(p, c.Size, w), size, 1, textColor)
		} else {
			w := float32(rl.MeasureText(p.Text, int32(size)))
			at := labelOrigin(p, c.Size, w)
			rl.DrawText(p.Text, int32(at.X), int32(at.Y), int32(size), textColor)
		}
	}
	rl.EndBlendMode()
}
