package scene

import (
	"image/color"
	"sort"
	"time"

	"periodic-table/internal/card"
	"periodic-table/internal/primitives"
	"periodic-table/internal/table"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WorldScale converts table units to raylib units, so the default 1..100000 clip range
// of the table camera lands on raylib's 0.01..1000.
const WorldScale = 0.01

// Style colors the card faces.
type Style struct {
	Card       color.RGBA
	PanelAlpha float32
	TextAlpha  float32
}

// Overlay is the 2D layer that gets the pointer before the cards do.
type Overlay interface {
	Hover(x, y float32)
	Click(x, y float32) bool
}

// Scene draws a table with raylib and feeds it pointer input. Update advances the table and
// syncs the raylib camera; Draw renders between BeginMode3D and EndMode3D.
type Scene struct {
	table   *table.Table
	faces   *primitives.Registry
	style   Style
	font    rl.Font
	camera  rl.Camera3D
	pointer Pointer
	order   []int
}

// New returns a scene for tb. No GPU resources are created until the first Draw.
func New(tb *table.Table, style Style) *Scene {
	s := &Scene{table: tb, faces: primitives.NewRegistry(), style: style}
	s.camera.Projection = rl.CameraPerspective
	s.syncCamera()
	return s
}

// SetFont sets the font painted on the cards. Zero texture ID = use raylib default.
// Faces are repainted on the next Draw.
func (s *Scene) SetFont(font rl.Font) {
	s.font = font
	s.faces.Unload()
}

// SetStyle recolors the cards. Faces are repainted on the next Draw.
func (s *Scene) SetStyle(style Style) {
	if style == s.style {
		return
	}
	s.style = style
	s.faces.Unload()
}

// Camera returns the raylib camera as of the last Update.
func (s *Scene) Camera() rl.Camera3D {
	return s.camera
}

// Update handles the pointer and wheel, then advances the table by dt.
// A press the overlay takes never reaches the cards. Call once per frame.
func (s *Scene) Update(dt time.Duration, overlay Overlay) {
	w, h := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
	if vw, vh := s.table.Viewport(); vw != w || vh != h {
		s.table.Resize(w, h)
	}

	m := rl.GetMousePosition()
	if overlay != nil {
		overlay.Hover(m.X, m.Y)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if overlay != nil && overlay.Click(m.X, m.Y) {
			s.pointer.Cancel()
		} else {
			s.pointer.Press(m.X, m.Y)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if dx, dy, ok := s.pointer.Move(m.X, m.Y); ok {
			s.table.Controls().Rotate(dx, dy, h)
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && s.pointer.Release(m.X, m.Y) {
		s.table.Click(m.X, m.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.table.Controls().Zoom(wheel)
	}

	s.table.Tick(dt)
	s.syncCamera()
}

func (s *Scene) syncCamera() {
	cam := s.table.Camera()
	s.camera.Position = rl.NewVector3(cam.Position.X*WorldScale, cam.Position.Y*WorldScale, cam.Position.Z*WorldScale)
	s.camera.Target = rl.NewVector3(cam.Target.X*WorldScale, cam.Target.Y*WorldScale, cam.Target.Z*WorldScale)
	s.camera.Up = rl.NewVector3(cam.Up.X, cam.Up.Y, cam.Up.Z)
	s.camera.Fovy = cam.FOV
}

// Draw paints stale face textures, then draws the cards back to front.
// Call after ClearBackground and before the 2D overlay.
func (s *Scene) Draw() {
	cards := s.table.Cards()
	for _, c := range cards {
		s.ensureFaces(c)
	}

	eye := s.table.Camera().Position
	s.order = s.order[:0]
	for i := range cards {
		s.order = append(s.order, i)
	}
	sort.SliceStable(s.order, func(a, b int) bool {
		da := cards[s.order[a]].Position().Sub(eye).Length()
		db := cards[s.order[b]].Position().Sub(eye).Length()
		return da > db
	})

	rl.BeginMode3D(s.camera)
	rl.DisableDepthMask()
	for _, i := range s.order {
		s.drawCard(cards[i])
	}
	rl.EnableDepthMask()
	rl.EndMode3D()
}

func (s *Scene) ensureFaces(c *card.Card) {
	w, h := textureSize(c.Size)
	for _, face := range []card.Face{card.Front, card.Back} {
		key := primitives.Key{Card: c.Index, Back: face == card.Back}
		s.faces.Texture(key, c.Version(), w, h, func() { s.paint(c, face) })
	}
}

func (s *Scene) drawCard(c *card.Card) {
	w, h := textureSize(c.Size)
	rot := c.Rotation()
	for _, face := range []card.Face{card.Front, card.Back} {
		back := face == card.Back
		tex := s.faces.Texture(primitives.Key{Card: c.Index, Back: back}, c.Version(), w, h, func() { s.paint(c, face) })
		m := primitives.FaceTransform(c.Position(), rot, c.Size.Width, c.Size.Height, WorldScale, back)
		s.faces.Draw(tex, m, rl.White)
	}
}

// Unload frees the face textures and the quad.
func (s *Scene) Unload() {
	s.faces.Unload()
}
