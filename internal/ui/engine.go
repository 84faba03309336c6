package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// DefaultCSS styles the toolbar and the detail panel.
//
//go:embed default.css
var DefaultCSS string

type cachedStyle struct {
	typ, class, id string
	normal, hover  ComputedStyle
}

// Engine holds the current stylesheet and nodes, lays them out and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached per node and only recomputed when the sheet or the node's
// selectors change.
// If a font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default font is used.
type Engine struct {
	sheet   *Stylesheet
	nodes   []*Node
	styles  map[*Node]*cachedStyle
	hovered *Node
	font    rl.Font
	ownFont bool
}

// New creates an engine using DefaultCSS and no nodes.
func New() *Engine {
	e := &Engine{styles: make(map[*Node]*cachedStyle)}
	if sheet, err := ParseCSS(DefaultCSS); err == nil {
		e.sheet = sheet
	}
	return e
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	clear(e.styles)
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFontEx(path, 64, nil)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	e.Unload()
	e.font = f
	e.ownFont = true
	return nil
}

// Font returns the loaded font; its texture ID is 0 when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// Unload frees the font loaded by LoadFont.
func (e *Engine) Unload() {
	if e.ownFont && e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = rl.Font{}
	e.ownFont = false
}

// AddNode appends a node. Nodes are drawn in order; parents must come before children.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
}

// SetNodes replaces all nodes.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

// Nodes returns the current nodes.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// matches reports whether sel selects n, and whether it only applies while hovered.
func matches(sel string, n *Node) (ok, hover bool) {
	if len(sel) > 6 && sel[len(sel)-6:] == ":hover" {
		sel, hover = sel[:len(sel)-6], true
	}
	switch {
	case sel == "":
		return false, hover
	case sel[0] == '.':
		return n.Class != "" && n.Class == sel[1:], hover
	case sel[0] == '#':
		return n.ID != "" && n.ID == sel[1:], hover
	}
	return n.Type == sel, hover
}

// Style returns the resolved style of n, using the hover rules when hovered is set.
func (e *Engine) Style(n *Node, hovered bool) ComputedStyle {
	c, ok := e.styles[n]
	if !ok || c.typ != n.Type || c.class != n.Class || c.id != n.ID {
		c = e.resolve(n)
		e.styles[n] = c
	}
	if hovered {
		return c.hover
	}
	return c.normal
}

func (e *Engine) resolve(n *Node) *cachedStyle {
	normal := map[string]string{}
	hover := map[string]string{}
	if e.sheet != nil {
		for _, rule := range e.sheet.Rules {
			ok, onHover := matches(rule.Selector, n)
			if !ok {
				continue
			}
			for k, v := range rule.Props {
				hover[k] = v
				if !onHover {
					normal[k] = v
				}
			}
		}
	}
	return &cachedStyle{
		typ: n.Type, class: n.Class, id: n.ID,
		normal: ResolveProps(normal),
		hover:  ResolveProps(hover),
	}
}

func (e *Engine) children(parent *Node) []*Node {
	var out []*Node
	for _, n := range e.nodes {
		if n.Parent == parent && !n.Hidden {
			out = append(out, n)
		}
	}
	return out
}

// Layout sets the bounds of every visible node for a screen of the given size. Sizes
// come from the stylesheet; a row container without a width wraps its children.
func (e *Engine) Layout(screenW, screenH int32) {
	for _, n := range e.nodes {
		st := e.Style(n, false)
		if st.Width > 0 {
			n.Bounds.Width = float32(st.Width)
		}
		if st.Height > 0 {
			n.Bounds.Height = float32(st.Height)
		}
	}
	// children come after parents, so walk backwards to size nested rows inside out
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		st := e.Style(n, false)
		if !st.Row {
			continue
		}
		kids := e.children(n)
		var w, h float32
		for j, k := range kids {
			if j > 0 {
				w += float32(st.Gap)
			}
			w += k.Bounds.Width
			h = max(h, k.Bounds.Height)
		}
		pad := float32(st.Padding)
		if st.Width == 0 {
			n.Bounds.Width = w + 2*pad
		}
		if st.Height == 0 {
			n.Bounds.Height = h + 2*pad
		}
	}

	cursor := map[*Node]float32{}
	for _, n := range e.nodes {
		if !n.Visible() {
			continue
		}
		st := e.Style(n, false)
		if n.Parent == nil {
			n.Bounds.X, n.Bounds.Y = place(st, float32(screenW), float32(screenH), n.Bounds)
			continue
		}
		p := n.Parent
		pst := e.Style(p, false)
		pad := float32(pst.Padding)
		if pst.Row {
			x, seen := cursor[p]
			if !seen {
				x = p.Bounds.X + pad
			}
			n.Bounds.X = x
			n.Bounds.Y = p.Bounds.Y + pad
			cursor[p] = x + n.Bounds.Width + float32(pst.Gap)
			continue
		}
		x, y := place(st, p.Bounds.Width, p.Bounds.Height, n.Bounds)
		n.Bounds.X, n.Bounds.Y = p.Bounds.X+x, p.Bounds.Y+y
	}
}

// place positions a box of size b inside an area w×h.
func place(st ComputedStyle, w, h float32, b rl.Rectangle) (x, y float32) {
	switch {
	case st.LeftPct >= 0:
		x = (w - b.Width) * float32(st.LeftPct) / 100
	case st.Left != unset:
		x = float32(st.Left)
	case st.Right != unset:
		x = w - b.Width - float32(st.Right)
	}
	switch {
	case st.TopPct >= 0:
		y = (h - b.Height) * float32(st.TopPct) / 100
	case st.Top != unset:
		y = float32(st.Top)
	case st.Bottom != unset:
		y = h - b.Height - float32(st.Bottom)
	}
	return x, y
}

// Hit returns the topmost visible node under the point, or nil.
func (e *Engine) Hit(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.Visible() && n.Bounds.Width > 0 && n.Bounds.Height > 0 && n.Contains(x, y) {
			return n
		}
	}
	return nil
}

// Hover records the pointer position so hover styles apply to the node under it.
func (e *Engine) Hover(x, y float32) {
	e.hovered = e.Hit(x, y)
}

// Click runs the handler of the clickable node under the point, walking up to parents.
// It reports whether the click landed on the UI and so must not reach the scene.
func (e *Engine) Click(x, y float32) bool {
	n := e.Hit(x, y)
	if n == nil {
		return false
	}
	for p := n; p != nil; p = p.Parent {
		if p.OnClick != nil {
			p.OnClick()
			return true
		}
	}
	return true
}

// Draw lays out and draws all visible nodes: background, border, then text.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for _, n := range e.nodes {
		if !n.Visible() {
			continue
		}
		e.drawNode(n, e.Style(n, n == e.hovered))
	}
}

func (e *Engine) drawNode(n *Node, st ComputedStyle) {
	b := n.Bounds
	roundness := float32(0)
	if st.Radius > 0 && b.Width > 0 && b.Height > 0 {
		roundness = min(1, 2*st.Radius/min(b.Width, b.Height))
	}
	if st.Background.A > 0 && b.Width > 0 && b.Height > 0 {
		if roundness > 0 {
			rl.DrawRectangleRounded(b, roundness, 6, st.Background)
		} else {
			rl.DrawRectangleRec(b, st.Background)
		}
	}
	if st.HasBorder && b.Width > 0 && b.Height > 0 {
		if roundness > 0 {
			rl.DrawRectangleRoundedLines(b, roundness, 6, st.Border)
		} else {
			rl.DrawRectangleLinesEx(b, 1, st.Border)
		}
	}
	if n.Text == "" {
		return
	}
	size := float32(st.FontSize)
	x := b.X + float32(st.Padding)
	y := b.Y + float32(st.Padding)
	if st.Center {
		tw := e.measure(n.Text, size)
		x = b.X + (b.Width-tw)/2
		if b.Height > 0 {
			y = b.Y + (b.Height-size)/2
		}
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, n.Text, rl.NewVector2(x, y), size, 1, st.Color)
	} else {
		rl.DrawText(n.Text, int32(x), int32(y), int32(size), st.Color)
	}
}

func (e *Engine) measure(text string, size float32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, size, 1).X
	}
	return float32(rl.MeasureText(text, int32(size)))
}
