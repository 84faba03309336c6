package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
@media screen { .hidden { color: #fff; } }
.a, #b { width: 10px; border: 1px solid #112233; }
button:hover { background: #00000080; }
`)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 3)
	assert.Equal(t, ".a", sheet.Rules[0].Selector)
	assert.Equal(t, "#b", sheet.Rules[1].Selector)
	assert.Equal(t, "10px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "1px solid #112233", sheet.Rules[1].Props["border"])
	assert.Equal(t, "button:hover", sheet.Rules[2].Selector)
}

func TestDefaultCSSParses(t *testing.T) {
	sheet, err := ParseCSS(DefaultCSS)
	require.NoError(t, err)
	assert.NotEmpty(t, sheet.Rules)
}

func TestResolveProps(t *testing.T) {
	st := ResolveProps(map[string]string{
		"background":    "#f00",
		"color":         "#00ff0080",
		"border":        "2px solid #0000ff",
		"width":         "120px",
		"left":          "50%",
		"bottom":        "8",
		"font-size":     "18px",
		"border-radius": "4px",
		"display":       "row",
		"text-align":    "center",
	})
	assert.Equal(t, rl.NewColor(255, 0, 0, 255), st.Background)
	assert.Equal(t, rl.NewColor(0, 255, 0, 128), st.Color)
	assert.True(t, st.HasBorder)
	assert.Equal(t, rl.NewColor(0, 0, 255, 255), st.Border)
	assert.Equal(t, int32(120), st.Width)
	assert.Equal(t, int32(50), st.LeftPct)
	assert.Equal(t, int32(unset), st.Left)
	assert.Equal(t, int32(8), st.Bottom)
	assert.Equal(t, int32(18), st.FontSize)
	assert.Equal(t, float32(4), st.Radius)
	assert.True(t, st.Row)
	assert.True(t, st.Center)
}

func TestParseHexColorRejects(t *testing.T) {
	for _, s := range []string{"", "red", "#12", "#12345", "#gggggg"} {
		_, ok := ParseHexColor(s)
		assert.False(t, ok, s)
	}
}

func testEngine(t *testing.T, css string) *Engine {
	t.Helper()
	sheet, err := ParseCSS(css)
	require.NoError(t, err)
	e := New()
	e.SetStylesheet(sheet)
	return e
}

func TestToolbarLayout(t *testing.T) {
	e := testEngine(t, `
#toolbar { display: row; left: 50%; bottom: 10px; padding: 5px; gap: 10px; }
.toolbar-button { width: 100px; height: 30px; }
`)
	var clicked []string
	tb := NewToolbar(
		Button{ID: "one", Label: "One", Action: func() { clicked = append(clicked, "one") }},
		Button{ID: "two", Label: "Two", Action: func() { clicked = append(clicked, "two") }},
	)
	e.SetNodes(tb.Nodes())
	e.Layout(800, 600)

	root := tb.Root()
	assert.Equal(t, float32(220), root.Bounds.Width)
	assert.Equal(t, float32(40), root.Bounds.Height)
	assert.Equal(t, float32(290), root.Bounds.X)
	assert.Equal(t, float32(550), root.Bounds.Y)

	one, two := tb.Button("one"), tb.Button("two")
	assert.Equal(t, rl.NewRectangle(295, 555, 100, 30), one.Bounds)
	assert.Equal(t, rl.NewRectangle(405, 555, 100, 30), two.Bounds)

	assert.True(t, e.Click(410, 560))
	assert.Equal(t, []string{"two"}, clicked)

	// the gap is part of the toolbar: consumed, no action
	assert.True(t, e.Click(400, 560))
	assert.Equal(t, []string{"two"}, clicked)

	assert.False(t, e.Click(10, 10))

	tb.SetHidden(true)
	assert.False(t, e.Click(410, 560))
	assert.Nil(t, tb.Button("missing"))
}

func TestHoverStyle(t *testing.T) {
	e := testEngine(t, `
.b { width: 50px; height: 50px; background: #000000; }
.b:hover { background: #ffffff; }
`)
	n := NewNode("button", "b", "", "")
	e.SetNodes([]*Node{n})
	e.Layout(100, 100)

	assert.Equal(t, rl.NewColor(0, 0, 0, 255), e.Style(n, false).Background)
	assert.Equal(t, rl.NewColor(255, 255, 255, 255), e.Style(n, true).Background)

	e.Hover(10, 10)
	assert.Same(t, n, e.hovered)
	e.Hover(90, 90)
	assert.Nil(t, e.hovered)
}

func TestStyleCacheFollowsClass(t *testing.T) {
	e := testEngine(t, `.x { width: 10px; } .y { width: 20px; }`)
	n := NewNode("label", "x", "", "")
	assert.Equal(t, int32(10), e.Style(n, false).Width)
	n.Class = "y"
	assert.Equal(t, int32(20), e.Style(n, false).Width)
}

func TestDetailPanel(t *testing.T) {
	p := NewDetailPanel()
	assert.Empty(t, p.AppendNodes(nil, nil))

	nodes := p.AppendNodes(nil, &Detail{Number: 26, Symbol: "Fe", Name: "Iron", Mass: "55.85"})
	require.Len(t, nodes, 6)
	assert.Equal(t, "detail", nodes[0].ID)
	assert.Equal(t, "Fe", nodes[1].Text)
	assert.Equal(t, "26", nodes[2].Text)
	assert.Equal(t, "Atomic mass: 55.85", nodes[4].Text)
	assert.Equal(t, "Discoverer unknown", nodes[5].Text)
	for _, n := range nodes[1:] {
		assert.Same(t, nodes[0], n.Parent)
	}

	e := New()
	e.SetNodes(nodes)
	e.Layout(1280, 720)
	assert.Equal(t, rl.NewRectangle(16, 16, 320, 176), nodes[0].Bounds)
	assert.Equal(t, float32(16+12), nodes[3].Bounds.X)
	assert.Equal(t, float32(16+70), nodes[3].Bounds.Y)
}
