package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is a single CSS rule: one selector and its raw property values.
type Rule struct {
	Selector string            // e.g. ".toolbar-button", "#toolbar", "button:hover"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules (order matters: later overrides earlier).
type Stylesheet struct {
	Rules []Rule
}

// unset marks a position property that was not given.
const unset = -1

// ComputedStyle holds resolved values used for layout and drawing.
// Left/Top/Right/Bottom are pixels, unset when not given; LeftPct/TopPct place the node
// at a share of the free space (50 centers it).
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	Right      int32
	Bottom     int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
	Gap        int32
	FontSize   int32
	Radius     float32
	Row        bool // display: row
	Center     bool // text-align: center
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		Left:       unset,
		Top:        unset,
		Right:      unset,
		Bottom:     unset,
		LeftPct:    unset,
		TopPct:     unset,
		Padding:    4,
		FontSize:   defaultFontSize,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return rl.Black, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Black, false
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100).
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from a merged property map.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	px := func(v string, dst *int32) {
		if n, ok := ParsePx(v); ok {
			*dst = n
		}
	}
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border", "border-color":
			// "1px solid #333" or "#333"
			fields := strings.Fields(v)
			if len(fields) > 0 {
				if c, ok := ParseHexColor(fields[len(fields)-1]); ok {
					out.Border = c
					out.HasBorder = true
				}
			}
		case "width":
			px(v, &out.Width)
		case "height":
			px(v, &out.Height)
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else {
				px(v, &out.Left)
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else {
				px(v, &out.Top)
			}
		case "right":
			px(v, &out.Right)
		case "bottom":
			px(v, &out.Bottom)
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "gap":
			px(v, &out.Gap)
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		case "border-radius":
			var r int32
			px(v, &r)
			out.Radius = float32(r)
		case "display":
			out.Row = v == "row" || v == "flex"
		case "text-align":
			out.Center = v == "center"
		}
	}
	return out
}
