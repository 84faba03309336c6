package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, button, label. Class and ID are matched by the
// stylesheet. A node with a Parent is placed inside it; a parent styled
// "display: row" lays its children out left to right.
type Node struct {
	Type    string // "panel", "button", "label"
	Class   string // e.g. "toolbar-button" for .toolbar-button
	ID      string // e.g. "toolbar" for #toolbar
	Text    string
	Parent  *Node
	Hidden  bool
	OnClick func()

	// Bounds is set by Engine.Layout in screen pixels.
	Bounds rl.Rectangle
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Visible reports whether the node and all its parents are shown.
func (n *Node) Visible() bool {
	for p := n; p != nil; p = p.Parent {
		if p.Hidden {
			return false
		}
	}
	return true
}

// Contains reports whether the screen point lies inside the node bounds.
func (n *Node) Contains(x, y float32) bool {
	b := n.Bounds
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}
