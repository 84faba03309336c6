package ui

import "fmt"

// Detail is the data shown for the selected element.
type Detail struct {
	Number       int
	Symbol       string
	Name         string
	Mass         string
	DiscoveredBy string
}

// DetailPanel shows the flipped card's element in a corner panel (#detail and .detail-*).
// It owns its nodes and updates their text in AppendNodes.
type DetailPanel struct {
	panel      *Node
	symbol     *Node
	number     *Node
	name       *Node
	mass       *Node
	discoverer *Node
}

func NewDetailPanel() *DetailPanel {
	p := &DetailPanel{panel: NewNode("panel", "detail", "detail", "")}
	child := func(class string) *Node {
		n := NewNode("label", class, "", "")
		n.Parent = p.panel
		return n
	}
	p.symbol = child("detail-symbol")
	p.number = child("detail-number")
	p.name = child("detail-name")
	p.mass = child("detail-mass")
	p.discoverer = child("detail-discoverer")
	return p
}

// AppendNodes appends the panel nodes to dst after filling them from d.
// A nil d leaves dst unchanged.
func (p *DetailPanel) AppendNodes(dst []*Node, d *Detail) []*Node {
	if d == nil {
		return dst
	}
	p.symbol.Text = d.Symbol
	p.number.Text = fmt.Sprint(d.Number)
	p.name.Text = d.Name
	p.mass.Text = "Atomic mass: " + d.Mass
	if d.DiscoveredBy != "" {
		p.discoverer.Text = "Discovered by " + d.DiscoveredBy
	} else {
		p.discoverer.Text = "Discoverer unknown"
	}
	return append(dst, p.panel, p.symbol, p.number, p.name, p.mass, p.discoverer)
}
