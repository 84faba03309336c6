package ui

// Button is one toolbar entry.
type Button struct {
	ID     string
	Label  string
	Action func()
}

// Toolbar is a row of buttons anchored by the stylesheet (#toolbar, .toolbar-button).
type Toolbar struct {
	root    *Node
	buttons []*Node
}

// NewToolbar builds the container node and one child per button, in order.
func NewToolbar(buttons ...Button) *Toolbar {
	tb := &Toolbar{root: NewNode("div", "toolbar", "toolbar", "")}
	for _, b := range buttons {
		n := NewNode("button", "toolbar-button", b.ID, b.Label)
		n.Parent = tb.root
		n.OnClick = b.Action
		tb.buttons = append(tb.buttons, n)
	}
	return tb
}

// Root returns the container node.
func (tb *Toolbar) Root() *Node {
	return tb.root
}

// Button returns the node with the given id, or nil.
func (tb *Toolbar) Button(id string) *Node {
	for _, n := range tb.buttons {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Nodes returns the container followed by its buttons.
func (tb *Toolbar) Nodes() []*Node {
	return append([]*Node{tb.root}, tb.buttons...)
}

// SetHidden shows or hides the whole toolbar.
func (tb *Toolbar) SetHidden(hidden bool) {
	tb.root.Hidden = hidden
}
