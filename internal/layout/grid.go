package layout

import (
	"cogentcore.org/core/math32"

	"periodic-table/internal/elements"
)

// Grid places each element at its periodic table cell. Column grows to +X, row to -Y.
func Grid(els []elements.Element, p Params) []math32.Vector3 {
	out := make([]math32.Vector3, len(els))
	for i, e := range els {
		out[i] = GridPoint(e.XPos, e.YPos, p)
	}
	return out
}

// GridPoint converts a 1-based (column, row) to world coordinates.
func GridPoint(col, row int, p Params) math32.Vector3 {
	return math32.Vec3(
		float32(col-1)*(p.CardWidth+p.Spacing),
		-float32(row-1)*(p.CardHeight+p.Spacing),
		p.GridZ,
	)
}
