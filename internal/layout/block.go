package layout

import (
	"cogentcore.org/core/math32"

	"periodic-table/internal/elements"
)

// Block folds the elements into a BlockWidth × BlockHeight × BlockDepth lattice by
// atomic number, row-major, wrapping once the lattice is full.
func Block(els []elements.Element, p Params) []math32.Vector3 {
	out := make([]math32.Vector3, len(els))
	for i, e := range els {
		x, y, z := BlockCell(e.Number-1, p)
		out[i] = math32.Vec3(
			float32(x)*(2*p.CardWidth+p.Spacing),
			float32(y)*(2*p.CardHeight+p.Spacing),
			float32(z)*2*p.CardWidth,
		)
	}
	return out
}

// BlockCell decomposes a zero-based index into lattice coordinates.
func BlockCell(n int, p Params) (x, y, z int) {
	x = n % p.BlockWidth
	y = (n / p.BlockWidth) % p.BlockHeight
	z = (n / (p.BlockWidth * p.BlockHeight)) % p.BlockDepth
	return x, y, z
}

// BlockIndex recomposes lattice coordinates into the zero-based index, modulo the
// lattice volume.
func BlockIndex(x, y, z int, p Params) int {
	return x + p.BlockWidth*y + p.BlockWidth*p.BlockHeight*z
}
