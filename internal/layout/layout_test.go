package layout

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periodic-table/internal/elements"
)

func dataset(t *testing.T) []elements.Element {
	t.Helper()
	d, err := elements.Default()
	require.NoError(t, err)
	return d.Elements
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"grid": ModeGrid, "Table": ModeGrid, "periodic": ModeGrid,
		"block": ModeBlock, "paraflow": ModeBlock,
		" sphere ": ModeSphere,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("cube")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestGridDistinctCells(t *testing.T) {
	els := dataset(t)
	p := DefaultParams()
	pts := Grid(els, p)
	require.Len(t, pts, len(els))

	seen := map[math32.Vector3]string{}
	for i, pt := range pts {
		if other, ok := seen[pt]; ok {
			t.Fatalf("%s and %s share %v", els[i].Symbol, other, pt)
		}
		seen[pt] = els[i].Symbol
		assert.Equal(t, p.GridZ, pt.Z)
	}
	// Hydrogen is the top-left corner.
	assert.Equal(t, math32.Vec3(0, 0, 100), pts[0])
	// Helium is column 18 of row 1.
	assert.Equal(t, math32.Vec3(17*130, 0, 100), pts[1])
}

func TestGridPoint(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, math32.Vec3(2*130, -3*172, 100), GridPoint(3, 4, p))
}

func TestBlockRoundTrip(t *testing.T) {
	p := DefaultParams()
	volume := p.BlockWidth * p.BlockHeight * p.BlockDepth
	for n := 0; n < 3*volume; n++ {
		x, y, z := BlockCell(n, p)
		require.Less(t, x, p.BlockWidth)
		require.Less(t, y, p.BlockHeight)
		require.Less(t, z, p.BlockDepth)
		assert.Equal(t, n%volume, BlockIndex(x, y, z, p), "n=%d", n)
	}
}

func TestBlockPositions(t *testing.T) {
	els := dataset(t)
	p := DefaultParams()
	pts := Block(els, p)
	require.Len(t, pts, len(els))

	// Element 8 (n=7) sits at column 1, row 1, layer 0.
	assert.Equal(t, math32.Vec3(1*(240+10), 1*(324+10), 0), pts[7])
	// Element 31 (n=30) starts the second layer.
	assert.Equal(t, math32.Vec3(0, 0, 240), pts[30])
}

func TestSphereSlotsCoverEveryCard(t *testing.T) {
	p := DefaultParams()
	for _, n := range []int{1, 7, 118, 400} {
		plan := PlanSphere(n, p)
		total := 0
		for _, r := range plan.Rings {
			assert.LessOrEqual(t, r.Slots, r.Capacity)
			total += r.Slots
		}
		assert.Equal(t, n, total, "n=%d", n)

		seen := map[Slot]bool{}
		for i := 0; i < n; i++ {
			s := plan.Assign(i)
			require.GreaterOrEqual(t, s.Ring, 0, "card %d unassigned", i)
			require.False(t, seen[s], "slot %v assigned twice", s)
			seen[s] = true
		}
	}
}

func TestSphereGrowsWhenFull(t *testing.T) {
	p := DefaultParams()
	p.SphereCardsAround = 3
	plan := PlanSphere(118, p)
	assert.Greater(t, plan.CardsAround, 3)
	assert.Equal(t, 118, plan.Count())
}

func TestSpherePointsOnRings(t *testing.T) {
	p := DefaultParams()
	pos, look, plan := Sphere(118, p)
	require.Len(t, pos, 118)
	require.Len(t, look, 118)
	for i, pt := range pos {
		s := plan.Assign(i)
		ring := plan.Rings[s.Ring]
		assert.InDelta(t, plan.Radius, pt.Length(), 1e-2, "card %d", i)
		assert.InDelta(t, ring.Radius, math32.Sqrt(pt.X*pt.X+pt.Z*pt.Z), 1e-2, "card %d", i)
		assert.Equal(t, math32.Vec3(0, 0, 0), look[i])
	}
}

func TestComputeCoordinateSet(t *testing.T) {
	els := dataset(t)
	cs, err := Compute(els, DefaultParams())
	require.NoError(t, err)
	for _, m := range Modes {
		pts, ok := cs.Positions(m)
		require.True(t, ok, m)
		assert.Len(t, pts, len(els))
	}
	_, ok := cs.LookAt(ModeGrid)
	assert.False(t, ok)
	look, ok := cs.LookAt(ModeSphere)
	require.True(t, ok)
	assert.Len(t, look, len(els))
	assert.Equal(t, 118, cs.SpherePlan().Count())

	assert.Error(t, cs.SetPositions(ModeGrid, nil))
}

func TestComputeRejectsBadParams(t *testing.T) {
	p := DefaultParams()
	p.BlockDepth = 0
	_, err := Compute(dataset(t), p)
	assert.Error(t, err)
}
