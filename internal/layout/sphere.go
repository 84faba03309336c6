package layout

import (
	"sort"

	"cogentcore.org/core/math32"
)

// Ring is one latitude band of the sphere.
type Ring struct {
	// Inclination is the polar angle from +Y.
	Inclination float32
	// Radius is the distance of the band from the Y axis.
	Radius float32
	// Capacity is how many cards fit side by side along the band.
	Capacity int
	// Slots is how many cards the band actually holds.
	Slots int
	// First is the index of the first card placed on the band.
	First int
}

// Slot identifies a card position on the sphere.
type Slot struct {
	Ring int
	Slot int
}

// SpherePlan assigns every card a unique (ring, slot) pair.
type SpherePlan struct {
	Radius      float32
	CardsAround int
	Rings       []Ring
	count       int
}

// PlanSphere sizes the sphere from the card size and distributes n cards over its
// rings in proportion to each ring's capacity.
func PlanSphere(n int, p Params) SpherePlan {
	around := max(p.SphereCardsAround, 1)
	for {
		plan := sphereRings(around, p)
		if plan.capacity() >= n || n <= 0 {
			plan.allocate(n)
			return plan
		}
		around++
	}
}

func sphereRings(around int, p Params) SpherePlan {
	pitch := p.CardWidth + p.Spacing
	circumference := float32(around) * pitch
	radius := circumference / 2 / math32.Pi
	count := int(math32.Floor(circumference / (p.CardHeight + p.Spacing)))
	if count < 1 {
		count = 1
	}
	plan := SpherePlan{Radius: radius, CardsAround: around, Rings: make([]Ring, count)}
	for r := range plan.Rings {
		phi := (float32(r) + 0.5) * math32.Pi / float32(count)
		rr := radius * math32.Sin(phi)
		capacity := int(math32.Floor(2 * math32.Pi * rr / pitch))
		if capacity < 1 {
			capacity = 1
		}
		plan.Rings[r] = Ring{Inclination: phi, Radius: rr, Capacity: capacity}
	}
	return plan
}

func (sp *SpherePlan) capacity() int {
	total := 0
	for _, r := range sp.Rings {
		total += r.Capacity
	}
	return total
}

// allocate spreads n cards over the rings by largest remainder, never exceeding a
// ring's capacity. n must not exceed the total capacity.
func (sp *SpherePlan) allocate(n int) {
	sp.count = n
	if n <= 0 {
		return
	}
	total := float64(sp.capacity())
	type share struct {
		ring int
		frac float64
	}
	shares := make([]share, len(sp.Rings))
	left := n
	for i := range sp.Rings {
		quota := float64(n) * float64(sp.Rings[i].Capacity) / total
		base := min(int(quota), sp.Rings[i].Capacity)
		sp.Rings[i].Slots = base
		left -= base
		shares[i] = share{i, quota - float64(base)}
	}
	sort.SliceStable(shares, func(a, b int) bool { return shares[a].frac > shares[b].frac })
	for left > 0 {
		for _, s := range shares {
			if left == 0 {
				break
			}
			if sp.Rings[s.ring].Slots < sp.Rings[s.ring].Capacity {
				sp.Rings[s.ring].Slots++
				left--
			}
		}
	}
	first := 0
	for i := range sp.Rings {
		sp.Rings[i].First = first
		first += sp.Rings[i].Slots
	}
}

// Count returns the number of cards the plan places.
func (sp SpherePlan) Count() int {
	return sp.count
}

// Assign returns the (ring, slot) of card i.
func (sp SpherePlan) Assign(i int) Slot {
	for r, ring := range sp.Rings {
		if i >= ring.First && i < ring.First+ring.Slots {
			return Slot{Ring: r, Slot: i - ring.First}
		}
	}
	return Slot{Ring: -1, Slot: -1}
}

// Point converts a slot to Cartesian coordinates: the slots of a ring are spread
// evenly in azimuth.
func (sp SpherePlan) Point(s Slot) math32.Vector3 {
	ring := sp.Rings[s.Ring]
	theta := 2 * math32.Pi * float32(s.Slot) / float32(ring.Slots)
	return Spherical(sp.Radius, ring.Inclination, theta)
}

// Spherical converts (radius, polar angle from +Y, azimuth around Y from +Z) to Cartesian.
func Spherical(radius, phi, theta float32) math32.Vector3 {
	sinPhi := math32.Sin(phi)
	return math32.Vec3(
		radius*sinPhi*math32.Sin(theta),
		radius*math32.Cos(phi),
		radius*sinPhi*math32.Cos(theta),
	)
}

// Sphere returns the position of each of n cards and their look-at targets, which are
// all the sphere center.
func Sphere(n int, p Params) (positions, lookAt []math32.Vector3, plan SpherePlan) {
	plan = PlanSphere(n, p)
	positions = make([]math32.Vector3, n)
	lookAt = make([]math32.Vector3, n)
	for i := range positions {
		positions[i] = plan.Point(plan.Assign(i))
		lookAt[i] = math32.Vec3(0, 0, 0)
	}
	return positions, lookAt, plan
}
