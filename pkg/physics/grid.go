package physics

import "math"

// GridThreshold is the population above which the collision pass switches
// from the pairwise scan to the grid.
const GridThreshold = 256

type cellKey struct {
	x, y int
}

// Forward neighbors, so each pair of adjacent cells is visited once
var forward = [...]cellKey{{1, -1}, {1, 0}, {1, 1}, {0, 1}}

// Grid buckets particles into square cells as wide as the largest possible
// contact distance, so overlapping particles always share a cell or sit in
// adjacent ones.
type Grid struct {
	cell  float64
	cells map[cellKey][]int
}

// NewGrid creates an empty grid. A Grid is reused across ticks.
func NewGrid() *Grid {
	return &Grid{cells: make(map[cellKey][]int)}
}

func (g *Grid) key(p *Particle) cellKey {
	return cellKey{int(math.Floor(p.X / g.cell)), int(math.Floor(p.Y / g.cell))}
}

// build assigns every particle index to its cell.
func (g *Grid) build(ps []*Particle) {
	for k, bin := range g.cells {
		g.cells[k] = bin[:0]
	}
	maxR := 0.0
	for _, p := range ps {
		maxR = math.Max(maxR, p.Radius)
	}
	g.cell = 2 * maxR
	if g.cell <= 0 {
		return
	}
	for i, p := range ps {
		k := g.key(p)
		g.cells[k] = append(g.cells[k], i)
	}
}

// Resolve is ResolveCollisions restricted to particles in the same or
// adjacent cells. Every overlapping pair is still visited exactly once.
func (g *Grid) Resolve(ps []*Particle, strength float64) (hits int) {
	g.build(ps)
	if g.cell <= 0 {
		return 0
	}
	for k, bin := range g.cells {
		for a := 0; a < len(bin); a++ {
			for b := a + 1; b < len(bin); b++ {
				if collide(ps[bin[a]], ps[bin[b]], strength) {
					hits++
				}
			}
		}
		for _, off := range forward {
			nBin := g.cells[cellKey{k.x + off.x, k.y + off.y}]
			for _, i := range bin {
				for _, j := range nBin {
					if collide(ps[i], ps[j], strength) {
						hits++
					}
				}
			}
		}
	}
	return hits
}
