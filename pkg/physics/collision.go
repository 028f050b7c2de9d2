package physics

// ResolveCollisions pushes apart every overlapping pair of particles.
//
// Each pair (i, j) with i < j whose centers are closer than the sum of their
// radii receives a symmetric impulse along the separation axis: i loses
// exactly what j gains, so the pair's total momentum is unchanged.
// Coincident centers have no separation axis and are skipped.
//
// The scan is O(n²) per call. That is fine for a few hundred particles and
// is the scaling ceiling of this rule; Grid.Resolve gives the same result
// for large populations.
func ResolveCollisions(ps []*Particle, strength float64) (hits int) {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if collide(ps[i], ps[j], strength) {
				hits++
			}
		}
	}
	return hits
}

// collide applies the impulse to one pair and reports whether they overlapped.
// The impulse depends on positions only, so pair order does not matter.
func collide(a, b *Particle, strength float64) bool {
	d := b.Pos().Sub(a.Pos())
	dist := d.Len()
	minDist := a.Radius + b.Radius
	if dist == 0 || dist >= minDist {
		return false
	}

	// Overlap correction along the unit separation vector
	correction := d.Mul((minDist - dist) / dist)
	impulse := correction.Mul(strength)
	a.VX -= impulse.X
	a.VY -= impulse.Y
	b.VX += impulse.X
	b.VY += impulse.Y
	return true
}
