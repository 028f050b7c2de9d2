package physics

// Integrate advances p by its velocity unless the twirl rule already did,
// then reflects it off the canvas edges and clamps it inside [0,w]x[0,h].
// With gravity on, the floor stops vertical motion instead of bouncing it.
// No restitution coefficient is applied: reflection only flips the sign.
func Integrate(p *Particle, moved bool, w, h float64, gravity bool) {
	if !moved {
		p.X += p.VX
		p.Y += p.VY
	}

	if p.X < 0 {
		p.X = 0
		p.VX = -p.VX
	}
	if p.X > w {
		p.X = w
		p.VX = -p.VX
	}
	if p.Y < 0 {
		p.Y = 0
		p.VY = -p.VY
	}
	if p.Y > h {
		p.Y = h
		if gravity {
			p.VY = 0
		} else {
			p.VY = -p.VY
		}
	}
}
