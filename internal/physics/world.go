package physics

import "github.com/philipparndt/gorbit/pkg/geometry"

// maxFrameTime caps how much simulated time a single Advance call can owe,
// so a stalled frame cannot trigger a catch-up spiral.
const maxFrameTime = 0.25

// collider is a static axis-aligned box.
type collider struct {
	min, max geometry.Vector3
}

// World steps bodies on a fixed timestep with an accumulator, so simulation
// speed is independent of the render frame rate.
type World struct {
	Gravity  geometry.Vector3
	Timestep float64
	Substeps int
	Bodies   []*Body

	colliders   []collider
	accumulator float64
}

// NewWorld returns an empty world with the given fixed-step configuration.
func NewWorld(gravity geometry.Vector3, timestep float64, substeps int) *World {
	if substeps < 1 {
		substeps = 1
	}
	return &World{
		Gravity:  gravity,
		Timestep: timestep,
		Substeps: substeps,
	}
}

// AddBody inserts a body into the simulation.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// AddCollider inserts a static box given its center and full side lengths.
func (w *World) AddCollider(center, size geometry.Vector3) {
	half := size.Mul(0.5)
	w.colliders = append(w.colliders, collider{
		min: center.Sub(half),
		max: center.Add(half),
	})
}

// Advance accumulates elapsed render time and runs as many fixed steps as
// it covers. Leftover time carries to the next frame.
func (w *World) Advance(elapsed float64) {
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	w.accumulator += elapsed
	for w.accumulator >= w.Timestep {
		w.step()
		w.accumulator -= w.Timestep
	}
}

func (w *World) step() {
	h := w.Timestep / float64(w.Substeps)
	for i := 0; i < w.Substeps; i++ {
		for _, b := range w.Bodies {
			w.integrate(b, h)
			w.resolveContacts(b)
		}
	}
}

func (w *World) integrate(b *Body, h float64) {
	b.Velocity = b.Velocity.Add(w.Gravity.Mul(h))
	b.Velocity = b.Velocity.Mul(1 / (1 + h*b.LinearDamping))
	b.AngularVelocity = b.AngularVelocity.Mul(1 / (1 + h*b.AngularDamping))
	b.Position = b.Position.Add(b.Velocity.Mul(h))
	b.integrateOrientation(h)
}

// resolveContacts pushes the body's bounding box out of every static
// collider along the axis of least penetration and kills the velocity
// component into the surface (zero restitution).
func (w *World) resolveContacts(b *Body) {
	for _, c := range w.colliders {
		bodyMin := b.Position.Sub(b.HalfExtents)
		bodyMax := b.Position.Add(b.HalfExtents)

		overlapX := min(bodyMax.X, c.max.X) - max(bodyMin.X, c.min.X)
		overlapY := min(bodyMax.Y, c.max.Y) - max(bodyMin.Y, c.min.Y)
		overlapZ := min(bodyMax.Z, c.max.Z) - max(bodyMin.Z, c.min.Z)
		if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
			continue
		}

		center := c.min.Add(c.max).Mul(0.5)
		switch {
		case overlapY <= overlapX && overlapY <= overlapZ:
			if b.Position.Y >= center.Y {
				b.Position.Y += overlapY
				if b.Velocity.Y < 0 {
					b.Velocity.Y = 0
				}
			} else {
				b.Position.Y -= overlapY
				if b.Velocity.Y > 0 {
					b.Velocity.Y = 0
				}
			}
		case overlapX <= overlapZ:
			if b.Position.X >= center.X {
				b.Position.X += overlapX
				if b.Velocity.X < 0 {
					b.Velocity.X = 0
				}
			} else {
				b.Position.X -= overlapX
				if b.Velocity.X > 0 {
					b.Velocity.X = 0
				}
			}
		default:
			if b.Position.Z >= center.Z {
				b.Position.Z += overlapZ
				if b.Velocity.Z < 0 {
					b.Velocity.Z = 0
				}
			} else {
				b.Position.Z -= overlapZ
				if b.Velocity.Z > 0 {
					b.Velocity.Z = 0
				}
			}
		}
	}
}
