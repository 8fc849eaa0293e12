// Package physics advances the demo scene's rigid bodies on a fixed
// timestep. It is deliberately small: box bodies under gravity with
// velocity damping, settled against static axis-aligned colliders with
// zero restitution.
package physics

import (
	"math"

	"github.com/philipparndt/gorbit/pkg/geometry"
	"gonum.org/v1/gonum/num/quat"
)

// Body is a dynamic box.
type Body struct {
	Name        string
	HalfExtents geometry.Vector3
	Mass        float64

	// Damping factors applied per substep as v *= 1/(1+h*d).
	LinearDamping  float64
	AngularDamping float64

	Position        geometry.Vector3
	Velocity        geometry.Vector3
	AngularVelocity geometry.Vector3 // axis-angle rate, radians per second
	Orientation     quat.Number
}

// NewBody returns a box body at rest with identity orientation.
func NewBody(name string, halfExtents geometry.Vector3, mass float64, position geometry.Vector3) *Body {
	return &Body{
		Name:        name,
		HalfExtents: halfExtents,
		Mass:        mass,
		Position:    position,
		Orientation: quat.Number{Real: 1},
	}
}

// RotateVector rotates v by the body's orientation.
func (b *Body) RotateVector(v geometry.Vector3) geometry.Vector3 {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(b.Orientation, p), quat.Conj(b.Orientation))
	return geometry.NewVector3(r.Imag, r.Jmag, r.Kmag)
}

// integrateOrientation applies the angular velocity over h seconds.
func (b *Body) integrateOrientation(h float64) {
	angle := b.AngularVelocity.Length() * h
	if angle == 0 {
		return
	}
	axis := b.AngularVelocity.Normalize()
	s := math.Sin(angle / 2)
	dq := quat.Number{
		Real: math.Cos(angle / 2),
		Imag: axis.X * s,
		Jmag: axis.Y * s,
		Kmag: axis.Z * s,
	}
	b.Orientation = normalize(quat.Mul(dq, b.Orientation))
}

func normalize(q quat.Number) quat.Number {
	n := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}
