package physics

import (
	"math"
	"testing"

	"github.com/philipparndt/gorbit/pkg/geometry"
)

const tolerance = 1e-9

func newTestWorld(gravity geometry.Vector3) *World {
	return NewWorld(gravity, 0.05, 20)
}

func TestFreeFallVelocity(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, -9.81, 0))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0, 100, 0))
	w.AddBody(b)

	w.Advance(0.05)

	// Without damping the substeps sum to exactly gravity times the timestep.
	want := -9.81 * 0.05
	if math.Abs(b.Velocity.Y-want) > tolerance {
		t.Errorf("velocity after one step: expected %v, got %v", want, b.Velocity.Y)
	}
	if b.Position.Y >= 100 {
		t.Error("body should have fallen")
	}
}

func TestLinearDampingRatio(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, 0, 0))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0, 10, 0))
	b.LinearDamping = 0.1
	b.Velocity = geometry.NewVector3(4, 0, 0)
	w.AddBody(b)

	w.Advance(0.05)

	h := 0.05 / 20.0
	want := 4 * math.Pow(1/(1+h*0.1), 20)
	if math.Abs(b.Velocity.X-want) > tolerance {
		t.Errorf("damped velocity: expected %v, got %v", want, b.Velocity.X)
	}
}

func TestAngularDampingRatio(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, 0, 0))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0, 10, 0))
	b.AngularDamping = 0.02
	b.AngularVelocity = geometry.NewVector3(0, 2, 0)
	w.AddBody(b)

	w.Advance(0.05)

	h := 0.05 / 20.0
	want := 2 * math.Pow(1/(1+h*0.02), 20)
	if math.Abs(b.AngularVelocity.Y-want) > tolerance {
		t.Errorf("damped angular velocity: expected %v, got %v", want, b.AngularVelocity.Y)
	}
}

func TestCubeSettlesOnFloor(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, -9.81, 0))
	w.AddCollider(geometry.NewVector3(0, -0.1, 0), geometry.NewVector3(4, 0.2, 4))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0, 2, 0))
	b.LinearDamping = 0.1
	w.AddBody(b)

	for i := 0; i < 200; i++ {
		w.Advance(0.05)
	}

	// Floor slab top is at y=0, so the cube center rests half a side above it.
	if math.Abs(b.Position.Y-0.125) > 1e-6 {
		t.Errorf("settled height: expected 0.125, got %v", b.Position.Y)
	}
	if math.Abs(b.Velocity.Y) > 1e-6 {
		t.Errorf("settled body should not move, velocity %v", b.Velocity.Y)
	}
}

func TestContactPushesOutSideways(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, 0, 0))
	// Wall occupying x in [1, 1.1].
	w.AddCollider(geometry.NewVector3(1.05, 0.5, 0), geometry.NewVector3(0.1, 1, 10))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0.95, 0.5, 0))
	b.Velocity = geometry.NewVector3(1, 0, 0)
	w.AddBody(b)

	w.Advance(0.05)

	if b.Position.X > 1-0.125+tolerance {
		t.Errorf("body should be pushed out of the wall, x=%v", b.Position.X)
	}
	if b.Velocity.X > 0 {
		t.Errorf("velocity into the wall should be cancelled, vx=%v", b.Velocity.X)
	}
}

func TestAccumulatorHoldsShortFrames(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, -9.81, 0))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0, 10, 0))
	w.AddBody(b)

	w.Advance(0.02)
	if b.Velocity.Y != 0 {
		t.Errorf("no step should run before the timestep is covered, vy=%v", b.Velocity.Y)
	}

	w.Advance(0.03)
	want := -9.81 * 0.05
	if math.Abs(b.Velocity.Y-want) > tolerance {
		t.Errorf("carried time should trigger exactly one step: expected %v, got %v", want, b.Velocity.Y)
	}
}

func TestAdvanceClampsLongFrames(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, -9.81, 0))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0, 10, 0))
	w.AddBody(b)

	w.Advance(10)

	// A ten second stall only pays for maxFrameTime of simulation.
	want := -9.81 * maxFrameTime
	if math.Abs(b.Velocity.Y-want) > tolerance {
		t.Errorf("expected velocity %v after clamped frame, got %v", want, b.Velocity.Y)
	}
}

func TestOrientationIntegration(t *testing.T) {
	w := newTestWorld(geometry.NewVector3(0, 0, 0))
	b := NewBody("cube", geometry.NewVector3(0.125, 0.125, 0.125), 1, geometry.NewVector3(0, 10, 0))
	b.AngularVelocity = geometry.NewVector3(0, math.Pi, 0)
	w.AddBody(b)

	// One second at pi rad/s is a half turn about Y.
	for i := 0; i < 20; i++ {
		w.Advance(0.05)
	}

	got := b.RotateVector(geometry.NewVector3(1, 0, 0))
	if math.Abs(got.X-(-1)) > 1e-6 || math.Abs(got.Y) > 1e-6 || math.Abs(got.Z) > 1e-6 {
		t.Errorf("expected (1,0,0) rotated to (-1,0,0), got %+v", got)
	}
}
