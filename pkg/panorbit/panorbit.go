// Package panorbit implements a damped orbit/pan/zoom camera controller.
//
// Raw pointer input is folded into per-controller accumulators once per frame
// (Accumulate) and integrated into the camera transform with exponential
// damping (Step). The camera always sits Radius units behind its focus point
// along its own backward axis.
package panorbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tuning constants. These are deliberate feel choices, not derived values;
// changing them changes how every drag and scroll behaves.
const (
	// lerpFactor is the fraction of a pending delta applied per frame.
	// The remainder carries over, giving exponential decay toward rest.
	lerpFactor = 0.1

	// sensitivity scales raw pointer deltas before accumulation.
	sensitivity = 2.0

	// activationGate is the squared-magnitude threshold below which a
	// pending delta is considered settled and no longer applied.
	activationGate = 0.5

	// zoomRate is the fraction of the current radius removed per unit of
	// applied scroll, making zoom speed proportional to distance.
	zoomRate = 0.05

	// MinRadius keeps the camera from collapsing onto its focus point,
	// where zooming back out becomes impossible.
	MinRadius = 0.05
)

// Transform is a camera's world-space pose. The scene owns it; Step mutates
// it in place.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

// LookAt returns the pose of a camera at eye looking toward target, with
// world +Y as the up reference. The rotation maps local +Z to the direction
// from target to eye (the camera's backward axis).
func LookAt(eye, target mgl32.Vec3) Transform {
	backward := eye.Sub(target).Normalize()
	right := mgl32.Vec3{0, 1, 0}.Cross(backward).Normalize()
	up := backward.Cross(right)

	// Column-major basis: right, up, backward.
	m := mgl32.Mat4{
		right.X(), right.Y(), right.Z(), 0,
		up.X(), up.Y(), up.Z(), 0,
		backward.X(), backward.Y(), backward.Z(), 0,
		0, 0, 0, 1,
	}
	return Transform{
		Translation: eye,
		Rotation:    mgl32.Mat4ToQuat(m),
	}
}

// Up returns the transform's local up axis in world space.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

// Projection carries the parameters Step reads from the renderer's camera.
// Non-perspective projections pan with unscaled screen deltas.
type Projection struct {
	Perspective bool
	FOV         float32 // vertical field of view in radians
	Aspect      float32 // width / height
}

// Controller accumulates pointer input for one orbit camera and integrates
// it into the camera transform. Create one per orbit-capable camera.
type Controller struct {
	// Focus is the world-space point the camera orbits around. Panning
	// moves it.
	Focus mgl32.Vec3

	// Radius is the distance from Focus to the camera, always >= MinRadius.
	Radius float32

	// UpsideDown reports whether the camera's up axis pointed below the
	// horizon when the current orbit gesture started. Horizontal drag is
	// sign-inverted while set, so dragging right always orbits the same
	// way on screen.
	UpsideDown bool

	// Pending input, drained a fixed fraction per Step.
	pan          mgl32.Vec2
	rotation     mgl32.Vec2
	scroll       float32
	orbitChanged bool
}

// New returns a controller orbiting focus at the given radius.
func New(focus mgl32.Vec3, radius float32) *Controller {
	if radius < MinRadius {
		radius = MinRadius
	}
	return &Controller{Focus: focus, Radius: radius}
}

// Step integrates one frame of accumulated input into t, reading the
// projection parameters and the surface size in pixels. It reports whether
// the transform was recomputed; with all pending deltas settled it leaves t
// untouched.
func (c *Controller) Step(t *Transform, proj Projection, width, height float32) bool {
	if c.orbitChanged {
		// Re-evaluate only when the orbit gesture starts or ends, never
		// mid-drag, so the rotation sign cannot flip under the cursor.
		c.UpsideDown = t.Up().Y() <= 0
		c.orbitChanged = false
	}

	any := false

	if c.rotation.Dot(c.rotation) > activationGate {
		any = true
		applied := c.rotation.Mul(lerpFactor)
		c.rotation = c.rotation.Sub(applied)

		dx := applied.X() / width * 2 * math.Pi
		if c.UpsideDown {
			dx = -dx
		}
		dy := applied.Y() / height * math.Pi

		// Yaw about the world vertical composes on the left (outer
		// gimbal axis), pitch about the local horizontal on the right
		// (inner axis). This order keeps roll out of the orientation.
		yaw := mgl32.QuatRotate(-dx, mgl32.Vec3{0, 1, 0})
		pitch := mgl32.QuatRotate(-dy, mgl32.Vec3{1, 0, 0})
		t.Rotation = yaw.Mul(t.Rotation)
		t.Rotation = t.Rotation.Mul(pitch)
	}

	if c.pan.Dot(c.pan) > activationGate {
		any = true
		applied := c.pan.Mul(lerpFactor)
		c.pan = c.pan.Sub(applied)

		if proj.Perspective {
			// A fixed pixel drag should pan the same apparent amount
			// regardless of window size or field of view.
			applied = mgl32.Vec2{
				applied.X() * proj.FOV * proj.Aspect / width,
				applied.Y() * proj.FOV / height,
			}
		}
		right := t.Rotation.Rotate(mgl32.Vec3{1, 0, 0}).Mul(-applied.X())
		up := t.Rotation.Rotate(mgl32.Vec3{0, 1, 0}).Mul(applied.Y())
		// Panning is proportional to distance from the focus point.
		c.Focus = c.Focus.Add(right.Add(up).Mul(c.Radius))
	}

	if float32(math.Abs(float64(c.scroll))) > activationGate {
		any = true
		applied := c.scroll * lerpFactor
		c.scroll -= applied
		c.Radius -= applied * c.Radius * zoomRate
		if c.Radius < MinRadius {
			c.Radius = MinRadius
		}
	}

	if any {
		t.Translation = c.Focus.Add(t.Rotation.Rotate(mgl32.Vec3{0, 0, c.Radius}))
	}
	return any
}
