// Package viewer renders a scene as a wireframe inside a fyne widget.
// It shares the pan-orbit controller with the raylib frontend, so both
// frontends respond to the mouse the same way.
package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/gorbit/pkg/geometry"
	"github.com/philipparndt/gorbit/pkg/panorbit"
)

// Camera feeds widget gestures into the orbit controller and projects
// world points onto the widget.
type Camera struct {
	Controller *panorbit.Controller
	Transform  panorbit.Transform
	FOV        float32 // vertical field of view in radians
}

// NewCamera creates a camera looking from eye toward focus.
func NewCamera(eye, focus geometry.Vector3) *Camera {
	e := mgl32.Vec3{float32(eye.X), float32(eye.Y), float32(eye.Z)}
	f := mgl32.Vec3{float32(focus.X), float32(focus.Y), float32(focus.Z)}

	c := &Camera{FOV: math.Pi / 4}
	c.Controller = panorbit.New(f, e.Sub(f).Len())
	c.Transform = panorbit.LookAt(e, f)
	return c
}

// Orbit queues a rotation gesture. started marks the first event of a
// drag so the controller can re-evaluate its orientation.
func (c *Camera) Orbit(dx, dy float32, started bool) {
	in := panorbit.FrameInput{
		Motion:       []mgl32.Vec2{{dx, dy}},
		OrbitDown:    true,
		OrbitPressed: started,
	}
	panorbit.Accumulate(&in, c.Controller)
}

// EndOrbit marks the end of a drag gesture.
func (c *Camera) EndOrbit() {
	in := panorbit.FrameInput{OrbitReleased: true}
	panorbit.Accumulate(&in, c.Controller)
}

// Pan queues a translation gesture.
func (c *Camera) Pan(dx, dy float32) {
	in := panorbit.FrameInput{
		Motion:  []mgl32.Vec2{{dx, dy}},
		PanDown: true,
	}
	panorbit.Accumulate(&in, c.Controller)
}

// Zoom queues a scroll gesture.
func (c *Camera) Zoom(dy float32) {
	in := panorbit.FrameInput{Scroll: []mgl32.Vec2{{0, dy}}}
	panorbit.Accumulate(&in, c.Controller)
}

// Step advances the damped camera trajectory one frame and reports
// whether the pose changed.
func (c *Camera) Step(width, height float32) bool {
	proj := panorbit.Projection{
		Perspective: true,
		FOV:         c.FOV,
		Aspect:      width / height,
	}
	return c.Controller.Step(&c.Transform, proj, width, height)
}

// Project maps a world point to widget coordinates. The returned depth
// is the distance along the view direction; points behind the camera
// get a non-positive depth.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	pos := c.Transform.Translation
	position := geometry.NewVector3(float64(pos.X()), float64(pos.Y()), float64(pos.Z()))
	u := c.Transform.Up()
	upHint := geometry.NewVector3(float64(u.X()), float64(u.Y()), float64(u.Z()))
	f := c.Controller.Focus
	focus := geometry.NewVector3(float64(f.X()), float64(f.Y()), float64(f.Z()))

	forward := focus.Sub(position).Normalize()
	right := forward.Cross(upHint).Normalize()
	up := right.Cross(forward).Normalize()

	relative := point.Sub(position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	depth := z
	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(float64(c.FOV) / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, depth
}
