package viewer

import (
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gorbit/internal/scene"
	"github.com/philipparndt/gorbit/pkg/geometry"
)

// SceneRenderer renders the scene's boxes as a wireframe. Dragging
// orbits the camera, scrolling zooms; the damped camera motion keeps
// gliding after the gesture ends, driven by an internal ticker.
type SceneRenderer struct {
	widget.BaseWidget
	scene     scene.Scene
	camera    *Camera
	lines     []*canvas.Line
	dragStart *fyne.Position
	width     float64
	height    float64
	stop      chan struct{}
}

// NewSceneRenderer creates a wireframe renderer for the scene.
func NewSceneRenderer(sc scene.Scene) *SceneRenderer {
	r := &SceneRenderer{
		scene:  sc,
		camera: NewCamera(sc.Camera.Position, sc.Camera.Focus),
		lines:  make([]*canvas.Line, 0),
		stop:   make(chan struct{}),
	}
	r.ExtendBaseWidget(r)
	return r
}

// Camera exposes the camera for the surrounding UI.
func (r *SceneRenderer) Camera() *Camera {
	return r.camera
}

// ResetView restores the scene's starting camera pose.
func (r *SceneRenderer) ResetView() {
	r.camera = NewCamera(r.scene.Camera.Position, r.scene.Camera.Focus)
	r.Render(r.width, r.height)
}

// CreateRenderer creates the renderer for the widget.
func (r *SceneRenderer) CreateRenderer() fyne.WidgetRenderer {
	go r.animate()
	return &sceneWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// animate keeps stepping the camera so queued input drains smoothly
// after the gesture ends.
func (r *SceneRenderer) animate() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			fyne.Do(func() {
				if r.width <= 0 || r.height <= 0 {
					return
				}
				if r.camera.Step(float32(r.width), float32(r.height)) {
					r.Render(r.width, r.height)
				}
			})
		}
	}
}

// Render rebuilds the wireframe for the current camera pose.
func (r *SceneRenderer) Render(width, height float64) {
	r.width = width
	r.height = height

	r.lines = make([]*canvas.Line, 0)

	for _, box := range r.scene.Statics {
		if box.Visible {
			r.renderBox(box.Position, box.Size, width, height)
		}
	}
	for _, body := range r.scene.Bodies {
		r.renderBox(body.Position, body.Size, width, height)
	}

	r.Refresh()
}

func (r *SceneRenderer) renderBox(center, size geometry.Vector3, width, height float64) {
	for _, edge := range boxEdges(center, size) {
		x1, y1, z1 := r.camera.Project(edge[0], width, height)
		x2, y2, z2 := r.camera.Project(edge[1], width, height)
		if z1 <= 0 && z2 <= 0 {
			continue
		}

		// Simple depth-based shading, nearer edges darker
		avgZ := (z1 + z2) / 2
		brightness := uint8(math.Max(40, math.Min(200, 40+avgZ*30)))

		line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
		line.StrokeWidth = 1
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		r.lines = append(r.lines, line)
	}
}

// boxEdges returns the 12 edges of an axis-aligned box.
func boxEdges(center, size geometry.Vector3) [][2]geometry.Vector3 {
	half := size.Mul(0.5)
	var corners [8]geometry.Vector3
	for i := 0; i < 8; i++ {
		sx, sy, sz := 1.0, 1.0, 1.0
		if i&1 != 0 {
			sx = -1
		}
		if i&2 != 0 {
			sy = -1
		}
		if i&4 != 0 {
			sz = -1
		}
		corners[i] = center.Add(geometry.NewVector3(half.X*sx, half.Y*sy, half.Z*sz))
	}

	pairs := [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	edges := make([][2]geometry.Vector3, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, [2]geometry.Vector3{corners[p[0]], corners[p[1]]})
	}
	return edges
}

// Dragged handles mouse drag events for orbiting
func (r *SceneRenderer) Dragged(event *fyne.DragEvent) {
	started := r.dragStart == nil
	r.camera.Orbit(event.Dragged.DX, event.Dragged.DY, started)
	r.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (r *SceneRenderer) DragEnd() {
	r.camera.EndOrbit()
	r.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (r *SceneRenderer) Scrolled(event *fyne.ScrollEvent) {
	// Scroll deltas arrive in points, scale them down to wheel steps.
	r.camera.Zoom(event.Scrolled.DY * 0.04)
}

// Stop ends the animation ticker.
func (r *SceneRenderer) Stop() {
	close(r.stop)
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	renderer *SceneRenderer
	objects  []fyne.CanvasObject
}

func (s *sceneWidgetRenderer) Layout(size fyne.Size) {
	s.renderer.Render(float64(size.Width), float64(size.Height))
}

func (s *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (s *sceneWidgetRenderer) Refresh() {
	s.objects = make([]fyne.CanvasObject, 0, len(s.renderer.lines))
	for _, line := range s.renderer.lines {
		s.objects = append(s.objects, line)
	}
	canvas.Refresh(s.renderer)
}

func (s *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *sceneWidgetRenderer) Destroy() {
	s.renderer.Stop()
}
