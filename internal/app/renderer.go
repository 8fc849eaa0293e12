package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gorbit/internal/physics"
	"github.com/philipparndt/gorbit/internal/scene"
	"github.com/philipparndt/gorbit/pkg/geometry"
)

// buildRender uploads a mesh per body and per visible static box.
// Lighting is baked into the vertex colors so the default material
// can render everything without shaders.
func (app *App) buildRender(sc scene.Scene) {
	app.Render.material = rl.LoadMaterialDefault()
	lightDir := lightDirection(sc)

	for i, b := range sc.Bodies {
		mesh := boxMesh(b.Size, b.Color, lightDir, sc.Ambient)
		app.Render.bodies = append(app.Render.bodies, bodyMesh{
			body: app.Simulation.world.Bodies[i],
			mesh: mesh,
		})
	}

	for _, box := range sc.Statics {
		if !box.Visible {
			continue
		}
		// Zero-height boxes are ground planes, drawn separately.
		if box.Size.Y == 0 {
			app.Render.planes = append(app.Render.planes, box)
			continue
		}
		mesh := boxMesh(box.Size, box.Color, lightDir, sc.Ambient)
		app.Render.statics = append(app.Render.statics, staticMesh{
			mesh: mesh,
			transform: rl.MatrixTranslate(
				float32(box.Position.X), float32(box.Position.Y), float32(box.Position.Z)),
		})
	}
}

func (app *App) unloadRender() {
	for i := range app.Render.bodies {
		rl.UnloadMesh(&app.Render.bodies[i].mesh)
	}
	for i := range app.Render.statics {
		rl.UnloadMesh(&app.Render.statics[i].mesh)
	}
	app.Render.bodies = nil
	app.Render.statics = nil
	app.Render.planes = nil
}

// drawScene renders everything inside the 3D mode block.
func (app *App) drawScene() {
	for _, p := range app.Render.planes {
		center := rl.Vector3{X: float32(p.Position.X), Y: float32(p.Position.Y), Z: float32(p.Position.Z)}
		size := rl.Vector2{X: float32(p.Size.X), Y: float32(p.Size.Z)}
		rl.DrawPlane(center, size, toRaylibColor(p.Color))
	}

	for _, s := range app.Render.statics {
		rl.DrawMesh(s.mesh, app.Render.material, s.transform)
	}

	for _, bm := range app.Render.bodies {
		rl.DrawMesh(bm.mesh, app.Render.material, bodyTransform(bm.body))
	}

	if app.View.showGrid {
		rl.DrawGrid(16, 0.25)
	}
}

// bodyTransform builds the body's pose matrix: rotate about the center,
// then translate to the simulated position.
func bodyTransform(b *physics.Body) rl.Matrix {
	q := rl.Quaternion{
		X: float32(b.Orientation.Imag),
		Y: float32(b.Orientation.Jmag),
		Z: float32(b.Orientation.Kmag),
		W: float32(b.Orientation.Real),
	}
	rotation := rl.QuaternionToMatrix(q)
	translation := rl.MatrixTranslate(
		float32(b.Position.X), float32(b.Position.Y), float32(b.Position.Z))
	return rl.MatrixMultiply(rotation, translation)
}

// lightDirection reduces the scene's point lights to a single average
// direction onto the origin for baked shading.
func lightDirection(sc scene.Scene) geometry.Vector3 {
	if len(sc.Lights) == 0 {
		return geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()
	}
	sum := geometry.NewVector3(0, 0, 0)
	for _, l := range sc.Lights {
		sum = sum.Add(l.Position.Mul(-1).Normalize())
	}
	dir := sum.Mul(1 / float64(len(sc.Lights)))
	if dir.Length() == 0 {
		// Opposing lights cancel out, fall back to straight down.
		return geometry.NewVector3(0, -1, 0)
	}
	return dir.Normalize()
}

// boxMesh builds a box centered on the origin with per-face baked
// lighting in the vertex colors.
func boxMesh(size geometry.Vector3, color scene.Color, lightDir geometry.Vector3, ambient float64) rl.Mesh {
	hx := float32(size.X / 2)
	hy := float32(size.Y / 2)
	hz := float32(size.Z / 2)

	type face struct {
		normal geometry.Vector3
		corner [4]rl.Vector3 // counter-clockwise seen from outside
	}
	faces := []face{
		{geometry.NewVector3(0, 0, 1), [4]rl.Vector3{
			{X: -hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: hz}, {X: hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: hz}}},
		{geometry.NewVector3(0, 0, -1), [4]rl.Vector3{
			{X: hx, Y: -hy, Z: -hz}, {X: -hx, Y: -hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz}, {X: hx, Y: hy, Z: -hz}}},
		{geometry.NewVector3(1, 0, 0), [4]rl.Vector3{
			{X: hx, Y: -hy, Z: hz}, {X: hx, Y: -hy, Z: -hz}, {X: hx, Y: hy, Z: -hz}, {X: hx, Y: hy, Z: hz}}},
		{geometry.NewVector3(-1, 0, 0), [4]rl.Vector3{
			{X: -hx, Y: -hy, Z: -hz}, {X: -hx, Y: -hy, Z: hz}, {X: -hx, Y: hy, Z: hz}, {X: -hx, Y: hy, Z: -hz}}},
		{geometry.NewVector3(0, 1, 0), [4]rl.Vector3{
			{X: -hx, Y: hy, Z: hz}, {X: hx, Y: hy, Z: hz}, {X: hx, Y: hy, Z: -hz}, {X: -hx, Y: hy, Z: -hz}}},
		{geometry.NewVector3(0, -1, 0), [4]rl.Vector3{
			{X: -hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: -hz}, {X: hx, Y: -hy, Z: hz}, {X: -hx, Y: -hy, Z: hz}}},
	}

	triangleCount := len(faces) * 2
	vertexCount := triangleCount * 3
	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	idx := 0
	emit := func(v rl.Vector3, f face, r, g, b uint8) {
		vertices[idx*3+0] = v.X
		vertices[idx*3+1] = v.Y
		vertices[idx*3+2] = v.Z
		normals[idx*3+0] = float32(f.normal.X)
		normals[idx*3+1] = float32(f.normal.Y)
		normals[idx*3+2] = float32(f.normal.Z)
		texcoords[idx*2+0] = 0
		texcoords[idx*2+1] = 0
		colors[idx*4+0] = r
		colors[idx*4+1] = g
		colors[idx*4+2] = b
		colors[idx*4+3] = 255
		idx++
	}

	for _, f := range faces {
		intensity := math.Max(ambient, -f.normal.Dot(lightDir))
		r := shade(color.R, intensity)
		g := shade(color.G, intensity)
		b := shade(color.B, intensity)

		emit(f.corner[0], f, r, g, b)
		emit(f.corner[1], f, r, g, b)
		emit(f.corner[2], f, r, g, b)

		emit(f.corner[0], f, r, g, b)
		emit(f.corner[2], f, r, g, b)
		emit(f.corner[3], f, r, g, b)
	}

	mesh.Vertices = &vertices[0]
	mesh.Normals = &normals[0]
	mesh.Texcoords = &texcoords[0]
	mesh.Colors = &colors[0]

	rl.UploadMesh(&mesh, false)
	return mesh
}

func shade(channel, intensity float64) uint8 {
	v := channel * intensity * 255
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func toRaylibColor(c scene.Color) rl.Color {
	return rl.NewColor(shade(c.R, 1), shade(c.G, 1), shade(c.B, 1), 255)
}
