package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/gorbit/pkg/panorbit"
)

// updateCamera runs one controller step and mirrors the resulting pose
// into the raylib camera.
func (app *App) updateCamera() {
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())
	if width <= 0 || height <= 0 {
		return
	}

	projection := panorbit.Projection{
		Perspective: true,
		FOV:         mgl32.DegToRad(app.Camera.fovy),
		Aspect:      width / height,
	}
	app.Camera.controller.Step(&app.Camera.transform, projection, width, height)

	position := app.Camera.transform.Translation
	focus := app.Camera.controller.Focus
	up := app.Camera.transform.Up()

	app.Camera.camera.Position = rl.Vector3{X: position.X(), Y: position.Y(), Z: position.Z()}
	app.Camera.camera.Target = rl.Vector3{X: focus.X(), Y: focus.Y(), Z: focus.Z()}
	app.Camera.camera.Up = rl.Vector3{X: up.X(), Y: up.Y(), Z: up.Z()}
}

// resetCameraView restores the scene's starting camera pose.
func (app *App) resetCameraView() {
	eye := mgl32.Vec3{
		float32(app.Camera.defaultEye[0]),
		float32(app.Camera.defaultEye[1]),
		float32(app.Camera.defaultEye[2]),
	}
	focus := mgl32.Vec3{
		float32(app.Camera.defaultFocus[0]),
		float32(app.Camera.defaultFocus[1]),
		float32(app.Camera.defaultFocus[2]),
	}
	app.Camera.controller = panorbit.New(focus, app.Camera.defaultRadius)
	app.Camera.transform = panorbit.LookAt(eye, focus)
}
