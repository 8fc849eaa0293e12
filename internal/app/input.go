package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/gorbit/pkg/panorbit"
)

// gatherInput collects this frame's mouse state for the orbit controller
// and handles the keyboard shortcuts.
func (app *App) gatherInput() panorbit.FrameInput {
	input := panorbit.FrameInput{
		OrbitDown:     rl.IsMouseButtonDown(rl.MouseRightButton),
		PanDown:       rl.IsMouseButtonDown(rl.MouseMiddleButton),
		OrbitPressed:  rl.IsMouseButtonPressed(rl.MouseRightButton),
		OrbitReleased: rl.IsMouseButtonReleased(rl.MouseRightButton),
	}

	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		input.Motion = append(input.Motion, mgl32.Vec2{delta.X, delta.Y})
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		input.Scroll = append(input.Scroll, mgl32.Vec2{0, wheel})
	}

	// Keyboard controls
	if rl.IsKeyPressed(rl.KeySpace) {
		app.Simulation.paused = !app.Simulation.paused
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.restartSimulation()
	}

	return input
}
