package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawUI draws the 2D overlay: status readout and the help panel.
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)

	focus := app.Camera.controller.Focus
	status := fmt.Sprintf("Focus: (%.2f, %.2f, %.2f)  Radius: %.2f",
		focus.X(), focus.Y(), focus.Z(), app.Camera.controller.Radius)
	rl.DrawText(status, 10, y, 18, rl.DarkGray)
	y += lineHeight

	if app.Simulation.paused {
		rl.DrawText("PAUSED", 10, y, 18, rl.Maroon)
		y += lineHeight
	}

	if app.View.showHelp {
		y += lineHeight
		help := []string{
			"Right drag   orbit",
			"Middle drag  pan",
			"Wheel        zoom",
			"Space        pause physics",
			"R            restart simulation",
			"Home         reset camera",
			"G            toggle grid",
			"H            toggle this help",
		}
		for _, line := range help {
			rl.DrawText(line, 10, y, 16, rl.Gray)
			y += lineHeight
		}
	}

	rl.DrawFPS(int32(rl.GetScreenWidth())-100, 10)
}
