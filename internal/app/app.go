// Package app is the raylib frontend: it loads a scene, runs the physics
// world on a fixed timestep and drives the render camera through the
// pan-orbit controller.
package app

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/philipparndt/gorbit/internal/physics"
	"github.com/philipparndt/gorbit/internal/scene"
	"github.com/philipparndt/gorbit/pkg/geometry"
	"github.com/philipparndt/gorbit/pkg/panorbit"
)

// Config carries the command line options into the frontend.
type Config struct {
	ScenePath string // empty runs the built-in scene
	Width     int32
	Height    int32
	FOV       float32 // vertical field of view in degrees
	FPS       int32
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config) {
	sc := scene.Default()
	if cfg.ScenePath != "" {
		loaded, err := scene.Load(cfg.ScenePath)
		if err != nil {
			fmt.Printf("Error loading scene: %v\n", err)
			os.Exit(1)
		}
		sc = loaded
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(cfg.Width, cfg.Height, "gorbit")
	if !rl.IsWindowReady() {
		fmt.Println("Error: failed to create window")
		os.Exit(1)
	}
	rl.SetTargetFPS(cfg.FPS)

	app := &App{
		Scene: SceneState{scene: sc, path: cfg.ScenePath},
		View:  ViewSettings{showHelp: true, showGrid: true},
	}
	app.Camera.fovy = cfg.FOV
	app.setupCamera(sc)
	app.buildSimulation(sc)
	app.buildRender(sc)

	if cfg.ScenePath != "" {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.Scene.fileWatcher.Close()
		}
	}

	for {
		if rl.WindowShouldClose() {
			break
		}

		if app.consumeReload() {
			app.reloadScene()
		}

		// Update
		input := app.gatherInput()
		panorbit.Accumulate(&input, app.Camera.controller)
		app.updateCamera()
		if !app.Simulation.paused {
			app.Simulation.world.Advance(float64(rl.GetFrameTime()))
		}

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(toRaylibColor(app.Scene.scene.ClearColor))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	app.unloadRender()
	rl.CloseWindow()
}

// setupCamera places the controller at the scene's starting pose.
func (app *App) setupCamera(sc scene.Scene) {
	eye := toVec32(sc.Camera.Position)
	focus := toVec32(sc.Camera.Focus)
	radius := eye.Sub(focus).Len()

	app.Camera.controller = panorbit.New(focus, radius)
	app.Camera.transform = panorbit.LookAt(eye, focus)

	app.Camera.defaultEye = [3]float64{sc.Camera.Position.X, sc.Camera.Position.Y, sc.Camera.Position.Z}
	app.Camera.defaultFocus = [3]float64{sc.Camera.Focus.X, sc.Camera.Focus.Y, sc.Camera.Focus.Z}
	app.Camera.defaultRadius = radius

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: eye.X(), Y: eye.Y(), Z: eye.Z()},
		Target:     rl.Vector3{X: focus.X(), Y: focus.Y(), Z: focus.Z()},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       app.Camera.fovy,
		Projection: rl.CameraPerspective,
	}
}

// buildSimulation creates the physics world from the scene description.
func (app *App) buildSimulation(sc scene.Scene) {
	world := physics.NewWorld(sc.Gravity, sc.Timestep, sc.Substeps)
	for _, b := range sc.Bodies {
		body := physics.NewBody(b.Name, b.Size.Mul(0.5), b.Mass, b.Position)
		body.LinearDamping = b.LinearDamping
		body.AngularDamping = b.AngularDamping
		world.AddBody(body)
	}
	for _, box := range sc.Statics {
		if box.Collider {
			world.AddCollider(box.Position, box.Size)
		}
	}
	app.Simulation.world = world
}

// restartSimulation rebuilds the physics world and points the meshes at
// the fresh bodies, dropping the cubes again.
func (app *App) restartSimulation() {
	app.buildSimulation(app.Scene.scene)
	for i := range app.Render.bodies {
		app.Render.bodies[i].body = app.Simulation.world.Bodies[i]
	}
}

// reloadScene swaps in the changed scene file, rebuilding the world and
// the GPU meshes. The camera keeps its current pose.
func (app *App) reloadScene() {
	loaded, err := scene.Load(app.Scene.path)
	if err != nil {
		fmt.Printf("Error reloading scene: %v\n", err)
		return
	}
	fmt.Printf("Reloaded scene from %s\n", app.Scene.path)

	app.Scene.scene = loaded
	app.buildSimulation(loaded)
	app.unloadRender()
	app.buildRender(loaded)
}

func toVec32(v geometry.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
