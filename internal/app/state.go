package app

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gorbit/internal/physics"
	"github.com/philipparndt/gorbit/internal/scene"
	"github.com/philipparndt/gorbit/pkg/panorbit"
	"github.com/philipparndt/gorbit/pkg/watcher"
)

// App groups all runtime state of the raylib frontend.
type App struct {
	Camera     CameraState
	Simulation SimulationState
	Scene      SceneState
	View       ViewSettings
	Render     RenderData
}

// CameraState holds the orbit controller and its raylib mirror
type CameraState struct {
	controller *panorbit.Controller
	transform  panorbit.Transform
	camera     rl.Camera3D
	fovy       float32

	defaultFocus  [3]float64 // starting focus (for reset)
	defaultRadius float32    // starting radius (for reset)
	defaultEye    [3]float64 // starting eye position (for reset)
}

// SimulationState holds the physics world and its pause flag
type SimulationState struct {
	world  *physics.World
	paused bool
}

// SceneState holds the loaded scene and file watching state
type SceneState struct {
	scene scene.Scene
	path  string // empty when running the built-in scene

	fileWatcher *watcher.FileWatcher
	mu          sync.Mutex
	needsReload bool
}

// ViewSettings holds display toggles
type ViewSettings struct {
	showHelp bool
	showGrid bool
}

// bodyMesh pairs a physics body with its uploaded mesh.
type bodyMesh struct {
	body *physics.Body
	mesh rl.Mesh
}

// staticMesh is an uploaded mesh for a static box drawn at a fixed pose.
type staticMesh struct {
	mesh      rl.Mesh
	transform rl.Matrix
}

// RenderData holds GPU resources built from the scene
type RenderData struct {
	material rl.Material
	bodies   []bodyMesh
	statics  []staticMesh
	planes   []scene.Box // zero-height visible boxes drawn as planes
}
