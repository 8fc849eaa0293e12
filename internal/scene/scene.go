// Package scene describes the demo world declaratively: rigid bodies,
// static geometry, lights and the starting camera pose. Frontends and the
// physics world are built from a Scene; the package itself has no behavior
// beyond loading.
package scene

import "github.com/philipparndt/gorbit/pkg/geometry"

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Body is a dynamic rigid body, spawned as a cube.
type Body struct {
	Name           string
	Size           geometry.Vector3 // full side lengths
	Mass           float64
	LinearDamping  float64
	AngularDamping float64
	Position       geometry.Vector3
	Color          Color
}

// Box is a static box. Colliders block bodies, visible boxes get drawn;
// the floor slab is a collider with a separate visible top plane.
type Box struct {
	Name     string
	Size     geometry.Vector3
	Position geometry.Vector3
	Color    Color
	Collider bool
	Visible  bool
}

// Light is a point light position; the renderer derives its shading
// direction from the lights' average direction onto the scene.
type Light struct {
	Position geometry.Vector3
}

// Camera is the starting camera pose.
type Camera struct {
	Position geometry.Vector3
	Focus    geometry.Vector3
}

// Scene is the complete world description.
type Scene struct {
	ClearColor Color
	Ambient    float64 // ambient shading floor in [0, 1]
	Gravity    geometry.Vector3
	Timestep   float64 // fixed physics timestep in seconds
	Substeps   int     // integration substeps per timestep
	Camera     Camera
	Bodies     []Body
	Statics    []Box
	Lights     []Light
}

// Default returns the built-in demo scene: two cubes of different mass
// dropped from high up into a shallow walled tray, lit from four sides.
func Default() Scene {
	const (
		cubeSize      = 0.25
		wallHeight    = 0.075
		wallThickness = 0.075
		wallLength    = 4.0
	)
	cubeColor := Color{R: 0.8, G: 0.7, B: 0.6}
	wallColor := Color{R: 0.7, G: 0.7, B: 0.7}

	s := Scene{
		ClearColor: Color{R: 0.98, G: 0.92, B: 0.84},
		Ambient:    0.3,
		Gravity:    geometry.NewVector3(0, -9.81, 0),
		Timestep:   0.05,
		Substeps:   20,
		Camera: Camera{
			Position: geometry.NewVector3(1, 2, 2),
			Focus:    geometry.NewVector3(0, 0, 0),
		},
		Bodies: []Body{
			{
				Name:           "light cube",
				Size:           geometry.NewVector3(cubeSize, cubeSize, cubeSize),
				Mass:           1.0,
				LinearDamping:  0.1,
				AngularDamping: 0.1,
				Position:       geometry.NewVector3(0.5, 100, 0),
				Color:          cubeColor,
			},
			{
				Name:           "heavy cube",
				Size:           geometry.NewVector3(cubeSize, cubeSize, cubeSize),
				Mass:           10.0,
				LinearDamping:  0.02,
				AngularDamping: 0.02,
				Position:       geometry.NewVector3(-0.5, 100, 0),
				Color:          cubeColor,
			},
		},
		Lights: []Light{
			{Position: geometry.NewVector3(5, 5, 0)},
			{Position: geometry.NewVector3(-5, 5, 0)},
			{Position: geometry.NewVector3(0, 5, 5)},
			{Position: geometry.NewVector3(0, 5, -5)},
		},
	}

	side := wallLength - wallThickness
	s.Statics = []Box{
		{
			Name:     "north wall",
			Size:     geometry.NewVector3(side, wallHeight, wallThickness),
			Position: geometry.NewVector3(-wallThickness/2, wallHeight/2, -side/2),
			Color:    wallColor, Collider: true, Visible: true,
		},
		{
			Name:     "east wall",
			Size:     geometry.NewVector3(wallThickness, wallHeight, side),
			Position: geometry.NewVector3(side/2, wallHeight/2, -wallThickness/2),
			Color:    wallColor, Collider: true, Visible: true,
		},
		{
			Name:     "south wall",
			Size:     geometry.NewVector3(side, wallHeight, wallThickness),
			Position: geometry.NewVector3(wallThickness/2, wallHeight/2, side/2),
			Color:    wallColor, Collider: true, Visible: true,
		},
		{
			Name:     "west wall",
			Size:     geometry.NewVector3(wallThickness, wallHeight, side),
			Position: geometry.NewVector3(-side/2, wallHeight/2, wallThickness/2),
			Color:    wallColor, Collider: true, Visible: true,
		},
		{
			Name:     "floor slab",
			Size:     geometry.NewVector3(4, 0.2, 4),
			Position: geometry.NewVector3(0, -0.1, 0),
			Collider: true,
		},
		{
			Name:     "floor plane",
			Size:     geometry.NewVector3(4, 0, 4),
			Position: geometry.NewVector3(0, 0, 0),
			Color:    Color{R: 0.9, G: 0.9, B: 0.9},
			Visible:  true,
		},
	}
	return s
}
