package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/philipparndt/gorbit/pkg/geometry"
)

// JSON scene file structures. Every section is optional; omitted sections
// keep the built-in defaults, provided lists replace the defaults wholesale.

type vectorData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type colorData struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type bodyData struct {
	Name           string     `json:"name,omitempty"`
	Size           vectorData `json:"size"`
	Mass           float64    `json:"mass"`
	LinearDamping  float64    `json:"linearDamping"`
	AngularDamping float64    `json:"angularDamping"`
	Position       vectorData `json:"position"`
	Color          colorData  `json:"color"`
}

type boxData struct {
	Name     string     `json:"name,omitempty"`
	Size     vectorData `json:"size"`
	Position vectorData `json:"position"`
	Color    colorData  `json:"color"`
	Collider bool       `json:"collider"`
	Visible  bool       `json:"visible"`
}

type lightData struct {
	Position vectorData `json:"position"`
}

type cameraData struct {
	Position vectorData `json:"position"`
	Focus    vectorData `json:"focus"`
}

type sceneData struct {
	ClearColor *colorData  `json:"clearColor,omitempty"`
	Ambient    *float64    `json:"ambient,omitempty"`
	Gravity    *vectorData `json:"gravity,omitempty"`
	Timestep   *float64    `json:"timestep,omitempty"`
	Substeps   *int        `json:"substeps,omitempty"`
	Camera     *cameraData `json:"camera,omitempty"`
	Bodies     []bodyData  `json:"bodies,omitempty"`
	Statics    []boxData   `json:"statics,omitempty"`
	Lights     []lightData `json:"lights,omitempty"`
}

func toVector(d vectorData) geometry.Vector3 {
	return geometry.NewVector3(d.X, d.Y, d.Z)
}

func toColor(d colorData) Color {
	return Color{R: d.R, G: d.G, B: d.B}
}

// Load reads a scene file and applies it on top of the built-in defaults.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene file: %w", err)
	}

	var file sceneData
	if err := json.Unmarshal(data, &file); err != nil {
		return Scene{}, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	s := Default()
	if file.ClearColor != nil {
		s.ClearColor = toColor(*file.ClearColor)
	}
	if file.Ambient != nil {
		s.Ambient = *file.Ambient
	}
	if file.Gravity != nil {
		s.Gravity = toVector(*file.Gravity)
	}
	if file.Timestep != nil {
		s.Timestep = *file.Timestep
	}
	if file.Substeps != nil {
		s.Substeps = *file.Substeps
	}
	if file.Camera != nil {
		s.Camera = Camera{
			Position: toVector(file.Camera.Position),
			Focus:    toVector(file.Camera.Focus),
		}
	}
	if file.Bodies != nil {
		s.Bodies = make([]Body, len(file.Bodies))
		for i, b := range file.Bodies {
			s.Bodies[i] = Body{
				Name:           b.Name,
				Size:           toVector(b.Size),
				Mass:           b.Mass,
				LinearDamping:  b.LinearDamping,
				AngularDamping: b.AngularDamping,
				Position:       toVector(b.Position),
				Color:          toColor(b.Color),
			}
		}
	}
	if file.Statics != nil {
		s.Statics = make([]Box, len(file.Statics))
		for i, b := range file.Statics {
			s.Statics[i] = Box{
				Name:     b.Name,
				Size:     toVector(b.Size),
				Position: toVector(b.Position),
				Color:    toColor(b.Color),
				Collider: b.Collider,
				Visible:  b.Visible,
			}
		}
	}
	if file.Lights != nil {
		s.Lights = make([]Light, len(file.Lights))
		for i, l := range file.Lights {
			s.Lights[i] = Light{Position: toVector(l.Position)}
		}
	}
	return s, nil
}
