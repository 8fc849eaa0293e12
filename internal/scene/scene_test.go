package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultScene(t *testing.T) {
	s := Default()

	if len(s.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(s.Bodies))
	}
	if s.Bodies[0].Mass != 1.0 || s.Bodies[1].Mass != 10.0 {
		t.Errorf("body masses: expected 1 and 10, got %v and %v", s.Bodies[0].Mass, s.Bodies[1].Mass)
	}
	if s.Bodies[0].LinearDamping != 0.1 || s.Bodies[1].LinearDamping != 0.02 {
		t.Errorf("unexpected damping: %v and %v", s.Bodies[0].LinearDamping, s.Bodies[1].LinearDamping)
	}
	if s.Bodies[0].Position.Y != 100 || s.Bodies[1].Position.Y != 100 {
		t.Error("both cubes should drop from y=100")
	}

	if s.Gravity.Y != -9.81 {
		t.Errorf("gravity: expected -9.81, got %v", s.Gravity.Y)
	}
	if s.Timestep != 0.05 || s.Substeps != 20 {
		t.Errorf("timestep config: expected 0.05/20, got %v/%d", s.Timestep, s.Substeps)
	}

	colliders := 0
	for _, b := range s.Statics {
		if b.Collider {
			colliders++
		}
	}
	// Four walls plus the floor slab.
	if colliders != 5 {
		t.Errorf("expected 5 static colliders, got %d", colliders)
	}

	if len(s.Lights) != 4 {
		t.Errorf("expected 4 lights, got %d", len(s.Lights))
	}

	wantRadius := math.Sqrt(1*1 + 2*2 + 2*2)
	if got := s.Camera.Position.Distance(s.Camera.Focus); math.Abs(got-wantRadius) > 1e-10 {
		t.Errorf("camera start radius: expected %v, got %v", wantRadius, got)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	content := `{
		"gravity": {"x": 0, "y": -1.62, "z": 0},
		"bodies": [
			{"name": "moon cube", "size": {"x": 1, "y": 1, "z": 1},
			 "mass": 2, "linearDamping": 0.5, "angularDamping": 0.5,
			 "position": {"x": 0, "y": 10, "z": 0},
			 "color": {"r": 1, "g": 1, "b": 1}}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.Gravity.Y != -1.62 {
		t.Errorf("gravity override: expected -1.62, got %v", s.Gravity.Y)
	}
	if len(s.Bodies) != 1 || s.Bodies[0].Name != "moon cube" {
		t.Errorf("bodies override failed: %+v", s.Bodies)
	}

	// Untouched sections keep the defaults.
	def := Default()
	if s.Timestep != def.Timestep || s.Substeps != def.Substeps {
		t.Error("timestep config should keep defaults")
	}
	if len(s.Statics) != len(def.Statics) {
		t.Error("statics should keep defaults")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing scene file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
