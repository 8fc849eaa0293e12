package panorbit

import "github.com/go-gl/mathgl/mgl32"

// FrameInput is one frame of raw pointer input, gathered by the windowing
// frontend. Motion and Scroll are event queues for the frame; Accumulate
// drains them fully, so unconsumed events never leak into the next frame.
type FrameInput struct {
	// Motion holds pointer motion deltas in pixels.
	Motion []mgl32.Vec2

	// Scroll holds scroll deltas; only the vertical component zooms.
	Scroll []mgl32.Vec2

	// Held state of the two bound buttons. Orbit takes priority: while
	// both are held, motion accumulates as rotation only.
	OrbitDown bool
	PanDown   bool

	// Orbit button transitions this frame.
	OrbitPressed  bool
	OrbitReleased bool
}

// Accumulate folds one frame of raw input into every controller's pending
// deltas and drains the input queues. Motion routes to rotation while the
// orbit button is held, else to pan while the pan button is held; never both
// in one frame. No input is a no-op.
func Accumulate(in *FrameInput, controllers ...*Controller) {
	var pan, rotation mgl32.Vec2
	var scroll float32

	if in.OrbitDown {
		for _, d := range in.Motion {
			rotation = rotation.Add(d)
		}
	} else if in.PanDown {
		for _, d := range in.Motion {
			pan = pan.Add(d)
		}
	}
	for _, d := range in.Scroll {
		scroll += d.Y()
	}
	changed := in.OrbitPressed || in.OrbitReleased

	for _, c := range controllers {
		c.orbitChanged = c.orbitChanged || changed
		c.pan = c.pan.Add(pan.Mul(sensitivity))
		c.rotation = c.rotation.Add(rotation.Mul(sensitivity))
		c.scroll += scroll * sensitivity
	}

	in.Motion = in.Motion[:0]
	in.Scroll = in.Scroll[:0]
}
