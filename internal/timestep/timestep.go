// Package timestep reconciles variable frame times against a constant physics
// step. Rendering runs as fast as it likes; the simulation only ever advances
// in fixed increments, which is what makes the swept test's [0,1] time
// convention meaningful.
package timestep

// DefaultStep is the fixed physics step in time-units.
const DefaultStep float32 = 0.012

// DefaultMaxFrameTime caps a single frame's contribution to the accumulator,
// so a stall (window drag, breakpoint, scheduling hiccup) does not trigger a
// runaway catch-up burst.
const DefaultMaxFrameTime float32 = 0.25

// Stepper accumulates real elapsed time and spends it in fixed steps.
type Stepper struct {
	Step         float32
	MaxFrameTime float32

	acc float32
}

// New returns a stepper with the given fixed step (DefaultStep if step <= 0)
// and the default frame-time cap.
func New(step float32) *Stepper {
	if step <= 0 {
		step = DefaultStep
	}
	return &Stepper{Step: step, MaxFrameTime: DefaultMaxFrameTime}
}

// Advance folds one frame's elapsed time into the accumulator and calls fn
// once per whole fixed step it covers, always with exactly Step. Time below
// one step carries over to the next frame. Returns the number of steps run,
// which can be zero on a fast frame.
func (s *Stepper) Advance(frameTime float32, fn func(dt float32)) int {
	if frameTime > s.MaxFrameTime {
		frameTime = s.MaxFrameTime
	}
	s.acc += frameTime
	n := 0
	for s.acc >= s.Step {
		fn(s.Step)
		s.acc -= s.Step
		n++
	}
	return n
}

// Pending returns the unspent time carried to the next frame.
func (s *Stepper) Pending() float32 {
	return s.acc
}
