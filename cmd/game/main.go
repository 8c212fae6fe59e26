package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"swept-aabb/internal/debug"
	"swept-aabb/internal/graphics"
	"swept-aabb/internal/logger"
	"swept-aabb/internal/physics"
	"swept-aabb/internal/scene"
	"swept-aabb/internal/shape"
	"swept-aabb/internal/simconfig"
	"swept-aabb/internal/timestep"
)

// maxEventLogs caps bounce/impact logging per run so logs/sim.txt stays
// bounded; the simulation bounces forever.
const maxEventLogs = 200

func main() {
	params, err := simconfig.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	prefs := simconfig.LoadPrefs()

	log := logger.New()
	log.Logf("start: step=%.4f speed=%.2f bounds=(%.2f, %.2f)",
		params.Step, params.Speed, params.BoundX, params.BoundY)

	shapes := shape.NewRegistry()
	still := physics.NewBody(
		rl.NewVector3(0, 0, 0),
		uniformScale(params.StillScale),
		shape.Square,
	)
	moving := physics.NewBody(
		rl.NewVector3(params.MovingStart[0], params.MovingStart[1], 0),
		uniformScale(params.MovingScale),
		shape.Square,
	)
	moving.Velocity = rl.NewVector3(-params.Speed, -params.Speed, 0)

	world := physics.NewWorld(moving, still, params.BoundX, params.BoundY)
	events := 0
	world.OnImpact = func(h physics.Hit) {
		events++
		if events <= maxEventLogs {
			log.Logf("impact: t=%.4f normal=(%.0f, %.0f)", h.Time, h.Normal.X, h.Normal.Y)
		}
	}
	world.OnBounce = func(axis byte) {
		events++
		if events <= maxEventLogs {
			log.Logf("boundary bounce on %c", axis)
		}
	}

	stepper := timestep.New(params.Step)
	scn := scene.New(shapes)
	scn.ShowBounds = prefs.ShowBounds
	overlay := debug.New()
	overlay.ShowFPS = prefs.ShowFPS
	overlay.ShowMemAlloc = prefs.ShowMemAlloc

	// The first frame only seeds the clock; ticks start on the second.
	var lastTime float64
	started := false
	update := func() {
		now := graphics.Time()
		if !started {
			lastTime = now
			started = true
			return
		}
		frame := float32(now - lastTime)
		lastTime = now
		stepper.Advance(frame, world.Step)

		if rl.IsKeyPressed(rl.KeyF) {
			overlay.ShowFPS = !overlay.ShowFPS
		}
		if rl.IsKeyPressed(rl.KeyM) {
			overlay.ShowMemAlloc = !overlay.ShowMemAlloc
		}
		if rl.IsKeyPressed(rl.KeyB) {
			scn.ShowBounds = !scn.ShowBounds
		}
	}
	draw := func() {
		scn.Draw(world)
		overlay.Draw(world.Ticks)
	}
	graphics.Run(prefs.TargetFPS, update, draw, shapes.Unload)

	prefs.ShowFPS = overlay.ShowFPS
	prefs.ShowMemAlloc = overlay.ShowMemAlloc
	prefs.ShowBounds = scn.ShowBounds
	if err := simconfig.SavePrefs(prefs); err != nil {
		log.Logf("prefs save failed: %v", err)
	}
	log.Logf("stop: ticks=%d events=%d", world.Ticks, events)
}

func uniformScale(s float32) rl.Vector3 {
	return rl.NewVector3(s, s, s)
}
