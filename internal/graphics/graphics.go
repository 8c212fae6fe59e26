package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "Swept AABB 2D Collision"
)

// Run opens the window and drives the main loop. Each frame it calls update
// (time measurement and physics ticks), then clears the screen and calls draw
// (scene plus overlays). shutdown, if non-nil, runs after the loop exits but
// before the window closes, so GPU resources can still be unloaded there.
//
// targetFPS caps rendering when > 0; the simulation rate is governed by the
// fixed timestep either way, so an uncapped loop just renders more frames per
// physics tick.
func Run(targetFPS int32, update, draw, shutdown func()) {
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()
	if shutdown != nil {
		defer shutdown()
	}

	if targetFPS > 0 {
		rl.SetTargetFPS(targetFPS)
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw()
		rl.EndDrawing()
	}
}

// Time returns the monotonic wall-clock time in seconds since the window
// opened. The scheduler measures frame deltas against it.
func Time() float64 {
	return rl.GetTime()
}
