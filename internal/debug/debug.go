package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce
	// allocations.
	updateInterval = 30
)

var overlayColor = rl.NewColor(20, 110, 20, 255)

// Overlay draws runtime counters in the top-right corner: FPS (the original
// demo put this in the window title), physics tick count, and optionally the
// heap allocation. All off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount   uint32
	lastFpsText  string
	lastTickText string
	lastMemText  string
	memStats     runtime.MemStats
}

// New returns an overlay with everything hidden.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders the enabled counters. Call after the scene in the draw loop.
// ticks is the total number of physics steps run so far; it is drawn under
// the FPS line when ShowFPS is on. Text is only recomputed every
// updateInterval frames to limit allocations.
func (o *Overlay) Draw(ticks uint64) {
	o.frameCount++
	update := (o.frameCount % updateInterval) == 0
	if o.ShowFPS && o.lastFpsText == "" {
		update = true
	}
	if o.ShowMemAlloc && o.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if o.ShowFPS {
		if update {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
			o.lastTickText = fmt.Sprintf("Ticks: %d", ticks)
		}
		y = drawLine(o.lastFpsText, screenW, y)
		y = drawLine(o.lastTickText, screenW, y)
	}

	if o.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&o.memStats)
			mb := float64(o.memStats.Alloc) / (1024 * 1024)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawLine(o.lastMemText, screenW, y)
	}
}

// drawLine draws one right-aligned overlay line and returns the next y.
func drawLine(text string, screenW, y int32) int32 {
	if text != "" {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, overlayColor)
	}
	return y + lineHeight
}
