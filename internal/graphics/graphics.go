package graphics

import (
	"image/color"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window describes the window opened by Run.
type Window struct {
	Title      string
	Width      int
	Height     int
	TargetFPS  int
	Background color.RGBA
}

// Run opens a resizable window and runs the main loop until it is closed. Each frame it
// calls update with the frame time, clears to w.Background and calls draw. w is read
// every frame, so update may change the background.
// Before returning it calls unload, if set, while the GL context still exists.
// ESC is left to the caller; close via the window button.
func Run(w *Window, update func(dt time.Duration), draw func(), unload func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(int32(w.TargetFPS))
	}

	for !rl.WindowShouldClose() {
		update(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	if unload != nil {
		unload()
	}
}
