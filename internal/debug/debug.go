package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var statusColor = rl.NewColor(0, 102, 153, 255)

// Debug holds the runtime overlays: FPS, heap size and a status line. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
	status       string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetStatus replaces the status line, e.g. the layout mode and the focused card.
func (d *Debug) SetStatus(status string) {
	d.status = status
}

// SetFont sets the font used to draw the overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// tick counts a frame and refreshes the cached texts every updateInterval frames or when
// an overlay was just turned on.
func (d *Debug) tick(fps int32) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if d.ShowFPS && (update || d.lastFpsText == "") {
		d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
	}
	if d.ShowMemAlloc && (update || d.lastMemText == "") {
		runtime.ReadMemStats(&d.lastMemStats)
		mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
		d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
	}
}

// Lines returns the overlay texts to draw, top to bottom.
func (d *Debug) Lines() []string {
	var out []string
	if d.ShowFPS && d.lastFpsText != "" {
		out = append(out, d.lastFpsText)
	}
	if d.ShowMemAlloc && d.lastMemText != "" {
		out = append(out, d.lastMemText)
	}
	if d.ShowStatus && d.status != "" {
		out = append(out, d.status)
	}
	return out
}

// Draw renders the enabled overlays right-aligned at the top. Call after the scene and
// the console in the draw loop.
func (d *Debug) Draw() {
	d.tick(rl.GetFPS())
	screenW := float32(rl.GetScreenWidth())
	y := float32(fpsPadding)
	for _, text := range d.Lines() {
		c := rl.Green
		if text == d.status {
			c = statusColor
		}
		if d.font.Texture.ID != 0 {
			sz := float32(fpsFontSize)
			w := rl.MeasureTextEx(d.font, text, sz, 1).X
			rl.DrawTextEx(d.font, text, rl.NewVector2(screenW-w-fpsPadding, y), sz, 1, c)
		} else {
			w := float32(rl.MeasureText(text, fpsFontSize))
			rl.DrawText(text, int32(screenW-w-fpsPadding), int32(y), fpsFontSize, c)
		}
		y += fpsLineHeight
	}
}
