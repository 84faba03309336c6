package main

import (
	"fmt"
	"time"

	"periodic-table/internal/commands"
	"periodic-table/internal/config"
	"periodic-table/internal/debug"
	"periodic-table/internal/fonts"
	"periodic-table/internal/graphics"
	"periodic-table/internal/layout"
	"periodic-table/internal/logger"
	"periodic-table/internal/scene"
	"periodic-table/internal/table"
	"periodic-table/internal/terminal"
	"periodic-table/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Toolbar button ids.
const (
	gridButtonID   = "periodicTableModeButton"
	blockButtonID  = "paraflowModeButton"
	sphereButtonID = "sphereModeButton"
	infoButtonID   = "debugGetControlInfoButton"
)

// app owns everything the frame loop touches. All fields are used from the loop only.
type app struct {
	log     *logger.Logger
	cfg     config.Config
	table   *table.Table
	scene   *scene.Scene
	ui      *ui.Engine
	toolbar *ui.Toolbar
	detail  *ui.DetailPanel
	term    *terminal.Terminal
	debug   *debug.Debug
	reg     *commands.Registry
	window  *graphics.Window
	updates <-chan config.Update
	started bool
}

func newApp(log *logger.Logger, cfg config.Config, tb *table.Table, updates <-chan config.Update) *app {
	a := &app{
		log:     log,
		cfg:     cfg,
		table:   tb,
		scene:   scene.New(tb, sceneStyle(cfg)),
		ui:      ui.New(),
		detail:  ui.NewDetailPanel(),
		debug:   debug.New(),
		reg:     commands.NewRegistry(log.Log),
		updates: updates,
		window: &graphics.Window{
			Title:      cfg.Window.Title,
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			TargetFPS:  cfg.Window.TargetFPS,
			Background: background(cfg),
		},
	}
	a.toolbar = ui.NewToolbar(
		ui.Button{ID: gridButtonID, Label: "Periodic Table", Action: a.modeAction(layout.ModeGrid)},
		ui.Button{ID: blockButtonID, Label: "Paraflow", Action: a.modeAction(layout.ModeBlock)},
		ui.Button{ID: sphereButtonID, Label: "Sphere", Action: a.modeAction(layout.ModeSphere)},
		ui.Button{ID: infoButtonID, Label: "ControlInfo", Action: a.cameraInfo},
	)
	a.term = terminal.New(log, a.reg)
	a.debug.SetShowFPS(cfg.Debug.ShowFPS)
	a.debug.SetShowMemAlloc(cfg.Debug.ShowMemAlloc)
	registerCommands(a)
	return a
}

func sceneStyle(cfg config.Config) scene.Style {
	c, err := config.ParseColor(cfg.Card.Color)
	if err != nil {
		c, _ = config.ParseColor(config.Default().Card.Color)
	}
	return scene.Style{Card: c, PanelAlpha: cfg.Card.PanelOpacity, TextAlpha: cfg.Card.TextOpacity}
}

func background(cfg config.Config) rl.Color {
	c, err := config.ParseColor(cfg.Background)
	if err != nil {
		c, _ = config.ParseColor(config.Default().Background)
	}
	return c
}

func (a *app) modeAction(m layout.Mode) func() {
	return func() {
		if err := a.setMode(string(m)); err != nil {
			a.log.Errorf("%v", err)
		}
	}
}

// setMode switches the layout by name or alias.
func (a *app) setMode(name string) error {
	m, err := layout.ParseMode(name)
	if err != nil {
		a.log.Warnf("%v", err)
		return err
	}
	return a.table.SetMode(m)
}

func (a *app) cameraInfo() {
	a.log.Infof("%s", a.table.CameraInfo())
}

// start loads GPU-backed resources once the window exists.
func (a *app) start() {
	a.started = true
	if a.cfg.Stylesheet != "" {
		if err := a.ui.LoadCSS(a.cfg.Stylesheet); err != nil {
			a.log.Warnf("stylesheet %s: %v", a.cfg.Stylesheet, err)
		}
	}
	if a.cfg.Font == "" {
		return
	}
	path, err := fonts.Resolve(a.cfg.Font)
	if err != nil {
		a.log.Warnf("font: %v", err)
		return
	}
	if err := a.ui.LoadFont(path); err != nil {
		a.log.Warnf("font %s: %v", path, err)
		return
	}
	f := a.ui.Font()
	a.scene.SetFont(f)
	a.term.SetFont(f)
	a.debug.SetFont(f)
	a.log.Infof("font %s", path)
}

// drainUpdates applies reloaded configs without blocking the frame.
func (a *app) drainUpdates() {
	if a.updates == nil {
		return
	}
	for {
		select {
		case u, ok := <-a.updates:
			if !ok {
				a.updates = nil
				return
			}
			if u.Err != nil {
				a.log.Warnf("config reload: %v", u.Err)
				continue
			}
			a.apply(u.Config)
		default:
			return
		}
	}
}

// apply takes the live settings of a reloaded config: colors, overlays and stylesheet.
// Geometry and timing stay as they were at startup.
func (a *app) apply(cfg config.Config) {
	old := a.cfg
	a.cfg = cfg
	a.scene.SetStyle(sceneStyle(cfg))
	a.window.Background = background(cfg)
	a.debug.SetShowFPS(cfg.Debug.ShowFPS)
	a.debug.SetShowMemAlloc(cfg.Debug.ShowMemAlloc)
	if cfg.Stylesheet != old.Stylesheet {
		if cfg.Stylesheet == "" {
			if sheet, err := ui.ParseCSS(ui.DefaultCSS); err == nil {
				a.ui.SetStylesheet(sheet)
			}
		} else if err := a.ui.LoadCSS(cfg.Stylesheet); err != nil {
			a.log.Warnf("stylesheet %s: %v", cfg.Stylesheet, err)
		}
	}
	if cfg.Params() != old.Params() || cfg.Animation != old.Animation || cfg.Camera != old.Camera {
		a.log.Infof("config reloaded; layout and animation changes apply after restart")
		return
	}
	a.log.Infof("config reloaded")
}

func (a *app) handleKeys() {
	if a.term.IsOpen() {
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		a.modeAction(layout.ModeGrid)()
	case rl.IsKeyPressed(rl.KeyTwo):
		a.modeAction(layout.ModeBlock)()
	case rl.IsKeyPressed(rl.KeyThree):
		a.modeAction(layout.ModeSphere)()
	case rl.IsKeyPressed(rl.KeyF):
		a.table.FocusAllCards()
	}
}

func (a *app) update(dt time.Duration) {
	if !a.started {
		a.start()
	}
	a.drainUpdates()
	a.term.Update()
	a.handleKeys()
	a.ui.SetNodes(a.nodes())
	a.scene.Update(dt, a.ui)
	a.debug.SetStatus(a.status())
}

// nodes returns the toolbar plus the detail panel when a card is flipped.
func (a *app) nodes() []*ui.Node {
	nodes := a.toolbar.Nodes()
	return a.detail.AppendNodes(nodes, a.selection())
}

func (a *app) selection() *ui.Detail {
	c := a.table.Card(a.table.Selected())
	if c == nil {
		return nil
	}
	return &ui.Detail{
		Number:       c.Element.Number,
		Symbol:       c.Element.Symbol,
		Name:         c.Element.Name,
		Mass:         c.Mass(),
		DiscoveredBy: c.Element.DiscoveredBy,
	}
}

func (a *app) status() string {
	focus := "none"
	if c := a.table.Card(a.table.Focused()); c != nil {
		focus = c.Element.Symbol
	}
	return fmt.Sprintf("mode %s, focus %s", a.table.Mode(), focus)
}

func (a *app) draw() {
	a.scene.Draw()
	a.ui.Draw()
	a.term.Draw()
	a.debug.Draw()
}

func (a *app) unload() {
	a.scene.Unload()
	a.ui.Unload()
}
