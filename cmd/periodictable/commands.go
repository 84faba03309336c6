package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"periodic-table/internal/commands"
)

var (
	errNoCard     = errors.New("no such card")
	errNoFocus    = errors.New("no focused card")
	errShowOrHide = errors.New("want --show or --hide")
)

// registerCommands adds the console commands to a.reg.
func registerCommands(a *app) {
	a.reg.Register("mode", "mode <grid|block|sphere>: switch layout", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("mode: want one layout name, got %d", len(args))
		}
		return a.setMode(args[0])
	})

	focusFS := commands.NewFlagSet("focus")
	all := focusFS.Bool("all", false, "frame every card")
	target := focusFS.String("card", "", "atomic number or symbol")
	a.reg.Register("focus", "focus [--all] [--card N|SYMBOL]: fly the camera", focusFS, func(args []string) error {
		name := *target
		if name == "" && len(args) > 0 {
			name = args[0]
		}
		if *all || name == "" {
			a.table.FocusAllCards()
			return nil
		}
		i := a.findCard(name)
		if i < 0 {
			return fmt.Errorf("%w: %q", errNoCard, name)
		}
		if i == a.table.Focused() {
			a.table.FocusOnCard(i)
			return nil
		}
		a.table.Select(i)
		return nil
	})

	a.reg.Register("flip", "flip: turn the focused card over", nil, func([]string) error {
		if !a.table.Flip() {
			return errNoFocus
		}
		return nil
	})

	a.reg.Register("camerainfo", "camerainfo: log camera position and target", nil, func([]string) error {
		a.cameraInfo()
		return nil
	})

	toggle := func(name, what string, set func(bool)) {
		fs := commands.NewFlagSet(name)
		show := fs.Bool("show", false, "show "+what)
		hide := fs.Bool("hide", false, "hide "+what)
		a.reg.Register(name, name+" --show|--hide: "+what, fs, func([]string) error {
			if *show == *hide {
				return fmt.Errorf("%s: %w", name, errShowOrHide)
			}
			set(*show)
			return nil
		})
	}
	toggle("fps", "FPS counter", a.debug.SetShowFPS)
	toggle("memalloc", "heap size", a.debug.SetShowMemAlloc)
	toggle("status", "mode and focus", func(show bool) { a.debug.ShowStatus = show })
}

// findCard resolves an atomic number or a symbol to a card index, -1 if none.
func (a *app) findCard(name string) int {
	name = strings.TrimSpace(name)
	if n, err := strconv.Atoi(name); err == nil {
		return a.table.Find(n, "")
	}
	return a.table.Find(0, name)
}
