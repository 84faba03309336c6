package main

import (
	"context"
	"flag"
	"os"

	"periodic-table/internal/config"
	"periodic-table/internal/download"
	"periodic-table/internal/elements"
	"periodic-table/internal/env"
	"periodic-table/internal/graphics"
	"periodic-table/internal/layout"
	"periodic-table/internal/logger"
	"periodic-table/internal/table"
)

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func main() {
	_ = env.Load(".env")
	ov := env.Read()

	configPath := flag.String("config", firstNonEmpty(ov.ConfigPath, config.DefaultPath), "config file (.yaml, .yml, .json or .toml)")
	datasetPath := flag.String("dataset", ov.DatasetPath, "element dataset JSON file or http(s) URL; empty uses the built-in table")
	modeName := flag.String("mode", ov.Mode, "initial layout: grid, block or sphere")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	log := logger.New(firstNonEmpty(ov.LogFile, cfg.LogFile))
	if lvl, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		log.Warnf("config: %v", err)
	} else {
		log.SetLevel(lvl)
	}
	if cfgErr != nil {
		log.Warnf("config: %v; using defaults", cfgErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := firstNonEmpty(*datasetPath, cfg.Dataset)
	if download.IsURL(source) {
		path, err := download.Download(ctx, source, download.CacheDir)
		if err != nil {
			log.Errorf("dataset: %v", err)
			os.Exit(1)
		}
		log.Infof("fetched %s to %s", source, path)
		source = path
	}
	ds, err := elements.Load(source)
	if err != nil {
		log.Errorf("dataset: %v", err)
		os.Exit(1)
	}
	coords, err := layout.Compute(ds.Elements, cfg.Params())
	if err != nil {
		log.Errorf("layout: %v", err)
		os.Exit(1)
	}
	tb, err := table.New(ds.Elements, coords, cfg.TableOptions(), log)
	if err != nil {
		log.Errorf("table: %v", err)
		os.Exit(1)
	}
	log.Infof("loaded %d elements", ds.Len())

	initial := cfg.Mode()
	if *modeName != "" {
		if m, err := layout.ParseMode(*modeName); err != nil {
			log.Warnf("mode: %v", err)
		} else {
			initial = m
		}
	}

	updates, err := config.Watch(ctx, *configPath)
	if err != nil {
		log.Warnf("watch config: %v", err)
	}

	a := newApp(log, cfg, tb, updates)
	if err := tb.SetMode(initial); err != nil {
		log.Errorf("mode: %v", err)
	}
	graphics.Run(a.window, a.update, a.draw, a.unload)
	_ = tb.Close()
}
