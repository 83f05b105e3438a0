package main

import (
	"flag"
	"runtime"

	"cityscape/internal/logger"
	"cityscape/internal/util"
	"cityscape/pkg/config"
	"cityscape/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	seed := flag.Int64("seed", 0, "Scene seed (0 uses the configured seed or the clock)")
	level := flag.String("log", "", "Log level override: debug, info, warn, error")
	savePath := flag.String("save-config", "", "Write the effective configuration to this file and exit")
	flag.Parse()

	cfg, cfgErr := config.LoadConfig(*configPath)

	log := logger.NewLogger(cfg.Log.Level)
	if cfg.Log.File != "" {
		multi, err := logger.NewMultiLogger(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			log.Warnf("Logging to console only: %v", err)
		} else {
			log = multi
		}
	}
	defer log.Close()
	if *level != "" {
		log.SetLevel(*level)
	}

	log.Info("Starting city scene...")
	switch {
	case !util.FileExists(*configPath):
		log.Infof("No configuration at %s, using defaults", *configPath)
	case cfgErr != nil:
		log.Warnf("Using default configuration: %v", cfgErr)
	}
	for _, field := range cfg.Validate() {
		log.Warnf("Invalid %s in configuration, using default", field)
	}

	if *savePath != "" {
		if err := config.SaveConfig(cfg, *savePath); err != nil {
			log.Fatalf("Failed to save configuration: %v", err)
		}
		log.Infof("Configuration written to %s", *savePath)
		return
	}

	game, err := engine.NewEngine(cfg, *seed, log)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	log.Info("Engine initialized, starting main loop...")
	game.Run()
}
