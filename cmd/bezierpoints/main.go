package main

import (
	"os"
	"path/filepath"
	"strings"

	"bezierpoints/internal/config"
	"bezierpoints/internal/game"
	"bezierpoints/internal/logging"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configErr := config.Load(".")
	cfg := config.Get()
	log := logging.New(cfg.LogLevel, nil)
	if configErr != nil {
		log.Fatal().Err(configErr).Msg("config")
	}

	if err := game.New(cfg, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}
