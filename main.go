package main

import (
	"fmt"
	"os"

	"github.com/sheikhrachel/go-gol-step/engine"
	"github.com/sheikhrachel/go-gol-step/model"
	"github.com/sheikhrachel/go-gol-step/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}
	if err = config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var (
		eng     = engine.New(config)
		stats   = utils.NewStats()
		results = evaluateSamples(eng, model.Samples())
	)

	displayConfig(os.Stdout, config)
	for _, res := range results {
		displayResult(os.Stdout, os.Stderr, res, stats)
	}
	displaySummary(os.Stdout, stats)
}
