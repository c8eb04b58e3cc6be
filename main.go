package main

import (
	"flag"
	"fmt"
	"os"

	"elevatorsim/config"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML simulation config")
	envPath := flag.String("env", ".env", "Path to an optional .env file with ELEVSIM_* overrides")
	rounds := flag.Int("rounds", 0, "Number of rounds to simulate, overrides the config")
	headless := flag.Bool("headless", false, "Do not render simulation events")
	flag.Parse()
	defer glog.Flush()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			glog.Exitf("Loading config: %v", err)
		}
	}
	if err := cfg.ApplyEnv(*envPath); err != nil {
		glog.Exitf("Applying environment: %v", err)
	}
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}
	if *headless {
		cfg.Headless = true
	}

	sim, err := cfg.NewSimulation(os.Stderr)
	if err != nil {
		glog.Exitf("Creating simulation: %v", err)
	}

	stats, err := sim.Run(cfg.Rounds)
	if err != nil {
		glog.Exitf("Running simulation: %v", err)
	}

	out, err := yaml.Marshal(stats)
	if err != nil {
		glog.Exitf("Encoding stats: %v", err)
	}
	fmt.Print(string(out))
}
