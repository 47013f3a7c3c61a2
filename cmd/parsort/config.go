// parsort sorts a file of fixed-width signed 64-bit integers in place.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package main

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Sequential cutoff when neither flag nor config specifies one. Splitting
// below a few KiB of elements costs more in spawn overhead than the
// parallelism buys back.
const defaultThreshold = 0x3000

var js = jsoniter.ConfigFastest

type config struct {
	LogDir      string `json:"log_dir"`
	MetricsAddr string `json:"metrics_addr"`
	Threshold   int    `json:"threshold"`
	Procs       bool   `json:"procs"`
	Verify      bool   `json:"verify"`
}

// loadConfig reads the optional JSON config file and overlays any explicitly
// set command-line flags on top of it.
func loadConfig(c *cli.Context) (*config, error) {
	cfg := &config{Threshold: defaultThreshold}
	if path := c.String("config"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "config")
		}
		if err := js.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "config %s", path)
		}
	}
	if c.IsSet("threshold") || c.IsSet("t") {
		cfg.Threshold = c.Int("threshold")
	}
	if c.Bool("procs") {
		cfg.Procs = true
	}
	if c.Bool("verify") {
		cfg.Verify = true
	}
	if c.IsSet("log-dir") {
		cfg.LogDir = c.String("log-dir")
	}
	if c.IsSet("metrics-addr") {
		cfg.MetricsAddr = c.String("metrics-addr")
	}
	if cfg.Threshold < 0 {
		return nil, errors.Errorf("invalid threshold %d", cfg.Threshold)
	}
	return cfg, nil
}
