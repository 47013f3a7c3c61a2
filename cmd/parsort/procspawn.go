// parsort sorts a file of fixed-width signed 64-bit integers in place.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package main

import (
	"os"
	"os/exec"
	"strconv"

	"github.com/benchang323/parsort/sorter"
)

// procSpawner implements sorter.Spawner by re-executing this binary on the
// same file: each child maps the file MAP_SHARED, sorts its assigned span
// (recursively spawning further processes), and exits nonzero on failure.
// The resulting binary process tree mirrors the split tree of the sort.
type procSpawner struct {
	exe    string
	fname  string
	runID  string
	logDir string
	thresh int
}

func newProcSpawner(fname, runID string, cfg *config) (*procSpawner, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return &procSpawner{
		exe:    exe,
		fname:  fname,
		runID:  runID,
		logDir: cfg.LogDir,
		thresh: cfg.Threshold,
	}, nil
}

func (ps *procSpawner) Run(span sorter.Span) error {
	args := []string{
		"--child", "--procs",
		"--begin", strconv.Itoa(span.Begin),
		"--end", strconv.Itoa(span.End),
		"--threshold", strconv.Itoa(ps.thresh),
		"--run-id", ps.runID,
	}
	if ps.logDir != "" {
		args = append(args, "--log-dir", ps.logDir)
	}
	args = append(args, ps.fname)

	cmd := exec.Command(ps.exe, args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return sorter.NewSpawnError(span, err)
	}
	if err := cmd.Wait(); err != nil {
		return sorter.NewWorkerError(span, err)
	}
	return nil
}
