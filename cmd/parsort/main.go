// parsort sorts a file of fixed-width signed 64-bit integers in place,
// fanning the work out across CPU cores via goroutines or, with --procs,
// a tree of cooperating processes sharing one MAP_SHARED mapping.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/benchang323/parsort/cmn/cos"
	"github.com/benchang323/parsort/cmn/nlog"
	"github.com/benchang323/parsort/mmap"
	"github.com/benchang323/parsort/sorter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		nlog.Errorln(err)
		nlog.Flush(true)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "parsort"
	app.Usage = "parallel in-place sort of a file of int64"
	app.ArgsUsage = "FILE"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "threshold, t", Value: defaultThreshold,
			Usage: "span size at or below which a worker sorts sequentially"},
		cli.BoolFlag{Name: "procs, p", Usage: "use child processes instead of goroutines"},
		cli.BoolFlag{Name: "verify", Usage: "fingerprint the array before and after sorting"},
		cli.StringFlag{Name: "config, c", Usage: "JSON config `FILE` (flags take precedence)"},
		cli.StringFlag{Name: "log-dir", Usage: "write buffered logs under `DIR` instead of stderr"},
		cli.StringFlag{Name: "metrics-addr", Usage: "serve prometheus metrics on `ADDR` while sorting"},
		// child re-exec protocol, not for interactive use
		cli.BoolFlag{Name: "child", Hidden: true},
		cli.IntFlag{Name: "begin", Hidden: true},
		cli.IntFlag{Name: "end", Hidden: true},
		cli.StringFlag{Name: "run-id", Hidden: true},
	}
	app.Action = run
	return app
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expecting exactly one argument: the file to sort")
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.LogDir != "" {
		if err := nlog.SetLogDir(cfg.LogDir); err != nil {
			return errors.Wrap(err, "log dir")
		}
	}
	defer nlog.Flush(true)
	cos.InitShortID(uint64(time.Now().UnixNano()))

	fname := c.Args().First()
	arr, err := mmap.Map(fname)
	if err != nil {
		return err
	}
	defer arr.Unmap()

	span := sorter.Span{Begin: 0, End: len(arr.Data)}
	child := c.Bool("child")
	if child {
		span = sorter.Span{Begin: c.Int("begin"), End: c.Int("end")}
	}

	if cfg.MetricsAddr != "" && !child {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
				nlog.Warningf("metrics endpoint: %v", err)
			}
		}()
	}

	runID := c.String("run-id")
	if runID == "" {
		runID = cos.GenRunID()
	}
	var spawn sorter.Spawner
	if cfg.Procs {
		if spawn, err = newProcSpawner(fname, runID, cfg); err != nil {
			return err
		}
	}
	s, err := sorter.New(arr.Data, &sorter.Config{
		Threshold: cfg.Threshold,
		Spawner:   spawn,
		RunID:     runID,
	})
	if err != nil {
		return err
	}

	var fpBefore uint64
	verify := cfg.Verify && !child
	if verify {
		fpBefore = cos.Fingerprint(arr.Data)
	}

	if err := s.SortSpan(span); err != nil {
		return err
	}

	if verify {
		if fp := cos.Fingerprint(arr.Data); fp != fpBefore {
			return errors.Errorf("%s: multiset fingerprint changed: %x != %x", s.RunID(), fp, fpBefore)
		}
		nlog.Infof("%s: fingerprint verified", s.RunID())
	}
	if !child {
		if err := arr.Sync(); err != nil {
			return err
		}
	}
	return nil
}
