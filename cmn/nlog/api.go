// Package nlog - parsort logger, provides buffering, timestamping, and severity
// tagged writing to stderr and/or log files
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package nlog

import "flag"

func InitFlags(flset *flag.FlagSet) {
	flset.BoolVar(&toStderr, "logtostderr", false, "log to standard error instead of files")
	flset.BoolVar(&alsoToStderr, "alsologtostderr", false, "log to standard error as well as files")
}

func Infoln(args ...any)                  { log(sevInfo, 0, "", args...) }
func Infof(format string, args ...any)    { log(sevInfo, 0, format, args...) }
func Warningln(args ...any)               { log(sevWarn, 0, "", args...) }
func Warningf(format string, args ...any) { log(sevWarn, 0, format, args...) }
func Errorln(args ...any)                 { log(sevErr, 0, "", args...) }
func Errorf(format string, args ...any)   { log(sevErr, 0, format, args...) }

func SetTitle(s string) { title = s }

// SetLogDir switches logging from stderr-only to buffered log files under dir.
func SetLogDir(dir string) error {
	mu.Lock()
	defer mu.Unlock()
	if writers[fileInfo] != nil {
		return nil
	}
	logDir = dir
	return openFiles()
}

func InfoLogName() string { return sname() + ".INFO" }
func ErrLogName() string  { return sname() + ".ERROR" }

func Flush(sync bool) { flush(sync) }
