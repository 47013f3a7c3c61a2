// Package nlog - parsort logger, provides buffering, timestamping, and severity
// tagged writing to stderr and/or log files
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package nlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"
)

const nlogBufSize = 32 * 1024

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

var sevTag = [...]byte{'I', 'W', 'E'}

// indices into the two log sinks: .INFO gets everything, .ERROR warnings and up
const (
	fileInfo = iota
	fileErr
)

var (
	mu           sync.Mutex
	toStderr     bool
	alsoToStderr bool
	logDir       string
	title        = "parsort"
	files        [2]*os.File
	writers      [2]*bufio.Writer
)

func sname() string {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return title + "." + host + "." + strconv.Itoa(os.Getpid())
}

// called under mu
func openFiles() error {
	names := [2]string{sname() + ".INFO", sname() + ".ERROR"}
	for i, name := range names {
		fh, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		files[i] = fh
		writers[i] = bufio.NewWriterSize(fh, nlogBufSize)
	}
	return nil
}

func formatHdr(sev severity, depth int, line *[]byte) {
	*line = append(*line, sevTag[sev], ' ')
	*line = time.Now().AppendFormat(*line, "15:04:05.000000")
	*line = append(*line, ' ')
	if _, file, ln, ok := runtime.Caller(3 + depth); ok {
		*line = append(*line, filepath.Base(file)...)
		*line = append(*line, ':')
		*line = strconv.AppendInt(*line, int64(ln), 10)
		*line = append(*line, ' ')
	}
}

func log(sev severity, depth int, format string, args ...any) {
	var line []byte
	formatHdr(sev, depth, &line)
	if format == "" {
		line = fmt.Appendln(line, args...)
	} else {
		line = fmt.Appendf(line, format, args...)
		if line[len(line)-1] != '\n' {
			line = append(line, '\n')
		}
	}

	mu.Lock()
	defer mu.Unlock()

	if toStderr || alsoToStderr || writers[fileInfo] == nil || sev >= sevErr {
		os.Stderr.Write(line)
	}
	if writers[fileInfo] == nil {
		return
	}
	writers[fileInfo].Write(line)
	if sev >= sevWarn {
		writers[fileErr].Write(line)
	}
}

func flush(sync bool) {
	mu.Lock()
	defer mu.Unlock()
	for i, w := range writers {
		if w == nil {
			continue
		}
		w.Flush()
		if sync {
			files[i].Sync()
		}
	}
}
