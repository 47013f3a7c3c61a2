// Package cos provides common low-level types and utilities for parsort.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package cos

import (
	"fmt"

	"github.com/benchang323/parsort/cmn/nlog"
)

const assertMsg = "assertion failed"

// NOTE: not to be used in the datapath - consider one of the flavors below.
func Assertf(cond bool, f string, a ...any) {
	if !cond {
		AssertMsg(cond, fmt.Sprintf(f, a...))
	}
}

func Assert(cond bool) {
	if !cond {
		nlog.Flush(true)
		panic(assertMsg)
	}
}

// NOTE: when using Sprintf and such, `if (!cond) { AssertMsg(false, msg) }` is the preferable usage.
func AssertMsg(cond bool, msg string) {
	if !cond {
		nlog.Flush(true)
		panic(assertMsg + ": " + msg)
	}
}

func AssertNoErr(err error) {
	if err != nil {
		nlog.Flush(true)
		panic(err)
	}
}
