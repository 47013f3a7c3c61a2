// Package cos provides common low-level types and utilities for parsort.
/*
 * Copyright (c) 2026, the parsort authors. All rights reserved.
 */
package cos

// NOTE: BEWARE: `shortid` uses hardcoded 01/2016 as a starting timestamp
import (
	"math/rand"

	"github.com/teris-io/shortid"
)

const (
	// alphabet similar to shortid.DEFAULT_ABC, minus visually confusing pairs
	uuidABC = "-5nZJDft6LuzsjGNpPwY7rQa39vehq4i1cV2FROo8yHSlC0BUEdWbIxMmTgKXAk_"

	lenRunID = 9
)

var sid *shortid.Shortid

func InitShortID(seed uint64) {
	sid = shortid.MustNew(1 /*worker*/, uuidABC, seed)
}

// GenRunID generates a unique and user-friendly ID to correlate log lines
// produced by one sort invocation across its process tree.
func GenRunID() string {
	if sid != nil {
		if id, err := sid.Generate(); err == nil && id[0] != '-' && id[0] != '_' {
			return id
		}
	}
	return randString(lenRunID)
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
