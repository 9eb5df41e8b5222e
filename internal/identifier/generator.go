// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identifier derives short QR code identifiers.
package identifier

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"
)

// Length is the number of hex characters in a generated identifier.
const Length = 8

// Generator produces identifiers from a user ID and the current time.
// Two calls for the same user within one millisecond yield the same value;
// callers rely on the store's uniqueness constraint to detect that.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a Generator reading the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock returns a Generator that reads time from now.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate returns the first 8 hex characters of md5("<userID>_<unix millis>").
func (g *Generator) Generate(userID string) string {
	return Derive(userID, g.now())
}

// Derive is the deterministic part of [Generator.Generate].
func Derive(userID string, at time.Time) string {
	sum := md5.Sum([]byte(userID + "_" + strconv.FormatInt(at.UnixMilli(), 10)))
	return hex.EncodeToString(sum[:])[:Length]
}
