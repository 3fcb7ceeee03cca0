// SPDX-License-Identifier: MIT
// Package: algostep/builder
//
// id_fn.go — pluggable node-id schemes for graph constructors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// IDFn generates a node identifier from its zero-based index.
// It must be deterministic for deterministic schemes; UUIDFn is the one
// deliberate exception (fresh ids per call, uniqueness over replay).
type IDFn func(idx int) string

// DecimalIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) where d = digit count. Never panics.
func DecimalIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns the uppercase Latin letter for idx in [0..25],
// e.g. 0→"A", 25→"Z". Panics outside that range — configure it only for
// graphs of at most 26 nodes.
func LetterIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("LetterIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// UUIDFn ignores idx and returns a fresh UUID string. Use it when graphs
// flow toward a persistence layer that expects globally unique ids.
// Note: graphs built with UUIDFn are NOT reproducible across runs.
func UUIDFn(_ int) string {
	return uuid.NewString()
}
