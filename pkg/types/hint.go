// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analysis-core R2 (ranking hints).
package types

// Hint is a bitset of ranking signals attached to a candidate Location
// or Header. Hints accumulate by OR as candidates flow through the
// resolution chain and are never cleared.
type Hint uint8

const (
	// HintComplete marks a provider that supplies a full definition
	// where one is often needed (tags, class templates, function
	// templates).
	HintComplete Hint = 1 << iota
	// HintNameMatch marks a header whose filename stem matches the
	// symbol's name case-insensitively.
	HintNameMatch
)

// HintNone is the empty hint set.
const HintNone Hint = 0

// Has reports whether all bits of h2 are set in h.
func (h Hint) Has(h2 Hint) bool {
	return h&h2 == h2
}

// Hinted pairs a value with its accumulated hints.
type Hinted[T any] struct {
	Value T
	Hint  Hint
}
