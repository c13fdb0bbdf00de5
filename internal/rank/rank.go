// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rank orders candidate headers for a symbol.
// Implements: prd005-resolution R3 (candidate ranking);
//
//	docs/ARCHITECTURE § Resolution Chain.
package rank

import (
	"sort"

	"github.com/petar-djukic/include-audit/pkg/types"
)

// Headers deduplicates and ranks candidate headers. Duplicate headers
// merge by OR-ing their hints, so a header that is complete in one
// redeclaration and name-matched in another keeps both signals. The
// result is ordered best first: name-matched headers before the rest,
// then complete ones, ties broken by the deterministic header order.
func Headers(candidates []types.Hinted[types.Header]) []types.Header {
	if len(candidates) == 0 {
		return nil
	}
	merged := make([]types.Hinted[types.Header], len(candidates))
	copy(merged, candidates)
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Value.Less(merged[j].Value)
	})

	out := merged[:1]
	for _, c := range merged[1:] {
		if c.Value == out[len(out)-1].Value {
			out[len(out)-1].Hint |= c.Hint
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return score(out[i].Hint) > score(out[j].Hint)
	})

	result := make([]types.Header, len(out))
	for i, c := range out {
		result[i] = c.Value
	}
	return result
}

// score orders hints: a name match dominates completeness.
func score(h types.Hint) int {
	s := 0
	if h.Has(types.HintNameMatch) {
		s |= 2
	}
	if h.Has(types.HintComplete) {
		s |= 1
	}
	return s
}
