// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd007-reporting R3 (JSON output);
//
//	docs/ARCHITECTURE § Reporting.
package report

import (
	"github.com/petar-djukic/include-audit/internal/analysis"
)

// JSONReference is one reference in machine-readable form.
type JSONReference struct {
	Location  string   `json:"location"`
	Symbol    string   `json:"symbol"`
	Kind      string   `json:"kind"`
	Providers []string `json:"providers,omitempty"`
	Satisfied bool     `json:"satisfied"`
}

// JSONInclude is one unused include in machine-readable form.
type JSONInclude struct {
	Line      int    `json:"line"`
	Directive string `json:"directive"`
}

// JSONReport is the full analysis result for one unit.
type JSONReport struct {
	Unit       string          `json:"unit"`
	References []JSONReference `json:"references,omitempty"`
	Unused     []JSONInclude   `json:"unused,omitempty"`
}

// JSON converts a unit's result for serialization.
func (r *Reporter) JSON(unit string, res analysis.Result) JSONReport {
	out := JSONReport{Unit: unit}
	for _, ref := range res.References {
		jr := JSONReference{
			Location:  r.Location(ref.Pos),
			Symbol:    ref.Symbol.Name(),
			Kind:      ref.Symbol.NodeName(),
			Satisfied: ref.Satisfied,
		}
		for _, h := range ref.Providers {
			jr.Providers = append(jr.Providers, h.Name(r.files))
		}
		out.References = append(out.References, jr)
	}
	for _, inc := range res.Unused {
		out.Unused = append(out.Unused, JSONInclude{Line: inc.Line, Directive: inc.Written()})
	}
	return out
}
