// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders analysis results as diagnostics, structured
// JSON, and applicable removal edits.
// Implements: prd007-reporting R1 (diagnostics), R2 (edits), R3 (JSON);
//
//	docs/ARCHITECTURE § Reporting.
package report

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/include-audit/internal/analysis"
	"github.com/petar-djukic/include-audit/internal/record"
	"github.com/petar-djukic/include-audit/pkg/types"
)

// Reporter formats diagnostics for one analyzed unit.
type Reporter struct {
	files types.FileOracle
}

// New creates a Reporter over the unit's file oracle.
func New(files types.FileOracle) *Reporter {
	return &Reporter{files: files}
}

// Location renders a position as path:line:column.
func (r *Reporter) Location(pos types.Position) string {
	return fmt.Sprintf("%s:%d:%d", r.files.Path(pos.File), pos.Line, pos.Column)
}

// Reference renders one reference's provenance, e.g.
//
//	main.cc:7:5: 'Buffer' (class) provided by util/buffer.h, <vector>
//
// A reference with no provider is reported as unsatisfiable; one whose
// providers are all unincluded is reported as missing an include.
func (r *Reporter) Reference(ref analysis.Reference) string {
	loc := r.Location(ref.Pos)
	if len(ref.Providers) == 0 {
		return fmt.Sprintf("%s: '%s' (%s) has no known provider",
			loc, ref.Symbol.Name(), ref.Symbol.NodeName())
	}
	names := make([]string, len(ref.Providers))
	for i, h := range ref.Providers {
		names[i] = h.Name(r.files)
	}
	line := fmt.Sprintf("%s: '%s' (%s) provided by %s",
		loc, ref.Symbol.Name(), ref.Symbol.NodeName(), strings.Join(names, ", "))
	if !ref.Satisfied {
		line += " (no include provides it)"
	}
	return line
}

// Unused renders one unused-include warning.
func (r *Reporter) Unused(inc *record.Include) string {
	return fmt.Sprintf("%s:%d:1: unused include %s",
		r.files.Path(inc.HashPos.File), inc.Line, inc.Written())
}

// Removal is one whole-line deletion edit for an unused include.
type Removal struct {
	Line      int    // 1-based
	Directive string // the spelled target with delimiters, for verification
}

// Removals converts unused includes to line-removal edits, ordered by
// line.
func Removals(unused []*record.Include) []Removal {
	out := make([]Removal, 0, len(unused))
	for _, inc := range unused {
		out = append(out, Removal{Line: inc.Line, Directive: inc.Written()})
	}
	return out
}
