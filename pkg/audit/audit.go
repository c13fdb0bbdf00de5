// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package audit defines the public interface for include-audit, a
// used-symbol and unused-include analyzer for C and C++ translation
// units.
// Implements: prd008-audit-interface R1, R2, R3;
//
//	docs/ARCHITECTURE § Audit Interface.
package audit

import (
	"context"
	"errors"
)

// Error types for the Auditor API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadFailure   = errors.New("failed to load translation unit")
)

// Config configures an Auditor instance.
type Config struct {
	IncludeDirs   []string // -I search directories, in order
	AnalyzeStdlib bool     // also judge angle-bracket includes
	Construction  bool     // constructing an object uses its type
	Members       bool     // member access uses the member
	Operators     bool     // operator calls use the operator function
	Satisfied     bool     // report per-reference provenance
	Fix           bool     // apply removal edits to the units
	Workers       int      // concurrent units (default 4)
	Verbose       bool     // debug logging to stderr
}

// UnusedInclude is one include a unit does not need.
type UnusedInclude struct {
	Line      int    `json:"line"`      // 1-based line of the directive
	Directive string `json:"directive"` // as written, e.g. "<vector>"
	Message   string `json:"message"`   // rendered diagnostic
}

// Provenance is one reference's provider report.
type Provenance struct {
	Location  string   `json:"location"`            // path:line:column of the use
	Symbol    string   `json:"symbol"`              // the used name
	Kind      string   `json:"kind"`                // "class", "function", "macro", ...
	Providers []string `json:"providers,omitempty"` // candidate headers, best first
	Satisfied bool     `json:"satisfied"`           // a written include (or the unit itself) provides it
	Message   string   `json:"message"`             // rendered diagnostic
}

// UnitResult holds the outcome for one translation unit.
type UnitResult struct {
	Unit       string          `json:"unit"`
	Unused     []UnusedInclude `json:"unused,omitempty"`
	References []Provenance    `json:"references,omitempty"` // populated when Config.Satisfied is set
	Fixed      bool            `json:"fixed,omitempty"`      // removal edits were applied
	Err        error           `json:"-"`                    // load or fix failure; analysis fields empty
}

// Auditor analyzes translation units.
type Auditor interface {
	// Run analyzes each unit independently and returns one result per
	// unit, in input order. Unit-level failures land in the result's
	// Err; Run itself fails only on invalid input or context
	// cancellation.
	Run(ctx context.Context, units []string) ([]*UnitResult, error)
}
