// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analysis-core R1.2 (Location);
//
//	docs/ARCHITECTURE § Data Model.
package types

// StdSymbol is a standard-library logical symbol together with its
// canonical logical header, e.g. {"std::vector", "<vector>"}.
type StdSymbol struct {
	Name   string
	Header string // canonical spelling, including angle brackets
}

// LocationKind discriminates where a symbol is provided.
type LocationKind int

const (
	// LocPhysical is a position in physical source.
	LocPhysical LocationKind = iota
	// LocStdlib is a logical standard-library entry.
	LocStdlib
)

// Location is one place where a symbol is provided (not where it is
// used): a physical source position, or a logical standard-library
// entry. The inactive payload field is always zero.
type Location struct {
	Kind LocationKind
	Pos  Position  // LocPhysical
	Std  StdSymbol // LocStdlib
}

// PhysicalLocation wraps a source position.
func PhysicalLocation(p Position) Location {
	return Location{Kind: LocPhysical, Pos: p}
}

// StdlibLocation wraps a standard-library symbol.
func StdlibLocation(s StdSymbol) Location {
	return Location{Kind: LocStdlib, Std: s}
}

// Name returns a display name for diagnostics.
func (l Location) Name(files FileOracle) string {
	switch l.Kind {
	case LocPhysical:
		return files.Path(l.Pos.File)
	case LocStdlib:
		return l.Std.Name
	}
	panic("unhandled Location kind")
}
