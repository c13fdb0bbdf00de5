// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across include-audit packages.
// Implements: prd001-analysis-core R1 (shared data model).
package types

// FileID identifies a file loaded by the front end. The zero value is
// reserved for "unresolved".
type FileID int

const (
	// InvalidFile marks a position or include whose file could not be
	// resolved.
	InvalidFile FileID = 0
	// BuiltinFile identifies the implicit predefines preamble.
	BuiltinFile FileID = -1
)

// Position is a location in the translation unit's source. Line and
// Column are 1-based; Offset is the byte offset within the file.
//
// A position inside a macro expansion carries a non-nil Expansion chain
// describing where the token was actually spelled.
type Position struct {
	File      FileID
	Line      int
	Column    int
	Offset    int
	Expansion *Expansion
}

// Expansion records that a position originated from a macro expansion.
type Expansion struct {
	// At is the expansion point: where the macro was invoked.
	At Position
	// Spelling is where the token was physically written: the macro
	// invocation argument for argument tokens, or the macro's
	// replacement body otherwise. It may itself lie inside a further
	// expansion.
	Spelling Position
	// InArgument reports whether the token came from an invocation
	// argument rather than the macro's replacement body.
	InArgument bool
}

// ExpansionSite resolves the position to the point where the outermost
// enclosing macro was invoked. Positions outside any expansion resolve
// to themselves.
func (p Position) ExpansionSite() Position {
	for p.Expansion != nil {
		p = p.Expansion.At
	}
	return p
}

// UseSite unwinds macro expansions to the position a reference should
// be attributed to. Argument substitutions unwind to the spelling of
// the argument at the call site; a position inside a macro's own
// replacement body is not an observable use, and ok is false.
func (p Position) UseSite() (Position, bool) {
	for p.Expansion != nil {
		if !p.Expansion.InArgument {
			return Position{}, false
		}
		p = p.Expansion.Spelling
	}
	return p, true
}

// Valid reports whether the position refers to a resolved file.
func (p Position) Valid() bool {
	return p.File != InvalidFile
}

// SamePlace reports whether two positions denote the same point in the
// same file, ignoring expansion context.
func (p Position) SamePlace(q Position) bool {
	return p.File == q.File && p.Offset == q.Offset
}

// FileOracle answers questions about files on behalf of the front end.
// One oracle is valid for exactly one translation unit.
type FileOracle interface {
	// IsMainFile reports whether id is the unit's own main file.
	IsMainFile(id FileID) bool
	// IsBuiltin reports whether id is the predefines preamble.
	IsBuiltin(id FileID) bool
	// HasIncludeGuard reports whether the file is protected against
	// multiple inclusion (include guard or #pragma once).
	HasIncludeGuard(id FileID) bool
	// Path returns the file's path, or "" if unknown.
	Path(id FileID) string
}
