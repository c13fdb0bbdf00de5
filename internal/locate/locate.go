// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package locate maps symbols to the locations that provide them and
// locations to the headers that expose them.
// Implements: prd005-resolution R1 (location resolver), R2 (header mapper);
//
//	docs/ARCHITECTURE § Resolution Chain.
package locate

import (
	"github.com/petar-djukic/include-audit/internal/stdlib"
	"github.com/petar-djukic/include-audit/pkg/types"
)

// Resolver enumerates provide-locations for symbols and candidate
// headers for locations. One Resolver serves one analysis run.
type Resolver struct {
	files types.FileOracle
	std   *stdlib.Recognizer
}

// NewResolver creates a Resolver over the unit's file oracle.
func NewResolver(files types.FileOracle, std *stdlib.Recognizer) *Resolver {
	return &Resolver{files: files, std: std}
}

// Decl returns every location that provides a declaration. A known
// standard-library symbol resolves to exactly its logical entry,
// bypassing physical redeclarations. Otherwise each redeclaration of
// the canonical decl contributes one location; friend-only
// introductions and invalid positions are skipped. Redeclarations that
// supply a complete definition carry the Complete hint.
func (r *Resolver) Decl(d *types.Decl) []types.Hinted[types.Location] {
	if sym, ok := r.std.Recognize(d); ok {
		return []types.Hinted[types.Location]{{Value: types.StdlibLocation(sym)}}
	}
	var result []types.Hinted[types.Location]
	for _, rd := range d.Redecls() {
		// `friend X` is not an interesting location for X.
		if rd.Friend {
			continue
		}
		if !rd.Pos.Valid() {
			continue
		}
		h := types.HintNone
		if rd.CompleteDefinition() {
			h = types.HintComplete
		}
		result = append(result, types.Hinted[types.Location]{
			Value: types.PhysicalLocation(rd.Pos),
			Hint:  h,
		})
	}
	return result
}

// Macro returns the single location providing a macro: its recorded
// definition position.
func (r *Resolver) Macro(m *types.Macro) types.Hinted[types.Location] {
	return types.Hinted[types.Location]{Value: types.PhysicalLocation(m.Definition)}
}

// Headers returns the headers that can provide a location, carrying
// the location's hint over unchanged. A physical location in the
// unit's own main file yields the main-file sentinel; one in the
// predefines preamble yields the builtin sentinel; an unresolvable
// file yields no candidates.
func (r *Resolver) Headers(loc types.Hinted[types.Location]) []types.Hinted[types.Header] {
	switch loc.Value.Kind {
	case types.LocPhysical:
		file := loc.Value.Pos.ExpansionSite().File
		if file == types.InvalidFile {
			return nil // no provider known
		}
		if r.files.IsMainFile(file) {
			return []types.Hinted[types.Header]{{Value: types.MainFileHeader(), Hint: loc.Hint}}
		}
		if r.files.IsBuiltin(file) {
			return []types.Hinted[types.Header]{{Value: types.BuiltinHeader(), Hint: loc.Hint}}
		}
		return []types.Hinted[types.Header]{{Value: types.PhysicalHeader(file), Hint: loc.Hint}}
	case types.LocStdlib:
		return []types.Hinted[types.Header]{{Value: types.StdlibHeader(loc.Value.Std.Header), Hint: loc.Hint}}
	}
	panic("unhandled Location kind")
}
