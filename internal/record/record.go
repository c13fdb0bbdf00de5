// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package record captures preprocessor events for one translation
// unit: macro references and the ledger of written include directives.
// Implements: prd004-recorder R2 (macro references), R3 (include ledger);
//
//	docs/ARCHITECTURE § Reference Recorder, Include Ledger.
package record

import (
	"sort"
	"strings"

	"github.com/petar-djukic/include-audit/pkg/types"
)

// MacroArena interns macro identities for one analysis run, keyed by
// name. Each name is expected to have very few definitions, so lookup
// is a linear scan. The arena must not be shared across units.
type MacroArena struct {
	byName map[string][]*types.Macro
}

// NewMacroArena returns an empty arena.
func NewMacroArena() *MacroArena {
	return &MacroArena{byName: make(map[string][]*types.Macro)}
}

// Macro returns the interned macro for (name, definition), creating it
// on first sight. Redefinitions at different positions are distinct.
func (a *MacroArena) Macro(name string, def types.Position) *types.Macro {
	for _, m := range a.byName[name] {
		if m.Definition.SamePlace(def) {
			return m
		}
	}
	m := &types.Macro{Name: name, Definition: def}
	a.byName[name] = append(a.byName[name], m)
	return m
}

// Include is one include directive physically written in the unit.
// Directives reached only via inclusion are never recorded.
type Include struct {
	Spelled  string       // without delimiters, e.g. "vector" or "foo/bar.h"
	Angled   bool         // written with angle brackets
	Resolved types.FileID // InvalidFile if resolution failed
	HashPos  types.Position
	Line     int  // 1-based
	Keep     bool // a keep override annotation precedes the directive
}

// Written returns the directive's target as written, with delimiters.
func (i *Include) Written() string {
	if i.Angled {
		return "<" + i.Spelled + ">"
	}
	return "\"" + i.Spelled + "\""
}

// Includes is the ledger of recorded include directives, indexed by
// resolved target file and by trimmed spelling.
type Includes struct {
	all        []Include
	bySpelling map[string][]int
	byFile     map[types.FileID][]int
}

// All returns every recorded include in textual order.
func (in *Includes) All() []Include {
	return in.all
}

func (in *Includes) add(i Include) {
	if in.bySpelling == nil {
		in.bySpelling = make(map[string][]int)
		in.byFile = make(map[types.FileID][]int)
	}
	idx := len(in.all)
	in.all = append(in.all, i)
	in.bySpelling[i.Spelled] = append(in.bySpelling[i.Spelled], idx)
	if i.Resolved != types.InvalidFile {
		in.byFile[i.Resolved] = append(in.byFile[i.Resolved], idx)
	}
}

// Match returns the recorded includes that a header satisfies.
// Physical headers match by resolved file identity, independent of
// spelling; standard-library and verbatim headers match by trimmed
// spelling, independent of identity. The sentinels are never the
// target of a written include. Results are deduplicated and ordered by
// position in the ledger.
func (in *Includes) Match(h types.Header) []*Include {
	var indices []int
	switch h.Kind {
	case types.HeaderPhysical:
		indices = in.byFile[h.File]
	case types.HeaderStdlib:
		indices = in.bySpelling[strings.Trim(h.Std, "<>")]
	case types.HeaderVerbatim:
		indices = in.bySpelling[strings.Trim(h.Spelling, "<>\"")]
	case types.HeaderBuiltin, types.HeaderMainFile:
		return nil
	default:
		panic("unhandled Header kind")
	}
	if len(indices) == 0 {
		return nil
	}
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)
	result := make([]*Include, 0, len(sorted))
	for i, idx := range sorted {
		if i > 0 && idx == sorted[i-1] {
			continue
		}
		result = append(result, &in.all[idx])
	}
	return result
}

// PP accumulates the preprocessor side of a unit's reference stream:
// where macros were used, and which includes were written. It consumes
// the front end's event feed in textual order and never mutates front
// end state.
type PP struct {
	// MacroReferences are the uses of macros observed in the unit.
	MacroReferences []types.SymbolReference
	// Includes is the ledger of written include directives.
	Includes Includes

	table types.MacroTable
	arena *MacroArena
}

// NewPP creates a recorder backed by the front end's macro table and a
// per-run arena.
func NewPP(table types.MacroTable, arena *MacroArena) *PP {
	return &PP{table: table, arena: arena}
}

// Record consumes one preprocessor event.
func (p *PP) Record(ev types.PPEvent) {
	switch {
	case ev.Include != nil:
		i := ev.Include
		p.Includes.add(Include{
			Spelled:  strings.Trim(i.Spelled, "<>\""),
			Angled:   i.Angled,
			Resolved: i.Resolved,
			HashPos:  i.HashPos,
			Line:     i.Line,
			Keep:     i.Keep,
		})
	case ev.Expand != nil:
		p.recordMacroRef(ev.Expand.Name, ev.Expand.Pos, ev.Expand.Definition)
	case ev.Define != nil:
		// Tokens of a macro body may refer to other macros. Formally
		// such a reference is not resolved until expansion, but it is
		// recorded once here, at definition time. The front end resolved
		// each token against the definitions visible when the #define
		// was scanned; a token whose macro appeared only later carries
		// no definition and is not a reference.
		def := ev.Define
		params := make(map[string]bool, len(def.Params))
		for _, name := range def.Params {
			params[name] = true
		}
		for _, tok := range def.Body {
			if params[tok.Text] {
				continue
			}
			p.recordMacroRef(tok.Text, tok.Pos, tok.Definition)
		}
	}
}

func (p *PP) recordMacroRef(name string, pos, def types.Position) {
	if p.table.IsBuiltin(name) {
		return // __FILE__ is not a reference
	}
	if !def.Valid() {
		return
	}
	use, ok := pos.UseSite()
	if !ok {
		return
	}
	p.MacroReferences = append(p.MacroReferences, types.SymbolReference{
		Pos:    use,
		Target: types.MacroSymbol(p.arena.Macro(name, def)),
	})
}
