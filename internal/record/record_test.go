// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/include-audit/pkg/types"
)

// fakeMacroTable marks a fixed set of names as built-ins.
type fakeMacroTable struct {
	builtins map[string]bool
}

func (t fakeMacroTable) IsBuiltin(name string) bool {
	return t.builtins[name]
}

func pos(file types.FileID, offset int) types.Position {
	return types.Position{File: file, Line: 1, Column: offset + 1, Offset: offset}
}

func TestMacroArena_InternsByNameAndPosition(t *testing.T) {
	a := NewMacroArena()

	m1 := a.Macro("M", pos(2, 10))
	m2 := a.Macro("M", pos(2, 10))
	m3 := a.Macro("M", pos(2, 50)) // redefinition is a distinct symbol

	assert.Same(t, m1, m2)
	assert.NotSame(t, m1, m3)
	assert.Equal(t, "M", m3.Name)
}

func TestPP_RecordsExpansion(t *testing.T) {
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	pp.Record(types.PPEvent{Expand: &types.MacroExpansion{
		Name: "N", Pos: pos(1, 40), Definition: pos(3, 0),
	}})

	require.Len(t, pp.MacroReferences, 1)
	ref := pp.MacroReferences[0]
	assert.Equal(t, types.SymbolMacro, ref.Target.Kind())
	assert.Equal(t, "N", ref.Target.Name())
	assert.Equal(t, pos(1, 40), ref.Pos)
}

func TestPP_SkipsBuiltinMacros(t *testing.T) {
	table := fakeMacroTable{builtins: map[string]bool{"__FILE__": true}}
	pp := NewPP(table, NewMacroArena())

	pp.Record(types.PPEvent{Expand: &types.MacroExpansion{
		Name: "__FILE__", Pos: pos(1, 10), Definition: pos(types.BuiltinFile, 0),
	}})

	assert.Empty(t, pp.MacroReferences)
}

func TestPP_DropsInvalidDefinition(t *testing.T) {
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	pp.Record(types.PPEvent{Expand: &types.MacroExpansion{
		Name: "M", Pos: pos(1, 10), Definition: types.Position{},
	}})

	assert.Empty(t, pp.MacroReferences)
}

func TestPP_DefinitionBodyReferencesRecordedOnce(t *testing.T) {
	// #define FOO BAR — BAR is recorded at definition time, not per
	// later expansion of FOO.
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	pp.Record(types.PPEvent{Define: &types.MacroDefinition{
		Name: "FOO", Pos: pos(1, 8),
		Body: []types.Token{{Text: "BAR", Pos: pos(1, 12), Definition: pos(2, 0)}},
	}})

	require.Len(t, pp.MacroReferences, 1)
	assert.Equal(t, "BAR", pp.MacroReferences[0].Target.Name())
	assert.Equal(t, pos(1, 12), pp.MacroReferences[0].Pos)
}

func TestPP_DefinitionBodyUsesScanTimeResolution(t *testing.T) {
	// #define USE M before M exists: the token carries no resolved
	// definition, and a definition of M appearing later in the unit
	// must not revive it.
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	pp.Record(types.PPEvent{Define: &types.MacroDefinition{
		Name: "USE", Pos: pos(1, 8),
		Body: []types.Token{{Text: "M", Pos: pos(1, 12)}},
	}})

	assert.Empty(t, pp.MacroReferences)
}

func TestPP_DefinitionBodyKeepsRedefinitionIdentity(t *testing.T) {
	// Two macros reference M across a redefinition: each token carries
	// the definition that was visible when its #define was scanned, so
	// the two references are distinct symbols.
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	pp.Record(types.PPEvent{Define: &types.MacroDefinition{
		Name: "A", Pos: pos(1, 8),
		Body: []types.Token{{Text: "M", Pos: pos(1, 12), Definition: pos(2, 0)}},
	}})
	pp.Record(types.PPEvent{Define: &types.MacroDefinition{
		Name: "B", Pos: pos(1, 30),
		Body: []types.Token{{Text: "M", Pos: pos(1, 34), Definition: pos(2, 80)}},
	}})

	require.Len(t, pp.MacroReferences, 2)
	assert.NotEqual(t, pp.MacroReferences[0].Target, pp.MacroReferences[1].Target)
}

func TestPP_DefinitionParamsAreNotReferences(t *testing.T) {
	// #define ID(X) X — X names a parameter, not the macro X defined
	// elsewhere.
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	pp.Record(types.PPEvent{Define: &types.MacroDefinition{
		Name: "ID", Pos: pos(1, 8), Params: []string{"X"},
		Body: []types.Token{{Text: "X", Pos: pos(1, 14), Definition: pos(2, 0)}},
	}})

	assert.Empty(t, pp.MacroReferences)
}

func TestPP_ArgumentExpansionAttributedToCallSite(t *testing.T) {
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	spelled := pos(1, 30)
	inside := types.Position{
		File: 1, Offset: 99,
		Expansion: &types.Expansion{Spelling: spelled, InArgument: true},
	}
	pp.Record(types.PPEvent{Expand: &types.MacroExpansion{
		Name: "ARG", Pos: inside, Definition: pos(2, 0),
	}})

	require.Len(t, pp.MacroReferences, 1)
	assert.Equal(t, spelled, pp.MacroReferences[0].Pos)
}

func TestPP_BodyExpansionIsNotAUse(t *testing.T) {
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	inBody := types.Position{
		File: 1, Offset: 99,
		Expansion: &types.Expansion{Spelling: pos(2, 40), InArgument: false},
	}
	pp.Record(types.PPEvent{Expand: &types.MacroExpansion{
		Name: "INNER", Pos: inBody, Definition: pos(2, 0),
	}})

	assert.Empty(t, pp.MacroReferences)
}

func TestIncludes_MatchByIdentityAndSpelling(t *testing.T) {
	pp := NewPP(fakeMacroTable{}, NewMacroArena())

	pp.Record(types.PPEvent{Include: &types.IncludeDirective{
		Spelled: "foo.h", Resolved: 5, HashPos: pos(1, 0), Line: 1,
	}})
	pp.Record(types.PPEvent{Include: &types.IncludeDirective{
		Spelled: "vector", Angled: true, Resolved: 6, HashPos: pos(1, 20), Line: 2,
	}})
	pp.Record(types.PPEvent{Include: &types.IncludeDirective{
		Spelled: "missing.h", HashPos: pos(1, 40), Line: 3, // unresolved
	}})

	in := &pp.Includes

	// Physical: by resolved identity, independent of spelling.
	got := in.Match(types.PhysicalHeader(5))
	require.Len(t, got, 1)
	assert.Equal(t, "foo.h", got[0].Spelled)

	// Stdlib: by trimmed spelling, independent of identity.
	got = in.Match(types.StdlibHeader("<vector>"))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Line)

	// Verbatim: unresolved includes still match by spelling.
	got = in.Match(types.VerbatimHeader("missing.h"))
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Line)

	// Unresolved includes never match by identity.
	assert.Empty(t, in.Match(types.PhysicalHeader(types.InvalidFile)))

	// Sentinels are never the target of a written include.
	assert.Empty(t, in.Match(types.BuiltinHeader()))
	assert.Empty(t, in.Match(types.MainFileHeader()))
}

func TestIncludes_PreservesTextualOrder(t *testing.T) {
	pp := NewPP(fakeMacroTable{}, NewMacroArena())
	for line := 1; line <= 3; line++ {
		pp.Record(types.PPEvent{Include: &types.IncludeDirective{
			Spelled: "dup.h", Resolved: 9, HashPos: pos(1, line*10), Line: line,
		}})
	}

	all := pp.Includes.All()
	require.Len(t, all, 3)
	for i, inc := range all {
		assert.Equal(t, i+1, inc.Line)
	}

	// Match returns each entry once, in ledger order.
	got := pp.Includes.Match(types.PhysicalHeader(9))
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 3, got[2].Line)
}

func TestInclude_Written(t *testing.T) {
	assert.Equal(t, `"foo.h"`, (&Include{Spelled: "foo.h"}).Written())
	assert.Equal(t, "<vector>", (&Include{Spelled: "vector", Angled: true}).Written())
}
