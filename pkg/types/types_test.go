// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecl_CanonicalCollapsesRedecls(t *testing.T) {
	first := &Decl{Name: "Foo", Kind: Class, Pos: Position{File: 1, Offset: 10}}
	second := &Decl{Name: "Foo", Kind: Class, Pos: Position{File: 2, Offset: 0}, IsDefinition: true}
	third := &Decl{Name: "Foo", Kind: Class, Pos: Position{File: 3, Offset: 5}}

	first.Link(second)
	second.Link(third) // linking via a non-canonical decl still attaches to the canonical one

	assert.Same(t, first, first.Canonical())
	assert.Same(t, first, second.Canonical())
	assert.Same(t, first, third.Canonical())

	redecls := third.Redecls()
	require.Len(t, redecls, 3)
	assert.Same(t, first, redecls[0])
	assert.Same(t, second, redecls[1])
	assert.Same(t, third, redecls[2])
}

func TestDecl_RedeclsOfUnlinkedDecl(t *testing.T) {
	d := &Decl{Name: "x", Kind: Variable}
	redecls := d.Redecls()
	require.Len(t, redecls, 1)
	assert.Same(t, d, redecls[0])
}

func TestDecl_CompleteDefinition(t *testing.T) {
	tests := []struct {
		name string
		decl Decl
		want bool
	}{
		{"class definition", Decl{Kind: Class, IsDefinition: true}, true},
		{"class forward declaration", Decl{Kind: Class}, false},
		{"enum definition", Decl{Kind: Enum, IsDefinition: true}, true},
		{"class template definition", Decl{Kind: ClassTemplate, IsDefinition: true}, true},
		{"function template definition", Decl{Kind: FunctionTemplate, IsDefinition: true}, true},
		{"plain function definition", Decl{Kind: Function, IsDefinition: true}, false},
		{"variable definition", Decl{Kind: Variable, IsDefinition: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.decl.CompleteDefinition())
		})
	}
}

func TestSymbol_DeclSymbolUsesCanonical(t *testing.T) {
	first := &Decl{Name: "Foo", Kind: Class}
	second := &Decl{Name: "Foo", Kind: Class}
	first.Link(second)

	sym := DeclSymbol(second)
	assert.Equal(t, SymbolDecl, sym.Kind())
	assert.Same(t, first, sym.Decl)
	assert.Equal(t, "Foo", sym.Name())
	assert.Equal(t, "class", sym.NodeName())
}

func TestSymbol_Macro(t *testing.T) {
	m := &Macro{Name: "M", Definition: Position{File: 2, Offset: 7}}
	sym := MacroSymbol(m)
	assert.Equal(t, SymbolMacro, sym.Kind())
	assert.Equal(t, "M", sym.Name())
	assert.Equal(t, "macro", sym.NodeName())
}

func TestHeader_EqualityAndOrder(t *testing.T) {
	a := PhysicalHeader(1)
	b := PhysicalHeader(2)
	v := StdlibHeader("<vector>")

	assert.Equal(t, a, PhysicalHeader(1))
	assert.NotEqual(t, a, b)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	// Kind dominates payload.
	assert.True(t, b.Less(v))
	assert.True(t, v.Less(BuiltinHeader()))

	// Sentinels are singletons.
	assert.Equal(t, MainFileHeader(), MainFileHeader())
	assert.False(t, MainFileHeader().Less(MainFileHeader()))
}

func TestHeader_Name(t *testing.T) {
	files := fakeOracle{paths: map[FileID]string{3: "include/foo.h"}}

	assert.Equal(t, "include/foo.h", PhysicalHeader(3).Name(files))
	assert.Equal(t, "<vector>", StdlibHeader("<vector>").Name(files))
	assert.Equal(t, "<util.h>", VerbatimHeader("util.h").Name(files))
	assert.Equal(t, "<built-in>", BuiltinHeader().Name(files))
	assert.Equal(t, "<main-file>", MainFileHeader().Name(files))
}

func TestHint_Accumulation(t *testing.T) {
	h := HintNone
	h |= HintComplete
	h |= HintNameMatch
	h |= HintComplete // idempotent

	assert.True(t, h.Has(HintComplete))
	assert.True(t, h.Has(HintNameMatch))
	assert.True(t, h.Has(HintComplete|HintNameMatch))
	assert.False(t, HintComplete.Has(HintNameMatch))
}

func TestPosition_SamePlace(t *testing.T) {
	p := Position{File: 1, Line: 3, Column: 4, Offset: 20}
	q := Position{File: 1, Line: 99, Column: 1, Offset: 20}
	r := Position{File: 2, Offset: 20}

	assert.True(t, p.SamePlace(q))
	assert.False(t, p.SamePlace(r))
	assert.False(t, Position{}.Valid())
	assert.True(t, p.Valid())
}

// fakeOracle is a minimal FileOracle for display tests.
type fakeOracle struct {
	paths map[FileID]string
}

func (f fakeOracle) IsMainFile(FileID) bool      { return false }
func (f fakeOracle) IsBuiltin(FileID) bool       { return false }
func (f fakeOracle) HasIncludeGuard(FileID) bool { return true }
func (f fakeOracle) Path(id FileID) string       { return f.paths[id] }
