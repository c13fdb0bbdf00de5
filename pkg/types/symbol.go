// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analysis-core R1.1 (Symbol);
//
//	docs/ARCHITECTURE § Data Model.
package types

// Macro identifies a macro together with one particular definition of
// it. Redefined macros are distinct symbols. Macros are interned per
// analysis run, so pointer equality implies identity within a run.
type Macro struct {
	Name       string
	Definition Position
}

// SymbolKind discriminates the two kinds of referenceable entities.
type SymbolKind int

const (
	SymbolMacro SymbolKind = iota
	SymbolDecl
)

// Symbol is an entity that can be referenced: a declaration or a macro.
// Exactly one of the two fields is set. Declaration symbols always hold
// the canonical declaration.
type Symbol struct {
	Decl  *Decl
	Macro *Macro
}

// DeclSymbol wraps a declaration, collapsing it to its canonical decl.
func DeclSymbol(d *Decl) Symbol {
	return Symbol{Decl: d.Canonical()}
}

// MacroSymbol wraps an interned macro.
func MacroSymbol(m *Macro) Symbol {
	return Symbol{Macro: m}
}

// Kind returns which variant the symbol holds.
func (s Symbol) Kind() SymbolKind {
	if s.Decl != nil {
		return SymbolDecl
	}
	return SymbolMacro
}

// Name returns the symbol's display name.
func (s Symbol) Name() string {
	switch s.Kind() {
	case SymbolDecl:
		return s.Decl.Name
	case SymbolMacro:
		return s.Macro.Name
	}
	panic("unhandled Symbol kind")
}

// NodeName returns the symbol's syntactic kind for diagnostics, e.g.
// "macro" or "class".
func (s Symbol) NodeName() string {
	if s.Kind() == SymbolMacro {
		return "macro"
	}
	return s.Decl.Kind.String()
}

// SymbolReference is one observed use of a symbol in the unit's code.
type SymbolReference struct {
	Pos    Position
	Target Symbol
}
