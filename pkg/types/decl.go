// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R2 (declaration model);
//
//	docs/ARCHITECTURE § Front End.
package types

// DeclKind identifies the syntactic category of a declaration.
type DeclKind int

const (
	Class            DeclKind = iota // class/struct/union tag
	Enum                             // enum tag
	Typedef                          // typedef declaration
	Alias                            // using alias
	Function                         // free or member function
	Variable                         // variable declaration
	Member                           // class member (field)
	Enumerator                       // enum constant
	ClassTemplate                    // class template
	FunctionTemplate                 // function template
)

// String returns the human-readable name of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case Class:
		return "class"
	case Enum:
		return "enum"
	case Typedef:
		return "typedef"
	case Alias:
		return "alias"
	case Function:
		return "function"
	case Variable:
		return "variable"
	case Member:
		return "member"
	case Enumerator:
		return "enumerator"
	case ClassTemplate:
		return "class template"
	case FunctionTemplate:
		return "function template"
	default:
		return "unknown"
	}
}

// Decl is a named declaration owned by the front end. The analysis holds
// non-owning pointers; declaration identity is the canonical (first)
// declaration of the entity, so all redeclarations collapse to one
// Symbol.
type Decl struct {
	Name      string
	Qualified string // qualified name, e.g. "std::vector"
	Kind      DeclKind
	Pos       Position
	// IsDefinition marks a defining declaration (class body, function
	// body, initialized variable) rather than a forward declaration.
	IsDefinition bool
	// Friend marks a declaration introduced only by a friend
	// declaration inside another class.
	Friend bool
	// Operator marks an operator function, e.g. "operator<<".
	Operator bool

	canonical *Decl
	redecls   []*Decl
}

// Canonical returns the first declaration of the entity. A declaration
// that has not been linked to an earlier one is its own canonical decl.
func (d *Decl) Canonical() *Decl {
	if d.canonical != nil {
		return d.canonical
	}
	return d
}

// Redecls returns every declaration of the entity in declaration order,
// starting with the canonical one.
func (d *Decl) Redecls() []*Decl {
	c := d.Canonical()
	if len(c.redecls) == 0 {
		return []*Decl{c}
	}
	return c.redecls
}

// Link records r as a redeclaration of the entity canonically declared
// by d. Linking is performed by the front end in textual order.
func (d *Decl) Link(r *Decl) {
	c := d.Canonical()
	if len(c.redecls) == 0 {
		c.redecls = append(c.redecls, c)
	}
	r.canonical = c
	c.redecls = append(c.redecls, r)
}

// CompleteDefinition reports whether this declaration supplies a full
// definition for a kind where completeness matters: tag types, class
// templates, and function templates. Definitions of plain functions and
// variables do not count.
func (d *Decl) CompleteDefinition() bool {
	if !d.IsDefinition {
		return false
	}
	switch d.Kind {
	case Class, Enum, ClassTemplate, FunctionTemplate:
		return true
	}
	return false
}
