// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R4 (preprocessor event feed);
//
//	docs/ARCHITECTURE § Front End.
package types

// Token is one token of a macro's replacement body. Definition is the
// position of the macro the token named at the moment the enclosing
// #define was scanned, or invalid if no such macro was defined then.
// Resolution happens at scan time because the table keeps changing as
// the unit is read.
type Token struct {
	Text       string
	Pos        Position
	Definition Position
}

// MacroDefinition is a #define event: the macro's name, parameters (nil
// for object-like macros), and full replacement-token list.
type MacroDefinition struct {
	Name   string
	Pos    Position // of the name token
	Params []string
	Body   []Token
}

// MacroExpansion is an expansion event: a macro name token in the
// unit's text together with the resolved definition position.
type MacroExpansion struct {
	Name       string
	Pos        Position // of the name token at the expansion site
	Definition Position
}

// IncludeDirective is one include directive physically written in the
// unit. Spelled excludes the surrounding delimiters; Resolved is
// InvalidFile when resolution failed.
type IncludeDirective struct {
	Spelled  string
	Angled   bool
	Resolved FileID
	HashPos  Position
	Line     int // 1-based
	Keep     bool
}

// PPEvent is one preprocessor event restricted to the unit's own text.
// Exactly one field is set. Events are delivered in textual order,
// which later logic (macro self-reference suppression) depends on.
type PPEvent struct {
	Define  *MacroDefinition
	Expand  *MacroExpansion
	Include *IncludeDirective
}

// MacroTable answers macro questions the events themselves cannot:
// name resolution is carried inside the events, so consumers need only
// the built-in predicate. Implemented by the front end.
type MacroTable interface {
	// IsBuiltin reports whether name is a predefined built-in macro
	// such as __FILE__. Built-ins require no includable provider.
	IsBuiltin(name string) bool
}
