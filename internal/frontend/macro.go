// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R4 (macro table);
//
//	docs/ARCHITECTURE § Front End.
package frontend

import (
	"github.com/petar-djukic/include-audit/pkg/types"
)

// builtinMacros are predefined by the implementation and require no
// includable provider.
var builtinMacros = map[string]bool{
	"__FILE__":                true,
	"__LINE__":                true,
	"__DATE__":                true,
	"__TIME__":                true,
	"__COUNTER__":             true,
	"__func__":                true,
	"__FUNCTION__":            true,
	"__cplusplus":             true,
	"__STDC__":                true,
	"__STDC_VERSION__":        true,
	"__STDC_HOSTED__":         true,
	"__has_include":           true,
	"__has_feature":           true,
	"__has_builtin":           true,
	"__has_cpp_attribute":     true,
	"__PRETTY_FUNCTION__":     true,
	"__VA_ARGS__":             true,
	"__VA_OPT__":              true,
	"__GNUC__":                true,
	"__clang__":               true,
	"__FILE_NAME__":           true,
	"__BASE_FILE__":           true,
	"__INCLUDE_LEVEL__":       true,
	"__TIMESTAMP__":           true,
	"__STDCPP_THREADS__":      true,
	"__STDC_NO_ATOMICS__":     true,
	"__STDC_NO_THREADS__":     true,
	"__STDC_IEC_559__":        true,
	"__SIZEOF_POINTER__":      true,
	"__BYTE_ORDER__":          true,
	"__ORDER_LITTLE_ENDIAN__": true,
	"__ORDER_BIG_ENDIAN__":    true,
}

// macroDef is one #define as the table stores it.
type macroDef struct {
	pos    types.Position // of the name token
	params []string       // nil for object-like macros
	body   []types.Token
}

// MacroTable tracks the #defines visible to the unit, in scan order.
// Redefinition replaces the visible entry; each definition is its own
// symbol, so references recorded before a redefinition keep the old
// identity. Implements the analysis's MacroTable interface.
type MacroTable struct {
	defs map[string]macroDef
}

// NewMacroTable creates an empty table.
func NewMacroTable() *MacroTable {
	return &MacroTable{defs: make(map[string]macroDef)}
}

// Define records a #define. pos is the name token's position.
func (t *MacroTable) Define(name string, pos types.Position, params []string, body []types.Token) {
	t.defs[name] = macroDef{pos: pos, params: params, body: body}
}

// Undef removes a visible definition.
func (t *MacroTable) Undef(name string) {
	delete(t.defs, name)
}

// Lookup returns the definition position of a currently-defined macro.
func (t *MacroTable) Lookup(name string) (types.Position, bool) {
	d, ok := t.defs[name]
	return d.pos, ok
}

// IsBuiltin reports whether name is a predefined built-in macro.
func (t *MacroTable) IsBuiltin(name string) bool {
	return builtinMacros[name]
}

// definition returns the full stored entry, for event emission.
func (t *MacroTable) definition(name string) (macroDef, bool) {
	d, ok := t.defs[name]
	return d, ok
}
