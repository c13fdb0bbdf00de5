// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stdlib maps well-known qualified names to their canonical
// logical standard-library headers.
// Implements: prd003-name-table R1, R2;
//
//	docs/ARCHITECTURE § Standard Library Table.
package stdlib

import (
	"strings"

	"github.com/petar-djukic/include-audit/pkg/types"
)

// Recognizer decides whether a declaration is a known standard-library
// symbol. Results are memoized per declaration; one Recognizer belongs
// to one analysis run and is discarded with it.
type Recognizer struct {
	memo map[*types.Decl]memoEntry
}

type memoEntry struct {
	sym types.StdSymbol
	ok  bool
}

// NewRecognizer creates a Recognizer with an empty memo.
func NewRecognizer() *Recognizer {
	return &Recognizer{memo: make(map[*types.Decl]memoEntry)}
}

// Recognize returns the standard-library symbol for a declaration, if
// its qualified name is in the table. Lookup is by canonical decl.
func (r *Recognizer) Recognize(d *types.Decl) (types.StdSymbol, bool) {
	c := d.Canonical()
	if e, ok := r.memo[c]; ok {
		return e.sym, e.ok
	}
	name := c.Qualified
	if name == "" {
		name = c.Name
	}
	sym, ok := Symbol(name)
	r.memo[c] = memoEntry{sym: sym, ok: ok}
	return sym, ok
}

// Symbol looks up a qualified name, e.g. "std::vector" or "printf".
func Symbol(qualified string) (types.StdSymbol, bool) {
	header, ok := symbols[qualified]
	if !ok {
		return types.StdSymbol{}, false
	}
	return types.StdSymbol{Name: qualified, Header: header}, true
}

// KnownHeader reports whether a spelled include names a standard
// library header. The spelling may include angle brackets.
func KnownHeader(spelled string) bool {
	trimmed := strings.Trim(spelled, "<>")
	return headers["<"+trimmed+">"]
}
