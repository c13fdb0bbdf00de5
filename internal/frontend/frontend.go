// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R1 (unit loading);
//
//	docs/ARCHITECTURE § Front End.
package frontend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/include-audit/pkg/types"
)

// Options configures unit loading.
type Options struct {
	// IncludeDirs are the -I search directories, in order.
	IncludeDirs []string
}

// Unit is one loaded translation unit: its file table, macro table,
// declaration table, the preprocessor events of its own text in
// textual order, and its lowered top-level syntax.
type Unit struct {
	Path   string
	Files  *FileSet
	Macros *MacroTable
	Decls  *DeclTable
	Events []types.PPEvent
	Roots  []*types.Node

	opts Options
}

// Load reads and parses one translation unit and everything it
// includes. The unit's own text produces the event stream; included
// headers contribute only macros and declarations.
func Load(ctx context.Context, path string, opts Options) (*Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit: %w", err)
	}
	u := &Unit{
		Path:   path,
		Files:  NewFileSet(),
		Macros: NewMacroTable(),
		Decls:  NewDeclTable(),
		opts:   opts,
	}
	mainID := u.Files.Add(path, content)
	u.scanUnit(mainID, content, filepath.Dir(path))

	// Headers declare before the unit's own text uses, so extract
	// their declarations first, in load order.
	for id := types.FileID(2); int(id) <= len(u.Files.files); id++ {
		u.extractDecls(ctx, id)
	}
	u.extractDecls(ctx, mainID)

	roots, err := u.lowerFile(ctx, mainID)
	if err != nil {
		return nil, err
	}
	u.Roots = roots
	return u, nil
}

// scanUnit walks the main file's logical lines in order, emitting one
// event per directive and per macro expansion.
func (u *Unit) scanUnit(id types.FileID, content []byte, dir string) {
	s := &scanner{content: content, line: 1}
	prevKeep := false
	for s.pos < len(s.content) {
		startLine := s.line
		startOffset := s.pos
		raw := s.nextLogicalLine()
		text := s.stripComments(raw)
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			prevKeep = prevKeep || isKeepPragma(raw)
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			hash := startOffset + strings.IndexByte(text, '#')
			d := parseDirective(trimmed, raw, startLine, hash)
			if d.kind == dirInclude {
				d.keep = d.keep || prevKeep
				u.include(id, d, dir)
			}
			if d.kind == dirDefine {
				if i := strings.Index(raw, d.name); i >= 0 {
					d.nameOffset = startOffset + i
					d.bodyOffset = startOffset + strings.Index(raw, d.body)
				}
				u.define(id, d)
			}
			if d.kind == dirUndef {
				u.Macros.Undef(d.name)
			}
			prevKeep = false
			continue
		}
		prevKeep = false
		u.expansions(id, text, startLine, startOffset)
	}
}

// include resolves one written include, loads its target, and emits
// the Include event. Resolution failure leaves the event with an
// invalid file; the directive still participates by spelling.
func (u *Unit) include(id types.FileID, d directive, dir string) {
	resolved := types.InvalidFile
	if path, ok := u.resolveInclude(d.target, d.angled, dir); ok {
		resolved = u.loadHeader(path)
	}
	u.Events = append(u.Events, types.PPEvent{Include: &types.IncludeDirective{
		Spelled:  d.target,
		Angled:   d.angled,
		Resolved: resolved,
		HashPos:  types.Position{File: id, Line: d.line, Column: 1, Offset: d.offset},
		Line:     d.line,
		Keep:     d.keep,
	}})
}

// resolveInclude searches for an include target: quoted includes try
// the including file's directory first, then the -I directories;
// angled includes use only the -I directories.
func (u *Unit) resolveInclude(target string, angled bool, dir string) (string, bool) {
	var search []string
	if !angled {
		search = append(search, dir)
	}
	search = append(search, u.opts.IncludeDirs...)
	for _, base := range search {
		candidate := filepath.Join(base, filepath.FromSlash(target))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// loadHeader reads a header, registers it, and processes its defines
// and nested includes. A header already in the file set is not
// reprocessed, which also breaks include cycles.
func (u *Unit) loadHeader(path string) types.FileID {
	if id, ok := u.Files.Lookup(path); ok {
		return id
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return types.InvalidFile
	}
	id := u.Files.Add(path, content)
	dir := filepath.Dir(path)
	for _, d := range scanDirectives(content) {
		switch d.kind {
		case dirDefine:
			u.Macros.Define(d.name, types.Position{
				File: id, Line: d.line, Column: 1, Offset: d.nameOffset,
			}, d.params, u.bodyTokens(id, d))
		case dirUndef:
			u.Macros.Undef(d.name)
		case dirInclude:
			if nested, ok := u.resolveInclude(d.target, d.angled, dir); ok {
				u.loadHeader(nested)
			}
		}
	}
	return id
}

// define enters a main-file #define into the table and emits its
// Define event, body tokens included so self-contained macro chains
// are visible to the recorder.
func (u *Unit) define(id types.FileID, d directive) {
	pos := types.Position{File: id, Line: d.line, Column: 1, Offset: d.nameOffset}
	body := u.bodyTokens(id, d)
	u.Macros.Define(d.name, pos, d.params, body)
	u.Events = append(u.Events, types.PPEvent{Define: &types.MacroDefinition{
		Name:   d.name,
		Pos:    pos,
		Params: d.params,
		Body:   body,
	}})
}

// bodyTokens splits a #define body into its identifier tokens. Tokens
// naming a macro are resolved here, against the table as it stands at
// this point of the scan; a macro defined only later does not count.
func (u *Unit) bodyTokens(file types.FileID, d directive) []types.Token {
	var tokens []types.Token
	for _, t := range identifiers(d.body) {
		tok := types.Token{
			Text: t.text,
			Pos: types.Position{
				File: file, Line: d.line,
				Column: t.offset + 1,
				Offset: d.bodyOffset + t.offset,
			},
		}
		if def, ok := u.Macros.Lookup(t.text); ok {
			tok.Definition = def
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// expansions emits an Expand event for each identifier in a text line
// that names a visible macro. Function-like macros expand only when
// followed by an opening parenthesis.
func (u *Unit) expansions(id types.FileID, text string, line, offset int) {
	for _, t := range identifiers(text) {
		def, ok := u.Macros.definition(t.text)
		if !ok {
			continue
		}
		if def.params != nil && !parenFollows(text, t.offset+len(t.text)) {
			continue
		}
		u.Events = append(u.Events, types.PPEvent{Expand: &types.MacroExpansion{
			Name:       t.text,
			Pos:        types.Position{File: id, Line: line, Column: t.offset + 1, Offset: offset + t.offset},
			Definition: def.pos,
		}})
	}
}

type ident struct {
	text   string
	offset int
}

// identifiers scans s for identifier tokens, skipping string and
// character literals.
func identifiers(s string) []ident {
	var out []ident
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '"' || c == '\'':
			quote := c
			i++
			for i < len(s) && s[i] != quote {
				if s[i] == '\\' {
					i++
				}
				i++
			}
			i++
		case isIdentByte(c) && !(c >= '0' && c <= '9'):
			start := i
			for i < len(s) && isIdentByte(s[i]) {
				i++
			}
			out = append(out, ident{text: s[start:i], offset: start})
		case c >= '0' && c <= '9':
			// Skip numbers, including suffixed and hex forms.
			for i < len(s) && (isIdentByte(s[i]) || s[i] == '.') {
				i++
			}
		default:
			i++
		}
	}
	return out
}

// parenFollows reports whether the next non-space character at or
// after i is '('.
func parenFollows(s string, i int) bool {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i < len(s) && s[i] == '('
}
