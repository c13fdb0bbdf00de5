// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analysis drives one unit's audit: it walks the unit's syntax
// and macro references, resolves each used symbol to ranked candidate
// headers, and reconciles the candidates against the written includes.
// Implements: prd006-reconciler R1 (driver), R2 (usage set), R3
// (eligibility);
//
//	docs/ARCHITECTURE § Analysis Run.
package analysis

import (
	"path/filepath"
	"strings"

	"github.com/petar-djukic/include-audit/internal/locate"
	"github.com/petar-djukic/include-audit/internal/rank"
	"github.com/petar-djukic/include-audit/internal/record"
	"github.com/petar-djukic/include-audit/internal/stdlib"
	"github.com/petar-djukic/include-audit/internal/walk"
	"github.com/petar-djukic/include-audit/pkg/types"
)

// Context holds the per-run state of one unit's analysis: the policy,
// the macro arena, the stdlib memo, and the resolver over the unit's
// files. A Context is single-threaded and discarded with its run;
// concurrent units each build their own.
type Context struct {
	policy        types.Policy
	analyzeStdlib bool
	files         types.FileOracle
	resolver      *locate.Resolver
	arena         *record.MacroArena
}

// NewContext creates the state for one analysis run.
func NewContext(files types.FileOracle, policy types.Policy, analyzeStdlib bool) *Context {
	return &Context{
		policy:        policy,
		analyzeStdlib: analyzeStdlib,
		files:         files,
		resolver:      locate.NewResolver(files, stdlib.NewRecognizer()),
		arena:         record.NewMacroArena(),
	}
}

// Arena returns the run's macro arena, shared with the preprocessor
// recorder so both sides intern identical macros.
func (c *Context) Arena() *record.MacroArena {
	return c.arena
}

// Visitor receives one observed use: its position, the used symbol,
// and the candidate headers that could provide it, best first. An
// empty candidate list means no known provider.
type Visitor func(pos types.Position, sym types.Symbol, headers []types.Header)

// WalkUsed streams every use in the unit through the visitor: syntax
// references from the lowered trees, then macro references in their
// recorded order. Candidates are resolved, name-match hinted, and
// ranked before the visitor sees them.
func (c *Context) WalkUsed(roots []*types.Node, macroRefs []types.SymbolReference, visit Visitor) {
	for _, root := range roots {
		walk.Tree(root, c.policy, func(pos types.Position, d *types.Decl) {
			c.visitUse(pos, types.DeclSymbol(d), c.resolver.Decl(d), visit)
		})
	}
	for _, ref := range macroRefs {
		loc := c.resolver.Macro(ref.Target.Macro)
		c.visitUse(ref.Pos, ref.Target, []types.Hinted[types.Location]{loc}, visit)
	}
}

func (c *Context) visitUse(pos types.Position, sym types.Symbol, locs []types.Hinted[types.Location], visit Visitor) {
	var candidates []types.Hinted[types.Header]
	for _, loc := range locs {
		candidates = append(candidates, c.resolver.Headers(loc)...)
	}
	name := sym.Name()
	for i := range candidates {
		if c.nameMatches(candidates[i].Value, name) {
			candidates[i].Hint |= types.HintNameMatch
		}
	}
	visit(pos, sym, rank.Headers(candidates))
}

// nameMatches reports whether a physical header's filename stem equals
// the symbol name, ignoring case. "foo.h" matches a symbol Foo.
func (c *Context) nameMatches(h types.Header, name string) bool {
	if h.Kind != types.HeaderPhysical {
		return false
	}
	base := filepath.Base(c.files.Path(h.File))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.EqualFold(stem, name)
}

// Usage returns the written includes satisfied by any use in the unit.
// Every ranked candidate counts, not only the preferred one: an
// include of a non-preferred provider still provides the symbol and is
// therefore used.
func (c *Context) Usage(roots []*types.Node, macroRefs []types.SymbolReference, ledger *record.Includes) map[*record.Include]bool {
	used := make(map[*record.Include]bool)
	c.WalkUsed(roots, macroRefs, func(_ types.Position, _ types.Symbol, headers []types.Header) {
		for _, h := range headers {
			for _, inc := range ledger.Match(h) {
				used[inc] = true
			}
		}
	})
	return used
}

// Unused returns the written includes that no use needs and that are
// eligible for the diagnostic, in textual order.
func (c *Context) Unused(ledger *record.Includes, used map[*record.Include]bool) []*record.Include {
	var out []*record.Include
	all := ledger.All()
	for i := range all {
		inc := &all[i]
		if used[inc] || !c.eligible(inc) {
			continue
		}
		out = append(out, inc)
	}
	return out
}

// eligible reports whether an include may be diagnosed as unused.
// Keep-annotated directives are never touched. Angle-bracket includes
// are left alone unless standard-library analysis is on. A resolved
// target must have an include guard; an unresolved one can only be
// judged when it spells a known standard-library header.
func (c *Context) eligible(inc *record.Include) bool {
	if inc.Keep {
		return false
	}
	if inc.Angled && !c.analyzeStdlib {
		return false
	}
	if inc.Resolved != types.InvalidFile {
		return c.files.HasIncludeGuard(inc.Resolved)
	}
	return stdlib.KnownHeader(inc.Spelled)
}

// Reference is one observed use with its resolved providers.
type Reference struct {
	Pos       types.Position
	Symbol    types.Symbol
	Providers []types.Header // ranked, best first
	// Satisfied means some provider is already reachable: a written
	// include matches it, or the symbol lives in the main file or the
	// predefines.
	Satisfied bool
}

// Result is the full outcome of one unit's analysis.
type Result struct {
	References []Reference
	Unused     []*record.Include
}

// Run performs the complete analysis of one unit: reference stream,
// satisfaction per reference, and unused includes. Repeated runs over
// the same inputs yield identical results.
func (c *Context) Run(roots []*types.Node, pp *record.PP) Result {
	var res Result
	used := make(map[*record.Include]bool)
	c.WalkUsed(roots, pp.MacroReferences, func(pos types.Position, sym types.Symbol, headers []types.Header) {
		ref := Reference{Pos: pos, Symbol: sym, Providers: headers}
		for _, h := range headers {
			if h.Kind == types.HeaderMainFile || h.Kind == types.HeaderBuiltin {
				ref.Satisfied = true
			}
			for _, inc := range pp.Includes.Match(h) {
				used[inc] = true
				ref.Satisfied = true
			}
		}
		res.References = append(res.References, ref)
	})
	res.Unused = c.Unused(&pp.Includes, used)
	return res
}
