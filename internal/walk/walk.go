// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package walk traverses the unit's own top-level syntax and reports
// every declaration reference, honoring the use policy.
// Implements: prd004-recorder R1 (tree references);
//
//	docs/ARCHITECTURE § Reference Recorder.
package walk

import (
	"github.com/petar-djukic/include-audit/pkg/types"
)

// Callback receives each declaration reference found during traversal.
// The declaration is always canonical and the position is already
// attributed to a use site.
type Callback func(pos types.Position, d *types.Decl)

// Tree walks the subtree rooted at root and reports references. It has
// no side effects beyond invoking the callback.
func Tree(root *types.Node, policy types.Policy, cb Callback) {
	w := walker{policy: policy, cb: cb}
	w.visit(root)
}

type walker struct {
	policy types.Policy
	cb     Callback
}

func (w *walker) visit(n *types.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case types.NodeName:
		// Plain references always count, except operator functions
		// when operator tracking is off.
		if n.Ref == nil || !n.Ref.Operator || w.policy.Operators {
			w.report(n.Pos, n.Ref)
		}
	case types.NodeMember:
		if w.policy.Members {
			w.report(n.Pos, n.Ref)
		}
	case types.NodeType:
		w.report(n.Pos, n.Ref)
	case types.NodeTemplateSpec:
		w.report(n.Pos, n.Ref)  // primary template
		w.report(n.Pos, n.Spec) // concrete specialized record, if any
	case types.NodeUsing:
		for _, shadow := range n.Refs {
			w.report(n.Pos, shadow)
		}
	case types.NodeOverload:
		for _, candidate := range n.Refs {
			w.report(n.Pos, candidate)
		}
	case types.NodeMemberOverload:
		if w.policy.Members {
			for _, candidate := range n.Refs {
				w.report(n.Pos, candidate)
			}
		}
	case types.NodeOperatorCall:
		if w.policy.Operators {
			w.report(n.Pos, n.Ref)
		}
	case types.NodeConstruct:
		// The constructed type is traversed as if written, but only
		// when construction counts as a use. Arguments always count.
		if w.policy.Construction {
			w.visit(n.Type)
		}
	case types.NodeFunctionDef:
		// A definition counts as a reference to its first declaration
		// when they differ.
		if n.Ref != nil && n.Ref.Canonical() != n.Ref {
			w.report(n.Pos, n.Ref)
		}
	case types.NodeOther:
		// structural only
	default:
		panic("unhandled Node kind")
	}
	for _, c := range n.Children {
		w.visit(c)
	}
}

func (w *walker) report(pos types.Position, d *types.Decl) {
	if d == nil {
		return
	}
	use, ok := pos.UseSite()
	if !ok {
		// Names within macro bodies are not references.
		return
	}
	w.cb(use, d.Canonical())
}
