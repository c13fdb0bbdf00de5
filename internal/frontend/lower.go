// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R5 (lowering);
//
//	docs/ARCHITECTURE § Front End.
package frontend

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/petar-djukic/include-audit/pkg/types"
)

// lowerer converts the main file's syntax tree into the closed node
// model the analysis walks. Only names that resolve in the declaration
// table become references; everything else stays structural.
type lowerer struct {
	u       *Unit
	file    types.FileID
	content []byte
	// namespaces opened by using-directives, as "std::" prefixes, in
	// textual order.
	namespaces []string
}

// lowerFile parses the unit's main file and lowers its top-level
// declarations.
func (u *Unit) lowerFile(ctx context.Context, id types.FileID) ([]*types.Node, error) {
	content := u.Files.Content(id)
	root, err := sitter.ParseCtx(ctx, content, cpp.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("parse unit: %w", err)
	}
	l := &lowerer{u: u, file: id, content: content}
	var roots []*types.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if n := l.lower(root.NamedChild(i)); n != nil {
			roots = append(roots, n)
		}
	}
	return roots, nil
}

func (l *lowerer) lower(n *sitter.Node) *types.Node {
	switch n.Type() {
	case "comment", "preproc_include", "preproc_def", "preproc_function_def",
		"preproc_call", "string_literal", "raw_string_literal",
		"number_literal", "char_literal":
		return nil

	case "using_declaration":
		return l.using(n)

	case "identifier", "field_identifier", "namespace_identifier":
		return l.name(n, types.NodeName)

	case "type_identifier":
		return l.name(n, types.NodeType)

	case "qualified_identifier":
		return l.qualified(n)

	case "template_type":
		return l.templateType(n, "")

	case "field_expression":
		return l.member(n)

	case "call_expression":
		return l.call(n)

	case "new_expression":
		return l.construct(n)

	case "function_definition":
		return l.functionDef(n)
	}

	return l.structural(n)
}

// structural lowers all named children under a reference-free node.
func (l *lowerer) structural(n *sitter.Node) *types.Node {
	var children []*types.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := l.lower(n.NamedChild(i)); c != nil {
			children = append(children, c)
		}
	}
	if children == nil {
		return nil
	}
	return &types.Node{Kind: types.NodeOther, Pos: l.position(n), Children: children}
}

// name lowers a bare identifier. Unresolvable names are not
// references.
func (l *lowerer) name(n *sitter.Node, kind types.NodeKind) *types.Node {
	text := n.Content(l.content)
	found := l.resolve(text)
	switch len(found) {
	case 0:
		return nil
	case 1:
		return &types.Node{Kind: kind, Pos: l.position(n), Ref: found[0]}
	}
	// Several visible entities share the name: an overload set.
	return &types.Node{Kind: types.NodeOverload, Pos: l.position(n), Refs: found}
}

// qualified lowers scope::name, without descending into the scope
// spelling. A template name keeps its specialization shape.
func (l *lowerer) qualified(n *sitter.Node) *types.Node {
	nameChild := n.ChildByFieldName("name")
	if nameChild != nil && nameChild.Type() == "template_type" {
		return l.templateType(nameChild, scopeOf(n, l.content))
	}
	full := n.Content(l.content)
	if d, ok := l.u.Decls.Lookup(full); ok {
		return &types.Node{Kind: types.NodeName, Pos: l.position(n), Ref: d}
	}
	return nil
}

// templateType lowers vector<int>: the primary template is referenced
// and the arguments are traversed as written types.
func (l *lowerer) templateType(n *sitter.Node, scope string) *types.Node {
	name := childText(n, "name", l.content)
	var primary *types.Decl
	if name != "" {
		if found := l.resolve(scope + name); len(found) > 0 {
			primary = found[0]
		}
	}
	var children []*types.Node
	if args := n.ChildByFieldName("arguments"); args != nil {
		if c := l.structural(args); c != nil {
			children = append(children, c)
		}
	}
	if primary == nil && children == nil {
		return nil
	}
	return &types.Node{
		Kind:     types.NodeTemplateSpec,
		Pos:      l.position(n),
		Ref:      primary,
		Children: children,
	}
}

// member lowers obj.field / ptr->field. The object expression always
// counts; the accessed member is policy-gated by the walker. Without
// type information the member candidates are every known member with
// that name.
func (l *lowerer) member(n *sitter.Node) *types.Node {
	var children []*types.Node
	if arg := n.ChildByFieldName("argument"); arg != nil {
		if c := l.lower(arg); c != nil {
			children = append(children, c)
		}
	}
	pos := l.position(n)
	field := childText(n, "field", l.content)
	candidates := l.memberCandidates(field)
	switch len(candidates) {
	case 0:
		if children == nil {
			return nil
		}
		return &types.Node{Kind: types.NodeOther, Pos: pos, Children: children}
	case 1:
		return &types.Node{Kind: types.NodeMember, Pos: pos, Ref: candidates[0], Children: children}
	}
	return &types.Node{Kind: types.NodeMemberOverload, Pos: pos, Refs: candidates, Children: children}
}

// call lowers a call expression. Explicitly spelled operator calls are
// policy-gated; ordinary calls are structural around their callee.
func (l *lowerer) call(n *sitter.Node) *types.Node {
	fn := n.ChildByFieldName("function")
	var children []*types.Node
	if args := n.ChildByFieldName("arguments"); args != nil {
		if c := l.structural(args); c != nil {
			children = append(children, c)
		}
	}
	if fn != nil && fn.Type() == "identifier" {
		text := fn.Content(l.content)
		if isOperatorName(text) {
			var ref *types.Decl
			if found := l.resolve(text); len(found) > 0 {
				ref = found[0]
			}
			return &types.Node{Kind: types.NodeOperatorCall, Pos: l.position(n), Ref: ref, Children: children}
		}
	}
	if fn != nil {
		if c := l.lower(fn); c != nil {
			children = append([]*types.Node{c}, children...)
		}
	}
	if children == nil {
		return nil
	}
	return &types.Node{Kind: types.NodeOther, Pos: l.position(n), Children: children}
}

// construct lowers new T(args): the constructed type is traversed only
// when construction counts as a use, the arguments always.
func (l *lowerer) construct(n *sitter.Node) *types.Node {
	node := &types.Node{Kind: types.NodeConstruct, Pos: l.position(n)}
	if t := n.ChildByFieldName("type"); t != nil {
		node.Type = l.lower(t)
	}
	if args := n.ChildByFieldName("arguments"); args != nil {
		if c := l.structural(args); c != nil {
			node.Children = append(node.Children, c)
		}
	}
	if node.Type == nil && node.Children == nil {
		return nil
	}
	return node
}

// using lowers a using-declaration. A `using namespace N;` directive
// opens N for later bare-name lookups; an ordinary using-declaration
// references its shadow targets.
func (l *lowerer) using(n *sitter.Node) *types.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if n.Child(i).Type() != "namespace" {
			continue
		}
		for j := 0; j < int(n.NamedChildCount()); j++ {
			c := n.NamedChild(j)
			switch c.Type() {
			case "identifier", "qualified_identifier", "namespace_identifier":
				l.namespaces = append(l.namespaces, c.Content(l.content)+"::")
			}
		}
		return nil
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() != "qualified_identifier" && c.Type() != "identifier" {
			continue
		}
		full := c.Content(l.content)
		if d, ok := l.u.Decls.Lookup(full); ok {
			return &types.Node{Kind: types.NodeUsing, Pos: l.position(n), Refs: []*types.Decl{d}}
		}
	}
	return nil
}

// functionDef lowers a definition in the unit: the definition itself
// references its first declaration when one exists, and the signature
// and body are traversed for further references.
func (l *lowerer) functionDef(n *sitter.Node) *types.Node {
	node := &types.Node{Kind: types.NodeFunctionDef, Pos: l.position(n)}
	declarator := n.ChildByFieldName("declarator")
	if nameNode, name := declaratorName(declarator, l.content); name != "" {
		node.Ref = l.findRedecl(name, nameNode)
	}
	if t := n.ChildByFieldName("type"); t != nil {
		if c := l.lower(t); c != nil {
			node.Children = append(node.Children, c)
		}
	}
	if declarator != nil {
		// Parameter types live under the declarator.
		if c := l.structuralSkipName(declarator); c != nil {
			node.Children = append(node.Children, c)
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		if c := l.structural(body); c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// structuralSkipName lowers a declarator subtree without treating the
// declared name itself as a reference.
func (l *lowerer) structuralSkipName(n *sitter.Node) *types.Node {
	var children []*types.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "identifier", "field_identifier", "qualified_identifier",
			"operator_name", "destructor_name":
			continue
		}
		if low := l.lower(c); low != nil {
			children = append(children, low)
		}
	}
	if children == nil {
		return nil
	}
	return &types.Node{Kind: types.NodeOther, Pos: l.position(n), Children: children}
}

// findRedecl locates the specific redeclaration whose name token sits
// at nameNode, falling back to the canonical decl.
func (l *lowerer) findRedecl(name string, nameNode *sitter.Node) *types.Decl {
	canonical, ok := l.u.Decls.Lookup(name)
	if !ok {
		return nil
	}
	if nameNode == nil {
		return canonical
	}
	at := int(nameNode.StartByte())
	for _, rd := range canonical.Redecls() {
		if rd.Pos.File == l.file && rd.Pos.Offset == at {
			return rd
		}
	}
	return canonical
}

// resolve returns the visible entities for a possibly-unqualified
// name: the global scope first, then namespaces opened by
// using-directives.
func (l *lowerer) resolve(name string) []*types.Decl {
	var out []*types.Decl
	if d, ok := l.u.Decls.Lookup(name); ok {
		out = append(out, d)
	}
	for _, ns := range l.namespaces {
		if d, ok := l.u.Decls.Lookup(ns + name); ok {
			out = append(out, d)
		}
	}
	return out
}

// memberCandidates returns every known class member with the given
// name.
func (l *lowerer) memberCandidates(name string) []*types.Decl {
	if name == "" {
		return nil
	}
	var out []*types.Decl
	for _, d := range l.u.Decls.ByName(name) {
		if !strings.Contains(d.Qualified, "::") {
			continue
		}
		if d.Kind == types.Member || d.Kind == types.Function {
			out = append(out, d)
		}
	}
	return out
}

func (l *lowerer) position(n *sitter.Node) types.Position {
	return types.Position{
		File:   l.file,
		Line:   int(n.StartPoint().Row) + 1,
		Column: int(n.StartPoint().Column) + 1,
		Offset: int(n.StartByte()),
	}
}

// scopeOf returns the scope spelling of a qualified identifier with
// the trailing separator, e.g. "std::".
func scopeOf(n *sitter.Node, content []byte) string {
	s := n.ChildByFieldName("scope")
	if s == nil {
		return ""
	}
	return s.Content(content) + "::"
}
