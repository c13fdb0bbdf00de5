// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R2 (declaration table);
//
//	docs/ARCHITECTURE § Front End.
package frontend

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/petar-djukic/include-audit/pkg/types"
)

// DeclTable accumulates every named declaration seen while loading the
// unit's files, canonicalized by qualified name. Declarations are
// recorded in load order, so the first textual declaration of an
// entity becomes its canonical decl.
type DeclTable struct {
	byQualified map[string]*types.Decl
	byName      map[string][]*types.Decl // canonical decls per bare name
}

// NewDeclTable creates an empty table.
func NewDeclTable() *DeclTable {
	return &DeclTable{
		byQualified: make(map[string]*types.Decl),
		byName:      make(map[string][]*types.Decl),
	}
}

// Declare records one declaration and returns it linked to its
// canonical decl. scope is the enclosing qualification including the
// trailing separator, e.g. "std::".
func (t *DeclTable) Declare(scope, name string, kind types.DeclKind, pos types.Position, isDef bool) *types.Decl {
	d := &types.Decl{
		Name:         name,
		Qualified:    scope + name,
		Kind:         kind,
		Pos:          pos,
		IsDefinition: isDef,
		Operator:     isOperatorName(name),
	}
	if c, ok := t.byQualified[d.Qualified]; ok {
		c.Link(d)
		return d
	}
	t.byQualified[d.Qualified] = d
	t.byName[name] = append(t.byName[name], d)
	return d
}

// Lookup resolves a qualified name to its canonical declaration.
func (t *DeclTable) Lookup(qualified string) (*types.Decl, bool) {
	d, ok := t.byQualified[qualified]
	return d, ok
}

// ByName returns every distinct entity declared under a bare name, in
// declaration order. Used for overload sets and member lookups that
// have no qualifier in the source.
func (t *DeclTable) ByName(name string) []*types.Decl {
	return t.byName[name]
}

// extractor walks one file's syntax tree collecting declarations.
type extractor struct {
	table   *DeclTable
	file    types.FileID
	content []byte
}

// extractDecls parses a loaded file and records its declarations.
// Parse errors surface as error nodes inside the tree and are skipped;
// a file that fails to parse entirely contributes nothing.
func (u *Unit) extractDecls(ctx context.Context, id types.FileID) {
	content := u.Files.Content(id)
	root, err := sitter.ParseCtx(ctx, content, cpp.GetLanguage())
	if err != nil || root == nil {
		return
	}
	e := &extractor{table: u.Decls, file: id, content: content}
	e.scope(root, "", false)
}

// scope visits the children of a scope-introducing node. prefix is the
// qualification of names declared here; friend marks a friend context.
func (e *extractor) scope(n *sitter.Node, prefix string, friend bool) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		e.visit(n.NamedChild(i), prefix, friend)
	}
}

func (e *extractor) visit(n *sitter.Node, prefix string, friend bool) {
	switch n.Type() {
	case "namespace_definition":
		name := childText(n, "name", e.content)
		body := n.ChildByFieldName("body")
		if body != nil {
			inner := prefix
			if name != "" {
				inner = prefix + name + "::"
			}
			e.scope(body, inner, friend)
		}

	case "class_specifier", "struct_specifier", "union_specifier":
		e.tag(n, prefix, types.Class, friend)

	case "enum_specifier":
		name := childText(n, "name", e.content)
		body := n.ChildByFieldName("body")
		if name != "" {
			e.declare(prefix, name, types.Enum, n.ChildByFieldName("name"), body != nil, friend)
		}
		if body != nil {
			// Unscoped enumerators land in the enclosing scope.
			scope := prefix
			if scopedEnum(n, e.content) && name != "" {
				scope = prefix + name + "::"
			}
			for i := 0; i < int(body.NamedChildCount()); i++ {
				en := body.NamedChild(i)
				if en.Type() != "enumerator" {
					continue
				}
				if enName := childText(en, "name", e.content); enName != "" {
					e.declare(scope, enName, types.Enumerator, en.ChildByFieldName("name"), true, friend)
				}
			}
		}

	case "function_definition":
		if nameNode, name := declaratorName(n.ChildByFieldName("declarator"), e.content); name != "" {
			e.declare(prefix, name, types.Function, nameNode, true, friend)
		}
		// Local declarations inside the body are not providers.

	case "declaration":
		e.declaration(n, prefix, friend, types.Function, types.Variable)

	case "field_declaration":
		if decl := n.ChildByFieldName("declarator"); decl != nil {
			nameNode, name := declaratorName(decl, e.content)
			if name == "" {
				break
			}
			kind := types.Member
			if hasDescendant(decl, "function_declarator") {
				kind = types.Function
			}
			e.declare(prefix, name, kind, nameNode, false, friend)
		}
		// Nested tags inside a field declaration, e.g. struct members.
		if t := n.ChildByFieldName("type"); t != nil {
			e.visit(t, prefix, friend)
		}

	case "type_definition":
		if decl := n.ChildByFieldName("declarator"); decl != nil {
			if nameNode, name := declaratorName(decl, e.content); name != "" {
				e.declare(prefix, name, types.Typedef, nameNode, true, friend)
			}
		}
		if t := n.ChildByFieldName("type"); t != nil {
			e.visit(t, prefix, friend)
		}

	case "alias_declaration":
		if name := childText(n, "name", e.content); name != "" {
			e.declare(prefix, name, types.Alias, n.ChildByFieldName("name"), true, friend)
		}

	case "template_declaration":
		e.template(n, prefix, friend)

	case "friend_declaration":
		e.scope(n, prefix, true)

	case "linkage_specification":
		if body := n.ChildByFieldName("body"); body != nil {
			e.scope(body, prefix, friend)
		}

	case "preproc_ifdef", "preproc_if", "preproc_else", "preproc_elif":
		// Conditional groups are scanned as if all branches were taken.
		e.scope(n, prefix, friend)
	}
}

// tag records a class/struct/union and, when it has a body, its
// members under the extended scope.
func (e *extractor) tag(n *sitter.Node, prefix string, kind types.DeclKind, friend bool) {
	name := childText(n, "name", e.content)
	body := n.ChildByFieldName("body")
	if name != "" {
		e.declare(prefix, name, kind, n.ChildByFieldName("name"), body != nil, friend)
	}
	if body != nil {
		inner := prefix
		if name != "" {
			inner = prefix + name + "::"
		}
		e.scope(body, inner, false)
	}
}

// declaration records a prototype or variable declaration.
func (e *extractor) declaration(n *sitter.Node, prefix string, friend bool, funcKind, varKind types.DeclKind) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "function_declarator", "init_declarator", "identifier",
			"pointer_declarator", "reference_declarator", "array_declarator":
			nameNode, name := declaratorName(c, e.content)
			if name == "" {
				continue
			}
			kind := varKind
			if hasDescendant(c, "function_declarator") || c.Type() == "function_declarator" {
				kind = funcKind
			}
			e.declare(prefix, name, kind, nameNode, c.Type() == "init_declarator", friend)
		case "class_specifier", "struct_specifier", "union_specifier", "enum_specifier":
			e.visit(c, prefix, friend)
		}
	}
}

// template records a template declaration as a class or function
// template over the inner declaration's name.
func (e *extractor) template(n *sitter.Node, prefix string, friend bool) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "class_specifier", "struct_specifier", "union_specifier":
			name := childText(c, "name", e.content)
			body := c.ChildByFieldName("body")
			if name != "" {
				e.declare(prefix, name, types.ClassTemplate, c.ChildByFieldName("name"), body != nil, friend)
			}
			if body != nil && name != "" {
				e.scope(body, prefix+name+"::", false)
			}
		case "function_definition":
			if nameNode, name := declaratorName(c.ChildByFieldName("declarator"), e.content); name != "" {
				e.declare(prefix, name, types.FunctionTemplate, nameNode, true, friend)
			}
		case "declaration":
			e.declaration(c, prefix, friend, types.FunctionTemplate, types.Variable)
		case "alias_declaration":
			if name := childText(c, "name", e.content); name != "" {
				e.declare(prefix, name, types.Alias, c.ChildByFieldName("name"), true, friend)
			}
		}
	}
}

func (e *extractor) declare(scope, name string, kind types.DeclKind, nameNode *sitter.Node, isDef, friend bool) {
	d := e.table.Declare(scope, name, kind, e.position(nameNode), isDef)
	d.Friend = friend
}

// position converts a tree-sitter node to an analysis position.
func (e *extractor) position(n *sitter.Node) types.Position {
	if n == nil {
		return types.Position{}
	}
	return types.Position{
		File:   e.file,
		Line:   int(n.StartPoint().Row) + 1,
		Column: int(n.StartPoint().Column) + 1,
		Offset: int(n.StartByte()),
	}
}

// declaratorName digs through pointer/reference/function declarators to
// the declared name. It returns the name node and its text; qualified
// declarators like out-of-line definitions keep their full spelling.
func declaratorName(n *sitter.Node, content []byte) (*sitter.Node, string) {
	for n != nil {
		switch n.Type() {
		case "identifier", "field_identifier", "type_identifier",
			"operator_name", "destructor_name":
			return n, n.Content(content)
		case "qualified_identifier":
			return n, n.Content(content)
		case "function_declarator", "pointer_declarator",
			"reference_declarator", "array_declarator",
			"init_declarator", "parenthesized_declarator":
			n = n.ChildByFieldName("declarator")
		default:
			return nil, ""
		}
	}
	return nil, ""
}

// isOperatorName reports whether name spells an operator function such
// as "operator+" or "operator new". An ordinary identifier that merely
// starts with the word, like operator_new, is not one: the keyword must
// be followed by the operator token itself.
func isOperatorName(name string) bool {
	const kw = "operator"
	return strings.HasPrefix(name, kw) && len(name) > len(kw) && !isIdentByte(name[len(kw)])
}

// scopedEnum reports whether an enum_specifier is an enum class/struct.
func scopedEnum(n *sitter.Node, content []byte) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		switch n.Child(i).Type() {
		case "class", "struct":
			return true
		}
	}
	return false
}

// hasDescendant reports whether the subtree contains a node type.
func hasDescendant(n *sitter.Node, typ string) bool {
	if n.Type() == typ {
		return true
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if hasDescendant(n.NamedChild(i), typ) {
			return true
		}
	}
	return false
}

// childText returns the text of a named field child.
func childText(n *sitter.Node, field string, content []byte) string {
	c := n.ChildByFieldName(field)
	if c == nil {
		return ""
	}
	return c.Content(content)
}
