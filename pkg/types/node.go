// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-frontend R3 (syntax tree model);
//
//	docs/ARCHITECTURE § Front End.
package types

// NodeKind identifies the syntactic form of a tree node. The set is
// closed: every consumer must handle all kinds exhaustively.
type NodeKind int

const (
	NodeName           NodeKind = iota // plain reference to a declaration
	NodeMember                         // member-access expression
	NodeType                           // written type reference (tag/typedef/alias)
	NodeTemplateSpec                   // class-template specialization type
	NodeUsing                          // using-declaration
	NodeOverload                       // unresolved overload-set expression
	NodeMemberOverload                 // member overload-set expression
	NodeOperatorCall                   // operator invocation
	NodeConstruct                      // object construction expression
	NodeFunctionDef                    // function definition
	NodeOther                          // structural node with no reference
)

// Node is one node of the unit's own top-level syntax, lowered by the
// front end into a closed reference-oriented shape. The analysis only
// reads it.
type Node struct {
	Kind NodeKind
	Pos  Position

	// Ref is the referenced declaration: the named decl for NodeName,
	// the accessed member for NodeMember, the type for NodeType, the
	// primary template for NodeTemplateSpec, the operator function for
	// NodeOperatorCall, the defined function for NodeFunctionDef.
	Ref *Decl
	// Refs holds the shadow targets of a using-declaration or the
	// candidates of an overload set.
	Refs []*Decl
	// Spec is the concrete specialized record of a template
	// specialization, when resolvable.
	Spec *Decl
	// Type is the constructed type's subtree for NodeConstruct,
	// traversed only when construction counts as a use.
	Type *Node

	Children []*Node
}
