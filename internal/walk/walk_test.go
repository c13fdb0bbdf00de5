// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/include-audit/pkg/types"
)

type ref struct {
	pos types.Position
	d   *types.Decl
}

func collect(root *types.Node, policy types.Policy) []ref {
	var refs []ref
	Tree(root, policy, func(pos types.Position, d *types.Decl) {
		refs = append(refs, ref{pos: pos, d: d})
	})
	return refs
}

func pos(offset int) types.Position {
	return types.Position{File: 1, Line: 1, Column: offset + 1, Offset: offset}
}

func TestTree_PlainNameAlwaysCounts(t *testing.T) {
	foo := &types.Decl{Name: "foo", Kind: types.Function}
	root := &types.Node{Kind: types.NodeOther, Children: []*types.Node{
		{Kind: types.NodeName, Pos: pos(10), Ref: foo},
	}}

	refs := collect(root, types.Policy{})
	require.Len(t, refs, 1)
	assert.Same(t, foo, refs[0].d)
	assert.Equal(t, pos(10), refs[0].pos)
}

func TestTree_ReportsCanonicalDecl(t *testing.T) {
	first := &types.Decl{Name: "foo", Kind: types.Function}
	second := &types.Decl{Name: "foo", Kind: types.Function}
	first.Link(second)

	root := &types.Node{Kind: types.NodeName, Pos: pos(0), Ref: second}
	refs := collect(root, types.Policy{})
	require.Len(t, refs, 1)
	assert.Same(t, first, refs[0].d)
}

func TestTree_MemberAccessNeedsPolicy(t *testing.T) {
	field := &types.Decl{Name: "size", Kind: types.Member}
	root := &types.Node{Kind: types.NodeMember, Pos: pos(4), Ref: field}

	assert.Empty(t, collect(root, types.Policy{}))

	refs := collect(root, types.Policy{Members: true})
	require.Len(t, refs, 1)
	assert.Same(t, field, refs[0].d)
}

func TestTree_OperatorsNeedPolicy(t *testing.T) {
	op := &types.Decl{Name: "operator<<", Kind: types.Function, Operator: true}

	call := &types.Node{Kind: types.NodeOperatorCall, Pos: pos(2), Ref: op}
	assert.Empty(t, collect(call, types.Policy{}))
	assert.Len(t, collect(call, types.Policy{Operators: true}), 1)

	// A plain name reference to an operator function is suppressed too.
	name := &types.Node{Kind: types.NodeName, Pos: pos(2), Ref: op}
	assert.Empty(t, collect(name, types.Policy{}))
	assert.Len(t, collect(name, types.Policy{Operators: true}), 1)
}

func TestTree_ConstructionTraversesTypeWhenEnabled(t *testing.T) {
	foo := &types.Decl{Name: "Foo", Kind: types.Class, IsDefinition: true}
	arg := &types.Decl{Name: "x", Kind: types.Variable}
	construct := &types.Node{
		Kind: types.NodeConstruct, Pos: pos(0),
		Type: &types.Node{Kind: types.NodeType, Pos: pos(0), Ref: foo},
		Children: []*types.Node{
			{Kind: types.NodeName, Pos: pos(5), Ref: arg},
		},
	}

	// Arguments count either way; the constructed type only with policy.
	refs := collect(construct, types.Policy{})
	require.Len(t, refs, 1)
	assert.Same(t, arg, refs[0].d)

	refs = collect(construct, types.Policy{Construction: true})
	require.Len(t, refs, 2)
	assert.Same(t, foo, refs[0].d)
	assert.Same(t, arg, refs[1].d)
}

func TestTree_TemplateSpecializationReportsPrimaryAndRecord(t *testing.T) {
	primary := &types.Decl{Name: "Box", Kind: types.ClassTemplate, IsDefinition: true}
	spec := &types.Decl{Name: "Box", Kind: types.Class, IsDefinition: true}
	node := &types.Node{Kind: types.NodeTemplateSpec, Pos: pos(3), Ref: primary, Spec: spec}

	refs := collect(node, types.Policy{})
	require.Len(t, refs, 2)
	assert.Same(t, primary, refs[0].d)
	assert.Same(t, spec, refs[1].d)
}

func TestTree_UsingDeclReportsEveryShadow(t *testing.T) {
	a := &types.Decl{Name: "swap", Kind: types.Function}
	b := &types.Decl{Name: "swap", Kind: types.FunctionTemplate}
	node := &types.Node{Kind: types.NodeUsing, Pos: pos(0), Refs: []*types.Decl{a, b}}

	refs := collect(node, types.Policy{})
	require.Len(t, refs, 2)
}

func TestTree_OverloadSets(t *testing.T) {
	a := &types.Decl{Name: "f", Kind: types.Function}
	b := &types.Decl{Name: "f", Kind: types.Function}

	free := &types.Node{Kind: types.NodeOverload, Pos: pos(0), Refs: []*types.Decl{a, b}}
	assert.Len(t, collect(free, types.Policy{}), 2)

	member := &types.Node{Kind: types.NodeMemberOverload, Pos: pos(0), Refs: []*types.Decl{a, b}}
	assert.Empty(t, collect(member, types.Policy{}))
	assert.Len(t, collect(member, types.Policy{Members: true}), 2)
}

func TestTree_FunctionDefinitionReferencesFirstDeclaration(t *testing.T) {
	first := &types.Decl{Name: "f", Kind: types.Function}
	def := &types.Decl{Name: "f", Kind: types.Function, IsDefinition: true}
	first.Link(def)

	node := &types.Node{Kind: types.NodeFunctionDef, Pos: pos(0), Ref: def}
	refs := collect(node, types.Policy{})
	require.Len(t, refs, 1)
	assert.Same(t, first, refs[0].d)

	// A definition that is also the first declaration is not a self
	// reference.
	solo := &types.Decl{Name: "g", Kind: types.Function, IsDefinition: true}
	assert.Empty(t, collect(&types.Node{Kind: types.NodeFunctionDef, Pos: pos(0), Ref: solo}, types.Policy{}))
}

func TestTree_MacroBodyPositionsAreDropped(t *testing.T) {
	foo := &types.Decl{Name: "foo", Kind: types.Function}

	inBody := types.Position{
		File: 1, Offset: 77,
		Expansion: &types.Expansion{Spelling: pos(30), InArgument: false},
	}
	node := &types.Node{Kind: types.NodeName, Pos: inBody, Ref: foo}
	assert.Empty(t, collect(node, types.Policy{}))

	inArg := types.Position{
		File: 1, Offset: 77,
		Expansion: &types.Expansion{Spelling: pos(30), InArgument: true},
	}
	refs := collect(&types.Node{Kind: types.NodeName, Pos: inArg, Ref: foo}, types.Policy{})
	require.Len(t, refs, 1)
	assert.Equal(t, pos(30), refs[0].pos)
}
