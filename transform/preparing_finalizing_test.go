package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
	"jsobfuscate/traverse"
)

func TestPreparingStripsEmptyStatements(t *testing.T) {
	root := &ast.Program{Body: []ast.Statement{
		&ast.EmptyStatement{},
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
		&ast.EmptyStatement{},
	}}
	require.NoError(t, Parentify(root))

	tr := NewPreparing()
	_, err := traverse.Replace(root, tr.Visitor(NodeStagePreparing))
	require.NoError(t, err)

	require.Len(t, root.Body, 1)
	_, ok := root.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
}

func TestFinalizingFlattensUnignoredNestedBlocks(t *testing.T) {
	inner := &ast.BlockStatement{Body: []ast.Statement{
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
	}}
	root := &ast.Program{Body: []ast.Statement{inner}}
	require.NoError(t, Parentify(root))

	tr := NewFinalizing()
	_, err := traverse.Replace(root, tr.Visitor(NodeStageFinalizing))
	require.NoError(t, err)

	require.Len(t, root.Body, 1)
	_, ok := root.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
}

func TestFinalizingPreservesIgnoredNestedBlocks(t *testing.T) {
	inner := &ast.BlockStatement{Body: []ast.Statement{
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
	}}
	ast.MarkIgnored(inner, true)
	root := &ast.Program{Body: []ast.Statement{inner}}
	require.NoError(t, Parentify(root))

	tr := NewFinalizing()
	_, err := traverse.Replace(root, tr.Visitor(NodeStageFinalizing))
	require.NoError(t, err)

	require.Len(t, root.Body, 1)
	_, ok := root.Body[0].(*ast.BlockStatement)
	require.True(t, ok, "a block marked Ignored must survive Finalizing's flatten pass")
}
