package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
	"jsobfuscate/traverse"
)

func TestSimplifyingMergesAdjacentSameKindDeclarations(t *testing.T) {
	root := &ast.Program{Body: []ast.Statement{
		&ast.VariableDeclaration{Kind: ast.DeclLet, Declarations: []*ast.VariableDeclarator{
			{ID: &ast.Identifier{Name: "a"}},
		}},
		&ast.VariableDeclaration{Kind: ast.DeclLet, Declarations: []*ast.VariableDeclarator{
			{ID: &ast.Identifier{Name: "b"}},
		}},
	}}
	require.NoError(t, Parentify(root))

	tr := NewSimplifying()
	_, err := traverse.Replace(root, tr.Visitor(NodeStageSimplifying))
	require.NoError(t, err)

	require.Len(t, root.Body, 1)
	merged := root.Body[0].(*ast.VariableDeclaration)
	require.Len(t, merged.Declarations, 2)
	require.Equal(t, "a", merged.Declarations[0].ID.(*ast.Identifier).Name)
	require.Equal(t, "b", merged.Declarations[1].ID.(*ast.Identifier).Name)
}

func TestSimplifyingDoesNotMergeDifferentKinds(t *testing.T) {
	root := &ast.Program{Body: []ast.Statement{
		&ast.VariableDeclaration{Kind: ast.DeclLet, Declarations: []*ast.VariableDeclarator{
			{ID: &ast.Identifier{Name: "a"}},
		}},
		&ast.VariableDeclaration{Kind: ast.DeclConst, Declarations: []*ast.VariableDeclarator{
			{ID: &ast.Identifier{Name: "b"}},
		}},
	}}
	require.NoError(t, Parentify(root))

	tr := NewSimplifying()
	_, err := traverse.Replace(root, tr.Visitor(NodeStageSimplifying))
	require.NoError(t, err)

	require.Len(t, root.Body, 2)
}
