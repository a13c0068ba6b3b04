package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
)

func TestParentifySetsParentOnEveryDescendant(t *testing.T) {
	stmt := &ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}}
	root := &ast.Program{Body: []ast.Statement{stmt}}

	require.NoError(t, Parentify(root))

	require.Same(t, ast.Node(root), ast.ParentOf(stmt))
	require.Same(t, ast.Node(stmt), ast.ParentOf(stmt.Expr.(*ast.Identifier)))
}

func TestParentificationHasNoDependencies(t *testing.T) {
	p := NewParentification()
	require.Empty(t, p.Dependencies())
	require.Equal(t, NameParentification, p.Name())
}
