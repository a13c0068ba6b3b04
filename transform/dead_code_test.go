package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
	"jsobfuscate/traverse"
)

func bigFunctionBody() *ast.BlockStatement {
	return &ast.BlockStatement{Body: []ast.Statement{
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "b"}},
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "c"}},
	}}
}

func TestDeadCodeInjectionPrependsJunkToLargeBodies(t *testing.T) {
	fn := &ast.FunctionDeclaration{ID: &ast.Identifier{Name: "f"}, Body: bigFunctionBody()}
	root := &ast.Program{Body: []ast.Statement{fn}}
	require.NoError(t, Parentify(root))

	tr := NewDeadCodeInjection()
	require.NoError(t, tr.Prepare(root))
	_, err := traverse.Replace(root, tr.Visitor(NodeStageDeadCodeInjection))
	require.NoError(t, err)

	require.Len(t, fn.Body.Body, 4) // 1 injected + 3 original
	junk, ok := fn.Body.Body[0].(*ast.BlockStatement)
	require.True(t, ok)
	require.True(t, ast.Ignored(junk))
}

func TestDeadCodeInjectionSkipsSmallBodies(t *testing.T) {
	fn := &ast.FunctionDeclaration{ID: &ast.Identifier{Name: "f"}, Body: &ast.BlockStatement{
		Body: []ast.Statement{&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}}},
	}}
	root := &ast.Program{Body: []ast.Statement{fn}}
	require.NoError(t, Parentify(root))

	tr := NewDeadCodeInjection()
	require.NoError(t, tr.Prepare(root))
	_, err := traverse.Replace(root, tr.Visitor(NodeStageDeadCodeInjection))
	require.NoError(t, err)

	require.Len(t, fn.Body.Body, 1, "a two-statements-or-fewer body must be left untouched")
}

func TestFunctionBodyHandlesBothDeclarationAndExpressionForms(t *testing.T) {
	decl := &ast.FunctionDeclaration{Body: &ast.BlockStatement{}}
	expr := &ast.FunctionExpression{Body: &ast.BlockStatement{}}
	require.Same(t, decl.Body, functionBody(decl))
	require.Same(t, expr.Body, functionBody(expr))
	require.Nil(t, functionBody(&ast.Identifier{}))
}
