package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
	"jsobfuscate/traverse"
)

func TestAllSimpleAcceptsExpressionsAndDeclarations(t *testing.T) {
	require.True(t, allSimple([]ast.Statement{
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
		&ast.VariableDeclaration{Kind: ast.DeclLet},
	}))
}

func TestAllSimpleRejectsControlFlow(t *testing.T) {
	require.False(t, allSimple([]ast.Statement{
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
		&ast.IfStatement{Test: &ast.BooleanLiteral{Value: true}},
	}))
}

func TestItoa(t *testing.T) {
	cases := map[int]string{0: "0", 1: "1", 9: "9", 10: "10", 42: "42", 137: "137"}
	for n, want := range cases {
		require.Equal(t, want, itoa(n))
	}
}

func TestControlFlowFlatteningRewritesSimpleBlock(t *testing.T) {
	block := &ast.BlockStatement{Body: []ast.Statement{
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "b"}},
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "c"}},
	}}
	fn := &ast.FunctionDeclaration{ID: &ast.Identifier{Name: "f"}, Body: block}
	root := &ast.Program{Body: []ast.Statement{fn}}
	require.NoError(t, Parentify(root))

	tr := NewControlFlowFlattening()
	require.NoError(t, tr.Prepare(root))
	_, err := traverse.Replace(root, tr.Visitor(NodeStageControlFlowFlattening))
	require.NoError(t, err)

	require.Len(t, block.Body, 1)
	wrapper, ok := block.Body[0].(*ast.BlockStatement)
	require.True(t, ok)
	require.True(t, ast.Ignored(wrapper))
	require.Len(t, wrapper.Body, 2) // state init + labeled dispatch loop

	labeled, ok := wrapper.Body[1].(*ast.LabeledStatement)
	require.True(t, ok)
	require.Equal(t, loopLabelName, labeled.Label.Name)

	loop, ok := labeled.Body.(*ast.WhileStatement)
	require.True(t, ok)
	sw, ok := loop.Body.(*ast.BlockStatement).Body[0].(*ast.SwitchStatement)
	require.True(t, ok)
	require.Len(t, sw.Cases, 4) // 3 statements + default
	require.Nil(t, sw.Cases[3].Test)
}

func TestControlFlowFlatteningLeavesSmallBlocksAlone(t *testing.T) {
	block := &ast.BlockStatement{Body: []ast.Statement{
		&ast.ExpressionStatement{Expr: &ast.Identifier{Name: "a"}},
	}}
	fn := &ast.FunctionDeclaration{ID: &ast.Identifier{Name: "f"}, Body: block}
	root := &ast.Program{Body: []ast.Statement{fn}}
	require.NoError(t, Parentify(root))

	tr := NewControlFlowFlattening()
	require.NoError(t, tr.Prepare(root))
	_, err := traverse.Replace(root, tr.Visitor(NodeStageControlFlowFlattening))
	require.NoError(t, err)

	require.Len(t, block.Body, 1)
	_, stillExpr := block.Body[0].(*ast.ExpressionStatement)
	require.True(t, stillExpr)
}
