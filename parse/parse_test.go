package parse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
	"jsobfuscate/parse"
)

func TestParseVariableDeclaration(t *testing.T) {
	prog, err := parse.Parse("var x = 1;", parse.Options{Filename: "t.js"})
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	require.Equal(t, ast.DeclVar, decl.Kind)
	require.Len(t, decl.Declarations, 1)
	require.Equal(t, "x", decl.Declarations[0].ID.(*ast.Identifier).Name)
}

func TestParseFunctionDeclaration(t *testing.T) {
	prog, err := parse.Parse("function add(a, b) { return a + b; }", parse.Options{Filename: "t.js"})
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	fn, ok := prog.Body[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	require.Equal(t, "add", fn.ID.Name)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body.Body, 1)

	ret, ok := fn.Body.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	bin, ok := ret.Argument.(*ast.BinaryExpression)
	require.True(t, ok)
	require.Equal(t, "+", bin.Operator)
}

func TestParseReportsSyntaxError(t *testing.T) {
	_, err := parse.Parse("function (", parse.Options{Filename: "t.js"})
	require.Error(t, err)

	var perr *parse.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "t.js", perr.Filename)
}
