package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
)

func TestSetParentAndParentOf(t *testing.T) {
	parent := &ast.BlockStatement{}
	child := &ast.ExpressionStatement{}

	require.Nil(t, ast.ParentOf(child))
	ast.SetParent(child, parent)
	require.Same(t, ast.Node(parent), ast.ParentOf(child))
}

func TestMarkIgnored(t *testing.T) {
	n := &ast.Identifier{Name: "x"}
	require.False(t, ast.Ignored(n))
	ast.MarkIgnored(n, true)
	require.True(t, ast.Ignored(n))
	ast.MarkIgnored(n, false)
	require.False(t, ast.Ignored(n))
}

func TestRangeAndLocAccessors(t *testing.T) {
	n := &ast.NumberLiteral{Value: 1, Raw: "1"}
	ast.SetRange(n, ast.Range{Start: 3, End: 4})
	require.Equal(t, ast.Range{Start: 3, End: 4}, ast.RangeOf(n))

	ast.SetStartLoc(n, ast.Loc{Line: 2, Column: 5})
	require.Equal(t, ast.Loc{Line: 2, Column: 5}, ast.StartLoc(n))
}

func TestLeadingComments(t *testing.T) {
	n := &ast.VariableDeclaration{Kind: ast.DeclLet}
	require.Empty(t, ast.LeadingComments(n))
	ast.AddLeadingComment(n, ast.Comment{Kind: ast.CommentLine, Text: "// note"})
	require.Len(t, ast.LeadingComments(n), 1)
}
