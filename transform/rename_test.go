package transform

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
	"jsobfuscate/traverse"
)

func TestRenameIdentifiersProtectsTopLevelBindings(t *testing.T) {
	root := &ast.Program{
		Body: []ast.Statement{
			&ast.FunctionDeclaration{
				ID: &ast.Identifier{Name: "main"},
				Body: &ast.BlockStatement{Body: []ast.Statement{
					&ast.VariableDeclaration{
						Kind: ast.DeclLet,
						Declarations: []*ast.VariableDeclarator{
							{ID: &ast.Identifier{Name: "localVar"}},
						},
					},
				}},
			},
		},
	}
	require.NoError(t, Parentify(root))

	tr := NewRenameIdentifiers()
	require.NoError(t, tr.Prepare(root))

	_, err := traverse.Replace(root, tr.Visitor(NodeStageRenameIdentifiers))
	require.NoError(t, err)

	fn := root.Body[0].(*ast.FunctionDeclaration)
	require.Equal(t, "main", fn.ID.Name, "top-level function name must stay stable")

	decl := fn.Body.Body[0].(*ast.VariableDeclaration)
	require.NotEqual(t, "localVar", decl.Declarations[0].ID.(*ast.Identifier).Name)
}

func TestRenameIdentifiersSkipsPropertyPositions(t *testing.T) {
	root := &ast.Program{
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expr: &ast.MemberExpression{
				Object:   &ast.Identifier{Name: "obj"},
				Property: &ast.Identifier{Name: "field"},
			}},
		},
	}
	require.NoError(t, Parentify(root))

	tr := NewRenameIdentifiers()
	require.NoError(t, tr.Prepare(root))
	_, err := traverse.Replace(root, tr.Visitor(NodeStageRenameIdentifiers))
	require.NoError(t, err)

	mem := root.Body[0].(*ast.ExpressionStatement).Expr.(*ast.MemberExpression)
	require.Equal(t, "field", mem.Property.(*ast.Identifier).Name)
	require.NotEqual(t, "obj", mem.Object.(*ast.Identifier).Name)
}

func TestRenamePropertiesProtectsWellKnownNames(t *testing.T) {
	root := &ast.Program{
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expr: &ast.MemberExpression{
				Object:   &ast.Identifier{Name: "obj"},
				Property: &ast.Identifier{Name: "constructor"},
			}},
			&ast.ExpressionStatement{Expr: &ast.MemberExpression{
				Object:   &ast.Identifier{Name: "obj"},
				Property: &ast.Identifier{Name: "secret"},
			}},
		},
	}
	require.NoError(t, Parentify(root))

	tr := NewRenameProperties()
	require.NoError(t, tr.Prepare(root))
	_, err := traverse.Replace(root, tr.Visitor(NodeStageRenameProperties))
	require.NoError(t, err)

	first := root.Body[0].(*ast.ExpressionStatement).Expr.(*ast.MemberExpression)
	require.Equal(t, "constructor", first.Property.(*ast.Identifier).Name)

	second := root.Body[1].(*ast.ExpressionStatement).Expr.(*ast.MemberExpression)
	require.NotEqual(t, "secret", second.Property.(*ast.Identifier).Name)
}

func TestRenamePropertiesSkipsComputedAccess(t *testing.T) {
	root := &ast.Program{
		Body: []ast.Statement{
			&ast.ExpressionStatement{Expr: &ast.MemberExpression{
				Object:   &ast.Identifier{Name: "obj"},
				Property: &ast.StringLiteral{Value: "dynamic", Raw: `"dynamic"`},
				Computed: true,
			}},
		},
	}
	require.NoError(t, Parentify(root))

	tr := NewRenameProperties()
	require.NoError(t, tr.Prepare(root))
	_, err := traverse.Replace(root, tr.Visitor(NodeStageRenameProperties))
	require.NoError(t, err)

	mem := root.Body[0].(*ast.ExpressionStatement).Expr.(*ast.MemberExpression)
	require.Equal(t, "dynamic", mem.Property.(*ast.StringLiteral).Value)
}
