package transform

import (
	"strconv"

	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// converting normalizes literal surface syntax that has more than one
// valid spelling into a single canonical but harder-to-skim form:
// numeric literals are rewritten into their decimal text, and dotted
// member access (`obj.name`) is rewritten into bracket form with a
// string key (`obj["name"]`) — the direction a real obfuscator's
// Converting stage takes once property names have already been
// renamed, so the rewrite happens after RenameProperties in stage
// order and never interferes with it.
type converting struct {
	PrepareFinalizeNoop
}

// NewConverting builds the built-in Converting transformer.
func NewConverting() Transformer { return &converting{} }

func (*converting) Name() Name           { return NameConverting }
func (*converting) Dependencies() []Name { return []Name{NameParentification} }

func (t *converting) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageConverting {
		return nil
	}
	return &visit.Visitor{
		Enter: func(n ast.Node, parent ast.Node) visit.Result {
			if ast.Ignored(n) {
				return visit.Same()
			}
			switch lit := n.(type) {
			case *ast.NumberLiteral:
				raw := strconv.FormatFloat(lit.Value, 'g', -1, 64)
				if raw == lit.Raw {
					return visit.Same()
				}
				return visit.Replace(&ast.NumberLiteral{Value: lit.Value, Raw: raw})
			case *ast.MemberExpression:
				if lit.Computed {
					return visit.Same()
				}
				id, ok := lit.Property.(*ast.Identifier)
				if !ok {
					return visit.Same()
				}
				lit.Computed = true
				lit.Property = &ast.StringLiteral{Value: id.Name, Raw: strconv.Quote(id.Name)}
				return visit.Same()
			}
			return visit.Same()
		},
	}
}
