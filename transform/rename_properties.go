package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// wellKnownProperties mirrors the teacher's reflection.go concern: some
// property names are meaningful to the host (there, struct tags and
// interface satisfaction observed via reflection; here, well-known
// object members the runtime or a consuming library looks up by exact
// name) and must never be renamed regardless of how the binding that
// holds the object was obtained.
var wellKnownProperties = map[string]bool{
	"constructor": true, "prototype": true, "__proto__": true,
	"length": true, "name": true, "message": true, "stack": true,
	"then": true, "catch": true, "finally": true,
	"toString": true, "valueOf": true, "Symbol.iterator": true,
	"default": true, "exports": true, "module": true,
}

// renameProperties renames object-literal and non-computed
// member-expression property keys, mirroring how the teacher separates
// identifier renaming (name_generator.go's varMapping/funcMapping) from
// struct-field protection (collectProtectedNames in name_obfuscation.go)
// — here the split is identifiers vs. property keys instead of
// variables vs. struct fields, but the principle (one generator, two
// disjoint protected sets) is the same.
type renameProperties struct {
	PrepareFinalizeNoop
	gen     *nameGenerator
	mapping map[string]string
}

// NewRenameProperties builds the built-in RenameProperties transformer.
func NewRenameProperties() Transformer {
	return &renameProperties{}
}

func (*renameProperties) Name() Name         { return NameRenameProperties }
func (*renameProperties) Dependencies() []Name { return []Name{NameParentification} }

func (t *renameProperties) Prepare(root *ast.Program) error {
	t.gen = newNameGenerator()
	t.mapping = make(map[string]string)
	for name := range wellKnownProperties {
		t.gen.reserve(name)
	}
	return nil
}

func (t *renameProperties) nameFor(original string) string {
	if wellKnownProperties[original] {
		return original
	}
	if renamed, ok := t.mapping[original]; ok {
		return renamed
	}
	renamed := t.gen.next()
	t.mapping[original] = renamed
	return renamed
}

func (t *renameProperties) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageRenameProperties {
		return nil
	}
	return &visit.Visitor{
		Enter: func(n ast.Node, parent ast.Node) visit.Result {
			if ast.Ignored(n) {
				return visit.Same()
			}
			switch p := n.(type) {
			case *ast.MemberExpression:
				if p.Computed {
					return visit.Same()
				}
				id, ok := p.Property.(*ast.Identifier)
				if !ok {
					return visit.Same()
				}
				renamed := t.nameFor(id.Name)
				if renamed == id.Name {
					return visit.Same()
				}
				p.Property = &ast.Identifier{Name: renamed}
				return visit.Same()
			case *ast.Property:
				if p.Computed || p.Shorthand {
					return visit.Same()
				}
				id, ok := p.Key.(*ast.Identifier)
				if !ok {
					return visit.Same()
				}
				renamed := t.nameFor(id.Name)
				if renamed == id.Name {
					return visit.Same()
				}
				p.Key = &ast.Identifier{Name: renamed}
				return visit.Same()
			}
			return visit.Same()
		},
	}
}
