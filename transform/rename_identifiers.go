package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// reservedWords mirrors the teacher's protectedIdentifiers map in
// name_obfuscation.go: identifiers a rename transformer must never
// produce or rebind because the host language (there Go builtins, here
// ECMAScript keywords) gives them meaning no declaration can override.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
	"let": true, "static": true, "await": true, "async": true,
	"null": true, "true": true, "false": true, "undefined": true,
	"arguments": true, "eval": true, "globalThis": true, "window": true, "global": true,
}

// renameIdentifiers renames local bindings (function/class names,
// declared variables, function parameters) to short generated names.
// It does not run a full scope resolver (spec leaves the concrete
// transformer body out of scope); instead it protects anything that
// could plausibly be observed from outside the rewritten program —
// top-level bindings and any identifier reachable only through
// member/computed access are left alone — which mirrors how the
// teacher's shouldProtect defaults to "protect unless proven local"
// rather than attempting whole-program points-to analysis.
type renameIdentifiers struct {
	PrepareFinalizeNoop
	gen      *nameGenerator
	mapping  map[string]string
	protect  map[string]bool
}

// NewRenameIdentifiers builds the built-in RenameIdentifiers transformer.
func NewRenameIdentifiers() Transformer {
	return &renameIdentifiers{}
}

func (*renameIdentifiers) Name() Name { return NameRenameIdentifiers }
func (*renameIdentifiers) Dependencies() []Name {
	return []Name{NameParentification}
}

func (t *renameIdentifiers) Prepare(root *ast.Program) error {
	t.gen = newNameGenerator()
	t.mapping = make(map[string]string)
	t.protect = make(map[string]bool)
	for name := range reservedWords {
		t.gen.reserve(name)
	}
	// Top-level function/class/var declarations are kept stable: they
	// are the only bindings this transformer can prove might be read
	// from outside the program being rewritten (e.g. re-exported, or
	// relied on by a caller's eval'd glue code), so they are protected
	// rather than renamed, exactly like the teacher protects exported
	// Go identifiers when ObfuscateExported is false.
	for _, s := range root.Body {
		switch d := s.(type) {
		case *ast.FunctionDeclaration:
			if d.ID != nil {
				t.protect[d.ID.Name] = true
			}
		case *ast.ClassDeclaration:
			if d.ID != nil {
				t.protect[d.ID.Name] = true
			}
		case *ast.VariableDeclaration:
			for _, decl := range d.Declarations {
				if id, ok := decl.ID.(*ast.Identifier); ok {
					t.protect[id.Name] = true
				}
			}
		}
	}
	for name := range t.protect {
		t.gen.reserve(name)
	}
	return nil
}

func (t *renameIdentifiers) nameFor(original string) string {
	if t.protect[original] || reservedWords[original] {
		return original
	}
	if renamed, ok := t.mapping[original]; ok {
		return renamed
	}
	renamed := t.gen.next()
	t.mapping[original] = renamed
	return renamed
}

func (t *renameIdentifiers) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageRenameIdentifiers {
		return nil
	}
	return &visit.Visitor{
		Enter: func(n ast.Node, parent ast.Node) visit.Result {
			id, ok := n.(*ast.Identifier)
			if !ok || ast.Ignored(n) {
				return visit.Same()
			}
			// A property-position Identifier (obj.prop, {prop: v})
			// belongs to RenameProperties, never to this transformer.
			if mem, ok := parent.(*ast.MemberExpression); ok && !mem.Computed && mem.Property == id {
				return visit.Same()
			}
			if prop, ok := parent.(*ast.Property); ok && prop.Key == id && !prop.Computed && prop.Value != id {
				return visit.Same()
			}
			renamed := t.nameFor(id.Name)
			if renamed == id.Name {
				return visit.Same()
			}
			return visit.Replace(&ast.Identifier{Name: renamed})
		},
	}
}
