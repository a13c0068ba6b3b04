package transform

import (
	"encoding/base64"
	"fmt"
	"strings"

	"jsobfuscate/ast"
	"jsobfuscate/parse"
	"jsobfuscate/visit"
)

// stringArray replaces string literals with calls into a generated
// decode function backed by a single array of XOR+base64 encoded
// values, adapted from the teacher's string_encryption.go: the same
// per-byte XOR against a random key, the same "generate decode
// function source text, parse it, splice the declaration into the
// program" shape as addDecryptFunction — except where the teacher
// reparses with go/parser because it already only ever deals in Go
// source, this pipeline reparses with its own parse façade, since a
// JS AST node, unlike a go/ast one, cannot be constructed once and
// reused as a shared subtree without violating the tree's single-parent
// invariant.
type stringArray struct {
	PrepareFinalizeNoop
	key       []byte
	gen       *nameGenerator
	arrayName string
	fnName    string
	values    []string // encoded string literals, in insertion order
	index     map[string]int
}

// NewStringArray builds the built-in StringArray transformer.
func NewStringArray() Transformer {
	return &stringArray{}
}

func (*stringArray) Name() Name           { return NameStringArray }
func (*stringArray) Dependencies() []Name { return []Name{NameParentification} }

func (t *stringArray) Prepare(root *ast.Program) error {
	t.key = []byte(randomHex(8))
	t.gen = newNameGenerator()
	t.arrayName = "_" + t.gen.next()
	t.fnName = "_" + t.gen.next()
	t.values = nil
	t.index = make(map[string]int)
	return nil
}

func (t *stringArray) encrypt(text string) string {
	raw := []byte(text)
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = b ^ t.key[i%len(t.key)]
	}
	return base64.StdEncoding.EncodeToString(out)
}

func (t *stringArray) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageStringArray {
		return nil
	}
	return &visit.Visitor{
		Enter: func(n ast.Node, parent ast.Node) visit.Result {
			lit, ok := n.(*ast.StringLiteral)
			if !ok || ast.Ignored(n) || lit.Value == "" {
				return visit.Same()
			}
			encoded := t.encrypt(lit.Value)
			idx, ok := t.index[encoded]
			if !ok {
				idx = len(t.values)
				t.values = append(t.values, encoded)
				t.index[encoded] = idx
			}
			call := &ast.CallExpression{
				Callee: &ast.Identifier{Name: t.fnName},
				Arguments: []ast.Expression{
					&ast.NumberLiteral{Value: float64(idx), Raw: fmt.Sprintf("%d", idx)},
				},
			}
			ast.MarkIgnored(call, true)
			return visit.Replace(call)
		},
	}
}

func (t *stringArray) Finalize(root *ast.Program) (*ast.Program, error) {
	if len(t.values) == 0 {
		return root, nil
	}
	decl, err := parse.Parse(t.declarationSource(), parse.Options{Filename: "<string-array>"})
	if err != nil {
		return nil, fmt.Errorf("transform: string array splice: %w", err)
	}
	for _, s := range decl.Body {
		ast.MarkIgnored(s, true)
	}
	root.Body = append(decl.Body, root.Body...)
	return root, nil
}

// declarationSource renders the array literal and decode function as
// JS source text, mirroring generateDecryptFunction's string-building
// approach — concrete indentation and formatting do not matter here
// since this text is immediately reparsed, never emitted directly.
func (t *stringArray) declarationSource() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "var %s = [", t.arrayName)
	for i, v := range t.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q", v)
	}
	sb.WriteString("];\n")

	fmt.Fprintf(&sb, "function %s(i) {\n", t.fnName)
	fmt.Fprintf(&sb, "  var data = atob(%s[i]);\n", t.arrayName)
	sb.WriteString("  var key = [")
	for i, b := range t.key {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", b)
	}
	sb.WriteString("];\n")
	sb.WriteString("  var result = '';\n")
	sb.WriteString("  for (var j = 0; j < data.length; j++) {\n")
	sb.WriteString("    result += String.fromCharCode(data.charCodeAt(j) ^ key[j % key.length]);\n")
	sb.WriteString("  }\n")
	sb.WriteString("  return result;\n")
	sb.WriteString("}\n")
	return sb.String()
}
