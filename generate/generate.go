// Package generate is the façade spec §4.6 calls for around a concrete
// code generator: a recursive-descent printer turning this module's own
// ast.Program back into JavaScript source text, plus a source-map-v3
// builder. Nothing downstream needs to know how printing works; callers
// only see Options in, Output out.
package generate

import (
	"strings"

	"jsobfuscate/ast"
)

// Options mirrors spec §4.6's generator option surface.
type Options struct {
	Compact  bool // omit newlines and indentation; spaces inside statements are kept
	Comments bool // emit leading comments attached to nodes; trailing comments are not printed
	// Verbatim, when set, makes the printer honor ast.SetVerbatimText on
	// any node kind: a marked node's recorded text is emitted in place of
	// its normal per-Kind rendering (spec §4.6). It also gates the older,
	// narrower NumberLiteral/StringLiteral.Raw passthrough.
	Verbatim      bool
	SourceMap     bool // build a source-map-v3 payload alongside the code
	SourceContent string // embedded verbatim into the map's sourcesContent when SourceMap is set
	SourceFile    string // the "file" field of the map and the name used in mappings
}

// Output is spec §6's {code, map} result shape.
type Output struct {
	Code string
	Map  string // empty unless Options.SourceMap was set
}

// Generate prints root per opts.
func Generate(root *ast.Program, opts Options) (Output, error) {
	p := &printer{opts: opts}
	p.program(root)
	out := Output{Code: p.sb.String()}
	if opts.SourceMap {
		out.Map = buildSourceMap(opts, p.mappings)
	}
	return out, nil
}

type printer struct {
	sb       strings.Builder
	opts     Options
	indent   int
	line     int
	column   int
	mappings []mapping
}

// mapping records one generated position's correspondence to the
// original source, consumed by buildSourceMap.
type mapping struct {
	genLine, genColumn int
	srcLine, srcColumn int
}

func (p *printer) write(s string) {
	for _, r := range s {
		if r == '\n' {
			p.line++
			p.column = 0
		} else {
			p.column++
		}
	}
	p.sb.WriteString(s)
}

func (p *printer) mark(n ast.Node) {
	if !p.opts.SourceMap || n == nil {
		return
	}
	loc := ast.StartLoc(n)
	p.mappings = append(p.mappings, mapping{
		genLine: p.line, genColumn: p.column,
		srcLine: loc.Line, srcColumn: loc.Column,
	})
}

func (p *printer) newline() {
	if p.opts.Compact {
		return
	}
	p.write("\n")
	p.write(strings.Repeat("  ", p.indent))
}

func (p *printer) space() {
	if !p.opts.Compact {
		p.write(" ")
	}
}

func (p *printer) leadingComments(n ast.Node) {
	if !p.opts.Comments {
		return
	}
	for _, c := range ast.LeadingComments(n) {
		if c.Kind == ast.CommentBlock {
			p.write("/*" + c.Text + "*/")
		} else {
			p.write("//" + c.Text)
		}
		p.newline()
	}
}
