// Package parse is the thin façade spec §4.6 calls for around a concrete
// ECMAScript parser: it hands source text to github.com/dop251/goja's
// recursive-descent parser and lowers the result into this module's own
// tagged-variant ast.Program, which is the only tree the rest of the
// pipeline ever sees. Nothing downstream imports goja.
package parse

import (
	"fmt"

	"github.com/dop251/goja/parser"

	ourast "jsobfuscate/ast"
)

// Options configures the façade. SourceType is copied onto the returned
// Program; it does not change how the source is parsed, and
// import/export statements are not accepted in either mode.
type Options struct {
	Filename   string
	SourceType ourast.SourceType
}

// Parse lowers source into this module's ast.Program, or returns an
// *Error wrapping whatever goja's parser reported.
func Parse(source string, opts Options) (*ourast.Program, error) {
	mode := parser.Mode(0)
	if opts.SourceType == ourast.SourceModule {
		// goja does not parse import/export syntax itself, so
		// SourceModule input is parsed in script mode too; SourceType
		// is only recorded on the returned Program.
	}
	prog, err := parser.ParseFile(nil, opts.Filename, source, mode)
	if err != nil {
		return nil, toError(opts.Filename, err)
	}
	l := &lowerer{filename: opts.Filename}
	out := &ourast.Program{
		SourceType: opts.SourceType,
	}
	body, lerr := l.statements(prog.Body)
	if lerr != nil {
		return nil, lerr
	}
	out.Body = body
	return out, nil
}

func toError(filename string, err error) error {
	if el, ok := err.(parser.ErrorList); ok && len(el) > 0 {
		pe := el[0]
		return &Error{Filename: filename, Line: pe.Position.Line, Column: pe.Position.Column, Err: fmt.Errorf("%s", pe.Message)}
	}
	return &Error{Filename: filename, Err: err}
}

// lowerer holds conversion state; currently stateless beyond the
// filename used for diagnostics, kept as a struct so position-tracking
// fields (a running file.FileSet lookup, if ever needed for accurate
// line/column instead of byte offsets) have somewhere to live without
// another signature change.
type lowerer struct {
	filename string
}

func (l *lowerer) unsupported(construct string) error {
	return &Error{Filename: l.filename, Err: &unsupportedError{construct: construct}}
}
