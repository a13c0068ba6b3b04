package generate

import (
	"strconv"
	"strings"

	"jsobfuscate/ast"
)

func (p *printer) program(prog *ast.Program) {
	if prog.Hashbang != "" {
		p.write(prog.Hashbang)
	}
	for i, s := range prog.Body {
		if i > 0 {
			p.newline()
		}
		p.statement(s)
	}
}

func (p *printer) block(b *ast.BlockStatement) {
	p.write("{")
	p.indent++
	for _, s := range b.Body {
		p.newline()
		p.statement(s)
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) statement(s ast.Statement) {
	if s == nil {
		return
	}
	p.leadingComments(s)
	p.mark(s)
	if p.opts.Verbatim {
		if text, ok := ast.VerbatimTextOf(s); ok {
			p.write(text)
			return
		}
	}
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		p.expression(n.Expr, 0)
		p.write(";")

	case *ast.BlockStatement:
		p.block(n)

	case *ast.EmptyStatement:
		p.write(";")

	case *ast.DebuggerStatement:
		p.write("debugger;")

	case *ast.VariableDeclaration:
		p.write(declKeyword(n.Kind))
		p.write(" ")
		for i, d := range n.Declarations {
			if i > 0 {
				p.write(", ")
			}
			p.pattern(d.ID)
			if d.Init != nil {
				p.write(" = ")
				p.expression(d.Init, 2)
			}
		}
		p.write(";")

	case *ast.FunctionDeclaration:
		p.printFunction("function", n.ID, n.Params, n.Body, n.Generator, n.Async)

	case *ast.ReturnStatement:
		p.write("return")
		if n.Argument != nil {
			p.write(" ")
			p.expression(n.Argument, 0)
		}
		p.write(";")

	case *ast.IfStatement:
		p.write("if (")
		p.expression(n.Test, 0)
		p.write(") ")
		p.statement(n.Consequent)
		if n.Alternate != nil {
			p.write(" else ")
			p.statement(n.Alternate)
		}

	case *ast.ForStatement:
		p.write("for (")
		p.forHeadNode(n.Init)
		p.write("; ")
		p.expression(n.Test, 0)
		p.write("; ")
		p.expression(n.Update, 0)
		p.write(") ")
		p.statement(n.Body)

	case *ast.ForInStatement:
		p.write("for (")
		p.forHeadNode(n.Left)
		p.write(" in ")
		p.expression(n.Right, 0)
		p.write(") ")
		p.statement(n.Body)

	case *ast.ForOfStatement:
		p.write("for (")
		if n.Await {
			p.write("await ")
		}
		p.forHeadNode(n.Left)
		p.write(" of ")
		p.expression(n.Right, 0)
		p.write(") ")
		p.statement(n.Body)

	case *ast.WhileStatement:
		p.write("while (")
		p.expression(n.Test, 0)
		p.write(") ")
		p.statement(n.Body)

	case *ast.DoWhileStatement:
		p.write("do ")
		p.statement(n.Body)
		p.write(" while (")
		p.expression(n.Test, 0)
		p.write(");")

	case *ast.BreakStatement:
		p.write("break")
		if n.Label != nil {
			p.write(" " + n.Label.Name)
		}
		p.write(";")

	case *ast.ContinueStatement:
		p.write("continue")
		if n.Label != nil {
			p.write(" " + n.Label.Name)
		}
		p.write(";")

	case *ast.SwitchStatement:
		p.write("switch (")
		p.expression(n.Discriminant, 0)
		p.write(") {")
		p.indent++
		for _, c := range n.Cases {
			p.newline()
			if c.Test != nil {
				p.write("case ")
				p.expression(c.Test, 0)
				p.write(":")
			} else {
				p.write("default:")
			}
			p.indent++
			for _, st := range c.Consequent {
				p.newline()
				p.statement(st)
			}
			p.indent--
		}
		p.indent--
		p.newline()
		p.write("}")

	case *ast.ThrowStatement:
		p.write("throw ")
		p.expression(n.Argument, 0)
		p.write(";")

	case *ast.TryStatement:
		p.write("try ")
		p.block(n.Block)
		if n.Handler != nil {
			p.write(" catch ")
			if n.Handler.Param != nil {
				p.write("(")
				p.pattern(n.Handler.Param)
				p.write(") ")
			}
			p.block(n.Handler.Body)
		}
		if n.Finalizer != nil {
			p.write(" finally ")
			p.block(n.Finalizer)
		}

	case *ast.LabeledStatement:
		p.write(n.Label.Name + ": ")
		p.statement(n.Body)

	case *ast.ClassDeclaration:
		p.printClass(n.ID, n.SuperClass, n.Body)

	case *ast.ImportDeclaration:
		p.printImport(n)

	case *ast.ExportNamedDeclaration:
		p.printExportNamed(n)

	case *ast.ExportDefaultDeclaration:
		p.write("export default ")
		switch d := n.Declaration.(type) {
		case ast.Statement:
			p.statement(d)
		case ast.Expression:
			p.expression(d, 2)
			p.write(";")
		}

	case *ast.ExportAllDeclaration:
		p.write("export * ")
		if n.Exported != nil {
			p.write("as " + n.Exported.Name + " ")
		}
		p.write("from " + strconv.Quote(n.Source.Value) + ";")

	default:
		p.write("/* unsupported statement */;")
	}
}

func (p *printer) forHeadNode(n ast.Node) {
	switch v := n.(type) {
	case nil:
	case *ast.VariableDeclaration:
		p.write(declKeyword(v.Kind) + " ")
		for i, d := range v.Declarations {
			if i > 0 {
				p.write(", ")
			}
			p.pattern(d.ID)
			if d.Init != nil {
				p.write(" = ")
				p.expression(d.Init, 2)
			}
		}
	case ast.Pattern:
		p.pattern(v)
	case ast.Expression:
		p.expression(v, 0)
	}
}

func declKeyword(k ast.DeclarationKind) string {
	switch k {
	case ast.DeclLet:
		return "let"
	case ast.DeclConst:
		return "const"
	default:
		return "var"
	}
}

func (p *printer) printFunction(keyword string, id *ast.Identifier, params []ast.Pattern, body *ast.BlockStatement, generator, async bool) {
	if async {
		p.write("async ")
	}
	p.write(keyword)
	if generator {
		p.write("*")
	}
	if id != nil {
		p.write(" " + id.Name)
	}
	p.write("(")
	p.paramList(params)
	p.write(") ")
	p.block(body)
}

func (p *printer) paramList(params []ast.Pattern) {
	for i, prm := range params {
		if i > 0 {
			p.write(", ")
		}
		p.pattern(prm)
	}
}

func (p *printer) printClass(id *ast.Identifier, super ast.Expression, body *ast.ClassBody) {
	p.write("class")
	if id != nil {
		p.write(" " + id.Name)
	}
	if super != nil {
		p.write(" extends ")
		p.expression(super, 0)
	}
	p.write(" {")
	p.indent++
	for _, m := range body.Body {
		p.newline()
		p.classMember(m)
	}
	p.indent--
	p.newline()
	p.write("}")
}

func (p *printer) classMember(n ast.Node) {
	switch m := n.(type) {
	case *ast.MethodDefinition:
		if m.Static {
			p.write("static ")
		}
		switch m.Kind {
		case ast.MethodGet:
			p.write("get ")
		case ast.MethodSet:
			p.write("set ")
		}
		if m.Value.Async {
			p.write("async ")
		}
		if m.Value.Generator {
			p.write("*")
		}
		p.propertyKey(m.Key, m.Computed)
		p.write("(")
		p.paramList(m.Value.Params)
		p.write(") ")
		p.block(m.Value.Body)
	case *ast.PropertyDefinition:
		if m.Static {
			p.write("static ")
		}
		p.propertyKey(m.Key, m.Computed)
		if m.Value != nil {
			p.write(" = ")
			p.expression(m.Value, 2)
		}
		p.write(";")
	}
}

func (p *printer) propertyKey(key ast.Expression, computed bool) {
	if computed {
		p.write("[")
		p.expression(key, 0)
		p.write("]")
		return
	}
	p.expression(key, 0)
}

func (p *printer) printImport(n *ast.ImportDeclaration) {
	p.write("import ")
	var named []string
	for _, s := range n.Specifiers {
		switch spec := s.(type) {
		case *ast.ImportDefaultSpecifier:
			p.write(spec.Local.Name + ", ")
		case *ast.ImportNamespaceSpecifier:
			p.write("* as " + spec.Local.Name + " ")
		case *ast.ImportSpecifier:
			if spec.Imported.Name == spec.Local.Name {
				named = append(named, spec.Local.Name)
			} else {
				named = append(named, spec.Imported.Name+" as "+spec.Local.Name)
			}
		}
	}
	if len(named) > 0 {
		p.write("{ " + strings.Join(named, ", ") + " } ")
	}
	p.write("from " + strconv.Quote(n.Source.Value) + ";")
}

func (p *printer) printExportNamed(n *ast.ExportNamedDeclaration) {
	p.write("export ")
	if n.Declaration != nil {
		p.statement(n.Declaration)
		return
	}
	names := make([]string, 0, len(n.Specifiers))
	for _, s := range n.Specifiers {
		if s.Local.Name == s.Exported.Name {
			names = append(names, s.Local.Name)
		} else {
			names = append(names, s.Local.Name+" as "+s.Exported.Name)
		}
	}
	p.write("{ " + strings.Join(names, ", ") + " }")
	if n.Source != nil {
		p.write(" from " + strconv.Quote(n.Source.Value))
	}
	p.write(";")
}
