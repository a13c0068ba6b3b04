package generate

import (
	"strconv"

	"jsobfuscate/ast"
)

// precedence gives each expression node kind a binding power; callers
// pass the minimum precedence their position requires and expression
// wraps in parens when the node binds looser than that.
func precedence(e ast.Expression) int {
	switch n := e.(type) {
	case *ast.SequenceExpression:
		return 0
	case *ast.AssignmentExpression:
		return 1
	case *ast.YieldExpression:
		return 1
	case *ast.ArrowFunctionExpression:
		return 1
	case *ast.ConditionalExpression:
		return 2
	case *ast.LogicalExpression:
		switch n.Operator {
		case "??":
			return 3
		case "||":
			return 4
		default: // "&&"
			return 5
		}
	case *ast.BinaryExpression:
		return binaryPrecedence(n.Operator)
	case *ast.UnaryExpression, *ast.AwaitExpression:
		return 14
	case *ast.UpdateExpression:
		return 15
	case *ast.NewExpression:
		return 17
	case *ast.CallExpression, *ast.MemberExpression:
		return 18
	default:
		return 20 // literals, identifiers, parenthesization never required
	}
}

func binaryPrecedence(op string) int {
	switch op {
	case "|":
		return 6
	case "^":
		return 7
	case "&":
		return 8
	case "==", "!=", "===", "!==":
		return 9
	case "<", ">", "<=", ">=", "in", "instanceof":
		return 10
	case "<<", ">>", ">>>":
		return 11
	case "+", "-":
		return 12
	case "*", "/", "%":
		return 13
	case "**":
		return 16
	default:
		return 10
	}
}

func (p *printer) expression(e ast.Expression, minPrec int) {
	if e == nil {
		return
	}
	wrap := precedence(e) < minPrec
	if wrap {
		p.write("(")
	}
	p.printExpr(e)
	if wrap {
		p.write(")")
	}
}

func (p *printer) printExpr(e ast.Expression) {
	p.mark(e)
	if p.opts.Verbatim {
		if text, ok := ast.VerbatimTextOf(e); ok {
			p.write(text)
			return
		}
	}
	switch n := e.(type) {
	case *ast.Identifier:
		p.write(n.Name)

	case *ast.PrivateIdentifier:
		p.write("#" + n.Name)

	case *ast.NumberLiteral:
		if p.opts.Verbatim && n.Raw != "" {
			p.write(n.Raw)
		} else {
			p.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
		}

	case *ast.StringLiteral:
		if p.opts.Verbatim && n.Raw != "" {
			p.write(n.Raw)
		} else {
			p.write(strconv.Quote(n.Value))
		}

	case *ast.BooleanLiteral:
		if n.Value {
			p.write("true")
		} else {
			p.write("false")
		}

	case *ast.NullLiteral:
		p.write("null")

	case *ast.RegExpLiteral:
		p.write("/" + n.Pattern + "/" + n.Flags)

	case *ast.ThisExpression:
		p.write("this")

	case *ast.Super:
		p.write("super")

	case *ast.ArrayExpression:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.expression(el, 2)
		}
		p.write("]")

	case *ast.ObjectExpression:
		if len(n.Properties) == 0 {
			p.write("{}")
			break
		}
		p.write("{")
		p.indent++
		for i, prop := range n.Properties {
			if i > 0 {
				p.write(",")
			}
			p.newline()
			p.objectMember(prop)
		}
		p.indent--
		p.newline()
		p.write("}")

	case *ast.FunctionExpression:
		p.printFunction("function", n.ID, n.Params, n.Body, n.Generator, n.Async)

	case *ast.ArrowFunctionExpression:
		if n.Async {
			p.write("async ")
		}
		p.write("(")
		p.paramList(n.Params)
		p.write(") => ")
		switch b := n.Body.(type) {
		case *ast.BlockStatement:
			p.block(b)
		case ast.Expression:
			p.expression(b, 2)
		}

	case *ast.ClassExpression:
		p.printClass(n.ID, n.SuperClass, n.Body)

	case *ast.UnaryExpression:
		p.write(unaryText(n.Operator))
		p.expression(n.Argument, precedence(e))

	case *ast.UpdateExpression:
		if n.Prefix {
			p.write(n.Operator)
			p.expression(n.Argument, precedence(e))
		} else {
			p.expression(n.Argument, precedence(e))
			p.write(n.Operator)
		}

	case *ast.BinaryExpression:
		prec := precedence(e)
		p.expression(n.Left, prec)
		p.write(" " + n.Operator + " ")
		p.expression(n.Right, prec+1)

	case *ast.LogicalExpression:
		prec := precedence(e)
		p.expression(n.Left, prec)
		p.write(" " + n.Operator + " ")
		p.expression(n.Right, prec+1)

	case *ast.AssignmentExpression:
		p.assignTarget(n.Left)
		p.write(" " + n.Operator + " ")
		p.expression(n.Right, 1)

	case *ast.ConditionalExpression:
		p.expression(n.Test, 3)
		p.write(" ? ")
		p.expression(n.Consequent, 1)
		p.write(" : ")
		p.expression(n.Alternate, 1)

	case *ast.CallExpression:
		p.expression(n.Callee, 18)
		if n.Optional {
			p.write("?.")
		}
		p.write("(")
		for i, a := range n.Arguments {
			if i > 0 {
				p.write(", ")
			}
			p.expression(a, 2)
		}
		p.write(")")

	case *ast.NewExpression:
		p.write("new ")
		p.expression(n.Callee, 18)
		p.write("(")
		for i, a := range n.Arguments {
			if i > 0 {
				p.write(", ")
			}
			p.expression(a, 2)
		}
		p.write(")")

	case *ast.MemberExpression:
		p.expression(n.Object, 18)
		if n.Computed {
			if n.Optional {
				p.write("?.")
			}
			p.write("[")
			p.expression(n.Property, 0)
			p.write("]")
		} else {
			if n.Optional {
				p.write("?.")
			} else {
				p.write(".")
			}
			p.expression(n.Property, 0)
		}

	case *ast.SequenceExpression:
		for i, ex := range n.Expressions {
			if i > 0 {
				p.write(", ")
			}
			p.expression(ex, 1)
		}

	case *ast.TemplateLiteral:
		p.write("`")
		for i, q := range n.Quasis {
			p.write(q)
			if i < len(n.Expressions) {
				p.write("${")
				p.expression(n.Expressions[i], 0)
				p.write("}")
			}
		}
		p.write("`")

	case *ast.TaggedTemplateExpression:
		p.expression(n.Tag, 18)
		p.printExpr(n.Quasi)

	case *ast.SpreadElement:
		p.write("...")
		p.expression(n.Argument, 1)

	case *ast.YieldExpression:
		p.write("yield")
		if n.Delegate {
			p.write("*")
		}
		if n.Argument != nil {
			p.write(" ")
			p.expression(n.Argument, 1)
		}

	case *ast.AwaitExpression:
		p.write("await ")
		p.expression(n.Argument, precedence(e))

	default:
		p.write("/* unsupported expression */null")
	}
}

func (p *printer) assignTarget(n ast.Node) {
	switch t := n.(type) {
	case ast.Pattern:
		p.pattern(t)
	case ast.Expression:
		p.expression(t, 2)
	}
}

func (p *printer) objectMember(n ast.Node) {
	switch prop := n.(type) {
	case *ast.Property:
		if prop.Shorthand {
			p.expression(prop.Key, 0)
			return
		}
		switch prop.Kind {
		case ast.PropertyGet:
			p.write("get ")
		case ast.PropertySet:
			p.write("set ")
		}
		p.propertyKey(prop.Key, prop.Computed)
		p.write(": ")
		switch v := prop.Value.(type) {
		case ast.Expression:
			p.expression(v, 2)
		case ast.Pattern:
			p.pattern(v)
		}
	case *ast.SpreadElement:
		p.write("...")
		p.expression(prop.Argument, 1)
	}
}

func unaryText(op ast.UnaryOperator) string {
	switch op {
	case ast.UnaryTypeof, ast.UnaryVoid, ast.UnaryDelete:
		return string(op) + " "
	default:
		return string(op)
	}
}

func (p *printer) pattern(pat ast.Pattern) {
	if pat == nil {
		return
	}
	switch n := pat.(type) {
	case *ast.Identifier:
		p.write(n.Name)
	case *ast.ObjectPattern:
		p.write("{")
		for i, prop := range n.Properties {
			if i > 0 {
				p.write(", ")
			}
			switch m := prop.(type) {
			case *ast.Property:
				p.propertyKey(m.Key, m.Computed)
				if pv, ok := m.Value.(ast.Pattern); ok && !m.Shorthand {
					p.write(": ")
					p.pattern(pv)
				}
			case *ast.RestElement:
				p.write("...")
				p.pattern(m.Argument)
			}
		}
		p.write("}")
	case *ast.ArrayPattern:
		p.write("[")
		for i, el := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			switch m := el.(type) {
			case nil:
			case *ast.RestElement:
				p.write("...")
				p.pattern(m.Argument)
			case ast.Pattern:
				p.pattern(m)
			}
		}
		p.write("]")
	case *ast.AssignmentPattern:
		p.pattern(n.Left)
		p.write(" = ")
		p.expression(n.Right, 2)
	case *ast.RestElement:
		p.write("...")
		p.pattern(n.Argument)
	}
}
