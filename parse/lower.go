package parse

import (
	gojaast "github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"

	ourast "jsobfuscate/ast"
)

func (l *lowerer) statements(in []gojaast.Statement) ([]ourast.Statement, error) {
	out := make([]ourast.Statement, 0, len(in))
	for _, s := range in {
		st, err := l.statement(s)
		if err != nil {
			return nil, err
		}
		if st != nil {
			out = append(out, st)
		}
	}
	return out, nil
}

func (l *lowerer) statement(s gojaast.Statement) (ourast.Statement, error) {
	switch n := s.(type) {
	case nil:
		return nil, nil

	case *gojaast.ExpressionStatement:
		e, err := l.expression(n.Expression)
		if err != nil {
			return nil, err
		}
		return &ourast.ExpressionStatement{Expr: e}, nil

	case *gojaast.BlockStatement:
		body, err := l.statements(n.List)
		if err != nil {
			return nil, err
		}
		return &ourast.BlockStatement{Body: body}, nil

	case *gojaast.EmptyStatement:
		return &ourast.EmptyStatement{}, nil

	case *gojaast.DebuggerStatement:
		return &ourast.DebuggerStatement{}, nil

	case *gojaast.VariableStatement:
		decls := make([]*ourast.VariableDeclarator, 0, len(n.List))
		for _, b := range n.List {
			d, err := l.bindingToDeclarator(b)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d)
		}
		return &ourast.VariableDeclaration{Kind: ourast.DeclVar, Declarations: decls}, nil

	case *gojaast.LexicalDeclaration:
		kind := ourast.DeclLet
		if n.Token == token.CONST {
			kind = ourast.DeclConst
		}
		decls := make([]*ourast.VariableDeclarator, 0, len(n.List))
		for _, b := range n.List {
			d, err := l.bindingToDeclarator(b)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d)
		}
		return &ourast.VariableDeclaration{Kind: kind, Declarations: decls}, nil

	case *gojaast.FunctionDeclaration:
		return l.functionDeclaration(n.Function)

	case *gojaast.ReturnStatement:
		arg, err := l.expression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ourast.ReturnStatement{Argument: arg}, nil

	case *gojaast.IfStatement:
		test, err := l.expression(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := l.statement(n.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := l.statement(n.Alternate)
		if err != nil {
			return nil, err
		}
		return &ourast.IfStatement{Test: test, Consequent: cons, Alternate: alt}, nil

	case *gojaast.ForStatement:
		var init ourast.Node
		var err error
		if n.Initializer != nil {
			init, err = l.forHead(n.Initializer)
			if err != nil {
				return nil, err
			}
		}
		test, err := l.expression(n.Test)
		if err != nil {
			return nil, err
		}
		upd, err := l.expression(n.Update)
		if err != nil {
			return nil, err
		}
		body, err := l.statement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ourast.ForStatement{Init: init, Test: test, Update: upd, Body: body}, nil

	case *gojaast.ForInStatement:
		left, err := l.forHead(n.Into)
		if err != nil {
			return nil, err
		}
		right, err := l.expression(n.Source)
		if err != nil {
			return nil, err
		}
		body, err := l.statement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ourast.ForInStatement{Left: left, Right: right, Body: body}, nil

	case *gojaast.ForOfStatement:
		left, err := l.forHead(n.Into)
		if err != nil {
			return nil, err
		}
		right, err := l.expression(n.Source)
		if err != nil {
			return nil, err
		}
		body, err := l.statement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ourast.ForOfStatement{Left: left, Right: right, Body: body}, nil

	case *gojaast.WhileStatement:
		test, err := l.expression(n.Test)
		if err != nil {
			return nil, err
		}
		body, err := l.statement(n.Body)
		if err != nil {
			return nil, err
		}
		return &ourast.WhileStatement{Test: test, Body: body}, nil

	case *gojaast.DoWhileStatement:
		body, err := l.statement(n.Body)
		if err != nil {
			return nil, err
		}
		test, err := l.expression(n.Test)
		if err != nil {
			return nil, err
		}
		return &ourast.DoWhileStatement{Body: body, Test: test}, nil

	case *gojaast.BranchStatement:
		var label *ourast.Identifier
		if n.Label != nil {
			label = &ourast.Identifier{Name: string(n.Label.Name)}
		}
		if n.Token == token.BREAK {
			return &ourast.BreakStatement{Label: label}, nil
		}
		return &ourast.ContinueStatement{Label: label}, nil

	case *gojaast.SwitchStatement:
		disc, err := l.expression(n.Discriminant)
		if err != nil {
			return nil, err
		}
		cases := make([]*ourast.SwitchCase, 0, len(n.Body))
		for _, c := range n.Body {
			test, err := l.expression(c.Test)
			if err != nil {
				return nil, err
			}
			cons, err := l.statements(c.Consequent)
			if err != nil {
				return nil, err
			}
			cases = append(cases, &ourast.SwitchCase{Test: test, Consequent: cons})
		}
		return &ourast.SwitchStatement{Discriminant: disc, Cases: cases}, nil

	case *gojaast.ThrowStatement:
		arg, err := l.expression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ourast.ThrowStatement{Argument: arg}, nil

	case *gojaast.TryStatement:
		blockStmt, err := l.statement(n.Body)
		if err != nil {
			return nil, err
		}
		block, _ := blockStmt.(*ourast.BlockStatement)
		var handler *ourast.CatchClause
		if n.Catch != nil {
			var param ourast.Pattern
			if n.Catch.Parameter != nil {
				param, err = l.bindingTarget(n.Catch.Parameter)
				if err != nil {
					return nil, err
				}
			}
			bodyStmt, err := l.statement(n.Catch.Body)
			if err != nil {
				return nil, err
			}
			body, _ := bodyStmt.(*ourast.BlockStatement)
			handler = &ourast.CatchClause{Param: param, Body: body}
		}
		var finalizer *ourast.BlockStatement
		if n.Finally != nil {
			finStmt, err := l.statement(n.Finally)
			if err != nil {
				return nil, err
			}
			finalizer, _ = finStmt.(*ourast.BlockStatement)
		}
		return &ourast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}, nil

	case *gojaast.LabelledStatement:
		body, err := l.statement(n.Statement)
		if err != nil {
			return nil, err
		}
		return &ourast.LabeledStatement{Label: &ourast.Identifier{Name: string(n.Label.Name)}, Body: body}, nil

	case *gojaast.ClassDeclaration:
		return l.classDeclaration(n.Class)

	default:
		return nil, l.unsupported("statement")
	}
}

// forHead lowers the initializer position of for/for-in/for-of, which
// goja represents as either a bare Expression (pre-existing binding) or
// a declaration form depending on parser version; both paths collapse
// to ourast.Node since ForStatement.Init and ForInStatement/ForOfStatement.Left
// are typed as ast.Node for exactly this reason.
func (l *lowerer) forHead(n gojaast.Node) (ourast.Node, error) {
	switch v := n.(type) {
	case gojaast.Expression:
		return l.expression(v)
	case *gojaast.VariableStatement:
		st, err := l.statement(v)
		return st, err
	case *gojaast.LexicalDeclaration:
		st, err := l.statement(v)
		return st, err
	default:
		return nil, l.unsupported("for-head")
	}
}

func (l *lowerer) bindingToDeclarator(b *gojaast.Binding) (*ourast.VariableDeclarator, error) {
	id, err := l.bindingTarget(b.Target)
	if err != nil {
		return nil, err
	}
	init, err := l.expression(b.Initializer)
	if err != nil {
		return nil, err
	}
	return &ourast.VariableDeclarator{ID: id, Init: init}, nil
}

func (l *lowerer) bindingTarget(n gojaast.Node) (ourast.Pattern, error) {
	switch v := n.(type) {
	case *gojaast.Identifier:
		return &ourast.Identifier{Name: string(v.Name)}, nil
	default:
		return nil, l.unsupported("destructuring binding")
	}
}

func (l *lowerer) functionDeclaration(fn *gojaast.FunctionLiteral) (*ourast.FunctionDeclaration, error) {
	params, err := l.params(fn.ParameterList)
	if err != nil {
		return nil, err
	}
	bodyStmt, err := l.statement(fn.Body)
	if err != nil {
		return nil, err
	}
	body, _ := bodyStmt.(*ourast.BlockStatement)
	var id *ourast.Identifier
	if fn.Name != nil {
		id = &ourast.Identifier{Name: string(fn.Name.Name)}
	}
	return &ourast.FunctionDeclaration{
		ID:        id,
		Params:    params,
		Body:      body,
		Generator: fn.Generator,
		Async:     fn.Async,
	}, nil
}

func (l *lowerer) params(list *gojaast.ParameterList) ([]ourast.Pattern, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]ourast.Pattern, 0, len(list.List))
	for _, b := range list.List {
		p, err := l.bindingTarget(b.Target)
		if err != nil {
			return nil, err
		}
		if b.Initializer != nil {
			def, err := l.expression(b.Initializer)
			if err != nil {
				return nil, err
			}
			p = &ourast.AssignmentPattern{Left: p, Right: def}
		}
		out = append(out, p)
	}
	if list.Rest != nil {
		rest, err := l.bindingTarget(list.Rest)
		if err != nil {
			return nil, err
		}
		out = append(out, &ourast.RestElement{Argument: rest})
	}
	return out, nil
}

func (l *lowerer) classDeclaration(c *gojaast.ClassLiteral) (*ourast.ClassDeclaration, error) {
	body, err := l.classBody(c)
	if err != nil {
		return nil, err
	}
	var id *ourast.Identifier
	if c.Name != nil {
		id = &ourast.Identifier{Name: string(c.Name.Name)}
	}
	var super ourast.Expression
	if c.SuperClass != nil {
		super, err = l.expression(c.SuperClass)
		if err != nil {
			return nil, err
		}
	}
	return &ourast.ClassDeclaration{ID: id, SuperClass: super, Body: body}, nil
}

func (l *lowerer) classBody(c *gojaast.ClassLiteral) (*ourast.ClassBody, error) {
	members := make([]ourast.Node, 0, len(c.Body))
	for _, el := range c.Body {
		switch m := el.(type) {
		case *gojaast.MethodDefinition:
			fn, err := l.functionDeclaration(m.Body)
			if err != nil {
				return nil, err
			}
			key, err := l.propertyKeyExpr(m.Key, m.Computed)
			if err != nil {
				return nil, err
			}
			kind := ourast.MethodNormal
			switch m.Kind {
			case gojaast.PropertyKindGet:
				kind = ourast.MethodGet
			case gojaast.PropertyKindSet:
				kind = ourast.MethodSet
			}
			if fn.ID != nil && fn.ID.Name == "constructor" {
				kind = ourast.MethodConstructor
			}
			members = append(members, &ourast.MethodDefinition{
				Key: key,
				Value: &ourast.FunctionExpression{
					Params:    fn.Params,
					Body:      fn.Body,
					Generator: fn.Generator,
					Async:     fn.Async,
				},
				Kind:     kind,
				Static:   m.Static,
				Computed: m.Computed,
			})
		case *gojaast.FieldDefinition:
			key, err := l.propertyKeyExpr(m.Key, m.Computed)
			if err != nil {
				return nil, err
			}
			var val ourast.Expression
			if m.Initializer != nil {
				val, err = l.expression(m.Initializer)
				if err != nil {
					return nil, err
				}
			}
			members = append(members, &ourast.PropertyDefinition{Key: key, Value: val, Static: m.Static, Computed: m.Computed})
		default:
			return nil, l.unsupported("class member")
		}
	}
	return &ourast.ClassBody{Body: members}, nil
}

func (l *lowerer) propertyKeyExpr(key gojaast.Expression, computed bool) (ourast.Expression, error) {
	return l.expression(key)
}
