package parse

import (
	gojaast "github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"

	ourast "jsobfuscate/ast"
)

func (l *lowerer) expression(e gojaast.Expression) (ourast.Expression, error) {
	switch n := e.(type) {
	case nil:
		return nil, nil

	case *gojaast.Identifier:
		return &ourast.Identifier{Name: string(n.Name)}, nil

	case *gojaast.NumberLiteral:
		v, _ := n.Value.(float64)
		return &ourast.NumberLiteral{Value: v, Raw: n.Literal}, nil

	case *gojaast.StringLiteral:
		return &ourast.StringLiteral{Value: string(n.Value), Raw: n.Literal}, nil

	case *gojaast.BooleanLiteral:
		return &ourast.BooleanLiteral{Value: n.Value}, nil

	case *gojaast.NullLiteral:
		return &ourast.NullLiteral{}, nil

	case *gojaast.RegExpLiteral:
		return &ourast.RegExpLiteral{Pattern: n.Pattern, Flags: n.Flags}, nil

	case *gojaast.ThisExpression:
		return &ourast.ThisExpression{}, nil

	case *gojaast.SuperExpression:
		return &ourast.Super{}, nil

	case *gojaast.ArrayLiteral:
		elems := make([]ourast.Expression, 0, len(n.Value))
		for _, el := range n.Value {
			ex, err := l.expression(el)
			if err != nil {
				return nil, err
			}
			elems = append(elems, ex)
		}
		return &ourast.ArrayExpression{Elements: elems}, nil

	case *gojaast.ObjectLiteral:
		props := make([]ourast.Node, 0, len(n.Value))
		for _, p := range n.Value {
			prop, err := l.objectProperty(p)
			if err != nil {
				return nil, err
			}
			props = append(props, prop)
		}
		return &ourast.ObjectExpression{Properties: props}, nil

	case *gojaast.FunctionLiteral:
		decl, err := l.functionDeclaration(n)
		if err != nil {
			return nil, err
		}
		return &ourast.FunctionExpression{
			ID:        decl.ID,
			Params:    decl.Params,
			Body:      decl.Body,
			Generator: decl.Generator,
			Async:     decl.Async,
		}, nil

	case *gojaast.ArrowFunctionLiteral:
		params, err := l.params(n.ParameterList)
		if err != nil {
			return nil, err
		}
		var body ourast.Node
		if blk, ok := n.Body.(gojaast.Statement); ok {
			body, err = l.statement(blk)
			if err != nil {
				return nil, err
			}
		} else if expr, ok := n.Body.(gojaast.Expression); ok {
			body, err = l.expression(expr)
			if err != nil {
				return nil, err
			}
		}
		return &ourast.ArrowFunctionExpression{Params: params, Body: body, Async: n.Async}, nil

	case *gojaast.ClassLiteral:
		body, err := l.classBody(n)
		if err != nil {
			return nil, err
		}
		var id *ourast.Identifier
		if n.Name != nil {
			id = &ourast.Identifier{Name: string(n.Name.Name)}
		}
		var super ourast.Expression
		if n.SuperClass != nil {
			super, err = l.expression(n.SuperClass)
			if err != nil {
				return nil, err
			}
		}
		return &ourast.ClassExpression{ID: id, SuperClass: super, Body: body}, nil

	case *gojaast.UnaryExpression:
		op := unaryOp(n.Operator)
		if n.Operator == token.INCREMENT || n.Operator == token.DECREMENT {
			arg, err := l.expression(n.Operand)
			if err != nil {
				return nil, err
			}
			return &ourast.UpdateExpression{Operator: n.Operator.String(), Argument: arg, Prefix: !n.Postfix}, nil
		}
		arg, err := l.expression(n.Operand)
		if err != nil {
			return nil, err
		}
		return &ourast.UnaryExpression{Operator: op, Argument: arg}, nil

	case *gojaast.BinaryExpression:
		left, err := l.expression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := l.expression(n.Right)
		if err != nil {
			return nil, err
		}
		op := n.Operator.String()
		if isLogical(n.Operator) {
			return &ourast.LogicalExpression{Operator: op, Left: left, Right: right}, nil
		}
		return &ourast.BinaryExpression{Operator: op, Left: left, Right: right}, nil

	case *gojaast.AssignExpression:
		left, err := l.expression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := l.expression(n.Right)
		if err != nil {
			return nil, err
		}
		return &ourast.AssignmentExpression{Operator: n.Operator.String(), Left: left, Right: right}, nil

	case *gojaast.ConditionalExpression:
		test, err := l.expression(n.Test)
		if err != nil {
			return nil, err
		}
		cons, err := l.expression(n.Consequent)
		if err != nil {
			return nil, err
		}
		alt, err := l.expression(n.Alternate)
		if err != nil {
			return nil, err
		}
		return &ourast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}, nil

	case *gojaast.CallExpression:
		callee, err := l.expression(n.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ourast.Expression, 0, len(n.ArgumentList))
		for _, a := range n.ArgumentList {
			ex, err := l.expression(a)
			if err != nil {
				return nil, err
			}
			args = append(args, ex)
		}
		return &ourast.CallExpression{Callee: callee, Arguments: args}, nil

	case *gojaast.NewExpression:
		callee, err := l.expression(n.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ourast.Expression, 0, len(n.ArgumentList))
		for _, a := range n.ArgumentList {
			ex, err := l.expression(a)
			if err != nil {
				return nil, err
			}
			args = append(args, ex)
		}
		return &ourast.NewExpression{Callee: callee, Arguments: args}, nil

	case *gojaast.DotExpression:
		obj, err := l.expression(n.Left)
		if err != nil {
			return nil, err
		}
		return &ourast.MemberExpression{Object: obj, Property: &ourast.Identifier{Name: string(n.Identifier.Name)}, Computed: false}, nil

	case *gojaast.BracketExpression:
		obj, err := l.expression(n.Left)
		if err != nil {
			return nil, err
		}
		prop, err := l.expression(n.Member)
		if err != nil {
			return nil, err
		}
		return &ourast.MemberExpression{Object: obj, Property: prop, Computed: true}, nil

	case *gojaast.SequenceExpression:
		exprs := make([]ourast.Expression, 0, len(n.Sequence))
		for _, s := range n.Sequence {
			ex, err := l.expression(s)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, ex)
		}
		return &ourast.SequenceExpression{Expressions: exprs}, nil

	case *gojaast.SpreadElement:
		arg, err := l.expression(n.Expression)
		if err != nil {
			return nil, err
		}
		return &ourast.SpreadElement{Argument: arg}, nil

	case *gojaast.TemplateLiteral:
		quasis := make([]string, 0, len(n.Elements))
		for _, q := range n.Elements {
			quasis = append(quasis, string(q.Parsed))
		}
		exprs := make([]ourast.Expression, 0, len(n.Expressions))
		for _, ex := range n.Expressions {
			e2, err := l.expression(ex)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e2)
		}
		return &ourast.TemplateLiteral{Quasis: quasis, Expressions: exprs}, nil

	case *gojaast.YieldExpression:
		arg, err := l.expression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ourast.YieldExpression{Argument: arg, Delegate: n.Delegate}, nil

	case *gojaast.AwaitExpression:
		arg, err := l.expression(n.Argument)
		if err != nil {
			return nil, err
		}
		return &ourast.AwaitExpression{Argument: arg}, nil

	default:
		return nil, l.unsupported("expression")
	}
}

func (l *lowerer) objectProperty(p gojaast.Property) (ourast.Node, error) {
	switch v := p.(type) {
	case *gojaast.PropertyKeyed:
		key, err := l.expression(v.Key)
		if err != nil {
			return nil, err
		}
		val, err := l.expression(v.Value)
		if err != nil {
			return nil, err
		}
		kind := ourast.PropertyInit
		switch v.Kind {
		case gojaast.PropertyKindGet:
			kind = ourast.PropertyGet
		case gojaast.PropertyKindSet:
			kind = ourast.PropertySet
		}
		return &ourast.Property{Key: key, Value: val, Computed: v.Computed, Kind: kind}, nil
	case *gojaast.PropertyShort:
		id := &ourast.Identifier{Name: string(v.Name.Name)}
		return &ourast.Property{Key: id, Value: id, Shorthand: true}, nil
	case *gojaast.SpreadElement:
		arg, err := l.expression(v.Expression)
		if err != nil {
			return nil, err
		}
		return &ourast.SpreadElement{Argument: arg}, nil
	default:
		return nil, l.unsupported("object property")
	}
}

func unaryOp(t token.Token) ourast.UnaryOperator {
	switch t {
	case token.MINUS:
		return ourast.UnaryMinus
	case token.PLUS:
		return ourast.UnaryPlus
	case token.NOT:
		return ourast.UnaryNot
	case token.BITWISE_NOT:
		return ourast.UnaryBitNot
	case token.TYPEOF:
		return ourast.UnaryTypeof
	case token.VOID:
		return ourast.UnaryVoid
	case token.DELETE:
		return ourast.UnaryDelete
	default:
		return ourast.UnaryOperator(t.String())
	}
}

func isLogical(t token.Token) bool {
	return t == token.LOGICAL_AND || t == token.LOGICAL_OR || t == token.COALESCE
}
