// Package traverse implements the depth-first walk a Visitor drives
// over an ast.Node tree: pre-order Enter, post-order Leave, with
// in-place replacement, subtree skip, and abort. A node marked
// ast.Ignored is passed over with its whole subtree. The walk itself is
// recursive (Go's call stack stands in for the "explicit work stack"
// spec.md describes — each recursive call frame is one entry of that
// stack), dispatching per node kind through a hand-written type switch
// in the style of the teacher's scope analyzer for Go source.
package traverse

import (
	"fmt"

	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// Replace walks root with v and returns the (possibly new) root. It is
// the engine's single entry point; Walk-only callers that never replace
// anything can ignore the returned node and check only the error.
func Replace(root ast.Node, v *visit.Visitor) (ast.Node, error) {
	if v == nil {
		v = &visit.Visitor{}
	}
	return walkNode(root, nil, v)
}

func walkNode(n ast.Node, parent ast.Node, v *visit.Visitor) (ast.Node, error) {
	if n == nil {
		return nil, nil
	}
	if ast.Ignored(n) {
		return n, nil
	}
	cur := n
	skip := false
	if v.Enter != nil {
		res := v.Enter(cur, parent)
		switch res.Action {
		case visit.ActionSame:
		case visit.ActionReplace:
			cur = res.Node
		case visit.ActionSkip:
			skip = true
		case visit.ActionAbort:
			return nil, res.Err
		}
	}
	if !skip {
		if err := walkChildren(cur, v); err != nil {
			return nil, err
		}
	}
	if v.Leave != nil {
		res := v.Leave(cur, parent)
		switch res.Action {
		case visit.ActionSame, visit.ActionSkip:
		case visit.ActionReplace:
			cur = res.Node
		case visit.ActionAbort:
			return nil, res.Err
		}
	}
	return cur, nil
}

func wrongKind(got ast.Node, want string) error {
	return fmt.Errorf("traverse: replacement node of kind %s cannot stand where a %s was expected", got.NodeKind(), want)
}

func walkStatement(s ast.Statement, parent ast.Node, v *visit.Visitor) (ast.Statement, error) {
	if s == nil {
		return nil, nil
	}
	n, err := walkNode(s, parent, v)
	if err != nil || n == nil {
		return nil, err
	}
	st, ok := n.(ast.Statement)
	if !ok {
		return nil, wrongKind(n, "Statement")
	}
	return st, nil
}

func walkExpression(e ast.Expression, parent ast.Node, v *visit.Visitor) (ast.Expression, error) {
	if e == nil {
		return nil, nil
	}
	n, err := walkNode(e, parent, v)
	if err != nil || n == nil {
		return nil, err
	}
	ex, ok := n.(ast.Expression)
	if !ok {
		return nil, wrongKind(n, "Expression")
	}
	return ex, nil
}

func walkPattern(p ast.Pattern, parent ast.Node, v *visit.Visitor) (ast.Pattern, error) {
	if p == nil {
		return nil, nil
	}
	n, err := walkNode(p, parent, v)
	if err != nil || n == nil {
		return nil, err
	}
	pt, ok := n.(ast.Pattern)
	if !ok {
		return nil, wrongKind(n, "Pattern")
	}
	return pt, nil
}

func walkIdentifier(id *ast.Identifier, parent ast.Node, v *visit.Visitor) (*ast.Identifier, error) {
	if id == nil {
		return nil, nil
	}
	n, err := walkNode(id, parent, v)
	if err != nil || n == nil {
		return nil, err
	}
	out, ok := n.(*ast.Identifier)
	if !ok {
		return nil, wrongKind(n, "Identifier")
	}
	return out, nil
}

func walkAny(n ast.Node, parent ast.Node, v *visit.Visitor) (ast.Node, error) {
	return walkNode(n, parent, v)
}

func walkStatements(list []ast.Statement, parent ast.Node, v *visit.Visitor) ([]ast.Statement, error) {
	out := make([]ast.Statement, len(list))
	for i, s := range list {
		w, err := walkStatement(s, parent, v)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func walkExpressions(list []ast.Expression, parent ast.Node, v *visit.Visitor) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(list))
	for i, e := range list {
		if e == nil {
			continue // array hole
		}
		w, err := walkExpression(e, parent, v)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func walkPatterns(list []ast.Pattern, parent ast.Node, v *visit.Visitor) ([]ast.Pattern, error) {
	out := make([]ast.Pattern, len(list))
	for i, p := range list {
		w, err := walkPattern(p, parent, v)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func walkNodes(list []ast.Node, parent ast.Node, v *visit.Visitor) ([]ast.Node, error) {
	out := make([]ast.Node, len(list))
	for i, n := range list {
		if n == nil {
			continue
		}
		w, err := walkAny(n, parent, v)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// walkChildren dispatches on cur's concrete type and walks (and
// possibly rewrites in place) every child field. This is the engine's
// only type switch; every node kind added to ast must get a case here.
func walkChildren(cur ast.Node, v *visit.Visitor) error {
	switch n := cur.(type) {

	case *ast.Program:
		body, err := walkStatements(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.ExpressionStatement:
		e, err := walkExpression(n.Expr, n, v)
		if err != nil {
			return err
		}
		n.Expr = e

	case *ast.BlockStatement:
		body, err := walkStatements(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.EmptyStatement, *ast.DebuggerStatement, *ast.ThisExpression,
		*ast.Super, *ast.NullLiteral, *ast.NumberLiteral, *ast.StringLiteral,
		*ast.BooleanLiteral, *ast.RegExpLiteral, *ast.Identifier,
		*ast.PrivateIdentifier:
		// leaves: no children

	case *ast.VariableDeclaration:
		for i, d := range n.Declarations {
			w, err := walkNode(d, n, v)
			if err != nil {
				return err
			}
			decl, ok := w.(*ast.VariableDeclarator)
			if !ok {
				return wrongKind(w, "VariableDeclarator")
			}
			n.Declarations[i] = decl
		}

	case *ast.VariableDeclarator:
		id, err := walkPattern(n.ID, n, v)
		if err != nil {
			return err
		}
		n.ID = id
		init, err := walkExpression(n.Init, n, v)
		if err != nil {
			return err
		}
		n.Init = init

	case *ast.FunctionDeclaration:
		id, err := walkIdentifier(n.ID, n, v)
		if err != nil {
			return err
		}
		n.ID = id
		params, err := walkPatterns(n.Params, n, v)
		if err != nil {
			return err
		}
		n.Params = params
		body, err := walkAny(n.Body, n, v)
		if err != nil {
			return err
		}
		if body != nil {
			blk, ok := body.(*ast.BlockStatement)
			if !ok {
				return wrongKind(body, "BlockStatement")
			}
			n.Body = blk
		}

	case *ast.ReturnStatement:
		arg, err := walkExpression(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.IfStatement:
		test, err := walkExpression(n.Test, n, v)
		if err != nil {
			return err
		}
		n.Test = test
		cons, err := walkStatement(n.Consequent, n, v)
		if err != nil {
			return err
		}
		n.Consequent = cons
		alt, err := walkStatement(n.Alternate, n, v)
		if err != nil {
			return err
		}
		n.Alternate = alt

	case *ast.ForStatement:
		if n.Init != nil {
			init, err := walkAny(n.Init, n, v)
			if err != nil {
				return err
			}
			n.Init = init
		}
		test, err := walkExpression(n.Test, n, v)
		if err != nil {
			return err
		}
		n.Test = test
		upd, err := walkExpression(n.Update, n, v)
		if err != nil {
			return err
		}
		n.Update = upd
		body, err := walkStatement(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.ForInStatement:
		left, err := walkAny(n.Left, n, v)
		if err != nil {
			return err
		}
		n.Left = left
		right, err := walkExpression(n.Right, n, v)
		if err != nil {
			return err
		}
		n.Right = right
		body, err := walkStatement(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.ForOfStatement:
		left, err := walkAny(n.Left, n, v)
		if err != nil {
			return err
		}
		n.Left = left
		right, err := walkExpression(n.Right, n, v)
		if err != nil {
			return err
		}
		n.Right = right
		body, err := walkStatement(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.WhileStatement:
		test, err := walkExpression(n.Test, n, v)
		if err != nil {
			return err
		}
		n.Test = test
		body, err := walkStatement(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.DoWhileStatement:
		body, err := walkStatement(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body
		test, err := walkExpression(n.Test, n, v)
		if err != nil {
			return err
		}
		n.Test = test

	case *ast.BreakStatement:
		label, err := walkIdentifier(n.Label, n, v)
		if err != nil {
			return err
		}
		n.Label = label

	case *ast.ContinueStatement:
		label, err := walkIdentifier(n.Label, n, v)
		if err != nil {
			return err
		}
		n.Label = label

	case *ast.SwitchStatement:
		disc, err := walkExpression(n.Discriminant, n, v)
		if err != nil {
			return err
		}
		n.Discriminant = disc
		for i, c := range n.Cases {
			w, err := walkNode(c, n, v)
			if err != nil {
				return err
			}
			sc, ok := w.(*ast.SwitchCase)
			if !ok {
				return wrongKind(w, "SwitchCase")
			}
			n.Cases[i] = sc
		}

	case *ast.SwitchCase:
		test, err := walkExpression(n.Test, n, v)
		if err != nil {
			return err
		}
		n.Test = test
		body, err := walkStatements(n.Consequent, n, v)
		if err != nil {
			return err
		}
		n.Consequent = body

	case *ast.ThrowStatement:
		arg, err := walkExpression(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.TryStatement:
		if n.Block != nil {
			w, err := walkNode(n.Block, n, v)
			if err != nil {
				return err
			}
			blk, ok := w.(*ast.BlockStatement)
			if !ok {
				return wrongKind(w, "BlockStatement")
			}
			n.Block = blk
		}
		if n.Handler != nil {
			w, err := walkNode(n.Handler, n, v)
			if err != nil {
				return err
			}
			h, ok := w.(*ast.CatchClause)
			if !ok {
				return wrongKind(w, "CatchClause")
			}
			n.Handler = h
		}
		if n.Finalizer != nil {
			w, err := walkNode(n.Finalizer, n, v)
			if err != nil {
				return err
			}
			blk, ok := w.(*ast.BlockStatement)
			if !ok {
				return wrongKind(w, "BlockStatement")
			}
			n.Finalizer = blk
		}

	case *ast.CatchClause:
		param, err := walkPattern(n.Param, n, v)
		if err != nil {
			return err
		}
		n.Param = param
		if n.Body != nil {
			w, err := walkNode(n.Body, n, v)
			if err != nil {
				return err
			}
			blk, ok := w.(*ast.BlockStatement)
			if !ok {
				return wrongKind(w, "BlockStatement")
			}
			n.Body = blk
		}

	case *ast.LabeledStatement:
		label, err := walkIdentifier(n.Label, n, v)
		if err != nil {
			return err
		}
		n.Label = label
		body, err := walkStatement(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.ClassDeclaration:
		id, err := walkIdentifier(n.ID, n, v)
		if err != nil {
			return err
		}
		n.ID = id
		super, err := walkExpression(n.SuperClass, n, v)
		if err != nil {
			return err
		}
		n.SuperClass = super
		if n.Body != nil {
			w, err := walkNode(n.Body, n, v)
			if err != nil {
				return err
			}
			cb, ok := w.(*ast.ClassBody)
			if !ok {
				return wrongKind(w, "ClassBody")
			}
			n.Body = cb
		}

	case *ast.ClassExpression:
		id, err := walkIdentifier(n.ID, n, v)
		if err != nil {
			return err
		}
		n.ID = id
		super, err := walkExpression(n.SuperClass, n, v)
		if err != nil {
			return err
		}
		n.SuperClass = super
		if n.Body != nil {
			w, err := walkNode(n.Body, n, v)
			if err != nil {
				return err
			}
			cb, ok := w.(*ast.ClassBody)
			if !ok {
				return wrongKind(w, "ClassBody")
			}
			n.Body = cb
		}

	case *ast.ClassBody:
		body, err := walkNodes(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.MethodDefinition:
		key, err := walkExpression(n.Key, n, v)
		if err != nil {
			return err
		}
		n.Key = key
		if n.Value != nil {
			w, err := walkNode(n.Value, n, v)
			if err != nil {
				return err
			}
			fn, ok := w.(*ast.FunctionExpression)
			if !ok {
				return wrongKind(w, "FunctionExpression")
			}
			n.Value = fn
		}

	case *ast.PropertyDefinition:
		key, err := walkExpression(n.Key, n, v)
		if err != nil {
			return err
		}
		n.Key = key
		val, err := walkExpression(n.Value, n, v)
		if err != nil {
			return err
		}
		n.Value = val

	case *ast.ArrayExpression:
		elems, err := walkExpressions(n.Elements, n, v)
		if err != nil {
			return err
		}
		n.Elements = elems

	case *ast.ObjectExpression:
		props, err := walkNodes(n.Properties, n, v)
		if err != nil {
			return err
		}
		n.Properties = props

	case *ast.Property:
		key, err := walkExpression(n.Key, n, v)
		if err != nil {
			return err
		}
		n.Key = key
		val, err := walkAny(n.Value, n, v)
		if err != nil {
			return err
		}
		n.Value = val

	case *ast.FunctionExpression:
		id, err := walkIdentifier(n.ID, n, v)
		if err != nil {
			return err
		}
		n.ID = id
		params, err := walkPatterns(n.Params, n, v)
		if err != nil {
			return err
		}
		n.Params = params
		if n.Body != nil {
			w, err := walkNode(n.Body, n, v)
			if err != nil {
				return err
			}
			blk, ok := w.(*ast.BlockStatement)
			if !ok {
				return wrongKind(w, "BlockStatement")
			}
			n.Body = blk
		}

	case *ast.ArrowFunctionExpression:
		params, err := walkPatterns(n.Params, n, v)
		if err != nil {
			return err
		}
		n.Params = params
		body, err := walkAny(n.Body, n, v)
		if err != nil {
			return err
		}
		n.Body = body

	case *ast.UnaryExpression:
		arg, err := walkExpression(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.UpdateExpression:
		arg, err := walkExpression(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.BinaryExpression:
		left, err := walkExpression(n.Left, n, v)
		if err != nil {
			return err
		}
		n.Left = left
		right, err := walkExpression(n.Right, n, v)
		if err != nil {
			return err
		}
		n.Right = right

	case *ast.LogicalExpression:
		left, err := walkExpression(n.Left, n, v)
		if err != nil {
			return err
		}
		n.Left = left
		right, err := walkExpression(n.Right, n, v)
		if err != nil {
			return err
		}
		n.Right = right

	case *ast.AssignmentExpression:
		left, err := walkAny(n.Left, n, v)
		if err != nil {
			return err
		}
		n.Left = left
		right, err := walkExpression(n.Right, n, v)
		if err != nil {
			return err
		}
		n.Right = right

	case *ast.ConditionalExpression:
		test, err := walkExpression(n.Test, n, v)
		if err != nil {
			return err
		}
		n.Test = test
		cons, err := walkExpression(n.Consequent, n, v)
		if err != nil {
			return err
		}
		n.Consequent = cons
		alt, err := walkExpression(n.Alternate, n, v)
		if err != nil {
			return err
		}
		n.Alternate = alt

	case *ast.CallExpression:
		callee, err := walkExpression(n.Callee, n, v)
		if err != nil {
			return err
		}
		n.Callee = callee
		args, err := walkExpressions(n.Arguments, n, v)
		if err != nil {
			return err
		}
		n.Arguments = args

	case *ast.NewExpression:
		callee, err := walkExpression(n.Callee, n, v)
		if err != nil {
			return err
		}
		n.Callee = callee
		args, err := walkExpressions(n.Arguments, n, v)
		if err != nil {
			return err
		}
		n.Arguments = args

	case *ast.MemberExpression:
		obj, err := walkExpression(n.Object, n, v)
		if err != nil {
			return err
		}
		n.Object = obj
		prop, err := walkExpression(n.Property, n, v)
		if err != nil {
			return err
		}
		n.Property = prop

	case *ast.SequenceExpression:
		exprs, err := walkExpressions(n.Expressions, n, v)
		if err != nil {
			return err
		}
		n.Expressions = exprs

	case *ast.TemplateLiteral:
		exprs, err := walkExpressions(n.Expressions, n, v)
		if err != nil {
			return err
		}
		n.Expressions = exprs

	case *ast.TaggedTemplateExpression:
		tag, err := walkExpression(n.Tag, n, v)
		if err != nil {
			return err
		}
		n.Tag = tag
		if n.Quasi != nil {
			w, err := walkNode(n.Quasi, n, v)
			if err != nil {
				return err
			}
			tpl, ok := w.(*ast.TemplateLiteral)
			if !ok {
				return wrongKind(w, "TemplateLiteral")
			}
			n.Quasi = tpl
		}

	case *ast.SpreadElement:
		arg, err := walkExpression(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.YieldExpression:
		arg, err := walkExpression(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.AwaitExpression:
		arg, err := walkExpression(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.ObjectPattern:
		props, err := walkNodes(n.Properties, n, v)
		if err != nil {
			return err
		}
		n.Properties = props

	case *ast.ArrayPattern:
		elems, err := walkNodes(n.Elements, n, v)
		if err != nil {
			return err
		}
		n.Elements = elems

	case *ast.AssignmentPattern:
		left, err := walkPattern(n.Left, n, v)
		if err != nil {
			return err
		}
		n.Left = left
		right, err := walkExpression(n.Right, n, v)
		if err != nil {
			return err
		}
		n.Right = right

	case *ast.RestElement:
		arg, err := walkPattern(n.Argument, n, v)
		if err != nil {
			return err
		}
		n.Argument = arg

	case *ast.ImportDeclaration:
		specs, err := walkNodes(n.Specifiers, n, v)
		if err != nil {
			return err
		}
		n.Specifiers = specs

	case *ast.ImportSpecifier, *ast.ImportDefaultSpecifier, *ast.ImportNamespaceSpecifier, *ast.ExportSpecifier:
		// identifiers only, no general child rewrite exposed

	case *ast.ExportNamedDeclaration:
		decl, err := walkStatement(n.Declaration, n, v)
		if err != nil {
			return err
		}
		n.Declaration = decl

	case *ast.ExportDefaultDeclaration:
		decl, err := walkAny(n.Declaration, n, v)
		if err != nil {
			return err
		}
		n.Declaration = decl

	case *ast.ExportAllDeclaration:
		// Source/Exported are literals/identifiers, no further descent

	default:
		return fmt.Errorf("traverse: unhandled node kind %s (%T)", cur.NodeKind(), n)
	}
	return nil
}
