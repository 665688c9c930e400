/*
File    : rebar-go/eval/eval_expressions.go
*/
package eval

import (
	"github.com/Buckell/rebar-go/lexer"
	"github.com/Buckell/rebar-go/objects"
	"github.com/Buckell/rebar-go/parser"
)

// resolveNode produces the value of a parse node: literals become values,
// identifiers resolve through the scope stack, nested groups and
// expressions evaluate recursively, and immediate literals materialize
// their table or array. A bare selector node materializes as a
// single-element array, which is how "[v]" array literals without commas
// take shape.
func (f *frame) resolveNode(n parser.Node) objects.Value {
	switch n.Kind {
	case parser.NodeToken:
		tok := n.Token
		switch tok.Kind {
		case lexer.TokenIdentifier:
			return *f.findVariable(f.environment.Intern(tok.Text))
		case lexer.TokenStringLiteral:
			return f.environment.Intern(tok.Text)
		case lexer.TokenIntegerLiteral:
			return objects.NewInteger(tok.Int)
		case lexer.TokenNumberLiteral:
			return objects.NewNumber(tok.Num)
		case lexer.TokenKeyword:
			switch tok.Kw {
			case lexer.KeywordTrue:
				return objects.NewBoolean(true)
			case lexer.KeywordFalse:
				return objects.NewBoolean(false)
			}
			return objects.Null
		}

	case parser.NodeGroup, parser.NodeExpression:
		return f.evaluateExpression(n.Expr)

	case parser.NodeImmediateTable:
		tbl := objects.NewTable()
		for _, entry := range n.Table.Entries {
			key := f.resolveNodeAsKey(entry.Key)
			if key.IsError() {
				return key
			}
			value := f.evaluateExpression(entry.Value)
			if value.IsError() {
				return value
			}
			tbl.Set(key, value)
		}
		return objects.NewTableValue(tbl)

	case parser.NodeSelector:
		arr := objects.NewArray(1)
		arr.Push(f.evaluateExpression(n.Expr))
		return objects.NewArrayValue(arr)

	case parser.NodeImmediateArray:
		arr := objects.NewArray(len(n.Elems))
		for _, elem := range n.Elems {
			value := f.resolveNode(elem)
			if value.IsError() {
				return value
			}
			arr.Push(value)
		}
		return objects.NewArrayValue(arr)
	}

	return objects.Null
}

// resolveNodeAsKey resolves a node with identifiers promoted to interned
// strings, the rule used for bare table keys and dot-selected members.
func (f *frame) resolveNodeAsKey(n parser.Node) objects.Value {
	if n.Kind == parser.NodeToken && n.Token.IsIdentifier() {
		return f.environment.Intern(n.Token.Text)
	}
	return f.resolveNode(n)
}

// evaluateExpression walks an expression tree and produces its value.
// Operand evaluation is left-then-right everywhere; '&&' and '||'
// short-circuit on the left operand's truthiness.
func (f *frame) evaluateExpression(expr *parser.Expression) objects.Value {
	if expr.Empty() {
		return objects.Null
	}

	binary := func(op func(objects.Runtime, objects.Value, objects.Value) objects.Value) objects.Value {
		lhs := f.resolveNode(expr.Operand(0))
		rhs := f.resolveNode(expr.Operand(1))
		return op(f.environment, lhs, rhs)
	}

	switch expr.Operation {
	case lexer.SeparatorSpace:
		// A keyword-qualified wrapper ("local x", "function t.f"'s left
		// side) carries its assignable last; plain wrappers hold a single
		// operand.
		idx := 0
		if expr.Count() > 1 {
			if first := expr.Operand(0); first.Kind == parser.NodeToken && first.Token.IsAnyKeyword() {
				idx = expr.Count() - 1
			}
		}
		return f.resolveNode(expr.Operand(idx))

	case lexer.SeparatorAssignment:
		slot, errv := f.resolveAssignable(expr.Operand(0))
		if slot == nil {
			return errv
		}
		rhs := f.resolveNode(expr.Operand(1))
		if rhs.IsError() {
			return rhs
		}
		*slot = rhs
		return *slot

	case lexer.SeparatorAddition:
		return binary(objects.Add)
	case lexer.SeparatorSubtraction:
		return binary(objects.Subtract)
	case lexer.SeparatorMultiplication:
		return binary(objects.Multiply)
	case lexer.SeparatorDivision:
		return binary(objects.Divide)
	case lexer.SeparatorModulus:
		return binary(objects.Modulus)
	case lexer.SeparatorExponent:
		return binary(objects.Exponentiate)

	case lexer.SeparatorAdditionAssignment,
		lexer.SeparatorSubtractionAssignment,
		lexer.SeparatorMultiplicationAssignment,
		lexer.SeparatorDivisionAssignment,
		lexer.SeparatorModulusAssignment,
		lexer.SeparatorExponentAssignment,
		lexer.SeparatorBitwiseOrAssignment,
		lexer.SeparatorBitwiseXorAssignment,
		lexer.SeparatorBitwiseAndAssignment,
		lexer.SeparatorShiftRightAssignment,
		lexer.SeparatorShiftLeftAssignment:
		slot, errv := f.compoundAssign(expr)
		if slot == nil {
			return errv
		}
		return *slot

	case lexer.SeparatorEquality:
		return binary(objects.Equals)
	case lexer.SeparatorInverseEquality:
		return binary(objects.NotEquals)
	case lexer.SeparatorGreater:
		return binary(objects.Greater)
	case lexer.SeparatorLesser:
		return binary(objects.Lesser)
	case lexer.SeparatorGreaterEquality:
		return binary(objects.GreaterEqual)
	case lexer.SeparatorLesserEquality:
		return binary(objects.LesserEqual)

	case lexer.SeparatorLogicalOr:
		lhs := f.resolveNode(expr.Operand(0))
		if lhs.IsError() {
			return lhs
		}
		if lhs.IsNativeObject() {
			if slot := lhs.Native().VTable().LogicalOr; slot != nil {
				return slot(f.environment, lhs, f.resolveNode(expr.Operand(1)))
			}
		}
		if lhs.Truthy() {
			return lhs
		}
		return f.resolveNode(expr.Operand(1))

	case lexer.SeparatorLogicalAnd:
		lhs := f.resolveNode(expr.Operand(0))
		if lhs.IsError() {
			return lhs
		}
		if lhs.IsNativeObject() {
			if slot := lhs.Native().VTable().LogicalAnd; slot != nil {
				return slot(f.environment, lhs, f.resolveNode(expr.Operand(1)))
			}
		}
		if !lhs.Truthy() {
			return objects.NewBoolean(false)
		}
		return f.resolveNode(expr.Operand(1))

	case lexer.SeparatorLogicalNot:
		return objects.LogicalNot(f.environment, f.resolveNode(expr.Operand(0)))
	case lexer.SeparatorBitwiseOr:
		return binary(objects.BitwiseOr)
	case lexer.SeparatorBitwiseXor:
		return binary(objects.BitwiseXor)
	case lexer.SeparatorBitwiseAnd:
		return binary(objects.BitwiseAnd)
	case lexer.SeparatorBitwiseNot:
		return objects.BitwiseNot(f.environment, f.resolveNode(expr.Operand(0)))
	case lexer.SeparatorShiftRight:
		return binary(objects.ShiftRight)
	case lexer.SeparatorShiftLeft:
		return binary(objects.ShiftLeft)

	case lexer.SeparatorTernary:
		cond := f.resolveNode(expr.Operand(0))
		if cond.IsError() {
			return cond
		}
		if cond.Truthy() {
			return f.resolveNode(expr.Operand(1))
		}
		return f.resolveNode(expr.Operand(2))

	case lexer.SeparatorNamespaceIndex, lexer.SeparatorDirect, lexer.SeparatorDot:
		if expr.Count() != 2 {
			return objects.NewTypeError("malformed member access")
		}
		key := f.resolveNodeAsKey(expr.Operand(1))
		// Prefer an assignable target so member access auto-inserts table
		// slots; rvalue targets and targets without index slots fall back
		// to plain selection.
		var target objects.Value
		if slot, _ := f.resolveAssignable(expr.Operand(0)); slot != nil {
			target = *slot
		} else {
			target = f.resolveNode(expr.Operand(0))
		}
		if memberSlot, _ := objects.Index(f.environment, target, key); memberSlot != nil {
			return *memberSlot
		}
		return objects.Select(f.environment, target, key)

	case lexer.SeparatorLength:
		return objects.Length(f.environment, f.resolveNode(expr.Operand(0)))

	case lexer.SeparatorOperationPrefixIncrement, lexer.SeparatorOperationPrefixDecrement:
		slot, errv := f.prefixStep(expr, expr.Operation == lexer.SeparatorOperationPrefixIncrement)
		if slot == nil {
			return errv
		}
		return *slot

	case lexer.SeparatorOperationPostfixIncrement, lexer.SeparatorOperationPostfixDecrement:
		increment := expr.Operation == lexer.SeparatorOperationPostfixIncrement
		slot, errv := f.resolveAssignable(expr.Operand(0))
		if slot == nil {
			return errv
		}
		assignee := *slot
		if assignee.IsNativeObject() {
			vt := assignee.Native().VTable()
			if increment {
				if vt.PostfixIncrement == nil {
					return objects.NewTypeError("native object does not overload postfix '++'")
				}
				return vt.PostfixIncrement(f.environment, assignee)
			}
			if vt.PostfixDecrement == nil {
				return objects.NewTypeError("native object does not overload postfix '--'")
			}
			return vt.PostfixDecrement(f.environment, assignee)
		}
		initial := assignee
		var stepped objects.Value
		if increment {
			stepped = objects.Add(f.environment, assignee, objects.NewInteger(1))
		} else {
			stepped = objects.Subtract(f.environment, assignee, objects.NewInteger(1))
		}
		if stepped.IsError() {
			return stepped
		}
		*slot = stepped
		return initial

	case lexer.SeparatorOperationIndex:
		switch expr.Count() {
		case 2:
			target := f.resolveNode(expr.Operand(0))
			// A trailing "[k]" selector carries the key expression itself;
			// resolving the node would build a one-element array instead.
			key := expr.Operand(1)
			if key.Kind == parser.NodeSelector {
				return objects.Select(f.environment, target, f.evaluateExpression(key.Expr))
			}
			return objects.Select(f.environment, target, f.resolveNode(key))
		case 3:
			return objects.RangedSelect(
				f.environment,
				f.resolveNode(expr.Operand(0)),
				f.resolveNode(expr.Operand(1)),
				f.resolveNode(expr.Operand(2)),
			)
		}
		return objects.NewTypeError("malformed index operation")

	case lexer.SeparatorOperationCall:
		callableNode := expr.Operand(0)
		var callee objects.Value
		var args []objects.Value
		resolved := false

		// Method-call syntax: "a.f(x)" selects f from a and passes a as
		// the leading 'this' argument.
		if callableNode.Kind == parser.NodeExpression || callableNode.Kind == parser.NodeGroup {
			inner := callableNode.Expr
			if inner.Operation == lexer.SeparatorDot && inner.Count() == 2 {
				receiver := f.resolveNode(inner.Operand(0))
				if receiver.IsError() {
					return receiver
				}
				callee = objects.Select(f.environment, receiver, f.resolveNodeAsKey(inner.Operand(1)))
				args = append(args, receiver)
				resolved = true
			}
		}
		if !resolved {
			callee = f.resolveNode(callableNode)
		}
		if callee.IsError() {
			return callee
		}

		for _, operand := range expr.Operands[1:] {
			arg := f.resolveNode(operand)
			if arg.IsError() {
				return arg
			}
			args = append(args, arg)
		}
		return objects.Call(f.environment, callee, args)

	case lexer.SeparatorNewObject:
		callee := f.resolveNode(expr.Operand(0))
		if callee.IsError() {
			return callee
		}
		var args []objects.Value
		for _, operand := range expr.Operands[1:] {
			arg := f.resolveNode(operand)
			if arg.IsError() {
				return arg
			}
			args = append(args, arg)
		}
		return objects.NewObject(f.environment, callee, args)
	}

	return objects.Null
}
