/*
File    : rebar-go/eval/eval_assignables.go
*/
package eval

import (
	"github.com/Buckell/rebar-go/lexer"
	"github.com/Buckell/rebar-go/objects"
	"github.com/Buckell/rebar-go/parser"
)

// resolveAssignable resolves a node to a mutable value slot. Identifier
// tokens resolve through the scope stack (binding a global slot when
// unknown); groups, selectors and expressions recurse into the assignable
// expression rules. The error value is set when no slot can be produced.
func (f *frame) resolveAssignable(n parser.Node) (*objects.Value, objects.Value) {
	switch n.Kind {
	case parser.NodeToken:
		if n.Token.IsIdentifier() {
			return f.findVariable(f.environment.Intern(n.Token.Text)), objects.Null
		}

	case parser.NodeGroup, parser.NodeSelector, parser.NodeExpression:
		return f.resolveAssignableExpression(n.Expr)
	}

	return nil, objects.NewTypeError("expression is not assignable")
}

// resolveAssignableExpression resolves the operator shapes that denote
// assignable storage: scope-qualified identifiers (the space sentinel with
// local/const flags), member access, indexing, the compound assignments,
// and prefix increment/decrement.
func (f *frame) resolveAssignableExpression(expr *parser.Expression) (*objects.Value, objects.Value) {
	switch expr.Operation {
	case lexer.SeparatorSpace:
		if expr.Count() == 0 {
			return nil, objects.NewTypeError("empty expression is not assignable")
		}

		flagLocal := false
		for _, operand := range expr.Operands[:expr.Count()-1] {
			if operand.Kind == parser.NodeToken && operand.Token.IsKeyword(lexer.KeywordLocal) {
				flagLocal = true
			}
		}

		assignee := expr.Operand(expr.Count() - 1)

		// 'local' binds into the innermost scope instead of resolving
		// through the chain.
		if flagLocal && assignee.Kind == parser.NodeToken && assignee.Token.IsIdentifier() {
			scope := f.locals[len(f.locals)-1]
			return scope.At(f.environment.Intern(assignee.Token.Text)), objects.Null
		}

		return f.resolveAssignable(assignee)

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
		return f.compoundAssign(expr)

	case lexer.SeparatorOperationPrefixIncrement:
		return f.prefixStep(expr, true)
	case lexer.SeparatorOperationPrefixDecrement:
		return f.prefixStep(expr, false)

	case lexer.SeparatorNamespaceIndex, lexer.SeparatorDirect, lexer.SeparatorDot:
		if expr.Count() == 2 {
			target := f.resolveNode(expr.Operand(0))
			key := f.resolveNodeAsKey(expr.Operand(1))
			return objects.Index(f.environment, target, key)
		}

	case lexer.SeparatorOperationIndex:
		if expr.Count() == 2 {
			target := f.resolveNode(expr.Operand(0))
			var key objects.Value
			if expr.Operand(1).Kind == parser.NodeSelector {
				key = f.evaluateExpression(expr.Operand(1).Expr)
			} else {
				key = f.resolveNode(expr.Operand(1))
			}
			return objects.Index(f.environment, target, key)
		}
	}

	return nil, objects.NewTypeError("expression is not assignable")
}

// compoundAssign applies a compound-assignment operator: the assignee is
// resolved before the right-hand side is evaluated, then mutated through
// the per-type rule or the native object's assignment slot. Returns the
// assignee slot.
func (f *frame) compoundAssign(expr *parser.Expression) (*objects.Value, objects.Value) {
	slot, errv := f.resolveAssignable(expr.Operand(0))
	if slot == nil {
		return nil, errv
	}

	assignee := *slot
	rhs := f.resolveNode(expr.Operand(1))
	if rhs.IsError() {
		return nil, rhs
	}

	if assignee.IsNativeObject() {
		vt := assignee.Native().VTable()
		var nativeSlot objects.BinaryOverload
		switch expr.Operation {
		case lexer.SeparatorAdditionAssignment:
			nativeSlot = vt.AdditionAssignment
		case lexer.SeparatorSubtractionAssignment:
			nativeSlot = vt.SubtractionAssignment
		case lexer.SeparatorMultiplicationAssignment:
			nativeSlot = vt.MultiplicationAssignment
		case lexer.SeparatorDivisionAssignment:
			nativeSlot = vt.DivisionAssignment
		case lexer.SeparatorModulusAssignment:
			nativeSlot = vt.ModulusAssignment
		case lexer.SeparatorExponentAssignment:
			nativeSlot = vt.ExponentAssignment
		case lexer.SeparatorBitwiseOrAssignment:
			nativeSlot = vt.BitwiseOrAssignment
		case lexer.SeparatorBitwiseXorAssignment:
			nativeSlot = vt.BitwiseXorAssignment
		case lexer.SeparatorBitwiseAndAssignment:
			nativeSlot = vt.BitwiseAndAssignment
		case lexer.SeparatorShiftRightAssignment:
			nativeSlot = vt.ShiftRightAssignment
		case lexer.SeparatorShiftLeftAssignment:
			nativeSlot = vt.ShiftLeftAssignment
		}
		if nativeSlot == nil {
			return nil, objects.NewTypeError("native object does not overload '%s'", expr.Operation.SymbolText())
		}
		if result := nativeSlot(f.environment, assignee, rhs); result.IsError() {
			return nil, result
		}
		return slot, objects.Null
	}

	var result objects.Value
	switch expr.Operation {
	case lexer.SeparatorAdditionAssignment:
		result = objects.Add(f.environment, assignee, rhs)
	case lexer.SeparatorSubtractionAssignment:
		result = objects.Subtract(f.environment, assignee, rhs)
	case lexer.SeparatorMultiplicationAssignment:
		result = objects.Multiply(f.environment, assignee, rhs)
	case lexer.SeparatorDivisionAssignment:
		result = objects.Divide(f.environment, assignee, rhs)
	case lexer.SeparatorModulusAssignment:
		result = objects.Modulus(f.environment, assignee, rhs)
	case lexer.SeparatorExponentAssignment:
		result = objects.Exponentiate(f.environment, assignee, rhs)
	case lexer.SeparatorBitwiseOrAssignment:
		result = objects.BitwiseOr(f.environment, assignee, rhs)
	case lexer.SeparatorBitwiseXorAssignment:
		result = objects.BitwiseXor(f.environment, assignee, rhs)
	case lexer.SeparatorBitwiseAndAssignment:
		result = objects.BitwiseAnd(f.environment, assignee, rhs)
	case lexer.SeparatorShiftRightAssignment:
		result = objects.ShiftRight(f.environment, assignee, rhs)
	case lexer.SeparatorShiftLeftAssignment:
		result = objects.ShiftLeft(f.environment, assignee, rhs)
	default:
		return nil, objects.NewTypeError("invalid compound assignment")
	}
	if result.IsError() {
		return nil, result
	}

	*slot = result
	return slot, objects.Null
}

// prefixStep applies prefix increment or decrement: the assignee mutates
// in place by one (or through its native vtable slot) and its slot is
// returned, so the expression yields the new value.
func (f *frame) prefixStep(expr *parser.Expression, increment bool) (*objects.Value, objects.Value) {
	slot, errv := f.resolveAssignable(expr.Operand(0))
	if slot == nil {
		return nil, errv
	}

	assignee := *slot
	if assignee.IsNativeObject() {
		vt := assignee.Native().VTable()
		nativeSlot := vt.PrefixDecrement
		name := "prefix '--'"
		if increment {
			nativeSlot = vt.PrefixIncrement
			name = "prefix '++'"
		}
		if nativeSlot == nil {
			return nil, objects.NewTypeError("native object does not overload %s", name)
		}
		if result := nativeSlot(f.environment, assignee); result.IsError() {
			return nil, result
		}
		return slot, objects.Null
	}

	var result objects.Value
	if increment {
		result = objects.Add(f.environment, assignee, objects.NewInteger(1))
	} else {
		result = objects.Subtract(f.environment, assignee, objects.NewInteger(1))
	}
	if result.IsError() {
		return nil, result
	}

	*slot = result
	return slot, objects.Null
}
