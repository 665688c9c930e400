/*
File    : rebar-go/parser/parser_test.go
*/
package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Buckell/rebar-go/lexer"
)

// parseSource parses src and fails the test on diagnostics.
func parseSource(t *testing.T, src string) *ParseUnit {
	t.Helper()
	p := NewParser()
	unit := p.Parse(src)
	require.Falsef(t, p.HasErrors(), "source %q: %v", src, p.GetErrors())
	return unit
}

// statementExpr fetches the i-th statement as an expression.
func statementExpr(t *testing.T, unit *ParseUnit, i int) *Expression {
	t.Helper()
	require.Greater(t, len(unit.Block), i)
	require.Equal(t, NodeExpression, unit.Block[i].Kind)
	return unit.Block[i].Expr
}

func TestParser_Precedence(t *testing.T) {
	// 1 + 2 * 3 parses with '*' nested under '+'.
	expr := statementExpr(t, parseSource(t, `1 + 2 * 3;`), 0)
	require.Equal(t, lexer.SeparatorAddition, expr.Operation)
	require.Equal(t, 2, expr.Count())
	assert.Equal(t, NodeToken, expr.Operand(0).Kind)
	assert.Equal(t, int64(1), expr.Operand(0).Token.Int)

	rhs := expr.Operand(1)
	require.Equal(t, NodeExpression, rhs.Kind)
	assert.Equal(t, lexer.SeparatorMultiplication, rhs.Expr.Operation)
}

func TestParser_GroupingOverridesPrecedence(t *testing.T) {
	// (1 + 2) * 3 parses with '+' nested in a group under '*'.
	expr := statementExpr(t, parseSource(t, `(1 + 2) * 3;`), 0)
	require.Equal(t, lexer.SeparatorMultiplication, expr.Operation)

	lhs := expr.Operand(0)
	require.Equal(t, NodeGroup, lhs.Kind)
	assert.Equal(t, lexer.SeparatorAddition, lhs.Expr.Operation)
}

func TestParser_LeftAssociativity(t *testing.T) {
	// a - b - c parses as (a - b) - c: the rightmost same-precedence
	// separator becomes the root.
	expr := statementExpr(t, parseSource(t, `a - b - c;`), 0)
	require.Equal(t, lexer.SeparatorSubtraction, expr.Operation)

	lhs := expr.Operand(0)
	require.Equal(t, NodeExpression, lhs.Kind)
	assert.Equal(t, lexer.SeparatorSubtraction, lhs.Expr.Operation)
	assert.Equal(t, NodeToken, expr.Operand(1).Kind)
}

func TestParser_ExponentRightAssociativity(t *testing.T) {
	// 2 ^ 3 ^ 2 parses as 2 ^ (3 ^ 2).
	expr := statementExpr(t, parseSource(t, `2 ^ 3 ^ 2;`), 0)
	require.Equal(t, lexer.SeparatorExponent, expr.Operation)

	assert.Equal(t, NodeToken, expr.Operand(0).Kind)
	rhs := expr.Operand(1)
	require.Equal(t, NodeExpression, rhs.Kind)
	assert.Equal(t, lexer.SeparatorExponent, rhs.Expr.Operation)
}

func TestParser_Ternary(t *testing.T) {
	expr := statementExpr(t, parseSource(t, `a ? b : c;`), 0)
	require.Equal(t, lexer.SeparatorTernary, expr.Operation)
	require.Equal(t, 3, expr.Count())
}

func TestParser_CallAndIndexMetaOps(t *testing.T) {
	// f(x, y) folds into a call with callee plus one operand per argument.
	call := statementExpr(t, parseSource(t, `f(x, y);`), 0)
	require.Equal(t, lexer.SeparatorOperationCall, call.Operation)
	require.Equal(t, 3, call.Count())
	assert.Equal(t, "f", call.Operand(0).Token.Text)

	// a[i] folds into an index with target and selector.
	index := statementExpr(t, parseSource(t, `a[i];`), 0)
	require.Equal(t, lexer.SeparatorOperationIndex, index.Operation)
	require.Equal(t, 2, index.Count())
	assert.Equal(t, NodeSelector, index.Operand(1).Kind)

	// a[1:2] folds into an index with target, lower and upper bounds.
	ranged := statementExpr(t, parseSource(t, `a[1:2];`), 0)
	require.Equal(t, lexer.SeparatorOperationIndex, ranged.Operation)
	require.Equal(t, 3, ranged.Count())
}

func TestParser_PrefixPostfix(t *testing.T) {
	prefix := statementExpr(t, parseSource(t, `++a;`), 0)
	assert.Equal(t, lexer.SeparatorOperationPrefixIncrement, prefix.Operation)

	postfix := statementExpr(t, parseSource(t, `a--;`), 0)
	assert.Equal(t, lexer.SeparatorOperationPostfixDecrement, postfix.Operation)

	not := statementExpr(t, parseSource(t, `!a;`), 0)
	assert.Equal(t, lexer.SeparatorLogicalNot, not.Operation)

	length := statementExpr(t, parseSource(t, `#a;`), 0)
	assert.Equal(t, lexer.SeparatorLength, length.Operation)
}

func TestParser_SpaceSentinelCarriesFlags(t *testing.T) {
	// "local x = 10" assigns onto a space wrapper holding the 'local'
	// keyword and the trailing assignable.
	expr := statementExpr(t, parseSource(t, `local x = 10;`), 0)
	require.Equal(t, lexer.SeparatorAssignment, expr.Operation)

	lhs := expr.Operand(0)
	require.Equal(t, NodeExpression, lhs.Kind)
	require.Equal(t, lexer.SeparatorSpace, lhs.Expr.Operation)
	require.Equal(t, 2, lhs.Expr.Count())
	assert.True(t, lhs.Expr.Operand(0).Token.IsKeyword(lexer.KeywordLocal))
	assert.Equal(t, "x", lhs.Expr.Operand(1).Token.Text)
}

func TestParser_IfElseChain(t *testing.T) {
	unit := parseSource(t, `
		if (a) { x = 1; }
		else if (b) { x = 2; }
		else { x = 3; }
	`)

	require.Len(t, unit.Block, 3)
	assert.Equal(t, NodeIf, unit.Block[0].Kind)
	assert.Equal(t, NodeElseIf, unit.Block[1].Kind)
	assert.Equal(t, NodeElse, unit.Block[2].Kind)
	assert.Len(t, unit.Block[0].If.Body, 1)
}

func TestParser_SingleStatementBodies(t *testing.T) {
	// A single-statement body recurses through parseBlock, so statement
	// forms like return work.
	unit := parseSource(t, `if (n < 2) return n;`)

	require.Len(t, unit.Block, 1)
	require.Equal(t, NodeIf, unit.Block[0].Kind)
	body := unit.Block[0].If.Body
	require.Len(t, body, 1)
	assert.Equal(t, NodeReturn, body[0].Kind)
}

func TestParser_ForHeader(t *testing.T) {
	unit := parseSource(t, `for (local k = 0; k < 5; k = k + 1) { i += k; }`)

	require.Len(t, unit.Block, 1)
	require.Equal(t, NodeFor, unit.Block[0].Kind)

	decl := unit.Block[0].For
	assert.Equal(t, lexer.SeparatorAssignment, decl.Initialization.Operation)
	assert.Equal(t, lexer.SeparatorLesser, decl.Conditional.Operation)
	assert.Equal(t, lexer.SeparatorAssignment, decl.Iteration.Operation)
	require.Len(t, decl.Body, 1)
}

func TestParser_WhileAndLoopControl(t *testing.T) {
	unit := parseSource(t, `while (k < 3) { break; continue; }`)

	require.Len(t, unit.Block, 1)
	require.Equal(t, NodeWhile, unit.Block[0].Kind)

	body := unit.Block[0].While.Body
	require.Len(t, body, 2)
	assert.Equal(t, NodeBreak, body[0].Kind)
	assert.Equal(t, NodeContinue, body[1].Kind)
}

func TestParser_FunctionDeclaration(t *testing.T) {
	unit := parseSource(t, `function add(a, b) { return a + b; }`)

	require.Len(t, unit.Block, 1)
	require.Equal(t, NodeFunction, unit.Block[0].Kind)

	decl := unit.Block[0].Fn
	assert.Equal(t, FunctionGlobal, decl.Tags)
	require.Len(t, decl.Parameters, 2)

	// The identifier wrapper carries the 'function' keyword plus the name.
	require.Equal(t, lexer.SeparatorSpace, decl.Identifier.Operation)
	last := decl.Identifier.Operand(decl.Identifier.Count() - 1)
	assert.Equal(t, "add", last.Token.Text)
}

func TestParser_FunctionTags(t *testing.T) {
	tests := []struct {
		Source string
		Tags   FunctionTags
	}{
		{`function f() { return 1; }`, FunctionGlobal},
		{`local function f() { return 1; }`, FunctionBasic},
		{`const function f() { return 1; }`, FunctionGlobalConstant},
		{`local const function f() { return 1; }`, FunctionConstant},
	}

	for _, test := range tests {
		unit := parseSource(t, test.Source)
		require.Lenf(t, unit.Block, 1, "source %q", test.Source)
		require.Equalf(t, NodeFunction, unit.Block[0].Kind, "source %q", test.Source)
		assert.Equalf(t, test.Tags, unit.Block[0].Fn.Tags, "source %q", test.Source)
	}
}

func TestParser_MethodSyntaxPrependsThis(t *testing.T) {
	unit := parseSource(t, `function t.get(key) { return key; }`)

	require.Len(t, unit.Block, 1)
	decl := unit.Block[0].Fn

	require.Equal(t, lexer.SeparatorDot, decl.Identifier.Operation)
	require.Len(t, decl.Parameters, 2)

	this := decl.Parameters[0]
	require.Equal(t, 1, this.Count())
	assert.Equal(t, "this", this.Operand(0).Token.Text)
}

func TestParser_ImmediateLiterals(t *testing.T) {
	// Immediate table with bare and computed keys.
	table := statementExpr(t, parseSource(t, `local t = { a = 1, [2] = "two" };`), 0)
	require.Equal(t, lexer.SeparatorAssignment, table.Operation)
	rhs := table.Operand(1)
	require.Equal(t, NodeImmediateTable, rhs.Kind)
	require.Len(t, rhs.Table.Entries, 2)
	assert.Equal(t, NodeToken, rhs.Table.Entries[0].Key.Kind)
	assert.Equal(t, NodeExpression, rhs.Table.Entries[1].Key.Kind)

	// Immediate array.
	array := statementExpr(t, parseSource(t, `local a = [10, 20, 30];`), 0)
	arrNode := array.Operand(1)
	require.Equal(t, NodeImmediateArray, arrNode.Kind)
	assert.Len(t, arrNode.Elems, 3)
}

func TestParser_NestedBlock(t *testing.T) {
	unit := parseSource(t, `{ local y = 1; }`)
	require.Len(t, unit.Block, 1)
	assert.Equal(t, NodeBlock, unit.Block[0].Kind)
	assert.Len(t, unit.Block[0].Block, 1)
}

func TestParser_NewObjectFlattensCall(t *testing.T) {
	expr := statementExpr(t, parseSource(t, `new Point(1, 2);`), 0)
	require.Equal(t, lexer.SeparatorNewObject, expr.Operation)
	require.Equal(t, 3, expr.Count())
	assert.Equal(t, "Point", expr.Operand(0).Token.Text)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		Source   string
		Fragment string
	}{
		{`if (a { x = 1; }`, "incomplete 'if'"},
		{`break`, "'break' must be followed by ';'"},
		{`continue`, "'continue' must be followed by ';'"},
		{`{ x = 1;`, "unterminated block"},
		{`x = (1 + 2;`, "unbalanced '('"},
		{`local t = { 1 = 2 };`, "invalid immediate table key"},
		{`local t = { a + 2 };`, "requires '='"},
	}

	for _, test := range tests {
		p := NewParser()
		p.Parse(test.Source)
		require.Truef(t, p.HasErrors(), "source %q", test.Source)
		found := false
		for _, msg := range p.GetErrors() {
			if strings.Contains(msg, test.Fragment) {
				found = true
			}
		}
		assert.Truef(t, found, "source %q errors %v missing %q", test.Source, p.GetErrors(), test.Fragment)
	}
}
