/*
File    : rebar-go/lexer/symbols_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolTable_Lookup(t *testing.T) {
	st := NewDefaultSymbolTable()

	mapping, ok := st.Lookup("+=")
	require.True(t, ok)
	assert.True(t, mapping.Interrupter)
	assert.Equal(t, SeparatorToken(SeparatorAdditionAssignment), mapping.Replaced)

	mapping, ok = st.Lookup("or")
	require.True(t, ok)
	assert.False(t, mapping.Interrupter)
	assert.Equal(t, SeparatorToken(SeparatorLogicalOr), mapping.Replaced)

	mapping, ok = st.Lookup("while")
	require.True(t, ok)
	assert.False(t, mapping.Interrupter)
	assert.Equal(t, KeywordToken(KeywordWhile), mapping.Replaced)

	_, ok = st.Lookup("@")
	assert.False(t, ok)
}

// TestSymbolTable_MatchPrefix verifies longest-prefix selection: the
// longest key prefixing the input always wins.
func TestSymbolTable_MatchPrefix(t *testing.T) {
	st := NewDefaultSymbolTable()

	tests := []struct {
		Input    string
		Expected string
		Token    Token
	}{
		{"<<= 1", "<<=", SeparatorToken(SeparatorShiftLeftAssignment)},
		{"<< 1", "<<", SeparatorToken(SeparatorShiftLeft)},
		{"<1", "<", SeparatorToken(SeparatorLesser)},
		{">|= x", ">|=", SeparatorToken(SeparatorBitwiseXorAssignment)},
		{">|x", ">|", SeparatorToken(SeparatorBitwiseXor)},
		{"...rest", "...", SeparatorToken(SeparatorEllipsis)},
		{"..", ".", SeparatorToken(SeparatorDot)},
		{"::x", "::", SeparatorToken(SeparatorNamespaceIndex)},
		{"functional", "function", KeywordToken(KeywordFunction)},
		{"++i", "++", SeparatorToken(SeparatorIncrement)},
	}

	for _, test := range tests {
		text, mapping, ok := st.MatchPrefix(test.Input)
		require.Truef(t, ok, "input %q", test.Input)
		assert.Equalf(t, test.Expected, text, "input %q", test.Input)
		assert.Equalf(t, test.Token, mapping.Replaced, "input %q", test.Input)
	}

	_, _, ok := st.MatchPrefix("abc")
	assert.False(t, ok)
}

func TestSeparatorInfo_Precedences(t *testing.T) {
	// Higher binds tighter: grouping 10 down to list/statement 0.
	assert.Equal(t, 10, GetSeparatorInfo(SeparatorDot).Precedence)
	assert.Equal(t, 9, GetSeparatorInfo(SeparatorLength).Precedence)
	assert.Equal(t, 8, GetSeparatorInfo(SeparatorExponent).Precedence)
	assert.Equal(t, 7, GetSeparatorInfo(SeparatorBitwiseXor).Precedence)
	assert.Equal(t, 6, GetSeparatorInfo(SeparatorMultiplication).Precedence)
	assert.Equal(t, 5, GetSeparatorInfo(SeparatorAddition).Precedence)
	assert.Equal(t, 4, GetSeparatorInfo(SeparatorEquality).Precedence)
	assert.Equal(t, 3, GetSeparatorInfo(SeparatorLogicalAnd).Precedence)
	assert.Equal(t, 2, GetSeparatorInfo(SeparatorTernary).Precedence)
	assert.Equal(t, 2, GetSeparatorInfo(SeparatorAdditionAssignment).Precedence)
	assert.Equal(t, 1, GetSeparatorInfo(SeparatorAssignment).Precedence)
	assert.Equal(t, 0, GetSeparatorInfo(SeparatorList).Precedence)

	// Exponent binds tighter than multiplication.
	assert.Greater(t,
		GetSeparatorInfo(SeparatorExponent).Precedence,
		GetSeparatorInfo(SeparatorMultiplication).Precedence)

	// Single-operand flags.
	assert.True(t, GetSeparatorInfo(SeparatorLogicalNot).SingleOperand)
	assert.True(t, GetSeparatorInfo(SeparatorBitwiseNot).SingleOperand)
	assert.True(t, GetSeparatorInfo(SeparatorLength).SingleOperand)
	assert.True(t, GetSeparatorInfo(SeparatorNewObject).SingleOperand)
	assert.True(t, GetSeparatorInfo(SeparatorIncrement).SingleOperand)
	assert.False(t, GetSeparatorInfo(SeparatorAddition).SingleOperand)
}
