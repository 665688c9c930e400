/*
File    : rebar-go/lexer/lexer_test.go
*/
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLexTokens is a test case for Lex.
type TestLexTokens struct {
	Input          string
	ExpectedTokens []Token
}

func TestLexer_Tokens(t *testing.T) {
	tests := []TestLexTokens{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				IntegerToken(123),
				SeparatorToken(SeparatorAddition),
				IntegerToken(2),
				IntegerToken(31),
				SeparatorToken(SeparatorSubtraction),
				IntegerToken(12),
			},
		},
		{
			Input: `{ } + [ ] abc - a12`,
			ExpectedTokens: []Token{
				SeparatorToken(SeparatorScopeOpen),
				SeparatorToken(SeparatorScopeClose),
				SeparatorToken(SeparatorAddition),
				SeparatorToken(SeparatorSelectorOpen),
				SeparatorToken(SeparatorSelectorClose),
				IdentifierToken("abc"),
				SeparatorToken(SeparatorSubtraction),
				IdentifierToken("a12"),
			},
		},
		{
			// Longest-prefix match picks the widest symbol.
			Input: `<<= << <= < >>= >> >= > >|= >| == = !`,
			ExpectedTokens: []Token{
				SeparatorToken(SeparatorShiftLeftAssignment),
				SeparatorToken(SeparatorShiftLeft),
				SeparatorToken(SeparatorLesserEquality),
				SeparatorToken(SeparatorLesser),
				SeparatorToken(SeparatorShiftRightAssignment),
				SeparatorToken(SeparatorShiftRight),
				SeparatorToken(SeparatorGreaterEquality),
				SeparatorToken(SeparatorGreater),
				SeparatorToken(SeparatorBitwiseXorAssignment),
				SeparatorToken(SeparatorBitwiseXor),
				SeparatorToken(SeparatorEquality),
				SeparatorToken(SeparatorAssignment),
				SeparatorToken(SeparatorLogicalNot),
			},
		},
		{
			// '^' is exponentiation; '>|' is the XOR symbol.
			Input: `a ^ b >| c ^= d`,
			ExpectedTokens: []Token{
				IdentifierToken("a"),
				SeparatorToken(SeparatorExponent),
				IdentifierToken("b"),
				SeparatorToken(SeparatorBitwiseXor),
				IdentifierToken("c"),
				SeparatorToken(SeparatorExponentAssignment),
				IdentifierToken("d"),
			},
		},
		{
			// Word-form operators are only recognized on word boundaries.
			Input: `a or b and not c`,
			ExpectedTokens: []Token{
				IdentifierToken("a"),
				SeparatorToken(SeparatorLogicalOr),
				IdentifierToken("b"),
				SeparatorToken(SeparatorLogicalAnd),
				SeparatorToken(SeparatorLogicalNot),
				IdentifierToken("c"),
			},
		},
		{
			Input: `local x = 10; while (x) { x -= 1; }`,
			ExpectedTokens: []Token{
				KeywordToken(KeywordLocal),
				IdentifierToken("x"),
				SeparatorToken(SeparatorAssignment),
				IntegerToken(10),
				SeparatorToken(SeparatorEndStatement),
				KeywordToken(KeywordWhile),
				SeparatorToken(SeparatorGroupOpen),
				IdentifierToken("x"),
				SeparatorToken(SeparatorGroupClose),
				SeparatorToken(SeparatorScopeOpen),
				IdentifierToken("x"),
				SeparatorToken(SeparatorSubtractionAssignment),
				IntegerToken(1),
				SeparatorToken(SeparatorEndStatement),
				SeparatorToken(SeparatorScopeClose),
			},
		},
		{
			// Numeric identifiers: '.' between digits is absorbed, a '-'
			// before a digit signs the literal when no identifier is in
			// progress.
			Input: `3.14 -5 x = -2.5`,
			ExpectedTokens: []Token{
				NumberToken(3.14),
				IntegerToken(-5),
				IdentifierToken("x"),
				SeparatorToken(SeparatorAssignment),
				NumberToken(-2.5),
			},
		},
		{
			// A '-' inside an identifier run stays a subtraction.
			Input: `n-1`,
			ExpectedTokens: []Token{
				IdentifierToken("n"),
				SeparatorToken(SeparatorSubtraction),
				IntegerToken(1),
			},
		},
		{
			Input: `"hello" "with \"escape\"" ""`,
			ExpectedTokens: []Token{
				StringToken("hello"),
				StringToken(`with \"escape\"`),
				StringToken(""),
			},
		},
		{
			Input: `a = 1; // trailing comment
					b = 2; /* block
					comment */ c = 3;`,
			ExpectedTokens: []Token{
				IdentifierToken("a"),
				SeparatorToken(SeparatorAssignment),
				IntegerToken(1),
				SeparatorToken(SeparatorEndStatement),
				IdentifierToken("b"),
				SeparatorToken(SeparatorAssignment),
				IntegerToken(2),
				SeparatorToken(SeparatorEndStatement),
				IdentifierToken("c"),
				SeparatorToken(SeparatorAssignment),
				IntegerToken(3),
				SeparatorToken(SeparatorEndStatement),
			},
		},
		{
			Input: `t.a :: b -> c ... ; # ~`,
			ExpectedTokens: []Token{
				IdentifierToken("t"),
				SeparatorToken(SeparatorDot),
				IdentifierToken("a"),
				SeparatorToken(SeparatorNamespaceIndex),
				IdentifierToken("b"),
				SeparatorToken(SeparatorDirect),
				IdentifierToken("c"),
				SeparatorToken(SeparatorEllipsis),
				SeparatorToken(SeparatorEndStatement),
				SeparatorToken(SeparatorLength),
				SeparatorToken(SeparatorBitwiseNot),
			},
		},
		{
			Input: `true false null new typeof`,
			ExpectedTokens: []Token{
				KeywordToken(KeywordTrue),
				KeywordToken(KeywordFalse),
				KeywordToken(KeywordNull),
				SeparatorToken(SeparatorNewObject),
				KeywordToken(KeywordTypeOf),
			},
		},
	}

	for _, test := range tests {
		unit := NewLexer().Lex(test.Input)

		require.Falsef(t, unit.HasErrors(), "input %q: %v", test.Input, unit.Errors)
		// must: length match
		assert.Equalf(t, len(test.ExpectedTokens), len(unit.Tokens), "input %q: %v", test.Input, unit.Tokens)
		// must: token to token match
		for i, token := range test.ExpectedTokens {
			if i >= len(unit.Tokens) {
				break
			}
			assert.Equalf(t, token, unit.Tokens[i], "input %q, token %d", test.Input, i)
		}
	}
}

func TestLexer_Positions(t *testing.T) {
	unit := NewLexer().Lex("a = 1;\n  b = 2;")

	require.False(t, unit.HasErrors())
	require.Equal(t, len(unit.Tokens), len(unit.Positions))

	assert.Equal(t, Position{Row: 1, Col: 1}, unit.Positions[0]) // a
	assert.Equal(t, Position{Row: 1, Col: 3}, unit.Positions[1]) // =
	assert.Equal(t, Position{Row: 1, Col: 5}, unit.Positions[2]) // 1
	assert.Equal(t, Position{Row: 1, Col: 6}, unit.Positions[3]) // ;
	assert.Equal(t, Position{Row: 2, Col: 3}, unit.Positions[4]) // b
}

func TestLexer_Errors(t *testing.T) {
	unterminatedString := NewLexer().Lex(`a = "oops`)
	require.True(t, unterminatedString.HasErrors())
	assert.Contains(t, unterminatedString.Errors[0], "unterminated string")

	unterminatedComment := NewLexer().Lex(`a = 1; /* oops`)
	require.True(t, unterminatedComment.HasErrors())
	assert.Contains(t, unterminatedComment.Errors[0], "unterminated block comment")
}

// TestLexer_RoundTrip checks the lex round-trip property: re-lexing the
// space-joined symbol text of a token stream reproduces the same stream.
func TestLexer_RoundTrip(t *testing.T) {
	sources := []string{
		`local x = 10; x += 5; x *= 2; return x;`,
		`for (local k = 0; k < 5; k = k + 1) { i += k; }`,
		`a >| b ^ c << 2 >= d || e && ! f;`,
		`t.a :: b -> c # h ~ g;`,
	}

	for _, src := range sources {
		unit := NewLexer().Lex(src)
		require.Falsef(t, unit.HasErrors(), "input %q", src)

		parts := make([]string, 0, len(unit.Tokens))
		for _, tok := range unit.Tokens {
			parts = append(parts, tok.SymbolText())
		}
		relexed := NewLexer().Lex(strings.Join(parts, " "))

		require.Falsef(t, relexed.HasErrors(), "re-lex of %q", src)
		assert.Equalf(t, unit.Tokens, relexed.Tokens, "round trip of %q", src)
	}
}
