/*
File    : rebar-go/lexer/token.go
*/
package lexer

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a lexical token.
type TokenKind uint8

const (
	// TokenSeparator is punctuation or a word-form operator.
	TokenSeparator TokenKind = iota
	// TokenKeyword is a reserved word.
	TokenKeyword
	// TokenStringLiteral is the raw text between double quotes. Escape
	// sequences are kept verbatim; no transformation happens at this layer.
	TokenStringLiteral
	// TokenIdentifier is a user-defined name.
	TokenIdentifier
	// TokenIntegerLiteral is a 64-bit signed integer literal.
	TokenIntegerLiteral
	// TokenNumberLiteral is a 64-bit floating-point literal.
	TokenNumberLiteral
)

// Position is a row/column location in the source text (1-indexed).
type Position struct {
	Row int
	Col int
}

// Token is a discriminated lexical token. Kind selects which payload field
// is meaningful: Sep for separators, Kw for keywords, Text for string
// literals and identifiers, Int and Num for the numeric literals.
type Token struct {
	Kind TokenKind
	Sep  Separator
	Kw   Keyword
	Text string
	Int  int64
	Num  float64
}

// SeparatorToken creates a separator token.
func SeparatorToken(sep Separator) Token {
	return Token{Kind: TokenSeparator, Sep: sep}
}

// KeywordToken creates a keyword token.
func KeywordToken(kw Keyword) Token {
	return Token{Kind: TokenKeyword, Kw: kw}
}

// StringToken creates a string-literal token carrying the raw quoted text.
func StringToken(text string) Token {
	return Token{Kind: TokenStringLiteral, Text: text}
}

// IdentifierToken creates an identifier token.
func IdentifierToken(text string) Token {
	return Token{Kind: TokenIdentifier, Text: text}
}

// IntegerToken creates an integer-literal token.
func IntegerToken(value int64) Token {
	return Token{Kind: TokenIntegerLiteral, Int: value}
}

// NumberToken creates a number-literal token.
func NumberToken(value float64) Token {
	return Token{Kind: TokenNumberLiteral, Num: value}
}

// IsSeparator reports whether the token is the given separator.
func (t Token) IsSeparator(sep Separator) bool {
	return t.Kind == TokenSeparator && t.Sep == sep
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == TokenKeyword && t.Kw == kw
}

// IsAnySeparator reports whether the token is a separator of any kind.
func (t Token) IsAnySeparator() bool {
	return t.Kind == TokenSeparator
}

// IsAnyKeyword reports whether the token is a keyword of any kind.
func (t Token) IsAnyKeyword() bool {
	return t.Kind == TokenKeyword
}

// IsIdentifier reports whether the token is an identifier.
func (t Token) IsIdentifier() bool {
	return t.Kind == TokenIdentifier
}

// SymbolText returns the source spelling of the token: the symbol for
// separators and keywords, the text for identifiers and string literals,
// and the formatted value for numeric literals.
func (t Token) SymbolText() string {
	switch t.Kind {
	case TokenSeparator:
		return t.Sep.SymbolText()
	case TokenKeyword:
		return t.Kw.Text()
	case TokenStringLiteral, TokenIdentifier:
		return t.Text
	case TokenIntegerLiteral:
		return strconv.FormatInt(t.Int, 10)
	case TokenNumberLiteral:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	}
	return ""
}

// String returns a diagnostic representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenSeparator:
		return fmt.Sprintf("SEPARATOR: %q", t.Sep.SymbolText())
	case TokenKeyword:
		return fmt.Sprintf("KEYWORD: %s", t.Kw.Text())
	case TokenStringLiteral:
		return fmt.Sprintf("STRING LITERAL: %q", t.Text)
	case TokenIdentifier:
		return fmt.Sprintf("IDENTIFIER: %s", t.Text)
	case TokenIntegerLiteral:
		return fmt.Sprintf("INTEGER LITERAL: %d", t.Int)
	case TokenNumberLiteral:
		return fmt.Sprintf("NUMBER LITERAL: %v", t.Num)
	}
	return "INVALID"
}
