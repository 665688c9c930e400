/*
File    : rebar-go/lexer/lexer.go
*/

// Package lexer performs lexical analysis of source code. Tokenization is
// driven by a symbol table rather than a hand-written switch: at each point
// the lexer asks the table for the longest symbol that prefixes the
// remaining input, which gives longest-match behavior ("<<=" before "<<"
// before "<") and lets hosts extend the operator set.
//
// The scanner is modal. In order of priority it is inside a line comment, a
// block comment, a string literal, or at top level; top level additionally
// accumulates identifier runs. Numeric literals fall out of identifier
// accumulation: when an identifier run terminates and its content scans as a
// number, it is emitted as an integer or number literal instead.
package lexer

import (
	"fmt"
	"strconv"
)

// LexUnit is the product of lexing: the token vector, a parallel vector of
// source positions, and any lexical errors. Space tokens are filtered out
// before the unit is returned.
type LexUnit struct {
	Tokens    []Token
	Positions []Position
	Errors    []string
}

func (u *LexUnit) add(tok Token, pos Position) {
	u.Tokens = append(u.Tokens, tok)
	u.Positions = append(u.Positions, pos)
}

func (u *LexUnit) addError(pos Position, format string, args ...any) {
	msg := fmt.Sprintf("[%d:%d] LEX ERROR: %s", pos.Row, pos.Col, fmt.Sprintf(format, args...))
	u.Errors = append(u.Errors, msg)
}

// HasErrors reports whether lexing produced any errors.
func (u *LexUnit) HasErrors() bool {
	return len(u.Errors) > 0
}

// Lexer converts source text into a LexUnit using a symbol table.
type Lexer struct {
	Symbols *SymbolTable
}

// NewLexer creates a lexer with the default symbol table.
func NewLexer() *Lexer {
	return &Lexer{Symbols: NewDefaultSymbolTable()}
}

// NewLexerWithSymbols creates a lexer with a caller-provided symbol table.
func NewLexerWithSymbols(symbols *SymbolTable) *Lexer {
	return &Lexer{Symbols: symbols}
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNumberString reports whether s is a numeric identifier: an optional
// single leading sign, at least one digit, and at most one decimal point.
func isNumberString(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits := false
	dot := false
	for ; i < len(s); i++ {
		switch {
		case isDigit(s[i]):
			digits = true
		case s[i] == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return digits
}

// isIntegerString reports whether s is a numeric identifier with no
// decimal point.
func isIntegerString(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	digits := false
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
		digits = true
	}
	return digits
}

// Lex scans src and returns the resulting lex unit. Unterminated strings
// and block comments are reported as lex errors.
func (lex *Lexer) Lex(src string) *LexUnit {
	unit := &LexUnit{}

	var (
		scan int
		pos  = Position{Row: 1, Col: 1}

		lineComment  bool
		blockComment bool
		stringMode   bool
		escapeMode   bool

		identifierMode bool
		identStart     int
		identPos       Position

		stringStart int
		stringPos   Position
	)

	// consume advances the scan index by n bytes, tracking row/column.
	consume := func(n int) {
		for k := 0; k < n && scan < len(src); k++ {
			if src[scan] == '\n' {
				pos.Row++
				pos.Col = 1
			} else {
				pos.Col++
			}
			scan++
		}
	}

	// flushIdentifier emits the identifier run ending at the current scan
	// index, classifying numeric runs as integer or number literals.
	flushIdentifier := func() {
		if !identifierMode {
			return
		}
		identifierMode = false

		text := src[identStart:scan]
		if text == "" {
			return
		}

		if isNumberString(text) {
			if isIntegerString(text) {
				value, err := strconv.ParseInt(text, 10, 64)
				if err != nil {
					unit.addError(identPos, "invalid integer literal %q", text)
					return
				}
				unit.add(IntegerToken(value), identPos)
			} else {
				value, err := strconv.ParseFloat(text, 64)
				if err != nil {
					unit.addError(identPos, "invalid number literal %q", text)
					return
				}
				unit.add(NumberToken(value), identPos)
			}
			return
		}

		unit.add(IdentifierToken(text), identPos)
	}

	for scan < len(src) {
		c := src[scan]

		if lineComment {
			if c == '\n' {
				lineComment = false
			}
			consume(1)
			continue
		}

		if blockComment {
			if c == '*' && scan+1 < len(src) && src[scan+1] == '/' {
				blockComment = false
				consume(2)
				continue
			}
			consume(1)
			continue
		}

		if stringMode {
			if escapeMode {
				escapeMode = false
			} else if c == '\\' {
				escapeMode = true
			} else if c == '"' {
				stringMode = false
				unit.add(StringToken(src[stringStart:scan]), stringPos)
			}
			consume(1)
			continue
		}

		if c == '/' && scan+1 < len(src) && (src[scan+1] == '/' || src[scan+1] == '*') {
			flushIdentifier()
			if src[scan+1] == '/' {
				lineComment = true
			} else {
				blockComment = true
			}
			consume(2)
			continue
		}

		if c == '"' {
			flushIdentifier()
			stringMode = true
			stringPos = pos
			consume(1)
			stringStart = scan
			continue
		}

		text, mapping, ok := lex.Symbols.MatchPrefix(src[scan:])
		if !ok {
			if !identifierMode {
				identifierMode = true
				identStart = scan
				identPos = pos
			}
			consume(1)
			continue
		}

		// A '-' directly before a digit begins a signed numeric identifier,
		// but only when no identifier is in progress ("n-1" must stay a
		// subtraction).
		if text == "-" && !identifierMode && scan+1 < len(src) && isDigit(src[scan+1]) {
			identifierMode = true
			identStart = scan
			identPos = pos
			consume(1)
			continue
		}

		// A word-boundary symbol directly followed by more word text begins
		// an identifier instead ("classify" is not "class ify").
		if !mapping.Interrupter && !identifierMode {
			if next := scan + len(text); next < len(src) && src[next] != '"' {
				if _, following, found := lex.Symbols.MatchPrefix(src[next:]); !found || !following.Interrupter {
					identifierMode = true
					identStart = scan
					identPos = pos
					consume(len(text))
					continue
				}
			}
		}

		if identifierMode {
			// Word-boundary symbols inside an identifier run are part of
			// the identifier ("fortune" is not "f or tune").
			if !mapping.Interrupter {
				consume(len(text))
				continue
			}

			// A decimal point between digits is absorbed so "3.14" stays
			// one number literal.
			if mapping.Replaced.IsSeparator(SeparatorDot) && isNumberString(src[identStart:scan]) {
				consume(len(text))
				continue
			}

			flushIdentifier()
		}

		if !mapping.Replaced.IsSeparator(SeparatorSpace) {
			unit.add(mapping.Replaced, pos)
		}
		consume(len(text))
	}

	flushIdentifier()

	if stringMode {
		unit.addError(stringPos, "unterminated string literal")
	}
	if blockComment {
		unit.addError(pos, "unterminated block comment")
	}

	return unit
}
