/*
File    : rebar-go/parser/parser.go
*/

/*
Package parser lowers a flat token stream into a tree of parse nodes.

Three mutually recursive routines operate on index ranges of the token
vector:

  - parseBlock recognizes statements from their leading tokens (if/else,
    for, while, function, return, break/continue, nested blocks, plain
    expression statements).
  - parseGroup captures bracketed structure (groups, argument lists,
    selectors, ranged selectors, immediate arrays and tables) into nodes and
    hands the flat node sequence to parseAST.
  - parseAST builds the expression tree by repeatedly splitting a node span
    at its minimum-precedence separator.

The parser collects errors instead of stopping at the first problem, so a
single parse can report every diagnostic it finds.
*/
package parser

import (
	"fmt"

	"github.com/Buckell/rebar-go/lexer"
)

// thisToken is the synthetic receiver identifier prepended to the parameter
// list of method-style function declarations ("function T.f(...)").
var thisToken = lexer.IdentifierToken("this")

// Parser converts source text into a ParseUnit.
type Parser struct {
	lex       *lexer.Lexer
	tokens    []lexer.Token
	positions []lexer.Position

	// Errors collects lexical and syntactic diagnostics. Lexical and
	// statement-level diagnostics are prefixed with the offending
	// [row:col]; those raised while building an expression tree carry
	// [0:0].
	Errors []string
}

// NewParser creates a parser with the default symbol table.
func NewParser() *Parser {
	return &Parser{lex: lexer.NewLexer()}
}

// NewParserWithSymbols creates a parser over a caller-provided symbol table.
func NewParserWithSymbols(symbols *lexer.SymbolTable) *Parser {
	return &Parser{lex: lexer.NewLexerWithSymbols(symbols)}
}

// HasErrors reports whether the last Parse produced any diagnostics.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns the collected diagnostics.
func (p *Parser) GetErrors() []string {
	return p.Errors
}

// errorAt records a diagnostic at the position of token index i.
func (p *Parser) errorAt(i int, format string, args ...any) {
	pos := lexer.Position{}
	if i >= 0 && i < len(p.positions) {
		pos = p.positions[i]
	} else if n := len(p.positions); n > 0 {
		pos = p.positions[n-1]
	}
	msg := fmt.Sprintf("[%d:%d] PARSE ERROR: %s", pos.Row, pos.Col, fmt.Sprintf(format, args...))
	p.Errors = append(p.Errors, msg)
}

// Parse lexes and parses src into a ParseUnit. The unit owns the source
// text and the lex unit; parse nodes borrow tokens from it.
func (p *Parser) Parse(src string) *ParseUnit {
	p.Errors = nil

	unit := &ParseUnit{Source: src}
	unit.Lex = p.lex.Lex(src)
	p.Errors = append(p.Errors, unit.Lex.Errors...)

	p.tokens = unit.Lex.Tokens
	p.positions = unit.Lex.Positions
	unit.Block = p.parseBlock(0, len(p.tokens))

	return unit
}

// parseConditionalBody parses the body following a closed conditional: a
// "{...}" block or a single statement terminated by ';'. groupClose indexes
// the ')' token. Returns the body nodes and the index of the last consumed
// token.
func (p *Parser) parseConditionalBody(groupClose, hi int) ([]Node, int, bool) {
	if groupClose+1 < hi && p.tokens[groupClose+1].IsSeparator(lexer.SeparatorScopeOpen) {
		blockEnd := p.findSeparator(groupClose+2, hi, lexer.SeparatorScopeClose, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
		if blockEnd == hi {
			p.errorAt(groupClose+1, "unterminated block")
			return nil, hi - 1, false
		}
		return p.parseBlock(groupClose+2, blockEnd), blockEnd, true
	}

	stmtEnd := p.findSeparator(groupClose+1, hi, lexer.SeparatorEndStatement, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
	if stmtEnd == hi {
		p.errorAt(groupClose, "missing ';' after single-statement body")
		return nil, hi - 1, false
	}
	// Recurse through parseBlock so statement forms ("return x;") work as
	// single-statement bodies.
	return p.parseBlock(groupClose+1, stmtEnd+1), stmtEnd, true
}

// parseBlock recognizes the statements of tokens[lo:hi].
func (p *Parser) parseBlock(lo, hi int) []Node {
	var nodes []Node

	flagLocal := false
	flagConstant := false

	// flagOffset consumes the pending local/const flags and returns how
	// many flag tokens directly precede index i.
	flagOffset := func() int {
		offset := 0
		if flagLocal {
			offset++
		}
		if flagConstant {
			offset++
		}
		flagLocal = false
		flagConstant = false
		return offset
	}

	for i := lo; i < hi; i++ {
		tok := p.tokens[i]

		switch {
		case tok.IsKeyword(lexer.KeywordIf) && i+1 < hi && p.tokens[i+1].IsSeparator(lexer.SeparatorGroupOpen):
			condClose := p.findSeparator(i+2, hi, lexer.SeparatorGroupClose, lexer.SeparatorGroupOpen, lexer.SeparatorGroupClose)
			if condClose == hi {
				p.errorAt(i, "incomplete 'if' conditional")
				return nodes
			}
			cond := p.parseGroup(i+2, condClose)
			body, last, ok := p.parseConditionalBody(condClose, hi)
			if !ok {
				return nodes
			}
			nodes = append(nodes, Node{Kind: NodeIf, If: &IfDecl{Conditional: cond, Body: body}})
			i = last

		case tok.IsKeyword(lexer.KeywordElse):
			switch {
			case i+1 < hi && p.tokens[i+1].IsKeyword(lexer.KeywordIf):
				if i+2 >= hi || !p.tokens[i+2].IsSeparator(lexer.SeparatorGroupOpen) {
					p.errorAt(i, "incomplete 'else if' conditional")
					return nodes
				}
				condClose := p.findSeparator(i+3, hi, lexer.SeparatorGroupClose, lexer.SeparatorGroupOpen, lexer.SeparatorGroupClose)
				if condClose == hi {
					p.errorAt(i, "incomplete 'else if' conditional")
					return nodes
				}
				cond := p.parseGroup(i+3, condClose)
				body, last, ok := p.parseConditionalBody(condClose, hi)
				if !ok {
					return nodes
				}
				nodes = append(nodes, Node{Kind: NodeElseIf, If: &IfDecl{Conditional: cond, Body: body}})
				i = last

			case i+1 < hi && p.tokens[i+1].IsSeparator(lexer.SeparatorScopeOpen):
				blockEnd := p.findSeparator(i+2, hi, lexer.SeparatorScopeClose, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
				if blockEnd == hi {
					p.errorAt(i+1, "unterminated 'else' block")
					return nodes
				}
				nodes = append(nodes, Node{Kind: NodeElse, Block: p.parseBlock(i+2, blockEnd)})
				i = blockEnd

			default:
				stmtEnd := p.findSeparator(i+1, hi, lexer.SeparatorEndStatement, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
				if stmtEnd == hi {
					p.errorAt(i, "missing ';' after 'else' statement")
					return nodes
				}
				nodes = append(nodes, Node{Kind: NodeElse, Block: p.parseBlock(i+1, stmtEnd+1)})
				i = stmtEnd
			}

		case tok.IsKeyword(lexer.KeywordFor) && i+1 < hi && p.tokens[i+1].IsSeparator(lexer.SeparatorGroupOpen):
			groupEnd := p.findSeparator(i+2, hi, lexer.SeparatorGroupClose, lexer.SeparatorGroupOpen, lexer.SeparatorGroupClose)
			if groupEnd == hi {
				p.errorAt(i, "incomplete 'for' header")
				return nodes
			}
			initEnd := p.findSeparator(i+2, groupEnd, lexer.SeparatorEndStatement, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
			if initEnd == groupEnd {
				p.errorAt(i, "'for' header requires two ';' separators")
				return nodes
			}
			condEnd := p.findSeparator(initEnd+1, groupEnd, lexer.SeparatorEndStatement, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
			if condEnd == groupEnd {
				p.errorAt(i, "'for' header requires two ';' separators")
				return nodes
			}

			decl := &ForDecl{
				Initialization: p.parseGroup(i+2, initEnd),
				Conditional:    p.parseGroup(initEnd+1, condEnd),
				Iteration:      p.parseGroup(condEnd+1, groupEnd),
			}
			body, last, ok := p.parseConditionalBody(groupEnd, hi)
			if !ok {
				return nodes
			}
			decl.Body = body
			nodes = append(nodes, Node{Kind: NodeFor, For: decl})
			i = last

		case tok.IsKeyword(lexer.KeywordWhile) && i+1 < hi && p.tokens[i+1].IsSeparator(lexer.SeparatorGroupOpen):
			condClose := p.findSeparator(i+2, hi, lexer.SeparatorGroupClose, lexer.SeparatorGroupOpen, lexer.SeparatorGroupClose)
			if condClose == hi {
				p.errorAt(i, "incomplete 'while' conditional")
				return nodes
			}
			cond := p.parseGroup(i+2, condClose)
			body, last, ok := p.parseConditionalBody(condClose, hi)
			if !ok {
				return nodes
			}
			nodes = append(nodes, Node{Kind: NodeWhile, While: &WhileDecl{Conditional: cond, Body: body}})
			i = last

		case tok.IsKeyword(lexer.KeywordFunction):
			tags := FunctionGlobal
			switch {
			case flagLocal && flagConstant:
				tags = FunctionConstant
			case flagConstant:
				tags = FunctionGlobalConstant
			case flagLocal:
				tags = FunctionBasic
			}
			offset := flagOffset()

			groupOpen := p.findSeparator(i+1, hi, lexer.SeparatorGroupOpen, lexer.SeparatorSpace, lexer.SeparatorSpace)
			if groupOpen == hi {
				p.errorAt(i, "function declaration requires a parameter list")
				return nodes
			}
			groupClose := p.findSeparator(groupOpen+1, hi, lexer.SeparatorGroupClose, lexer.SeparatorGroupOpen, lexer.SeparatorGroupClose)
			if groupClose == hi {
				p.errorAt(groupOpen, "unterminated parameter list")
				return nodes
			}

			// The identifier span deliberately includes the flag and
			// 'function' keywords: the space sentinel carries them to the
			// assignable resolver.
			identifier := p.parseGroup(i-offset, groupOpen)
			params := p.parseArguments(groupOpen+1, groupClose)

			// Method syntax: "function T.f(...)" receives 'this' first.
			if identifier.Operation == lexer.SeparatorDot {
				this := &Expression{Operation: lexer.SeparatorSpace, Operands: []Node{tokenNode(&thisToken)}}
				params = append([]*Expression{this}, params...)
			}

			body, last, ok := p.parseConditionalBody(groupClose, hi)
			if !ok {
				return nodes
			}
			nodes = append(nodes, Node{Kind: NodeFunction, Fn: &FunctionDecl{
				Identifier: identifier,
				Tags:       tags,
				Parameters: params,
				Body:       body,
			}})
			i = last

		case tok.IsKeyword(lexer.KeywordReturn):
			stmtEnd := p.findSeparator(i+1, hi, lexer.SeparatorEndStatement, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
			if stmtEnd == hi {
				p.errorAt(i, "missing ';' after 'return'")
				return nodes
			}
			nodes = append(nodes, Node{Kind: NodeReturn, Expr: p.parseGroup(i+1, stmtEnd)})
			i = stmtEnd

		case tok.IsKeyword(lexer.KeywordBreak):
			if i+1 < hi && p.tokens[i+1].IsSeparator(lexer.SeparatorEndStatement) {
				nodes = append(nodes, Node{Kind: NodeBreak})
				i++
			} else {
				p.errorAt(i, "'break' must be followed by ';'")
			}

		case tok.IsKeyword(lexer.KeywordContinue):
			if i+1 < hi && p.tokens[i+1].IsSeparator(lexer.SeparatorEndStatement) {
				nodes = append(nodes, Node{Kind: NodeContinue})
				i++
			} else {
				p.errorAt(i, "'continue' must be followed by ';'")
			}

		case tok.IsKeyword(lexer.KeywordLocal):
			flagLocal = true

		case tok.IsKeyword(lexer.KeywordConst):
			flagConstant = true

		// Reserved statements: recognized, never given semantics.
		case tok.IsKeyword(lexer.KeywordDo):
			nodes = append(nodes, Node{Kind: NodeDo})
		case tok.IsKeyword(lexer.KeywordSwitch):
			nodes = append(nodes, Node{Kind: NodeSwitch})
		case tok.IsKeyword(lexer.KeywordClass):
			nodes = append(nodes, Node{Kind: NodeClass})

		case tok.IsSeparator(lexer.SeparatorScopeOpen):
			blockEnd := p.findSeparator(i+1, hi, lexer.SeparatorScopeClose, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
			if blockEnd == hi {
				p.errorAt(i, "unterminated block")
				return nodes
			}
			nodes = append(nodes, Node{Kind: NodeBlock, Block: p.parseBlock(i+1, blockEnd)})
			i = blockEnd

		default:
			stmtEnd := p.findSeparator(i, hi, lexer.SeparatorEndStatement, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
			start := i - flagOffset()
			nodes = append(nodes, exprNode(p.parseGroup(start, stmtEnd)))
			i = stmtEnd
		}
	}

	return nodes
}
