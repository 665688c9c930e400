/*
File    : rebar-go/parser/find.go
*/
package parser

import "github.com/Buckell/rebar-go/lexer"

// findExclude classifies a token for bracket-balanced scanning.
type findExclude uint8

const (
	findExcludeNone findExclude = iota
	findExcludeOpen
	findExcludeClose
)

// findNextToken scans p.tokens[lo:hi] for the first token at nesting depth
// zero satisfying match, where classify maintains the nesting counter.
// Returns hi when no match exists at depth zero.
func (p *Parser) findNextToken(lo, hi int, match func(lexer.Token) bool, classify func(lexer.Token) findExclude) int {
	depth := 0
	for i := lo; i < hi; i++ {
		tok := p.tokens[i]
		if depth == 0 && match(tok) {
			return i
		}
		switch classify(tok) {
		case findExcludeOpen:
			depth++
		case findExcludeClose:
			depth--
		}
	}
	return hi
}

// findSeparator finds the next occurrence of sep at depth zero, balancing a
// single open/close separator pair.
func (p *Parser) findSeparator(lo, hi int, sep, open, close lexer.Separator) int {
	return p.findNextToken(lo, hi,
		func(tok lexer.Token) bool { return tok.IsSeparator(sep) },
		func(tok lexer.Token) findExclude {
			switch {
			case tok.IsSeparator(open):
				return findExcludeOpen
			case tok.IsSeparator(close):
				return findExcludeClose
			default:
				return findExcludeNone
			}
		})
}

// classifyAllBrackets balances parentheses, selectors, and scopes together.
func classifyAllBrackets(tok lexer.Token) findExclude {
	switch {
	case tok.IsSeparator(lexer.SeparatorGroupOpen),
		tok.IsSeparator(lexer.SeparatorSelectorOpen),
		tok.IsSeparator(lexer.SeparatorScopeOpen):
		return findExcludeOpen
	case tok.IsSeparator(lexer.SeparatorGroupClose),
		tok.IsSeparator(lexer.SeparatorSelectorClose),
		tok.IsSeparator(lexer.SeparatorScopeClose):
		return findExcludeClose
	default:
		return findExcludeNone
	}
}

// findBalanced finds the next occurrence of sep at depth zero, balancing
// every bracket kind at once.
func (p *Parser) findBalanced(lo, hi int, sep lexer.Separator) int {
	return p.findNextToken(lo, hi,
		func(tok lexer.Token) bool { return tok.IsSeparator(sep) },
		classifyAllBrackets)
}
