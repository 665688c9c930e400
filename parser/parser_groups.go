/*
File    : rebar-go/parser/parser_groups.go
*/
package parser

import "github.com/Buckell/rebar-go/lexer"

// parseGroup captures the bracketed structure of tokens[lo:hi] into nodes
// and builds the expression tree from the resulting flat sequence.
//
//   - "( ... )" with a top-level ',' is an argument list; otherwise a group.
//   - "[ ... ]" with a top-level ',' is an immediate array; with a top-level
//     ':' a ranged selector; otherwise a selector.
//   - "{ ... }" is an immediate table literal.
//   - Everything else becomes a leaf token node.
func (p *Parser) parseGroup(lo, hi int) *Expression {
	var nodes []Node

	for i := lo; i < hi; i++ {
		tok := &p.tokens[i]

		switch {
		case tok.IsSeparator(lexer.SeparatorGroupOpen):
			end := p.findSeparator(i+1, hi, lexer.SeparatorGroupClose, lexer.SeparatorGroupOpen, lexer.SeparatorGroupClose)
			if end == hi {
				p.errorAt(i, "unbalanced '('")
				return p.parseAST(nodes)
			}
			if p.findBalanced(i+1, end, lexer.SeparatorList) != end {
				nodes = append(nodes, Node{Kind: NodeArgumentList, Args: p.parseArguments(i+1, end)})
			} else {
				nodes = append(nodes, Node{Kind: NodeGroup, Expr: p.parseGroup(i+1, end)})
			}
			i = end

		case tok.IsSeparator(lexer.SeparatorSelectorOpen):
			end := p.findSeparator(i+1, hi, lexer.SeparatorSelectorClose, lexer.SeparatorSelectorOpen, lexer.SeparatorSelectorClose)
			if end == hi {
				p.errorAt(i, "unbalanced '['")
				return p.parseAST(nodes)
			}

			switch {
			case p.findBalanced(i+1, end, lexer.SeparatorList) != end:
				nodes = append(nodes, Node{Kind: NodeImmediateArray, Elems: p.parseArrayElements(i+1, end)})
			case p.findSeparator(i+1, end, lexer.SeparatorSeek, lexer.SeparatorSelectorOpen, lexer.SeparatorSelectorClose) != end:
				seek := p.findSeparator(i+1, end, lexer.SeparatorSeek, lexer.SeparatorSelectorOpen, lexer.SeparatorSelectorClose)
				nodes = append(nodes, Node{Kind: NodeRangedSelector, Ranged: &RangedSelector{
					Lower: p.parseGroup(i+1, seek),
					Upper: p.parseGroup(seek+1, end),
				}})
			default:
				nodes = append(nodes, Node{Kind: NodeSelector, Expr: p.parseGroup(i+1, end)})
			}
			i = end

		case tok.IsSeparator(lexer.SeparatorScopeOpen):
			end := p.findSeparator(i+1, hi, lexer.SeparatorScopeClose, lexer.SeparatorScopeOpen, lexer.SeparatorScopeClose)
			if end == hi {
				p.errorAt(i, "unbalanced '{'")
				return p.parseAST(nodes)
			}
			nodes = append(nodes, Node{Kind: NodeImmediateTable, Table: p.parseImmediateTable(i+1, end)})
			i = end

		default:
			nodes = append(nodes, tokenNode(tok))
		}
	}

	return p.parseAST(nodes)
}

// parseArguments splits tokens[lo:hi] on top-level commas and parses each
// sub-range as its own group.
func (p *Parser) parseArguments(lo, hi int) []*Expression {
	if lo >= hi {
		return nil
	}

	var groups []*Expression
	last := lo
	for {
		next := p.findBalanced(last, hi, lexer.SeparatorList)
		groups = append(groups, p.parseGroup(last, next))
		if next == hi {
			break
		}
		last = next + 1
	}
	return groups
}

// parseArrayElements splits an immediate-array interior on top-level commas.
// Single-token entries stay leaf token nodes; larger entries are parsed as
// groups.
func (p *Parser) parseArrayElements(lo, hi int) []Node {
	var elems []Node

	last := lo
	for last < hi {
		entryEnd := p.findBalanced(last, hi, lexer.SeparatorList)
		if entryEnd > last {
			if entryEnd-last == 1 {
				elems = append(elems, tokenNode(&p.tokens[last]))
			} else {
				elems = append(elems, exprNode(p.parseGroup(last, entryEnd)))
			}
		}
		last = entryEnd + 1
	}
	return elems
}

// parseImmediateTable parses the interior of a "{ k = v, ... }" literal.
// A key is a bare identifier (a string key) or a bracketed "[expr]"
// (a computed key); the value is a group.
func (p *Parser) parseImmediateTable(lo, hi int) *ImmediateTable {
	tbl := &ImmediateTable{}

	last := lo
	for last < hi {
		entryEnd := p.findBalanced(last, hi, lexer.SeparatorList)
		if entryEnd > last {
			assign := p.findNextToken(last, entryEnd,
				func(tok lexer.Token) bool { return tok.IsSeparator(lexer.SeparatorAssignment) },
				classifyAllBrackets)

			switch {
			case assign == entryEnd:
				p.errorAt(last, "immediate table entry requires '='")

			case assign == last+1 && p.tokens[last].IsIdentifier():
				tbl.Entries = append(tbl.Entries, TableEntry{
					Key:   tokenNode(&p.tokens[last]),
					Value: p.parseGroup(assign+1, entryEnd),
				})

			case p.tokens[last].IsSeparator(lexer.SeparatorSelectorOpen):
				keyEnd := p.findSeparator(last+1, assign, lexer.SeparatorSelectorClose, lexer.SeparatorSelectorOpen, lexer.SeparatorSelectorClose)
				if keyEnd == assign {
					p.errorAt(last, "malformed computed key in immediate table")
				} else {
					tbl.Entries = append(tbl.Entries, TableEntry{
						Key:   exprNode(p.parseGroup(last+1, keyEnd)),
						Value: p.parseGroup(assign+1, entryEnd),
					})
				}

			default:
				p.errorAt(last, "invalid immediate table key")
			}
		}
		last = entryEnd + 1
	}
	return tbl
}
