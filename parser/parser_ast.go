/*
File    : rebar-go/parser/parser_ast.go
*/
package parser

import "github.com/Buckell/rebar-go/lexer"

// canFoldTrailing reports whether a node may fold into a call or index
// operation when it trails an expression.
func canFoldTrailing(n Node) bool {
	switch n.Kind {
	case NodeGroup, NodeSelector, NodeRangedSelector, NodeExpression, NodeArgumentList:
		return true
	}
	return false
}

// foldCallOrIndex builds the meta operation for a callee/target followed by
// a trailing group, argument list, selector, or ranged selector.
func foldCallOrIndex(lhs, trailing Node) *Expression {
	switch trailing.Kind {
	case NodeArgumentList:
		ast := &Expression{Operation: lexer.SeparatorOperationCall, Operands: []Node{lhs}}
		for _, arg := range trailing.Args {
			ast.Operands = append(ast.Operands, exprNode(arg))
		}
		return ast
	case NodeRangedSelector:
		return &Expression{Operation: lexer.SeparatorOperationIndex, Operands: []Node{
			lhs,
			exprNode(trailing.Ranged.Lower),
			exprNode(trailing.Ranged.Upper),
		}}
	case NodeSelector:
		return &Expression{Operation: lexer.SeparatorOperationIndex, Operands: []Node{lhs, trailing}}
	default: // NodeGroup, NodeExpression
		return &Expression{Operation: lexer.SeparatorOperationCall, Operands: []Node{lhs, trailing}}
	}
}

// spanOrParse wraps a node span: a single node passes through, a longer
// span recurses into parseAST.
func (p *Parser) spanOrParse(nodes []Node) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return exprNode(p.parseAST(nodes))
}

// parseAST builds an expression from a flat node sequence by operator
// precedence: the span splits at its minimum-precedence separator, with
// ties resolved to the rightmost occurrence so equal-precedence binaries
// associate left. Exponentiation and the ternary '?' are the exceptions:
// they keep the leftmost tie, making '^' and '?:' right-associative.
func (p *Parser) parseAST(nodes []Node) *Expression {
	if len(nodes) == 0 {
		return &Expression{Operation: lexer.SeparatorSpace}
	}
	if len(nodes) == 1 {
		return &Expression{Operation: lexer.SeparatorSpace, Operands: nodes}
	}

	if len(nodes) == 2 {
		if ast := p.parseTwoNodeSpecial(nodes[0], nodes[1]); ast != nil {
			return ast
		}
	}

	// Locate the minimum-precedence separator.
	minIdx := -1
	minPrec := 0
	for idx, n := range nodes {
		if n.Kind != NodeToken || !n.Token.IsAnySeparator() {
			continue
		}
		info := lexer.GetSeparatorInfo(n.Token.Sep)
		switch {
		case minIdx == -1 || info.Precedence < minPrec:
			minIdx = idx
			minPrec = info.Precedence
		case info.Precedence == minPrec:
			if n.Token.Sep == nodes[minIdx].Token.Sep && (n.Token.Sep == lexer.SeparatorExponent || n.Token.Sep == lexer.SeparatorTernary) {
				continue // right-associative: keep the leftmost tie
			}
			minIdx = idx
		}
	}

	if minIdx == -1 {
		// No separators: a space sentinel is valid only when every leading
		// node is a local/const/function keyword (scope-qualified
		// assignables such as "local x").
		for _, n := range nodes[:len(nodes)-1] {
			if n.Kind == NodeToken && n.Token.IsAnyKeyword() {
				switch n.Token.Kw {
				case lexer.KeywordLocal, lexer.KeywordConst, lexer.KeywordFunction:
				default:
					p.Errors = append(p.Errors, "[0:0] PARSE ERROR: invalid expression")
					return &Expression{Operation: lexer.SeparatorSpace}
				}
			}
		}
		return &Expression{Operation: lexer.SeparatorSpace, Operands: nodes}
	}

	sep := nodes[minIdx].Token.Sep
	info := lexer.GetSeparatorInfo(sep)
	first := nodes[0]
	last := nodes[len(nodes)-1]

	if info.SingleOperand {
		switch {
		case first.Kind == NodeToken && first.Token.IsSeparator(sep):
			operand := last
			if len(nodes) > 2 {
				operand = exprNode(p.parseAST(nodes[1:]))
			}
			op := sep
			switch sep {
			case lexer.SeparatorIncrement:
				op = lexer.SeparatorOperationPrefixIncrement
			case lexer.SeparatorDecrement:
				op = lexer.SeparatorOperationPrefixDecrement
			case lexer.SeparatorNewObject:
				// "new Callee(args)" parses its operand as a call; flatten
				// so the 'new' dispatch sees callee and arguments directly.
				if operand.Kind == NodeExpression && operand.Expr.Operation == lexer.SeparatorOperationCall {
					return &Expression{Operation: lexer.SeparatorNewObject, Operands: operand.Expr.Operands}
				}
			}
			return &Expression{Operation: op, Operands: []Node{operand}}

		case last.Kind == NodeToken && last.Token.IsSeparator(sep):
			operand := first
			if len(nodes) > 2 {
				operand = exprNode(p.parseAST(nodes[:len(nodes)-1]))
			}
			op := sep
			switch sep {
			case lexer.SeparatorIncrement:
				op = lexer.SeparatorOperationPostfixIncrement
			case lexer.SeparatorDecrement:
				op = lexer.SeparatorOperationPostfixDecrement
			}
			return &Expression{Operation: op, Operands: []Node{operand}}
		}

		p.Errors = append(p.Errors, "[0:0] PARSE ERROR: misplaced unary operator")
		return &Expression{Operation: lexer.SeparatorSpace}
	}

	// A trailing group/selector at grouping precedence folds into a call or
	// index on everything before it.
	if canFoldTrailing(last) && minPrec >= lexer.GetSeparatorInfo(lexer.SeparatorGroupOpen).Precedence {
		beforeLast := nodes[len(nodes)-2]
		if !(beforeLast.Kind == NodeToken && beforeLast.Token.IsAnySeparator()) {
			lhs := p.spanOrParse(nodes[:len(nodes)-1])
			return foldCallOrIndex(lhs, last)
		}
	}

	lhsNodes := nodes[:minIdx]
	rhsNodes := nodes[minIdx+1:]
	lhs := p.spanOrParse(lhsNodes)

	if sep == lexer.SeparatorTernary {
		// Split the right side at the ':' matching this '?', balancing
		// nested ternaries.
		seek := len(rhsNodes)
		depth := 0
		for idx, n := range rhsNodes {
			if n.Kind != NodeToken || !n.Token.IsAnySeparator() {
				continue
			}
			switch n.Token.Sep {
			case lexer.SeparatorTernary:
				depth++
			case lexer.SeparatorSeek:
				if depth == 0 {
					seek = idx
				} else {
					depth--
				}
			}
			if seek != len(rhsNodes) {
				break
			}
		}
		if seek == len(rhsNodes) {
			p.Errors = append(p.Errors, "[0:0] PARSE ERROR: ternary '?' without matching ':'")
			return &Expression{Operation: lexer.SeparatorSpace}
		}

		thenNode := p.spanOrParse(rhsNodes[:seek])
		elseNode := p.spanOrParse(rhsNodes[seek+1:])
		return &Expression{Operation: lexer.SeparatorTernary, Operands: []Node{lhs, thenNode, elseNode}}
	}

	rhs := p.spanOrParse(rhsNodes)
	return &Expression{Operation: sep, Operands: []Node{lhs, rhs}}
}

// parseTwoNodeSpecial handles the two-node shapes: leading prefix
// separators, trailing postfix increment/decrement, and trailing
// group/selector folds. Returns nil when no special applies.
func (p *Parser) parseTwoNodeSpecial(first, second Node) *Expression {
	if first.Kind == NodeToken && first.Token.IsAnySeparator() {
		switch first.Token.Sep {
		case lexer.SeparatorIncrement:
			return &Expression{Operation: lexer.SeparatorOperationPrefixIncrement, Operands: []Node{second}}
		case lexer.SeparatorDecrement:
			return &Expression{Operation: lexer.SeparatorOperationPrefixDecrement, Operands: []Node{second}}
		case lexer.SeparatorLogicalNot:
			return &Expression{Operation: lexer.SeparatorLogicalNot, Operands: []Node{second}}
		case lexer.SeparatorBitwiseNot:
			return &Expression{Operation: lexer.SeparatorBitwiseNot, Operands: []Node{second}}
		case lexer.SeparatorLength:
			return &Expression{Operation: lexer.SeparatorLength, Operands: []Node{second}}
		case lexer.SeparatorNewObject:
			return &Expression{Operation: lexer.SeparatorNewObject, Operands: []Node{second}}
		}
	}

	if second.Kind == NodeToken && second.Token.IsAnySeparator() {
		switch second.Token.Sep {
		case lexer.SeparatorIncrement:
			return &Expression{Operation: lexer.SeparatorOperationPostfixIncrement, Operands: []Node{first}}
		case lexer.SeparatorDecrement:
			return &Expression{Operation: lexer.SeparatorOperationPostfixDecrement, Operands: []Node{first}}
		}
	}

	if canFoldTrailing(second) && !(first.Kind == NodeToken && first.Token.IsAnySeparator()) {
		return foldCallOrIndex(first, second)
	}

	return nil
}
