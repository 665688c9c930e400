/*
File    : rebar-go/parser/node.go
*/
package parser

import (
	"strings"

	"github.com/Buckell/rebar-go/lexer"
)

// NodeKind discriminates the parse-node variants.
type NodeKind uint8

const (
	NodeEmpty NodeKind = iota
	NodeToken
	NodeExpression
	NodeBlock
	NodeGroup
	NodeSelector
	NodeRangedSelector
	NodeArgumentList
	NodeIf
	NodeElseIf
	NodeElse
	NodeFor
	NodeFunction
	NodeWhile
	NodeDo
	NodeSwitch
	NodeClass
	NodeReturn
	NodeImmediateTable
	NodeBreak
	NodeContinue
	NodeImmediateArray
)

// Node is a discriminated parse node. Kind selects which payload field is
// meaningful. Token nodes borrow tokens by pointer into the parse unit's lex
// unit, which must outlive every node derived from it.
//
// A tagged struct is used instead of an interface hierarchy because the AST
// builder repeatedly re-classifies flat spans of nodes while searching for
// the minimum-precedence separator.
type Node struct {
	Kind   NodeKind
	Token  *lexer.Token    // NodeToken
	Expr   *Expression     // NodeExpression, NodeGroup, NodeSelector, NodeReturn
	Block  []Node          // NodeBlock, NodeElse
	Elems  []Node          // NodeImmediateArray
	Ranged *RangedSelector // NodeRangedSelector
	Args   []*Expression   // NodeArgumentList
	If     *IfDecl         // NodeIf, NodeElseIf
	For    *ForDecl        // NodeFor
	Fn     *FunctionDecl   // NodeFunction
	While  *WhileDecl      // NodeWhile
	Table  *ImmediateTable // NodeImmediateTable
}

// Expression is an abstract syntax tree: an operation and its operand
// nodes. The sentinel operation SeparatorSpace denotes a pass-through
// wrapper holding a single operand, or the empty expression when the
// operand list is empty. Keyword-qualified assignables ("local x") are
// space wrappers whose leading operands are the keyword tokens.
type Expression struct {
	Operation lexer.Separator
	Operands  []Node
}

// Empty reports whether the expression is the nullary space sentinel.
func (e *Expression) Empty() bool {
	return e.Operation == lexer.SeparatorSpace && len(e.Operands) == 0
}

// Count returns the number of operands.
func (e *Expression) Count() int {
	return len(e.Operands)
}

// Operand returns the i-th operand.
func (e *Expression) Operand(i int) Node {
	return e.Operands[i]
}

// RangedSelector is a bracketed range subscript "[lower : upper]".
type RangedSelector struct {
	Lower *Expression
	Upper *Expression
}

// FunctionTags records the scope modifiers attached to a function
// declaration.
type FunctionTags uint8

const (
	// FunctionGlobal is a plain "function" declaration.
	FunctionGlobal FunctionTags = iota
	// FunctionBasic is a "local function" declaration.
	FunctionBasic
	// FunctionGlobalConstant is a "const function" declaration.
	FunctionGlobalConstant
	// FunctionConstant is a "local const function" declaration.
	FunctionConstant
)

// IfDecl is an "if" or "else if" declaration.
type IfDecl struct {
	Conditional *Expression
	Body        []Node
}

// ForDecl is a "for (init; cond; iter) body" declaration.
type ForDecl struct {
	Initialization *Expression
	Conditional    *Expression
	Iteration      *Expression
	Body           []Node
}

// WhileDecl is a "while (cond) body" declaration.
type WhileDecl struct {
	Conditional *Expression
	Body        []Node
}

// FunctionDecl is a function declaration. Identifier is the assignable the
// resulting function value binds to (a space wrapper carrying any leading
// local/const/function keyword tokens); Parameters are the declared
// parameter groups, with a synthetic "this" prepended for method syntax
// ("function T.f(...)").
type FunctionDecl struct {
	Identifier *Expression
	Tags       FunctionTags
	Parameters []*Expression
	Body       []Node
}

// TableEntry is one "key = value" entry of an immediate table. Key is
// either a bare identifier token (a string key) or an expression node (a
// computed "[expr]" key).
type TableEntry struct {
	Key   Node
	Value *Expression
}

// ImmediateTable is a "{ k = v, ... }" literal.
type ImmediateTable struct {
	Entries []TableEntry
}

// ParseUnit holds the source text, its lex unit, and the top-level block of
// parse nodes. Nodes borrow tokens from the lex unit, so a unit must be kept
// alive for the lifetime of any function compiled from it.
type ParseUnit struct {
	Source string
	Lex    *lexer.LexUnit
	Block  []Node
}

// tokenNode wraps a borrowed token.
func tokenNode(tok *lexer.Token) Node {
	return Node{Kind: NodeToken, Token: tok}
}

// exprNode wraps an expression.
func exprNode(expr *Expression) Node {
	return Node{Kind: NodeExpression, Expr: expr}
}

// String returns a compact diagnostic rendering of the node tree.
func (n Node) String() string {
	switch n.Kind {
	case NodeEmpty:
		return "EMPTY"
	case NodeToken:
		return n.Token.String()
	case NodeExpression:
		return "EXPRESSION { " + n.Expr.String() + " }"
	case NodeGroup:
		return "GROUP { " + n.Expr.String() + " }"
	case NodeSelector:
		return "SELECTOR { " + n.Expr.String() + " }"
	case NodeRangedSelector:
		return "RANGED SELECTOR { " + n.Ranged.Lower.String() + " : " + n.Ranged.Upper.String() + " }"
	case NodeBlock:
		return "BLOCK"
	case NodeArgumentList:
		return "ARGUMENT LIST"
	case NodeIf:
		return "IF"
	case NodeElseIf:
		return "ELSE IF"
	case NodeElse:
		return "ELSE"
	case NodeFor:
		return "FOR"
	case NodeFunction:
		return "FUNCTION"
	case NodeWhile:
		return "WHILE"
	case NodeDo:
		return "DO"
	case NodeSwitch:
		return "SWITCH"
	case NodeClass:
		return "CLASS"
	case NodeReturn:
		return "RETURN { " + n.Expr.String() + " }"
	case NodeImmediateTable:
		return "IMMEDIATE TABLE"
	case NodeBreak:
		return "BREAK"
	case NodeContinue:
		return "CONTINUE"
	case NodeImmediateArray:
		return "IMMEDIATE ARRAY"
	}
	return "UNKNOWN"
}

// String returns a compact diagnostic rendering of the expression.
func (e *Expression) String() string {
	parts := make([]string, 0, len(e.Operands)+1)
	parts = append(parts, e.Operation.SymbolText())
	for _, operand := range e.Operands {
		parts = append(parts, operand.String())
	}
	return strings.Join(parts, " ")
}
