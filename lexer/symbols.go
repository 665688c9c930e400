/*
File    : rebar-go/lexer/symbols.go
*/
package lexer

// Separator identifies a punctuation or operator token kind. The final six
// entries are "meta separators": they never appear in a lex unit and are
// synthesized by the parser when it folds calls, selectors, and prefix or
// postfix increment/decrement into expressions.
type Separator uint8

const (
	SeparatorSpace Separator = iota
	SeparatorAssignment
	SeparatorAddition
	SeparatorAdditionAssignment
	SeparatorMultiplication
	SeparatorMultiplicationAssignment
	SeparatorDivision
	SeparatorDivisionAssignment
	SeparatorSubtraction
	SeparatorSubtractionAssignment
	SeparatorIncrement
	SeparatorDecrement
	SeparatorGroupOpen
	SeparatorGroupClose
	SeparatorSelectorOpen
	SeparatorSelectorClose
	SeparatorScopeOpen
	SeparatorScopeClose
	SeparatorEquality
	SeparatorInverseEquality
	SeparatorGreater
	SeparatorLesser
	SeparatorGreaterEquality
	SeparatorLesserEquality
	SeparatorLogicalOr
	SeparatorLogicalAnd
	SeparatorLogicalNot
	SeparatorBitwiseOr
	SeparatorBitwiseOrAssignment
	SeparatorBitwiseXor
	SeparatorBitwiseXorAssignment
	SeparatorBitwiseAnd
	SeparatorBitwiseAndAssignment
	SeparatorBitwiseNot
	SeparatorShiftRight
	SeparatorShiftRightAssignment
	SeparatorShiftLeft
	SeparatorShiftLeftAssignment
	SeparatorExponent
	SeparatorExponentAssignment
	SeparatorModulus
	SeparatorModulusAssignment
	SeparatorSeek
	SeparatorTernary
	SeparatorDirect
	SeparatorDot
	SeparatorList
	SeparatorLength
	SeparatorEllipsis
	SeparatorEndStatement
	SeparatorNewObject
	SeparatorNamespaceIndex

	// Meta separators, parser-synthesized.
	SeparatorOperationPrefixIncrement
	SeparatorOperationPostfixIncrement
	SeparatorOperationPrefixDecrement
	SeparatorOperationPostfixDecrement
	SeparatorOperationIndex
	SeparatorOperationCall
)

// SeparatorInfo carries the parsing attributes of a separator: its binding
// precedence (0-10, higher binds tighter) and whether it takes a single
// operand (prefix/postfix forms).
type SeparatorInfo struct {
	Precedence    int
	SingleOperand bool
}

// separatorInfos is indexed by Separator. Compound assignments all sit at
// precedence 2 alongside the ternary operator; plain assignment binds looser
// at 1. Note that '^' is exponentiation (precedence 8) and the bitwise XOR
// symbol is '>|' at precedence 7.
var separatorInfos = [...]SeparatorInfo{
	SeparatorSpace:                     {0, false},
	SeparatorAssignment:                {1, false},
	SeparatorAddition:                  {5, false},
	SeparatorAdditionAssignment:        {2, false},
	SeparatorMultiplication:            {6, false},
	SeparatorMultiplicationAssignment:  {2, false},
	SeparatorDivision:                  {6, false},
	SeparatorDivisionAssignment:        {2, false},
	SeparatorSubtraction:               {5, false},
	SeparatorSubtractionAssignment:     {2, false},
	SeparatorIncrement:                 {9, true},
	SeparatorDecrement:                 {9, true},
	SeparatorGroupOpen:                 {10, false},
	SeparatorGroupClose:                {10, false},
	SeparatorSelectorOpen:              {10, false},
	SeparatorSelectorClose:             {10, false},
	SeparatorScopeOpen:                 {0, false},
	SeparatorScopeClose:                {0, false},
	SeparatorEquality:                  {4, false},
	SeparatorInverseEquality:           {4, false},
	SeparatorGreater:                   {4, false},
	SeparatorLesser:                    {4, false},
	SeparatorGreaterEquality:           {4, false},
	SeparatorLesserEquality:            {4, false},
	SeparatorLogicalOr:                 {3, false},
	SeparatorLogicalAnd:                {3, false},
	SeparatorLogicalNot:                {9, true},
	SeparatorBitwiseOr:                 {7, false},
	SeparatorBitwiseOrAssignment:       {2, false},
	SeparatorBitwiseXor:                {7, false},
	SeparatorBitwiseXorAssignment:      {2, false},
	SeparatorBitwiseAnd:                {7, false},
	SeparatorBitwiseAndAssignment:      {2, false},
	SeparatorBitwiseNot:                {9, true},
	SeparatorShiftRight:                {7, false},
	SeparatorShiftRightAssignment:      {2, false},
	SeparatorShiftLeft:                 {7, false},
	SeparatorShiftLeftAssignment:       {2, false},
	SeparatorExponent:                  {8, false},
	SeparatorExponentAssignment:        {2, false},
	SeparatorModulus:                   {6, false},
	SeparatorModulusAssignment:         {2, false},
	SeparatorSeek:                      {10, false},
	SeparatorTernary:                   {2, false},
	SeparatorDirect:                    {10, false},
	SeparatorDot:                       {10, false},
	SeparatorList:                      {0, false},
	SeparatorLength:                    {9, true},
	SeparatorEllipsis:                  {0, false},
	SeparatorEndStatement:              {0, false},
	SeparatorNewObject:                 {9, true},
	SeparatorNamespaceIndex:            {10, false},
	SeparatorOperationPrefixIncrement:  {9, true},
	SeparatorOperationPostfixIncrement: {9, true},
	SeparatorOperationPrefixDecrement:  {9, true},
	SeparatorOperationPostfixDecrement: {9, true},
	SeparatorOperationIndex:            {10, false},
	SeparatorOperationCall:             {10, false},
}

// GetSeparatorInfo returns the precedence/operand attributes of a separator.
func GetSeparatorInfo(sep Separator) SeparatorInfo {
	return separatorInfos[sep]
}

// separatorTexts holds the canonical source spelling of each separator.
// Meta separators have descriptive placeholders since they never appear
// in source text.
var separatorTexts = [...]string{
	SeparatorSpace:                     " ",
	SeparatorAssignment:                "=",
	SeparatorAddition:                  "+",
	SeparatorAdditionAssignment:        "+=",
	SeparatorMultiplication:            "*",
	SeparatorMultiplicationAssignment:  "*=",
	SeparatorDivision:                  "/",
	SeparatorDivisionAssignment:        "/=",
	SeparatorSubtraction:               "-",
	SeparatorSubtractionAssignment:     "-=",
	SeparatorIncrement:                 "++",
	SeparatorDecrement:                 "--",
	SeparatorGroupOpen:                 "(",
	SeparatorGroupClose:                ")",
	SeparatorSelectorOpen:              "[",
	SeparatorSelectorClose:             "]",
	SeparatorScopeOpen:                 "{",
	SeparatorScopeClose:                "}",
	SeparatorEquality:                  "==",
	SeparatorInverseEquality:           "!=",
	SeparatorGreater:                   ">",
	SeparatorLesser:                    "<",
	SeparatorGreaterEquality:           ">=",
	SeparatorLesserEquality:            "<=",
	SeparatorLogicalOr:                 "||",
	SeparatorLogicalAnd:                "&&",
	SeparatorLogicalNot:                "!",
	SeparatorBitwiseOr:                 "|",
	SeparatorBitwiseOrAssignment:       "|=",
	SeparatorBitwiseXor:                ">|",
	SeparatorBitwiseXorAssignment:      ">|=",
	SeparatorBitwiseAnd:                "&",
	SeparatorBitwiseAndAssignment:      "&=",
	SeparatorBitwiseNot:                "~",
	SeparatorShiftRight:                ">>",
	SeparatorShiftRightAssignment:      ">>=",
	SeparatorShiftLeft:                 "<<",
	SeparatorShiftLeftAssignment:       "<<=",
	SeparatorExponent:                  "^",
	SeparatorExponentAssignment:        "^=",
	SeparatorModulus:                   "%",
	SeparatorModulusAssignment:         "%=",
	SeparatorSeek:                      ":",
	SeparatorTernary:                   "?",
	SeparatorDirect:                    "->",
	SeparatorDot:                       ".",
	SeparatorList:                      ",",
	SeparatorLength:                    "#",
	SeparatorEllipsis:                  "...",
	SeparatorEndStatement:              ";",
	SeparatorNewObject:                 "new",
	SeparatorNamespaceIndex:            "::",
	SeparatorOperationPrefixIncrement:  "<prefix ++>",
	SeparatorOperationPostfixIncrement: "<postfix ++>",
	SeparatorOperationPrefixDecrement:  "<prefix -->",
	SeparatorOperationPostfixDecrement: "<postfix -->",
	SeparatorOperationIndex:            "<index>",
	SeparatorOperationCall:             "<call>",
}

// SymbolText returns the source spelling of the separator.
func (sep Separator) SymbolText() string {
	return separatorTexts[sep]
}

// Keyword identifies a reserved word.
type Keyword uint8

const (
	KeywordLocal Keyword = iota
	KeywordFor
	KeywordFunction
	KeywordIf
	KeywordElse
	KeywordTypeOf
	KeywordWhile
	KeywordDo
	KeywordConst
	KeywordSwitch
	KeywordCase
	KeywordDefault
	KeywordBreak
	KeywordContinue
	KeywordClass
	KeywordReturn
	KeywordTrue
	KeywordFalse
	KeywordNull
)

var keywordTexts = [...]string{
	KeywordLocal:    "local",
	KeywordFor:      "for",
	KeywordFunction: "function",
	KeywordIf:       "if",
	KeywordElse:     "else",
	KeywordTypeOf:   "typeof",
	KeywordWhile:    "while",
	KeywordDo:       "do",
	KeywordConst:    "const",
	KeywordSwitch:   "switch",
	KeywordCase:     "case",
	KeywordDefault:  "default",
	KeywordBreak:    "break",
	KeywordContinue: "continue",
	KeywordClass:    "class",
	KeywordReturn:   "return",
	KeywordTrue:     "true",
	KeywordFalse:    "false",
	KeywordNull:     "null",
}

// Text returns the source spelling of the keyword.
func (kw Keyword) Text() string {
	return keywordTexts[kw]
}

// SymbolMapping is a symbol table entry. Interrupter symbols (punctuation)
// may terminate an identifier mid-run; non-interrupters ('or', 'and', 'not',
// 'new', and all keywords) are only recognized on word boundaries. While an
// identifier is being accumulated, a non-interrupter match is absorbed into
// the identifier instead of being emitted.
type SymbolMapping struct {
	Interrupter bool
	Replaced    Token
}

// SymbolTable maps source lexemes (punctuation and reserved words) to the
// tokens they produce, and supports longest-prefix matching against the
// remaining input during lexing.
type SymbolTable struct {
	entries map[string]SymbolMapping
}

// Lookup retrieves the mapping for an exact lexeme.
func (st *SymbolTable) Lookup(text string) (SymbolMapping, bool) {
	m, ok := st.entries[text]
	return m, ok
}

// Set installs or replaces a mapping. Custom hosts can extend the default
// table before handing it to a lexer.
func (st *SymbolTable) Set(text string, mapping SymbolMapping) {
	st.entries[text] = mapping
}

// MatchPrefix returns the entry with the longest key that is a prefix of
// input. By construction no two keys of equal length can both match, so the
// longest match is unique.
func (st *SymbolTable) MatchPrefix(input string) (string, SymbolMapping, bool) {
	var (
		bestText string
		bestMap  SymbolMapping
		found    bool
	)
	for text, mapping := range st.entries {
		if len(text) > len(bestText) && len(text) <= len(input) && input[:len(text)] == text {
			bestText = text
			bestMap = mapping
			found = true
		}
	}
	return bestText, bestMap, found
}

// NewDefaultSymbolTable builds the default symbol table: whitespace (mapped
// to the space separator and filtered after lexing), all operator
// punctuation, the word-form operators, and the reserved words.
func NewDefaultSymbolTable() *SymbolTable {
	st := &SymbolTable{entries: make(map[string]SymbolMapping, 96)}

	sep := func(text string, interrupter bool, s Separator) {
		st.entries[text] = SymbolMapping{Interrupter: interrupter, Replaced: SeparatorToken(s)}
	}
	kw := func(text string, k Keyword) {
		st.entries[text] = SymbolMapping{Interrupter: false, Replaced: KeywordToken(k)}
	}

	sep(" ", true, SeparatorSpace)
	sep("\t", true, SeparatorSpace)
	sep("\n", true, SeparatorSpace)
	sep("\r\n", true, SeparatorSpace)
	sep("=", true, SeparatorAssignment)
	sep("*", true, SeparatorMultiplication)
	sep("*=", true, SeparatorMultiplicationAssignment)
	sep("/", true, SeparatorDivision)
	sep("/=", true, SeparatorDivisionAssignment)
	sep("+", true, SeparatorAddition)
	sep("+=", true, SeparatorAdditionAssignment)
	sep("-", true, SeparatorSubtraction)
	sep("-=", true, SeparatorSubtractionAssignment)
	sep("++", true, SeparatorIncrement)
	sep("--", true, SeparatorDecrement)
	sep("(", true, SeparatorGroupOpen)
	sep(")", true, SeparatorGroupClose)
	sep("[", true, SeparatorSelectorOpen)
	sep("]", true, SeparatorSelectorClose)
	sep("{", true, SeparatorScopeOpen)
	sep("}", true, SeparatorScopeClose)
	sep("==", true, SeparatorEquality)
	sep("!=", true, SeparatorInverseEquality)
	sep(">", true, SeparatorGreater)
	sep("<", true, SeparatorLesser)
	sep(">=", true, SeparatorGreaterEquality)
	sep("<=", true, SeparatorLesserEquality)
	sep("||", true, SeparatorLogicalOr)
	sep("or", false, SeparatorLogicalOr)
	sep("&&", true, SeparatorLogicalAnd)
	sep("and", false, SeparatorLogicalAnd)
	sep("!", true, SeparatorLogicalNot)
	sep("not", false, SeparatorLogicalNot)
	sep("|", true, SeparatorBitwiseOr)
	sep("|=", true, SeparatorBitwiseOrAssignment)
	sep(">|", true, SeparatorBitwiseXor)
	sep(">|=", true, SeparatorBitwiseXorAssignment)
	sep("&", true, SeparatorBitwiseAnd)
	sep("&=", true, SeparatorBitwiseAndAssignment)
	sep("~", true, SeparatorBitwiseNot)
	sep(">>", true, SeparatorShiftRight)
	sep(">>=", true, SeparatorShiftRightAssignment)
	sep("<<", true, SeparatorShiftLeft)
	sep("<<=", true, SeparatorShiftLeftAssignment)
	sep("^", true, SeparatorExponent)
	sep("^=", true, SeparatorExponentAssignment)
	sep("%", true, SeparatorModulus)
	sep("%=", true, SeparatorModulusAssignment)
	sep(":", true, SeparatorSeek)
	sep("?", true, SeparatorTernary)
	sep(".", true, SeparatorDot)
	sep(",", true, SeparatorList)
	sep("->", true, SeparatorDirect)
	sep("#", true, SeparatorLength)
	sep("...", true, SeparatorEllipsis)
	sep(";", true, SeparatorEndStatement)
	sep("new", false, SeparatorNewObject)
	sep("::", true, SeparatorNamespaceIndex)

	kw("local", KeywordLocal)
	kw("for", KeywordFor)
	kw("function", KeywordFunction)
	kw("if", KeywordIf)
	kw("else", KeywordElse)
	kw("typeof", KeywordTypeOf)
	kw("while", KeywordWhile)
	kw("do", KeywordDo)
	kw("const", KeywordConst)
	kw("switch", KeywordSwitch)
	kw("case", KeywordCase)
	kw("default", KeywordDefault)
	kw("break", KeywordBreak)
	kw("continue", KeywordContinue)
	kw("class", KeywordClass)
	kw("return", KeywordReturn)
	kw("true", KeywordTrue)
	kw("false", KeywordFalse)
	kw("null", KeywordNull)

	return st
}
