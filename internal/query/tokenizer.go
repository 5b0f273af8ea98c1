package query

import (
	"unicode"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenWhitespace
	TokenIdentifier
	TokenString
	TokenNumber
	TokenOperator
	TokenLogical
	TokenNot
	TokenArithmetic
	TokenLParen
	TokenRParen
	TokenComma
	TokenPlaceholder
	TokenUnknown
)

var tokenTypeNames = map[TokenType]string{
	TokenEOF:         "EOF",
	TokenWhitespace:  "Whitespace",
	TokenIdentifier:  "Identifier",
	TokenString:      "String",
	TokenNumber:      "Number",
	TokenOperator:    "Operator",
	TokenLogical:     "Logical",
	TokenNot:         "Not",
	TokenArithmetic:  "Arithmetic",
	TokenLParen:      "LParen",
	TokenRParen:      "RParen",
	TokenComma:       "Comma",
	TokenPlaceholder: "Placeholder",
	TokenUnknown:     "Unknown",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "Invalid"
}

// Token represents a single token of a filter template.
// Value is always the exact source text so that a token stream can be
// reassembled into the original template byte for byte.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Tokenizer splits a filter template written in standard notation
// (==, &&, +, ...) into a flat token stream. It never fails: characters it
// does not understand become TokenUnknown and are carried through.
type Tokenizer struct {
	input string
	pos   int
	ch    byte
	// prev is the last non-whitespace token type, used to tell a unary minus
	// from the subtraction operator.
	prev TokenType
	// prevValue is the text of that token.
	prevValue string
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{
		input: input,
		pos:   0,
		prev:  TokenEOF,
	}
	if len(input) > 0 {
		t.ch = input[0]
	}
	return t
}

// advance moves to the next character
func (t *Tokenizer) advance() {
	t.pos++
	if t.pos >= len(t.input) {
		t.ch = 0
	} else {
		t.ch = t.input[t.pos]
	}
}

// peek looks ahead without advancing
func (t *Tokenizer) peek() byte {
	if t.pos+1 >= len(t.input) {
		return 0
	}
	return t.input[t.pos+1]
}

func (t *Tokenizer) atEOF() bool {
	return t.pos >= len(t.input)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isIdentStart accepts ASCII letters, underscore and any byte of a multi-byte
// UTF-8 sequence so that non-ASCII field names stay in one token.
func isIdentStart(ch byte) bool {
	return ch >= 0x80 || ch == '_' || unicode.IsLetter(rune(ch))
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '.'
}

// readWhitespace reads a run of whitespace
func (t *Tokenizer) readWhitespace() string {
	start := t.pos
	for !t.atEOF() && isWhitespace(t.ch) {
		t.advance()
	}
	return t.input[start:t.pos]
}

// readString reads a quoted string including its quotes. Both backslash
// escapes and doubled quotes are kept inside the literal. An unterminated
// string runs to the end of the input.
func (t *Tokenizer) readString() string {
	start := t.pos
	quote := t.ch
	t.advance() // skip opening quote

	for !t.atEOF() {
		switch {
		case t.ch == '\\' && t.peek() != 0:
			t.advance()
			t.advance()
		case t.ch == quote && t.peek() == quote:
			t.advance()
			t.advance()
		case t.ch == quote:
			t.advance() // skip closing quote
			return t.input[start:t.pos]
		default:
			t.advance()
		}
	}

	return t.input[start:t.pos]
}

// readNumber reads a number
func (t *Tokenizer) readNumber() string {
	start := t.pos

	// Handle negative numbers
	if t.ch == '-' {
		t.advance()
	}

	// Read integer part
	for isDigit(t.ch) {
		t.advance()
	}

	// Read decimal part
	if t.ch == '.' && isDigit(t.peek()) {
		t.advance()
		for isDigit(t.ch) {
			t.advance()
		}
	}

	// Read exponent part
	if t.ch == 'e' || t.ch == 'E' {
		next := t.peek()
		if isDigit(next) || next == '+' || next == '-' {
			t.advance()
			if t.ch == '+' || t.ch == '-' {
				t.advance()
			}
			for isDigit(t.ch) {
				t.advance()
			}
		}
	}

	// Type suffixes such as 10M, 1.5d or 12L
	for isIdentStart(t.ch) {
		t.advance()
	}

	return t.input[start:t.pos]
}

// readIdentifier reads an identifier, a dotted name (cf.String) or a
// property path (Order/Customer/Id). A '/' only joins segments when it is
// glued to both of them, so "A / B" is still a division.
func (t *Tokenizer) readIdentifier() string {
	start := t.pos

	for !t.atEOF() {
		if isIdentPart(t.ch) {
			t.advance()
			continue
		}
		if t.ch == '/' && isIdentStart(t.peek()) {
			t.advance()
			continue
		}
		break
	}

	return t.input[start:t.pos]
}

// readPlaceholder reads $1, $v1 or $f1. It returns false when the dollar sign
// does not start a placeholder, leaving the position untouched.
func (t *Tokenizer) readPlaceholder() (string, bool) {
	start := t.pos
	i := start + 1
	if i < len(t.input) && (t.input[i] == 'v' || t.input[i] == 'f') {
		i++
	}
	digits := i
	for i < len(t.input) && isDigit(t.input[i]) {
		i++
	}
	if i == digits {
		return "", false
	}
	if i < len(t.input) && isIdentPart(t.input[i]) {
		// $1abc is not a placeholder
		return "", false
	}
	for t.pos < i {
		t.advance()
	}
	return t.input[start:t.pos], true
}

// operandEnded reports whether the previous significant token closes an
// operand, in which case a following '-' is a binary operator.
func (t *Tokenizer) operandEnded() bool {
	switch t.prev {
	case TokenIdentifier:
		return !odataOperatorWords[t.prevValue]
	case TokenString, TokenNumber, TokenRParen, TokenPlaceholder:
		return true
	}
	return false
}

// odataOperatorWords are identifiers that are OData operators, after which a
// '-' starts a negative number.
var odataOperatorWords = map[string]bool{
	"eq": true, "ne": true, "gt": true, "ge": true, "lt": true, "le": true,
	"and": true, "or": true, "not": true,
	"add": true, "sub": true, "mul": true, "div": true, "mod": true,
}

// NextToken returns the next token
func (t *Tokenizer) NextToken() Token {
	if t.atEOF() {
		return Token{Type: TokenEOF, Pos: t.pos}
	}

	pos := t.pos

	if isWhitespace(t.ch) {
		return Token{Type: TokenWhitespace, Value: t.readWhitespace(), Pos: pos}
	}

	token := t.tokenizeString(pos)
	if token == nil {
		token = t.tokenizeNumber(pos)
	}
	if token == nil {
		token = t.tokenizePlaceholder(pos)
	}
	if token == nil {
		token = t.tokenizeSpecialChar(pos)
	}
	if token == nil {
		token = t.tokenizeIdentifier(pos)
	}
	if token == nil {
		value := string(t.ch)
		t.advance()
		token = &Token{Type: TokenUnknown, Value: value, Pos: pos}
	}

	t.prev = token.Type
	t.prevValue = token.Value
	return *token
}

// tokenizeString tokenizes string literals
func (t *Tokenizer) tokenizeString(pos int) *Token {
	if t.ch == '\'' || t.ch == '"' {
		value := t.readString()
		return &Token{Type: TokenString, Value: value, Pos: pos}
	}
	return nil
}

// tokenizeNumber tokenizes numeric literals
func (t *Tokenizer) tokenizeNumber(pos int) *Token {
	if isDigit(t.ch) || (t.ch == '-' && isDigit(t.peek()) && !t.operandEnded()) {
		value := t.readNumber()
		return &Token{Type: TokenNumber, Value: value, Pos: pos}
	}
	return nil
}

// tokenizePlaceholder tokenizes positional placeholders
func (t *Tokenizer) tokenizePlaceholder(pos int) *Token {
	if t.ch != '$' {
		return nil
	}
	if value, ok := t.readPlaceholder(); ok {
		return &Token{Type: TokenPlaceholder, Value: value, Pos: pos}
	}
	return nil
}

// tokenizeSpecialChar tokenizes parentheses, commas and symbolic operators
func (t *Tokenizer) tokenizeSpecialChar(pos int) *Token {
	switch t.ch {
	case '(':
		t.advance()
		return &Token{Type: TokenLParen, Value: "(", Pos: pos}
	case ')':
		t.advance()
		return &Token{Type: TokenRParen, Value: ")", Pos: pos}
	case ',':
		t.advance()
		return &Token{Type: TokenComma, Value: ",", Pos: pos}
	case '<', '>':
		return t.twoCharToken(pos, '=', TokenOperator, TokenOperator)
	case '=':
		return t.twoCharToken(pos, '=', TokenOperator, TokenUnknown)
	case '!':
		return t.twoCharToken(pos, '=', TokenOperator, TokenNot)
	case '&':
		return t.twoCharToken(pos, '&', TokenLogical, TokenUnknown)
	case '|':
		return t.twoCharToken(pos, '|', TokenLogical, TokenUnknown)
	case '+', '-', '*', '/', '%':
		op := string(t.ch)
		t.advance()
		return &Token{Type: TokenArithmetic, Value: op, Pos: pos}
	}
	return nil
}

// twoCharToken emits the two character token when the current character is
// followed by second, and the single character token otherwise.
func (t *Tokenizer) twoCharToken(pos int, second byte, pair, single TokenType) *Token {
	first := t.ch
	if t.peek() == second {
		t.advance()
		t.advance()
		return &Token{Type: pair, Value: string([]byte{first, second}), Pos: pos}
	}
	t.advance()
	return &Token{Type: single, Value: string(first), Pos: pos}
}

// tokenizeIdentifier tokenizes identifiers, function names and paths.
// A '$' that did not start a placeholder is kept as part of the name ($it).
func (t *Tokenizer) tokenizeIdentifier(pos int) *Token {
	if t.ch == '$' && isIdentStart(t.peek()) {
		t.advance()
		value := "$" + t.readIdentifier()
		return &Token{Type: TokenIdentifier, Value: value, Pos: pos}
	}
	if !isIdentStart(t.ch) {
		return nil
	}

	value := t.readIdentifier()
	return &Token{Type: TokenIdentifier, Value: value, Pos: pos}
}

// TokenizeAll returns all tokens from the input, terminated by TokenEOF
func (t *Tokenizer) TokenizeAll() []Token {
	var tokens []Token

	for {
		token := t.NextToken()
		tokens = append(tokens, token)

		if token.Type == TokenEOF {
			break
		}
	}

	return tokens
}
