package sql

import (
	"fmt"
	"strings"
)

// TokenType classifies a lexical token.
type TokenType int

const (
	TokenKeyword TokenType = iota
	TokenIdentifier
	TokenDataType
	TokenPunctuation
	TokenOperator
	TokenLiteral
	TokenNumeric
)

func (t TokenType) String() string {
	switch t {
	case TokenKeyword:
		return "Keyword"
	case TokenIdentifier:
		return "Identifier"
	case TokenDataType:
		return "DataType"
	case TokenPunctuation:
		return "Punctuation"
	case TokenOperator:
		return "Operator"
	case TokenLiteral:
		return "Literal"
	case TokenNumeric:
		return "Numeric"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a single lexical unit. Value keeps the text as written in the
// input (original case, quotes stripped for literals).
type Token struct {
	Type  TokenType
	Value string
}

// String renders the token as Type("value"), used in parser error messages.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// isKeyword reports whether the token is the keyword kw, case-insensitively.
func (t Token) isKeyword(kw string) bool {
	return t.Type == TokenKeyword && strings.EqualFold(t.Value, kw)
}

// isPunct reports whether the token is the punctuation character c.
func (t Token) isPunct(c byte) bool {
	return t.Type == TokenPunctuation && len(t.Value) == 1 && t.Value[0] == c
}

// keywords is the fixed keyword set, in uppercase.
var keywords = map[string]struct{}{
	"CREATE": {}, "TABLE": {}, "SELECT": {}, "INSERT": {}, "UPDATE": {},
	"DELETE": {}, "FROM": {}, "WHERE": {}, "AND": {}, "OR": {},
	"NOT": {}, "IN": {}, "INTO": {}, "VALUES": {}, "SET": {},
	"JOIN": {}, "ON": {}, "AS": {}, "ORDER": {}, "BY": {},
	"GROUP": {}, "HAVING": {}, "LIMIT": {}, "OFFSET": {}, "DISTINCT": {},
	"ALTER": {}, "DROP": {}, "ADD": {}, "COLUMN": {}, "INDEX": {},
	"VIEW": {}, "TRIGGER": {}, "PROCEDURE": {}, "FUNCTION": {}, "DATABASE": {},
	"SCHEMA": {}, "USE": {}, "SHOW": {}, "DESCRIBE": {}, "EXPLAIN": {},
}

// dataTypeNames is the fixed set of words lexed as data type names.
// Only some of them are accepted by the parser.
var dataTypeNames = map[string]struct{}{
	"INT": {}, "INTEGER": {}, "VARCHAR": {}, "CHAR": {},
	"TEXT": {}, "DATE": {}, "TIMESTAMP": {}, "BOOL": {},
	"BOOLEAN": {}, "FLOAT": {}, "DOUBLE": {}, "DECIMAL": {},
}

// classifyWord picks the token type of an alphanumeric run. Keywords win over
// type names, which win over boolean literals.
func classifyWord(word string) TokenType {
	upper := strings.ToUpper(word)
	if _, ok := keywords[upper]; ok {
		return TokenKeyword
	}
	if _, ok := dataTypeNames[upper]; ok {
		return TokenDataType
	}
	if upper == "TRUE" || upper == "FALSE" {
		return TokenLiteral
	}
	return TokenIdentifier
}
