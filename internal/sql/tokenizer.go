package sql

import (
	"fmt"
	"unicode"
)

// LexicalError reports input the strict tokenizer refuses to skip.
// Pos is the character offset of the offending input.
type LexicalError struct {
	Pos int
	Msg string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

// tokenizer scans a statement one character at a time.
type tokenizer struct {
	input  []rune
	pos    int
	strict bool
	err    *LexicalError
}

// Tokenize splits a statement into tokens. It never fails: characters that
// start no token are skipped and an unterminated literal runs to the end of
// the input.
func Tokenize(statement string) []Token {
	t := &tokenizer{input: []rune(statement)}
	return t.run()
}

// TokenizeStrict applies the same rules as Tokenize but returns a
// *LexicalError for an unrecognized character or an unterminated literal.
func TokenizeStrict(statement string) ([]Token, error) {
	t := &tokenizer{input: []rune(statement), strict: true}
	tokens := t.run()
	if t.err != nil {
		return nil, t.err
	}
	return tokens, nil
}

func (t *tokenizer) peek() (rune, bool) {
	if t.pos >= len(t.input) {
		return 0, false
	}
	return t.input[t.pos], true
}

func (t *tokenizer) nextIsDigit() bool {
	ch, ok := t.peek()
	return ok && unicode.IsDigit(ch)
}

func (t *tokenizer) fail(pos int, msg string) {
	if t.strict && t.err == nil {
		t.err = &LexicalError{Pos: pos, Msg: msg}
	}
}

func (t *tokenizer) run() []Token {
	var tokens []Token

	for {
		ch, ok := t.peek()
		if !ok || t.err != nil {
			return tokens
		}

		switch {
		case ch == ' ' || ch == '\t' || ch == '\n':
			t.pos++
		case ch == '\r' && t.strict:
			t.pos++
		case ch == '(' || ch == ')' || ch == ',' || ch == ';' || ch == '.':
			tokens = append(tokens, Token{Type: TokenPunctuation, Value: string(ch)})
			t.pos++
		case ch == '=' || ch == '<' || ch == '>' || ch == '!':
			tokens = append(tokens, Token{Type: TokenOperator, Value: t.scanOperator()})
		case ch == '\'' || ch == '"':
			tokens = append(tokens, Token{Type: TokenLiteral, Value: t.scanLiteral(ch)})
		case ch == '-':
			t.pos++
			if t.nextIsDigit() {
				tokens = append(tokens, Token{Type: TokenNumeric, Value: "-" + t.scanNumeric()})
			} else {
				tokens = append(tokens, Token{Type: TokenOperator, Value: "-"})
			}
		case unicode.IsLetter(ch):
			word := t.scanWord()
			tokens = append(tokens, Token{Type: classifyWord(word), Value: word})
		case unicode.IsDigit(ch):
			tokens = append(tokens, Token{Type: TokenNumeric, Value: t.scanNumeric()})
		default:
			t.fail(t.pos, fmt.Sprintf("unexpected character %q", ch))
			t.pos++
		}
	}
}

// scanOperator consumes a comparison character and an optional trailing '='.
func (t *tokenizer) scanOperator() string {
	start := t.pos
	t.pos++
	if ch, ok := t.peek(); ok && ch == '=' {
		t.pos++
	}
	return string(t.input[start:t.pos])
}

// scanLiteral consumes a quoted literal and returns its contents.
func (t *tokenizer) scanLiteral(quote rune) string {
	open := t.pos
	t.pos++
	start := t.pos
	for t.pos < len(t.input) {
		if t.input[t.pos] == quote {
			lit := string(t.input[start:t.pos])
			t.pos++
			return lit
		}
		t.pos++
	}
	t.fail(open, "unterminated literal")
	return string(t.input[start:])
}

func (t *tokenizer) scanNumeric() string {
	start := t.pos
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if !unicode.IsDigit(ch) && ch != '.' {
			break
		}
		t.pos++
	}
	return string(t.input[start:t.pos])
}

func (t *tokenizer) scanWord() string {
	start := t.pos
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			break
		}
		t.pos++
	}
	return string(t.input[start:t.pos])
}
