package sql

// SyntaxError reports the first grammar mismatch in a statement.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

func syntaxErr(msg string) error {
	return &SyntaxError{Msg: msg}
}

// Parse tokenizes a single SQL statement and parses it into an AST Statement.
// Supported statements: CREATE TABLE, INSERT INTO and SELECT.
func Parse(query string) (Statement, error) {
	return ParseTokens(Tokenize(query))
}

// ParseTokens parses an already tokenized statement. Parsing is a single
// pass with one token of lookahead; the first mismatch aborts the statement.
func ParseTokens(tokens []Token) (Statement, error) {
	p := &parser{tokens: tokens}

	first, ok := p.peek()
	if !ok {
		return nil, syntaxErr("Unknown statement")
	}

	var (
		stmt Statement
		err  error
	)
	switch {
	case first.isKeyword("CREATE"):
		stmt, err = p.parseCreate()
	case first.isKeyword("SELECT"):
		stmt, err = p.parseSelect()
	case first.isKeyword("INSERT"):
		stmt, err = p.parseInsert()
	default:
		return nil, syntaxErr("Unknown statement")
	}
	if err != nil {
		return nil, err
	}

	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// parser is a cursor over a token slice.
type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// expectIdentifier consumes an identifier or fails with msg.
func (p *parser) expectIdentifier(msg string) (string, error) {
	tok, ok := p.next()
	if !ok || tok.Type != TokenIdentifier {
		return "", syntaxErr(msg)
	}
	return tok.Value, nil
}

// expectPunct consumes the punctuation c or fails with msg.
func (p *parser) expectPunct(c byte, msg string) error {
	tok, ok := p.next()
	if !ok || !tok.isPunct(c) {
		return syntaxErr(msg)
	}
	return nil
}

// expectEnd allows one trailing ';' and nothing after it.
func (p *parser) expectEnd() error {
	if tok, ok := p.peek(); ok && tok.isPunct(';') {
		p.pos++
	}
	if tok, ok := p.peek(); ok {
		return syntaxErr("Unexpected token after statement: " + tok.String())
	}
	return nil
}
