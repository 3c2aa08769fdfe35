package logic

// Parser builds an expression tree from a token stream by recursive
// descent. Grammar, lowest precedence first:
//
//	Or      := And ('|' And)*
//	And     := Not ('&' Not)*
//	Not     := '!' Not | Primary
//	Primary := Variable | Constant | '(' Or ')'
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser returns a parser over the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse validates, tokenizes and parses text into an expression tree
// using the default limits.
func Parse(text string) (Node, error) {
	return ParseWithLimits(text, DefaultLimits())
}

// ParseWithLimits is Parse with caller-supplied resource limits.
func ParseWithLimits(text string, limits Limits) (Node, error) {
	if err := ValidateSource(text, limits); err != nil {
		return nil, err
	}
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseExpression()
}

// ParseExpression parses the whole token stream and requires it to be
// fully consumed.
func (p *Parser) ParseExpression() (Node, error) {
	if p.current().Type == TokenEOF {
		return nil, &ParseError{Pos: 0, Msg: "empty input"}
	}
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != TokenEOF {
		return nil, &ParseError{Pos: tok.Position, Msg: "unexpected token " + tok.Type.String()}
	}
	return node, nil
}

func (p *Parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or(left, right)
	}
	return left, nil
}

func (p *Parser) parseAnd() (Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = And(left, right)
	}
	return left, nil
}

func (p *Parser) parseNot() (Node, error) {
	if p.current().Type == TokenNot {
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.current()
	switch tok.Type {
	case TokenVar, TokenConst:
		p.advance()
		return Var(tok.Value), nil

	case TokenLParen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.current(); closing.Type != TokenRParen {
			return nil, &ParseError{Pos: closing.Position, Msg: "expected ')', got " + closing.Type.String()}
		}
		p.advance()
		// Keep the user's grouping visible in rendered output.
		if bin, ok := inner.(BinaryNode); ok {
			bin.ForceParens = true
			return bin, nil
		}
		return inner, nil

	default:
		return nil, &ParseError{Pos: tok.Position, Msg: "unexpected token " + tok.Type.String()}
	}
}

func (p *Parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Type: TokenEOF, Position: len(p.tokens)}
}

func (p *Parser) advance() {
	p.pos++
}
