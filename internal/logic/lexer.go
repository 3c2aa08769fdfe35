package logic

import "unicode"

// TokenType identifies the class of a lexed token.
type TokenType int

const (
	TokenVar TokenType = iota
	TokenConst
	TokenNot
	TokenAnd
	TokenOr
	TokenLParen
	TokenRParen
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenVar:
		return "variable"
	case TokenConst:
		return "constant"
	case TokenNot:
		return "'!'"
	case TokenAnd:
		return "'&'"
	case TokenOr:
		return "'|'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenEOF:
		return "end of input"
	default:
		return "?"
	}
}

// Token is a lexed unit of input. Tokens are transient: the parser
// consumes them and they are not retained afterward.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// Lexer scans an expression string and produces tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the token list,
// terminated by an EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case isSpace(c):
			l.position++

		case c == '!':
			l.addToken(TokenNot, "!", currentPos)
			l.position++

		case c == '&':
			l.addToken(TokenAnd, "&", currentPos)
			l.position++

		case c == '|':
			l.addToken(TokenOr, "|", currentPos)
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++

		case isDigit(c):
			if err := l.lexConstant(currentPos); err != nil {
				return nil, err
			}

		case isIdentStart(c):
			l.lexIdentifier(currentPos)

		default:
			return nil, &LexError{Pos: currentPos, Msg: "unexpected character " + string(rune(c))}
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexConstant scans a numeric literal. Only the single digits 0 and 1
// are legal; a longer numeral or a digit-prefixed identifier is malformed.
func (l *Lexer) lexConstant(startPos int) error {
	start := l.position
	for l.position < len(l.input) && isDigit(l.input[l.position]) {
		l.position++
	}
	text := l.input[start:l.position]
	if len(text) > 1 {
		return &LexError{Pos: startPos, Msg: "multi-digit numeral " + text}
	}
	if text != "0" && text != "1" {
		return &LexError{Pos: startPos, Msg: "invalid constant " + text}
	}
	if l.position < len(l.input) && isIdentStart(l.input[l.position]) {
		return &LexError{Pos: startPos, Msg: "malformed variable starting with digit"}
	}
	l.addToken(TokenConst, text, startPos)
	return nil
}

// lexIdentifier scans a variable name: a letter or underscore followed
// by letters, digits or underscores.
func (l *Lexer) lexIdentifier(startPos int) {
	start := l.position
	for l.position < len(l.input) && isIdentPart(l.input[l.position]) {
		l.position++
	}
	l.addToken(TokenVar, l.input[start:l.position], startPos)
}

func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// Tokenize scans text into tokens using a fresh lexer.
func Tokenize(text string) ([]Token, error) {
	return NewLexer(text).Tokenize()
}
