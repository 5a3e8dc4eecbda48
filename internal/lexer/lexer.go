/*
File   : golox/internal/lexer/lexer.go

Package lexer converts Lox source text into a sequence of tokens. It never
fails hard on a bad character or an unterminated string — it records a
diagnostic and keeps scanning, so that a single typo doesn't hide every
other error in the file.
*/
package lexer

import (
	"strconv"

	"golox/internal/diag"
	"golox/internal/token"
)

// Scanner holds the lexer's cursor state over a single source string. It is
// a single-use, single-threaded state machine: construct one with New,
// call ScanTokens once, then discard it.
type Scanner struct {
	src       string
	current   byte // byte under the cursor, 0 past the end
	position  int  // index of current in src
	srcLength int
	line      int
	diags     *diag.Bag
}

// New creates a Scanner positioned at the start of src. diags receives any
// lex-time diagnostics (unterminated string, unexpected character); it may
// be nil, in which case diagnostics are silently dropped.
func New(src string, diags *diag.Bag) *Scanner {
	s := &Scanner{
		src:       src,
		position:  0,
		srcLength: len(src),
		line:      1,
		diags:     diags,
	}
	if s.srcLength > 0 {
		s.current = src[0]
	}
	return s
}

// ScanTokens tokenizes the entire source and returns the forward-ordered
// token sequence, always ending in a single EOF token. ScanTokens is total:
// every input — including an empty string or one full of garbage — yields
// at least the EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for {
		tok := s.nextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func (s *Scanner) nextToken() token.Token {
	s.skipWhitespaceAndComments()

	line := s.line
	c := s.current

	switch {
	case c == 0:
		return token.New(token.EOF, "", nil, line)
	case c == '(':
		s.advance()
		return token.New(token.LeftParen, "(", nil, line)
	case c == ')':
		s.advance()
		return token.New(token.RightParen, ")", nil, line)
	case c == '{':
		s.advance()
		return token.New(token.LeftBrace, "{", nil, line)
	case c == '}':
		s.advance()
		return token.New(token.RightBrace, "}", nil, line)
	case c == ',':
		s.advance()
		return token.New(token.Comma, ",", nil, line)
	case c == '.':
		s.advance()
		return token.New(token.Dot, ".", nil, line)
	case c == '-':
		s.advance()
		return token.New(token.Minus, "-", nil, line)
	case c == '+':
		s.advance()
		return token.New(token.Plus, "+", nil, line)
	case c == ';':
		s.advance()
		return token.New(token.Semicolon, ";", nil, line)
	case c == '*':
		s.advance()
		return token.New(token.Star, "*", nil, line)
	case c == '/':
		s.advance()
		return token.New(token.Slash, "/", nil, line)
	case c == '!':
		return s.twoChar('=', token.BangEqual, "!=", token.Bang, "!", line)
	case c == '=':
		return s.twoChar('=', token.EqualEqual, "==", token.Equal, "=", line)
	case c == '<':
		return s.twoChar('=', token.LessEqual, "<=", token.Less, "<", line)
	case c == '>':
		return s.twoChar('=', token.GreaterEqual, ">=", token.Greater, ">", line)
	case c == '"':
		return s.readString()
	case isDigit(c):
		return s.readNumber()
	case isAlpha(c):
		return s.readIdentifier()
	default:
		s.diag(line, "unexpected character %q", string(c))
		s.advance()
		return s.nextToken()
	}
}

// twoChar scans a one-or-two-character operator: if the lookahead matches
// second, the two-char token is emitted and both characters are consumed;
// otherwise only the one-char token is emitted.
func (s *Scanner) twoChar(second byte, twoKind token.Kind, twoLexeme string, oneKind token.Kind, oneLexeme string, line int) token.Token {
	s.advance()
	if s.current == second {
		s.advance()
		return token.New(twoKind, twoLexeme, nil, line)
	}
	return token.New(oneKind, oneLexeme, nil, line)
}

func (s *Scanner) skipWhitespaceAndComments() {
	for {
		switch {
		case s.current == ' ' || s.current == '\t' || s.current == '\r':
			s.advance()
		case s.current == '\n':
			s.line++
			s.advance()
		case s.current == '/' && s.peek() == '/':
			for s.current != '\n' && s.current != 0 {
				s.advance()
			}
		case s.current == '/' && s.peek() == '*':
			s.advance()
			s.advance()
			for s.current != 0 && !(s.current == '*' && s.peek() == '/') {
				if s.current == '\n' {
					s.line++
				}
				s.advance()
			}
			if s.current == 0 {
				s.diag(s.line, "unterminated block comment")
				return
			}
			s.advance()
			s.advance()
		default:
			return
		}
	}
}

func (s *Scanner) readString() token.Token {
	line := s.line
	s.advance() // consume opening quote
	start := s.position
	for s.current != '"' && s.current != 0 {
		if s.current == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.current == 0 {
		s.diag(line, "unterminated string")
		return token.New(token.String, s.src[start:s.position], s.src[start:s.position], line)
	}
	text := s.src[start:s.position]
	s.advance() // consume closing quote
	return token.New(token.String, text, text, line)
}

func (s *Scanner) readNumber() token.Token {
	line := s.line
	start := s.position
	for isDigit(s.current) {
		s.advance()
	}
	if s.current == '.' && isDigit(s.peek()) {
		s.advance()
		for isDigit(s.current) {
			s.advance()
		}
	}
	text := s.src[start:s.position]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.diag(line, "invalid number literal %q", text)
		value = 0
	}
	return token.New(token.Number, text, value, line)
}

func (s *Scanner) readIdentifier() token.Token {
	line := s.line
	start := s.position
	for isAlpha(s.current) || isDigit(s.current) {
		s.advance()
	}
	text := s.src[start:s.position]
	if kind, ok := token.Keywords[text]; ok {
		return token.New(kind, text, nil, line)
	}
	return token.New(token.Identifier, text, nil, line)
}

func (s *Scanner) peek() byte {
	if s.position+1 >= s.srcLength {
		return 0
	}
	return s.src[s.position+1]
}

func (s *Scanner) advance() {
	s.position++
	if s.position >= s.srcLength {
		s.current = 0
		s.position = s.srcLength
		return
	}
	s.current = s.src[s.position]
}

func (s *Scanner) diag(line int, format string, args ...interface{}) {
	if s.diags != nil {
		s.diags.Addf(diag.Lex, line, format, args...)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
