package scanner

import (
	"strings"
	"unicode"
)

// TokenInfo is a token along with its position and text.
// Lit is empty for keywords and punctuation.
type TokenInfo struct {
	Tok Token
	Pos Pos
	Lit string
}

// Scanner splits literals, type names and column lists into tokens.
// The whole input is held in memory.
type Scanner struct {
	src []rune
	off int
	pos Pos
}

// NewScanner returns a scanner reading src.
// A carriage return, alone or followed by a line feed, is read as a single line feed.
func NewScanner(src string) *Scanner {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return &Scanner{src: []rune(src)}
}

// Scan returns the next token. It keeps returning EOF once the input is consumed.
func (s *Scanner) Scan() TokenInfo {
	pos := s.pos

	ch, ok := s.peek(0)
	if !ok {
		return TokenInfo{Tok: EOF, Pos: pos}
	}

	switch {
	case isSpace(ch):
		return TokenInfo{Tok: WS, Pos: pos, Lit: s.takeWhile(isSpace)}
	case isIdentStart(ch):
		lit := s.takeWhile(isIdentChar)
		if tok := Lookup(lit); tok != IDENT {
			return TokenInfo{Tok: tok, Pos: pos}
		}
		return TokenInfo{Tok: IDENT, Pos: pos, Lit: lit}
	case isDigit(ch):
		return s.scanNumber(pos)
	case ch == '.':
		if c, ok := s.peek(1); ok && isDigit(c) {
			return s.scanNumber(pos)
		}
	case ch == '\'' || ch == '"':
		return s.scanString(pos, ch)
	}

	s.next()

	switch ch {
	case '+':
		return TokenInfo{Tok: ADD, Pos: pos}
	case '-':
		if c, _ := s.peek(0); c == '-' {
			s.skipLine()
			return TokenInfo{Tok: COMMENT, Pos: pos}
		}
		return TokenInfo{Tok: SUB, Pos: pos}
	case '(':
		return TokenInfo{Tok: LPAREN, Pos: pos}
	case ')':
		return TokenInfo{Tok: RPAREN, Pos: pos}
	case ',':
		return TokenInfo{Tok: COMMA, Pos: pos}
	case ';':
		return TokenInfo{Tok: SEMICOLON, Pos: pos}
	}

	return TokenInfo{Tok: ILLEGAL, Pos: pos, Lit: string(ch)}
}

// scanNumber reads unsigned digits with an optional fraction and exponent.
// Signs are scanned as ADD and SUB and left to the parser.
// Only a bare run of digits is an INTEGER.
func (s *Scanner) scanNumber(pos Pos) TokenInfo {
	var b strings.Builder
	tok := INTEGER

	b.WriteString(s.takeWhile(isDigit))

	if c, _ := s.peek(0); c == '.' {
		s.next()
		b.WriteRune('.')
		b.WriteString(s.takeWhile(isDigit))
		tok = NUMBER
	}

	if n := s.exponentPrefix(); n > 0 {
		for i := 0; i < n; i++ {
			b.WriteRune(s.next())
		}
		b.WriteString(s.takeWhile(isDigit))
		tok = NUMBER
	}

	return TokenInfo{Tok: tok, Pos: pos, Lit: b.String()}
}

// exponentPrefix returns the length of the 'e', with its optional sign,
// opening an exponent at the current offset. A digit must follow, otherwise 0 is returned.
func (s *Scanner) exponentPrefix() int {
	if c, _ := s.peek(0); c != 'e' && c != 'E' {
		return 0
	}

	n := 1
	if c, _ := s.peek(1); c == '+' || c == '-' {
		n++
	}

	if c, ok := s.peek(n); !ok || !isDigit(c) {
		return 0
	}
	return n
}

// scanString reads a string quoted with ' or ".
// There are no escape sequences: a doubled quote stands for itself.
// Reaching a newline or the end of input first yields a BADSTRING.
func (s *Scanner) scanString(pos Pos, quote rune) TokenInfo {
	s.next()

	var b strings.Builder
	for {
		ch, ok := s.peek(0)
		if !ok || ch == '\n' {
			return TokenInfo{Tok: BADSTRING, Pos: pos, Lit: b.String()}
		}

		if ch == quote {
			s.next()
			if c, _ := s.peek(0); c != quote {
				return TokenInfo{Tok: STRING, Pos: pos, Lit: b.String()}
			}
		}

		b.WriteRune(s.next())
	}
}

// skipLine consumes everything up to and including the next newline.
func (s *Scanner) skipLine() {
	for {
		ch, ok := s.peek(0)
		if !ok {
			return
		}
		s.next()
		if ch == '\n' {
			return
		}
	}
}

func (s *Scanner) takeWhile(fn func(rune) bool) string {
	start := s.off
	for {
		ch, ok := s.peek(0)
		if !ok || !fn(ch) {
			break
		}
		s.next()
	}
	return string(s.src[start:s.off])
}

func (s *Scanner) peek(n int) (rune, bool) {
	if s.off+n >= len(s.src) {
		return 0, false
	}
	return s.src[s.off+n], true
}

// next consumes one rune and moves the position past it.
func (s *Scanner) next() rune {
	ch := s.src[s.off]
	s.off++

	if ch == '\n' {
		s.pos.Line++
		s.pos.Char = 0
	} else {
		s.pos.Char++
	}
	return ch
}

func isSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' }

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool { return unicode.IsLetter(ch) || ch == '_' }

func isIdentChar(ch rune) bool { return isIdentStart(ch) || isDigit(ch) }
