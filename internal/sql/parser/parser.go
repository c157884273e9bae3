package parser

import (
	"fmt"
	"strings"

	"github.com/Tianpingan/tinysql/internal/sql/scanner"
	"github.com/cockroachdb/errors"
)

// Parser represents a parser for tinysql literals, types and schemas.
type Parser struct {
	tokens []scanner.TokenInfo
	next   int
}

// NewParser tokenizes s up front and returns a parser reading the tokens.
func NewParser(s string) *Parser {
	sc := scanner.NewScanner(s)

	var p Parser
	for {
		ti := sc.Scan()
		p.tokens = append(p.tokens, ti)
		if ti.Tok == scanner.EOF {
			return &p
		}
	}
}

// ParseLiteral parses a single literal, such as -12 or TRUE.
func ParseLiteral(s string) (*Literal, error) {
	p := NewParser(s)
	lit, err := p.ParseLiteral()
	if err != nil {
		return nil, err
	}
	if err := p.parseEnd(); err != nil {
		return nil, err
	}
	return lit, nil
}

// ParseLiteralList parses a comma separated list of literals.
// The list may be wrapped in parentheses and prefixed with VALUES.
func ParseLiteralList(s string) ([]*Literal, error) {
	p := NewParser(s)
	list, err := p.ParseLiteralList()
	if err != nil {
		return nil, err
	}
	if err := p.parseEnd(); err != nil {
		return nil, err
	}
	return list, nil
}

// MustParseLiteral calls ParseLiteral and panics if it returns an error.
func MustParseLiteral(s string) *Literal {
	lit, err := ParseLiteral(s)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return lit
}

// parseEnd makes sure nothing but semicolons is left in the input.
func (p *Parser) parseEnd() error {
	p.skipMany(scanner.SEMICOLON)

	if tok, pos, lit := p.ScanIgnoreWhitespace(); tok != scanner.EOF {
		p.Unscan()
		return newParseError(scanner.Tokstr(tok, lit), []string{"EOF"}, pos)
	}
	return nil
}

func (p *Parser) skipMany(tok scanner.Token) {
	for {
		t, _, _ := p.ScanIgnoreWhitespace()
		if t != tok {
			p.Unscan()
			return
		}
	}
}

// Scan returns the next token. Past the end of input it returns EOF.
func (p *Parser) Scan() (tok scanner.Token, pos scanner.Pos, lit string) {
	i := p.next
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}
	p.next++

	ti := p.tokens[i]
	return ti.Tok, ti.Pos, ti.Lit
}

// ScanIgnoreWhitespace scans the next non-whitespace and non-comment token.
func (p *Parser) ScanIgnoreWhitespace() (tok scanner.Token, pos scanner.Pos, lit string) {
	for {
		tok, pos, lit = p.Scan()
		if tok == scanner.WS || tok == scanner.COMMENT {
			continue
		}
		return
	}
}

// Unscan steps back one token. Any number of tokens can be unscanned.
func (p *Parser) Unscan() {
	if p.next > 0 {
		p.next--
	}
}

// ParseTokens parses all the given tokens one after the other.
// It returns an error if one of the token is missing.
func (p *Parser) ParseTokens(tokens ...scanner.Token) error {
	for _, t := range tokens {
		if tok, pos, lit := p.ScanIgnoreWhitespace(); tok != t {
			return newParseError(scanner.Tokstr(tok, lit), []string{t.String()}, pos)
		}
	}
	return nil
}

// parseOptional parses a list of consecutive tokens. If the first token is not
// present, it unscans and return false. If the first is present, all the others
// must be parsed otherwise an error is returned.
func (p *Parser) parseOptional(tokens ...scanner.Token) (bool, error) {
	// Parse optional first token
	if tok, _, _ := p.ScanIgnoreWhitespace(); tok != tokens[0] {
		p.Unscan()
		return false, nil
	}

	if len(tokens) == 1 {
		return true, nil
	}

	err := p.ParseTokens(tokens[1:]...)
	return err == nil, err
}

// ParseError represents an error that occurred during parsing.
type ParseError struct {
	Message  string
	Found    string
	Expected []string
	Pos      scanner.Pos
}

// newParseError returns a new instance of ParseError.
func newParseError(found string, expected []string, pos scanner.Pos) error {
	return errors.WithStack(&ParseError{Found: found, Expected: expected, Pos: pos})
}

// Error returns the string representation of the error.
func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at line %d, char %d", e.Message, e.Pos.Line+1, e.Pos.Char+1)
	}
	return fmt.Sprintf("found %s, expected %s at line %d, char %d", e.Found, strings.Join(e.Expected, ", "), e.Pos.Line+1, e.Pos.Char+1)
}
