package parser

import (
	"strings"

	"github.com/Tianpingan/tinysql/internal/sql/scanner"
	"github.com/Tianpingan/tinysql/internal/types"
	"github.com/cockroachdb/errors"
)

// Literal is a constant written in a query.
// The sign of numbers is folded into Lit by the parser.
type Literal struct {
	Tok scanner.Token
	Lit string
	Pos scanner.Pos
}

var _ types.Literal = (*Literal)(nil)

// Numeric returns the text of integer literals.
// Decimal numbers are not integers and are reported as non numeric.
func (l *Literal) Numeric() (string, bool) {
	if l.Tok != scanner.INTEGER {
		return "", false
	}
	return l.Lit, true
}

// Boolean returns the value of TRUE and FALSE literals.
func (l *Literal) Boolean() (bool, bool) {
	switch l.Tok {
	case scanner.TRUE:
		return true, true
	case scanner.FALSE:
		return false, true
	}
	return false, false
}

func (l *Literal) String() string {
	if l.Tok == scanner.STRING {
		return "'" + strings.ReplaceAll(l.Lit, "'", "''") + "'"
	}
	return scanner.Tokstr(l.Tok, l.Lit)
}

// ParseLiteral parses a literal. Numbers may be preceded by any run of
// + and - signs, written without spaces in between.
func (p *Parser) ParseLiteral() (*Literal, error) {
	tok, pos, lit := p.ScanIgnoreWhitespace()
	switch tok {
	case scanner.ADD, scanner.SUB:
		neg := false
		for tok == scanner.ADD || tok == scanner.SUB {
			if tok == scanner.SUB {
				neg = !neg
			}
			tok, _, lit = p.Scan()
		}
		if tok != scanner.NUMBER && tok != scanner.INTEGER {
			return nil, errors.WithStack(&ParseError{Message: "syntax error", Pos: pos})
		}
		if neg {
			lit = "-" + lit
		}
		return &Literal{Tok: tok, Lit: lit, Pos: pos}, nil
	case scanner.INTEGER, scanner.NUMBER, scanner.STRING:
		return &Literal{Tok: tok, Lit: lit, Pos: pos}, nil
	case scanner.TRUE, scanner.FALSE, scanner.NULL:
		return &Literal{Tok: tok, Pos: pos}, nil
	case scanner.BADSTRING:
		return nil, errors.WithStack(&ParseError{Message: "unable to parse string", Pos: pos})
	}

	return nil, newParseError(scanner.Tokstr(tok, lit), []string{"literal"}, pos)
}

// ParseLiteralList parses a list of literals in the form: [VALUES] (lit, lit, ...).
// Parentheses are optional.
func (p *Parser) ParseLiteralList() ([]*Literal, error) {
	if _, err := p.parseOptional(scanner.VALUES); err != nil {
		return nil, err
	}

	paren, err := p.parseOptional(scanner.LPAREN)
	if err != nil {
		return nil, err
	}

	var list []*Literal
	for {
		lit, err := p.ParseLiteral()
		if err != nil {
			return nil, err
		}
		list = append(list, lit)

		if tok, _, _ := p.ScanIgnoreWhitespace(); tok != scanner.COMMA {
			p.Unscan()
			break
		}
	}

	if paren {
		if err := p.ParseTokens(scanner.RPAREN); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// Literals converts a parsed list to the interface consumed by the types package.
func Literals(list []*Literal) []types.Literal {
	lits := make([]types.Literal, len(list))
	for i := range list {
		lits[i] = list[i]
	}
	return lits
}
