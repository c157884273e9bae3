package parser

import (
	"github.com/Tianpingan/tinysql/internal/row"
	"github.com/Tianpingan/tinysql/internal/sql/scanner"
	"github.com/Tianpingan/tinysql/internal/types"
)

// ParseType parses a type name, such as SMALLINT or INT2.
func ParseType(s string) (types.Type, error) {
	p := NewParser(s)
	t, err := p.ParseType()
	if err != nil {
		return 0, err
	}
	if err := p.parseEnd(); err != nil {
		return 0, err
	}
	return t, nil
}

// ParseSchema parses a column list in the form: a TINYINT, b BOOL.
func ParseSchema(s string) (row.Schema, error) {
	p := NewParser(s)
	sc, err := p.ParseSchema()
	if err != nil {
		return nil, err
	}
	if err := p.parseEnd(); err != nil {
		return nil, err
	}
	return sc, nil
}

// ParseType parses a type name and its synonyms.
func (p *Parser) ParseType() (types.Type, error) {
	tok, pos, lit := p.ScanIgnoreWhitespace()
	switch tok {
	case scanner.TYPEBOOL, scanner.TYPEBOOLEAN:
		return types.TypeBoolean, nil
	case scanner.TYPETINYINT, scanner.TYPEINT1:
		return types.TypeTinyint, nil
	case scanner.TYPESMALLINT, scanner.TYPEINT2:
		return types.TypeSmallint, nil
	case scanner.TYPEINT, scanner.TYPEINTEGER, scanner.TYPEINT4:
		return types.TypeInteger, nil
	case scanner.TYPEBIGINT, scanner.TYPEINT8:
		return types.TypeBigint, nil
	case scanner.TYPEREAL:
		return types.TypeDouble, nil
	case scanner.TYPEDOUBLE:
		tok, _, _ := p.ScanIgnoreWhitespace()
		if tok == scanner.PRECISION {
			return types.TypeDouble, nil
		}
		p.Unscan()
		return types.TypeDouble, nil
	case scanner.TYPETEXT:
		return types.TypeText, nil
	case scanner.TYPEVARCHAR, scanner.TYPECHARACTER:
		if tok, pos, lit := p.ScanIgnoreWhitespace(); tok != scanner.LPAREN {
			return 0, newParseError(scanner.Tokstr(tok, lit), []string{"("}, pos)
		}

		// The value between parentheses is not used.
		if tok, pos, lit := p.ScanIgnoreWhitespace(); tok != scanner.INTEGER {
			return 0, newParseError(scanner.Tokstr(tok, lit), []string{"integer"}, pos)
		}

		if tok, pos, lit := p.ScanIgnoreWhitespace(); tok != scanner.RPAREN {
			return 0, newParseError(scanner.Tokstr(tok, lit), []string{")"}, pos)
		}

		return types.TypeText, nil
	case scanner.TYPEBLOB, scanner.TYPEBYTES, scanner.TYPEBYTEA:
		return types.TypeBlob, nil
	case scanner.TYPETIMESTAMP:
		return types.TypeTimestamp, nil
	}

	return 0, newParseError(scanner.Tokstr(tok, lit), []string{"type"}, pos)
}

// ParseSchema parses a list of column definitions, optionally wrapped in parentheses.
// The resulting schema is validated.
func (p *Parser) ParseSchema() (row.Schema, error) {
	paren, err := p.parseOptional(scanner.LPAREN)
	if err != nil {
		return nil, err
	}

	var s row.Schema
	for {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}

		t, err := p.ParseType()
		if err != nil {
			return nil, err
		}

		s = append(s, row.Column{Name: name, Type: t})

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

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// parseIdent parses an identifier.
func (p *Parser) parseIdent() (string, error) {
	tok, pos, lit := p.ScanIgnoreWhitespace()
	if tok != scanner.IDENT {
		return "", newParseError(scanner.Tokstr(tok, lit), []string{"identifier"}, pos)
	}

	return lit, nil
}
