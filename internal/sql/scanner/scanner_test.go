package scanner_test

import (
	"testing"

	"github.com/Tianpingan/tinysql/internal/sql/scanner"
	"github.com/stretchr/testify/require"
)

// Ensure the scanner can scan tokens correctly.
func TestScanner_Scan(t *testing.T) {
	var tests = []struct {
		s   string
		tok scanner.Token
		lit string
		pos scanner.Pos
	}{
		// Special tokens (EOF, ILLEGAL, WS)
		{s: ``, tok: scanner.EOF},
		{s: `#`, tok: scanner.ILLEGAL, lit: `#`},
		{s: `.`, tok: scanner.ILLEGAL, lit: `.`},
		{s: ` `, tok: scanner.WS, lit: " "},
		{s: "\t", tok: scanner.WS, lit: "\t"},
		{s: "\n", tok: scanner.WS, lit: "\n"},
		{s: "\r", tok: scanner.WS, lit: "\n"},
		{s: "\r\n", tok: scanner.WS, lit: "\n"},
		{s: "\n\r", tok: scanner.WS, lit: "\n\n"},
		{s: " foo", tok: scanner.WS, lit: " "},
		{s: "-- comment\n1", tok: scanner.COMMENT},

		// Signs
		{s: `+`, tok: scanner.ADD},
		{s: `-`, tok: scanner.SUB},
		{s: `- 1`, tok: scanner.SUB},

		// Misc tokens
		{s: `(`, tok: scanner.LPAREN},
		{s: `)`, tok: scanner.RPAREN},
		{s: `,`, tok: scanner.COMMA},
		{s: `;`, tok: scanner.SEMICOLON},

		// Identifiers
		{s: `foo`, tok: scanner.IDENT, lit: `foo`},
		{s: `_foo`, tok: scanner.IDENT, lit: `_foo`},
		{s: `Zx12_3U_-`, tok: scanner.IDENT, lit: `Zx12_3U_`},

		// Booleans
		{s: `true`, tok: scanner.TRUE},
		{s: `TRUE`, tok: scanner.TRUE},
		{s: `false`, tok: scanner.FALSE},
		{s: `FaLsE`, tok: scanner.FALSE},
		{s: `null`, tok: scanner.NULL},

		// Strings
		{s: `'testing 123!'`, tok: scanner.STRING, lit: `testing 123!`},
		{s: `''`, tok: scanner.STRING},
		{s: `"foo bar"`, tok: scanner.STRING, lit: `foo bar`},
		{s: `'foo\bar'`, tok: scanner.STRING, lit: `foo\bar`},
		{s: `'it''s'`, tok: scanner.STRING, lit: `it's`},
		{s: `"say ""hi"""`, tok: scanner.STRING, lit: `say "hi"`},
		{s: `"it's"`, tok: scanner.STRING, lit: `it's`},
		{s: `'test`, tok: scanner.BADSTRING, lit: `test`},
		{s: `'test''`, tok: scanner.BADSTRING, lit: `test'`},
		{s: "'test\nfoo'", tok: scanner.BADSTRING, lit: `test`},

		// Numbers
		{s: `100`, tok: scanner.INTEGER, lit: `100`},
		{s: `-100`, tok: scanner.SUB},
		{s: `0`, tok: scanner.INTEGER, lit: `0`},
		{s: `007`, tok: scanner.INTEGER, lit: `007`},
		{s: `12a`, tok: scanner.INTEGER, lit: `12`},
		{s: `100.23`, tok: scanner.NUMBER, lit: `100.23`},
		{s: `1.`, tok: scanner.NUMBER, lit: `1.`},
		{s: `.23`, tok: scanner.NUMBER, lit: `.23`},
		{s: `10.3s`, tok: scanner.NUMBER, lit: `10.3`},
		{s: `1e3`, tok: scanner.NUMBER, lit: `1e3`},
		{s: `1E-3`, tok: scanner.NUMBER, lit: `1E-3`},
		{s: `1e+3`, tok: scanner.NUMBER, lit: `1e+3`},
		{s: `1e`, tok: scanner.INTEGER, lit: `1`},
		{s: `1e+`, tok: scanner.INTEGER, lit: `1`},
		{s: `1.5e-x`, tok: scanner.NUMBER, lit: `1.5`},

		// Keywords
		{s: `VALUES`, tok: scanner.VALUES},
		{s: `values`, tok: scanner.VALUES},
		{s: `PRECISION`, tok: scanner.PRECISION},

		// Types
		{s: `BOOL`, tok: scanner.TYPEBOOL},
		{s: `boolean`, tok: scanner.TYPEBOOLEAN},
		{s: `TINYINT`, tok: scanner.TYPETINYINT},
		{s: `INT1`, tok: scanner.TYPEINT1},
		{s: `smallint`, tok: scanner.TYPESMALLINT},
		{s: `INT2`, tok: scanner.TYPEINT2},
		{s: `INT`, tok: scanner.TYPEINT},
		{s: `INTEGER`, tok: scanner.TYPEINTEGER},
		{s: `INT4`, tok: scanner.TYPEINT4},
		{s: `BIGINT`, tok: scanner.TYPEBIGINT},
		{s: `INT8`, tok: scanner.TYPEINT8},
		{s: `DOUBLE`, tok: scanner.TYPEDOUBLE},
		{s: `REAL`, tok: scanner.TYPEREAL},
		{s: `TEXT`, tok: scanner.TYPETEXT},
		{s: `VARCHAR`, tok: scanner.TYPEVARCHAR},
		{s: `CHARACTER`, tok: scanner.TYPECHARACTER},
		{s: `BLOB`, tok: scanner.TYPEBLOB},
		{s: `BYTEA`, tok: scanner.TYPEBYTEA},
		{s: `BYTES`, tok: scanner.TYPEBYTES},
		{s: `TIMESTAMP`, tok: scanner.TYPETIMESTAMP},
	}

	for i, tt := range tests {
		s := scanner.NewScanner(tt.s)
		ti := s.Scan()
		if tt.tok != ti.Tok {
			t.Errorf("%d. %q token mismatch: exp=%q got=%q <%q>", i, tt.s, tt.tok, ti.Tok, ti.Lit)
		} else if tt.pos.Line != ti.Pos.Line || tt.pos.Char != ti.Pos.Char {
			t.Errorf("%d. %q pos mismatch: exp=%#v got=%#v", i, tt.s, tt.pos, ti.Pos)
		} else if tt.lit != ti.Lit {
			t.Errorf("%d. %q literal mismatch: exp=%q got=%q", i, tt.s, tt.lit, ti.Lit)
		}
	}
}

// Ensure the scanner can scan a series of tokens correctly.
func TestScanner_Scan_Multi(t *testing.T) {
	type result struct {
		tok scanner.Token
		pos scanner.Pos
		lit string
	}
	exp := []result{
		{tok: scanner.VALUES, pos: scanner.Pos{Line: 0, Char: 0}, lit: ""},
		{tok: scanner.WS, pos: scanner.Pos{Line: 0, Char: 6}, lit: " "},
		{tok: scanner.LPAREN, pos: scanner.Pos{Line: 0, Char: 7}, lit: ""},
		{tok: scanner.TRUE, pos: scanner.Pos{Line: 0, Char: 8}, lit: ""},
		{tok: scanner.COMMA, pos: scanner.Pos{Line: 0, Char: 12}, lit: ""},
		{tok: scanner.WS, pos: scanner.Pos{Line: 0, Char: 13}, lit: " "},
		{tok: scanner.SUB, pos: scanner.Pos{Line: 0, Char: 14}, lit: ""},
		{tok: scanner.INTEGER, pos: scanner.Pos{Line: 0, Char: 15}, lit: "3"},
		{tok: scanner.COMMA, pos: scanner.Pos{Line: 0, Char: 16}, lit: ""},
		{tok: scanner.WS, pos: scanner.Pos{Line: 0, Char: 17}, lit: " "},
		{tok: scanner.ADD, pos: scanner.Pos{Line: 0, Char: 18}, lit: ""},
		{tok: scanner.INTEGER, pos: scanner.Pos{Line: 0, Char: 19}, lit: "2000"},
		{tok: scanner.RPAREN, pos: scanner.Pos{Line: 0, Char: 23}, lit: ""},
		{tok: scanner.EOF, pos: scanner.Pos{Line: 0, Char: 24}, lit: ""},
	}

	s := scanner.NewScanner(`VALUES (true, -3, +2000)`)
	var act []result
	for {
		ti := s.Scan()
		act = append(act, result{ti.Tok, ti.Pos, ti.Lit})
		if ti.Tok == scanner.EOF {
			break
		}
	}

	require.Equal(t, exp, act)
}

// Ensure positions follow line breaks and strings start at their opening quote.
func TestScanner_Positions(t *testing.T) {
	s := scanner.NewScanner("-- note\r\n  'ab''c', 7\n\"x")

	var got []scanner.TokenInfo
	for {
		ti := s.Scan()
		got = append(got, ti)
		if ti.Tok == scanner.EOF {
			break
		}
	}

	require.Equal(t, []scanner.TokenInfo{
		{Tok: scanner.COMMENT, Pos: scanner.Pos{Line: 0, Char: 0}},
		{Tok: scanner.WS, Pos: scanner.Pos{Line: 1, Char: 0}, Lit: "  "},
		{Tok: scanner.STRING, Pos: scanner.Pos{Line: 1, Char: 2}, Lit: "ab'c"},
		{Tok: scanner.COMMA, Pos: scanner.Pos{Line: 1, Char: 9}},
		{Tok: scanner.WS, Pos: scanner.Pos{Line: 1, Char: 10}, Lit: " "},
		{Tok: scanner.INTEGER, Pos: scanner.Pos{Line: 1, Char: 11}, Lit: "7"},
		{Tok: scanner.WS, Pos: scanner.Pos{Line: 1, Char: 12}, Lit: "\n"},
		{Tok: scanner.BADSTRING, Pos: scanner.Pos{Line: 2, Char: 0}, Lit: "x"},
		{Tok: scanner.EOF, Pos: scanner.Pos{Line: 2, Char: 2}},
	}, got)

	// EOF is sticky.
	require.Equal(t, scanner.EOF, s.Scan().Tok)
}

func TestTokstr(t *testing.T) {
	require.Equal(t, "foo", scanner.Tokstr(scanner.IDENT, "foo"))
	require.Equal(t, "VALUES", scanner.Tokstr(scanner.VALUES, ""))
	require.True(t, scanner.TYPEINT.IsKeyword())
	require.False(t, scanner.INTEGER.IsKeyword())
	require.True(t, scanner.TRUE.IsLiteral())
}
