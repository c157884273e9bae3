package scanner

import (
	"strings"
)

// Token is a lexical token of the tinysql literal syntax.
type Token int

// These are a comprehensive list of tokens.
const (
	// ILLEGAL Token, EOF, WS are special tokens.
	ILLEGAL Token = iota
	EOF
	WS
	COMMENT

	// IDENT and the following are literal tokens.
	IDENT     // main
	NUMBER    // 12345.67
	INTEGER   // 12345
	STRING    // 'abc'
	BADSTRING // 'abc
	TRUE      // true
	FALSE     // false
	NULL      // NULL
	literalEnd

	ADD // +
	SUB // -

	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	SEMICOLON // ;

	keywordBeg
	// VALUES and the following are keywords.
	VALUES
	PRECISION

	// Types
	TYPEBIGINT
	TYPEBLOB
	TYPEBOOL
	TYPEBOOLEAN
	TYPEBYTEA
	TYPEBYTES
	TYPECHARACTER
	TYPEDOUBLE
	TYPEINT
	TYPEINT1
	TYPEINT2
	TYPEINT4
	TYPEINT8
	TYPEINTEGER
	TYPEREAL
	TYPESMALLINT
	TYPETEXT
	TYPETIMESTAMP
	TYPETINYINT
	TYPEVARCHAR
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	WS:      "WS",
	COMMENT: "COMMENT",

	IDENT:     "IDENT",
	NUMBER:    "NUMBER",
	INTEGER:   "INTEGER",
	STRING:    "STRING",
	BADSTRING: "BADSTRING",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	NULL:      "NULL",

	ADD: "+",
	SUB: "-",

	LPAREN:    "(",
	RPAREN:    ")",
	COMMA:     ",",
	SEMICOLON: ";",

	VALUES:    "VALUES",
	PRECISION: "PRECISION",

	TYPEBIGINT:    "BIGINT",
	TYPEBLOB:      "BLOB",
	TYPEBOOL:      "BOOL",
	TYPEBOOLEAN:   "BOOLEAN",
	TYPEBYTEA:     "BYTEA",
	TYPEBYTES:     "BYTES",
	TYPECHARACTER: "CHARACTER",
	TYPEDOUBLE:    "DOUBLE",
	TYPEINT:       "INT",
	TYPEINT1:      "INT1",
	TYPEINT2:      "INT2",
	TYPEINT4:      "INT4",
	TYPEINT8:      "INT8",
	TYPEINTEGER:   "INTEGER",
	TYPEREAL:      "REAL",
	TYPESMALLINT:  "SMALLINT",
	TYPETEXT:      "TEXT",
	TYPETIMESTAMP: "TIMESTAMP",
	TYPETINYINT:   "TINYINT",
	TYPEVARCHAR:   "VARCHAR",
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for tok := keywordBeg + 1; tok < keywordEnd; tok++ {
		keywords[strings.ToLower(tokens[tok])] = tok
	}
	for _, tok := range []Token{TRUE, FALSE, NULL} {
		keywords[strings.ToLower(tokens[tok])] = tok
	}
}

// String returns the string representation of the token.
func (tok Token) String() string {
	if tok >= 0 && tok < Token(len(tokens)) {
		return tokens[tok]
	}
	return ""
}

// IsLiteral returns true for literal tokens.
func (tok Token) IsLiteral() bool { return tok >= IDENT && tok < literalEnd }

// IsKeyword returns true for keyword tokens.
func (tok Token) IsKeyword() bool { return tok > keywordBeg && tok < keywordEnd }

// Tokstr returns a literal if provided, otherwise returns the token string.
func Tokstr(tok Token, lit string) string {
	if lit != "" {
		return lit
	}
	return tok.String()
}

// Lookup returns the token associated with a given string.
func Lookup(ident string) Token {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}

// Pos specifies the line and character position of a token.
// The Char and Line are both zero-based indexes.
type Pos struct {
	Line int
	Char int
}
