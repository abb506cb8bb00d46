package mapping

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"

	"karabiner-layout-generator/internal/gen"
)

const rustMappingsName = "MAPPINGS"

// Token kinds of the Rust lexical spec.
const (
	rustKindWhiteSpace   = "white_space"
	rustKindLineComment  = "line_comment"
	rustKindBlockComment = "block_comment"
	rustKindString       = "string"
	rustKindRawString    = "raw_string"
	rustKindRawHashed    = "raw_string_hashed"
	rustKindChar         = "char_literal"
	rustKindLifetime     = "lifetime"
	rustKindIdentifier   = "identifier"
	rustKindAmp          = "amp"
	rustKindLBracket     = "l_bracket"
	rustKindRBracket     = "r_bracket"
	rustKindLParen       = "l_paren"
	rustKindRParen       = "r_paren"
	rustKindComma        = "comma"
	rustKindEqual        = "equal"
	rustKindSemicolon    = "semicolon"
	rustKindOther        = "other"
	rustKindEOF          = "<eof>"
)

// Special characters are written as code points so the patterns need no escaping rules.
// Entries listed first win when two patterns match the same length.
var rustLexEntries = []*mlspec.LexEntry{
	{Kind: rustKindWhiteSpace, Pattern: `[\u{0009}\u{000A}\u{000D}\u{0020}]+`},
	{Kind: rustKindLineComment, Pattern: `//[^\u{000A}]*`},
	{Kind: rustKindBlockComment, Pattern: `/\u{002A}([^\u{002A}]|\u{002A}+[^\u{002A}/])*\u{002A}+/`},
	{Kind: rustKindString, Pattern: `"([^"\u{005C}]|\u{005C}([^\u{000A}]|\u{000A}))*"`},
	{Kind: rustKindRawString, Pattern: `r"[^"]*"`},
	// r#"..."#; the body may not contain a quote directly followed by '#'.
	{Kind: rustKindRawHashed, Pattern: `r\u{0023}+"([^"]|"+[^"\u{0023}])*"+\u{0023}+`},
	{Kind: rustKindChar, Pattern: `'([^'\u{005C}\u{000A}]|\u{005C}[^\u{000A}]+)'`},
	{Kind: rustKindLifetime, Pattern: `'[A-Za-z_][0-9A-Za-z_]*`},
	{Kind: rustKindIdentifier, Pattern: `[A-Za-z_][0-9A-Za-z_]*`},
	{Kind: rustKindAmp, Pattern: `&`},
	{Kind: rustKindLBracket, Pattern: `\u{005B}`},
	{Kind: rustKindRBracket, Pattern: `\u{005D}`},
	{Kind: rustKindLParen, Pattern: `\u{0028}`},
	{Kind: rustKindRParen, Pattern: `\u{0029}`},
	{Kind: rustKindComma, Pattern: `,`},
	{Kind: rustKindEqual, Pattern: `=`},
	{Kind: rustKindSemicolon, Pattern: `;`},
	{Kind: rustKindOther, Pattern: `[^\u{0009}\u{000A}\u{000D}\u{0020}]`},
}

// rustLexSpec compiles the lexical spec once.
var rustLexSpec = sync.OnceValues(func() (*mlspec.CompiledLexSpec, error) {
	lspec := &mlspec.LexSpec{
		Name:    "rust_mappings",
		Entries: rustLexEntries,
	}

	clspec, err, cErrs := mlcompiler.Compile(lspec)
	if err != nil {
		if len(cErrs) > 0 {
			return nil, fmt.Errorf("cannot compile the Rust lexical spec: %w (%d pattern errors)", err, len(cErrs))
		}

		return nil, fmt.Errorf("cannot compile the Rust lexical spec: %w", err)
	}

	return clspec, nil
})

// SyntaxError reports where a Rust mapping table is malformed.
// Row and Col are 1-based; zero means the position is unknown.
type SyntaxError struct {
	Row     int
	Col     int
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Row == 0 {
		return e.Message
	}

	return fmt.Sprintf("%d:%d: %s", e.Row, e.Col, e.Message)
}

type rustToken struct {
	kind string
	text string
	row  int
	col  int
}

func (t *rustToken) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Row: t.row, Col: t.col, Message: fmt.Sprintf(format, args...)}
}

type rustLexer struct {
	d         *mldriver.Lexer
	kindNames []mlspec.LexKindName
}

func newRustLexer(clspec *mlspec.CompiledLexSpec, src []byte) (*rustLexer, error) {
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(clspec), bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	return &rustLexer{
		d:         d,
		kindNames: clspec.KindNames,
	}, nil
}

// next returns the next significant token. White space and comments are skipped.
func (l *rustLexer) next() (*rustToken, error) {
	for {
		tok, err := l.d.Next()
		if err != nil {
			return nil, err
		}

		if tok.EOF {
			return &rustToken{kind: rustKindEOF}, nil
		}

		if tok.Invalid {
			return nil, &SyntaxError{
				Row:     tok.Row + 1,
				Col:     tok.Col + 1,
				Message: fmt.Sprintf("invalid token %q", string(tok.Lexeme)),
			}
		}

		kind := l.kindNames[tok.KindID].String()
		switch kind {
		case rustKindWhiteSpace, rustKindLineComment, rustKindBlockComment:
			continue
		}

		return &rustToken{
			kind: kind,
			text: string(tok.Lexeme),
			row:  tok.Row + 1,
			col:  tok.Col + 1,
		}, nil
	}
}

func (l *rustLexer) expect(kind, what string) (*rustToken, error) {
	tok, err := l.next()
	if err != nil {
		return nil, err
	}

	if tok.kind != kind {
		return nil, tok.errorf("expected %s, found %s", what, describeToken(tok))
	}

	return tok, nil
}

// parseRustMappings finds `const MAPPINGS ... = &[ ("from", "to"), ... ];`.
func parseRustMappings(clspec *mlspec.CompiledLexSpec, src []byte) (PairList, error) {
	l, err := newRustLexer(clspec, src)
	if err != nil {
		return nil, err
	}

	if err := l.seekConst(rustMappingsName); err != nil {
		return nil, err
	}

	if _, err := l.expect(rustKindAmp, "'&' before the MAPPINGS array"); err != nil {
		return nil, err
	}

	if _, err := l.expect(rustKindLBracket, "'[' opening the MAPPINGS array"); err != nil {
		return nil, err
	}

	pairs := PairList{}

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		if tok.kind == rustKindRBracket {
			break
		}

		if tok.kind != rustKindLParen {
			return nil, tok.errorf("array element is not a tuple: found %s", describeToken(tok))
		}

		pair, err := l.parseTuple(tok)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair)

		sep, err := l.next()
		if err != nil {
			return nil, err
		}

		if sep.kind == rustKindRBracket {
			break
		}

		if sep.kind != rustKindComma {
			return nil, sep.errorf("expected ',' or ']' after a tuple, found %s", describeToken(sep))
		}
	}

	if _, err := l.expect(rustKindSemicolon, "';' after the MAPPINGS array"); err != nil {
		return nil, err
	}

	return pairs, nil
}

// seekConst skips tokens up to and including the '=' of `const <name>: <type> =`.
func (l *rustLexer) seekConst(name string) error {
	var prev *rustToken

	for {
		tok, err := l.next()
		if err != nil {
			return err
		}

		if tok.kind == rustKindEOF {
			return &SyntaxError{Message: fmt.Sprintf("'%s' constant not found", name)}
		}

		if prev != nil && prev.kind == rustKindIdentifier && prev.text == "const" &&
			tok.kind == rustKindIdentifier && tok.text == name {
			break
		}

		prev = tok
	}

	for {
		tok, err := l.next()
		if err != nil {
			return err
		}

		switch tok.kind {
		case rustKindEqual:
			return nil
		case rustKindSemicolon, rustKindEOF:
			return tok.errorf("'%s' constant has no value", name)
		}
	}
}

// parseTuple parses the rest of a tuple after its '('.
func (l *rustLexer) parseTuple(open *rustToken) (gen.Pair, error) {
	var elems []string

	for {
		tok, err := l.next()
		if err != nil {
			return gen.Pair{}, err
		}

		if tok.kind == rustKindRParen {
			break
		}

		if !isStringToken(tok) {
			return gen.Pair{}, tok.errorf("tuple element is not a string literal: found %s", describeToken(tok))
		}

		s, err := unquoteRust(tok.text)
		if err != nil {
			return gen.Pair{}, tok.errorf("%v", err)
		}

		elems = append(elems, s)

		sep, err := l.next()
		if err != nil {
			return gen.Pair{}, err
		}

		if sep.kind == rustKindRParen {
			break
		}

		if sep.kind != rustKindComma {
			return gen.Pair{}, sep.errorf("expected ',' or ')' in a tuple, found %s", describeToken(sep))
		}
	}

	if len(elems) != 2 {
		return gen.Pair{}, open.errorf("tuple does not have 2 elements (has %d)", len(elems))
	}

	return gen.Pair{From: elems[0], To: elems[1]}, nil
}

func isStringToken(tok *rustToken) bool {
	switch tok.kind {
	case rustKindString, rustKindRawString, rustKindRawHashed:
		return true
	default:
		return false
	}
}

func describeToken(tok *rustToken) string {
	if tok.kind == rustKindEOF {
		return "end of file"
	}

	return fmt.Sprintf("%q", tok.text)
}

// unquoteRust decodes a Rust string literal including its quotes.
// Raw literals (r"...", r#"..."#) are taken verbatim.
func unquoteRust(lit string) (string, error) {
	if strings.HasPrefix(lit, "r") {
		return unquoteRawRust(lit)
	}

	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("malformed string literal %s", lit)
	}

	body := lit[1 : len(lit)-1]
	if !strings.Contains(body, `\`) {
		return body, nil
	}

	var b strings.Builder

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(body) {
			return "", fmt.Errorf("unterminated escape in %s", lit)
		}

		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case '\\', '\'', '"':
			b.WriteByte(body[i])
		case '\n', '\r':
			// Line continuation: the line break and the indentation after it are dropped.
			if body[i] == '\r' && (i+1 >= len(body) || body[i+1] != '\n') {
				return "", fmt.Errorf("bare carriage return after \\ in %s", lit)
			}

			for i+1 < len(body) && strings.IndexByte(" \t\n\r", body[i+1]) >= 0 {
				i++
			}
		case 'x':
			if i+2 >= len(body) {
				return "", fmt.Errorf("malformed byte escape in %s", lit)
			}

			v, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil || v > 0x7f {
				return "", fmt.Errorf("malformed byte escape in %s", lit)
			}

			b.WriteByte(byte(v))

			i += 2
		case 'u':
			end := strings.IndexByte(body[i:], '}')
			if i+1 >= len(body) || body[i+1] != '{' || end < 0 {
				return "", fmt.Errorf("malformed unicode escape in %s", lit)
			}

			hex := strings.ReplaceAll(body[i+2:i+end], "_", "")

			cp, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || !utf8.ValidRune(rune(cp)) {
				return "", fmt.Errorf("malformed unicode escape in %s", lit)
			}

			b.WriteRune(rune(cp))

			i += end
		default:
			return "", fmt.Errorf("unknown escape \\%c in %s", body[i], lit)
		}
	}

	return b.String(), nil
}

func unquoteRawRust(lit string) (string, error) {
	hashes := len(lit) - len(strings.TrimLeft(lit[1:], "#")) - 1
	open := "r" + strings.Repeat("#", hashes) + `"`
	closing := `"` + strings.Repeat("#", hashes)

	if len(lit) < len(open)+len(closing) || !strings.HasPrefix(lit, open) || !strings.HasSuffix(lit, closing) {
		return "", fmt.Errorf("malformed raw string literal %s", lit)
	}

	return lit[len(open) : len(lit)-len(closing)], nil
}
