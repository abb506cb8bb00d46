package mapping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRust(t *testing.T) {
	src := `// Layout table.
use std::collections::HashMap;

/* the generator only reads MAPPINGS; the rest of the file
   just has to tokenize */
#[allow(dead_code)]
pub const LAYOUT_NAME: &'static str = "custom";

pub const MAPPINGS: &[(&str, &str)] = &[
    ("q", "."),      // punctuation
    ("w", "か"),
    ("simul(j,k)", "escape"),
    ("'", "\"quoted\""),
    ("e", "\u{3042}"),
    ("\\", "\x41"),
    ("r", "ー",),
];

fn main() {
    let c = 'x';
    let _m: HashMap<u8, u8> = HashMap::new();
    println!("{}", c);
}
`

	mf, err := ParseRust([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "1", mf.Version)
	assert.Equal(t, PairList{
		{From: "q", To: "."},
		{From: "w", To: "か"},
		{From: "simul(j,k)", To: "escape"},
		{From: "'", To: `"quoted"`},
		{From: "e", To: "あ"},
		{From: `\`, To: "A"},
		{From: "r", To: "ー"},
	}, mf.Mappings)
}

func TestParseRustStringForms(t *testing.T) {
	src := `const MAPPINGS: &[(&str, &str)] = &[
    (r"\", "backslash"),
    (r#"""#, r#"say "hi""#),
    ("a", "ka\
        na"),
    (r"", "empty"),
];`

	mf, err := ParseRust([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, PairList{
		{From: `\`, To: "backslash"},
		{From: `"`, To: `say "hi"`},
		{From: "a", To: "kana"},
		{From: "", To: "empty"},
	}, mf.Mappings)
}

func TestParseRustEmptyTable(t *testing.T) {
	mf, err := ParseRust([]byte(`const MAPPINGS: &[(&str, &str)] = &[];`))
	require.NoError(t, err)
	assert.NotNil(t, mf.Mappings)
	assert.Empty(t, mf.Mappings)
}

func TestParseRustErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{
			name: "no const",
			src:  `fn main() {}`,
			msg:  "'MAPPINGS' constant not found",
		},
		{
			name: "other name",
			src:  `const MAPPING: &[(&str, &str)] = &[("a", "b")];`,
			msg:  "'MAPPINGS' constant not found",
		},
		{
			name: "not a reference",
			src:  `const MAPPINGS: Vec<(&str, &str)> = vec![("a", "b")];`,
			msg:  `1:37: expected '&' before the MAPPINGS array, found "vec"`,
		},
		{
			name: "element not a tuple",
			src:  `const MAPPINGS: &[&str] = &["a"];`,
			msg:  "array element is not a tuple",
		},
		{
			name: "tuple arity",
			src:  "const MAPPINGS: &[(&str, &str)] = &[\n    (\"a\", \"b\", \"c\"),\n];",
			msg:  "2:5: tuple does not have 2 elements (has 3)",
		},
		{
			name: "non-string element",
			src:  `const MAPPINGS: &[(&str, u8)] = &[("a", 1)];`,
			msg:  "tuple element is not a string literal",
		},
		{
			name: "missing semicolon",
			src:  `const MAPPINGS: &[(&str, &str)] = &[("a", "b")]`,
			msg:  "expected ';' after the MAPPINGS array, found end of file",
		},
		{
			name: "unterminated array",
			src:  `const MAPPINGS: &[(&str, &str)] = &[("a", "b") ("c", "d")];`,
			msg:  "expected ',' or ']' after a tuple",
		},
		{
			name: "bad escape",
			src:  `const MAPPINGS: &[(&str, &str)] = &[("a", "\q")];`,
			msg:  `unknown escape \q`,
		},
		{
			name: "raw string hash mismatch",
			src:  `const MAPPINGS: &[(&str, &str)] = &[(r#"a"##, "b")];`,
			msg:  "malformed raw string literal",
		},
		{
			name: "invalid code point",
			src:  `const MAPPINGS: &[(&str, &str)] = &[("a", "\u{D800}")];`,
			msg:  "malformed unicode escape",
		},
		{
			name: "no value",
			src:  `const MAPPINGS: &[(&str, &str)];`,
			msg:  "'MAPPINGS' constant has no value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRust([]byte(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), err.Error())
			assert.Contains(t, err.Error(), tt.msg)

			var synErr *SyntaxError
			assert.True(t, errors.As(err, &synErr))
		})
	}
}

func TestUnquoteRust(t *testing.T) {
	tests := []struct {
		lit      string
		expected string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\nb\tc\r"`, "a\nb\tc\r"},
		{`"\\"`, `\`},
		{`"\'\""`, `'"`},
		{`"\u{3042}\u{30_FC}"`, "あー"},
		{`"\x7e"`, "~"},
		{`"\0"`, "\x00"},
		{"\"a\\\n   b\"", "ab"},
		{"\"a\\\r\n\tb\"", "ab"},
		{`r"\n"`, `\n`},
		{`r""`, ""},
		{`r#"a"b"#`, `a"b`},
		{`r##"x"##`, "x"},
	}

	for _, tt := range tests {
		got, err := unquoteRust(tt.lit)
		require.NoError(t, err, tt.lit)
		assert.Equal(t, tt.expected, got, tt.lit)
	}

	for _, bad := range []string{`"`, `abc`, `"\"`, `"\u{zz}"`, `"\u{D800}"`, `"\u{110000}"`, `"\xff"`, `"\x4"`, "\"\\\r\"", `r#"a"`, `r"`} {
		_, err := unquoteRust(bad)
		assert.Error(t, err, bad)
	}
}
