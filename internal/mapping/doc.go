// Package mapping reads the list of from -> to pairs a layout is generated
// from, and checks it before generation.
//
// Two source formats are supported.
//
// # YAML
//
// The human-edited format. Pairs keep their file order.
//
//	version: "1"
//	description: JIS配列から自作配列への変換
//	title: My layout
//	from_optional_any: true
//	input_source_id: com.apple.inputmethod.Kotoeri.RomajiTyping.Japanese
//	key_codes: [lang]            # extra key codes never typed letter by letter
//	mappings:
//	  - [q, "."]                 # [from, to]
//	  - from: w
//	    to: か
//	  - ["simul(j,k)", escape]
//
// mappings may also be an ordered mapping node:
//
//	mappings:
//	  q: "."
//	  w: か
//
// Punctuation such as "-", ":", "@" or "[" must be quoted in YAML.
//
// # Rust table
//
// Layout tables kept in Rust sources: a const slice of string tuples named
// MAPPINGS anywhere in the file.
//
//	pub const MAPPINGS: &[(&str, &str)] = &[
//	    ("q", "."),
//	    ("w", "か"),
//	];
//
// Only that const is read; the rest of the file just has to tokenize.
//
// # Errors
//
// Failures are wrapped around ErrUnreadable (the source cannot be read) or
// ErrMalformed (it is not in the expected shape); test with errors.Is.
// Validate reports non-fatal findings as diagnostics.
package mapping
