package keycode

// jisSymbols maps ASCII punctuation to the key a JIS keyboard types it with.
var jisSymbols = map[string]string{
	"-": "hyphen",
	",": "comma",
	".": "period",
	"/": "slash",
	"=": "equal_sign",
	"@": "open_bracket",
	"[": "close_bracket",
	"]": "backslash",
	";": "semicolon",
	":": "quote",
	"_": "international1",
}

// LookupJIS returns the key code for a JIS punctuation symbol.
func LookupJIS(symbol string) (string, bool) {
	kc, ok := jisSymbols[symbol]
	return kc, ok
}

func jisOrLiteral(symbol string) string {
	if kc, ok := LookupJIS(symbol); ok {
		return kc
	}

	return symbol
}
