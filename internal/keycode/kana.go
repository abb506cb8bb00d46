package keycode

// hiraganaRomaji spells every hiragana input unit the way it is typed on a
// romaji IME. Multi-kana entries (digraphs, loanword combinations) are whole
// units: a mapping's to-symbol is looked up as one key.
var hiraganaRomaji = map[string]string{
	// vowels
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",

	// k, s, t, n, h, m, y, r, w
	"か": "ka", "き": "ki", "く": "ku", "け": "ke", "こ": "ko",
	"さ": "sa", "し": "si", "す": "su", "せ": "se", "そ": "so",
	"た": "ta", "ち": "ti", "つ": "tu", "て": "te", "と": "to",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ひ": "hi", "ふ": "hu", "へ": "he", "ほ": "ho",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "ゐ": "wyi", "ゑ": "wye", "を": "wo",
	"ん": "nn",

	// voiced and semi-voiced
	"が": "ga", "ぎ": "gi", "ぐ": "gu", "げ": "ge", "ご": "go",
	"ざ": "za", "じ": "zi", "ず": "zu", "ぜ": "ze", "ぞ": "zo",
	"だ": "da", "ぢ": "di", "づ": "du", "で": "de", "ど": "do",
	"ば": "ba", "び": "bi", "ぶ": "bu", "べ": "be", "ぼ": "bo",
	"ぱ": "pa", "ぴ": "pi", "ぷ": "pu", "ぺ": "pe", "ぽ": "po",
	"ゔ": "vu",

	// small kana
	"ぁ": "xa", "ぃ": "xi", "ぅ": "xu", "ぇ": "xe", "ぉ": "xo",
	"ゃ": "xya", "ゅ": "xyu", "ょ": "xyo", "ゎ": "xwa",
	"っ": "xtu",

	// digraphs
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sya", "しゅ": "syu", "しょ": "syo",
	"ちゃ": "tya", "ちゅ": "tyu", "ちょ": "tyo",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "zya", "じゅ": "zyu", "じょ": "zyo",
	"ぢゃ": "dya", "ぢゅ": "dyu", "ぢょ": "dyo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",

	// loanword combinations
	"いぇ": "ye",
	"うぃ": "wi", "うぇ": "we", "うぉ": "who",
	"ゔぁ": "va", "ゔぃ": "vi", "ゔぇ": "ve", "ゔぉ": "vo",
	"きぇ": "kye", "ぎぇ": "gye",
	"くぁ": "qa", "くぃ": "qi", "くぇ": "qe", "くぉ": "qo",
	"ぐぁ": "gwa",
	"しぇ": "sye", "じぇ": "zye",
	"ちぇ": "tye",
	"つぁ": "tsa", "つぃ": "tsi", "つぇ": "tse", "つぉ": "tso",
	"てぃ": "thi", "てゅ": "thu",
	"でぃ": "dhi", "でゅ": "dhu",
	"とぅ": "twu", "どぅ": "dwu",
	"にぇ": "nye", "ひぇ": "hye",
	"ふぁ": "fa", "ふぃ": "fi", "ふぇ": "fe", "ふぉ": "fo", "ふゅ": "fyu",
	"みぇ": "mye", "りぇ": "rye",
	"びぇ": "bye", "ぴぇ": "pye",

	// marks and punctuation
	"ー": "-",
	"、": ",",
	"。": ".",
	"・": "/",
	"「": "[",
	"」": "]",
}

// Romaji returns the romaji spelling of a hiragana unit.
func Romaji(symbol string) (string, bool) {
	r, ok := hiraganaRomaji[symbol]
	return r, ok
}
