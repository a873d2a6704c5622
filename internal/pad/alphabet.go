package pad

// Package pad implements the fixed numeric alphabet shared by both ends of a
// one-time-pad exchange.
//
// Layout
// - Latin letters A..Z take codes 1..26 (primary alphabet).
// - Cyrillic letters А..Я (33 letters, Ё included) take codes 27..59.
// - Code 0 is reserved as the inter-word separator.
// - Codes above 59 are not assigned; decoding renders them as Placeholder.
//
// Digits and punctuation never receive codes of their own. The normalizer
// spells them out as letter words (7 → SEVEN, "," → COMMA) before encoding,
// so the wire format only ever carries letter codes and separators.
//
// All tables below are built once and must be treated as read-only.

const (
	// SeparatorCode marks a word boundary inside a code sequence.
	SeparatorCode = 0
	// Modulus is the cipher arithmetic modulus; every key and cipher digit
	// lies in [0, Modulus).
	Modulus = 100
	// Terminator is the token appended to every normalized message.
	Terminator = "XX"
	// Placeholder is emitted when decoding a code outside the alphabet.
	Placeholder = '?'
)

// Latin is the primary alphabet, codes 1..26.
var Latin = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Cyrillic is the secondary alphabet, codes 27..59.
var Cyrillic = []rune("АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ")

// MaxLetterCode is the highest assigned letter code.
var MaxLetterCode = len(Latin) + len(Cyrillic)

// DigitWords spells out the decimal digits; the normalizer expands each
// digit of a number into its own word.
var DigitWords = [10]string{
	"ZERO", "ONE", "TWO", "THREE", "FOUR",
	"FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
}

// Punctuation maps the recognized punctuation marks to their word
// substitutions. The period maps to the single letter X, which is why the
// Terminator reads as a double period on the wire. Characters absent from
// this table are dropped during normalization.
var Punctuation = map[rune]string{
	'.': "X",
	',': "COMMA",
	'!': "EXCLAMATION",
	'?': "QUESTION",
	'-': "DASH",
	':': "COLON",
	';': "SEMICOLON",
}

// codes maps every uppercase letter of both alphabets to its numeric code.
// Latin is registered first; the two alphabets share no runes, so the
// first-alphabet-wins rule never actually triggers.
var codes = func() map[rune]int {
	m := make(map[rune]int, len(Latin)+len(Cyrillic))
	for i, r := range Latin {
		m[r] = i + 1
	}
	for i, r := range Cyrillic {
		if _, taken := m[r]; taken {
			continue
		}
		m[r] = len(Latin) + i + 1
	}
	return m
}()

// CodeOf returns the numeric code of an uppercase letter.
// Returns (0, false) for runes outside both alphabets.
func CodeOf(r rune) (int, bool) {
	c, ok := codes[r]
	return c, ok
}

// LetterOf is the inverse of CodeOf. Returns (0, false) for the separator
// code and anything outside [1, MaxLetterCode].
func LetterOf(code int) (rune, bool) {
	switch {
	case code >= 1 && code <= len(Latin):
		return Latin[code-1], true
	case code > len(Latin) && code <= MaxLetterCode:
		return Cyrillic[code-len(Latin)-1], true
	default:
		return 0, false
	}
}
