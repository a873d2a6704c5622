package pad

import "strings"

// Normalize converts free-form text into the canonical token stream the coder
// accepts: uppercase letter words, spelled-out digits, and punctuation words,
// joined by single spaces and closed by the Terminator token.
//
// Behavior:
//  1. Split the input on whitespace, discarding empty fragments.
//  2. Within each word, letters of either alphabet form one uppercased token
//     per maximal run; each decimal digit becomes its own spelled-out word;
//     recognized punctuation becomes its word token; anything else is
//     silently dropped.
//  3. Append the Terminator unless the result already ends with it.
//
// Blank or whitespace-only input normalizes to exactly the Terminator, so the
// output is never empty. Dropping unclassifiable characters is deliberate and
// must not be upgraded to an error.
func Normalize(text string) string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		runes := []rune(strings.ToUpper(word))
		for i := 0; i < len(runes); {
			r := runes[i]
			switch {
			case r >= '0' && r <= '9':
				tokens = append(tokens, DigitWords[r-'0'])
				i++
			case isLetter(r):
				j := i + 1
				for j < len(runes) && isLetter(runes[j]) {
					j++
				}
				tokens = append(tokens, string(runes[i:j]))
				i = j
			default:
				if w, ok := Punctuation[r]; ok {
					tokens = append(tokens, w)
				}
				i++
			}
		}
	}

	out := strings.Join(tokens, " ")
	if out == "" {
		return Terminator
	}
	if !strings.HasSuffix(out, Terminator) {
		out += " " + Terminator
	}
	return out
}

func isLetter(r rune) bool {
	_, ok := codes[r]
	return ok
}
