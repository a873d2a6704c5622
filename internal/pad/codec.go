package pad

import "strings"

// Encode maps a normalized token stream to its numeric code sequence.
// Each letter becomes its alphabet code; a single SeparatorCode is inserted
// between tokens (never after the last). Runes without a code are skipped
// without error, mirroring the normalizer's silent-drop policy.
func Encode(normalized string) []int {
	words := strings.Fields(normalized)
	out := make([]int, 0, len(normalized))
	for i, word := range words {
		if i > 0 {
			out = append(out, SeparatorCode)
		}
		for _, r := range word {
			if c, ok := CodeOf(r); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// Decode renders a code sequence back into a letter stream. SeparatorCode
// becomes a space and unassigned codes become Placeholder; decoding is
// best-effort and never fails.
func Decode(codes []int) string {
	var b strings.Builder
	b.Grow(len(codes))
	for _, c := range codes {
		if c == SeparatorCode {
			b.WriteRune(' ')
			continue
		}
		if r, ok := LetterOf(c); ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(Placeholder)
	}
	return b.String()
}
