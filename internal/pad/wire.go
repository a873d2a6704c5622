package pad

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned by Parse when the input contains a non-integer token.
var ErrParse = errors.New("malformed digit sequence")

// Format renders a sequence as two zero-padded digits per element, separated
// by single spaces ("07 42 19"). This text form is the sole interchange
// format for keys and ciphertexts and must stay byte-stable across
// implementations.
func Format(seq []int) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprintf("%02d", v)
	}
	return strings.Join(parts, " ")
}

// Parse is the inverse of Format. Any whitespace separates tokens; every
// token must parse as an integer. Blank input yields an empty sequence.
func Parse(s string) ([]int, error) {
	fields := strings.Fields(s)
	seq := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q is not an integer", ErrParse, f)
		}
		seq = append(seq, v)
	}
	return seq, nil
}
