package pad

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// RunSelfTest exercises the full pipeline with randomized messages: for each
// round it assembles a message from both alphabets, digits, and punctuation,
// generates a fresh pad, and verifies the encrypt/decrypt round trip. Each
// round's verdict is written to out; the return value is the number of
// failed rounds.
//
// Randomness here only shapes the test messages; the pads themselves still
// come from GenerateKey.
func RunSelfTest(out io.Writer, rounds int) int {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	symbols := make([]rune, 0, MaxLetterCode+len(Punctuation)+10)
	symbols = append(symbols, Latin...)
	symbols = append(symbols, Cyrillic...)
	for p := range Punctuation {
		symbols = append(symbols, p)
	}
	for d := '0'; d <= '9'; d++ {
		symbols = append(symbols, d)
	}

	failed := 0
	for round := 1; round <= rounds; round++ {
		var msg strings.Builder
		words := 2 + r.Intn(6)
		for w := 0; w < words; w++ {
			if w > 0 {
				msg.WriteByte(' ')
			}
			length := 1 + r.Intn(8)
			for i := 0; i < length; i++ {
				msg.WriteRune(symbols[r.Intn(len(symbols))])
			}
		}

		text := msg.String()
		codes := Encode(Normalize(text))
		key, err := GenerateKey(len(codes))
		if err != nil {
			fmt.Fprintf(out, "Round %d: %s (%v)\n", round, Style("FAILED", Bold, Red), err)
			failed++
			continue
		}

		if err := VerifyRoundTrip(text, key); err != nil {
			fmt.Fprintf(out, "Round %d: %s (%v)\n", round, Style("FAILED", Bold, Red), err)
			failed++
			continue
		}
		fmt.Fprintf(out, "Round %d: %s (%d code digits)\n", round, Style("PASSED", Bold), len(codes))
	}

	fmt.Fprintf(out, "%s %d, %s %d\n",
		Style("Total rounds:", Bold), rounds,
		Style("Failed:", Bold), failed)
	return failed
}
