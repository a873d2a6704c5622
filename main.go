// OnetimeNotepad — a manual one-time-pad cipher over a mixed Latin/Cyrillic
// numeric alphabet.
//
// Scheme:
// - Text is normalized into uppercase tokens: letter runs, spelled-out
//   digits (7 → SEVEN), and punctuation words (, → COMMA), closed by the
//   XX terminator.
// - Each letter maps to a code: A..Z → 1..26, А..Я → 27..59; 0 separates
//   words.
// - Encryption adds a pad digit mod 100 per code; decryption subtracts.
//   Pads come from crypto/rand or are derived from a shared passphrase.
// - Keys and ciphertexts travel as space-separated two-digit groups
//   ("07 42 19"), optionally rendered as a terminal QR code.
package main

import "os"

var version = "dev"

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
