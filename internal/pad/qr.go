package pad

import (
	"fmt"
	"strings"

	"rsc.io/qr"
)

// RenderQR encodes text (typically a Format output) as a QR code and returns
// an ANSI half-block rendering suitable for a terminal. Two rows of modules
// share one text line via the upper-half-block rune, and a quiet zone of two
// modules surrounds the symbol.
func RenderQR(text string) (string, error) {
	code, err := qr.Encode(text, qr.L)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}

	const quiet = 2
	var b strings.Builder
	for y := -quiet; y < code.Size+quiet; y += 2 {
		for x := -quiet; x < code.Size+quiet; x++ {
			top := code.Black(x, y)
			bottom := code.Black(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
