package main

import (
	"fmt"
	"io"

	"github.com/SaffiDev/OnetimeNotepad/internal/config"
	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
)

// formatGrouped renders a digit sequence with at most groups two-digit pairs
// per line. groups <= 0 keeps the whole sequence on one line.
func formatGrouped(seq []int, groups int) string {
	if groups <= 0 || len(seq) <= groups {
		return pad.Format(seq)
	}
	out := ""
	for start := 0; start < len(seq); start += groups {
		if start > 0 {
			out += "\n"
		}
		out += pad.Format(seq[start:min(start+groups, len(seq))])
	}
	return out
}

// printSequence writes a labeled digit sequence, followed by a QR rendering
// when enabled.
func printSequence(w io.Writer, label string, seq []int, cfg config.Config) error {
	fmt.Fprintln(w, pad.Style(label, pad.Bold, pad.Blue))
	fmt.Fprintln(w, formatGrouped(seq, cfg.Output.Groups))
	if cfg.Output.QR {
		code, err := pad.RenderQR(pad.Format(seq))
		if err != nil {
			return err
		}
		fmt.Fprint(w, code)
	}
	return nil
}
