package pad

import "strings"

// ANSI styling helpers for the CLI layer.
//
// - Enable or disable color globally via SetColorEnabled(true/false).
// - Wrap text with Style("text", Bold, Blue) to apply codes when enabled.
// - When disabled, Style returns the input unchanged.

// Default: colors enabled. Override via SetColorEnabled.
var colorEnabled = true

// ANSI escape codes (Tokyo Night–inspired palette).
const (
	Reset  = "\x1b[0m"
	Bold   = "\x1b[1m"
	Blue   = "\x1b[38;2;122;162;247m"
	Cyan   = "\x1b[38;2;42;195;222m"
	Purple = "\x1b[38;2;187;154;247m"
	Gray   = "\x1b[38;2;136;146;176m"
	Red    = "\x1b[38;2;247;118;142m"
)

// SetColorEnabled toggles ANSI styling on or off.
func SetColorEnabled(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether ANSI styling is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// Style wraps s with the provided ANSI codes when color is enabled.
// When disabled, returns s unchanged.
func Style(s string, codes ...string) string {
	if !colorEnabled {
		return s
	}
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(c)
	}
	b.WriteString(s)
	b.WriteString(Reset)
	return b.String()
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("OnetimeNotepad — manual one-time-pad cipher - "+version, Bold, Purple)
}
