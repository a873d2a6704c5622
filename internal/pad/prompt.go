package pad

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// PromptPassphrase securely prompts for a passphrase on the controlling
// terminal. With confirm set, it prompts twice and verifies both entries
// match (use this when deriving a fresh pad; skip it when decrypting).
// If mask is true, input is read in raw mode with '*' echo; otherwise the
// terminal's hidden input (no echo) is used. Errors never echo the
// passphrase content.
func PromptPassphrase(confirm, mask bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	read := func(prompt string) (string, error) {
		if !mask {
			fmt.Fprint(os.Stderr, "\r"+prompt)
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return "", fmt.Errorf("failed to read passphrase")
			}
			return string(b), nil
		}
		return readMasked(fd, prompt)
	}

	p1, err := read("Enter passphrase: ")
	if err != nil {
		return "", err
	}
	if !confirm {
		return p1, nil
	}

	p2, err := read("Re-enter passphrase: ")
	if err != nil {
		return "", err
	}
	if p1 != p2 {
		return "", fmt.Errorf("passphrases do not match")
	}
	return p1, nil
}

// readMasked reads a line in raw mode, echoing '*' per rune, with signal-safe
// terminal restore on interrupt.
func readMasked(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, "\r"+prompt)

	oldState, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()

	if _, err := term.MakeRaw(fd); err != nil {
		signal.Stop(sigc)
		close(done)
		return "", fmt.Errorf("terminal not ready")
	}
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	var buf []rune
	for {
		var b [1]byte
		n, er := os.Stdin.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := rune(b[0])
		if ch == '\r' || ch == '\n' {
			fmt.Fprintln(os.Stderr)
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				fmt.Fprint(os.Stderr, "\b \b")
			}
			continue
		}
		// Ignore non-printable control characters
		if ch < 0x20 || ch == 0x7f {
			continue
		}
		buf = append(buf, ch)
		fmt.Fprint(os.Stderr, "*")
	}
	return string(buf), nil
}
