package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SaffiDev/OnetimeNotepad/internal/config"
	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
)

// keyFlags holds the pad-sourcing flags shared by encrypt, decrypt, and
// keygen.
type keyFlags struct {
	key        string
	keyFile    string
	passphrase bool
	mask       bool
}

func registerKeyFlags(cmd *cobra.Command, kf *keyFlags) {
	cmd.Flags().StringVar(&kf.key, "key", "", `Pad digits as formatted text ("07 42 19 ...")`)
	cmd.Flags().StringVar(&kf.keyFile, "key-file", "", "Read pad digits from a file")
	cmd.Flags().BoolVar(&kf.passphrase, "passphrase", false, "Derive the pad from a passphrase (prompted, hidden)")
	cmd.Flags().BoolVar(&kf.mask, "mask", true, "With --passphrase, show * while typing (use --mask=false to disable)")
}

// resolveKey produces a pad from the first configured source: inline digits,
// a key file, or a derived passphrase. It returns nil without error when no
// source was given, leaving the fallback (generate or fail) to the caller.
// confirm controls double-entry passphrase prompting.
func resolveKey(cfg config.Config, kf keyFlags, needed int, confirm bool) ([]int, error) {
	switch {
	case strings.TrimSpace(kf.key) != "":
		seq, err := pad.Parse(kf.key)
		if err != nil {
			return nil, fmt.Errorf("--key: %w", err)
		}
		return seq, nil

	case kf.keyFile != "":
		b, err := os.ReadFile(kf.keyFile)
		if err != nil {
			return nil, fmt.Errorf("read --key-file: %w", err)
		}
		seq, err := pad.Parse(string(b))
		if err != nil {
			return nil, fmt.Errorf("--key-file: %w", err)
		}
		return seq, nil

	case kf.passphrase:
		pass, err := pad.PromptPassphrase(confirm, kf.mask)
		if err != nil {
			return nil, err
		}
		seq, err := pad.DeriveKey(pass, needed, derivePolicy(cfg))
		if err != nil {
			return nil, err
		}
		return seq, nil
	}
	return nil, nil
}

func derivePolicy(cfg config.Config) pad.DerivePolicy {
	policy := pad.DefaultDerivePolicy()
	policy.MemMB = cfg.Key.KDFMemMB
	policy.Time = cfg.Key.KDFTime
	policy.Parallel = cfg.Key.KDFParallel
	policy.AllowWeak = cfg.Key.AllowWeak
	return policy
}

// readInput returns the joined arguments, or the whole of stdin when no
// arguments were given.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
