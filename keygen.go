package main

import (
	"fmt"

	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
)

func newKeygenCmd() *cobra.Command {
	var length int
	var passphrase bool
	var mask bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh pad of the requested length",
		Long: `Keygen prints a pad of uniformly random digits in [0,99] drawn from the
system's secure entropy source. With --passphrase the pad is instead derived
deterministically from a prompted passphrase, so the other party can
reconstruct it from the same phrase.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeCfg
			if length < 0 {
				return fmt.Errorf("--length must be non-negative, got %d", length)
			}

			var key []int
			var err error
			if passphrase {
				pass, perr := pad.PromptPassphrase(true, mask)
				if perr != nil {
					return perr
				}
				key, err = pad.DeriveKey(pass, length, derivePolicy(cfg))
			} else {
				key, err = pad.GenerateKey(length)
			}
			if err != nil {
				return err
			}

			return printSequence(cmd.OutOrStdout(), "Key:", key, cfg)
		},
	}

	cmd.Flags().IntVar(&length, "length", 100, "Number of pad digits to produce")
	cmd.Flags().BoolVar(&passphrase, "passphrase", false, "Derive the pad from a passphrase instead of random entropy")
	cmd.Flags().BoolVar(&mask, "mask", true, "With --passphrase, show * while typing (use --mask=false to disable)")
	return cmd
}
