package main

import (
	"fmt"
	"log/slog"

	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
)

func newDecryptCmd() *cobra.Command {
	var kf keyFlags

	cmd := &cobra.Command{
		Use:   "decrypt [cipher digits]",
		Short: "Decrypt a digit sequence and decode the recovered text",
		Long: `Decrypt subtracts the pad mod 100 from the cipher digits and decodes the
result back into letters, with word boundaries restored from the separator
code. The cipher digits come from the arguments or from stdin.

A pad is required: pass it with --key or --key-file, or re-derive it from
the shared passphrase with --passphrase.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := activeCfg

			raw, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			cipher, err := pad.Parse(raw)
			if err != nil {
				return err
			}
			slog.Debug("ciphertext parsed", "cipherDigits", len(cipher))

			key, err := resolveKey(cfg, kf, len(cipher), false)
			if err != nil {
				return err
			}
			if key == nil {
				return fmt.Errorf("no key provided (use --key, --key-file, or --passphrase)")
			}

			text, err := pad.DecryptMessage(cipher, key)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	registerKeyFlags(cmd, &kf)
	return cmd
}
