package main

import (
	"log/slog"

	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
)

func newEncryptCmd() *cobra.Command {
	var kf keyFlags
	var verify bool

	cmd := &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Normalize, encode, and encrypt a message",
		Long: `Encrypt normalizes the message into the fixed letter alphabet, encodes it
as numeric codes, and adds the pad mod 100. The message comes from the
arguments or from stdin.

Without --key, --key-file, or --passphrase, a fresh random pad is generated
(message length plus the configured margin) and printed before the cipher;
record it, the pad is never stored.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := activeCfg

			text, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			codes := pad.Encode(pad.Normalize(text))
			slog.Debug("message encoded", "codeDigits", len(codes))

			key, err := resolveKey(cfg, kf, len(codes), true)
			if err != nil {
				return err
			}
			generated := false
			if key == nil {
				key, err = pad.GenerateKey(len(codes) + cfg.Key.Margin)
				if err != nil {
					return err
				}
				generated = true
			}

			var cipher []int
			if verify {
				cipher, err = pad.EncryptMessageVerified(text, key)
			} else {
				cipher, err = pad.Encrypt(codes, key)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if generated {
				if err := printSequence(out, "Key:", key, cfg); err != nil {
					return err
				}
			}
			return printSequence(out, "Cipher:", cipher, cfg)
		},
	}

	registerKeyFlags(cmd, &kf)
	cmd.Flags().BoolVar(&verify, "verify", true, "Verify the encrypt/decrypt round trip before printing")
	return cmd
}
