package main

import (
	"fmt"

	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
)

func newSelfTestCmd() *cobra.Command {
	var rounds int

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run randomized encrypt/decrypt round-trip checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rounds <= 0 {
				return fmt.Errorf("--rounds must be positive, got %d", rounds)
			}
			if failed := pad.RunSelfTest(cmd.OutOrStdout(), rounds); failed > 0 {
				return fmt.Errorf("%d of %d rounds failed", failed, rounds)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 4, "Number of randomized round-trip checks")
	return cmd
}
