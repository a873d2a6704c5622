package main

import (
	"fmt"

	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
)

func newNormalizeCmd() *cobra.Command {
	var showCodes bool

	cmd := &cobra.Command{
		Use:   "normalize [text]",
		Short: "Show the canonical token stream for a message",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			normalized := pad.Normalize(text)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, normalized)
			if showCodes {
				fmt.Fprintln(out, formatGrouped(pad.Encode(normalized), activeCfg.Output.Groups))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCodes, "codes", false, "Also print the numeric code sequence")
	return cmd
}
