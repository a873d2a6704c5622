package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newTableCmd() *cobra.Command {
	var pager bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the full symbol/code table and substitution words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outIsTTY := term.IsTerminal(int(syscall.Stdout))
			inIsTTY := term.IsTerminal(int(syscall.Stdin))
			paginate := pager && outIsTTY && inIsTTY
			_, height, _ := term.GetSize(int(syscall.Stdout))
			if height <= 0 {
				height = 24
			}

			out := cmd.OutOrStdout()
			header := func() int {
				fmt.Fprintln(out, pad.Style("Code table (00 separates words)", pad.Bold, pad.Blue))
				fmt.Fprintf(out, "%-5s %s\n", "Code", "Symbol")
				fmt.Fprintln(out, strings.Repeat("─", 16))
				return 3
			}
			printed := header()

			for c := 1; c <= pad.MaxLetterCode; c++ {
				r, _ := pad.LetterOf(c)
				fmt.Fprintf(out, "%02d    %c\n", c, r)
				printed++
				if paginate && printed >= height-1 {
					fmt.Fprint(os.Stderr, "-- more -- (Enter to continue, q to quit) ")
					var buf [1]byte
					_, er := os.Stdin.Read(buf[:])
					fmt.Fprintln(os.Stderr)
					if er == nil && (buf[0] == 'q' || buf[0] == 'Q') {
						return nil
					}
					printed = header()
				}
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, pad.Style("Digit words:", pad.Bold, pad.Blue))
			for d, w := range pad.DigitWords {
				fmt.Fprintf(out, "%d → %s\n", d, w)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, pad.Style("Punctuation words:", pad.Bold, pad.Blue))
			for _, mark := range []rune{'.', ',', '!', '?', '-', ':', ';'} {
				fmt.Fprintf(out, "%c → %s\n", mark, pad.Punctuation[mark])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pager, "pager", true, "Paginate output when writing to a TTY (press Enter per page); --pager=false to disable")
	return cmd
}
