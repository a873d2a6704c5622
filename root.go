package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/SaffiDev/OnetimeNotepad/internal/config"
	"github.com/SaffiDev/OnetimeNotepad/internal/pad"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

var (
	cfgFile   string
	activeCfg config.Config
)

// persistentFlagBinder exposes the root command's persistent flags — the set
// RegisterFlags populated — so subcommand-local flags like --key are not
// bound as config keys.
type persistentFlagBinder struct {
	root *cobra.Command
}

func (b persistentFlagBinder) Flags() *pflag.FlagSet {
	return b.root.PersistentFlags()
}

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "onetimepad",
		Short:   "One-time-pad cipher over a mixed Latin/Cyrillic numeric alphabet",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        persistentFlagBinder{cmd.Root()},
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			pad.SetColorEnabled(loaded.Output.Color && term.IsTerminal(int(syscall.Stdout)))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newEncryptCmd())
	cmd.AddCommand(newDecryptCmd())
	cmd.AddCommand(newKeygenCmd())
	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newTableCmd())
	cmd.AddCommand(newSelfTestCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := parseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
