package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/session"
)

// newClipboard is swapped out in tests.
var newClipboard = func() session.Clipboard { return session.SystemClipboard{} }

type rootOptions struct {
	cfgFile  string
	verbose  bool
	defaults config.Defaults
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "passgen",
		Short: "Strong password generator",
		Long: `passgen generates random passwords from lowercase and uppercase letters,
digits and symbols, minus any characters you exclude, and rates their strength
on a 0-6 scale.

Commands:
  generate  - print one or more passwords
  score     - rate existing passwords
  tui       - interactive generator`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			path := config.DefaultsPath(opts.cfgFile)
			d, err := config.LoadDefaults(path)
			if err != nil {
				return err
			}
			slog.Debug("defaults loaded", "path", path, "length", d.Length, "count", d.Count)
			opts.defaults = d
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "YAML defaults file (default: $PASSGEN_CONFIG)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		newGenerateCmd(opts),
		newScoreCmd(),
		newTUICmd(opts),
	)
	return root
}

// Execute runs the passgen command line.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printError(root, err)
		return err
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
}

func init() {
	// Keep library logging quiet until the root command configures it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
}
