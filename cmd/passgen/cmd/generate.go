package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/session"
)

const maxCount = 1000

type generateOptions struct {
	length  int
	exclude string
	count   int
	copy    bool
	plain   bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate passwords",
		Long: `Generate one or more passwords.

With --copy the last password is written to the system clipboard.
A clipboard failure is reported but does not fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyDefaults(cmd, opts, root)
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", 12, "Password length (8-32)")
	cmd.Flags().StringVarP(&opts.exclude, "exclude", "x", "", "Characters to exclude")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of passwords to generate")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the last password to the clipboard")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print only the passwords, one per line")

	return cmd
}

// applyDefaults fills every flag the user did not set from the defaults file.
func applyDefaults(cmd *cobra.Command, opts *generateOptions, root *rootOptions) {
	d := root.defaults
	if !cmd.Flags().Changed("length") && d.Length != 0 {
		opts.length = d.Length
	}
	if !cmd.Flags().Changed("exclude") {
		opts.exclude = d.Exclude
	}
	if !cmd.Flags().Changed("count") && d.Count != 0 {
		opts.count = d.Count
	}
	if !cmd.Flags().Changed("copy") {
		opts.copy = d.Copy
	}
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if opts.count < 1 || opts.count > maxCount {
		return fmt.Errorf("count must be between 1 and %d", maxCount)
	}

	s := session.New(nil, newClipboard())
	if err := s.SetLength(opts.length); err != nil {
		return err
	}
	s.SetExcluded(opts.exclude)

	results := make([]session.State, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		if err := s.Generate(); err != nil {
			return err
		}
		results = append(results, s.Snapshot())
	}
	slog.Debug("passwords generated", "count", opts.count, "length", opts.length, "excluded", len(opts.exclude))

	out := cmd.OutOrStdout()
	if opts.plain {
		for _, r := range results {
			fmt.Fprintln(out, r.Password)
		}
	} else {
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Password", "Strength", "Rating"})
		for i, r := range results {
			t.AppendRow(table.Row{i + 1, r.Password, fmt.Sprintf("%d/%d", r.Strength, crypto.MaxScore), r.Label()})
		}
		t.Render()
	}

	if opts.copy {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := s.Copy(ctx); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: copy failed: %v\n", err)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
		}
	}
	return nil
}
