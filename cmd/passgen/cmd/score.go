package cmd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [password...]",
		Short: "Rate password strength",
		Long: `Rate the strength of each password on a 0-6 scale.

Without arguments, passwords are read from stdin one per line, which keeps
them out of shell history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				for _, p := range args {
					printScore(cmd.OutOrStdout(), p)
				}
				return nil
			}
			return scoreLines(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func scoreLines(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		printScore(w, scanner.Text())
	}
	return scanner.Err()
}

func printScore(w io.Writer, password string) {
	s := crypto.Score(password)
	fmt.Fprintf(w, "Strength: %d / %d (%s)\n", s, crypto.MaxScore, crypto.Label(s))
}
