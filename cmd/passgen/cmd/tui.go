package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/vaultpass/passgen-go/internal/session"
	"github.com/vaultpass/passgen-go/internal/tui"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive generator",
		Long: `Start the interactive password generator.

Keys:
  g, Enter   - generate a new password
  c          - copy the password to the clipboard
  Left/Right - change the length
  Tab        - edit excluded characters
  q, Ctrl+C  - quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(root)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(tui.NewModel(s), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// newSession starts a session from the loaded defaults.
func newSession(root *rootOptions) (*session.Session, error) {
	s := session.New(nil, newClipboard())
	if root.defaults.Length != 0 {
		if err := s.SetLength(root.defaults.Length); err != nil {
			return nil, err
		}
	}
	s.SetExcluded(root.defaults.Exclude)
	return s, nil
}
