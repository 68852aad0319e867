package cli

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/atlasd/internal/client"
	"github.com/rshade/atlasd/internal/tui"
)

// errNotATerminal is returned when browse is started without a TTY.
var errNotATerminal = errors.New("browse requires an interactive terminal")

// NewBrowseCmd creates the browse command: the interactive country browser
// over a running atlasd API.
func NewBrowseCmd() *cobra.Command {
	var apiBaseURL string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the country directory interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				return errNotATerminal
			}

			cfg := configFromContext(cmd.Context())
			if apiBaseURL == "" {
				apiBaseURL = cfg.Client.BaseURL
			}

			api := client.New(apiBaseURL, cfg.Client.Timeout)
			model := tui.NewBrowseModel(cmd.Context(), api)

			program := tea.NewProgram(model, tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&apiBaseURL, "api", "", "atlasd API base URL (overrides config)")

	return cmd
}
