package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/atlasd/internal/client"
	"github.com/rshade/atlasd/internal/tui"
)

// newCountriesCmd creates the countries command group: non-interactive
// queries against a running atlasd API, for scripts and quick checks.
func newCountriesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "countries", Short: "Query the country directory"}
	cmd.PersistentFlags().String("api", "", "atlasd API base URL (overrides config)")
	cmd.PersistentFlags().Bool("json", false, "emit raw JSON instead of formatted text")
	cmd.AddCommand(newCountriesListCmd(), newCountriesShowCmd())
	return cmd
}

// apiClientFromFlags builds the API client from the command's flags and the
// loaded config.
func apiClientFromFlags(cmd *cobra.Command) *client.Client {
	cfg := configFromContext(cmd.Context())
	baseURL, _ := cmd.Flags().GetString("api")
	if baseURL == "" {
		baseURL = cfg.Client.BaseURL
	}
	return client.New(baseURL, cfg.Client.Timeout)
}

func newCountriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every country in dataset order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api := apiClientFromFlags(cmd)

			records, err := api.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd, records)
			}

			for _, rec := range records {
				cmd.Println(tui.RecordSummary(rec))
			}
			cmd.Println()
			cmd.Printf("%d countries\n", len(records))
			return nil
		},
	}
}

func newCountriesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE",
		Short: "Show one country with its borders expanded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := apiClientFromFlags(cmd)

			expanded, err := api.GetExpanded(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd, expanded)
			}

			cmd.Printf("%s (%s)\n", expanded.Name, expanded.CCA3)
			if expanded.OfficialName != "" {
				cmd.Printf("  Official name: %s\n", expanded.OfficialName)
			}
			if expanded.Capital != "" {
				cmd.Printf("  Capital:       %s\n", expanded.Capital)
			}
			if expanded.Region != "" {
				cmd.Printf("  Region:        %s\n", expanded.Region)
			}
			cmd.Printf("  Area:          %.0f km²\n", expanded.Area)

			if len(expanded.BorderCountries) == 0 {
				cmd.Println("  Borders:       none")
				return nil
			}
			cmd.Println("  Borders:")
			for _, border := range expanded.BorderCountries {
				cmd.Printf("    %s (%s), capital %s\n", border.Name, border.CCA3, border.Capital)
			}
			return nil
		},
	}
}

// writeJSON prints v as indented JSON on the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
