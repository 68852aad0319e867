package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/atlasd/internal/directory"
)

// newDatasetCmd creates the dataset command group.
func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "dataset", Short: "Dataset maintenance commands"}
	cmd.AddCommand(newDatasetValidateCmd())
	return cmd
}

// newDatasetValidateCmd creates the validate command, which loads a dataset
// file and reports every border code that does not resolve to a record.
// Serving a dataset with dangling references is not an error at runtime
// (expansion skips them), but it means the detail view silently shows fewer
// borders than the raw record claims.
func newDatasetValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a dataset file for dangling border references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := directory.Load(args[0])
			if err != nil {
				return err
			}

			violations := dir.Validate()
			if len(violations) == 0 {
				cmd.Printf("%s: %d countries, all border references resolve\n", args[0], dir.Len())
				return nil
			}

			for _, v := range violations {
				cmd.Printf("%s: border %q does not resolve\n", v.CCA3, v.Border)
			}
			return fmt.Errorf("%d unresolvable border reference(s)", len(violations))
		},
	}
}
