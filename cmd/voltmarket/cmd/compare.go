package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/voltmarket/pkg/feed"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func compareCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "compare ID ID [ID...]",
		Short: "Compare entities side by side",
		Long: "Look up two or more entities of the same kind and print one row per\n" +
			"tracked field with a formatted cell per entity.",
		Example: `  # Compare two batteries
  voltmarket compare b1 b2 --kind battery

  # Look the IDs up across the whole feed
  voltmarket compare v1 v2 v3`,
		Args: cobra.MinimumNArgs(feed.MinSelection),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := newLocalAggregator()
			if err != nil {
				return err
			}

			var items []domain.Entity
			if kind != "" {
				k, ok := domain.ParseKind(kind)
				if !ok {
					return fmt.Errorf("unknown kind %q (want battery or vehicle)", kind)
				}
				var srcErr error
				items, srcErr = available(cmd, agg, k)
				if srcErr != nil {
					return srcErr
				}
			} else {
				items = agg.Feed(cmd.Context()).Items
			}

			selection, err := feed.Select(items, args)
			if err != nil {
				return err
			}
			table, err := feed.Compare(selection)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), table)
			}
			return printCompareTable(cmd.OutOrStdout(), &table)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "restrict the lookup to battery or vehicle entities")

	return cmd
}
