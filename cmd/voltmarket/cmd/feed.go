package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/voltmarket/pkg/feed"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func feedCmd() *cobra.Command {
	var (
		kind  string
		query string
		sort  string
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the battery and vehicle feed",
		Long: "Fetch batteries and vehicles from the marketplace backend, normalize\n" +
			"them and print the filtered, sorted feed.",
		Example: `  # Everything, batteries first
  voltmarket feed

  # Vehicles matching a query, cheapest first
  voltmarket feed --kind vehicle --q vinfast --sort price_asc

  # Raw entities as JSON
  voltmarket feed --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var k domain.Kind
			if kind != "" {
				parsed, ok := domain.ParseKind(kind)
				if !ok {
					return fmt.Errorf("unknown kind %q (want battery or vehicle)", kind)
				}
				k = parsed
			}
			mode, ok := feed.ParseSortMode(sort)
			if !ok {
				return fmt.Errorf("unknown sort %q", sort)
			}

			agg, err := newLocalAggregator()
			if err != nil {
				return err
			}

			res := agg.Feed(cmd.Context())
			items := feed.Sort(feed.Filter{Kind: k, Query: query}.Apply(res.Items), mode)

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, map[string]any{
					"items":  items,
					"total":  len(items),
					"errors": res.Errors,
				})
			}

			if len(items) == 0 {
				fmt.Fprintln(out, "No items found.")
				return printSourceErrors(cmd.ErrOrStderr(), res.Errors)
			}
			fmt.Fprintf(out, "Showing %d items\n\n", len(items))
			if err := printEntitiesTable(out, items); err != nil {
				return err
			}
			return printSourceErrors(cmd.ErrOrStderr(), res.Errors)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only show battery or vehicle entities")
	cmd.Flags().StringVar(&query, "q", "", "case-insensitive text filter over title and specs")
	cmd.Flags().StringVar(&sort, "sort", "", "sort mode (relevance, price_asc, price_desc, rating)")

	return cmd
}
