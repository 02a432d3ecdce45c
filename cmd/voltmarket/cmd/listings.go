package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/voltmarket/pkg/feed"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Query marketplace listings",
		Long: "List and inspect the listings stored by the marketplace backend,\n" +
			"normalized the same way the API serves them.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var (
		query string
		sort  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List and search listings",
		Example: `  # Table of every listing
  voltmarket listings list

  # Full sets mentioning a garage, cheapest first
  voltmarket listings list --q garage --sort price_asc

  # As JSON
  voltmarket listings list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, ok := feed.ParseSortMode(sort)
			if !ok {
				return fmt.Errorf("unknown sort %q", sort)
			}

			agg, err := newLocalAggregator()
			if err != nil {
				return err
			}

			res := agg.Listings(cmd.Context())
			if res.Error != nil && len(res.Listings) == 0 {
				return res.Error
			}
			listings := feed.SortListings(feed.FilterListings(res.Listings, query), mode)

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, map[string]any{
					"listings": listings,
					"total":    len(listings),
					"error":    res.Error,
				})
			}
			if len(listings) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}
			fmt.Fprintf(out, "Showing %d listings\n\n", len(listings))
			return printListingsTable(out, listings)
		},
	}

	cmd.Flags().StringVar(&query, "q", "", "case-insensitive text filter over title, description, address, tag and item counts")
	cmd.Flags().StringVar(&sort, "sort", "", "sort mode (relevance, price_asc, price_desc)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one listing with its batteries and vehicles",
		Example: `  # Show a listing and resolve its line items
  voltmarket listings get 6650f1c2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := newLocalAggregator()
			if err != nil {
				return err
			}

			detail, err := agg.ListingDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), map[string]any{
					"listing":   detail.Listing,
					"batteries": detail.Batteries,
					"vehicles":  detail.Vehicles,
					"errors":    detail.Errors,
				})
			}
			return printListingDetail(cmd.OutOrStdout(), &detail)
		},
	}
}
