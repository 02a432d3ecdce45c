package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/voltmarket/pkg/pricing"
	"github.com/donaldgifford/voltmarket/pkg/suggest"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func suggestCmd() *cobra.Command {
	var (
		kind      string
		title     string
		mileage   float64
		condition string
		specs     map[string]string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the configured backend for a price suggestion",
		Long: "Render a price prompt for an item, send it to the configured\n" +
			"suggestion backend and print the parsed price.",
		Example: `  # Battery with known health and capacity
  voltmarket suggest --kind battery --title "CATL LFP75" --spec health=95 --spec capacity=75

  # Vehicle with mileage
  voltmarket suggest --kind vehicle --title "VinFast VF8" --mileage 12000 --condition Good`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, ok := domain.ParseKind(kind)
			if !ok {
				return fmt.Errorf("unknown kind %q (want battery or vehicle)", kind)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s := newSuggester(cfg, newLogger(cfg))

			body, err := s.Suggest(cmd.Context(), suggest.Request{
				Kind:      k,
				Title:     title,
				Specs:     parseSpecs(specs),
				Mileage:   mileage,
				Condition: condition,
			})
			if err != nil {
				return fmt.Errorf("requesting price suggestion from %s: %w", s.Name(), err)
			}

			var suggested *int64
			if price, ok := pricing.Parse(body); ok {
				suggested = &price
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, map[string]any{
					"suggested_price": suggested,
					"backend":         s.Name(),
				})
			}
			if suggested == nil {
				fmt.Fprintf(out, "%s gave no recognizable price: %s\n", s.Name(), pricing.Text(pricing.Locate(body)))
				return nil
			}
			fmt.Fprintf(out, "Suggested price (%s): %d\n", s.Name(), *suggested)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "battery or vehicle")
	cmd.Flags().StringVar(&title, "title", "", "item title, e.g. brand and model")
	cmd.Flags().Float64Var(&mileage, "mileage", 0, "odometer reading for vehicles")
	cmd.Flags().StringVar(&condition, "condition", "", "condition grade (Excellent, Good, Fair)")
	cmd.Flags().StringToStringVar(&specs, "spec", nil, "known spec as field=value, repeatable")
	cobra.CheckErr(cmd.MarkFlagRequired("kind"))
	cobra.CheckErr(cmd.MarkFlagRequired("title"))

	return cmd
}

// parseSpecs turns field=value flags into specs sorted by field. Numeric
// values become float64.
func parseSpecs(in map[string]string) []domain.Spec {
	fields := make([]string, 0, len(in))
	for f := range in {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	specs := make([]domain.Spec, 0, len(fields))
	for _, f := range fields {
		var value any = in[f]
		if n, err := strconv.ParseFloat(in[f], 64); err == nil {
			value = n
		}
		specs = append(specs, domain.Spec{Field: domain.SpecField(f), Value: value})
	}
	return specs
}
