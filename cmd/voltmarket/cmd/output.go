package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/voltmarket/internal/aggregate"
	"github.com/donaldgifford/voltmarket/pkg/feed"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printEntitiesTable(w io.Writer, items []domain.Entity) error {
	tw := newTabWriter(w)
	tw.writef("ID\tKIND\tTITLE\tPRICE\tSTATUS\tSPECS\n")
	for i := range items {
		e := &items[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Kind,
			truncate(e.Title, 40),
			feed.FormatMoney(e.Price),
			e.ApprovalTag,
			truncate(specSummary(e.Specs), 60),
		)
	}
	return tw.finish()
}

func specSummary(specs []domain.Spec) string {
	parts := make([]string, 0, len(specs))
	for _, s := range specs {
		parts = append(parts, feed.FormatSpec(s))
	}
	return strings.Join(parts, ", ")
}

func printCompareTable(w io.Writer, t *feed.Table) error {
	tw := newTabWriter(w)
	tw.writef("FIELD")
	for _, c := range t.Columns {
		tw.writef("\t%s", truncate(c.Title, 30))
	}
	tw.writef("\n")
	for _, r := range t.Rows {
		tw.writef("%s", r.Label)
		for _, cell := range r.Cells {
			tw.writef("\t%s", cell)
		}
		tw.writef("\n")
	}
	return tw.finish()
}

func printListingsTable(w io.Writer, listings []domain.ListingSummary) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTITLE\tTYPE\tPRICE\tBATTERIES\tVEHICLES\tSELLER\tSTATUS\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			l.ID,
			truncate(l.Title, 40),
			l.ItemType,
			feed.FormatMoney(&l.Price),
			l.BatteryCount,
			l.VehicleCount,
			l.SellerName,
			l.Tag,
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, d *aggregate.ListingDetail) error {
	l := &d.Listing
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("Type:\t%s\n", l.ItemType)
	tw.writef("Status:\t%s\n", l.Tag)
	tw.writef("Price:\t%s\n", feed.FormatMoney(&l.Price))
	tw.writef("Seller:\t%s\n", l.SellerName)
	if l.Address != "" {
		tw.writef("Address:\t%s\n", l.Address)
	}
	if l.Description != "" {
		tw.writef("Description:\t%s\n", truncate(l.Description, 80))
	}
	if err := tw.finish(); err != nil {
		return err
	}

	items := make([]domain.Entity, 0, len(d.Batteries)+len(d.Vehicles))
	items = append(items, d.Batteries...)
	items = append(items, d.Vehicles...)
	if len(items) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := printEntitiesTable(w, items); err != nil {
			return err
		}
	}
	return printSourceErrors(w, d.Errors)
}

// printSourceErrors lists partial failures after a table.
func printSourceErrors(w io.Writer, errs []aggregate.SourceError) error {
	for _, e := range errs {
		if _, err := fmt.Fprintf(w, "warning: %s\n", e.Error()); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
