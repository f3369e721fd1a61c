package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/donaldgifford/shopsite-adapter/internal/shopsite"
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

func printOrdersTable(w io.Writer, orders []shopsite.Order) error {
	tw := newTabWriter(w)
	tw.writef("ORDER\tDATE\tCUSTOMER\tITEMS\tTOTAL\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%s\t%s\t%d\t%s\n",
			o.OrderID,
			o.OrderDate,
			truncate(customerName(o.BillingAddress), 30),
			len(o.Items),
			o.Total,
		)
	}
	return tw.finish()
}

func printProductsTable(w io.Writer, products []shopsite.Product) error {
	tw := newTabWriter(w)
	tw.writef("SKU\tNAME\tPRICE\tTAXABLE\n")
	for i := range products {
		tw.writef("%s\t%s\t%s\t%s\n",
			products[i].SKU,
			truncate(products[i].Name, 40),
			products[i].Price,
			products[i].Taxable,
		)
	}
	return tw.finish()
}

func customerName(a shopsite.Address) string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "" || a.LastName != "":
		return a.FirstName + a.LastName
	default:
		return "-"
	}
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
