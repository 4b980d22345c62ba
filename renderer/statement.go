package renderer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shaikhmech/pulley"
)

// StatementCSV writes a billing selection as a CSV statement, one record
// per invoiced line plus a trailing totals record. Amounts are written as
// bare numbers so the file imports cleanly into spreadsheets.
func StatementCSV(w io.Writer, inv *pulley.Invoice, clients *pulley.ClientBook) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Client", "Spec", "Quantity", "Effective Rate", "Amount"}); err != nil {
		return fmt.Errorf("could not write statement header: %w", err)
	}
	for _, e := range inv.Lines {
		record := []string{
			e.Date.String(),
			clients.Name(e.Client),
			e.SpecKey,
			e.Quantity.String(),
			pulley.EffectiveRate(e).Decimal().StringFixed(2),
			e.Total.Decimal().StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write statement line for %q: %w", e.ID, err)
		}
	}
	total := []string{"Total", "", "", inv.TotalQty.String(), "", inv.TotalValue.Decimal().StringFixed(2)}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("could not write statement totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
