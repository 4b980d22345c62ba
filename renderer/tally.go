package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/shaikhmech/pulley"
)

// TallyMarkdown renders a stock tally as a markdown table with a bold
// grand-total footer row.
func TallyMarkdown(t *pulley.Tally, clients *pulley.ClientBook, settings pulley.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Stock Tally"
	if !t.Filter.Month.IsZero() {
		title = fmt.Sprintf("Stock Tally %s", t.Filter.Month)
	}
	doc.H1(title)

	if t.Filter.Client != "" {
		doc.PlainTextf("Client: %s", clients.Name(t.Filter.Client))
	}
	if t.Filter.Search != "" {
		doc.PlainTextf("Search: %q", t.Filter.Search)
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Spec",
			"Received",
			"Sent",
			"Net Qty",
			"Received Value",
			"Sent Value",
			"Difference",
		},
	}
	for _, row := range t.Rows {
		table.Rows = append(table.Rows, []string{
			row.Spec.Key(),
			row.ReceivedQty.String(),
			row.SentQty.String(),
			row.NetQty.String(),
			Amount(row.ReceivedValue, settings.Currency),
			Amount(row.SentValue, settings.Currency),
			SignedAmount(row.DiffValue, settings.Currency),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(t.Total.ReceivedQty.String()),
		md.Bold(t.Total.SentQty.String()),
		md.Bold(t.Total.NetQty.String()),
		md.Bold(Amount(t.Total.ReceivedValue, settings.Currency)),
		md.Bold(Amount(t.Total.SentValue, settings.Currency)),
		md.Bold(SignedAmount(t.Total.DiffValue, settings.Currency)),
	})
	doc.Table(table)

	return doc.String()
}
