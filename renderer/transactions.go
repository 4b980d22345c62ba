package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/shaikhmech/pulley"
)

// TransactionsMarkdown renders a list of entries as a markdown table, one
// row per entry, in the order given.
func TransactionsMarkdown(entries []pulley.Entry, clients *pulley.ClientBook, settings pulley.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(entries) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{
			"Date",
			"Dir",
			"Client",
			"Spec",
			"Qty",
			"Rate",
			"Total",
			"Remarks",
		},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			string(e.Direction),
			clients.Name(e.Client),
			e.SpecKey,
			e.Quantity.String(),
			Amount(e.Rate, settings.Currency),
			Amount(e.Total, settings.Currency),
			e.Remarks,
		})
	}
	doc.Table(table)

	return doc.String()
}
