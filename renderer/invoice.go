package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/shaikhmech/pulley"
)

// InvoiceMarkdown renders a billing selection as an invoice document:
// company letterhead, client block, one line per outward entry sorted by
// date, and the period totals.
func InvoiceMarkdown(inv *pulley.Invoice, clients *pulley.ClientBook, settings pulley.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(inv.Number)

	doc.PlainText(md.Bold(settings.CompanyName))
	if settings.CompanyAddress != "" {
		doc.PlainText(settings.CompanyAddress)
	}
	if settings.GSTNo != "" {
		doc.PlainTextf("GST No: %s", settings.GSTNo)
	}

	doc.PlainTextf("Billing period: %s", inv.Month)
	if inv.Client != nil {
		doc.H2f("Bill To: %s", inv.Client.Name)
		if inv.Client.Contact != "" {
			doc.PlainText(inv.Client.Contact)
		}
	} else {
		doc.H2("Bill To: All Clients")
	}

	if len(inv.Lines) == 0 {
		doc.PlainText("No outward transactions in this period.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Date",
			"Client",
			"Spec",
			"Qty",
			"Rate",
			"Amount",
		},
	}
	for _, e := range inv.Lines {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			clients.Name(e.Client),
			e.SpecKey,
			e.Quantity.String(),
			Amount(pulley.EffectiveRate(e), settings.Currency),
			Amount(e.Total, settings.Currency),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		"",
		"",
		md.Bold(inv.TotalQty.String()),
		"",
		md.Bold(Amount(inv.TotalValue, settings.Currency)),
	})
	doc.Table(table)

	return doc.String()
}
