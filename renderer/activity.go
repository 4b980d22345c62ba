package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/shaikhmech/pulley"
)

// ActivityMarkdown renders a monthly activity overview: volume and revenue
// summary, best and worst sellers, and the days that saw movement.
func ActivityMarkdown(a *pulley.Activity, clients *pulley.ClientBook, settings pulley.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1f("Activity %s", a.Month)
	if a.Client != "" {
		doc.PlainTextf("Client: %s", clients.Name(a.Client))
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Sent", a.TotalSent.String()},
			{"Total Received", a.TotalReceived.String()},
			{"Revenue", Amount(a.Revenue, settings.Currency)},
		},
	})

	if a.MostSold != nil {
		doc.H2("Sales Leaders")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"", "Spec", "Qty"},
			Rows: [][]string{
				{"Most sold", a.MostSold.Spec.Key(), a.MostSold.Count.String()},
			},
		}
		if a.LeastSold != nil {
			table.Rows = append(table.Rows, []string{
				"Least sold", a.LeastSold.Spec.Key(), a.LeastSold.Count.String(),
			})
		}
		doc.Table(table)
	}

	days := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Sent", "Received"},
	}
	for _, day := range a.Daily {
		if day.Sent.IsZero() && day.Received.IsZero() {
			continue
		}
		days.Rows = append(days.Rows, []string{
			day.Date.String(),
			day.Sent.String(),
			day.Received.String(),
		})
	}
	if len(days.Rows) > 0 {
		doc.H2("Daily Movements")
		doc.Table(days)
	}

	return doc.String()
}
