package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
	"github.com/shaikhmech/pulley/renderer"
)

type billCmd struct {
	month  string
	client string
	csv    string
}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "build an invoice for a billing period" }
func (*billCmd) Usage() string {
	return `pmc bill -month <YYYY-MM> [-c <client>] [-csv <file>]

  Selects the outward movements of a month, for one client or all, and
  renders them as an invoice. The invoice number is derived from the month
  and client, so the same selection always gets the same number. With -csv
  the selection is exported as a statement file instead.
`
}

func (c *billCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Billing period (YYYY-MM), required")
	f.StringVar(&c.client, "c", "", "Bill this client only")
	f.StringVar(&c.csv, "csv", "", "Write a CSV statement to this file instead of printing")
}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	month, err := pulley.ParseMonth(c.month)
	if err != nil {
		return fail(err)
	}

	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	clients, err := loadClients()
	if err != nil {
		return fail(err)
	}
	settings, err := loadSettings()
	if err != nil {
		return fail(err)
	}

	invoice := pulley.NewInvoice(ledger, clients, pulley.BillingFilter{Month: month, Client: c.client})

	if c.csv != "" {
		file, err := os.Create(c.csv)
		if err != nil {
			return fail(fmt.Errorf("could not create statement file %q: %w", c.csv, err))
		}
		defer file.Close()
		if err := renderer.StatementCSV(file, invoice, clients); err != nil {
			return fail(err)
		}
		fmt.Printf("Wrote statement %s to %s\n", invoice.Number, c.csv)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.InvoiceMarkdown(invoice, clients, settings))
	return subcommands.ExitSuccess
}
