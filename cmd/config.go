package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
)

type configCmd struct {
	company  string
	address  string
	gst      string
	rate     string
	boreRate string
	currency string
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "show or change the valuation settings" }
func (*configCmd) Usage() string {
	return `pmc config [-company <name>] [-address <address>] [-gst <no>] [-rate <rate>] [-bore-rate <rate>] [-currency <code>]

  Without flags, prints the current settings. With flags, updates them.
  Changing a default rate only affects movements recorded afterwards.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "company", "", "Company name shown on invoices")
	f.StringVar(&c.address, "address", "", "Company address shown on invoices")
	f.StringVar(&c.gst, "gst", "", "GST number shown on invoices")
	f.StringVar(&c.rate, "rate", "", "Default rate for new movements")
	f.StringVar(&c.boreRate, "bore-rate", "", "Default bore rate per unit")
	f.StringVar(&c.currency, "currency", "", "ISO-4217 currency code or symbol for display")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		return fail(err)
	}

	changed := false
	if c.company != "" {
		settings.CompanyName = c.company
		changed = true
	}
	if c.address != "" {
		settings.CompanyAddress = c.address
		changed = true
	}
	if c.gst != "" {
		settings.GSTNo = c.gst
		changed = true
	}
	if c.rate != "" {
		rate, err := pulley.ParseMoney(c.rate)
		if err != nil {
			return fail(fmt.Errorf("invalid rate: %w", err))
		}
		settings.DefaultRate = rate
		changed = true
	}
	if c.boreRate != "" {
		rate, err := pulley.ParseMoney(c.boreRate)
		if err != nil {
			return fail(fmt.Errorf("invalid bore rate: %w", err))
		}
		settings.BoreRatePerUnit = rate
		changed = true
	}
	if c.currency != "" {
		settings.Currency = c.currency
		changed = true
	}

	if changed {
		if err := saveSettings(settings); err != nil {
			return fail(err)
		}
	}

	fmt.Printf("Company:    %s\n", settings.CompanyName)
	if settings.CompanyAddress != "" {
		fmt.Printf("Address:    %s\n", settings.CompanyAddress)
	}
	if settings.GSTNo != "" {
		fmt.Printf("GST No:     %s\n", settings.GSTNo)
	}
	fmt.Printf("Rate:       %s\n", settings.DefaultRate)
	fmt.Printf("Bore rate:  %s\n", settings.BoreRatePerUnit)
	if settings.Currency != "" {
		fmt.Printf("Currency:   %s\n", settings.Currency)
	}
	return subcommands.ExitSuccess
}
