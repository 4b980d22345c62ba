package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
	"github.com/shaikhmech/pulley/renderer"
)

type tallyCmd struct {
	month  string
	client string
	search string
}

func (*tallyCmd) Name() string     { return "tally" }
func (*tallyCmd) Synopsis() string { return "aggregate the ledger by specification" }
func (*tallyCmd) Usage() string {
	return `pmc tally [-month <YYYY-MM>] [-c <client>] [-search <text>]

  Rolls the ledger up by specification: received and sent quantities and
  values, net stock and value difference per spec, with grand totals.
`
}

func (c *tallyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Keep movements of this month (YYYY-MM)")
	f.StringVar(&c.client, "c", "", "Keep movements of this client")
	f.StringVar(&c.search, "search", "", "Keep specs whose key contains this text")
}

func (c *tallyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := pulley.TallyFilter{Client: c.client, Search: c.search}
	if c.month != "" {
		var err error
		if filter.Month, err = pulley.ParseMonth(c.month); err != nil {
			return fail(err)
		}
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

	tally := pulley.NewTally(ledger, filter)
	printMarkdown(renderer.TallyMarkdown(tally, clients, settings))
	return subcommands.ExitSuccess
}
