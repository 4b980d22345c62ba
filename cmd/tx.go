package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
	"github.com/shaikhmech/pulley/renderer"
)

type txCmd struct {
	month  string
	client string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list movements in the ledger" }
func (*txCmd) Usage() string {
	return `pmc tx [-month <YYYY-MM>] [-c <client>] [-head <n>] [-tail <n>]

  Lists movements, newest first, with options for filtering and limiting
  the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Keep movements of this month (YYYY-MM)")
	f.StringVar(&c.client, "c", "", "Keep movements of this client")
	f.IntVar(&c.head, "head", 0, "Show only the first N movements")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N movements")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var month pulley.Month
	if c.month != "" {
		var err error
		if month, err = pulley.ParseMonth(c.month); err != nil {
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

	entries := ledger.Select(pulley.ByMonth(month), pulley.ByClient(c.client))
	pulley.SortByDateDesc(entries)

	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}
	if c.tail > 0 && len(entries) > c.tail {
		entries = entries[len(entries)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(entries, clients, settings))
	return subcommands.ExitSuccess
}
