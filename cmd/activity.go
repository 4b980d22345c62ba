package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
	"github.com/shaikhmech/pulley/renderer"
)

type activityCmd struct {
	month  string
	client string
}

func (*activityCmd) Name() string     { return "activity" }
func (*activityCmd) Synopsis() string { return "show the monthly activity overview" }
func (*activityCmd) Usage() string {
	return `pmc activity [-month <YYYY-MM>] [-c <client>]

  Shows the month at a glance: volumes, revenue, best and worst selling
  specifications, and the daily movements. Defaults to the current month.
`
}

func (c *activityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to report on (YYYY-MM), current month if empty")
	f.StringVar(&c.client, "c", "", "Restrict to this client")
}

func (c *activityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := pulley.ThisMonth()
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

	activity := pulley.NewActivity(ledger, month, c.client)
	printMarkdown(renderer.ActivityMarkdown(activity, clients, settings))
	return subcommands.ExitSuccess
}
