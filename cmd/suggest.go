package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type suggestCmd struct {
	diameter string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest previously used specifications" }
func (*suggestCmd) Usage() string {
	return `pmc suggest [-dia <prefix>]

  Without a prefix, lists the most recently used specifications. With a
  prefix, lists the specifications whose diameter starts with it, most
  recent first.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.diameter, "dia", "", "Diameter prefix to match")
}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	specs := ledger.RecentSpecs()
	if c.diameter != "" {
		specs = ledger.SuggestSpecs(c.diameter)
	}

	if len(specs) == 0 {
		fmt.Println("No suggestions.")
		return subcommands.ExitSuccess
	}
	for _, s := range specs {
		stock, _ := ledger.StockOf(s)
		fmt.Printf("%-16s stock %s\n", s.Key(), stock)
	}
	return subcommands.ExitSuccess
}
