package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
)

type stockCmd struct {
	diameter  string
	grooves   string
	section   string
	pulleyTyp string
	direction string
	quantity  string
	exclude   string
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "show the stock balance of a specification" }
func (*stockCmd) Usage() string {
	return `pmc stock -dia <diameter> -g <grooves> [-sec <section>] [-type <type>] [-dir <IN|OUT> -q <quantity>]

  Shows the current balance of a specification. With -dir and -q it also
  projects the balance a candidate movement would produce; a negative
  projection is a deficit, reported, not rejected.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.diameter, "dia", "", "Pulley diameter")
	f.StringVar(&c.grooves, "g", "", "Number of grooves")
	f.StringVar(&c.section, "sec", "", "Belt section code")
	f.StringVar(&c.pulleyTyp, "type", "", "Pulley type code")
	f.StringVar(&c.direction, "dir", "", "Candidate direction (IN or OUT)")
	f.StringVar(&c.quantity, "q", "", "Candidate quantity")
	f.StringVar(&c.exclude, "exclude", "", "Entry id to leave out of the balance")
}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.diameter == "" || c.grooves == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	diameter, err := pulley.ParseQuantity(c.diameter)
	if err != nil {
		return fail(fmt.Errorf("invalid diameter: %w", err))
	}
	grooves, err := pulley.ParseQuantity(c.grooves)
	if err != nil {
		return fail(fmt.Errorf("invalid grooves: %w", err))
	}
	spec := pulley.NewSpec(diameter, grooves, c.section, c.pulleyTyp)

	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	stock, ok := ledger.StockOf(spec)
	if !ok {
		return fail(fmt.Errorf("incomplete specification: diameter and grooves are required"))
	}
	fmt.Printf("Stock of %s: %s\n", spec.Key(), stock)

	if c.direction == "" && c.quantity == "" {
		return subcommands.ExitSuccess
	}
	dir, err := pulley.ParseDirection(c.direction)
	if err != nil {
		return fail(err)
	}
	qty, err := pulley.ParseQuantity(c.quantity)
	if err != nil {
		return fail(fmt.Errorf("invalid quantity: %w", err))
	}
	projected, _ := ledger.ProjectStock(spec, dir, qty, c.exclude)
	fmt.Printf("After %s %s: %s\n", dir, qty, projected)
	return subcommands.ExitSuccess
}
