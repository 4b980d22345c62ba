package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/shaikhmech/pulley"
)

// movementFlags is the draft input shared by the in and out commands.
type movementFlags struct {
	date      string
	client    string
	diameter  string
	grooves   string
	section   string
	pulleyTyp string
	quantity  string
	rate      string
	boreUnits string
	boreRate  string
	remarks   string
}

func (m *movementFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&m.date, "d", "", "Movement date (YYYY-MM-DD), today if empty")
	f.StringVar(&m.client, "c", "", "Client id")
	f.StringVar(&m.diameter, "dia", "", "Pulley diameter")
	f.StringVar(&m.grooves, "g", "", "Number of grooves")
	f.StringVar(&m.section, "sec", "", "Belt section code (e.g. SPB)")
	f.StringVar(&m.pulleyTyp, "type", "", "Pulley type code")
	f.StringVar(&m.quantity, "q", "", "Number of pulleys")
	f.StringVar(&m.rate, "r", "", "Rate, defaults to the client's rate then the configured rate")
	f.StringVar(&m.boreUnits, "bore", "", "Boring units")
	f.StringVar(&m.boreRate, "br", "", "Bore rate per unit, defaults to the configured rate")
	f.StringVar(&m.remarks, "m", "", "An optional note for the movement")
}

// draft assembles a valued draft from the flags. Amount fields left empty
// stay zero so the entry factory can apply its fallbacks.
func (m *movementFlags) draft(dir pulley.Direction, clients *pulley.ClientBook, settings pulley.Settings) (pulley.Draft, error) {
	d := pulley.Draft{Direction: dir, Client: m.client, Remarks: m.remarks}

	if m.date != "" {
		date, err := pulley.ParseDate(m.date)
		if err != nil {
			return d, fmt.Errorf("invalid date: %w", err)
		}
		d.Date = date
	}

	var err error
	if m.diameter != "" {
		if d.Spec.Diameter, err = pulley.ParseQuantity(m.diameter); err != nil {
			return d, fmt.Errorf("invalid diameter: %w", err)
		}
	}
	if m.grooves != "" {
		if d.Spec.Grooves, err = pulley.ParseQuantity(m.grooves); err != nil {
			return d, fmt.Errorf("invalid grooves: %w", err)
		}
	}
	d.Spec.Section = m.section
	d.Spec.Type = m.pulleyTyp
	d.Spec = pulley.NewSpec(d.Spec.Diameter, d.Spec.Grooves, d.Spec.Section, d.Spec.Type)

	if m.quantity != "" {
		if d.Quantity, err = pulley.ParseQuantity(m.quantity); err != nil {
			return d, fmt.Errorf("invalid quantity: %w", err)
		}
	}
	if m.rate != "" {
		if d.Rate, err = pulley.ParseMoney(m.rate); err != nil {
			return d, fmt.Errorf("invalid rate: %w", err)
		}
	} else {
		d.Rate = clients.RateFor(m.client, settings)
	}
	if m.boreUnits != "" {
		if d.BoreUnits, err = pulley.ParseQuantity(m.boreUnits); err != nil {
			return d, fmt.Errorf("invalid bore units: %w", err)
		}
	}
	if m.boreRate != "" {
		if d.BoreRate, err = pulley.ParseMoney(m.boreRate); err != nil {
			return d, fmt.Errorf("invalid bore rate: %w", err)
		}
	}
	return d, nil
}

// commitMovement values the draft, appends it to the ledger and reports the
// resulting entry and the new stock balance of its specification.
func commitMovement(dir pulley.Direction, m *movementFlags) subcommands.ExitStatus {
	settings, err := loadSettings()
	if err != nil {
		return fail(err)
	}
	clients, err := loadClients()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	draft, err := m.draft(dir, clients, settings)
	if err != nil {
		return fail(err)
	}

	entry, err := pulley.NewEntry(uuid.NewString(), draft, settings)
	if err != nil {
		return fail(err)
	}
	if err := ledger.Append(entry); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded %s %s x %s for %s, total %s\n",
		entry.Direction, entry.SpecKey, entry.Quantity, clients.Name(entry.Client), entry.Total)
	if stock, ok := ledger.StockOf(entry.Spec); ok {
		fmt.Printf("Stock of %s is now %s\n", entry.SpecKey, stock)
	}
	return subcommands.ExitSuccess
}

// --- In Command ---

type inCmd struct{ movementFlags }

func (*inCmd) Name() string     { return "in" }
func (*inCmd) Synopsis() string { return "record stock received" }
func (*inCmd) Usage() string {
	return `pmc in -c <client> -dia <diameter> -g <grooves> -sec <section> -q <quantity> [-r <rate>] [-bore <units>] [-d <date>] [-m <note>]

  Records an inward stock movement. The entry is valued on commit from its
  diameter, grooves, quantity and rate.
`
}

func (c *inCmd) SetFlags(f *flag.FlagSet) { c.movementFlags.SetFlags(f) }

func (c *inCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return commitMovement(pulley.In, &c.movementFlags)
}

// --- Out Command ---

type outCmd struct{ movementFlags }

func (*outCmd) Name() string     { return "out" }
func (*outCmd) Synopsis() string { return "record stock sent out" }
func (*outCmd) Usage() string {
	return `pmc out -c <client> -dia <diameter> -g <grooves> -sec <section> -q <quantity> [-r <rate>] [-bore <units>] [-d <date>] [-m <note>]

  Records an outward stock movement. Outward entries are the billable side
  of the ledger: invoices and revenue reports are built from them.
`
}

func (c *outCmd) SetFlags(f *flag.FlagSet) { c.movementFlags.SetFlags(f) }

func (c *outCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return commitMovement(pulley.Out, &c.movementFlags)
}
