package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
)

// --- Edit Command ---

type editCmd struct {
	id           string
	dir          string
	clearRemarks bool
	movementFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace an existing movement under the same id" }
func (*editCmd) Usage() string {
	return `pmc edit -id <entry_id> [movement flags...]

  Replaces a recorded movement. Only the flags given are changed; everything
  else keeps its recorded value, and all derived amounts are recomputed.
  Use -clear-remarks to erase the recorded remarks.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to edit")
	f.StringVar(&c.dir, "dir", "", "New direction (IN or OUT)")
	f.BoolVar(&c.clearRemarks, "clear-remarks", false, "Erase the recorded remarks")
	c.movementFlags.SetFlags(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	settings, err := loadSettings()
	if err != nil {
		return fail(err)
	}
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	current, ok := ledger.Get(c.id)
	if !ok {
		return fail(fmt.Errorf("no entry with id %q: %w", c.id, pulley.ErrNotFound))
	}

	draft := current.Draft()
	if err := c.apply(&draft); err != nil {
		return fail(err)
	}

	entry, err := pulley.NewEntry(c.id, draft, settings)
	if err != nil {
		return fail(err)
	}
	if err := ledger.Replace(entry); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Updated %s: %s %s x %s, total %s\n",
		entry.ID, entry.Direction, entry.SpecKey, entry.Quantity, entry.Total)
	return subcommands.ExitSuccess
}

// apply overlays the flags that were given onto the recorded draft.
func (c *editCmd) apply(d *pulley.Draft) error {
	var err error
	if c.dir != "" {
		if d.Direction, err = pulley.ParseDirection(c.dir); err != nil {
			return err
		}
	}
	if c.date != "" {
		if d.Date, err = pulley.ParseDate(c.date); err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	}
	if c.client != "" {
		d.Client = c.client
	}
	if c.diameter != "" {
		if d.Spec.Diameter, err = pulley.ParseQuantity(c.diameter); err != nil {
			return fmt.Errorf("invalid diameter: %w", err)
		}
	}
	if c.grooves != "" {
		if d.Spec.Grooves, err = pulley.ParseQuantity(c.grooves); err != nil {
			return fmt.Errorf("invalid grooves: %w", err)
		}
	}
	if c.section != "" {
		d.Spec.Section = c.section
	}
	if c.pulleyTyp != "" {
		d.Spec.Type = c.pulleyTyp
	}
	d.Spec = pulley.NewSpec(d.Spec.Diameter, d.Spec.Grooves, d.Spec.Section, d.Spec.Type)
	if c.quantity != "" {
		if d.Quantity, err = pulley.ParseQuantity(c.quantity); err != nil {
			return fmt.Errorf("invalid quantity: %w", err)
		}
	}
	if c.rate != "" {
		if d.Rate, err = pulley.ParseMoney(c.rate); err != nil {
			return fmt.Errorf("invalid rate: %w", err)
		}
	}
	if c.boreUnits != "" {
		if d.BoreUnits, err = pulley.ParseQuantity(c.boreUnits); err != nil {
			return fmt.Errorf("invalid bore units: %w", err)
		}
	}
	if c.boreRate != "" {
		if d.BoreRate, err = pulley.ParseMoney(c.boreRate); err != nil {
			return fmt.Errorf("invalid bore rate: %w", err)
		}
	}
	// An empty -remarks is indistinguishable from the flag being absent, so
	// erasing goes through -clear-remarks.
	if c.clearRemarks {
		d.Remarks = ""
	} else if c.remarks != "" {
		d.Remarks = c.remarks
	}
	return nil
}

// --- Remove Command ---

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a recorded movement" }
func (*rmCmd) Usage() string {
	return `pmc rm -id <entry_id>

  Deletes a movement from the ledger. Stock balances and reports reflect
  the removal immediately.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the entry to delete")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.Delete(c.id); err != nil {
		return fail(fmt.Errorf("could not delete %q: %w", c.id, err))
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted %s\n", c.id)
	return subcommands.ExitSuccess
}
