package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/google/uuid"

	"github.com/shaikhmech/pulley"
)

// --- Client Command ---

type clientCmd struct {
	id      string
	name    string
	contact string
	rate    string
	remove  bool
}

func (*clientCmd) Name() string     { return "client" }
func (*clientCmd) Synopsis() string { return "add, update or remove a client" }
func (*clientCmd) Usage() string {
	return `pmc client -name <name> [-id <id>] [-contact <contact>] [-rate <rate>]
pmc client -id <id> -rm

  Without -id, adds a new client with a generated id. With -id, updates the
  named client, or removes it with -rm. A client's rate is the default rate
  suggested for its new movements; changing it never reprices past entries.
`
}

func (c *clientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Client id, generated when adding if empty")
	f.StringVar(&c.name, "name", "", "Client name")
	f.StringVar(&c.contact, "contact", "", "Contact details")
	f.StringVar(&c.rate, "rate", "", "Default rate for this client's movements")
	f.BoolVar(&c.remove, "rm", false, "Remove the client")
}

func (c *clientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadClients()
	if err != nil {
		return fail(err)
	}

	if c.remove {
		if c.id == "" {
			f.Usage()
			return subcommands.ExitUsageError
		}
		if err := book.Remove(c.id); err != nil {
			return fail(fmt.Errorf("could not remove client %q: %w", c.id, err))
		}
		if err := saveClients(book); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed client %s\n", c.id)
		return subcommands.ExitSuccess
	}

	var rate pulley.Money
	if c.rate != "" {
		if rate, err = pulley.ParseMoney(c.rate); err != nil {
			return fail(fmt.Errorf("invalid rate: %w", err))
		}
	}

	if c.id == "" {
		client := pulley.Client{ID: uuid.NewString(), Name: c.name, Contact: c.contact, DefaultRate: rate}
		if err := book.Add(client); err != nil {
			return fail(err)
		}
		if err := saveClients(book); err != nil {
			return fail(err)
		}
		fmt.Printf("Added client %s (%s)\n", client.Name, client.ID)
		return subcommands.ExitSuccess
	}

	client, ok := book.Get(c.id)
	if !ok {
		return fail(fmt.Errorf("no client with id %q: %w", c.id, pulley.ErrNotFound))
	}
	if c.name != "" {
		client.Name = c.name
	}
	if c.contact != "" {
		client.Contact = c.contact
	}
	if c.rate != "" {
		client.DefaultRate = rate
	}
	if err := book.Update(client); err != nil {
		return fail(err)
	}
	if err := saveClients(book); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated client %s\n", client.Name)
	return subcommands.ExitSuccess
}

// --- Clients Command ---

type clientsCmd struct{}

func (*clientsCmd) Name() string     { return "clients" }
func (*clientsCmd) Synopsis() string { return "list all clients" }
func (*clientsCmd) Usage() string {
	return `pmc clients

  Lists the clients, sorted by name.
`
}

func (c *clientsCmd) SetFlags(f *flag.FlagSet) {}

func (c *clientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadClients()
	if err != nil {
		return fail(err)
	}
	if book.Len() == 0 {
		fmt.Println("No clients.")
		return subcommands.ExitSuccess
	}
	for client := range book.All() {
		line := fmt.Sprintf("%-36s %s", client.ID, client.Name)
		if client.Contact != "" {
			line += "  " + client.Contact
		}
		if !client.DefaultRate.IsZero() {
			line += "  rate " + client.DefaultRate.String()
		}
		fmt.Println(line)
	}
	return subcommands.ExitSuccess
}
