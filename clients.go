package pulley

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Client is a counterparty: the source of received stock or the recipient of
// billed stock. DefaultRate, when set, is the rate suggested for new drafts
// naming this client; it never retroactively reprices past entries.
type Client struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Contact     string `json:"contact,omitempty"`
	DefaultRate Money  `json:"defaultRate,omitempty"`
}

// ClientBook holds the known clients, indexed by id.
type ClientBook struct {
	clients map[string]Client
}

// NewClientBook creates an empty client book.
func NewClientBook() *ClientBook {
	return &ClientBook{clients: make(map[string]Client)}
}

// Get returns the client with the given id, or false if unknown.
func (b *ClientBook) Get(id string) (Client, bool) {
	c, ok := b.clients[id]
	return c, ok
}

// Add registers a new client. The id must not already be in use.
func (b *ClientBook) Add(c Client) error {
	if c.ID == "" {
		return invalidf("client", "id is missing")
	}
	if strings.TrimSpace(c.Name) == "" {
		return invalidf("client", "name is missing")
	}
	if _, exists := b.clients[c.ID]; exists {
		return fmt.Errorf("client %q: %w", c.ID, ErrDuplicateID)
	}
	b.clients[c.ID] = c
	return nil
}

// Update replaces the client with the same id.
func (b *ClientBook) Update(c Client) error {
	if _, exists := b.clients[c.ID]; !exists {
		return fmt.Errorf("client %q: %w", c.ID, ErrNotFound)
	}
	b.clients[c.ID] = c
	return nil
}

// Remove deletes the client with the given id. Past ledger entries keep
// their clientRef; only the registry forgets the name.
func (b *ClientBook) Remove(id string) error {
	if _, exists := b.clients[id]; !exists {
		return fmt.Errorf("client %q: %w", id, ErrNotFound)
	}
	delete(b.clients, id)
	return nil
}

// Len returns the number of registered clients.
func (b *ClientBook) Len() int { return len(b.clients) }

// All iterates over clients sorted by name, then id for stability.
func (b *ClientBook) All() iter.Seq[Client] {
	return func(yield func(Client) bool) {
		ids := slices.Collect(maps.Keys(b.clients))
		slices.SortFunc(ids, func(a, z string) int {
			ca, cz := b.clients[a], b.clients[z]
			if c := strings.Compare(ca.Name, cz.Name); c != 0 {
				return c
			}
			return strings.Compare(a, z)
		})
		for _, id := range ids {
			if !yield(b.clients[id]) {
				return
			}
		}
	}
}

// Name returns the client's display name, falling back to the raw id when
// the client is unknown (e.g. removed after the entry was recorded).
func (b *ClientBook) Name(id string) string {
	if c, ok := b.clients[id]; ok {
		return c.Name
	}
	return id
}

// RateFor resolves the rate to suggest on a new draft for the given client:
// the client's default rate if set, otherwise the settings default.
func (b *ClientBook) RateFor(id string, settings Settings) Money {
	if c, ok := b.clients[id]; ok && !c.DefaultRate.IsZero() {
		return c.DefaultRate
	}
	return settings.DefaultRate
}
