package pulley

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger holds the authoritative, ordered set of committed entries. It is
// the source of truth for every derived view: projections, suggestions,
// tallies and invoices all recompute from its current contents.
//
// Enumeration order is insertion order; consumers that need date order sort
// explicitly. The ledger performs no I/O and mutates nothing on failure, so
// a caller can persist each mutation before trusting it as durable.
type Ledger struct {
	entries []Entry
	index   map[string]int // entry position by id
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// Len returns the number of committed entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Get returns the entry with the given id, or false if absent.
func (l *Ledger) Get(id string) (Entry, bool) {
	i, ok := l.index[id]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Append commits a new entry. The entry must come from NewEntry; Append only
// enforces id uniqueness.
func (l *Ledger) Append(e Entry) error {
	if _, exists := l.index[e.ID]; exists {
		return fmt.Errorf("entry %q: %w", e.ID, ErrDuplicateID)
	}
	l.index[e.ID] = len(l.entries)
	l.entries = append(l.entries, e)
	return nil
}

// Replace swaps the committed entry carrying e.ID for e, keeping its
// position in the ledger. It returns ErrNotFound, leaving the ledger
// unchanged, when no entry has that id.
func (l *Ledger) Replace(e Entry) error {
	i, ok := l.index[e.ID]
	if !ok {
		return fmt.Errorf("entry %q: %w", e.ID, ErrNotFound)
	}
	l.entries[i] = e
	return nil
}

// Delete removes the entry with the given id. It returns ErrNotFound,
// leaving the ledger unchanged, when no entry has that id.
func (l *Ledger) Delete(id string) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	delete(l.index, id)
	for j := i; j < len(l.entries); j++ {
		l.index[l.entries[j].ID] = j
	}
	return nil
}

// Entries returns an iterator over entries in insertion order, keeping only
// those accepted by every filter.
func (l *Ledger) Entries(filters ...func(Entry) bool) iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
	next:
		for i, e := range l.entries {
			for _, filter := range filters {
				if !filter(e) {
					continue next
				}
			}
			if !yield(i, e) {
				return
			}
		}
	}
}

// Select collects the entries accepted by every filter, in insertion order.
func (l *Ledger) Select(filters ...func(Entry) bool) []Entry {
	selected := make([]Entry, 0)
	for _, e := range l.Entries(filters...) {
		selected = append(selected, e)
	}
	return selected
}

// ByMonth returns a predicate keeping entries dated inside the month.
// A zero month keeps everything.
func ByMonth(m Month) func(Entry) bool {
	return func(e Entry) bool { return m.Contains(e.Date) }
}

// ByClient returns a predicate keeping entries for the given client id.
// An empty id keeps everything.
func ByClient(id string) func(Entry) bool {
	return func(e Entry) bool { return id == "" || e.Client == id }
}

// ByDirection returns a predicate keeping entries moving in the given
// direction.
func ByDirection(d Direction) func(Entry) bool {
	return func(e Entry) bool { return e.Direction == d }
}

// SortByDateDesc orders entries newest first, the conventional display
// order. The sort is stable so same-day entries keep their relative order.
func SortByDateDesc(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case a.Date.After(b.Date):
			return -1
		case b.Date.After(a.Date):
			return 1
		default:
			return 0
		}
	})
}

// SortByDateAsc orders entries oldest first, the order used on invoices.
func SortByDateAsc(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		switch {
		case b.Date.After(a.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}
