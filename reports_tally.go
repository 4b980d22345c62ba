package pulley

import (
	"slices"
	"strings"
)

// TallyFilter selects the ledger subset a tally rolls up. Zero fields are
// no-op filters.
type TallyFilter struct {
	Month  Month  // keep entries dated inside this month
	Client string // keep entries for this client id
	Search string // keep entries whose spec key contains this text
}

// TallyRow is the per-specification accumulation of a tally.
type TallyRow struct {
	Spec          Spec
	ReceivedQty   Quantity // Σ quantity over IN entries
	SentQty       Quantity // Σ quantity over OUT entries
	ReceivedValue Money    // Σ total over IN entries
	SentValue     Money    // Σ total over OUT entries
	NetQty        Quantity // ReceivedQty - SentQty
	DiffValue     Money    // SentValue - ReceivedValue
}

// TallyTotals accumulates the same four bases as a row, across all rows.
type TallyTotals struct {
	ReceivedQty   Quantity
	SentQty       Quantity
	ReceivedValue Money
	SentValue     Money
	NetQty        Quantity
	DiffValue     Money
}

// Tally is a period/client-filtered aggregation of the ledger grouped by
// specification. Row sums always equal the grand total, including the empty
// case where everything is zero.
type Tally struct {
	Filter TallyFilter
	Rows   []TallyRow
	Total  TallyTotals
}

// NewTally scans the ledger, folds every entry matching the filter into its
// specification's row, and derives net quantities, value differences and
// grand totals. Rows are sorted by section then diameter, ascending.
func NewTally(l *Ledger, f TallyFilter) *Tally {
	t := &Tally{Filter: f, Rows: make([]TallyRow, 0)}

	rowOf := func(s Spec) int {
		for i := range t.Rows {
			if t.Rows[i].Spec.Equal(s) {
				return i
			}
		}
		t.Rows = append(t.Rows, TallyRow{Spec: s})
		return len(t.Rows) - 1
	}

	for _, e := range l.Entries(ByMonth(f.Month), ByClient(f.Client)) {
		if f.Search != "" && !strings.Contains(e.SpecKey, f.Search) {
			continue
		}
		row := &t.Rows[rowOf(e.Spec)]
		if e.Direction == In {
			row.ReceivedQty = row.ReceivedQty.Add(e.Quantity)
			row.ReceivedValue = row.ReceivedValue.Add(e.Total)
		} else {
			row.SentQty = row.SentQty.Add(e.Quantity)
			row.SentValue = row.SentValue.Add(e.Total)
		}
	}

	for i := range t.Rows {
		row := &t.Rows[i]
		row.NetQty = row.ReceivedQty.Sub(row.SentQty)
		row.DiffValue = row.SentValue.Sub(row.ReceivedValue)

		t.Total.ReceivedQty = t.Total.ReceivedQty.Add(row.ReceivedQty)
		t.Total.SentQty = t.Total.SentQty.Add(row.SentQty)
		t.Total.ReceivedValue = t.Total.ReceivedValue.Add(row.ReceivedValue)
		t.Total.SentValue = t.Total.SentValue.Add(row.SentValue)
	}
	t.Total.NetQty = t.Total.ReceivedQty.Sub(t.Total.SentQty)
	t.Total.DiffValue = t.Total.SentValue.Sub(t.Total.ReceivedValue)

	slices.SortStableFunc(t.Rows, func(a, b TallyRow) int {
		if c := strings.Compare(a.Spec.Section, b.Spec.Section); c != 0 {
			return c
		}
		switch {
		case a.Spec.Diameter.LessThan(b.Spec.Diameter):
			return -1
		case b.Spec.Diameter.LessThan(a.Spec.Diameter):
			return 1
		default:
			return 0
		}
	})
	return t
}
