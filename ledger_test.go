package pulley

import (
	"errors"
	"testing"
)

func TestLedgerAppend(t *testing.T) {
	l := NewLedger()
	e1 := entry(t, "a", draft("2024-03-01", In, "acme-1", spec(10, 2, "B"), 20))
	e2 := entry(t, "b", draft("2024-03-02", Out, "acme-1", spec(10, 2, "B"), 5))

	if err := l.Append(e1); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if err := l.Append(e2); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	dup := entry(t, "a", draft("2024-03-03", In, "acme-1", spec(10, 2, "B"), 1))
	err := l.Append(dup)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Append(duplicate) error = %v, want ErrDuplicateID", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d after failed append, want 2", l.Len())
	}
}

func TestLedgerReplaceKeepsPosition(t *testing.T) {
	l := NewLedger()
	for _, id := range []string{"a", "b", "c"} {
		if err := l.Append(entry(t, id, draft("2024-03-01", In, "acme-1", spec(10, 2, "B"), 10))); err != nil {
			t.Fatalf("Append(%q) returned an unexpected error: %v", id, err)
		}
	}

	updated := entry(t, "b", draft("2024-03-05", Out, "acme-1", spec(8, 3, "SPB"), 2))
	if err := l.Replace(updated); err != nil {
		t.Fatalf("Replace() returned an unexpected error: %v", err)
	}

	var order []string
	for _, e := range l.Entries() {
		order = append(order, e.ID)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("entry order after replace = %v, want %v", order, want)
		}
	}

	got, ok := l.Get("b")
	if !ok || !got.Equal(updated) {
		t.Errorf("Get(b) = %+v, want the replacement entry", got)
	}
}

// TestLedgerReplaceIdempotent asserts replaying the same replacement leaves
// the ledger in the same state.
func TestLedgerReplaceIdempotent(t *testing.T) {
	l := NewLedger()
	if err := l.Append(entry(t, "a", draft("2024-03-01", In, "acme-1", spec(10, 2, "B"), 10))); err != nil {
		t.Fatalf("Append() returned an unexpected error: %v", err)
	}
	updated := entry(t, "a", draft("2024-03-02", In, "acme-1", spec(10, 2, "B"), 12))

	if err := l.Replace(updated); err != nil {
		t.Fatalf("Replace() returned an unexpected error: %v", err)
	}
	if err := l.Replace(updated); err != nil {
		t.Fatalf("second Replace() returned an unexpected error: %v", err)
	}
	got, _ := l.Get("a")
	if !got.Equal(updated) || l.Len() != 1 {
		t.Errorf("ledger state changed after idempotent replace: %+v", got)
	}
}

func TestLedgerReplaceNotFound(t *testing.T) {
	l := NewLedger()
	err := l.Replace(entry(t, "ghost", draft("2024-03-01", In, "acme-1", spec(10, 2, "B"), 1)))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace(absent) error = %v, want ErrNotFound", err)
	}
}

func TestLedgerDelete(t *testing.T) {
	l := NewLedger()
	for _, id := range []string{"a", "b", "c"} {
		if err := l.Append(entry(t, id, draft("2024-03-01", In, "acme-1", spec(10, 2, "B"), 10))); err != nil {
			t.Fatalf("Append(%q) returned an unexpected error: %v", id, err)
		}
	}

	if err := l.Delete("b"); err != nil {
		t.Fatalf("Delete() returned an unexpected error: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d after delete, want 2", l.Len())
	}
	if _, ok := l.Get("b"); ok {
		t.Errorf("Get(b) found a deleted entry")
	}
	// The index must survive the shift of the remaining entries.
	if got, ok := l.Get("c"); !ok || got.ID != "c" {
		t.Errorf("Get(c) = %+v, %v; the index is stale after delete", got, ok)
	}

	if err := l.Delete("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(absent) error = %v, want ErrNotFound", err)
	}
}

func TestLedgerFilters(t *testing.T) {
	l := NewLedger()
	march := MustParseMonth("2024-03")
	if err := l.Append(entry(t, "a", draft("2024-03-01", In, "acme-1", spec(10, 2, "B"), 10))); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(entry(t, "b", draft("2024-03-15", Out, "bolt-2", spec(10, 2, "B"), 3))); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(entry(t, "c", draft("2024-04-01", Out, "acme-1", spec(10, 2, "B"), 2))); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		filters []func(Entry) bool
		want    []string
	}{
		{"no filters", nil, []string{"a", "b", "c"}},
		{"by month", []func(Entry) bool{ByMonth(march)}, []string{"a", "b"}},
		{"by client", []func(Entry) bool{ByClient("acme-1")}, []string{"a", "c"}},
		{"by direction", []func(Entry) bool{ByDirection(Out)}, []string{"b", "c"}},
		{"combined", []func(Entry) bool{ByMonth(march), ByClient("acme-1")}, []string{"a"}},
		{"zero month matches all", []func(Entry) bool{ByMonth(Month{})}, []string{"a", "b", "c"}},
		{"empty client matches all", []func(Entry) bool{ByClient("")}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range l.Entries(tt.filters...) {
				got = append(got, e.ID)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("selected %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("selected %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSortByDate(t *testing.T) {
	// b and c share a date; stable sort must preserve their relative order.
	entries := []Entry{
		entry(t, "a", draft("2024-03-10", In, "acme-1", spec(10, 2, "B"), 1)),
		entry(t, "b", draft("2024-03-01", In, "acme-1", spec(10, 2, "B"), 1)),
		entry(t, "c", draft("2024-03-01", Out, "acme-1", spec(10, 2, "B"), 1)),
	}

	SortByDateAsc(entries)
	if entries[0].ID != "b" || entries[1].ID != "c" || entries[2].ID != "a" {
		t.Errorf("SortByDateAsc order = %s %s %s, want b c a", entries[0].ID, entries[1].ID, entries[2].ID)
	}

	SortByDateDesc(entries)
	if entries[0].ID != "a" || entries[1].ID != "b" || entries[2].ID != "c" {
		t.Errorf("SortByDateDesc order = %s %s %s, want a b c", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}
