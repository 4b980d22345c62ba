package pulley

import (
	"fmt"
	"testing"
)

func TestSuggestSpecs(t *testing.T) {
	l := NewLedger()
	specs := []Spec{
		spec(10, 2, "B"),
		spec(100, 3, "SPB"),
		spec(12, 2, "A"),
		spec(10, 4, "B"),
	}
	for i, s := range specs {
		id := fmt.Sprintf("e%d", i)
		day := fmt.Sprintf("2024-03-%02d", i+1)
		if err := l.Append(entry(t, id, draft(day, In, "acme-1", s, 1))); err != nil {
			t.Fatal(err)
		}
	}

	got := l.SuggestSpecs("10")
	// "10" prefix matches diameters 10, 100, 10; newest first.
	want := []Spec{spec(10, 4, "B"), spec(100, 3, "SPB"), spec(10, 2, "B")}
	if len(got) != len(want) {
		t.Fatalf("SuggestSpecs(10) returned %d specs, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("SuggestSpecs(10)[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := l.SuggestSpecs(""); got != nil {
		t.Errorf("SuggestSpecs(\"\") = %v, want nil", got)
	}
}

func TestSuggestSpecsDedupByRecency(t *testing.T) {
	l := NewLedger()
	b := spec(10, 2, "B")
	other := spec(10, 3, "B")
	days := []struct {
		id  string
		s   Spec
		day string
	}{
		{"a", b, "2024-03-01"},
		{"b", other, "2024-03-02"},
		{"c", b, "2024-03-03"}, // b again, more recent
	}
	for _, d := range days {
		if err := l.Append(entry(t, d.id, draft(d.day, In, "acme-1", d.s, 1))); err != nil {
			t.Fatal(err)
		}
	}

	got := l.SuggestSpecs("10")
	if len(got) != 2 {
		t.Fatalf("SuggestSpecs(10) returned %d specs, want 2 after dedup", len(got))
	}
	if !got[0].Equal(b) || !got[1].Equal(other) {
		t.Errorf("SuggestSpecs(10) = %v, want most recent use of each spec first", got)
	}
}

func TestSuggestSpecsCap(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 10; i++ {
		s := spec(10, float64(i+1), "B") // 10 distinct specs, all diameter 10
		id := fmt.Sprintf("e%d", i)
		if err := l.Append(entry(t, id, draft("2024-03-01", In, "acme-1", s, 1))); err != nil {
			t.Fatal(err)
		}
	}

	if got := l.SuggestSpecs("10"); len(got) != maxSuggestions {
		t.Errorf("SuggestSpecs(10) returned %d specs, want the cap of %d", len(got), maxSuggestions)
	}
	if got := l.RecentSpecs(); len(got) != maxRecent {
		t.Errorf("RecentSpecs() returned %d specs, want the cap of %d", len(got), maxRecent)
	}
}

func TestRecentSpecsEmpty(t *testing.T) {
	l := NewLedger()
	if got := l.RecentSpecs(); len(got) != 0 {
		t.Errorf("RecentSpecs() on empty ledger = %v, want none", got)
	}
}
