package pulley

import "testing"

func TestNewActivity(t *testing.T) {
	l := NewLedger()
	b := spec(10, 2, "B")
	a := spec(8, 3, "SPB")
	movements := []struct {
		id  string
		day string
		dir Direction
		s   Spec
		qty float64
	}{
		{"a", "2024-03-01", In, b, 20},
		{"b", "2024-03-05", Out, b, 8},
		{"c", "2024-03-05", Out, a, 2},
		{"d", "2024-03-10", Out, b, 3},
		{"e", "2024-04-01", Out, b, 100}, // outside the month
	}
	for _, m := range movements {
		if err := l.Append(entry(t, m.id, draft(m.day, m.dir, "acme-1", m.s, m.qty))); err != nil {
			t.Fatal(err)
		}
	}

	act := NewActivity(l, MustParseMonth("2024-03"), "")

	if !act.TotalSent.Equal(Q(13)) {
		t.Errorf("TotalSent = %s, want 13", act.TotalSent)
	}
	if !act.TotalReceived.Equal(Q(20)) {
		t.Errorf("TotalReceived = %s, want 20", act.TotalReceived)
	}
	// b: cpu 120, out 11 -> 1320; a: cpu 8*3*6=144, out 2 -> 288
	if !act.Revenue.Equal(M(1608)) {
		t.Errorf("Revenue = %s, want 1608", act.Revenue)
	}

	if act.MostSold == nil || !act.MostSold.Spec.Equal(b) || !act.MostSold.Count.Equal(Q(11)) {
		t.Errorf("MostSold = %+v, want 11 of %s", act.MostSold, b.Key())
	}
	if act.LeastSold == nil || !act.LeastSold.Spec.Equal(a) || !act.LeastSold.Count.Equal(Q(2)) {
		t.Errorf("LeastSold = %+v, want 2 of %s", act.LeastSold, a.Key())
	}

	if len(act.Daily) != 31 {
		t.Fatalf("Daily has %d days, want 31 for March", len(act.Daily))
	}
	day5 := act.Daily[4]
	if !day5.Sent.Equal(Q(10)) || !day5.Received.IsZero() {
		t.Errorf("Daily[2024-03-05] = %+v, want sent 10", day5)
	}
	day1 := act.Daily[0]
	if !day1.Received.Equal(Q(20)) {
		t.Errorf("Daily[2024-03-01] = %+v, want received 20", day1)
	}
}

// TestNewActivityDailyEarlyDays guards against day entries early in a long
// month being dropped while later ones land: every day of a 31-day month must
// accumulate its own movements.
func TestNewActivityDailyEarlyDays(t *testing.T) {
	l := NewLedger()
	b := spec(10, 2, "B")
	if err := l.Append(entry(t, "a", draft("2024-03-02", In, "acme-1", b, 7))); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(entry(t, "b", draft("2024-03-20", In, "acme-1", b, 3))); err != nil {
		t.Fatal(err)
	}

	act := NewActivity(l, MustParseMonth("2024-03"), "")
	if !act.Daily[1].Received.Equal(Q(7)) {
		t.Errorf("Daily[2024-03-02].Received = %s, want 7", act.Daily[1].Received)
	}
	if !act.Daily[19].Received.Equal(Q(3)) {
		t.Errorf("Daily[2024-03-20].Received = %s, want 3", act.Daily[19].Received)
	}
	for i, d := range act.Daily {
		if i == 1 || i == 19 {
			continue
		}
		if !d.Sent.IsZero() || !d.Received.IsZero() {
			t.Errorf("Daily[%s] = %+v, want no movement", d.Date, d)
		}
	}
}

// TestNewActivitySingleSpec covers the one-distinct-spec boundary: most and
// least sold coincide and that is a valid result.
func TestNewActivitySingleSpec(t *testing.T) {
	l := NewLedger()
	b := spec(10, 2, "B")
	if err := l.Append(entry(t, "a", draft("2024-03-01", Out, "acme-1", b, 5))); err != nil {
		t.Fatal(err)
	}

	act := NewActivity(l, MustParseMonth("2024-03"), "")
	if act.MostSold == nil || act.LeastSold == nil {
		t.Fatal("MostSold/LeastSold missing for a single-spec month")
	}
	if !act.MostSold.Spec.Equal(act.LeastSold.Spec) {
		t.Errorf("MostSold %v and LeastSold %v should coincide", act.MostSold.Spec, act.LeastSold.Spec)
	}
}

func TestNewActivityClientFilter(t *testing.T) {
	l := NewLedger()
	b := spec(10, 2, "B")
	if err := l.Append(entry(t, "a", draft("2024-03-01", Out, "acme-1", b, 5))); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(entry(t, "b", draft("2024-03-02", Out, "bolt-2", b, 7))); err != nil {
		t.Fatal(err)
	}

	act := NewActivity(l, MustParseMonth("2024-03"), "acme-1")
	if !act.TotalSent.Equal(Q(5)) {
		t.Errorf("TotalSent = %s, want 5 for acme-1 only", act.TotalSent)
	}
}

func TestNewActivityEmptyMonth(t *testing.T) {
	act := NewActivity(NewLedger(), MustParseMonth("2024-02"), "")
	if act.MostSold != nil || act.LeastSold != nil {
		t.Errorf("empty month should have no sales leaders, got %+v / %+v", act.MostSold, act.LeastSold)
	}
	if len(act.Daily) != 29 {
		t.Errorf("Daily has %d days, want 29 for February 2024", len(act.Daily))
	}
	if !act.Revenue.IsZero() {
		t.Errorf("Revenue = %s, want 0", act.Revenue)
	}
}
