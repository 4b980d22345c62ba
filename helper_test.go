package pulley

import "testing"

// testSettings is the configuration most tests run with.
var testSettings = Settings{
	CompanyName:     "Acme Pulleys",
	DefaultRate:     M(6),
	BoreRatePerUnit: M(50),
}

// spec is a helper for tests to build a specification from consts.
func spec(dia, grooves float64, section string) Spec {
	return NewSpec(Q(dia), Q(grooves), section, "V")
}

// draft is a helper for tests to build a minimal committable draft.
func draft(day string, dir Direction, client string, s Spec, qty float64) Draft {
	return Draft{
		Date:      MustParseDate(day),
		Direction: dir,
		Client:    client,
		Spec:      s,
		Quantity:  Q(qty),
	}
}

// entry commits a draft with testSettings, failing the test on error.
func entry(t *testing.T, id string, d Draft) Entry {
	t.Helper()
	e, err := NewEntry(id, d, testSettings)
	if err != nil {
		t.Fatalf("NewEntry(%q) returned an unexpected error: %v", id, err)
	}
	return e
}
