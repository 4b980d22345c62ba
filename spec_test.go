package pulley

import "testing"

func TestSpecKey(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{"complete", NewSpec(Q(10), Q(2), "b", "v"), "10x2xB"},
		{"no section", NewSpec(Q(10), Q(2), "", ""), "10x2x"},
		{"missing diameter", NewSpec(Q(0), Q(2), "B", ""), "-"},
		{"missing grooves", NewSpec(Q(10), Q(0), "B", ""), "-"},
		{"fractional diameter", NewSpec(Q(2.5), Q(3), "SPA", ""), "2.5x3xSPA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSpecEqualNumeric asserts grouping is structural: "10" and "10.0" are
// the same diameter even though they format differently.
func TestSpecEqualNumeric(t *testing.T) {
	a := NewSpec(Q(10), Q(2), "B", "V")
	b := NewSpec(Q(10.0), Q(2), "B", "V")
	if !a.Equal(b) {
		t.Errorf("specs %v and %v should be equal", a, b)
	}

	c := NewSpec(Q(10), Q(2), "B", "F")
	if a.Equal(c) {
		t.Errorf("specs %v and %v differ by type and should not be equal", a, c)
	}
}

func TestNewSpecNormalizesCodes(t *testing.T) {
	s := NewSpec(Q(10), Q(2), " spb ", "v")
	if s.Section != "SPB" || s.Type != "V" {
		t.Errorf("NewSpec() = %+v, want upper-cased trimmed codes", s)
	}
}
