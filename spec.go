package pulley

import (
	"fmt"
	"strings"
)

// Spec is the physical identity of a stock-keeping unit: a pulley of a given
// diameter, groove count, belt section and type. Two entries move the same
// stock if and only if their Specs are equal.
type Spec struct {
	Diameter Quantity `json:"diameter"`
	Grooves  Quantity `json:"grooves"`
	Section  string   `json:"section"`
	Type     string   `json:"type"`
}

// NewSpec builds a Spec with normalized (upper-cased) section and type codes.
func NewSpec(diameter, grooves Quantity, section, typ string) Spec {
	return Spec{
		Diameter: diameter,
		Grooves:  grooves,
		Section:  strings.ToUpper(strings.TrimSpace(section)),
		Type:     strings.ToUpper(strings.TrimSpace(typ)),
	}
}

// Key returns the canonical display string "{diameter}x{grooves}x{section}",
// or "-" when diameter or grooves is unset. The key is for display and
// searching only; grouping and matching always use Equal, so "10" and "10.0"
// never split a group.
func (s Spec) Key() string {
	if s.Diameter.IsZero() || s.Grooves.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%sx%sx%s", s.Diameter, s.Grooves, s.Section)
}

// Equal reports whether two specs identify the same stock-keeping unit.
func (s Spec) Equal(o Spec) bool {
	return s.Diameter.Equal(o.Diameter) &&
		s.Grooves.Equal(o.Grooves) &&
		s.Section == o.Section &&
		s.Type == o.Type
}

// IsComplete reports whether the spec carries enough information to identify
// stock, i.e. both diameter and grooves are set.
func (s Spec) IsComplete() bool {
	return !s.Diameter.IsZero() && !s.Grooves.IsZero()
}

func (s Spec) String() string { return s.Key() }
