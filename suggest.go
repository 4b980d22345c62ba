package pulley

import "strings"

// Caps on the suggestion lists. Suggestions drive keyboard re-entry of
// recurring specifications, so the lists stay short and recency-biased.
const (
	maxSuggestions = 5
	maxRecent      = 6
)

// SuggestSpecs returns up to 5 previously used specifications whose diameter
// starts with the typed prefix, most recently used first and de-duplicated
// by full specification. Scanning runs newest-first and keeps the first
// occurrence of each spec, so the most recent entry for a spec wins.
func (l *Ledger) SuggestSpecs(diameterPrefix string) []Spec {
	prefix := strings.TrimSpace(diameterPrefix)
	if prefix == "" {
		return nil
	}
	return l.collectSpecs(maxSuggestions, func(s Spec) bool {
		return strings.HasPrefix(s.Diameter.String(), prefix)
	})
}

// RecentSpecs returns up to 6 most recently used specifications,
// de-duplicated like SuggestSpecs but with no prefix filter. They back the
// quick-fill shortcuts for recurring stock.
func (l *Ledger) RecentSpecs() []Spec {
	return l.collectSpecs(maxRecent, func(Spec) bool { return true })
}

// collectSpecs traverses the ledger newest-first, keeping the first
// occurrence of each unique spec accepted by keep, and stops once limit is
// reached or the ledger is exhausted.
func (l *Ledger) collectSpecs(limit int, keep func(Spec) bool) []Spec {
	specs := make([]Spec, 0, limit)
	seen := func(s Spec) bool {
		for _, prev := range specs {
			if prev.Equal(s) {
				return true
			}
		}
		return false
	}
	for i := len(l.entries) - 1; i >= 0 && len(specs) < limit; i-- {
		s := l.entries[i].Spec
		if !keep(s) || seen(s) {
			continue
		}
		specs = append(specs, s)
	}
	return specs
}
