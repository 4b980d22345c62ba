package pulley

// ProjectStock computes the balance a specification would have if a
// candidate movement were committed:
//
//	base      = Σ ±quantity over entries matching spec (IN adds, OUT subtracts)
//	projected = base + candidate (IN) or base - candidate (OUT)
//
// excludeID, when non-empty, removes that entry's own contribution from the
// base; projecting while editing an existing entry must not double-count it.
//
// The second return value is false when the spec is incomplete (no diameter
// or grooves yet), in which case there is nothing to project against. A
// negative projection is a deficit: a valid, reportable state, not an error.
func (l *Ledger) ProjectStock(spec Spec, dir Direction, qty Quantity, excludeID string) (Quantity, bool) {
	if !spec.IsComplete() {
		return Quantity{}, false
	}

	var base Quantity
	for _, e := range l.entries {
		if e.ID == excludeID {
			continue
		}
		if !e.Spec.Equal(spec) {
			continue
		}
		if e.Direction == In {
			base = base.Add(e.Quantity)
		} else {
			base = base.Sub(e.Quantity)
		}
	}

	if dir == In {
		return base.Add(qty), true
	}
	return base.Sub(qty), true
}

// StockOf returns the committed balance of a specification, with no
// candidate movement applied.
func (l *Ledger) StockOf(spec Spec) (Quantity, bool) {
	return l.ProjectStock(spec, In, Quantity{}, "")
}
