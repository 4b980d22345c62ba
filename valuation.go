package pulley

// Valuation is the priced view of a draft:
//
//	costPerUnit = diameter * grooves * rate
//	machineCost = costPerUnit * quantity
//	boreCost    = boreUnits * boreRatePerUnit
//	total       = machineCost + boreCost
type Valuation struct {
	CostPerUnit Money
	MachineCost Money
	BoreCost    Money
	Total       Money
	SpecKey     string
}

// Valuate prices a draft. It is pure and deterministic: identical drafts and
// settings always produce identical valuations. A draft with a non-positive
// diameter, grooves or quantity is rejected with a ValidationError and must
// not be committed.
func Valuate(d Draft, settings Settings) (Valuation, error) {
	if !d.Spec.Diameter.IsPositive() {
		return Valuation{}, invalidf("diameter", "must be greater than 0, got %s", d.Spec.Diameter)
	}
	if !d.Spec.Grooves.IsPositive() {
		return Valuation{}, invalidf("grooves", "must be greater than 0, got %s", d.Spec.Grooves)
	}
	if !d.Quantity.IsPositive() {
		return Valuation{}, invalidf("quantity", "must be greater than 0, got %s", d.Quantity)
	}
	if d.BoreUnits.IsNegative() {
		return Valuation{}, invalidf("boreUnits", "must not be negative, got %s", d.BoreUnits)
	}

	rate := d.Rate
	if rate.IsZero() {
		rate = settings.DefaultRate
	}
	boreRate := d.BoreRate
	if boreRate.IsZero() {
		boreRate = settings.BoreRatePerUnit
	}
	return value(d.Spec, rate, d.Quantity, d.BoreUnits, boreRate), nil
}

// Preview prices a draft without validating it, for live display while the
// draft is still being typed. Missing numeric fields count as zero and the
// spec key degrades to "-" until the spec is complete.
func Preview(d Draft, settings Settings) Valuation {
	rate := d.Rate
	if rate.IsZero() {
		rate = settings.DefaultRate
	}
	boreRate := d.BoreRate
	if boreRate.IsZero() {
		boreRate = settings.BoreRatePerUnit
	}
	return value(d.Spec, rate, d.Quantity, d.BoreUnits, boreRate)
}

func value(spec Spec, rate Money, qty, boreUnits Quantity, boreRate Money) Valuation {
	costPerUnit := rate.Mul(spec.Diameter).Mul(spec.Grooves)
	machineCost := costPerUnit.Mul(qty)
	boreCost := boreRate.Mul(boreUnits)
	return Valuation{
		CostPerUnit: costPerUnit,
		MachineCost: machineCost,
		BoreCost:    boreCost,
		Total:       machineCost.Add(boreCost),
		SpecKey:     spec.Key(),
	}
}
