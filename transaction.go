package pulley

import (
	"fmt"
	"strings"
)

// Direction is the side of a stock movement.
type Direction string

const (
	// In is stock received: it increases the balance of its spec.
	In Direction = "IN"
	// Out is stock shipped and billed: it decreases the balance of its spec.
	Out Direction = "OUT"
)

// ParseDirection parses a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case In:
		return In, nil
	case Out:
		return Out, nil
	default:
		return "", fmt.Errorf("unknown direction: %q", s)
	}
}

// Draft is the raw input of a stock movement, before valuation. Numeric
// fields left at zero fall back to the Settings where a fallback exists
// (rate, bore rate); diameter, grooves and quantity must be positive for
// the draft to be committable.
type Draft struct {
	Date      Date
	Direction Direction
	Client    string
	Spec      Spec
	Quantity  Quantity
	Rate      Money
	BoreUnits Quantity
	BoreRate  Money
	Remarks   string
}

// Entry is a committed, priced stock movement. Entries are immutable:
// an edit replaces the whole record under the same id, and every derived
// field (costPerUnit, machineCost, boreCost, total) is recomputed from the
// inputs by the factory, never set independently.
type Entry struct {
	ID          string    `json:"id"`
	Date        Date      `json:"date"`
	Direction   Direction `json:"direction"`
	Client      string    `json:"client"`
	Spec        Spec      `json:"spec"`
	SpecKey     string    `json:"specKey"`
	Quantity    Quantity  `json:"quantity"`
	Rate        Money     `json:"rate"`
	CostPerUnit Money     `json:"costPerUnit"`
	MachineCost Money     `json:"machineCost"`
	BoreUnits   Quantity  `json:"boreUnits"`
	BoreRate    Money     `json:"boreRate"`
	BoreCost    Money     `json:"boreCost"`
	Total       Money     `json:"total"`
	Remarks     string    `json:"remarks,omitempty"`
}

// NewEntry is the only path from a draft to a committed entry. It validates
// the draft, resolves settings fallbacks (rate, bore rate), and computes all
// derived amounts. The id must be unique in the target ledger; uniqueness is
// enforced on append.
func NewEntry(id string, d Draft, settings Settings) (Entry, error) {
	if id == "" {
		return Entry{}, invalidf("id", "must not be empty")
	}
	if d.Direction != In && d.Direction != Out {
		return Entry{}, invalidf("direction", "must be IN or OUT, got %q", d.Direction)
	}
	if strings.TrimSpace(d.Client) == "" {
		return Entry{}, invalidf("client", "a client or source is required")
	}
	v, err := Valuate(d, settings)
	if err != nil {
		return Entry{}, err
	}

	date := d.Date
	if date.IsZero() {
		date = Today()
	}
	rate := d.Rate
	if rate.IsZero() {
		rate = settings.DefaultRate
	}
	boreRate := d.BoreRate
	if boreRate.IsZero() {
		boreRate = settings.BoreRatePerUnit
	}

	return Entry{
		ID:          id,
		Date:        date,
		Direction:   d.Direction,
		Client:      d.Client,
		Spec:        d.Spec,
		SpecKey:     v.SpecKey,
		Quantity:    d.Quantity,
		Rate:        rate,
		CostPerUnit: v.CostPerUnit,
		MachineCost: v.MachineCost,
		BoreUnits:   d.BoreUnits,
		BoreRate:    boreRate,
		BoreCost:    v.BoreCost,
		Total:       v.Total,
		Remarks:     d.Remarks,
	}, nil
}

// Draft rebuilds the draft an entry was committed from, for editing.
func (e Entry) Draft() Draft {
	return Draft{
		Date:      e.Date,
		Direction: e.Direction,
		Client:    e.Client,
		Spec:      e.Spec,
		Quantity:  e.Quantity,
		Rate:      e.Rate,
		BoreUnits: e.BoreUnits,
		BoreRate:  e.BoreRate,
		Remarks:   e.Remarks,
	}
}

// Revalue recomputes every derived field from the entry's own stored inputs.
// Decoding runs entries through it so that derived values in a data file can
// never drift from the inputs they were computed from.
func (e Entry) Revalue() Entry {
	v := value(e.Spec, e.Rate, e.Quantity, e.BoreUnits, e.BoreRate)
	e.SpecKey = v.SpecKey
	e.CostPerUnit = v.CostPerUnit
	e.MachineCost = v.MachineCost
	e.BoreCost = v.BoreCost
	e.Total = v.Total
	return e
}

// Equal reports whether two entries are identical, derived fields included.
func (e Entry) Equal(o Entry) bool {
	return e.ID == o.ID &&
		e.Date == o.Date &&
		e.Direction == o.Direction &&
		e.Client == o.Client &&
		e.Spec.Equal(o.Spec) &&
		e.Quantity.Equal(o.Quantity) &&
		e.Rate.Equal(o.Rate) &&
		e.BoreUnits.Equal(o.BoreUnits) &&
		e.BoreRate.Equal(o.BoreRate) &&
		e.Remarks == o.Remarks
}
