package pulley

// SpecCount pairs a specification with an accumulated OUT quantity.
type SpecCount struct {
	Spec  Spec
	Count Quantity
}

// DayActivity is the sent/received volume of a single day.
type DayActivity struct {
	Date     Date
	Sent     Quantity
	Received Quantity
}

// Activity is the at-a-glance overview of a month: volumes, outgoing
// revenue, best and worst selling specifications, and a per-day series
// covering every day of the month.
type Activity struct {
	Month         Month
	Client        string
	TotalSent     Quantity
	TotalReceived Quantity
	Revenue       Money // Σ total over OUT entries
	MostSold      *SpecCount
	LeastSold     *SpecCount
	Daily         []DayActivity
}

// NewActivity aggregates the month's entries, optionally restricted to one
// client. With a single distinct specification sold in the period, most-
// and least-sold coincide; that is a valid boundary, not an error.
func NewActivity(l *Ledger, month Month, clientID string) *Activity {
	a := &Activity{Month: month, Client: clientID}

	sold := make([]SpecCount, 0)
	soldOf := func(s Spec) int {
		for i := range sold {
			if sold[i].Spec.Equal(s) {
				return i
			}
		}
		sold = append(sold, SpecCount{Spec: s})
		return len(sold) - 1
	}

	// perDay holds indices: Daily reallocates while growing, so pointers
	// into it would go stale.
	perDay := make(map[Date]int)
	for _, d := range month.Days() {
		perDay[d] = len(a.Daily)
		a.Daily = append(a.Daily, DayActivity{Date: d})
	}

	for _, e := range l.Entries(ByMonth(month), ByClient(clientID)) {
		i, inMonth := perDay[e.Date]
		if e.Direction == Out {
			a.TotalSent = a.TotalSent.Add(e.Quantity)
			a.Revenue = a.Revenue.Add(e.Total)
			sc := &sold[soldOf(e.Spec)]
			sc.Count = sc.Count.Add(e.Quantity)
			if inMonth {
				a.Daily[i].Sent = a.Daily[i].Sent.Add(e.Quantity)
			}
		} else {
			a.TotalReceived = a.TotalReceived.Add(e.Quantity)
			if inMonth {
				a.Daily[i].Received = a.Daily[i].Received.Add(e.Quantity)
			}
		}
	}

	for i := range sold {
		sc := sold[i]
		if a.MostSold == nil || sc.Count.GreaterThan(a.MostSold.Count) {
			most := sc
			a.MostSold = &most
		}
		if a.LeastSold == nil || sc.Count.LessThan(a.LeastSold.Count) {
			least := sc
			a.LeastSold = &least
		}
	}
	return a
}
