package pulley

import (
	"fmt"
	"strings"
	"unicode"
)

// BillingFilter selects the outward entries of one billing period.
type BillingFilter struct {
	Month  Month  // billing period, required
	Client string // client id; empty bills all clients together
}

// Invoice is the invoice-ready view of a billing period: only OUT entries,
// date ascending, with a deterministic invoice number. The number doubles as
// an idempotency and display key, so identical filters always produce the
// identical number.
type Invoice struct {
	Number     string
	Month      Month
	Client     *Client // nil when billing all clients
	Lines      []Entry
	TotalQty   Quantity
	TotalValue Money // Σ total over the selection
}

// NewInvoice selects the OUT entries matching the filter, sorted by date
// ascending, and derives the totals and the invoice identifier.
func NewInvoice(l *Ledger, clients *ClientBook, f BillingFilter) *Invoice {
	inv := &Invoice{Month: f.Month}

	var clientName string
	if f.Client != "" {
		if c, ok := clients.Get(f.Client); ok {
			inv.Client = &c
			clientName = c.Name
		} else {
			clientName = f.Client
		}
	}
	inv.Number = InvoiceNumber(f.Month, clientName)

	inv.Lines = l.Select(ByDirection(Out), ByMonth(f.Month), ByClient(f.Client))
	SortByDateAsc(inv.Lines)

	for _, e := range inv.Lines {
		inv.TotalQty = inv.TotalQty.Add(e.Quantity)
		inv.TotalValue = inv.TotalValue.Add(e.Total)
	}
	return inv
}

// EffectiveRate is the blended per-unit price of an invoiced line,
// total / quantity, the figure shown on exported statements.
func EffectiveRate(e Entry) Money {
	return e.Total.Div(e.Quantity)
}

// InvoiceNumber derives the identifier "INV-YYYYMM-XXX" where XXX is the
// first three letters of the client name upper-cased, or "ALL" when no
// client is selected. The format is a fixed contract: external documents
// reference these identifiers.
func InvoiceNumber(m Month, clientName string) string {
	tag := "ALL"
	if name := strings.TrimSpace(clientName); name != "" {
		runes := []rune(name)
		if len(runes) > 3 {
			runes = runes[:3]
		}
		for i, r := range runes {
			runes[i] = unicode.ToUpper(r)
		}
		tag = string(runes)
	}
	return fmt.Sprintf("INV-%s-%s", m.Compact(), tag)
}
