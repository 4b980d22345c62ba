package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shaikhmech/pulley"
)

var testSettings = pulley.Settings{
	CompanyName:     "Acme Pulleys",
	DefaultRate:     pulley.M(6),
	BoreRatePerUnit: pulley.M(50),
}

func testBook(t *testing.T) *pulley.ClientBook {
	t.Helper()
	book := pulley.NewClientBook()
	if err := book.Add(pulley.Client{ID: "acme-1", Name: "Acme Co"}); err != nil {
		t.Fatal(err)
	}
	return book
}

func testEntry(t *testing.T, id, day string, dir pulley.Direction, qty float64) pulley.Entry {
	t.Helper()
	d := pulley.Draft{
		Date:      pulley.MustParseDate(day),
		Direction: dir,
		Client:    "acme-1",
		Spec:      pulley.NewSpec(pulley.Q(10), pulley.Q(2), "B", "V"),
		Quantity:  pulley.Q(qty),
		Rate:      pulley.M(5),
	}
	e, err := pulley.NewEntry(id, d, testSettings)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   pulley.Money
		currency string
		want     string
	}{
		{"no currency", pulley.M(1200), "", "1200.00"},
		{"iso code", pulley.M(1200), "USD", "$1,200.00"},
		{"raw symbol", pulley.M(1200), "Rs ", "Rs 1200.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.amount, tt.currency); got != tt.want {
				t.Errorf("Amount() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignedAmount(t *testing.T) {
	if got := SignedAmount(pulley.M(0), ""); got != "-" {
		t.Errorf("SignedAmount(0) = %q, want -", got)
	}
	if got := SignedAmount(pulley.M(10), ""); got != "+10.00" {
		t.Errorf("SignedAmount(10) = %q, want +10.00", got)
	}
	if got := SignedAmount(pulley.M(-10), ""); got != "-10.00" {
		t.Errorf("SignedAmount(-10) = %q, want -10.00", got)
	}
}

func TestInvoiceMarkdown(t *testing.T) {
	ledger := pulley.NewLedger()
	if err := ledger.Append(testEntry(t, "a", "2024-03-02", pulley.Out, 6)); err != nil {
		t.Fatal(err)
	}
	book := testBook(t)

	inv := pulley.NewInvoice(ledger, book, pulley.BillingFilter{
		Month:  pulley.MustParseMonth("2024-03"),
		Client: "acme-1",
	})
	got := InvoiceMarkdown(inv, book, testSettings)

	for _, want := range []string{"INV-202403-ACM", "Acme Pulleys", "Acme Co", "10x2xB", "600.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("InvoiceMarkdown() missing %q:\n%s", want, got)
		}
	}
}

func TestStatementCSV(t *testing.T) {
	ledger := pulley.NewLedger()
	if err := ledger.Append(testEntry(t, "a", "2024-03-02", pulley.Out, 6)); err != nil {
		t.Fatal(err)
	}
	book := testBook(t)
	inv := pulley.NewInvoice(ledger, book, pulley.BillingFilter{
		Month:  pulley.MustParseMonth("2024-03"),
		Client: "acme-1",
	})

	var buf bytes.Buffer
	if err := StatementCSV(&buf, inv, book); err != nil {
		t.Fatalf("StatementCSV() returned an unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("statement has %d lines, want header, one record and totals", len(lines))
	}
	if lines[0] != "Date,Client,Spec,Quantity,Effective Rate,Amount" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2024-03-02,Acme Co,10x2xB,6,100.00,600.00" {
		t.Errorf("record = %q", lines[1])
	}
	if lines[2] != "Total,,,6,,600.00" {
		t.Errorf("totals = %q", lines[2])
	}
}

func TestTallyMarkdownTotals(t *testing.T) {
	ledger := pulley.NewLedger()
	if err := ledger.Append(testEntry(t, "a", "2024-03-01", pulley.In, 10)); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Append(testEntry(t, "b", "2024-03-05", pulley.Out, 4)); err != nil {
		t.Fatal(err)
	}
	book := testBook(t)

	tally := pulley.NewTally(ledger, pulley.TallyFilter{Month: pulley.MustParseMonth("2024-03")})
	got := TallyMarkdown(tally, book, testSettings)

	for _, want := range []string{"Stock Tally 2024-03", "10x2xB", "**Total**"} {
		if !strings.Contains(got, want) {
			t.Errorf("TallyMarkdown() missing %q:\n%s", want, got)
		}
	}
}
