package einvoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustBuild(t *testing.T, b *Builder) *Invoice {
	t.Helper()
	inv, err := b.BuildUnchecked()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return inv
}

func seller() Party {
	return Party{
		Name:    "ACME GmbH",
		VATID:   "DE123456789",
		Address: Address{City: "Berlin", PostalCode: "10115", CountryCode: "DE"},
	}
}

func buyer() Party {
	return Party{
		Name:    "Kunde AG",
		Address: Address{City: "München", PostalCode: "80331", CountryCode: "DE"},
	}
}

// Scenario 1: domestic, two lines, 19%.
func TestTotalsScenario1DomesticTwoLines(t *testing.T) {
	b := NewBuilder("RE-2024-001", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(seller()).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("80"), Unit: "HUR", UnitPrice: dec("120"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Consulting"}).
		AddLine(LineItem{ID: "2", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("49.90"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Materials"})

	inv := mustBuild(t, b)

	if got := FormatAmount(inv.Totals.LineNetTotal); got != "9649.90" {
		t.Errorf("line_net_total = %s, want 9649.90", got)
	}
	if got := FormatAmount(inv.Totals.VATTotal); got != "1833.48" {
		t.Errorf("vat_total = %s, want 1833.48", got)
	}
	if got := FormatAmount(inv.Totals.GrossTotal); got != "11483.38" {
		t.Errorf("gross_total = %s, want 11483.38", got)
	}
	if got := FormatAmount(inv.Totals.AmountDue); got != "11483.38" {
		t.Errorf("amount_due = %s, want 11483.38", got)
	}
	if len(inv.Totals.VATBreakdown) != 1 {
		t.Errorf("vat_breakdown length = %d, want 1", len(inv.Totals.VATBreakdown))
	}
}

// Scenario 2: mixed 7% + 19%.
func TestTotalsScenario2Mixed(t *testing.T) {
	b := NewBuilder("RE-2024-002", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(seller()).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("3"), Unit: "C62", UnitPrice: dec("29.99"), TaxCategory: StandardRate, TaxRate: dec("7"), ItemName: "Books"}).
		AddLine(LineItem{ID: "2", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("199"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Hardware"})

	inv := mustBuild(t, b)

	if len(inv.Totals.VATBreakdown) != 2 {
		t.Fatalf("vat_breakdown length = %d, want 2", len(inv.Totals.VATBreakdown))
	}
	row7 := inv.Totals.VATBreakdown[0]
	row19 := inv.Totals.VATBreakdown[1]
	if FormatAmount(row7.TaxableAmount) != "89.97" || FormatAmount(row7.TaxAmount) != "6.30" {
		t.Errorf("7%% row = taxable %s tax %s, want 89.97/6.30", FormatAmount(row7.TaxableAmount), FormatAmount(row7.TaxAmount))
	}
	if FormatAmount(row19.TaxableAmount) != "199.00" || FormatAmount(row19.TaxAmount) != "37.81" {
		t.Errorf("19%% row = taxable %s tax %s, want 199.00/37.81", FormatAmount(row19.TaxableAmount), FormatAmount(row19.TaxAmount))
	}
	if got := FormatAmount(inv.Totals.VATTotal); got != "44.11" {
		t.Errorf("vat_total = %s, want 44.11", got)
	}
}

// Scenario 3: Kleinunternehmer.
func TestTotalsScenario3Kleinunternehmer(t *testing.T) {
	b := NewBuilder("RE-2024-003", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(seller()).
		WithBuyer(buyer()).
		WithVatScenario(Kleinunternehmer).
		AddNote("Gemäß §19 UStG wird keine Umsatzsteuer berechnet.", "").
		AddLine(LineItem{ID: "1", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("2500"), TaxCategory: NotSubjectToVAT, TaxRate: dec("0"), ItemName: "Service"})

	inv := mustBuild(t, b)

	if got := FormatAmount(inv.Totals.VATTotal); got != "0.00" {
		t.Errorf("vat_total = %s, want 0.00", got)
	}
	if got := FormatAmount(inv.Totals.GrossTotal); got != "2500.00" {
		t.Errorf("gross_total = %s, want 2500.00", got)
	}
	row := inv.Totals.VATBreakdown[0]
	if row.ExemptionReasonCode != "vatex-eu-o" {
		t.Errorf("exemption reason code = %q, want vatex-eu-o", row.ExemptionReasonCode)
	}
	if !containsAll(row.ExemptionReason, "Kleinunternehmer") {
		t.Errorf("exemption reason %q does not mention Kleinunternehmer", row.ExemptionReason)
	}
}

// Scenario 4: reverse charge to AT.
func TestTotalsScenario4ReverseCharge(t *testing.T) {
	atBuyer := Party{
		Name:    "Wien GmbH",
		VATID:   "ATU12345678",
		Address: Address{City: "Wien", PostalCode: "1010", CountryCode: "AT"},
	}
	b := NewBuilder("RE-2024-004", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(seller()).
		WithBuyer(atBuyer).
		WithVatScenario(ScenarioReverseCharge).
		AddNote("Steuerschuldnerschaft des Leistungsempfängers gemäß §13b UStG", "").
		AddLine(LineItem{ID: "1", Quantity: dec("40"), Unit: "HUR", UnitPrice: dec("150"), TaxCategory: ReverseCharge, TaxRate: dec("0"), ItemName: "Consulting"})

	inv := mustBuild(t, b)

	if got := FormatAmount(inv.Totals.VATTotal); got != "0.00" {
		t.Errorf("vat_total = %s, want 0.00", got)
	}
	if got := FormatAmount(inv.Totals.GrossTotal); got != "6000.00" {
		t.Errorf("gross_total = %s, want 6000.00", got)
	}
	if !containsAll(inv.Totals.VATBreakdown[0].ExemptionReason, "13b") {
		t.Errorf("exemption reason does not mention §13b: %q", inv.Totals.VATBreakdown[0].ExemptionReason)
	}
}

// Scenario 5: allowances + charges.
func TestTotalsScenario5AllowancesCharges(t *testing.T) {
	b := NewBuilder("RE-2024-005", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(seller()).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("10"), Unit: "C62", UnitPrice: dec("100"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Widgets"}).
		AddAllowance(AllowanceCharge{Amount: dec("50"), TaxCategory: StandardRate, TaxRate: dec("19"), Reason: "Rebate"}).
		AddCharge(AllowanceCharge{Amount: dec("25"), TaxCategory: StandardRate, TaxRate: dec("19"), Reason: "Shipping"})

	inv := mustBuild(t, b)

	checks := map[string]string{
		"line_net_total":   FormatAmount(inv.Totals.LineNetTotal),
		"allowances_total": FormatAmount(inv.Totals.AllowancesTotal),
		"charges_total":    FormatAmount(inv.Totals.ChargesTotal),
		"net_total":        FormatAmount(inv.Totals.NetTotal),
		"vat_total":        FormatAmount(inv.Totals.VATTotal),
		"gross_total":      FormatAmount(inv.Totals.GrossTotal),
	}
	want := map[string]string{
		"line_net_total":   "1000.00",
		"allowances_total": "50.00",
		"charges_total":    "25.00",
		"net_total":        "975.00",
		"vat_total":        "185.25",
		"gross_total":      "1160.25",
	}
	for k, w := range want {
		if checks[k] != w {
			t.Errorf("%s = %s, want %s", k, checks[k], w)
		}
	}
}

// P8: commercial rounding edge cases.
func TestRoundHalfUpEdgeCases(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0.125", "0.13"},
		{"-0.125", "-0.13"},
		{"0.005", "0.01"},
		{"2.675", "2.68"},
	}
	for _, c := range cases {
		got := RoundHalfUp(dec(c.in), 2).String()
		if got != c.want {
			t.Errorf("RoundHalfUp(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

// P6: VAT breakdown rows are strictly ascending by (category code, rate).
func TestVATBreakdownOrdering(t *testing.T) {
	b := NewBuilder("RE-2024-006", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(seller()).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("100"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "A"}).
		AddLine(LineItem{ID: "2", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("100"), TaxCategory: StandardRate, TaxRate: dec("7"), ItemName: "B"}).
		AddLine(LineItem{ID: "3", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("100"), TaxCategory: ZeroRated, TaxRate: dec("0"), ItemName: "C"})

	inv := mustBuild(t, b)
	bd := inv.Totals.VATBreakdown
	for i := 1; i < len(bd); i++ {
		prevKey := bd[i-1].Category.Code()
		key := bd[i].Category.Code()
		if prevKey > key || (prevKey == key && bd[i-1].Rate.GreaterThanOrEqual(bd[i].Rate)) {
			t.Errorf("breakdown not strictly ascending at index %d: %v then %v", i, bd[i-1], bd[i])
		}
	}
}
