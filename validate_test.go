package einvoice

import (
	"errors"
	"testing"
	"time"
)

// Scenario 6: SmallInvoice <= 250 EUR succeeds; above the cap fails
// validation with a message mentioning the 250 limit.
func TestScenario6SmallInvoiceCap(t *testing.T) {
	ok := NewBuilder("RE-2024-006", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithVatScenario(SmallInvoice).
		WithSeller(seller()).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("2"), Unit: "C62", UnitPrice: dec("3.50"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Snacks"})

	if _, err := ok.Build(); err != nil {
		t.Fatalf("Build() for a small invoice under the cap should succeed, got: %v", err)
	}

	tooLarge := NewBuilder("RE-2024-007", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithVatScenario(SmallInvoice).
		WithSeller(seller()).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("300"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Equipment"})

	_, err := tooLarge.Build()
	if err == nil {
		t.Fatal("Build() for a small invoice over the cap should fail")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	found := false
	for _, d := range verr.Violations() {
		if containsAll(d.Message, "250") {
			found = true
		}
	}
	if !found {
		t.Errorf("no violation message mentions the 250 cap: %+v", verr.Violations())
	}
}

// P9: if §14 UStG and EN 16931 both report no diagnostics, arithmetic
// validation must also report none.
func TestValidatorMonotonicity(t *testing.T) {
	inv := scenario1Invoice(t)
	// Scenario 1 carries no delivery date, which §14 UStG requires.
	taxPoint := inv.IssueDate
	inv.TaxPointDate = &taxPoint

	if ds := ValidateUStG(inv); len(ds) != 0 {
		t.Skipf("invoice fails UStG, precondition not met: %+v", ds)
	}
	if ds := ValidateEN16931(inv); len(ds) != 0 {
		t.Skipf("invoice fails EN16931, precondition not met: %+v", ds)
	}
	if ds := ValidateArithmetic(inv); len(ds) != 0 {
		t.Errorf("ValidateArithmetic reported diagnostics despite UStG/EN16931 passing: %+v", ds)
	}
}

func TestBuildUncheckedSkipsValidation(t *testing.T) {
	// An empty seller address fails §14 UStG but is not a builder
	// precondition, so BuildUnchecked must still succeed while Build
	// must not.
	incompleteSeller := Party{Name: "ACME GmbH"}

	uncheckedBuilder := NewBuilder("RE-2024-008", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(incompleteSeller).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("1"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "X"})

	inv, err := uncheckedBuilder.BuildUnchecked()
	if err != nil {
		t.Fatalf("BuildUnchecked should not run validators: %v", err)
	}
	if ds := ValidateUStG(inv); len(ds) == 0 {
		t.Error("expected the incomplete-seller invoice to fail UStG validation when checked explicitly")
	}

	strictBuilder := NewBuilder("RE-2024-009", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(incompleteSeller).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("1"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "X"})

	if _, err := strictBuilder.Build(); err == nil {
		t.Error("Build should fail for an invoice with an incomplete seller address")
	}
}
