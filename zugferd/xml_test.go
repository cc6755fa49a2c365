package zugferd_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/einvoice"
	"github.com/fiskal-dev/einvoice/zugferd"
)

func testInvoice(t *testing.T) *einvoice.Invoice {
	t.Helper()
	qty, _ := decimal.NewFromString("80")
	price, _ := decimal.NewFromString("120")
	rate, _ := decimal.NewFromString("19")

	b := einvoice.NewBuilder("RE-2024-001", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithSeller(einvoice.Party{
			Name:    "ACME GmbH",
			VATID:   "DE123456789",
			Address: einvoice.Address{City: "Berlin", PostalCode: "10115", CountryCode: "DE"},
		}).
		WithBuyer(einvoice.Party{
			Name:    "Kunde AG",
			Address: einvoice.Address{City: "München", PostalCode: "80331", CountryCode: "DE"},
		}).
		AddLine(einvoice.LineItem{ID: "1", Quantity: qty, Unit: "HUR", UnitPrice: price, TaxCategory: einvoice.StandardRate, TaxRate: rate, ItemName: "Consulting"})

	inv, err := b.BuildUnchecked()
	if err != nil {
		t.Fatalf("BuildUnchecked: %v", err)
	}
	return inv
}

func TestToXMLReducesContentForMinimum(t *testing.T) {
	inv := testInvoice(t)

	full, err := zugferd.ToXML(inv, zugferd.EN16931)
	if err != nil {
		t.Fatalf("ToXML(EN16931): %v", err)
	}
	if !bytes.Contains(full, []byte("IncludedSupplyChainTradeLineItem")) {
		t.Error("EN16931 profile should carry line items")
	}

	minimal, err := zugferd.ToXML(inv, zugferd.Minimum)
	if err != nil {
		t.Fatalf("ToXML(Minimum): %v", err)
	}
	if bytes.Contains(minimal, []byte("IncludedSupplyChainTradeLineItem")) {
		t.Error("Minimum profile must not carry line items")
	}
	if !strings.Contains(string(minimal), zugferd.Minimum.GuidelineURN()) {
		t.Error("Minimum profile document does not carry its guideline URN")
	}
}

func TestToXMLRequiresTotals(t *testing.T) {
	inv := &einvoice.Invoice{Number: "X"}
	if _, err := zugferd.ToXML(inv, zugferd.Basic); err == nil {
		t.Error("ToXML should fail for an invoice with no computed totals")
	}
}
