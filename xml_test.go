package einvoice

import (
	"bytes"
	"testing"
	"time"
)

func scenario1Invoice(t *testing.T) *Invoice {
	t.Helper()
	b := NewBuilder("RE-2024-001", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)).
		WithCurrency("EUR", "").
		WithBuyerReference("04011000-1234512345-06").
		WithSeller(seller()).
		WithBuyer(buyer()).
		AddLine(LineItem{ID: "1", Quantity: dec("80"), Unit: "HUR", UnitPrice: dec("120"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Consulting"}).
		AddLine(LineItem{ID: "2", Quantity: dec("1"), Unit: "C62", UnitPrice: dec("49.90"), TaxCategory: StandardRate, TaxRate: dec("19"), ItemName: "Materials"})
	return mustBuild(t, b)
}

func TestUBLRoundTrip(t *testing.T) {
	inv := scenario1Invoice(t)

	data, err := ToUBLXML(inv)
	if err != nil {
		t.Fatalf("ToUBLXML: %v", err)
	}

	parsed, err := FromXML(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}

	if parsed.Number != inv.Number {
		t.Errorf("Number = %q, want %q", parsed.Number, inv.Number)
	}
	if !parsed.IssueDate.Equal(inv.IssueDate) {
		t.Errorf("IssueDate = %v, want %v", parsed.IssueDate, inv.IssueDate)
	}
	if parsed.Seller.Name != inv.Seller.Name || parsed.Seller.VATID != inv.Seller.VATID {
		t.Errorf("Seller = %+v, want %+v", parsed.Seller, inv.Seller)
	}
	if parsed.Buyer.Name != inv.Buyer.Name {
		t.Errorf("Buyer.Name = %q, want %q", parsed.Buyer.Name, inv.Buyer.Name)
	}
	if len(parsed.Lines) != len(inv.Lines) {
		t.Fatalf("len(Lines) = %d, want %d", len(parsed.Lines), len(inv.Lines))
	}
	if FormatAmount(parsed.Totals.GrossTotal) != FormatAmount(inv.Totals.GrossTotal) {
		t.Errorf("GrossTotal = %s, want %s", FormatAmount(parsed.Totals.GrossTotal), FormatAmount(inv.Totals.GrossTotal))
	}

	// P2/scenario 7: second emission is byte-identical to the first.
	data2, err := ToUBLXML(parsed)
	if err != nil {
		t.Fatalf("ToUBLXML (second emission): %v", err)
	}
	if !bytes.Equal(data, data2) {
		t.Errorf("round-trip UBL emission is not byte-identical:\nfirst:  %s\nsecond: %s", data, data2)
	}
}

func TestCIIRoundTrip(t *testing.T) {
	inv := scenario1Invoice(t)

	data, err := ToCIIXML(inv)
	if err != nil {
		t.Fatalf("ToCIIXML: %v", err)
	}

	parsed, err := FromXML(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("FromXML: %v", err)
	}

	if parsed.Number != inv.Number {
		t.Errorf("Number = %q, want %q", parsed.Number, inv.Number)
	}
	if len(parsed.Lines) != len(inv.Lines) {
		t.Fatalf("len(Lines) = %d, want %d", len(parsed.Lines), len(inv.Lines))
	}
	if FormatAmount(parsed.Totals.GrossTotal) != FormatAmount(inv.Totals.GrossTotal) {
		t.Errorf("GrossTotal = %s, want %s", FormatAmount(parsed.Totals.GrossTotal), FormatAmount(inv.Totals.GrossTotal))
	}
}

// P5: serializers are pure functions of the invoice.
func TestSerializersAreDeterministic(t *testing.T) {
	inv := scenario1Invoice(t)

	ubl1, _ := ToUBLXML(inv)
	ubl2, _ := ToUBLXML(inv)
	if !bytes.Equal(ubl1, ubl2) {
		t.Error("ToUBLXML is not deterministic across calls")
	}

	cii1, _ := ToCIIXML(inv)
	cii2, _ := ToCIIXML(inv)
	if !bytes.Equal(cii1, cii2) {
		t.Error("ToCIIXML is not deterministic across calls")
	}
}

// P7: FromXML never panics on malformed or unrecognized input.
func TestFromXMLNeverPanics(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte(""),
		[]byte("not xml at all"),
		[]byte("<broken"),
		[]byte(`<?xml version="1.0"?><Unknown xmlns="urn:example:nothing"/>`),
		[]byte(`<?xml version="1.0"?><Invoice xmlns="` + nsUBLInvoice + `"></Invoice>`),
	}
	for i, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("input %d panicked: %v", i, r)
				}
			}()
			_, _ = FromXML(bytes.NewReader(in))
		}()
	}
}

func TestFromXMLUnknownNamespace(t *testing.T) {
	_, err := FromXML(bytes.NewReader([]byte(`<?xml version="1.0"?><Unknown xmlns="urn:example:nothing"/>`)))
	if err == nil {
		t.Fatal("expected an error for an unrecognized namespace")
	}
	if err.Error() != "cannot detect syntax" {
		t.Errorf("error = %q, want %q", err.Error(), "cannot detect syntax")
	}
}
