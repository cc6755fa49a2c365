package einvoice

import (
	"fmt"

	"github.com/fiskal-dev/einvoice/rules"
)

// ValidatePeppol checks the Peppol BIS Billing 3.0 CIUS on top of
// EN 16931. Like ValidateXRechnung it is not run by any Build* method.
func ValidatePeppol(inv *Invoice) []Diagnostic {
	var ds []Diagnostic

	if inv.BuyerReference == "" && inv.OrderReference == "" {
		ds = append(ds, errorDiag("buyer_reference", "a buyer reference or order reference must be provided", rules.PeppolR003))
	}

	if inv.Number == "" {
		ds = append(ds, errorDiag("number", "invoice number must not be empty", rules.PeppolR008))
	}
	if inv.Seller.Name == "" {
		ds = append(ds, errorDiag("seller.name", "seller name must not be empty", rules.PeppolR008))
	}
	if inv.Buyer.Name == "" {
		ds = append(ds, errorDiag("buyer.name", "buyer name must not be empty", rules.PeppolR008))
	}

	if inv.Buyer.ElectronicAddress == nil || inv.Buyer.ElectronicAddress.Value == "" {
		ds = append(ds, errorDiag("buyer.electronic_address", "buyer endpoint must be present", rules.PeppolR010))
	}
	if inv.Seller.ElectronicAddress == nil || inv.Seller.ElectronicAddress.Value == "" {
		ds = append(ds, errorDiag("seller.electronic_address", "seller endpoint must be present", rules.PeppolR020))
	}

	if inv.TypeCode == TypePartial || inv.TypeCode == TypeCorrected {
		if inv.Seller.Address.CountryCode != "DE" || inv.Buyer.Address.CountryCode != "DE" {
			ds = append(ds, errorDiag("type_code", "type codes 326/384 are permitted only when both parties are DE", rules.PeppolP0112))
		}
	}

	for i, l := range inv.Lines {
		if len(l.Charges) > 0 {
			ds = append(ds, errorDiag(lineField(i, "price"), "a line's price must not itself include a charge", rules.PeppolR044))
		}
	}

	ds = append(ds, percentageBaseDiagnostics("allowances", inv.Allowances, rules.PeppolR041)...)
	ds = append(ds, percentageBaseDiagnostics("charges", inv.Charges, rules.PeppolR042)...)
	for i, l := range inv.Lines {
		ds = append(ds, percentageBaseDiagnostics(lineField(i, "allowances"), l.Allowances, rules.PeppolR041)...)
		ds = append(ds, percentageBaseDiagnostics(lineField(i, "charges"), l.Charges, rules.PeppolR042)...)
	}

	if inv.Totals == nil || len(inv.Totals.VATBreakdown) == 0 {
		ds = append(ds, errorDiag("totals.vat_breakdown", "at least one VAT subtotal must be present", rules.PeppolR053))
	}

	if inv.Payment != nil && inv.Payment.MeansCode == 59 && inv.Payment.RemittanceInfo == "" {
		ds = append(ds, errorDiag("payment.remittance_info", "direct debit requires mandate/remittance information", rules.PeppolR061))
	}

	for i, l := range inv.Lines {
		if !l.Quantity.IsPositive() {
			ds = append(ds, errorDiag(lineField(i, "quantity"), "every line quantity must be strictly positive", rules.PeppolR121))
		}
	}

	return ds
}

// percentageBaseDiagnostics implements PEPPOL-R041/R042: percentage and
// base amount on an allowance/charge row must be both-or-neither.
func percentageBaseDiagnostics(fieldPrefix string, items []AllowanceCharge, rule rules.Rule) []Diagnostic {
	var ds []Diagnostic
	for i, item := range items {
		if (item.Percentage == nil) != (item.BaseAmount == nil) {
			ds = append(ds, errorDiag(fmt.Sprintf("%s[%d].percentage", fieldPrefix, i),
				"percentage and base amount must be both present or both absent", rule))
		}
	}
	return ds
}
