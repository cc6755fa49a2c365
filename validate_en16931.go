package einvoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/einvoice/codelists"
	"github.com/fiskal-dev/einvoice/rules"
)

// brco17Tolerance is the rounding-accumulation tolerance BR-CO-17
// allows between a VAT breakdown row's stated tax amount and its
// recomputed value.
var brco17Tolerance = decimal.New(2, -2)

// ValidateEN16931 checks the EN 16931 business rules. It runs in
// addition to ValidateUStG under BuildStrict.
func ValidateEN16931(inv *Invoice) []Diagnostic {
	var ds []Diagnostic

	seen := map[string]bool{}
	for i, l := range inv.Lines {
		if l.ID == "" {
			continue
		}
		if seen[l.ID] {
			ds = append(ds, errorDiag(lineField(i, "id"), fmt.Sprintf("duplicate line id %q", l.ID), rules.BRCO4))
		}
		seen[l.ID] = true
	}

	if !codelists.IsKnownCountry(inv.Seller.Address.CountryCode) {
		ds = append(ds, errorDiag("seller.address.country_code", "seller country code must be present and known", rules.BR11))
	}
	if !codelists.IsKnownCountry(inv.Buyer.Address.CountryCode) {
		ds = append(ds, errorDiag("buyer.address.country_code", "buyer country code must be present and known", rules.BR12))
	}

	for i, a := range inv.Allowances {
		if a.Amount.IsNegative() {
			ds = append(ds, errorDiag(fmt.Sprintf("allowances[%d].amount", i), "document-level allowance amount must not be negative", rules.BRCO18))
		}
	}
	for i, c := range inv.Charges {
		if c.Amount.IsNegative() {
			ds = append(ds, errorDiag(fmt.Sprintf("charges[%d].amount", i), "document-level charge amount must not be negative", rules.BRCO18))
		}
	}

	if inv.Totals != nil {
		for i, row := range inv.Totals.VATBreakdown {
			expected := RoundHalfUp(row.TaxableAmount.Mul(row.Rate).Div(decimal.NewFromInt(100)), 2)
			diff := row.TaxAmount.Sub(expected).Abs()
			if diff.GreaterThan(brco17Tolerance) {
				ds = append(ds, errorDiag(fmt.Sprintf("totals.vat_breakdown[%d].tax_amount", i),
					"VAT category tax amount must equal taxable amount times rate within a 0.02 tolerance", rules.BRCO17))
			}

			ds = append(ds, categoryRateDiagnostics(i, row)...)

			if row.Category.ExemptionReasonRequired() && row.ExemptionReason == "" && row.ExemptionReasonCode == "" {
				ds = append(ds, errorDiag(fmt.Sprintf("totals.vat_breakdown[%d]", i),
					"exemption reason or reason code is required for this VAT category", exemptionRule(row.Category)))
			}
		}

		for _, field := range []struct {
			name  string
			value decimal.Decimal
		}{
			{"totals.net_total", inv.Totals.NetTotal},
			{"totals.vat_total", inv.Totals.VATTotal},
			{"totals.gross_total", inv.Totals.GrossTotal},
			{"totals.amount_due", inv.Totals.AmountDue},
		} {
			if !field.value.Equal(field.value.Round(2)) {
				ds = append(ds, errorDiag(field.name, "monetary total must carry at most two fractional digits", rules.BRDEC01))
			}
		}
	}

	for i, l := range inv.Lines {
		if l.Unit == "" || !codelists.IsKnownUnit(l.Unit) {
			ds = append(ds, errorDiag(lineField(i, "unit"), "line unit must be present and a known UN/CEFACT Rec-20 code", rules.BR26))
		}
	}

	for i, a := range inv.Allowances {
		if a.ReasonCode != "" && codelists.AllowanceReason(a.ReasonCode) == "Unknown" {
			ds = append(ds, warningDiag(fmt.Sprintf("allowances[%d].reason_code", i), "allowance reason code is not a known UNTDID 5189 code", rules.BRCO15))
		}
	}
	for i, c := range inv.Charges {
		if c.ReasonCode != "" && codelists.ChargeReason(c.ReasonCode) == "Unknown" {
			ds = append(ds, warningDiag(fmt.Sprintf("charges[%d].reason_code", i), "charge reason code is not a known UNTDID 7161 code", rules.BRCO15))
		}
	}

	return ds
}

// categoryRateDiagnostics implements BR-S-05/BR-Z-05/BR-E-05/BR-AE-05/
// BR-IC-05/BR-G-05/BR-O-05: a category's rate must be zero or non-zero
// as dictated by I5.
func categoryRateDiagnostics(i int, row VatBreakdown) []Diagnostic {
	field := fmt.Sprintf("totals.vat_breakdown[%d].rate", i)
	switch row.Category {
	case StandardRate:
		if row.Rate.IsZero() {
			return []Diagnostic{errorDiag(field, "standard rated VAT breakdown must have a rate greater than 0", rules.BRS05)}
		}
	case ZeroRated:
		if !row.Rate.IsZero() {
			return []Diagnostic{errorDiag(field, "zero rated VAT breakdown must have a rate of 0", rules.BRZ05)}
		}
	case Exempt:
		if !row.Rate.IsZero() {
			return []Diagnostic{errorDiag(field, "exempt VAT breakdown must have a rate of 0", rules.BRE05)}
		}
	case ReverseCharge:
		if !row.Rate.IsZero() {
			return []Diagnostic{errorDiag(field, "reverse charge VAT breakdown must have a rate of 0", rules.BRAE05)}
		}
	case IntraCommunitySupply:
		if !row.Rate.IsZero() {
			return []Diagnostic{errorDiag(field, "intra-community supply VAT breakdown must have a rate of 0", rules.BRIC05)}
		}
	case Export:
		if !row.Rate.IsZero() {
			return []Diagnostic{errorDiag(field, "export VAT breakdown must have a rate of 0", rules.BRG05)}
		}
	case NotSubjectToVAT:
		if !row.Rate.IsZero() {
			return []Diagnostic{errorDiag(field, "not-subject-to-VAT breakdown must have a rate of 0", rules.BRO05)}
		}
	}
	return nil
}

// exemptionRule picks the BR-*-10 rule identifier matching category.
func exemptionRule(cat TaxCategory) rules.Rule {
	switch cat {
	case Exempt:
		return rules.BRE10
	case ReverseCharge:
		return rules.BRAE10
	case IntraCommunitySupply:
		return rules.BRIC10
	case Export:
		return rules.BRG10
	case NotSubjectToVAT:
		return rules.BRO10
	default:
		return rules.BRE10
	}
}
