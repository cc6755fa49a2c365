package einvoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/einvoice/rules"
)

var arithmeticTolerance = decimal.New(1, -2)

// ValidateArithmetic cross-checks §4.E's invariants (I2-I4) against a
// built invoice's populated totals. P1 requires this to return []
// for every invoice produced by Build/BuildStrict.
func ValidateArithmetic(inv *Invoice) []Diagnostic {
	var ds []Diagnostic

	if inv.Totals == nil {
		return []Diagnostic{errorDiag("totals", "totals have not been computed", rules.BRDEC01)}
	}

	lineNetTotal := decimal.Zero
	for i, l := range inv.Lines {
		expected := l.Quantity.Mul(l.UnitPrice)
		for _, a := range l.Allowances {
			expected = expected.Sub(a.Amount)
		}
		for _, c := range l.Charges {
			expected = expected.Add(c.Amount)
		}
		if !l.LineAmount.Equal(expected) {
			ds = append(ds, errorDiag(lineField(i, "line_amount"), "line amount does not equal quantity * unit price minus allowances plus charges", rules.BRDEC01))
		}
		lineNetTotal = lineNetTotal.Add(l.LineAmount)
	}

	if !lineNetTotal.Equal(inv.Totals.LineNetTotal) {
		ds = append(ds, errorDiag("totals.line_net_total", "line net total does not equal the sum of line amounts", rules.BRDEC01))
	}

	expectedNet := inv.Totals.LineNetTotal.Sub(inv.Totals.AllowancesTotal).Add(inv.Totals.ChargesTotal)
	if !expectedNet.Equal(inv.Totals.NetTotal) {
		ds = append(ds, errorDiag("totals.net_total", "net total does not equal line net total minus allowances plus charges", rules.BRDEC01))
	}

	vatTotal := decimal.Zero
	for i, row := range inv.Totals.VATBreakdown {
		vatTotal = vatTotal.Add(row.TaxAmount)
		expected := RoundHalfUp(row.TaxableAmount.Mul(row.Rate).Div(decimal.NewFromInt(100)), 2)
		if row.TaxAmount.Sub(expected).Abs().GreaterThan(arithmeticTolerance) {
			ds = append(ds, errorDiag(fmt.Sprintf("totals.vat_breakdown[%d].tax_amount", i),
				"tax amount must equal round_half_up(taxable_amount * rate / 100, 2)", rules.BRDEC01))
		}
	}
	if !vatTotal.Equal(inv.Totals.VATTotal) {
		ds = append(ds, errorDiag("totals.vat_total", "VAT total does not equal the sum of the VAT breakdown rows", rules.BRDEC01))
	}

	expectedGross := inv.Totals.NetTotal.Add(inv.Totals.VATTotal)
	if !expectedGross.Equal(inv.Totals.GrossTotal) {
		ds = append(ds, errorDiag("totals.gross_total", "gross total does not equal net total plus VAT total", rules.BRDEC01))
	}

	expectedDue := inv.Totals.GrossTotal.Sub(inv.Totals.Prepaid)
	if !expectedDue.Equal(inv.Totals.AmountDue) {
		ds = append(ds, errorDiag("totals.amount_due", "amount due does not equal gross total minus prepaid", rules.BRDEC01))
	}

	for i := 1; i < len(inv.Totals.VATBreakdown); i++ {
		prev, cur := inv.Totals.VATBreakdown[i-1], inv.Totals.VATBreakdown[i]
		if prev.Category.Code() > cur.Category.Code() ||
			(prev.Category.Code() == cur.Category.Code() && prev.Rate.GreaterThan(cur.Rate)) {
			ds = append(ds, errorDiag(fmt.Sprintf("totals.vat_breakdown[%d]", i), "VAT breakdown rows must be sorted by (category, rate) ascending", rules.BRDEC01))
		}
	}

	return ds
}
