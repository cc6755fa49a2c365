package einvoice

import (
	"sort"

	"github.com/shopspring/decimal"
)

// exemptionReason is the default VATEX reason text and code for a VAT
// scenario, used when the caller hasn't supplied one on the breakdown
// row (§4.E step 5).
type exemptionReason struct {
	Text string
	Code string
}

var scenarioExemptionReasons = map[VatScenario]exemptionReason{
	Kleinunternehmer: {
		Text: "Kein Ausweis von Umsatzsteuer, da Kleinunternehmer gemäß §19 UStG",
		Code: "vatex-eu-o",
	},
	ScenarioReverseCharge: {
		Text: "Steuerschuldnerschaft des Leistungsempfängers gemäß §13b UStG",
		Code: "vatex-eu-ae",
	},
	ScenarioIntraCommunitySupply: {
		Text: "Innergemeinschaftliche Lieferung gemäß §4 Nr. 1b UStG",
		Code: "vatex-eu-ic",
	},
	ScenarioExport: {
		Text: "Steuerfreie Ausfuhrlieferung gemäß §4 Nr. 1a UStG",
		Code: "vatex-eu-g",
	},
}

const genericExemptCode = "vatex-eu-e"
const genericExemptText = "Umsatzsteuerfrei"

// vatGroupKey groups line and document amounts by (category, rate)
// using value equality on both, per §4.E step 3.
type vatGroupKey struct {
	category TaxCategory
	rate     string // decimal.Decimal is not comparable as a map key; compare by canonical string
}

// CalculateTotals runs the totals engine (§4.E) on inv in place: it
// fills LineAmount on every line and populates inv.Totals. prepaid is
// subtracted from the gross total to compute AmountDue.
func CalculateTotals(inv *Invoice, prepaid decimal.Decimal) {
	// Step 1: per-line amount at full precision.
	for i := range inv.Lines {
		line := &inv.Lines[i]
		amount := line.Quantity.Mul(line.UnitPrice)
		for _, a := range line.Allowances {
			amount = amount.Sub(a.Amount)
		}
		for _, c := range line.Charges {
			amount = amount.Add(c.Amount)
		}
		line.LineAmount = amount
	}

	// Step 2: document-level sums at full precision.
	lineNetTotal := decimal.Zero
	for _, line := range inv.Lines {
		lineNetTotal = lineNetTotal.Add(line.LineAmount)
	}

	allowancesTotal := decimal.Zero
	for _, a := range inv.Allowances {
		allowancesTotal = allowancesTotal.Add(a.Amount)
	}
	chargesTotal := decimal.Zero
	for _, c := range inv.Charges {
		chargesTotal = chargesTotal.Add(c.Amount)
	}

	// Step 3: group taxable amounts by (category, rate).
	type group struct {
		key           vatGroupKey
		category      TaxCategory
		rate          decimal.Decimal
		taxableAmount decimal.Decimal
	}
	order := []vatGroupKey{}
	groups := map[vatGroupKey]*group{}

	groupFor := func(cat TaxCategory, rate decimal.Decimal) *group {
		key := vatGroupKey{category: cat, rate: rate.String()}
		g, ok := groups[key]
		if !ok {
			g = &group{key: key, category: cat, rate: rate, taxableAmount: decimal.Zero}
			groups[key] = g
			order = append(order, key)
		}
		return g
	}

	for _, line := range inv.Lines {
		g := groupFor(line.TaxCategory, line.TaxRate)
		g.taxableAmount = g.taxableAmount.Add(line.LineAmount)
	}
	for _, a := range inv.Allowances {
		g := groupFor(a.TaxCategory, a.TaxRate)
		g.taxableAmount = g.taxableAmount.Sub(a.Amount)
	}
	for _, c := range inv.Charges {
		g := groupFor(c.TaxCategory, c.TaxRate)
		g.taxableAmount = g.taxableAmount.Add(c.Amount)
	}

	// Step 4 & 5: tax amount and exemption reason, per group.
	breakdown := make([]VatBreakdown, 0, len(order))
	vatTotal := decimal.Zero
	for _, key := range order {
		g := groups[key]
		taxAmount := RoundHalfUp(g.taxableAmount.Mul(g.rate).Div(decimal.NewFromInt(100)), 2)
		vatTotal = vatTotal.Add(taxAmount)

		row := VatBreakdown{
			Category:      g.category,
			Rate:          g.rate,
			TaxableAmount: g.taxableAmount,
			TaxAmount:     taxAmount,
		}
		if g.category.ExemptionReasonRequired() {
			row.ExemptionReason, row.ExemptionReasonCode = defaultExemptionReason(inv.VatScenario, g.category)
		}
		breakdown = append(breakdown, row)
	}

	// §4.E / I7: sort deterministically by (category letter, rate ascending).
	sort.SliceStable(breakdown, func(i, j int) bool {
		if breakdown[i].Category.Code() != breakdown[j].Category.Code() {
			return breakdown[i].Category.Code() < breakdown[j].Category.Code()
		}
		return breakdown[i].Rate.LessThan(breakdown[j].Rate)
	})

	netTotal := lineNetTotal.Sub(allowancesTotal).Add(chargesTotal)
	grossTotal := netTotal.Add(vatTotal)
	amountDue := grossTotal.Sub(prepaid)

	inv.Totals = &Totals{
		LineNetTotal:    lineNetTotal,
		AllowancesTotal: allowancesTotal,
		ChargesTotal:    chargesTotal,
		NetTotal:        netTotal,
		VATTotal:        vatTotal,
		GrossTotal:      grossTotal,
		Prepaid:         prepaid,
		AmountDue:       amountDue,
		VATBreakdown:    breakdown,
	}
}

// defaultExemptionReason implements §4.E step 5's scenario -> reason
// mapping. Exempt (generic, scenario-independent) falls back to a
// generic VAT-exempt reason when no scenario-specific text applies.
func defaultExemptionReason(scenario VatScenario, category TaxCategory) (text, code string) {
	if r, ok := scenarioExemptionReasons[scenario]; ok {
		return r.Text, r.Code
	}
	if category == Exempt {
		return genericExemptText, genericExemptCode
	}
	return "", ""
}
