package einvoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiskal-dev/einvoice/codelists"
	"github.com/fiskal-dev/einvoice/rules"
)

// smallInvoiceCap is the §33 UStDV gross-total ceiling for the waived
// small-invoice content requirements.
var smallInvoiceCap = decimal.NewFromInt(250)

// ValidateUStG checks the German §14 UStG mandatory-content baseline
// and the §13b/§19/§33 scenario obligations. It is the layer that runs
// under Build.
func ValidateUStG(inv *Invoice) []Diagnostic {
	var ds []Diagnostic

	if inv.Number == "" {
		ds = append(ds, errorDiag("number", "invoice number must not be empty", rules.UStGNumber))
	}

	if len(inv.CurrencyCode) != 3 || !codelists.IsKnownCurrency(inv.CurrencyCode) {
		ds = append(ds, errorDiag("currency_code", "currency code must be a known 3-letter ISO 4217 code", rules.UStGCurrency))
	}

	smallInvoice := inv.VatScenario == SmallInvoice

	if inv.Seller.Name == "" {
		ds = append(ds, errorDiag("seller.name", "seller name must not be empty", rules.UStGSellerName))
	}
	if !addressComplete(inv.Seller.Address) {
		ds = append(ds, errorDiag("seller.address", "seller address must carry city, postal code and a known country", rules.UStGSellerAddress))
	}

	if !smallInvoice {
		if inv.Buyer.Name == "" {
			ds = append(ds, errorDiag("buyer.name", "buyer name must not be empty", rules.UStGBuyerName))
		}
		if !addressComplete(inv.Buyer.Address) {
			ds = append(ds, errorDiag("buyer.address", "buyer address must carry city, postal code and a known country", rules.UStGBuyerAddress))
		}
	}

	if !smallInvoice && inv.TaxRepresentative == nil {
		if inv.Seller.VATID == "" && inv.Seller.TaxNumber == "" {
			ds = append(ds, errorDiag("seller", "seller must carry a VAT id or tax number", rules.UStGSellerTaxID))
		}
	}

	if inv.Seller.VATID != "" && !validVATID(inv.Seller.VATID) {
		ds = append(ds, errorDiag("seller.vat_id", "seller VAT id has an invalid format", rules.UStGVATIDFormat))
	}
	if inv.Buyer.VATID != "" && !validVATID(inv.Buyer.VATID) {
		ds = append(ds, errorDiag("buyer.vat_id", "buyer VAT id has an invalid format", rules.UStGVATIDFormat))
	}

	if !smallInvoice && inv.TaxPointDate == nil && inv.InvoicingPeriod == nil {
		ds = append(ds, errorDiag("tax_point_date", "tax point date or invoicing period is required", rules.UStGDeliveryDate))
	}

	if len(inv.Lines) == 0 {
		ds = append(ds, errorDiag("lines", "invoice must have at least one line", rules.UStGAtLeastOneLine))
	}
	for i, l := range inv.Lines {
		if l.ID == "" {
			ds = append(ds, errorDiag(lineField(i, "id"), "line id must not be empty", rules.UStGLineID))
		}
		if l.Quantity.IsZero() {
			ds = append(ds, errorDiag(lineField(i, "quantity"), "line quantity must not be zero", rules.UStGLineQuantity))
		}
		if l.UnitPrice.IsNegative() {
			ds = append(ds, errorDiag(lineField(i, "unit_price"), "line unit price must not be negative", rules.UStGLinePrice))
		}
		if l.ItemName == "" {
			ds = append(ds, errorDiag(lineField(i, "item_name"), "line item name must not be empty", rules.UStGLineName))
		}
		if l.TaxCategory.ZeroRateRequired() && !l.TaxRate.IsZero() {
			ds = append(ds, errorDiag(lineField(i, "tax_rate"), fmt.Sprintf("category %s requires a zero VAT rate", l.TaxCategory.Code()), rules.UStGRateConsistency))
		}
		if !l.TaxCategory.ZeroRateRequired() && l.TaxCategory != TaxCategoryUnspecified && l.TaxRate.IsZero() {
			ds = append(ds, errorDiag(lineField(i, "tax_rate"), "category S requires a non-zero VAT rate", rules.UStGRateConsistency))
		}
	}

	switch inv.VatScenario {
	case Kleinunternehmer:
		if !anyNoteContains(inv.Notes, "19", "UStG") {
			ds = append(ds, errorDiag("notes", "Kleinunternehmer invoices require a note mentioning §19 UStG", rules.UStGKleinunternehmerNote))
		}
		for i, l := range inv.Lines {
			if l.TaxCategory != NotSubjectToVAT {
				ds = append(ds, errorDiag(lineField(i, "tax_category"),
					fmt.Sprintf("Kleinunternehmer invoices require category O on every line, found %s", l.TaxCategory.Code()),
					rules.UStGKleinunternehmerCategory))
			}
		}
	case ScenarioReverseCharge:
		if inv.Buyer.VATID == "" {
			ds = append(ds, errorDiag("buyer.vat_id", "reverse-charge invoices require a buyer VAT id", rules.UStGReverseChargeBuyerVAT))
		}
		if !anyNoteContains(inv.Notes, "13b", "UStG") {
			ds = append(ds, errorDiag("notes", "reverse-charge invoices require a note mentioning §13b UStG", rules.UStGReverseChargeNote))
		}
		for i, l := range inv.Lines {
			if l.TaxCategory != ReverseCharge {
				ds = append(ds, errorDiag(lineField(i, "tax_category"),
					fmt.Sprintf("reverse-charge invoices require category AE on every line, found %s", l.TaxCategory.Code()),
					rules.UStGReverseChargeCategory))
			}
		}
	case ScenarioIntraCommunitySupply:
		if inv.Seller.VATID == "" || inv.Buyer.VATID == "" {
			ds = append(ds, errorDiag("seller.vat_id", "intra-community supply requires both seller and buyer VAT ids", rules.UStGICSVATIDs))
		}
		if inv.Buyer.Address.CountryCode == inv.Seller.Address.CountryCode {
			ds = append(ds, errorDiag("buyer.address.country_code", "intra-community supply requires a buyer country different from the seller's", rules.UStGICSCountry))
		}
		for i, l := range inv.Lines {
			if l.TaxCategory != IntraCommunitySupply {
				ds = append(ds, errorDiag(lineField(i, "tax_category"),
					fmt.Sprintf("intra-community supply requires category K on every line, found %s", l.TaxCategory.Code()),
					rules.UStGICSCategory))
			}
		}
	case ScenarioExport:
		for i, l := range inv.Lines {
			if l.TaxCategory != Export {
				ds = append(ds, errorDiag(lineField(i, "tax_category"),
					fmt.Sprintf("export invoices require category G on every line, found %s", l.TaxCategory.Code()),
					rules.UStGExportCategory))
			}
		}
	case SmallInvoice:
		if inv.Totals != nil && inv.Totals.GrossTotal.GreaterThan(smallInvoiceCap) {
			ds = append(ds, errorDiag("totals.gross_total", "a §33 UStDV small invoice's gross total must not exceed 250", rules.UStGSmallInvoiceCap))
		}
	case Domestic, Mixed, ScenarioUnspecified:
		// no additional restriction
	}

	return ds
}
