package einvoice

// TaxCategory is the closed UNTDID 5305 VAT category variant used
// throughout the model and both XML dialects (BT-151, BT-95, BT-102).
type TaxCategory int

const (
	// TaxCategoryUnspecified is the zero value; never valid on a built invoice.
	TaxCategoryUnspecified TaxCategory = iota
	// StandardRate is category S, the general VAT rate.
	StandardRate
	// ZeroRated is category Z, a 0% rate that is still a taxable supply.
	ZeroRated
	// Exempt is category E, VAT-exempt under national law.
	Exempt
	// ReverseCharge is category AE, VAT payable by the buyer (§13b UStG).
	ReverseCharge
	// IntraCommunitySupply is category K, §4 Nr. 1b UStG.
	IntraCommunitySupply
	// Export is category G, §4 Nr. 1a UStG.
	Export
	// NotSubjectToVAT is category O, outside the scope of VAT.
	NotSubjectToVAT
)

// Code returns the UNTDID 5305 letter code for the category.
func (c TaxCategory) Code() string {
	switch c {
	case StandardRate:
		return "S"
	case ZeroRated:
		return "Z"
	case Exempt:
		return "E"
	case ReverseCharge:
		return "AE"
	case IntraCommunitySupply:
		return "K"
	case Export:
		return "G"
	case NotSubjectToVAT:
		return "O"
	default:
		return ""
	}
}

func (c TaxCategory) String() string {
	switch c {
	case StandardRate:
		return "Standard rated"
	case ZeroRated:
		return "Zero rated"
	case Exempt:
		return "Exempt from VAT"
	case ReverseCharge:
		return "Reverse charge"
	case IntraCommunitySupply:
		return "Intra-community supply"
	case Export:
		return "Export outside the EU"
	case NotSubjectToVAT:
		return "Not subject to VAT"
	default:
		return "unspecified"
	}
}

// ParseTaxCategory parses a UNTDID 5305 letter code.
func ParseTaxCategory(code string) (TaxCategory, bool) {
	switch code {
	case "S":
		return StandardRate, true
	case "Z":
		return ZeroRated, true
	case "E":
		return Exempt, true
	case "AE":
		return ReverseCharge, true
	case "K":
		return IntraCommunitySupply, true
	case "G":
		return Export, true
	case "O":
		return NotSubjectToVAT, true
	default:
		return TaxCategoryUnspecified, false
	}
}

// ZeroRateRequired reports whether category requires a VAT rate of 0
// (I5: every category except S must carry a zero rate).
func (c TaxCategory) ZeroRateRequired() bool {
	switch c {
	case ZeroRated, Exempt, ReverseCharge, IntraCommunitySupply, Export, NotSubjectToVAT:
		return true
	default:
		return false
	}
}

// ExemptionReasonRequired reports whether the category's VAT breakdown
// row must carry an exemption reason or reason code (I6).
func (c TaxCategory) ExemptionReasonRequired() bool {
	switch c {
	case Exempt, ReverseCharge, IntraCommunitySupply, Export, NotSubjectToVAT:
		return true
	default:
		return false
	}
}

// InvoiceTypeCode is the UNTDID 1001 document-type code (BT-3).
type InvoiceTypeCode int

const (
	// TypeUnspecified is the zero value.
	TypeUnspecified InvoiceTypeCode = 0
	// TypeInvoice is the commercial invoice (380).
	TypeInvoice InvoiceTypeCode = 380
	// TypeCreditNote is a credit note (381).
	TypeCreditNote InvoiceTypeCode = 381
	// TypeCorrected is a corrected invoice (384).
	TypeCorrected InvoiceTypeCode = 384
	// TypePrepayment is a prepayment invoice (386).
	TypePrepayment InvoiceTypeCode = 386
	// TypePartial is a partial invoice (326).
	TypePartial InvoiceTypeCode = 326
	// TypeSelfBilledCreditNote is a self-billed credit note (389), accepted by BR-DE-17.
	TypeSelfBilledCreditNote InvoiceTypeCode = 389
	// TypeFactoredInvoice (875), accepted by BR-DE-17.
	TypeFactoredInvoice InvoiceTypeCode = 875
	// TypeFactoredCreditNote (876), accepted by BR-DE-17.
	TypeFactoredCreditNote InvoiceTypeCode = 876
)

func (t InvoiceTypeCode) String() string {
	switch t {
	case TypeInvoice:
		return "380"
	case TypeCreditNote:
		return "381"
	case TypeCorrected:
		return "384"
	case TypePrepayment:
		return "386"
	case TypePartial:
		return "326"
	case TypeSelfBilledCreditNote:
		return "389"
	case TypeFactoredInvoice:
		return "875"
	case TypeFactoredCreditNote:
		return "876"
	default:
		return "0"
	}
}

// IsCreditNote reports whether the type code denotes a credit note for
// the purposes of choosing the UBL root element (Invoice vs CreditNote).
func (t InvoiceTypeCode) IsCreditNote() bool {
	return t == TypeCreditNote || t == TypeSelfBilledCreditNote || t == TypeFactoredCreditNote
}

// VatScenario drives validation, not serialization: it tells the §14
// UStG layer which German tax-law story the invoice is telling.
type VatScenario int

const (
	// ScenarioUnspecified is the zero value.
	ScenarioUnspecified VatScenario = iota
	// Domestic is a normal domestic B2B/B2C invoice.
	Domestic
	// Kleinunternehmer is the §19 UStG small-business exemption.
	Kleinunternehmer
	// ScenarioReverseCharge is the §13b UStG reverse-charge scenario.
	ScenarioReverseCharge
	// ScenarioIntraCommunitySupply is the §4 Nr. 1b UStG intra-EU supply.
	ScenarioIntraCommunitySupply
	// ScenarioExport is the §4 Nr. 1a UStG export outside the EU.
	ScenarioExport
	// SmallInvoice is the §33 UStDV small-invoice waiver (<= 250 EUR gross).
	SmallInvoice
	// Mixed is an invoice whose lines span more than one VAT story.
	Mixed
)

func (s VatScenario) String() string {
	switch s {
	case Domestic:
		return "domestic"
	case Kleinunternehmer:
		return "Kleinunternehmer (§19 UStG)"
	case ScenarioReverseCharge:
		return "reverse charge (§13b UStG)"
	case ScenarioIntraCommunitySupply:
		return "intra-community supply (§4 Nr. 1b UStG)"
	case ScenarioExport:
		return "export (§4 Nr. 1a UStG)"
	case SmallInvoice:
		return "small invoice (§33 UStDV)"
	case Mixed:
		return "mixed"
	default:
		return "unspecified"
	}
}

// knownXRechnungPaymentMeans are the UNTDID 4461 codes BR-DE-23 accepts.
var knownXRechnungPaymentMeans = map[int]bool{
	30: true, 48: true, 54: true, 55: true, 58: true, 59: true,
}

// knownBRDETypeCodes are the UNTDID 1001 codes BR-DE-17 accepts.
var knownBRDETypeCodes = map[InvoiceTypeCode]bool{
	TypeInvoice: true, TypeCreditNote: true, TypeCorrected: true,
	TypeSelfBilledCreditNote: true, TypePartial: true,
	TypeFactoredInvoice: true, TypeFactoredCreditNote: true,
}
