// Package einvoice implements a semantic model, totals engine, layered
// validation pipeline and UBL/CII XML codec for German and European
// electronic invoices (EN 16931, XRechnung BR-DE, Peppol BIS 3.0).
package einvoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Note is a free-text note on the invoice (BG-1), optionally qualified
// by a UNCL 4451 subject code (BT-21/BT-22).
type Note struct {
	Text        string
	SubjectCode string
}

// GlobalID is a scheme-qualified identifier, such as a GTIN (BT-157) or
// a registration number carried in an ISO/IEC 6523 scheme.
type GlobalID struct {
	ID     string
	Scheme string
}

// Address is a postal address (BG-5, BG-8, BG-12...).
type Address struct {
	Street      string
	Additional  string
	City        string
	PostalCode  string
	CountryCode string // ISO 3166-1 alpha-2
	Subdivision string
}

// Contact is a named contact point for a party (BG-6, BG-9).
type Contact struct {
	Name  string
	Phone string
	Email string
}

// ElectronicAddress is a Peppol/EAS endpoint identifier (BT-34, BT-49).
type ElectronicAddress struct {
	Scheme string // Electronic Address Scheme code, e.g. "EM", "9930"
	Value  string
}

// Party represents a seller, buyer, payee or tax representative
// (BG-4, BG-7, BG-10, BG-11).
type Party struct {
	Name               string
	VATID              string
	TaxNumber          string
	RegistrationID     string
	TradingName        string
	Address            Address
	Contact            *Contact
	ElectronicAddress  *ElectronicAddress
}

// AllowanceCharge is a single document- or line-level allowance or
// charge row (BG-20, BG-21, BG-27, BG-28).
type AllowanceCharge struct {
	IsCharge    bool // true: charge: false: allowance
	Amount      decimal.Decimal
	Percentage  *decimal.Decimal
	BaseAmount  *decimal.Decimal
	TaxCategory TaxCategory
	TaxRate     decimal.Decimal
	Reason      string
	ReasonCode  string // UNTDID 5189 (allowance) or 7161 (charge)
}

// KeyValue is a single BG-32 item attribute (name/value pair).
type KeyValue struct {
	Key   string
	Value string
}

// Period is an inclusive start/end date range (BG-14, BG-26).
type Period struct {
	Start time.Time
	End   time.Time
}

// LineItem is one invoice position (BG-25).
type LineItem struct {
	ID                 string
	Quantity           decimal.Decimal
	Unit               string // UN/CEFACT Recommendation 20 code
	UnitPrice          decimal.Decimal
	GrossPrice         *decimal.Decimal
	Allowances         []AllowanceCharge
	Charges            []AllowanceCharge
	TaxCategory        TaxCategory
	TaxRate            decimal.Decimal
	ItemName           string
	Description        string
	SellerItemID       string
	BuyerItemID        string
	StandardItemID     *GlobalID
	LineAmount         decimal.Decimal // engine-computed, full precision
	BaseQuantity       *decimal.Decimal
	BaseQuantityUnit   string
	OriginCountry      string
	Attributes         []KeyValue
	InvoicingPeriod    *Period
}

// VatBreakdown is one grouped VAT row (BG-23), keyed by (category, rate).
type VatBreakdown struct {
	Category            TaxCategory
	Rate                decimal.Decimal
	TaxableAmount       decimal.Decimal
	TaxAmount           decimal.Decimal
	ExemptionReason     string
	ExemptionReasonCode string
}

// Totals is the document monetary summation (BG-22), populated by the
// totals engine and never by the builder's caller directly.
type Totals struct {
	LineNetTotal          decimal.Decimal
	AllowancesTotal       decimal.Decimal
	ChargesTotal          decimal.Decimal
	NetTotal              decimal.Decimal
	VATTotal              decimal.Decimal
	VATTotalInTaxCurrency *decimal.Decimal
	GrossTotal            decimal.Decimal
	Prepaid               decimal.Decimal
	AmountDue             decimal.Decimal
	VATBreakdown          []VatBreakdown
}

// CreditTransfer is SEPA credit-transfer remittance detail (BG-17).
type CreditTransfer struct {
	IBAN        string
	BIC         string
	AccountName string
}

// PaymentInstructions describes how the invoice is to be settled (BG-16).
type PaymentInstructions struct {
	MeansCode      int // UNTDID 4461
	Text           string
	RemittanceInfo string
	CreditTransfer *CreditTransfer
}

// Attachment is a supporting document embedded in the invoice (BG-24).
type Attachment struct {
	ID          string
	Filename    string
	MimeCode    string
	Description string
	Data        []byte
}

// PrecedingInvoiceReference references an invoice this one corrects or
// supersedes (BG-3).
type PrecedingInvoiceReference struct {
	Number    string
	IssueDate *time.Time
}

// Delivery describes where and when goods/services were delivered (BG-13).
type Delivery struct {
	Address *Address
	Date    *time.Time
}

// Invoice is the immutable root value of the semantic model (BG-0).
//
// An Invoice is constructed via Builder, or read back from XML by
// FromXML and the dialect readers; totals are filled in by
// CalculateTotals, and validators are pure readers afterwards. Every
// "setter" lives on Builder, not on Invoice.
type Invoice struct {
	Number         string
	IssueDate      time.Time
	DueDate        *time.Time
	TypeCode       InvoiceTypeCode
	CurrencyCode   string
	TaxCurrencyCode string

	Notes []Note

	BuyerReference            string
	OrderReference             string
	ContractReference          string
	ProjectReference           string
	SalesOrderReference        string
	BuyerAccountingReference   string

	Seller Party
	Buyer  Party

	Lines []LineItem

	VatScenario VatScenario

	Allowances []AllowanceCharge
	Charges    []AllowanceCharge

	Totals *Totals

	PaymentTerms string
	Payment      *PaymentInstructions

	TaxPointDate    *time.Time
	InvoicingPeriod *Period

	Payee             *Party
	TaxRepresentative *Party

	PrecedingInvoices []PrecedingInvoiceReference
	Attachments       []Attachment
	Delivery          *Delivery
}
