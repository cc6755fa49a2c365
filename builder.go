package einvoice

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	maxLines       = 10_000
	maxNumberLen   = 200
	maxNotes       = 100
	maxAttachments = 100
)

// Builder assembles an Invoice through a staged, fluent API and
// performs safe construction: defaults, input-limit checks, and a
// choice of validation strictness on Build.
//
// A Builder is single-use: create one with NewBuilder, chain the
// With*/Add* calls, then call Build, BuildStrict or BuildUnchecked.
type Builder struct {
	inv     Invoice
	prepaid decimal.Decimal
	err     *BuilderError
}

// NewBuilder starts a builder with the two always-required fields. The
// document type defaults to a commercial invoice (380) until WithType
// sets another.
func NewBuilder(number string, issueDate time.Time) *Builder {
	b := &Builder{inv: Invoice{Number: number, IssueDate: issueDate, TypeCode: TypeInvoice}}
	if len(number) == 0 {
		b.fail("invoice number must not be empty")
	}
	if len(number) > maxNumberLen {
		b.fail("invoice number exceeds %d characters", maxNumberLen)
	}
	return b
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = NewBuilderError(format, args...)
	}
}

// WithDueDate sets the optional due date (BT-9).
func (b *Builder) WithDueDate(d time.Time) *Builder {
	b.inv.DueDate = &d
	return b
}

// WithType sets the document type code (BT-3).
func (b *Builder) WithType(t InvoiceTypeCode) *Builder {
	b.inv.TypeCode = t
	return b
}

// WithCurrency sets the invoice currency (BT-5) and optional tax
// currency (BT-6).
func (b *Builder) WithCurrency(currency string, taxCurrency string) *Builder {
	b.inv.CurrencyCode = currency
	b.inv.TaxCurrencyCode = taxCurrency
	return b
}

// WithVatScenario sets the German tax-law story the invoice tells.
func (b *Builder) WithVatScenario(s VatScenario) *Builder {
	b.inv.VatScenario = s
	return b
}

// AddNote appends an ordered note (BG-1), up to 100.
func (b *Builder) AddNote(text, subjectCode string) *Builder {
	if len(b.inv.Notes) >= maxNotes {
		b.fail("cannot add more than %d notes", maxNotes)
		return b
	}
	b.inv.Notes = append(b.inv.Notes, Note{Text: text, SubjectCode: subjectCode})
	return b
}

// WithBuyerReference sets BT-10 (the Leitweg-ID in XRechnung contexts).
func (b *Builder) WithBuyerReference(ref string) *Builder {
	b.inv.BuyerReference = ref
	return b
}

// WithOrderReference sets BT-13.
func (b *Builder) WithOrderReference(ref string) *Builder {
	b.inv.OrderReference = ref
	return b
}

// WithContractReference sets BT-12.
func (b *Builder) WithContractReference(ref string) *Builder {
	b.inv.ContractReference = ref
	return b
}

// WithProjectReference sets BT-11.
func (b *Builder) WithProjectReference(ref string) *Builder {
	b.inv.ProjectReference = ref
	return b
}

// WithSalesOrderReference sets BT-14.
func (b *Builder) WithSalesOrderReference(ref string) *Builder {
	b.inv.SalesOrderReference = ref
	return b
}

// WithBuyerAccountingReference sets BT-19.
func (b *Builder) WithBuyerAccountingReference(ref string) *Builder {
	b.inv.BuyerAccountingReference = ref
	return b
}

// WithSeller sets the seller party (BG-4).
func (b *Builder) WithSeller(p Party) *Builder {
	b.inv.Seller = p
	return b
}

// WithBuyer sets the buyer party (BG-7).
func (b *Builder) WithBuyer(p Party) *Builder {
	b.inv.Buyer = p
	return b
}

// WithPayee sets the optional payee party (BG-10).
func (b *Builder) WithPayee(p Party) *Builder {
	b.inv.Payee = &p
	return b
}

// WithTaxRepresentative sets the optional tax representative (BG-11).
func (b *Builder) WithTaxRepresentative(p Party) *Builder {
	b.inv.TaxRepresentative = &p
	return b
}

// AddLine appends a line item (BG-25), up to 10 000.
func (b *Builder) AddLine(line LineItem) *Builder {
	if len(b.inv.Lines) >= maxLines {
		b.fail("cannot add more than %d lines", maxLines)
		return b
	}
	b.inv.Lines = append(b.inv.Lines, line)
	return b
}

// AddAllowance appends a document-level allowance (BG-20).
func (b *Builder) AddAllowance(ac AllowanceCharge) *Builder {
	ac.IsCharge = false
	b.inv.Allowances = append(b.inv.Allowances, ac)
	return b
}

// AddCharge appends a document-level charge (BG-21).
func (b *Builder) AddCharge(ac AllowanceCharge) *Builder {
	ac.IsCharge = true
	b.inv.Charges = append(b.inv.Charges, ac)
	return b
}

// WithPaymentTerms sets the free-text payment terms (BT-20).
func (b *Builder) WithPaymentTerms(text string) *Builder {
	b.inv.PaymentTerms = text
	return b
}

// WithPayment sets the structured payment instructions (BG-16).
func (b *Builder) WithPayment(p PaymentInstructions) *Builder {
	b.inv.Payment = &p
	return b
}

// WithTaxPointDate sets BT-7.
func (b *Builder) WithTaxPointDate(d time.Time) *Builder {
	b.inv.TaxPointDate = &d
	return b
}

// WithInvoicingPeriod sets BG-14.
func (b *Builder) WithInvoicingPeriod(p Period) *Builder {
	b.inv.InvoicingPeriod = &p
	return b
}

// WithDelivery sets BG-13.
func (b *Builder) WithDelivery(d Delivery) *Builder {
	b.inv.Delivery = &d
	return b
}

// AddPrecedingInvoice appends a BG-3 reference.
func (b *Builder) AddPrecedingInvoice(ref PrecedingInvoiceReference) *Builder {
	b.inv.PrecedingInvoices = append(b.inv.PrecedingInvoices, ref)
	return b
}

// AddAttachment appends a BG-24 supporting document, up to 100.
func (b *Builder) AddAttachment(a Attachment) *Builder {
	if len(b.inv.Attachments) >= maxAttachments {
		b.fail("cannot add more than %d attachments", maxAttachments)
		return b
	}
	b.inv.Attachments = append(b.inv.Attachments, a)
	return b
}

// WithPrepaid sets the prepaid amount the totals engine subtracts from
// the gross total to compute AmountDue.
func (b *Builder) WithPrepaid(amount decimal.Decimal) *Builder {
	b.prepaid = amount
	return b
}

func (b *Builder) validateLines() {
	if len(b.inv.Lines) == 0 {
		b.fail("invoice must have at least one line")
		return
	}
	for _, l := range b.inv.Lines {
		if l.ID == "" {
			b.fail("every line must have a non-empty id")
			return
		}
		if l.Quantity.IsZero() {
			b.fail("line %s: quantity must not be zero", l.ID)
			return
		}
		if l.UnitPrice.IsNegative() {
			b.fail("line %s: unit price must not be negative", l.ID)
			return
		}
		if l.ItemName == "" {
			b.fail("line %s: item name must not be empty", l.ID)
			return
		}
	}
}

// finish runs the totals engine and I1 structural preconditions,
// returning the BuilderError (if any) accumulated so far.
func (b *Builder) finish() (*Invoice, error) {
	b.validateLines()
	if b.err != nil {
		return nil, b.err
	}

	CalculateTotals(&b.inv, b.prepaid)
	inv := b.inv
	return &inv, nil
}

// Build finishes the invoice and runs §14 UStG validation; it fails on
// any diagnostic of error severity.
func (b *Builder) Build() (*Invoice, error) {
	inv, err := b.finish()
	if err != nil {
		return nil, err
	}
	if verr := aggregateErrorSeverity(ValidateUStG(inv)); verr != nil {
		return nil, verr
	}
	return inv, nil
}

// BuildStrict finishes the invoice and runs §14 UStG union EN 16931
// validation; it fails on any diagnostic of error severity from either
// layer.
func (b *Builder) BuildStrict() (*Invoice, error) {
	inv, err := b.finish()
	if err != nil {
		return nil, err
	}
	diags := append(ValidateUStG(inv), ValidateEN16931(inv)...)
	if verr := aggregateErrorSeverity(diags); verr != nil {
		return nil, verr
	}
	return inv, nil
}

// BuildUnchecked finishes the invoice (totals only) without running any
// validator. Intended for importing possibly non-conforming external
// data, where the caller will invoke the validators explicitly.
func (b *Builder) BuildUnchecked() (*Invoice, error) {
	return b.finish()
}

// aggregateErrorSeverity returns a *ValidationError iff diags contains
// at least one SeverityError diagnostic; it always carries the full
// diagnostic list (errors and warnings) so callers can inspect both.
func aggregateErrorSeverity(diags []Diagnostic) error {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return &ValidationError{Diagnostics: diags}
		}
	}
	return nil
}
