package einvoice

import (
	"io"

	"github.com/speedata/cxpath"
)

// FromXML reads an invoice from r, auto-detecting UBL (Invoice or
// CreditNote) vs UN/CEFACT CII by the root element's namespace URI
// (§4.G). It returns an *XMLError if the namespace is absent or
// unrecognized — there is no syntax-sniffing beyond that.
func FromXML(r io.Reader) (*Invoice, error) {
	ctx, err := cxpath.NewFromReader(r)
	if err != nil {
		return nil, NewXMLError("cannot read XML", err)
	}

	rootns := ctx.Root().Eval("namespace-uri()").String()

	switch rootns {
	case nsCIIRSM:
		ctx.SetNamespace("rsm", nsCIIRSM)
		ctx.SetNamespace("ram", nsCIIRAM)
		ctx.SetNamespace("udt", nsCIIUDT)
		ctx.SetNamespace("qdt", nsCIIQDT)
		inv, err := parseCII(ctx.Root())
		if err != nil {
			return nil, NewXMLError("parsing CII document failed", err)
		}
		applyElectronicAddressDefault(inv)
		return inv, nil

	case nsUBLInvoice, nsUBLCreditNote:
		setupUBLNamespaces(ctx)
		inv, err := parseUBL(ctx)
		if err != nil {
			return nil, NewXMLError("parsing UBL document failed", err)
		}
		applyElectronicAddressDefault(inv)
		return inv, nil

	default:
		return nil, NewXMLError("cannot detect syntax", nil)
	}
}

// FromUBLXML reads an invoice from a UBL 2.1 Invoice or CreditNote
// document, without the auto-detection FromXML performs.
func FromUBLXML(r io.Reader) (*Invoice, error) {
	ctx, err := cxpath.NewFromReader(r)
	if err != nil {
		return nil, NewXMLError("cannot read XML", err)
	}
	rootns := ctx.Root().Eval("namespace-uri()").String()
	if rootns != nsUBLInvoice && rootns != nsUBLCreditNote {
		return nil, NewXMLError("cannot detect syntax", nil)
	}
	setupUBLNamespaces(ctx)
	inv, err := parseUBL(ctx)
	if err != nil {
		return nil, NewXMLError("parsing UBL document failed", err)
	}
	applyElectronicAddressDefault(inv)
	return inv, nil
}

// FromCIIXML reads an invoice from a UN/CEFACT Cross Industry Invoice
// document, without the auto-detection FromXML performs.
func FromCIIXML(r io.Reader) (*Invoice, error) {
	ctx, err := cxpath.NewFromReader(r)
	if err != nil {
		return nil, NewXMLError("cannot read XML", err)
	}
	rootns := ctx.Root().Eval("namespace-uri()").String()
	if rootns != nsCIIRSM {
		return nil, NewXMLError("cannot detect syntax", nil)
	}
	ctx.SetNamespace("rsm", nsCIIRSM)
	ctx.SetNamespace("ram", nsCIIRAM)
	ctx.SetNamespace("udt", nsCIIUDT)
	ctx.SetNamespace("qdt", nsCIIQDT)
	inv, err := parseCII(ctx.Root())
	if err != nil {
		return nil, NewXMLError("parsing CII document failed", err)
	}
	applyElectronicAddressDefault(inv)
	return inv, nil
}

// applyElectronicAddressDefault fills in the "EM" electronic address
// scheme default (§4.G) for any party whose endpoint was read without
// an explicit scheme attribute.
func applyElectronicAddressDefault(inv *Invoice) {
	for _, p := range []*Party{&inv.Seller, &inv.Buyer} {
		if p.ElectronicAddress != nil && p.ElectronicAddress.Scheme == "" {
			p.ElectronicAddress.Scheme = "EM"
		}
	}
	if inv.Payee != nil && inv.Payee.ElectronicAddress != nil && inv.Payee.ElectronicAddress.Scheme == "" {
		inv.Payee.ElectronicAddress.Scheme = "EM"
	}
}
