package einvoice

import (
	"encoding/base64"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// Namespace URIs and the Peppol/XRechnung customization identifiers
// fixed by §6 / §4.G.
const (
	nsUBLInvoice    = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsUBLCreditNote = "urn:oasis:names:specification:ubl:schema:xsd:CreditNote-2"
	nsUBLCAC        = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsUBLCBC        = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	nsCIIRSM = "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
	nsCIIRAM = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	nsCIIUDT = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"
	nsCIIQDT = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"

	// XRechnungCustomizationID is BT-24 for the German XRechnung CIUS.
	XRechnungCustomizationID = "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:xrechnung_3.0"
	// PeppolCustomizationID is BT-24 for the Peppol BIS 3.0 CIUS.
	PeppolCustomizationID = "urn:cen.eu:en16931:2017#compliant#urn:fdc:peppol.eu:2017:poacc:billing:3.0"
	// PeppolProfileID is BT-23, the Peppol business process identifier.
	PeppolProfileID = "urn:fdc:peppol.eu:2017:poacc:billing:01:1.0"
)

// amountElement creates name with text formatted per §4.A and, if
// currency is non-empty, a currencyID attribute. Used by both dialects
// for monetary amounts.
func amountElement(parent *etree.Element, name string, amount decimal.Decimal, currency string) *etree.Element {
	e := parent.CreateElement(name)
	if currency != "" {
		e.CreateAttr("currencyID", currency)
	}
	e.SetText(FormatAmount(amount))
	return e
}

// quantityElement creates name with text formatted to 4 fractional
// digits and a unitCode attribute.
func quantityElement(parent *etree.Element, name string, qty decimal.Decimal, unit string) *etree.Element {
	e := parent.CreateElement(name)
	if unit != "" {
		e.CreateAttr("unitCode", unit)
	}
	e.SetText(qty.StringFixed(4))
	return e
}

// dateUBL formats a date the UBL way: YYYY-MM-DD.
func dateUBL(parent *etree.Element, name string, t time.Time) {
	if t.IsZero() {
		return
	}
	parent.CreateElement(name).SetText(t.Format("2006-01-02"))
}

// dateUDT creates a udt:DateTimeString with format="102", YYYYMMDD.
func dateUDT(parent *etree.Element, name string, t time.Time) {
	elt := parent.CreateElement(name).CreateElement("udt:DateTimeString")
	elt.CreateAttr("format", "102")
	elt.SetText(t.Format("20060102"))
}

// dateQDT is the qdt-prefixed equivalent of dateUDT, used for
// InvoiceReferencedDocument's FormattedIssueDateTime.
func dateQDT(parent *etree.Element, name string, t time.Time) {
	elt := parent.CreateElement(name).CreateElement("qdt:DateTimeString")
	elt.CreateAttr("format", "102")
	elt.SetText(t.Format("20060102"))
}

// requireTotals is called by ToUBLXML/ToCIIXML: a document cannot be
// serialized before its totals have been computed.
func requireTotals(inv *Invoice) error {
	if inv.Totals == nil {
		return NewXMLError("cannot serialize an invoice whose totals have not been computed", nil)
	}
	return nil
}

// itoa is strconv.Itoa under a name that reads well next to the other
// element-writing helpers.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// boolText renders a bool the UBL/CII way: "true" or "false".
func boolText(b bool) string {
	return strconv.FormatBool(b)
}

// base64Encode encodes attachment payloads for embedding as element text.
func base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
