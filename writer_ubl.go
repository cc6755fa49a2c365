package einvoice

import (
	"github.com/beevik/etree"
)

// ToUBLXML serializes inv as a UBL 2.1 Invoice or CreditNote document
// (§4.G). Totals must already be populated.
func ToUBLXML(inv *Invoice) ([]byte, error) {
	if err := requireTotals(inv); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	var root *etree.Element
	if inv.TypeCode.IsCreditNote() {
		root = doc.CreateElement("CreditNote")
		root.CreateAttr("xmlns", nsUBLCreditNote)
	} else {
		root = doc.CreateElement("Invoice")
		root.CreateAttr("xmlns", nsUBLInvoice)
	}
	root.CreateAttr("xmlns:cac", nsUBLCAC)
	root.CreateAttr("xmlns:cbc", nsUBLCBC)

	writeUBLHeader(inv, root)
	writeUBLParties(inv, root)
	writeUBLDelivery(inv, root)
	writeUBLPaymentMeans(inv, root)
	writeUBLPaymentTerms(inv, root)
	writeUBLAllowancesCharges(inv, root)
	writeUBLTaxTotal(inv, root)
	writeUBLMonetaryTotal(inv, root)

	lineElementName := "InvoiceLine"
	qtyElementName := "InvoicedQuantity"
	if inv.TypeCode.IsCreditNote() {
		lineElementName = "CreditNoteLine"
		qtyElementName = "CreditedQuantity"
	}
	for i, line := range inv.Lines {
		writeUBLLine(inv, root, line, i, lineElementName, qtyElementName)
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, NewXMLError("failed to serialize UBL document", err)
	}
	return data, nil
}

func writeUBLHeader(inv *Invoice, root *etree.Element) {
	root.CreateElement("cbc:CustomizationID").SetText(XRechnungCustomizationID)
	root.CreateElement("cbc:ProfileID").SetText(PeppolProfileID)
	root.CreateElement("cbc:ID").SetText(inv.Number)
	dateUBL(root, "cbc:IssueDate", inv.IssueDate)
	if inv.DueDate != nil {
		dateUBL(root, "cbc:DueDate", *inv.DueDate)
	}
	root.CreateElement("cbc:InvoiceTypeCode").SetText(inv.TypeCode.String())

	for _, n := range inv.Notes {
		e := root.CreateElement("cbc:Note")
		if n.SubjectCode != "" {
			e.CreateAttr("subjectCode", n.SubjectCode)
		}
		e.SetText(n.Text)
	}

	if inv.TaxPointDate != nil {
		dateUBL(root, "cbc:TaxPointDate", *inv.TaxPointDate)
	}
	root.CreateElement("cbc:DocumentCurrencyCode").SetText(inv.CurrencyCode)
	if inv.TaxCurrencyCode != "" {
		root.CreateElement("cbc:TaxCurrencyCode").SetText(inv.TaxCurrencyCode)
	}
	if inv.BuyerAccountingReference != "" {
		root.CreateElement("cbc:AccountingCost").SetText(inv.BuyerAccountingReference)
	}
	if inv.BuyerReference != "" {
		root.CreateElement("cbc:BuyerReference").SetText(inv.BuyerReference)
	}

	if inv.InvoicingPeriod != nil {
		p := root.CreateElement("cac:InvoicePeriod")
		dateUBL(p, "cbc:StartDate", inv.InvoicingPeriod.Start)
		dateUBL(p, "cbc:EndDate", inv.InvoicingPeriod.End)
	}

	for _, ref := range inv.PrecedingInvoices {
		br := root.CreateElement("cac:BillingReference").CreateElement("cac:InvoiceDocumentReference")
		br.CreateElement("cbc:ID").SetText(ref.Number)
		if ref.IssueDate != nil {
			dateUBL(br, "cbc:IssueDate", *ref.IssueDate)
		}
	}

	if inv.OrderReference != "" || inv.SalesOrderReference != "" {
		or := root.CreateElement("cac:OrderReference")
		or.CreateElement("cbc:ID").SetText(inv.OrderReference)
		if inv.SalesOrderReference != "" {
			or.CreateElement("cbc:SalesOrderID").SetText(inv.SalesOrderReference)
		}
	}

	if inv.ContractReference != "" {
		root.CreateElement("cac:ContractDocumentReference").CreateElement("cbc:ID").SetText(inv.ContractReference)
	}
	if inv.ProjectReference != "" {
		root.CreateElement("cac:ProjectReference").CreateElement("cbc:ID").SetText(inv.ProjectReference)
	}

	for _, a := range inv.Attachments {
		ard := root.CreateElement("cac:AdditionalDocumentReference")
		ard.CreateElement("cbc:ID").SetText(a.ID)
		if a.Description != "" {
			ard.CreateElement("cbc:DocumentDescription").SetText(a.Description)
		}
		if len(a.Data) > 0 {
			ao := ard.CreateElement("cac:Attachment").CreateElement("cbc:EmbeddedDocumentBinaryObject")
			ao.CreateAttr("mimeCode", a.MimeCode)
			ao.CreateAttr("filename", a.Filename)
			ao.SetText(base64Encode(a.Data))
		}
	}
}

func writeUBLParty(root *etree.Element, wrapperName string, p Party) {
	w := root.CreateElement(wrapperName)
	party := w.CreateElement("cac:Party")

	if p.ElectronicAddress != nil && p.ElectronicAddress.Value != "" {
		eid := party.CreateElement("cbc:EndpointID")
		eid.CreateAttr("schemeID", p.ElectronicAddress.Scheme)
		eid.SetText(p.ElectronicAddress.Value)
	}

	if p.TradingName != "" {
		party.CreateElement("cac:PartyName").CreateElement("cbc:Name").SetText(p.TradingName)
	}

	addr := party.CreateElement("cac:PostalAddress")
	if p.Address.Street != "" {
		addr.CreateElement("cbc:StreetName").SetText(p.Address.Street)
	}
	if p.Address.Additional != "" {
		addr.CreateElement("cbc:AdditionalStreetName").SetText(p.Address.Additional)
	}
	if p.Address.City != "" {
		addr.CreateElement("cbc:CityName").SetText(p.Address.City)
	}
	if p.Address.PostalCode != "" {
		addr.CreateElement("cbc:PostalZone").SetText(p.Address.PostalCode)
	}
	if p.Address.Subdivision != "" {
		addr.CreateElement("cbc:CountrySubentity").SetText(p.Address.Subdivision)
	}
	addr.CreateElement("cac:Country").CreateElement("cbc:IdentificationCode").SetText(p.Address.CountryCode)

	if p.VATID != "" {
		pts := party.CreateElement("cac:PartyTaxScheme")
		pts.CreateElement("cbc:CompanyID").SetText(p.VATID)
		pts.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("VAT")
	}
	if p.TaxNumber != "" {
		pts := party.CreateElement("cac:PartyTaxScheme")
		pts.CreateElement("cbc:CompanyID").SetText(p.TaxNumber)
		pts.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("FC")
	}

	ple := party.CreateElement("cac:PartyLegalEntity")
	ple.CreateElement("cbc:RegistrationName").SetText(p.Name)
	if p.RegistrationID != "" {
		ple.CreateElement("cbc:CompanyID").SetText(p.RegistrationID)
	}

	if p.Contact != nil {
		c := party.CreateElement("cac:Contact")
		if p.Contact.Name != "" {
			c.CreateElement("cbc:Name").SetText(p.Contact.Name)
		}
		if p.Contact.Phone != "" {
			c.CreateElement("cbc:Telephone").SetText(p.Contact.Phone)
		}
		if p.Contact.Email != "" {
			c.CreateElement("cbc:ElectronicMail").SetText(p.Contact.Email)
		}
	}
}

func writeUBLParties(inv *Invoice, root *etree.Element) {
	writeUBLParty(root, "cac:AccountingSupplierParty", inv.Seller)
	writeUBLParty(root, "cac:AccountingCustomerParty", inv.Buyer)
	if inv.Payee != nil {
		writeUBLParty(root, "cac:PayeeParty", *inv.Payee)
	}
	if inv.TaxRepresentative != nil {
		writeUBLParty(root, "cac:TaxRepresentativeParty", *inv.TaxRepresentative)
	}
}

func writeUBLDelivery(inv *Invoice, root *etree.Element) {
	if inv.Delivery == nil {
		return
	}
	d := root.CreateElement("cac:Delivery")
	if inv.Delivery.Date != nil {
		dateUBL(d, "cbc:ActualDeliveryDate", *inv.Delivery.Date)
	}
	if inv.Delivery.Address != nil {
		loc := d.CreateElement("cac:DeliveryLocation").CreateElement("cac:Address")
		a := *inv.Delivery.Address
		if a.Street != "" {
			loc.CreateElement("cbc:StreetName").SetText(a.Street)
		}
		if a.City != "" {
			loc.CreateElement("cbc:CityName").SetText(a.City)
		}
		if a.PostalCode != "" {
			loc.CreateElement("cbc:PostalZone").SetText(a.PostalCode)
		}
		loc.CreateElement("cac:Country").CreateElement("cbc:IdentificationCode").SetText(a.CountryCode)
	}
}

func writeUBLPaymentMeans(inv *Invoice, root *etree.Element) {
	if inv.Payment == nil {
		return
	}
	pm := root.CreateElement("cac:PaymentMeans")
	pm.CreateElement("cbc:PaymentMeansCode").SetText(itoa(inv.Payment.MeansCode))
	if inv.Payment.RemittanceInfo != "" {
		pm.CreateElement("cbc:PaymentID").SetText(inv.Payment.RemittanceInfo)
	}
	if ct := inv.Payment.CreditTransfer; ct != nil {
		fa := pm.CreateElement("cac:PayeeFinancialAccount")
		fa.CreateElement("cbc:ID").SetText(ct.IBAN)
		if ct.AccountName != "" {
			fa.CreateElement("cbc:Name").SetText(ct.AccountName)
		}
		if ct.BIC != "" {
			fa.CreateElement("cac:FinancialInstitutionBranch").CreateElement("cbc:ID").SetText(ct.BIC)
		}
	}
}

func writeUBLPaymentTerms(inv *Invoice, root *etree.Element) {
	if inv.PaymentTerms == "" {
		return
	}
	root.CreateElement("cac:PaymentTerms").CreateElement("cbc:Note").SetText(inv.PaymentTerms)
}

func writeUBLAllowanceChargeElement(root *etree.Element, ac AllowanceCharge) {
	e := root.CreateElement("cac:AllowanceCharge")
	e.CreateElement("cbc:ChargeIndicator").SetText(boolText(ac.IsCharge))
	if ac.ReasonCode != "" {
		e.CreateElement("cbc:AllowanceChargeReasonCode").SetText(ac.ReasonCode)
	}
	if ac.Reason != "" {
		e.CreateElement("cbc:AllowanceChargeReason").SetText(ac.Reason)
	}
	if ac.Percentage != nil {
		e.CreateElement("cbc:MultiplierFactorNumeric").SetText(FormatPercent(*ac.Percentage))
	}
	amountElement(e, "cbc:Amount", ac.Amount, "")
	if ac.BaseAmount != nil {
		amountElement(e, "cbc:BaseAmount", *ac.BaseAmount, "")
	}
	tc := e.CreateElement("cac:TaxCategory")
	tc.CreateElement("cbc:ID").SetText(ac.TaxCategory.Code())
	tc.CreateElement("cbc:Percent").SetText(FormatPercent(ac.TaxRate))
	tc.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("VAT")
}

func writeUBLAllowancesCharges(inv *Invoice, root *etree.Element) {
	for _, a := range inv.Allowances {
		writeUBLAllowanceChargeElement(root, a)
	}
	for _, c := range inv.Charges {
		writeUBLAllowanceChargeElement(root, c)
	}
}

func writeUBLTaxTotal(inv *Invoice, root *etree.Element) {
	tt := root.CreateElement("cac:TaxTotal")
	amountElement(tt, "cbc:TaxAmount", inv.Totals.VATTotal, inv.CurrencyCode)
	for _, row := range inv.Totals.VATBreakdown {
		st := tt.CreateElement("cac:TaxSubtotal")
		amountElement(st, "cbc:TaxableAmount", row.TaxableAmount, inv.CurrencyCode)
		amountElement(st, "cbc:TaxAmount", row.TaxAmount, inv.CurrencyCode)
		tc := st.CreateElement("cac:TaxCategory")
		tc.CreateElement("cbc:ID").SetText(row.Category.Code())
		tc.CreateElement("cbc:Percent").SetText(FormatPercent(row.Rate))
		if row.ExemptionReason != "" {
			tc.CreateElement("cbc:TaxExemptionReason").SetText(row.ExemptionReason)
		}
		if row.ExemptionReasonCode != "" {
			tc.CreateElement("cbc:TaxExemptionReasonCode").SetText(row.ExemptionReasonCode)
		}
		tc.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("VAT")
	}
}

func writeUBLMonetaryTotal(inv *Invoice, root *etree.Element) {
	mt := root.CreateElement("cac:LegalMonetaryTotal")
	t := inv.Totals
	amountElement(mt, "cbc:LineExtensionAmount", t.LineNetTotal, inv.CurrencyCode)
	amountElement(mt, "cbc:TaxExclusiveAmount", t.NetTotal, inv.CurrencyCode)
	amountElement(mt, "cbc:TaxInclusiveAmount", t.GrossTotal, inv.CurrencyCode)
	if !t.AllowancesTotal.IsZero() {
		amountElement(mt, "cbc:AllowanceTotalAmount", t.AllowancesTotal, inv.CurrencyCode)
	}
	if !t.ChargesTotal.IsZero() {
		amountElement(mt, "cbc:ChargeTotalAmount", t.ChargesTotal, inv.CurrencyCode)
	}
	if !t.Prepaid.IsZero() {
		amountElement(mt, "cbc:PrepaidAmount", t.Prepaid, inv.CurrencyCode)
	}
	amountElement(mt, "cbc:PayableAmount", t.AmountDue, inv.CurrencyCode)
}

func writeUBLLine(inv *Invoice, root *etree.Element, line LineItem, index int, lineElementName, qtyElementName string) {
	l := root.CreateElement("cac:" + lineElementName)
	l.CreateElement("cbc:ID").SetText(line.ID)
	quantityElement(l, "cbc:"+qtyElementName, line.Quantity, line.Unit)
	amountElement(l, "cbc:LineExtensionAmount", line.LineAmount, inv.CurrencyCode)

	if line.InvoicingPeriod != nil {
		p := l.CreateElement("cac:InvoicePeriod")
		dateUBL(p, "cbc:StartDate", line.InvoicingPeriod.Start)
		dateUBL(p, "cbc:EndDate", line.InvoicingPeriod.End)
	}

	for _, a := range line.Allowances {
		writeUBLAllowanceChargeElement(l, a)
	}
	for _, c := range line.Charges {
		writeUBLAllowanceChargeElement(l, c)
	}

	item := l.CreateElement("cac:Item")
	if line.Description != "" {
		item.CreateElement("cbc:Description").SetText(line.Description)
	}
	item.CreateElement("cbc:Name").SetText(line.ItemName)
	if line.SellerItemID != "" {
		item.CreateElement("cac:SellersItemIdentification").CreateElement("cbc:ID").SetText(line.SellerItemID)
	}
	if line.StandardItemID != nil {
		sid := item.CreateElement("cac:StandardItemIdentification").CreateElement("cbc:ID")
		sid.CreateAttr("schemeID", line.StandardItemID.Scheme)
		sid.SetText(line.StandardItemID.ID)
	}
	if line.OriginCountry != "" {
		item.CreateElement("cac:OriginCountry").CreateElement("cbc:IdentificationCode").SetText(line.OriginCountry)
	}
	ctc := item.CreateElement("cac:ClassifiedTaxCategory")
	ctc.CreateElement("cbc:ID").SetText(line.TaxCategory.Code())
	ctc.CreateElement("cbc:Percent").SetText(FormatPercent(line.TaxRate))
	ctc.CreateElement("cac:TaxScheme").CreateElement("cbc:ID").SetText("VAT")
	for _, attr := range line.Attributes {
		aip := item.CreateElement("cac:AdditionalItemProperty")
		aip.CreateElement("cbc:Name").SetText(attr.Key)
		aip.CreateElement("cbc:Value").SetText(attr.Value)
	}

	price := l.CreateElement("cac:Price")
	amountElement(price, "cbc:PriceAmount", line.UnitPrice, inv.CurrencyCode)
	if line.BaseQuantity != nil {
		quantityElement(price, "cbc:BaseQuantity", *line.BaseQuantity, line.BaseQuantityUnit)
	}
}
