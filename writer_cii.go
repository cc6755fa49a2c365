package einvoice

import (
	"github.com/beevik/etree"
)

// partyDetail controls how much of a trade party §4.H's Minimum profile
// is allowed to carry.
type partyDetail int

const (
	partyFull partyDetail = iota
	partyNameAddressOnly
)

// cIIOptions parameterizes ToCIIXML for the full-fidelity default and
// for the zugferd package's profile-reduced variants (§4.H).
type cIIOptions struct {
	guideline    string
	includeLines bool
	detail       partyDetail
}

// ToCIIXML serializes inv as a UN/CEFACT Cross Industry Invoice document
// (§4.G). Totals must already be populated.
func ToCIIXML(inv *Invoice) ([]byte, error) {
	return toCIIXML(inv, cIIOptions{guideline: XRechnungCustomizationID, includeLines: true, detail: partyFull})
}

// ToCIIXMLForProfile serializes inv under the given ZUGFeRD/Factur-X
// guideline URN, reducing content for the Minimum and BasicWL profiles
// per §4.H. It exists for the zugferd package to call.
func ToCIIXMLForProfile(inv *Invoice, guideline string, includeLines bool, reducedParties bool) ([]byte, error) {
	detail := partyFull
	if reducedParties {
		detail = partyNameAddressOnly
	}
	return toCIIXML(inv, cIIOptions{guideline: guideline, includeLines: includeLines, detail: detail})
}

func toCIIXML(inv *Invoice, opts cIIOptions) ([]byte, error) {
	if err := requireTotals(inv); err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("rsm:CrossIndustryInvoice")
	root.CreateAttr("xmlns:rsm", nsCIIRSM)
	root.CreateAttr("xmlns:ram", nsCIIRAM)
	root.CreateAttr("xmlns:udt", nsCIIUDT)
	root.CreateAttr("xmlns:qdt", nsCIIQDT)

	writeCIIDocumentContext(root, opts.guideline)
	writeCIIExchangedDocument(inv, root)

	sctt := root.CreateElement("rsm:SupplyChainTradeTransaction")
	if opts.includeLines {
		for i, line := range inv.Lines {
			writeCIILineItem(inv, sctt, line, i)
		}
	}
	writeCIIHeaderTradeAgreement(inv, sctt, opts.detail)
	writeCIIHeaderTradeDelivery(inv, sctt)
	writeCIIHeaderTradeSettlement(inv, sctt, opts.detail)

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, NewXMLError("failed to serialize CII document", err)
	}
	return data, nil
}

func writeCIIDocumentContext(root *etree.Element, guideline string) {
	ctx := root.CreateElement("rsm:ExchangedDocumentContext")
	guidelineElt := ctx.CreateElement("ram:GuidelineSpecifiedDocumentContextParameter")
	guidelineElt.CreateElement("ram:ID").SetText(guideline)
}

func writeCIIExchangedDocument(inv *Invoice, root *etree.Element) {
	ed := root.CreateElement("rsm:ExchangedDocument")
	ed.CreateElement("ram:ID").SetText(inv.Number)
	ed.CreateElement("ram:TypeCode").SetText(inv.TypeCode.String())
	dateUDT(ed, "ram:IssueDateTime", inv.IssueDate)

	for _, n := range inv.Notes {
		in := ed.CreateElement("ram:IncludedNote")
		in.CreateElement("ram:Content").SetText(n.Text)
		if n.SubjectCode != "" {
			in.CreateElement("ram:SubjectCode").SetText(n.SubjectCode)
		}
	}
}

// writeCIITradeParty writes GlobalID (only when RegistrationID is set),
// Name, SpecifiedLegalOrganization,
// DefinedTradeContact, PostalTradeAddress, URIUniversalCommunication,
// SpecifiedTaxRegistration(VA), SpecifiedTaxRegistration(FC), in that
// order (§4.G).
func writeCIITradeParty(parent *etree.Element, elementName string, p Party, detail partyDetail) {
	e := parent.CreateElement(elementName)

	if detail == partyNameAddressOnly {
		e.CreateElement("ram:Name").SetText(p.Name)
		addr := e.CreateElement("ram:PostalTradeAddress")
		if p.Address.PostalCode != "" {
			addr.CreateElement("ram:PostcodeCode").SetText(p.Address.PostalCode)
		}
		if p.Address.Street != "" {
			addr.CreateElement("ram:LineOne").SetText(p.Address.Street)
		}
		if p.Address.City != "" {
			addr.CreateElement("ram:CityName").SetText(p.Address.City)
		}
		addr.CreateElement("ram:CountryID").SetText(p.Address.CountryCode)
		return
	}

	if p.RegistrationID != "" {
		gid := e.CreateElement("ram:GlobalID")
		gid.CreateAttr("schemeID", "0088")
		gid.SetText(p.RegistrationID)
	}

	e.CreateElement("ram:Name").SetText(p.Name)

	if p.RegistrationID != "" {
		slo := e.CreateElement("ram:SpecifiedLegalOrganization")
		slo.CreateElement("ram:ID").SetText(p.RegistrationID)
	}

	if p.Contact != nil {
		dtc := e.CreateElement("ram:DefinedTradeContact")
		if p.Contact.Name != "" {
			dtc.CreateElement("ram:PersonName").SetText(p.Contact.Name)
		}
		if p.Contact.Phone != "" {
			dtc.CreateElement("ram:TelephoneUniversalCommunication").CreateElement("ram:CompleteNumber").SetText(p.Contact.Phone)
		}
		if p.Contact.Email != "" {
			dtc.CreateElement("ram:EmailURIUniversalCommunication").CreateElement("ram:URIID").SetText(p.Contact.Email)
		}
	}

	addr := e.CreateElement("ram:PostalTradeAddress")
	if p.Address.PostalCode != "" {
		addr.CreateElement("ram:PostcodeCode").SetText(p.Address.PostalCode)
	}
	if p.Address.Street != "" {
		addr.CreateElement("ram:LineOne").SetText(p.Address.Street)
	}
	if p.Address.Additional != "" {
		addr.CreateElement("ram:LineTwo").SetText(p.Address.Additional)
	}
	if p.Address.City != "" {
		addr.CreateElement("ram:CityName").SetText(p.Address.City)
	}
	addr.CreateElement("ram:CountryID").SetText(p.Address.CountryCode)
	if p.Address.Subdivision != "" {
		addr.CreateElement("ram:CountrySubDivisionName").SetText(p.Address.Subdivision)
	}

	if p.ElectronicAddress != nil && p.ElectronicAddress.Value != "" {
		uri := e.CreateElement("ram:URIUniversalCommunication").CreateElement("ram:URIID")
		uri.CreateAttr("schemeID", p.ElectronicAddress.Scheme)
		uri.SetText(p.ElectronicAddress.Value)
	}

	if p.VATID != "" {
		id := e.CreateElement("ram:SpecifiedTaxRegistration").CreateElement("ram:ID")
		id.CreateAttr("schemeID", "VA")
		id.SetText(p.VATID)
	}
	if p.TaxNumber != "" {
		id := e.CreateElement("ram:SpecifiedTaxRegistration").CreateElement("ram:ID")
		id.CreateAttr("schemeID", "FC")
		id.SetText(p.TaxNumber)
	}
}

func writeCIIHeaderTradeAgreement(inv *Invoice, parent *etree.Element, detail partyDetail) {
	e := parent.CreateElement("ram:ApplicableHeaderTradeAgreement")
	if inv.BuyerReference != "" {
		e.CreateElement("ram:BuyerReference").SetText(inv.BuyerReference)
	}
	writeCIITradeParty(e, "ram:SellerTradeParty", inv.Seller, detail)
	writeCIITradeParty(e, "ram:BuyerTradeParty", inv.Buyer, detail)

	if inv.OrderReference != "" {
		e.CreateElement("ram:BuyerOrderReferencedDocument").CreateElement("ram:IssuerAssignedID").SetText(inv.OrderReference)
	}
	if inv.ContractReference != "" {
		e.CreateElement("ram:ContractReferencedDocument").CreateElement("ram:IssuerAssignedID").SetText(inv.ContractReference)
	}
	for _, a := range inv.Attachments {
		ard := e.CreateElement("ram:AdditionalReferencedDocument")
		ard.CreateElement("ram:IssuerAssignedID").SetText(a.ID)
		ard.CreateElement("ram:TypeCode").SetText("916")
		if a.Description != "" {
			ard.CreateElement("ram:Name").SetText(a.Description)
		}
		if len(a.Data) > 0 {
			abo := ard.CreateElement("ram:AttachmentBinaryObject")
			abo.CreateAttr("mimeCode", a.MimeCode)
			abo.CreateAttr("filename", a.Filename)
			abo.SetText(base64Encode(a.Data))
		}
	}
}

func writeCIIHeaderTradeDelivery(inv *Invoice, parent *etree.Element) {
	e := parent.CreateElement("ram:ApplicableHeaderTradeDelivery")
	if inv.Delivery == nil {
		return
	}
	if inv.Delivery.Address != nil {
		ship := e.CreateElement("ram:ShipToTradeParty")
		a := *inv.Delivery.Address
		addr := ship.CreateElement("ram:PostalTradeAddress")
		if a.PostalCode != "" {
			addr.CreateElement("ram:PostcodeCode").SetText(a.PostalCode)
		}
		if a.Street != "" {
			addr.CreateElement("ram:LineOne").SetText(a.Street)
		}
		if a.City != "" {
			addr.CreateElement("ram:CityName").SetText(a.City)
		}
		addr.CreateElement("ram:CountryID").SetText(a.CountryCode)
	}
	if inv.Delivery.Date != nil {
		event := e.CreateElement("ram:ActualDeliverySupplyChainEvent")
		dateUDT(event, "ram:OccurrenceDateTime", *inv.Delivery.Date)
	}
}

func writeCIIAllowanceChargeElement(parent *etree.Element, ac AllowanceCharge) {
	e := parent.CreateElement("ram:SpecifiedTradeAllowanceCharge")
	e.CreateElement("ram:ChargeIndicator").CreateElement("udt:Indicator").SetText(boolText(ac.IsCharge))
	if ac.Percentage != nil {
		e.CreateElement("ram:CalculationPercent").SetText(FormatPercent(*ac.Percentage))
	}
	if ac.BaseAmount != nil {
		e.CreateElement("ram:BasisAmount").SetText(FormatAmount(*ac.BaseAmount))
	}
	e.CreateElement("ram:ActualAmount").SetText(FormatAmount(ac.Amount))
	if ac.ReasonCode != "" {
		e.CreateElement("ram:ReasonCode").SetText(ac.ReasonCode)
	}
	if ac.Reason != "" {
		e.CreateElement("ram:Reason").SetText(ac.Reason)
	}
	ctt := e.CreateElement("ram:CategoryTradeTax")
	ctt.CreateElement("ram:TypeCode").SetText("VAT")
	ctt.CreateElement("ram:CategoryCode").SetText(ac.TaxCategory.Code())
	ctt.CreateElement("ram:RateApplicablePercent").SetText(FormatPercent(ac.TaxRate))
}

func writeCIIHeaderTradeSettlement(inv *Invoice, parent *etree.Element, detail partyDetail) {
	e := parent.CreateElement("ram:ApplicableHeaderTradeSettlement")
	e.CreateElement("ram:InvoiceCurrencyCode").SetText(inv.CurrencyCode)

	if inv.Payee != nil {
		writeCIITradeParty(e, "ram:PayeeTradeParty", *inv.Payee, detail)
	}

	if inv.Payment != nil {
		pm := e.CreateElement("ram:SpecifiedTradeSettlementPaymentMeans")
		pm.CreateElement("ram:TypeCode").SetText(itoa(inv.Payment.MeansCode))
		if inv.Payment.Text != "" {
			pm.CreateElement("ram:Information").SetText(inv.Payment.Text)
		}
		if ct := inv.Payment.CreditTransfer; ct != nil {
			account := pm.CreateElement("ram:PayeePartyCreditorFinancialAccount")
			account.CreateElement("ram:IBANID").SetText(ct.IBAN)
			if ct.AccountName != "" {
				account.CreateElement("ram:AccountName").SetText(ct.AccountName)
			}
			if ct.BIC != "" {
				pm.CreateElement("ram:PayeeSpecifiedCreditorFinancialInstitution").CreateElement("ram:BICID").SetText(ct.BIC)
			}
		}
	}

	for _, row := range inv.Totals.VATBreakdown {
		att := e.CreateElement("ram:ApplicableTradeTax")
		att.CreateElement("ram:CalculatedAmount").SetText(FormatAmount(row.TaxAmount))
		att.CreateElement("ram:TypeCode").SetText("VAT")
		if row.ExemptionReason != "" {
			att.CreateElement("ram:ExemptionReason").SetText(row.ExemptionReason)
		}
		att.CreateElement("ram:BasisAmount").SetText(FormatAmount(row.TaxableAmount))
		att.CreateElement("ram:CategoryCode").SetText(row.Category.Code())
		if row.ExemptionReasonCode != "" {
			att.CreateElement("ram:ExemptionReasonCode").SetText(row.ExemptionReasonCode)
		}
		att.CreateElement("ram:RateApplicablePercent").SetText(FormatPercent(row.Rate))
	}

	for _, a := range inv.Allowances {
		writeCIIAllowanceChargeElement(e, a)
	}
	for _, c := range inv.Charges {
		writeCIIAllowanceChargeElement(e, c)
	}

	if inv.InvoicingPeriod != nil {
		bsp := e.CreateElement("ram:BillingSpecifiedPeriod")
		dateUDT(bsp, "ram:StartDateTime", inv.InvoicingPeriod.Start)
		dateUDT(bsp, "ram:EndDateTime", inv.InvoicingPeriod.End)
	}

	if inv.PaymentTerms != "" || (inv.DueDate != nil) {
		spt := e.CreateElement("ram:SpecifiedTradePaymentTerms")
		if inv.PaymentTerms != "" {
			spt.CreateElement("ram:Description").SetText(inv.PaymentTerms)
		}
		if inv.DueDate != nil {
			dateUDT(spt, "ram:DueDateDateTime", *inv.DueDate)
		}
	}

	writeCIIMonetarySummation(inv, e)

	for _, ref := range inv.PrecedingInvoices {
		refdoc := e.CreateElement("ram:InvoiceReferencedDocument")
		refdoc.CreateElement("ram:IssuerAssignedID").SetText(ref.Number)
		if ref.IssueDate != nil {
			dateQDT(refdoc, "ram:FormattedIssueDateTime", *ref.IssueDate)
		}
	}
}

func writeCIIMonetarySummation(inv *Invoice, parent *etree.Element) {
	e := parent.CreateElement("ram:SpecifiedTradeSettlementHeaderMonetarySummation")
	t := inv.Totals
	e.CreateElement("ram:LineTotalAmount").SetText(FormatAmount(t.LineNetTotal))
	if !t.ChargesTotal.IsZero() {
		e.CreateElement("ram:ChargeTotalAmount").SetText(FormatAmount(t.ChargesTotal))
	}
	if !t.AllowancesTotal.IsZero() {
		e.CreateElement("ram:AllowanceTotalAmount").SetText(FormatAmount(t.AllowancesTotal))
	}
	e.CreateElement("ram:TaxBasisTotalAmount").SetText(FormatAmount(t.NetTotal))
	tta := e.CreateElement("ram:TaxTotalAmount")
	tta.CreateAttr("currencyID", inv.CurrencyCode)
	tta.SetText(FormatAmount(t.VATTotal))
	if t.VATTotalInTaxCurrency != nil && inv.TaxCurrencyCode != "" {
		ttaTax := e.CreateElement("ram:TaxTotalAmount")
		ttaTax.CreateAttr("currencyID", inv.TaxCurrencyCode)
		ttaTax.SetText(FormatAmount(*t.VATTotalInTaxCurrency))
	}
	e.CreateElement("ram:GrandTotalAmount").SetText(FormatAmount(t.GrossTotal))
	if !t.Prepaid.IsZero() {
		e.CreateElement("ram:TotalPrepaidAmount").SetText(FormatAmount(t.Prepaid))
	}
	e.CreateElement("ram:DuePayableAmount").SetText(FormatAmount(t.AmountDue))
}

func writeCIILineItem(inv *Invoice, parent *etree.Element, line LineItem, index int) {
	e := parent.CreateElement("ram:IncludedSupplyChainTradeLineItem")
	adld := e.CreateElement("ram:AssociatedDocumentLineDocument")
	adld.CreateElement("ram:LineID").SetText(line.ID)

	stp := e.CreateElement("ram:SpecifiedTradeProduct")
	if line.StandardItemID != nil {
		gid := stp.CreateElement("ram:GlobalID")
		gid.CreateAttr("schemeID", line.StandardItemID.Scheme)
		gid.SetText(line.StandardItemID.ID)
	}
	if line.SellerItemID != "" {
		stp.CreateElement("ram:SellerAssignedID").SetText(line.SellerItemID)
	}
	if line.BuyerItemID != "" {
		stp.CreateElement("ram:BuyerAssignedID").SetText(line.BuyerItemID)
	}
	stp.CreateElement("ram:Name").SetText(line.ItemName)
	if line.Description != "" {
		stp.CreateElement("ram:Description").SetText(line.Description)
	}
	for _, attr := range line.Attributes {
		ac := stp.CreateElement("ram:ApplicableProductCharacteristic")
		ac.CreateElement("ram:Description").SetText(attr.Key)
		ac.CreateElement("ram:Value").SetText(attr.Value)
	}
	if line.OriginCountry != "" {
		stp.CreateElement("ram:OriginTradeCountry").CreateElement("ram:ID").SetText(line.OriginCountry)
	}

	slta := e.CreateElement("ram:SpecifiedLineTradeAgreement")
	if line.GrossPrice != nil {
		gpptp := slta.CreateElement("ram:GrossPriceProductTradePrice")
		gpptp.CreateElement("ram:ChargeAmount").SetText(FormatAmount(*line.GrossPrice))
		for _, a := range line.Allowances {
			writeCIIAllowanceChargeElement(gpptp, a)
		}
	}
	npptp := slta.CreateElement("ram:NetPriceProductTradePrice")
	amt := npptp.CreateElement("ram:ChargeAmount")
	amt.SetText(FormatAmount(line.UnitPrice))
	if line.BaseQuantity != nil {
		quantityElement(npptp, "ram:BasisQuantity", *line.BaseQuantity, line.BaseQuantityUnit)
	}

	sltd := e.CreateElement("ram:SpecifiedLineTradeDelivery")
	quantityElement(sltd, "ram:BilledQuantity", line.Quantity, line.Unit)

	slts := e.CreateElement("ram:SpecifiedLineTradeSettlement")
	att := slts.CreateElement("ram:ApplicableTradeTax")
	att.CreateElement("ram:TypeCode").SetText("VAT")
	att.CreateElement("ram:CategoryCode").SetText(line.TaxCategory.Code())
	att.CreateElement("ram:RateApplicablePercent").SetText(FormatPercent(line.TaxRate))

	if line.InvoicingPeriod != nil {
		bsp := slts.CreateElement("ram:BillingSpecifiedPeriod")
		dateUDT(bsp, "ram:StartDateTime", line.InvoicingPeriod.Start)
		dateUDT(bsp, "ram:EndDateTime", line.InvoicingPeriod.End)
	}
	for _, c := range line.Charges {
		writeCIIAllowanceChargeElement(slts, c)
	}

	slms := slts.CreateElement("ram:SpecifiedTradeSettlementLineMonetarySummation")
	slms.CreateElement("ram:LineTotalAmount").SetText(FormatAmount(line.LineAmount))
}
