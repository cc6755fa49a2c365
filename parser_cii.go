package einvoice

import (
	"github.com/speedata/cxpath"
)

func parseCIITradeParty(ctx *cxpath.Context) (Party, error) {
	p := Party{
		Name:           ctx.Eval("ram:Name").String(),
		RegistrationID: ctx.Eval("ram:SpecifiedLegalOrganization/ram:ID").String(),
		VATID:          ctx.Eval("ram:SpecifiedTaxRegistration/ram:ID[@schemeID='VA']").String(),
		TaxNumber:      ctx.Eval("ram:SpecifiedTaxRegistration/ram:ID[@schemeID='FC']").String(),
	}

	if ctx.Eval("count(ram:PostalTradeAddress)").Int() > 0 {
		p.Address = Address{
			PostalCode:  ctx.Eval("ram:PostalTradeAddress/ram:PostcodeCode").String(),
			Street:      ctx.Eval("ram:PostalTradeAddress/ram:LineOne").String(),
			Additional:  ctx.Eval("ram:PostalTradeAddress/ram:LineTwo").String(),
			City:        ctx.Eval("ram:PostalTradeAddress/ram:CityName").String(),
			CountryCode: ctx.Eval("ram:PostalTradeAddress/ram:CountryID").String(),
			Subdivision: ctx.Eval("ram:PostalTradeAddress/ram:CountrySubDivisionName").String(),
		}
	}

	if ctx.Eval("count(ram:DefinedTradeContact)").Int() > 0 {
		p.Contact = &Contact{
			Name:  ctx.Eval("ram:DefinedTradeContact/ram:PersonName").String(),
			Phone: ctx.Eval("ram:DefinedTradeContact/ram:TelephoneUniversalCommunication/ram:CompleteNumber").String(),
			Email: ctx.Eval("ram:DefinedTradeContact/ram:EmailURIUniversalCommunication/ram:URIID").String(),
		}
	}

	if uriID := ctx.Eval("ram:URIUniversalCommunication/ram:URIID"); uriID.String() != "" {
		p.ElectronicAddress = &ElectronicAddress{
			Scheme: uriID.Eval("@schemeID").String(),
			Value:  uriID.String(),
		}
	}

	return p, nil
}

func parseCIIAllowanceCharge(ctx *cxpath.Context) (AllowanceCharge, error) {
	var ac AllowanceCharge
	var err error

	ac.IsCharge = ctx.Eval("string(ram:ChargeIndicator/udt:Indicator) = 'true'").Bool()
	if ac.Amount, err = parseDecimal(ctx, "ram:ActualAmount"); err != nil {
		return ac, err
	}
	if pct, err := parseDecimal(ctx, "ram:CalculationPercent"); err != nil {
		return ac, err
	} else if ctx.Eval("count(ram:CalculationPercent)").Int() > 0 {
		ac.Percentage = ptrDecimal(pct)
	}
	if base, err := parseDecimal(ctx, "ram:BasisAmount"); err != nil {
		return ac, err
	} else if ctx.Eval("count(ram:BasisAmount)").Int() > 0 {
		ac.BaseAmount = ptrDecimal(base)
	}
	ac.ReasonCode = ctx.Eval("ram:ReasonCode").String()
	ac.Reason = ctx.Eval("ram:Reason").String()
	cat, _ := ParseTaxCategory(ctx.Eval("ram:CategoryTradeTax/ram:CategoryCode").String())
	ac.TaxCategory = cat
	if ac.TaxRate, err = parseDecimal(ctx, "ram:CategoryTradeTax/ram:RateApplicablePercent"); err != nil {
		return ac, err
	}
	return ac, nil
}

func parseCIILine(ctx *cxpath.Context) (LineItem, error) {
	var l LineItem
	var err error

	l.ID = ctx.Eval("ram:AssociatedDocumentLineDocument/ram:LineID").String()

	product := ctx.Eval("ram:SpecifiedTradeProduct")
	l.ItemName = product.Eval("ram:Name").String()
	l.Description = product.Eval("ram:Description").String()
	l.SellerItemID = product.Eval("ram:SellerAssignedID").String()
	l.BuyerItemID = product.Eval("ram:BuyerAssignedID").String()
	l.OriginCountry = product.Eval("ram:OriginTradeCountry/ram:ID").String()
	if gid := product.Eval("ram:GlobalID"); gid.String() != "" {
		l.StandardItemID = &GlobalID{ID: gid.String(), Scheme: gid.Eval("@schemeID").String()}
	}
	for attr := range product.Each("ram:ApplicableProductCharacteristic") {
		l.Attributes = append(l.Attributes, KeyValue{
			Key:   attr.Eval("ram:Description").String(),
			Value: attr.Eval("ram:Value").String(),
		})
	}

	agreement := ctx.Eval("ram:SpecifiedLineTradeAgreement")
	if l.UnitPrice, err = parseDecimal(agreement, "ram:NetPriceProductTradePrice/ram:ChargeAmount"); err != nil {
		return l, err
	}
	if agreement.Eval("count(ram:GrossPriceProductTradePrice)").Int() > 0 {
		gp, err := parseDecimal(agreement, "ram:GrossPriceProductTradePrice/ram:ChargeAmount")
		if err != nil {
			return l, err
		}
		l.GrossPrice = ptrDecimal(gp)
		for ac := range agreement.Each("ram:GrossPriceProductTradePrice/ram:AppliedTradeAllowanceCharge") {
			parsed, err := parseCIIAllowanceCharge(ac)
			if err != nil {
				return l, err
			}
			l.Allowances = append(l.Allowances, parsed)
		}
	}

	delivery := ctx.Eval("ram:SpecifiedLineTradeDelivery")
	if l.Quantity, err = parseDecimal(delivery, "ram:BilledQuantity"); err != nil {
		return l, err
	}
	l.Unit = delivery.Eval("ram:BilledQuantity/@unitCode").String()

	settlement := ctx.Eval("ram:SpecifiedLineTradeSettlement")
	cat, _ := ParseTaxCategory(settlement.Eval("ram:ApplicableTradeTax/ram:CategoryCode").String())
	l.TaxCategory = cat
	if l.TaxRate, err = parseDecimal(settlement, "ram:ApplicableTradeTax/ram:RateApplicablePercent"); err != nil {
		return l, err
	}
	for cc := range settlement.Each("ram:SpecifiedTradeAllowanceCharge") {
		parsed, err := parseCIIAllowanceCharge(cc)
		if err != nil {
			return l, err
		}
		l.Charges = append(l.Charges, parsed)
	}
	if l.LineAmount, err = parseDecimal(settlement, "ram:SpecifiedTradeSettlementLineMonetarySummation/ram:LineTotalAmount"); err != nil {
		return l, err
	}

	return l, nil
}

func parseCII(root *cxpath.Context) (*Invoice, error) {
	inv := &Invoice{}
	var err error

	ed := root.Eval("rsm:ExchangedDocument")
	inv.Number = ed.Eval("ram:ID").String()
	tc, _ := parseInvoiceTypeCode(ed.Eval("ram:TypeCode").String())
	inv.TypeCode = tc
	if inv.IssueDate, err = parseDateUDT(ed, "ram:IssueDateTime/udt:DateTimeString"); err != nil {
		return nil, err
	}
	for n := range ed.Each("ram:IncludedNote") {
		inv.Notes = append(inv.Notes, Note{
			Text:        n.Eval("ram:Content").String(),
			SubjectCode: n.Eval("ram:SubjectCode").String(),
		})
	}

	sctt := root.Eval("rsm:SupplyChainTradeTransaction")
	for lineCtx := range sctt.Each("ram:IncludedSupplyChainTradeLineItem") {
		line, err := parseCIILine(lineCtx)
		if err != nil {
			return nil, err
		}
		inv.Lines = append(inv.Lines, line)
	}

	agreement := sctt.Eval("ram:ApplicableHeaderTradeAgreement")
	inv.BuyerReference = agreement.Eval("ram:BuyerReference").String()
	if inv.Seller, err = parseCIITradeParty(agreement.Eval("ram:SellerTradeParty")); err != nil {
		return nil, err
	}
	if inv.Buyer, err = parseCIITradeParty(agreement.Eval("ram:BuyerTradeParty")); err != nil {
		return nil, err
	}
	inv.OrderReference = agreement.Eval("ram:BuyerOrderReferencedDocument/ram:IssuerAssignedID").String()
	inv.ContractReference = agreement.Eval("ram:ContractReferencedDocument/ram:IssuerAssignedID").String()

	delivery := sctt.Eval("ram:ApplicableHeaderTradeDelivery")
	if delivery.Eval("count(ram:ShipToTradeParty)").Int() > 0 || delivery.Eval("count(ram:ActualDeliverySupplyChainEvent)").Int() > 0 {
		d := &Delivery{}
		if delivery.Eval("count(ram:ShipToTradeParty)").Int() > 0 {
			addr := Address{
				PostalCode:  delivery.Eval("ram:ShipToTradeParty/ram:PostalTradeAddress/ram:PostcodeCode").String(),
				Street:      delivery.Eval("ram:ShipToTradeParty/ram:PostalTradeAddress/ram:LineOne").String(),
				City:        delivery.Eval("ram:ShipToTradeParty/ram:PostalTradeAddress/ram:CityName").String(),
				CountryCode: delivery.Eval("ram:ShipToTradeParty/ram:PostalTradeAddress/ram:CountryID").String(),
			}
			d.Address = &addr
		}
		date, err := parseDateUDT(delivery, "ram:ActualDeliverySupplyChainEvent/ram:OccurrenceDateTime/udt:DateTimeString")
		if err != nil {
			return nil, err
		}
		d.Date = ptrTime(date)
		inv.Delivery = d
	}

	settlement := sctt.Eval("ram:ApplicableHeaderTradeSettlement")
	inv.CurrencyCode = settlement.Eval("ram:InvoiceCurrencyCode").String()

	if settlement.Eval("count(ram:PayeeTradeParty)").Int() > 0 {
		payee, err := parseCIITradeParty(settlement.Eval("ram:PayeeTradeParty"))
		if err != nil {
			return nil, err
		}
		inv.Payee = &payee
	}

	if settlement.Eval("count(ram:SpecifiedTradeSettlementPaymentMeans)").Int() > 0 {
		pm := settlement.Eval("ram:SpecifiedTradeSettlementPaymentMeans")
		payment := &PaymentInstructions{
			MeansCode: pm.Eval("ram:TypeCode").Int(),
			Text:      pm.Eval("ram:Information").String(),
		}
		if iban := pm.Eval("ram:PayeePartyCreditorFinancialAccount/ram:IBANID").String(); iban != "" {
			payment.CreditTransfer = &CreditTransfer{
				IBAN:        iban,
				AccountName: pm.Eval("ram:PayeePartyCreditorFinancialAccount/ram:AccountName").String(),
				BIC:         pm.Eval("ram:PayeeSpecifiedCreditorFinancialInstitution/ram:BICID").String(),
			}
		}
		inv.Payment = payment
	}

	for ac := range settlement.Each("ram:SpecifiedTradeAllowanceCharge") {
		parsed, err := parseCIIAllowanceCharge(ac)
		if err != nil {
			return nil, err
		}
		if parsed.IsCharge {
			inv.Charges = append(inv.Charges, parsed)
		} else {
			inv.Allowances = append(inv.Allowances, parsed)
		}
	}

	if start, err := parseDateUDT(settlement, "ram:BillingSpecifiedPeriod/ram:StartDateTime/udt:DateTimeString"); err != nil {
		return nil, err
	} else if !start.IsZero() {
		end, err := parseDateUDT(settlement, "ram:BillingSpecifiedPeriod/ram:EndDateTime/udt:DateTimeString")
		if err != nil {
			return nil, err
		}
		inv.InvoicingPeriod = &Period{Start: start, End: end}
	}

	inv.PaymentTerms = settlement.Eval("ram:SpecifiedTradePaymentTerms/ram:Description").String()
	if due, err := parseDateUDT(settlement, "ram:SpecifiedTradePaymentTerms/ram:DueDateDateTime/udt:DateTimeString"); err != nil {
		return nil, err
	} else {
		inv.DueDate = ptrTime(due)
	}

	for refdoc := range settlement.Each("ram:InvoiceReferencedDocument") {
		issueDate, err := parseDateUDT(refdoc, "ram:FormattedIssueDateTime/qdt:DateTimeString")
		if err != nil {
			return nil, err
		}
		inv.PrecedingInvoices = append(inv.PrecedingInvoices, PrecedingInvoiceReference{
			Number:    refdoc.Eval("ram:IssuerAssignedID").String(),
			IssueDate: ptrTime(issueDate),
		})
	}

	for ard := range agreement.Each("ram:AdditionalReferencedDocument") {
		a := Attachment{
			ID:          ard.Eval("ram:IssuerAssignedID").String(),
			Description: ard.Eval("ram:Name").String(),
			MimeCode:    ard.Eval("ram:AttachmentBinaryObject/@mimeCode").String(),
			Filename:    ard.Eval("ram:AttachmentBinaryObject/@filename").String(),
		}
		inv.Attachments = append(inv.Attachments, a)
	}

	summation := settlement.Eval("ram:SpecifiedTradeSettlementHeaderMonetarySummation")
	totals := &Totals{}
	if totals.LineNetTotal, err = parseDecimal(summation, "ram:LineTotalAmount"); err != nil {
		return nil, err
	}
	if totals.ChargesTotal, err = parseDecimal(summation, "ram:ChargeTotalAmount"); err != nil {
		return nil, err
	}
	if totals.AllowancesTotal, err = parseDecimal(summation, "ram:AllowanceTotalAmount"); err != nil {
		return nil, err
	}
	if totals.NetTotal, err = parseDecimal(summation, "ram:TaxBasisTotalAmount"); err != nil {
		return nil, err
	}
	if totals.VATTotal, err = parseDecimal(summation, "ram:TaxTotalAmount"); err != nil {
		return nil, err
	}
	if totals.GrossTotal, err = parseDecimal(summation, "ram:GrandTotalAmount"); err != nil {
		return nil, err
	}
	if totals.Prepaid, err = parseDecimal(summation, "ram:TotalPrepaidAmount"); err != nil {
		return nil, err
	}
	if totals.AmountDue, err = parseDecimal(summation, "ram:DuePayableAmount"); err != nil {
		return nil, err
	}
	for att := range settlement.Each("ram:ApplicableTradeTax") {
		row := VatBreakdown{}
		if row.TaxAmount, err = parseDecimal(att, "ram:CalculatedAmount"); err != nil {
			return nil, err
		}
		if row.TaxableAmount, err = parseDecimal(att, "ram:BasisAmount"); err != nil {
			return nil, err
		}
		cat, _ := ParseTaxCategory(att.Eval("ram:CategoryCode").String())
		row.Category = cat
		if row.Rate, err = parseDecimal(att, "ram:RateApplicablePercent"); err != nil {
			return nil, err
		}
		row.ExemptionReason = att.Eval("ram:ExemptionReason").String()
		row.ExemptionReasonCode = att.Eval("ram:ExemptionReasonCode").String()
		totals.VATBreakdown = append(totals.VATBreakdown, row)
	}
	inv.Totals = totals

	return inv, nil
}

// parseInvoiceTypeCode parses a UNTDID 1001 code from its string form,
// since the CII/UBL wire format always carries the code as text.
func parseInvoiceTypeCode(s string) (InvoiceTypeCode, bool) {
	switch s {
	case "380":
		return TypeInvoice, true
	case "381":
		return TypeCreditNote, true
	case "384":
		return TypeCorrected, true
	case "386":
		return TypePrepayment, true
	case "326":
		return TypePartial, true
	case "389":
		return TypeSelfBilledCreditNote, true
	case "875":
		return TypeFactoredInvoice, true
	case "876":
		return TypeFactoredCreditNote, true
	default:
		return TypeUnspecified, false
	}
}
