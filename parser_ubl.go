package einvoice

import (
	"github.com/speedata/cxpath"
)

func setupUBLNamespaces(ctx *cxpath.Context) {
	ctx.SetNamespace("cac", nsUBLCAC)
	ctx.SetNamespace("cbc", nsUBLCBC)
}

func parseUBLParty(ctx *cxpath.Context) Party {
	party := ctx.Eval("cac:Party")
	p := Party{
		TradingName:    party.Eval("cac:PartyName/cbc:Name").String(),
		Name:           party.Eval("cac:PartyLegalEntity/cbc:RegistrationName").String(),
		RegistrationID: party.Eval("cac:PartyLegalEntity/cbc:CompanyID").String(),
		VATID:          party.Eval("cac:PartyTaxScheme[cac:TaxScheme/cbc:ID='VAT']/cbc:CompanyID").String(),
		TaxNumber:      party.Eval("cac:PartyTaxScheme[cac:TaxScheme/cbc:ID='FC']/cbc:CompanyID").String(),
	}

	addr := party.Eval("cac:PostalAddress")
	p.Address = Address{
		Street:      addr.Eval("cbc:StreetName").String(),
		Additional:  addr.Eval("cbc:AdditionalStreetName").String(),
		City:        addr.Eval("cbc:CityName").String(),
		PostalCode:  addr.Eval("cbc:PostalZone").String(),
		Subdivision: addr.Eval("cbc:CountrySubentity").String(),
		CountryCode: addr.Eval("cac:Country/cbc:IdentificationCode").String(),
	}

	if eid := party.Eval("cbc:EndpointID"); eid.String() != "" {
		p.ElectronicAddress = &ElectronicAddress{
			Scheme: eid.Eval("@schemeID").String(),
			Value:  eid.String(),
		}
	}

	if party.Eval("count(cac:Contact)").Int() > 0 {
		p.Contact = &Contact{
			Name:  party.Eval("cac:Contact/cbc:Name").String(),
			Phone: party.Eval("cac:Contact/cbc:Telephone").String(),
			Email: party.Eval("cac:Contact/cbc:ElectronicMail").String(),
		}
	}

	return p
}

func parseUBLAllowanceCharge(ctx *cxpath.Context) (AllowanceCharge, error) {
	var ac AllowanceCharge
	var err error

	ac.IsCharge = ctx.Eval("cbc:ChargeIndicator").Bool()
	ac.ReasonCode = ctx.Eval("cbc:AllowanceChargeReasonCode").String()
	ac.Reason = ctx.Eval("cbc:AllowanceChargeReason").String()
	if ac.Amount, err = parseDecimal(ctx, "cbc:Amount"); err != nil {
		return ac, err
	}
	if ctx.Eval("count(cbc:MultiplierFactorNumeric)").Int() > 0 {
		pct, err := parseDecimal(ctx, "cbc:MultiplierFactorNumeric")
		if err != nil {
			return ac, err
		}
		ac.Percentage = ptrDecimal(pct)
	}
	if ctx.Eval("count(cbc:BaseAmount)").Int() > 0 {
		base, err := parseDecimal(ctx, "cbc:BaseAmount")
		if err != nil {
			return ac, err
		}
		ac.BaseAmount = ptrDecimal(base)
	}
	cat, _ := ParseTaxCategory(ctx.Eval("cac:TaxCategory/cbc:ID").String())
	ac.TaxCategory = cat
	if ac.TaxRate, err = parseDecimal(ctx, "cac:TaxCategory/cbc:Percent"); err != nil {
		return ac, err
	}
	return ac, nil
}

func parseUBLLine(ctx *cxpath.Context, qtyElementName string) (LineItem, error) {
	var l LineItem
	var err error

	l.ID = ctx.Eval("cbc:ID").String()
	if l.Quantity, err = parseDecimal(ctx, "cbc:"+qtyElementName); err != nil {
		return l, err
	}
	l.Unit = ctx.Eval("cbc:" + qtyElementName + "/@unitCode").String()
	if l.LineAmount, err = parseDecimal(ctx, "cbc:LineExtensionAmount"); err != nil {
		return l, err
	}

	if start, err := parseDateUBL(ctx, "cac:InvoicePeriod/cbc:StartDate"); err != nil {
		return l, err
	} else if !start.IsZero() {
		end, err := parseDateUBL(ctx, "cac:InvoicePeriod/cbc:EndDate")
		if err != nil {
			return l, err
		}
		l.InvoicingPeriod = &Period{Start: start, End: end}
	}

	for ac := range ctx.Each("cac:AllowanceCharge") {
		parsed, err := parseUBLAllowanceCharge(ac)
		if err != nil {
			return l, err
		}
		if parsed.IsCharge {
			l.Charges = append(l.Charges, parsed)
		} else {
			l.Allowances = append(l.Allowances, parsed)
		}
	}

	item := ctx.Eval("cac:Item")
	l.Description = item.Eval("cbc:Description").String()
	l.ItemName = item.Eval("cbc:Name").String()
	l.SellerItemID = item.Eval("cac:SellersItemIdentification/cbc:ID").String()
	if sid := item.Eval("cac:StandardItemIdentification/cbc:ID"); sid.String() != "" {
		l.StandardItemID = &GlobalID{ID: sid.String(), Scheme: sid.Eval("@schemeID").String()}
	}
	l.OriginCountry = item.Eval("cac:OriginCountry/cbc:IdentificationCode").String()
	cat, _ := ParseTaxCategory(item.Eval("cac:ClassifiedTaxCategory/cbc:ID").String())
	l.TaxCategory = cat
	if l.TaxRate, err = parseDecimal(item, "cac:ClassifiedTaxCategory/cbc:Percent"); err != nil {
		return l, err
	}
	for attr := range item.Each("cac:AdditionalItemProperty") {
		l.Attributes = append(l.Attributes, KeyValue{
			Key:   attr.Eval("cbc:Name").String(),
			Value: attr.Eval("cbc:Value").String(),
		})
	}

	price := ctx.Eval("cac:Price")
	if l.UnitPrice, err = parseDecimal(price, "cbc:PriceAmount"); err != nil {
		return l, err
	}
	if price.Eval("count(cbc:BaseQuantity)").Int() > 0 {
		bq, err := parseDecimal(price, "cbc:BaseQuantity")
		if err != nil {
			return l, err
		}
		l.BaseQuantity = ptrDecimal(bq)
		l.BaseQuantityUnit = price.Eval("cbc:BaseQuantity/@unitCode").String()
	}

	return l, nil
}

func parseUBL(ctx *cxpath.Context) (*Invoice, error) {
	root := ctx.Root()
	inv := &Invoice{}
	var err error

	isCreditNote := root.Eval("local-name()").String() == "CreditNote"
	lineElementName := "InvoiceLine"
	qtyElementName := "InvoicedQuantity"
	if isCreditNote {
		lineElementName = "CreditNoteLine"
		qtyElementName = "CreditedQuantity"
		inv.TypeCode = TypeCreditNote
	} else {
		inv.TypeCode = TypeInvoice
	}

	inv.Number = root.Eval("cbc:ID").String()
	if inv.IssueDate, err = parseDateUBL(root, "cbc:IssueDate"); err != nil {
		return nil, err
	}
	if due, err := parseDateUBL(root, "cbc:DueDate"); err != nil {
		return nil, err
	} else {
		inv.DueDate = ptrTime(due)
	}
	if tc, ok := parseInvoiceTypeCode(root.Eval("cbc:InvoiceTypeCode").String()); ok {
		inv.TypeCode = tc
	}

	for n := range root.Each("cbc:Note") {
		inv.Notes = append(inv.Notes, Note{
			Text:        n.String(),
			SubjectCode: n.Eval("@subjectCode").String(),
		})
	}

	if tpd, err := parseDateUBL(root, "cbc:TaxPointDate"); err != nil {
		return nil, err
	} else {
		inv.TaxPointDate = ptrTime(tpd)
	}

	inv.CurrencyCode = root.Eval("cbc:DocumentCurrencyCode").String()
	inv.TaxCurrencyCode = root.Eval("cbc:TaxCurrencyCode").String()
	inv.BuyerAccountingReference = root.Eval("cbc:AccountingCost").String()
	inv.BuyerReference = root.Eval("cbc:BuyerReference").String()

	if start, err := parseDateUBL(root, "cac:InvoicePeriod/cbc:StartDate"); err != nil {
		return nil, err
	} else if !start.IsZero() {
		end, err := parseDateUBL(root, "cac:InvoicePeriod/cbc:EndDate")
		if err != nil {
			return nil, err
		}
		inv.InvoicingPeriod = &Period{Start: start, End: end}
	}

	for br := range root.Each("cac:BillingReference/cac:InvoiceDocumentReference") {
		issueDate, err := parseDateUBL(br, "cbc:IssueDate")
		if err != nil {
			return nil, err
		}
		inv.PrecedingInvoices = append(inv.PrecedingInvoices, PrecedingInvoiceReference{
			Number:    br.Eval("cbc:ID").String(),
			IssueDate: ptrTime(issueDate),
		})
	}

	inv.OrderReference = root.Eval("cac:OrderReference/cbc:ID").String()
	inv.SalesOrderReference = root.Eval("cac:OrderReference/cbc:SalesOrderID").String()
	inv.ContractReference = root.Eval("cac:ContractDocumentReference/cbc:ID").String()
	inv.ProjectReference = root.Eval("cac:ProjectReference/cbc:ID").String()

	for ard := range root.Each("cac:AdditionalDocumentReference") {
		inv.Attachments = append(inv.Attachments, Attachment{
			ID:          ard.Eval("cbc:ID").String(),
			Description: ard.Eval("cbc:DocumentDescription").String(),
			MimeCode:    ard.Eval("cac:Attachment/cbc:EmbeddedDocumentBinaryObject/@mimeCode").String(),
			Filename:    ard.Eval("cac:Attachment/cbc:EmbeddedDocumentBinaryObject/@filename").String(),
		})
	}

	inv.Seller = parseUBLParty(root.Eval("cac:AccountingSupplierParty"))
	inv.Buyer = parseUBLParty(root.Eval("cac:AccountingCustomerParty"))
	if root.Eval("count(cac:PayeeParty)").Int() > 0 {
		payee := parseUBLParty(root.Eval("cac:PayeeParty"))
		inv.Payee = &payee
	}
	if root.Eval("count(cac:TaxRepresentativeParty)").Int() > 0 {
		rep := parseUBLParty(root.Eval("cac:TaxRepresentativeParty"))
		inv.TaxRepresentative = &rep
	}

	if root.Eval("count(cac:Delivery)").Int() > 0 {
		d := root.Eval("cac:Delivery")
		delivery := &Delivery{}
		if date, err := parseDateUBL(d, "cbc:ActualDeliveryDate"); err != nil {
			return nil, err
		} else {
			delivery.Date = ptrTime(date)
		}
		if d.Eval("count(cac:DeliveryLocation/cac:Address)").Int() > 0 {
			loc := d.Eval("cac:DeliveryLocation/cac:Address")
			delivery.Address = &Address{
				Street:      loc.Eval("cbc:StreetName").String(),
				City:        loc.Eval("cbc:CityName").String(),
				PostalCode:  loc.Eval("cbc:PostalZone").String(),
				CountryCode: loc.Eval("cac:Country/cbc:IdentificationCode").String(),
			}
		}
		inv.Delivery = delivery
	}

	if root.Eval("count(cac:PaymentMeans)").Int() > 0 {
		pm := root.Eval("cac:PaymentMeans")
		code := pm.Eval("cbc:PaymentMeansCode").String()
		payment := &PaymentInstructions{RemittanceInfo: pm.Eval("cbc:PaymentID").String()}
		if n, ok := parseIntSafe(code); ok {
			payment.MeansCode = n
		}
		if iban := pm.Eval("cac:PayeeFinancialAccount/cbc:ID").String(); iban != "" {
			payment.CreditTransfer = &CreditTransfer{
				IBAN:        iban,
				AccountName: pm.Eval("cac:PayeeFinancialAccount/cbc:Name").String(),
				BIC:         pm.Eval("cac:PayeeFinancialAccount/cac:FinancialInstitutionBranch/cbc:ID").String(),
			}
		}
		inv.Payment = payment
	}

	inv.PaymentTerms = root.Eval("cac:PaymentTerms/cbc:Note").String()

	for ac := range root.Each("cac:AllowanceCharge") {
		parsed, err := parseUBLAllowanceCharge(ac)
		if err != nil {
			return nil, err
		}
		if parsed.IsCharge {
			inv.Charges = append(inv.Charges, parsed)
		} else {
			inv.Allowances = append(inv.Allowances, parsed)
		}
	}

	totals := &Totals{}
	taxTotal := root.Eval("cac:TaxTotal")
	if totals.VATTotal, err = parseDecimal(taxTotal, "cbc:TaxAmount"); err != nil {
		return nil, err
	}
	for st := range taxTotal.Each("cac:TaxSubtotal") {
		row := VatBreakdown{}
		if row.TaxableAmount, err = parseDecimal(st, "cbc:TaxableAmount"); err != nil {
			return nil, err
		}
		if row.TaxAmount, err = parseDecimal(st, "cbc:TaxAmount"); err != nil {
			return nil, err
		}
		cat, _ := ParseTaxCategory(st.Eval("cac:TaxCategory/cbc:ID").String())
		row.Category = cat
		if row.Rate, err = parseDecimal(st, "cac:TaxCategory/cbc:Percent"); err != nil {
			return nil, err
		}
		row.ExemptionReason = st.Eval("cac:TaxCategory/cbc:TaxExemptionReason").String()
		row.ExemptionReasonCode = st.Eval("cac:TaxCategory/cbc:TaxExemptionReasonCode").String()
		totals.VATBreakdown = append(totals.VATBreakdown, row)
	}

	mt := root.Eval("cac:LegalMonetaryTotal")
	if totals.LineNetTotal, err = parseDecimal(mt, "cbc:LineExtensionAmount"); err != nil {
		return nil, err
	}
	if totals.NetTotal, err = parseDecimal(mt, "cbc:TaxExclusiveAmount"); err != nil {
		return nil, err
	}
	if totals.GrossTotal, err = parseDecimal(mt, "cbc:TaxInclusiveAmount"); err != nil {
		return nil, err
	}
	if totals.AllowancesTotal, err = parseDecimal(mt, "cbc:AllowanceTotalAmount"); err != nil {
		return nil, err
	}
	if totals.ChargesTotal, err = parseDecimal(mt, "cbc:ChargeTotalAmount"); err != nil {
		return nil, err
	}
	if totals.Prepaid, err = parseDecimal(mt, "cbc:PrepaidAmount"); err != nil {
		return nil, err
	}
	if totals.AmountDue, err = parseDecimal(mt, "cbc:PayableAmount"); err != nil {
		return nil, err
	}
	inv.Totals = totals

	for lineCtx := range root.Each("cac:" + lineElementName) {
		line, err := parseUBLLine(lineCtx, qtyElementName)
		if err != nil {
			return nil, err
		}
		inv.Lines = append(inv.Lines, line)
	}

	return inv, nil
}

func parseIntSafe(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
