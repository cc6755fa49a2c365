package rules

// Peppol BIS Billing 3.0 rules (PEPPOL-EN16931-R*, PEPPOL-*).
var (
	PeppolR003 = Rule{Code: "PEPPOL-R003", Fields: []string{"BT-10", "BT-13"}, Description: "A buyer reference or purchase order reference must be provided."}
	PeppolR008 = Rule{Code: "PEPPOL-R008", Fields: []string{"BT-1", "BT-27", "BT-44"}, Description: "Invoice number, seller name and buyer name must not be empty."}
	PeppolR010 = Rule{Code: "PEPPOL-R010", Fields: []string{"BT-49"}, Description: "Buyer electronic address must be provided."}
	PeppolR020 = Rule{Code: "PEPPOL-R020", Fields: []string{"BT-34"}, Description: "Seller electronic address must be provided."}
	PeppolP0112 = Rule{Code: "PEPPOL-P0112", Fields: []string{"BT-3", "BT-40", "BT-55"}, Description: "Invoice types 326/384 are permitted only when both parties are DE."}
	PeppolR044 = Rule{Code: "PEPPOL-R044", Fields: []string{"BT-146"}, Description: "A line's price must not itself include a charge."}
	PeppolR041 = Rule{Code: "PEPPOL-R041", Fields: []string{"BT-94", "BT-93"}, Description: "Allowance percentage and base amount must be both present or both absent."}
	PeppolR042 = Rule{Code: "PEPPOL-R042", Fields: []string{"BT-101", "BT-100"}, Description: "Charge percentage and base amount must be both present or both absent."}
	PeppolR053 = Rule{Code: "PEPPOL-R053", Fields: []string{"BG-23"}, Description: "At least one VAT subtotal must be present."}
	PeppolR061 = Rule{Code: "PEPPOL-R061", Fields: []string{"BT-91"}, Description: "Direct debit requires mandate/remittance information."}
	PeppolR121 = Rule{Code: "PEPPOL-R121", Fields: []string{"BT-129"}, Description: "Every line quantity must be strictly positive."}
)
