package rules

// XRechnung BR-DE-* rules (German CIUS of EN 16931).
var (
	BRDE1 = Rule{Code: "BR-DE-1", Fields: []string{"BG-16"}, Description: "Payment instructions must be present."}
	BRDE2 = Rule{Code: "BR-DE-2", Fields: []string{"BT-41"}, Description: "Seller contact name must be present."}
	BRDE5 = Rule{Code: "BR-DE-5", Fields: []string{"BT-41"}, Description: "Seller contact name must be non-empty."}
	BRDE6 = Rule{Code: "BR-DE-6", Fields: []string{"BT-42"}, Description: "Seller contact telephone number must be present."}
	BRDE7 = Rule{Code: "BR-DE-7", Fields: []string{"BT-43"}, Description: "Seller contact email address must be present."}
	BRDE15 = Rule{Code: "BR-DE-15", Fields: []string{"BT-10"}, Description: "Buyer reference (Leitweg-ID) must be present."}
	BRDE16 = Rule{Code: "BR-DE-16", Fields: []string{"BT-31", "BT-32"}, Description: "Seller must carry a VAT id or tax number."}
	BRDE17 = Rule{Code: "BR-DE-17", Fields: []string{"BT-3"}, Description: "Invoice type code must be one of the values accepted by XRechnung."}
	BRDE21 = Rule{Code: "BR-DE-21", Fields: []string{"BT-24"}, Description: "Specification identifier should be the XRechnung 3.0 customization id."}
	BRDE23 = Rule{Code: "BR-DE-23", Fields: []string{"BT-81"}, Description: "Payment means code must be one of 30, 48, 54, 55, 58, 59."}
	BRDE24 = Rule{Code: "BR-DE-24", Fields: []string{"BT-84"}, Description: "Payment means code 58 requires a non-empty IBAN."}
	BRDE26 = Rule{Code: "BR-DE-26", Fields: []string{"BT-34"}, Description: "Seller electronic address must be present."}
	BRDE28 = Rule{Code: "BR-DE-28", Fields: []string{"BT-49"}, Description: "Buyer electronic address must be present."}
)
