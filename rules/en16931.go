package rules

// EN 16931 business rules. Codes match the official CEN/TC 434
// schematron identifiers (BR-*, BR-CO-*, BR-<category>-*, BR-DEC-01).
var (
	BRCO4 = Rule{Code: "BR-CO-4", Fields: []string{"BT-126"}, Description: "Line identifiers must be unique."}
	BR11 = Rule{Code: "BR-11", Fields: []string{"BT-40"}, Description: "Seller country code must be present and known."}
	BR12 = Rule{Code: "BR-12", Fields: []string{"BT-55"}, Description: "Buyer country code must be present and known."}
	BRCO18 = Rule{Code: "BR-CO-18", Fields: []string{"BT-92", "BT-99"}, Description: "Document-level allowance/charge amounts must not be negative."}
	BRCO17 = Rule{Code: "BR-CO-17", Fields: []string{"BT-117"}, Description: "VAT category tax amount must equal taxable amount × rate within a 0.02 tolerance."}
	BRS05 = Rule{Code: "BR-S-05", Fields: []string{"BT-152"}, Description: "Standard rated line must have a VAT rate greater than 0."}
	BRZ05 = Rule{Code: "BR-Z-05", Fields: []string{"BT-152"}, Description: "Zero rated line must have a VAT rate of 0."}
	BRE05 = Rule{Code: "BR-E-05", Fields: []string{"BT-152"}, Description: "Exempt line must have a VAT rate of 0."}
	BRAE05 = Rule{Code: "BR-AE-05", Fields: []string{"BT-152"}, Description: "Reverse charge line must have a VAT rate of 0."}
	BRIC05 = Rule{Code: "BR-IC-05", Fields: []string{"BT-152"}, Description: "Intra-community supply line must have a VAT rate of 0."}
	BRG05 = Rule{Code: "BR-G-05", Fields: []string{"BT-152"}, Description: "Export line must have a VAT rate of 0."}
	BRO05 = Rule{Code: "BR-O-05", Fields: []string{"BT-152"}, Description: "Not-subject-to-VAT line must have a VAT rate of 0."}
	BRE10 = Rule{Code: "BR-E-10", Fields: []string{"BT-120", "BT-121"}, Description: "Exempt VAT breakdown requires an exemption reason."}
	BRAE10 = Rule{Code: "BR-AE-10", Fields: []string{"BT-120", "BT-121"}, Description: "Reverse charge VAT breakdown requires an exemption reason."}
	BRIC10 = Rule{Code: "BR-IC-10", Fields: []string{"BT-120", "BT-121"}, Description: "Intra-community supply VAT breakdown requires an exemption reason."}
	BRG10 = Rule{Code: "BR-G-10", Fields: []string{"BT-120", "BT-121"}, Description: "Export VAT breakdown requires an exemption reason."}
	BRO10 = Rule{Code: "BR-O-10", Fields: []string{"BT-120", "BT-121"}, Description: "Not-subject-to-VAT breakdown requires an exemption reason."}
	BR26 = Rule{Code: "BR-26", Fields: []string{"BT-130"}, Description: "Every line's unit must be present and a known UN/CEFACT Rec-20 code."}
	BRDEC01 = Rule{Code: "BR-DEC-01", Fields: []string{"BT-109", "BT-110", "BT-112", "BT-115"}, Description: "Net, VAT, gross and due totals carry at most two fractional digits."}
	BRCO15 = Rule{Code: "BR-CO-15", Fields: []string{"BT-112"}, Description: "Document allowance/charge reason codes, if present, must be known UNTDID codes."}
)
