package rules

// §14 UStG baseline rules: mandatory invoice content under German VAT
// law, plus the §19/§13b/§33 scenario obligations.
var (
	UStGNumber = Rule{Code: "USTG-NUMBER", Fields: []string{"BT-1"}, Description: "Invoice number must be present."}
	UStGCurrency = Rule{Code: "USTG-CURRENCY", Fields: []string{"BT-5"}, Description: "Currency code must be a known 3-letter ISO 4217 code."}
	UStGSellerName = Rule{Code: "USTG-SELLER-NAME", Fields: []string{"BT-27"}, Description: "Seller name must be present."}
	UStGSellerAddress = Rule{Code: "USTG-SELLER-ADDRESS", Fields: []string{"BT-35", "BT-37", "BT-38", "BT-40"}, Description: "Seller address must be complete."}
	UStGBuyerName = Rule{Code: "USTG-BUYER-NAME", Fields: []string{"BT-44"}, Description: "Buyer name must be present."}
	UStGBuyerAddress = Rule{Code: "USTG-BUYER-ADDRESS", Fields: []string{"BT-50", "BT-52", "BT-53", "BT-55"}, Description: "Buyer address must be complete."}
	UStGSellerTaxID = Rule{Code: "USTG-SELLER-TAXID", Fields: []string{"BT-31", "BT-32"}, Description: "Seller must carry a VAT ID or tax number unless a tax representative is set."}
	UStGVATIDFormat = Rule{Code: "USTG-VATID-FORMAT", Fields: []string{"BT-31", "BT-48"}, Description: "VAT identifiers must carry a 2-letter country prefix; DE prefix requires exactly 9 digits."}
	UStGDeliveryDate = Rule{Code: "USTG-DELIVERY-DATE", Fields: []string{"BT-7", "BG-14"}, Description: "Tax point date or invoicing period is required."}
	UStGAtLeastOneLine = Rule{Code: "USTG-LINES", Fields: []string{"BG-25"}, Description: "Invoice must have at least one line."}
	UStGLineID = Rule{Code: "USTG-LINE-ID", Fields: []string{"BT-126"}, Description: "Every line must have a non-empty id."}
	UStGLineQuantity = Rule{Code: "USTG-LINE-QUANTITY", Fields: []string{"BT-129"}, Description: "Line quantity must not be zero."}
	UStGLinePrice = Rule{Code: "USTG-LINE-PRICE", Fields: []string{"BT-146"}, Description: "Line unit price must not be negative."}
	UStGLineName = Rule{Code: "USTG-LINE-NAME", Fields: []string{"BT-153"}, Description: "Line item name must not be empty."}
	UStGRateConsistency = Rule{Code: "USTG-RATE-CONSISTENCY", Fields: []string{"BT-151", "BT-152"}, Description: "VAT rate must be consistent with the line's tax category (I5)."}
	UStGKleinunternehmerNote = Rule{Code: "USTG-KU-NOTE", Fields: []string{"BG-1"}, Description: "Kleinunternehmer invoices require a note mentioning §19 UStG."}
	UStGKleinunternehmerCategory = Rule{Code: "USTG-KU-CATEGORY", Fields: []string{"BT-151"}, Description: "Every line of a Kleinunternehmer invoice must use category O."}
	UStGReverseChargeBuyerVAT = Rule{Code: "USTG-RC-BUYER-VATID", Fields: []string{"BT-48"}, Description: "Reverse-charge invoices require a buyer VAT id."}
	UStGReverseChargeNote = Rule{Code: "USTG-RC-NOTE", Fields: []string{"BG-1"}, Description: "Reverse-charge invoices require a note mentioning §13b UStG."}
	UStGReverseChargeCategory = Rule{Code: "USTG-RC-CATEGORY", Fields: []string{"BT-151"}, Description: "Every line of a reverse-charge invoice must use category AE."}
	UStGICSVATIDs = Rule{Code: "USTG-ICS-VATIDS", Fields: []string{"BT-31", "BT-48"}, Description: "Intra-community supply requires both seller and buyer VAT ids."}
	UStGICSCountry = Rule{Code: "USTG-ICS-COUNTRY", Fields: []string{"BT-40", "BT-55"}, Description: "Intra-community supply requires buyer country different from seller country."}
	UStGICSCategory = Rule{Code: "USTG-ICS-CATEGORY", Fields: []string{"BT-151"}, Description: "Every line of an intra-community supply invoice must use category K."}
	UStGExportCategory = Rule{Code: "USTG-EXPORT-CATEGORY", Fields: []string{"BT-151"}, Description: "Every line of an export invoice must use category G."}
	UStGSmallInvoiceCap = Rule{Code: "USTG-SMALL-INVOICE-CAP", Fields: []string{"BT-112"}, Description: "A §33 UStDV small invoice's gross total must not exceed 250."}
)
