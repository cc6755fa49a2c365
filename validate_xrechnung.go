package einvoice

import (
	"github.com/fiskal-dev/einvoice/rules"
)

// ValidateXRechnung checks the German XRechnung CIUS (BR-DE-*) on top
// of EN 16931. It is not run by any Build* method; callers invoke it
// explicitly when targeting the XRechnung profile.
func ValidateXRechnung(inv *Invoice) []Diagnostic {
	var ds []Diagnostic

	if inv.Payment == nil {
		ds = append(ds, errorDiag("payment", "payment instructions must be present", rules.BRDE1))
	}

	if inv.Seller.Contact == nil || inv.Seller.Contact.Name == "" {
		ds = append(ds, errorDiag("seller.contact.name", "seller contact name must be present", rules.BRDE2))
	}
	if inv.Seller.Contact == nil || inv.Seller.Contact.Phone == "" {
		ds = append(ds, errorDiag("seller.contact.phone", "seller contact telephone number must be present", rules.BRDE6))
	}
	if inv.Seller.Contact == nil || inv.Seller.Contact.Email == "" {
		ds = append(ds, errorDiag("seller.contact.email", "seller contact email address must be present", rules.BRDE7))
	}

	if inv.BuyerReference == "" {
		ds = append(ds, errorDiag("buyer_reference", "buyer reference (Leitweg-ID) must be present", rules.BRDE15))
	}

	if inv.Seller.VATID == "" && inv.Seller.TaxNumber == "" {
		ds = append(ds, errorDiag("seller", "seller must carry a VAT id or tax number", rules.BRDE16))
	}

	if !knownBRDETypeCodes[inv.TypeCode] {
		ds = append(ds, errorDiag("type_code", "invoice type code is not one of the values accepted by XRechnung", rules.BRDE17))
	}

	if inv.Payment != nil {
		if !knownXRechnungPaymentMeans[inv.Payment.MeansCode] {
			ds = append(ds, errorDiag("payment.means_code", "payment means code must be one of 30, 48, 54, 55, 58, 59", rules.BRDE23))
		}
		if inv.Payment.MeansCode == 58 {
			if inv.Payment.CreditTransfer == nil || inv.Payment.CreditTransfer.IBAN == "" {
				ds = append(ds, errorDiag("payment.credit_transfer.iban", "payment means code 58 requires a non-empty IBAN", rules.BRDE24))
			}
		}
	}

	if inv.Seller.ElectronicAddress == nil || inv.Seller.ElectronicAddress.Value == "" {
		ds = append(ds, errorDiag("seller.electronic_address", "seller electronic address must be present", rules.BRDE26))
	}
	if inv.Buyer.ElectronicAddress == nil || inv.Buyer.ElectronicAddress.Value == "" {
		ds = append(ds, errorDiag("buyer.electronic_address", "buyer electronic address must be present", rules.BRDE28))
	}

	return ds
}
