package zugferd

import "github.com/fiskal-dev/einvoice"

// ToXML serializes inv as the profile-reduced CII document that travels
// inside a ZUGFeRD/Factur-X PDF (§4.H). Totals must already be computed.
func ToXML(inv *einvoice.Invoice, profile Profile) ([]byte, error) {
	return einvoice.ToCIIXMLForProfile(inv, profile.GuidelineURN(), profile.IncludesLines(), profile.ReducedParties())
}
