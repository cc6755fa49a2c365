// Package zugferd implements the ZUGFeRD/Factur-X PDF/A-3 attachment
// layer (§4.H): profile-reduced CII serialization, XMP metadata, and
// embedding/extraction of the invoice XML inside a PDF container.
package zugferd

// Profile is a ZUGFeRD/Factur-X conformance level. Each one maps to a
// GuidelineSpecifiedDocumentContextParameter/ID URN for the CII
// document and a conformance-level token for the XMP packet.
type Profile int

const (
	// Minimum carries only header-level data: no line items, parties
	// reduced to name and address.
	Minimum Profile = iota
	// BasicWL ("without lines") adds full trade-party detail but still
	// omits line items. Both Minimum and BasicWL carry the full header
	// settlement, including the VAT breakdown.
	BasicWL
	// Basic is the first profile that is EN 16931 compliant and carries
	// full line items.
	Basic
	// EN16931 is the pure European semantic data model profile.
	EN16931
	// Extended carries every optional EN 16931 extension point.
	Extended
	// XRechnung is the German public-sector CIUS profile.
	XRechnung
)

func (p Profile) String() string {
	switch p {
	case Minimum:
		return "Minimum"
	case BasicWL:
		return "BasicWL"
	case Basic:
		return "Basic"
	case EN16931:
		return "EN16931"
	case Extended:
		return "Extended"
	case XRechnung:
		return "XRechnung"
	default:
		return "unknown"
	}
}

// GuidelineURN returns the GuidelineSpecifiedDocumentContextParameter/ID
// value for the profile (§6).
func (p Profile) GuidelineURN() string {
	switch p {
	case Minimum:
		return "urn:factur-x.eu:1p0:minimum"
	case BasicWL:
		return "urn:factur-x.eu:1p0:basicwl"
	case Basic:
		return "urn:cen.eu:en16931:2017#compliant#urn:factur-x.eu:1p0:basic"
	case EN16931:
		return "urn:cen.eu:en16931:2017"
	case Extended:
		return "urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended"
	case XRechnung:
		return "urn:cen.eu:en16931:2017#compliant#urn:xeinkauf.de:kosit:xrechnung_3.0"
	default:
		return ""
	}
}

// ConformanceLevel returns the XMP fx:ConformanceLevel token for the
// profile (§6).
func (p Profile) ConformanceLevel() string {
	switch p {
	case Minimum:
		return "MINIMUM"
	case BasicWL:
		return "BASIC WL"
	case Basic:
		return "BASIC"
	case EN16931:
		return "EN 16931"
	case Extended:
		return "EXTENDED"
	case XRechnung:
		return "XRECHNUNG"
	default:
		return ""
	}
}

// IncludesLines reports whether the profile's CII document carries
// line items (§4.H: only Minimum and BasicWL omit them).
func (p Profile) IncludesLines() bool {
	return p != Minimum && p != BasicWL
}

// ReducedParties reports whether the profile limits trade parties to
// name and address only (§4.H: Minimum only).
func (p Profile) ReducedParties() bool {
	return p == Minimum
}

// AFRelationship returns the FileSpec AFRelationship value for the
// profile: "Data" for Minimum/BasicWL, "Alternative" otherwise (§4.H).
func (p Profile) AFRelationship() string {
	if p == Minimum || p == BasicWL {
		return "Data"
	}
	return "Alternative"
}
