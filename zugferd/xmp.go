package zugferd

import "fmt"

// attachmentFileName is the name under which the invoice XML is embedded
// in the PDF (§4.H). Readers look for this exact name first.
const attachmentFileName = "factur-x.xml"

// BuildXMP renders the Factur-X extension schema XMP packet for profile:
// pdfaid:part, pdfaid:conformance, fx:DocumentType, fx:DocumentFileName,
// fx:Version, fx:ConformanceLevel. EmbedInPDF writes this packet verbatim
// into the PDF's document-level /Metadata stream. It is exported so
// callers that need the raw packet outside that path (inspection,
// golden-file tests) don't have to reconstruct it by hand.
func BuildXMP(profile Profile) []byte {
	packet := fmt.Sprintf(`<?xpacket begin="` + "﻿" + `" id="W5M0MpCehiHzreSzNTczkc9d"?>
<x:xmpmeta xmlns:x="adobe:ns:meta/">
  <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
    <rdf:Description rdf:about=""
        xmlns:pdfaid="http://www.aiim.org/pdfa/ns/id/"
        xmlns:fx="urn:factur-x:pdfa:CrossIndustryDocument:invoice:1p0#">
      <pdfaid:part>3</pdfaid:part>
      <pdfaid:conformance>B</pdfaid:conformance>
      <fx:DocumentType>INVOICE</fx:DocumentType>
      <fx:DocumentFileName>%s</fx:DocumentFileName>
      <fx:Version>1.0</fx:Version>
      <fx:ConformanceLevel>%s</fx:ConformanceLevel>
    </rdf:Description>
  </rdf:RDF>
</x:xmpmeta>
<?xpacket end="w"?>`, attachmentFileName, profile.ConformanceLevel())
	return []byte(packet)
}
