package zugferd

import (
	"bytes"
	"testing"
)

func TestBuildXMPCarriesProfileConformanceLevel(t *testing.T) {
	for _, p := range []Profile{Minimum, BasicWL, Basic, EN16931, Extended, XRechnung} {
		packet := BuildXMP(p)
		if !bytes.Contains(packet, []byte("<fx:ConformanceLevel>"+p.ConformanceLevel()+"</fx:ConformanceLevel>")) {
			t.Errorf("%s: packet does not carry conformance level %q:\n%s", p, p.ConformanceLevel(), packet)
		}
		if !bytes.Contains(packet, []byte(attachmentFileName)) {
			t.Errorf("%s: packet does not reference the attachment file name", p)
		}
		if !bytes.Contains(packet, []byte("<pdfaid:part>3</pdfaid:part>")) {
			t.Errorf("%s: packet does not declare PDF/A part 3", p)
		}
	}
}

func TestBuildXMPDiffersByProfile(t *testing.T) {
	min := BuildXMP(Minimum)
	ext := BuildXMP(Extended)
	if bytes.Equal(min, ext) {
		t.Error("Minimum and Extended should produce different XMP packets")
	}
}
