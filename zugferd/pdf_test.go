package zugferd

import (
	"bytes"
	"testing"
)

// minimalPDF returns a small, well-formed classic-xref PDF with a
// three-object Catalog/Pages/Page tree. The xref table's byte offsets are
// not exact; EmbedInPDF never trusts them; it locates objects and the
// trailer by scanning the raw bytes directly.
func minimalPDF() []byte {
	return []byte(`%PDF-1.4
1 0 obj
<< /Type /Catalog /Pages 2 0 R >>
endobj
2 0 obj
<< /Type /Pages /Kids [3 0 R] /Count 1 >>
endobj
3 0 obj
<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>
endobj
xref
0 4
0000000000 65535 f
0000000009 00000 n
0000000058 00000 n
0000000115 00000 n
trailer
<< /Size 4 /Root 1 0 R >>
startxref
180
%%EOF
`)
}

func TestEmbedInPDFAddsFacturXAttachment(t *testing.T) {
	out, err := EmbedInPDF(minimalPDF(), []byte("<xml/>"), EN16931)
	if err != nil {
		t.Fatalf("EmbedInPDF: %v", err)
	}
	for _, want := range []string{
		"/Type /EmbeddedFile",
		"(factur-x.xml)",
		"/Desc (Factur-X XML invoice)",
		"/Type /Metadata",
		"<fx:ConformanceLevel>EN 16931</fx:ConformanceLevel>",
		"/MarkInfo << /Marked true >>",
		"/Prev 180",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestEmbedInPDFPreservesExistingCatalogEntries(t *testing.T) {
	out, err := EmbedInPDF(minimalPDF(), []byte("<xml/>"), Basic)
	if err != nil {
		t.Fatalf("EmbedInPDF: %v", err)
	}
	if !bytes.Contains(out, []byte("/Pages 2 0 R")) {
		t.Error("patched Catalog lost its original /Pages entry")
	}
}

func TestEmbedInPDFAFRelationshipPerProfile(t *testing.T) {
	cases := map[Profile]string{
		Minimum:   "/AFRelationship /Data",
		BasicWL:   "/AFRelationship /Data",
		Basic:     "/AFRelationship /Alternative",
		EN16931:   "/AFRelationship /Alternative",
		Extended:  "/AFRelationship /Alternative",
		XRechnung: "/AFRelationship /Alternative",
	}
	for profile, want := range cases {
		out, err := EmbedInPDF(minimalPDF(), []byte("<xml/>"), profile)
		if err != nil {
			t.Fatalf("EmbedInPDF(%s): %v", profile, err)
		}
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("%s: output does not contain %q", profile, want)
		}
	}
}

func TestEmbedInPDFRejectsPDFWithoutStartXref(t *testing.T) {
	_, err := EmbedInPDF([]byte("not a pdf"), []byte("<xml/>"), EN16931)
	if err == nil {
		t.Error("expected an error for a PDF without a startxref keyword")
	}
}

func TestStripKeysRemovesOnlyExactKeys(t *testing.T) {
	dict := []byte(" /Type /Catalog /AF [1 0 R] /AFRelationship /Data /Pages 2 0 R ")
	got := stripKeys(dict, "/AF")
	if bytes.Contains(got, []byte("/AF [1 0 R]")) {
		t.Error("stripKeys did not remove /AF")
	}
	if !bytes.Contains(got, []byte("/AFRelationship /Data")) {
		t.Error("stripKeys incorrectly removed /AFRelationship, a key that merely starts with /AF")
	}
	if !bytes.Contains(got, []byte("/Pages 2 0 R")) {
		t.Error("stripKeys removed an unrelated key")
	}
}
