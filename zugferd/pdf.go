package zugferd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// knownXMLNames lists embedded-attachment filenames ExtractFromPDF
// recognizes, in order of preference (§4.H).
var knownXMLNames = []string{
	attachmentFileName,
	"ZUGFeRD-invoice.xml",
	"zugferd-invoice.xml",
	"xrechnung.xml",
}

// EmbedInPDF attaches xml to pdf as a ZUGFeRD/Factur-X PDF/A-3 invoice
// attachment under the given profile, and returns the resulting PDF
// bytes. It appends a PDF incremental update that adds the embedded
// file, its FileSpec (AFRelationship = Data for Minimum/BasicWL, else
// Alternative), an uncompressed XMP /Metadata stream carrying the
// Factur-X extension schema, and a patched Catalog with AF/Names/
// Metadata/MarkInfo entries (§4.H). The caller is responsible for pdf
// already being PDF/A compliant; EmbedInPDF does not convert the
// document to PDF/A on its own.
func EmbedInPDF(pdf []byte, xml []byte, profile Profile) ([]byte, error) {
	trailer, err := parseTrailer(pdf)
	if err != nil {
		return nil, fmt.Errorf("embedding invoice XML in PDF failed: %w", err)
	}

	efNum := trailer.size
	fsNum := efNum + 1
	namesTreeNum := fsNum + 1
	namesDictNum := namesTreeNum + 1
	metaNum := namesDictNum + 1
	catNum := metaNum + 1
	newSize := catNum + 1

	var buf bytes.Buffer
	buf.Write(pdf)
	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}

	offsets := make(map[int]int, 6)

	offsets[efNum] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /EmbeddedFile /Subtype /text#2Fxml /Params << /Size %d >> /Length %d >>\nstream\n",
		efNum, len(xml), len(xml))
	buf.Write(xml)
	buf.WriteString("\nendstream\nendobj\n")

	fileName := escapePDFString(attachmentFileName)

	offsets[fsNum] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Filespec /F (%s) /UF (%s) /Desc (Factur-X XML invoice) /AFRelationship /%s /EF << /F %d 0 R /UF %d 0 R >> >>\nendobj\n",
		fsNum, fileName, fileName, profile.AFRelationship(), efNum, efNum)

	offsets[namesTreeNum] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Names [(%s) %d 0 R] >>\nendobj\n",
		namesTreeNum, fileName, fsNum)

	offsets[namesDictNum] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /EmbeddedFiles %d 0 R >>\nendobj\n",
		namesDictNum, namesTreeNum)

	xmp := BuildXMP(profile)
	offsets[metaNum] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Type /Metadata /Subtype /XML /Length %d >>\nstream\n",
		metaNum, len(xmp))
	buf.Write(xmp)
	buf.WriteString("\nendstream\nendobj\n")

	catalog := stripKeys(trailer.catalog, "/AF", "/Names", "/Metadata", "/MarkInfo")
	offsets[catNum] = buf.Len()
	fmt.Fprintf(&buf, "%d 0 obj\n<<%s /AF [%d 0 R] /Names %d 0 R /Metadata %d 0 R /MarkInfo << /Marked true >> >>\nendobj\n",
		catNum, catalog, fsNum, namesDictNum, metaNum)

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n%d %d\n", efNum, newSize-efNum)
	for n := efNum; n < newSize; n++ {
		fmt.Fprintf(&buf, "%010d %05d n\r\n", offsets[n], 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R /Prev %d >>\nstartxref\n%d\n%%%%EOF\n",
		newSize, catNum, trailer.prevOffset, xrefOffset)

	return buf.Bytes(), nil
}

// ExtractFromPDF returns the embedded invoice XML from a ZUGFeRD/Factur-X
// PDF, searching known attachment names first and falling back to any
// ".xml" attachment.
func ExtractFromPDF(pdf []byte) ([]byte, error) {
	attachments, err := api.ExtractAttachmentsRaw(bytes.NewReader(pdf), "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("extracting attachments from PDF failed: %w", err)
	}
	if len(attachments) == 0 {
		return nil, fmt.Errorf("PDF contains no embedded files")
	}

	for _, a := range attachments {
		for _, known := range knownXMLNames {
			if a.FileName == known {
				return readAttachment(a)
			}
		}
	}
	for _, a := range attachments {
		if strings.HasSuffix(strings.ToLower(a.FileName), ".xml") {
			return readAttachment(a)
		}
	}
	return nil, fmt.Errorf("PDF contains no invoice XML attachment")
}

func readAttachment(a model.Attachment) ([]byte, error) {
	data, err := io.ReadAll(a)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment %q: %w", a.FileName, err)
	}
	return data, nil
}
