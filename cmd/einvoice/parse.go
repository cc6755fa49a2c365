package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fiskal-dev/einvoice"
	"github.com/fiskal-dev/einvoice/zugferd"
)

// parseInvoiceFile parses an invoice from an XML file or a ZUGFeRD/
// Factur-X PDF, detecting the format from the leading bytes rather than
// the file extension.
func parseInvoiceFile(filename string) (*einvoice.Invoice, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, 512)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, []byte("%PDF")):
		pdfBytes, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read PDF: %w", err)
		}
		xmlBytes, err := zugferd.ExtractFromPDF(pdfBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to extract invoice XML: %w", err)
		}
		return einvoice.FromXML(bytes.NewReader(xmlBytes))
	case bytes.HasPrefix(header, []byte("<?xml")), bytes.HasPrefix(header, []byte("<")):
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		return einvoice.FromXML(f)
	default:
		return nil, fmt.Errorf("unsupported file format (expected XML or PDF)")
	}
}
