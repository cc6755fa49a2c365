package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fiskal-dev/einvoice/zugferd"
)

var profileByName = map[string]zugferd.Profile{
	"minimum":   zugferd.Minimum,
	"basicwl":   zugferd.BasicWL,
	"basic":     zugferd.Basic,
	"en16931":   zugferd.EN16931,
	"extended":  zugferd.Extended,
	"xrechnung": zugferd.XRechnung,
}

func runZugferd(args []string) int {
	if len(args) < 1 {
		zugferdUsage()
		return exitError
	}
	switch args[0] {
	case "embed":
		return runZugferdEmbed(args[1:])
	case "extract":
		return runZugferdExtract(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown zugferd subcommand %q\n", args[0])
		zugferdUsage()
		return exitError
	}
}

func runZugferdEmbed(args []string) int {
	fs := flag.NewFlagSet("zugferd embed", flag.ExitOnError)
	var profileName, output string
	fs.StringVar(&profileName, "profile", "en16931", "ZUGFeRD/Factur-X profile: minimum, basicwl, basic, en16931, extended, xrechnung")
	fs.StringVar(&output, "out", "", "Output PDF path (default: overwrite input)")
	fs.Usage = func() { zugferdEmbedUsage() }
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		zugferdEmbedUsage()
		return exitError
	}
	profile, ok := profileByName[profileName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown profile %q\n", profileName)
		return exitError
	}

	pdfPath, xmlPath := fs.Arg(0), fs.Arg(1)
	if output == "" {
		output = pdfPath
	}

	pdfBytes, err := os.ReadFile(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read PDF: %v\n", err)
		return exitError
	}
	xmlBytes, err := os.ReadFile(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read invoice XML: %v\n", err)
		return exitError
	}

	out, err := zugferd.EmbedInPDF(pdfBytes, xmlBytes, profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write PDF: %v\n", err)
		return exitError
	}
	fmt.Printf("embedded %s invoice into %s\n", profile, output)
	return exitOK
}

func runZugferdExtract(args []string) int {
	fs := flag.NewFlagSet("zugferd extract", flag.ExitOnError)
	var output string
	fs.StringVar(&output, "out", "", "Output XML path (default: stdout)")
	fs.Usage = func() { zugferdExtractUsage() }
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		zugferdExtractUsage()
		return exitError
	}

	pdfBytes, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read PDF: %v\n", err)
		return exitError
	}
	xmlBytes, err := zugferd.ExtractFromPDF(pdfBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	if output == "" {
		_, err = os.Stdout.Write(xmlBytes)
	} else {
		err = os.WriteFile(output, xmlBytes, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write output: %v\n", err)
		return exitError
	}
	return exitOK
}

func zugferdUsage() {
	fmt.Fprintf(os.Stderr, `Usage: einvoice zugferd <embed|extract> [options]

Use "einvoice zugferd embed --help" or "einvoice zugferd extract --help"
for details.
`)
}

func zugferdEmbedUsage() {
	fmt.Fprintf(os.Stderr, `Usage: einvoice zugferd embed [options] <pdf> <xml>

Embeds an invoice XML file into a PDF as a ZUGFeRD/Factur-X attachment.

Options:
  --profile string   minimum, basicwl, basic, en16931, extended, xrechnung (default "en16931")
  --out string        Output PDF path (default: overwrite input)
`)
}

func zugferdExtractUsage() {
	fmt.Fprintf(os.Stderr, `Usage: einvoice zugferd extract [options] <pdf>

Extracts the embedded invoice XML from a ZUGFeRD/Factur-X PDF.

Options:
  --out string   Output XML path (default: stdout)
`)
}
