package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fiskal-dev/einvoice"
)

// result is the JSON shape of a validate run.
type result struct {
	File       string      `json:"file"`
	Valid      bool        `json:"valid"`
	Invoice    *invoiceRef `json:"invoice,omitempty"`
	Violations []violation `json:"violations,omitempty"`
	Warnings   []violation `json:"warnings,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type violation struct {
	Rule    string `json:"rule"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type invoiceRef struct {
	Number string `json:"number,omitempty"`
	Date   string `json:"date,omitempty"`
	Total  string `json:"total,omitempty"`
}

func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var format string
	var verbose bool
	var xrechnung bool
	var peppol bool
	fs.StringVar(&format, "format", "text", "Output format: text, json")
	fs.BoolVar(&verbose, "verbose", false, "Also print warning-severity diagnostics")
	fs.BoolVar(&xrechnung, "xrechnung", false, "Also check the XRechnung CIUS rules")
	fs.BoolVar(&peppol, "peppol", false, "Also check the Peppol BIS Billing 3.0 rules")
	fs.Usage = validateUsage
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		validateUsage()
		return exitError
	}

	res := validateInvoice(fs.Arg(0), xrechnung, peppol)

	switch format {
	case "json":
		outputJSON(res)
	case "text":
		outputText(res, verbose)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use 'text' or 'json')\n", format)
		return exitError
	}

	switch {
	case res.Error != "":
		return exitError
	case !res.Valid:
		return exitViolations
	default:
		return exitOK
	}
}

// validateInvoice always runs the §14 UStG and EN 16931 layers, plus
// XRechnung and/or Peppol when the caller opts in (§4.F: those two
// layers are never run implicitly).
func validateInvoice(filename string, xrechnung, peppol bool) result {
	res := result{File: filename}

	inv, err := parseInvoiceFile(filename)
	if err != nil {
		res.Error = fmt.Sprintf("failed to parse invoice: %v", err)
		return res
	}

	res.Invoice = &invoiceRef{Number: inv.Number, Date: inv.IssueDate.Format("2006-01-02")}
	if inv.Totals != nil {
		res.Invoice.Total = einvoice.FormatAmount(inv.Totals.GrossTotal)
	}

	diags := append([]einvoice.Diagnostic{}, einvoice.ValidateUStG(inv)...)
	diags = append(diags, einvoice.ValidateEN16931(inv)...)
	diags = append(diags, einvoice.ValidateArithmetic(inv)...)
	if xrechnung {
		diags = append(diags, einvoice.ValidateXRechnung(inv)...)
	}
	if peppol {
		diags = append(diags, einvoice.ValidatePeppol(inv)...)
	}

	ve := &einvoice.ValidationError{Diagnostics: diags}
	res.Violations = toViolations(ve.Violations())
	res.Warnings = toViolations(ve.Warnings())
	res.Valid = len(res.Violations) == 0
	return res
}

func toViolations(diags []einvoice.Diagnostic) []violation {
	out := make([]violation, len(diags))
	for i, d := range diags {
		out[i] = violation{Rule: d.Rule, Field: d.Field, Message: d.Message}
	}
	return out
}

func outputText(res result, verbose bool) {
	if res.Error != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Error)
		return
	}

	if res.Valid {
		fmt.Printf("valid: invoice %s has no violations\n", res.Invoice.Number)
	} else {
		fmt.Printf("invalid: invoice %s has %d violation(s)\n", res.Invoice.Number, len(res.Violations))
		for _, v := range res.Violations {
			printDiag(v)
		}
	}
	if verbose {
		for _, w := range res.Warnings {
			fmt.Printf("  warning [%s] %s: %s\n", w.Rule, w.Field, w.Message)
		}
	}
}

func printDiag(v violation) {
	if v.Field != "" {
		fmt.Printf("  - [%s] %s: %s\n", v.Rule, v.Field, v.Message)
		return
	}
	fmt.Printf("  - [%s] %s\n", v.Rule, v.Message)
}

func outputJSON(res result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

func validateUsage() {
	fmt.Fprintf(os.Stderr, `Usage: einvoice validate [options] <file>

Validates an electronic invoice against business rules. Accepts UBL or
CII XML, and ZUGFeRD/Factur-X PDFs with an embedded invoice.

The §14 UStG and EN 16931 rule layers always run. XRechnung and Peppol
are opt-in since they apply only to specific invoice profiles.

Options:
  --format string   Output format: text, json (default "text")
  --verbose         Also print warning-severity diagnostics
  --xrechnung       Also check the German XRechnung CIUS rules
  --peppol          Also check the Peppol BIS Billing 3.0 rules

Exit codes:
  0  invoice has no violations
  1  invoice has one or more violations
  2  the file could not be parsed
`)
}
