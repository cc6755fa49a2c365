package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/fiskal-dev/einvoice"
)

func runInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Usage = infoUsage
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		infoUsage()
		return exitError
	}

	inv, err := parseInvoiceFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to parse invoice: %v\n", err)
		return exitError
	}

	printInfo(inv)
	return exitOK
}

// printInfo renders a plain-text invoice summary, truncating the line
// table to the terminal width when stdout is a terminal.
func printInfo(inv *einvoice.Invoice) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	fmt.Printf("Invoice %s (%s)\n", inv.Number, inv.TypeCode)
	fmt.Printf("  Issue date: %s\n", inv.IssueDate.Format("2006-01-02"))
	if inv.DueDate != nil {
		fmt.Printf("  Due date:   %s\n", inv.DueDate.Format("2006-01-02"))
	}
	fmt.Printf("  Seller: %s\n", inv.Seller.Name)
	fmt.Printf("  Buyer:  %s\n", inv.Buyer.Name)
	fmt.Println()

	fmt.Println(truncateLine("Lines:", width))
	for _, l := range inv.Lines {
		line := fmt.Sprintf("  %-6s %-30s qty=%s %s %s", l.ID, l.ItemName,
			l.Quantity.String(), l.Unit, einvoice.FormatAmount(l.LineAmount))
		fmt.Println(truncateLine(line, width))
	}

	if inv.Totals != nil {
		fmt.Println()
		fmt.Printf("  Net total:   %s %s\n", einvoice.FormatAmount(inv.Totals.NetTotal), inv.CurrencyCode)
		fmt.Printf("  VAT total:   %s %s\n", einvoice.FormatAmount(inv.Totals.VATTotal), inv.CurrencyCode)
		fmt.Printf("  Gross total: %s %s\n", einvoice.FormatAmount(inv.Totals.GrossTotal), inv.CurrencyCode)
		fmt.Printf("  Amount due:  %s %s\n", einvoice.FormatAmount(inv.Totals.AmountDue), inv.CurrencyCode)
		for _, row := range inv.Totals.VATBreakdown {
			fmt.Printf("    %s @ %s%%: taxable %s, tax %s\n",
				row.Category.Code(), einvoice.FormatPercent(row.Rate),
				einvoice.FormatAmount(row.TaxableAmount), einvoice.FormatAmount(row.TaxAmount))
		}
	}
}

func truncateLine(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

func infoUsage() {
	fmt.Fprintf(os.Stderr, `Usage: einvoice info <file>

Prints a human-readable summary of an invoice: parties, line items, and
computed totals. Accepts UBL or CII XML, and ZUGFeRD/Factur-X PDFs.
`)
}
