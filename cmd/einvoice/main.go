// Command einvoice inspects, validates, and converts electronic
// invoices under the EN 16931 / §14 UStG / XRechnung / Peppol rule
// sets.
package main

import (
	"fmt"
	"os"
)

const (
	exitOK         = 0
	exitViolations = 1
	exitError      = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		usage()
		return exitError
	}

	switch os.Args[1] {
	case "validate":
		return runValidate(os.Args[2:])
	case "info":
		return runInfo(os.Args[2:])
	case "zugferd":
		return runZugferd(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		return exitError
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: einvoice <command> [options]

Commands:
  validate    Validate an electronic invoice against business rules
  info        Print a summary of an invoice
  zugferd     Embed or extract a ZUGFeRD/Factur-X invoice attachment

Use "einvoice <command> --help" for more information about a command.
`)
}
