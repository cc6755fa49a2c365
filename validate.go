package einvoice

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fiskal-dev/einvoice/codelists"
	"github.com/fiskal-dev/einvoice/rules"
)

// A validator is a pure function Invoice -> []Diagnostic. Validators
// never short-circuit and never mutate the invoice; all four layers
// (§14 UStG, EN 16931, XRechnung, Peppol) and the arithmetic
// cross-check share this shape.

func errorDiag(field, message string, rule rules.Rule) Diagnostic {
	return Diagnostic{Field: field, Message: message, Rule: rule.Code, Severity: SeverityError}
}

func warningDiag(field, message string, rule rules.Rule) Diagnostic {
	return Diagnostic{Field: field, Message: message, Rule: rule.Code, Severity: SeverityWarning}
}

// vatIDRE matches a two-letter country prefix followed by a payload
// (whitespace already stripped by the caller).
var vatIDRE = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]+$`)
var deVATIDDigitsRE = regexp.MustCompile(`^DE[0-9]{9}$`)

// validVATID checks the §14 UStG VAT-ID shape: exactly two uppercase
// letters followed by a payload, with the DE prefix additionally
// constrained to exactly 9 digits.
func validVATID(id string) bool {
	id = strings.ReplaceAll(id, " ", "")
	if id == "" {
		return false
	}
	if !vatIDRE.MatchString(id) {
		return false
	}
	if strings.HasPrefix(id, "DE") {
		return deVATIDDigitsRE.MatchString(id)
	}
	return true
}

// addressComplete reports whether a itself carries the minimum §14
// UStG postal address content: city, postal code and a known country.
func addressComplete(a Address) bool {
	return a.City != "" && a.PostalCode != "" && codelists.IsKnownCountry(a.CountryCode)
}

// containsAll reports whether every needle appears in haystack.
func containsAll(haystack string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			return false
		}
	}
	return true
}

// anyNoteContains reports whether at least one note's text contains
// every given substring.
func anyNoteContains(notes []Note, needles ...string) bool {
	for _, n := range notes {
		if containsAll(n.Text, needles...) {
			return true
		}
	}
	return false
}

func lineField(i int, suffix string) string {
	return fmt.Sprintf("lines[%d].%s", i, suffix)
}
