// Package rules defines the business-rule identifiers referenced by the
// validation layers: §14 UStG, EN 16931 BR-*, XRechnung BR-DE-*, and
// Peppol BIS 3.0 PEPPOL-*.
//
// Unlike the EN 16931/Peppol schematron sources these identifiers are
// ultimately drawn from, the rule tables here are hand-authored: there
// is no upstream schematron for the §14 UStG layer, and the EN
// 16931/Peppol schematron-derived tables are kept in the same style for
// consistency.
package rules

// Rule identifies one business rule: its code, the BT-/BG- fields it
// constrains, and a short human description.
type Rule struct {
	Code        string
	Fields      []string
	Description string
}
