package codelists

// documentTypes is the UNTDID 1001 subset relevant to invoicing,
// sorted by code.
var documentTypes = []entry{
	{"326", "Partial invoice"},
	{"380", "Commercial invoice"},
	{"381", "Credit note"},
	{"383", "Debit note"},
	{"384", "Corrected invoice"},
	{"386", "Prepayment invoice"},
	{"389", "Self-billed invoice"},
	{"751", "Invoice information for accounting purposes"},
	{"875", "Partial construction invoice"},
	{"876", "Partial final construction invoice"},
	{"877", "Final construction invoice"},
}
