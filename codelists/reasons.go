package codelists

// allowanceReasons is a subset of the UNTDID 5189 allowance-reason
// code table, sorted lexicographically by code (the codes are numeric
// strings, not numbers, so "100" sorts before "41").
var allowanceReasons = []entry{
	{"100", "Special rebate"},
	{"41", "Bonus for works ahead of schedule"},
	{"62", "Production error discount"},
	{"63", "New outlet discount"},
	{"64", "Sample discount"},
	{"65", "End-of-range discount"},
	{"66", "Incoterm discount"},
	{"70", "Special agreement"},
	{"95", "Discount"},
}

// chargeReasons is a subset of the UNTDID 7161 charge-reason code
// table, sorted by code.
var chargeReasons = []entry{
	{"AA", "Advertising"},
	{"ABK", "Transport"},
	{"ADR", "Packing"},
	{"FC", "Freight charges"},
	{"HAA", "Handling"},
	{"IN", "Insurance"},
	{"SH", "Shipping and handling"},
}

// textSubjectQualifiers is a subset of the UNCL 4451 text-subject
// qualifier table used on BG-1 notes, sorted by code.
var textSubjectQualifiers = []entry{
	{"AAA", "Goods item description"},
	{"AAB", "Payment term"},
	{"AAI", "General information"},
	{"ABY", "Terms of delivery"},
	{"SUR", "Price calculation formula"},
	{"TXD", "Tax declaration"},
}
