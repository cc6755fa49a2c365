package codelists

// unitCodes is a subset of the UN/CEFACT Recommendation 20 unit-of-measure
// table covering the codes seen in practice on German/European invoices,
// sorted by code.
var unitCodes = []entry{
	{"C62", "one"},
	{"DAY", "day"},
	{"GRM", "gram"},
	{"H87", "piece"},
	{"HAR", "hectare"},
	{"HUR", "hour"},
	{"KGM", "kilogram"},
	{"KTM", "kilometre"},
	{"LS", "lump sum"},
	{"LTR", "litre"},
	{"MGM", "milligram"},
	{"MIN", "minute"},
	{"MLT", "millilitre"},
	{"MTK", "square metre"},
	{"MTQ", "cubic metre"},
	{"MTR", "metre"},
	{"NAR", "number of articles"},
	{"P1", "percent"},
	{"SET", "set"},
	{"TNE", "tonne"},
	{"WEE", "week"},
	{"XPP", "piece"},
}
