package codelists

import "sort"

// entry is one row of a sorted code table: a code and its description.
type entry struct {
	Code string
	Name string
}

// lookup binary-searches a table sorted by Code (ascending) for code.
func lookup(table []entry, code string) (string, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].Code >= code })
	if i < len(table) && table[i].Code == code {
		return table[i].Name, true
	}
	return "", false
}
