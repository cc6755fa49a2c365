package zugferd

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

// pdfTrailer captures the parts of an existing PDF's cross-reference
// information needed to append a spec-conforming incremental update: the
// document's current object count, the existing Catalog's dictionary body
// (carried forward into the patched Catalog), and the byte offset of the
// prior cross-reference section the new one must chain to via /Prev.
type pdfTrailer struct {
	size       int
	catalog    []byte // Catalog dictionary body, without the enclosing << >>
	prevOffset int    // byte offset named by the original startxref
}

var (
	reStartXref = regexp.MustCompile(`startxref\s*(\d+)`)
	reRootRef   = regexp.MustCompile(`/Root\s+(\d+)\s+\d+\s+R`)
	reSizeVal   = regexp.MustCompile(`/Size\s+(\d+)`)
	reObjHeader = regexp.MustCompile(`(?s)^\s*\d+\s+\d+\s+obj\b`)
)

// lastStartXref returns the byte offset named by the final "startxref"
// keyword in pdf, which always points at the document's current
// cross-reference section (table or stream).
func lastStartXref(pdf []byte) (int, error) {
	matches := reStartXref.FindAllSubmatchIndex(pdf, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("pdf has no startxref keyword")
	}
	last := matches[len(matches)-1]
	n, err := strconv.Atoi(string(pdf[last[2]:last[3]]))
	if err != nil {
		return 0, fmt.Errorf("invalid startxref offset: %w", err)
	}
	return n, nil
}

// parseTrailer locates the Catalog named by the PDF's final trailer,
// whether it comes from a classic xref table or a cross-reference
// stream object.
func parseTrailer(pdf []byte) (*pdfTrailer, error) {
	offset, err := lastStartXref(pdf)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= len(pdf) {
		return nil, fmt.Errorf("startxref offset %d out of range", offset)
	}

	window := pdf[offset:]

	var dict []byte
	if loc := reObjHeader.FindIndex(window); loc != nil && loc[0] == 0 {
		// Cross-reference stream: "N G obj << ... >> stream ...". Its own
		// dictionary carries /Root and /Size directly.
		d, _, err := readDict(window, loc[1])
		if err != nil {
			return nil, fmt.Errorf("parsing cross-reference stream dictionary: %w", err)
		}
		dict = d
	} else {
		idx := bytes.Index(window, []byte("trailer"))
		if idx < 0 {
			return nil, fmt.Errorf("could not locate a classic trailer or cross-reference stream at the startxref offset")
		}
		d, _, err := readDict(window, idx+len("trailer"))
		if err != nil {
			return nil, fmt.Errorf("parsing trailer dictionary: %w", err)
		}
		dict = d
	}

	rootMatch := reRootRef.FindSubmatch(dict)
	if rootMatch == nil {
		return nil, fmt.Errorf("trailer has no /Root entry")
	}
	root, _ := strconv.Atoi(string(rootMatch[1]))

	sizeMatch := reSizeVal.FindSubmatch(dict)
	if sizeMatch == nil {
		return nil, fmt.Errorf("trailer has no /Size entry")
	}
	size, _ := strconv.Atoi(string(sizeMatch[1]))

	catalog, err := findObjectDict(pdf, root)
	if err != nil {
		return nil, err
	}

	return &pdfTrailer{size: size, catalog: catalog, prevOffset: offset}, nil
}

// findObjectDict returns the dictionary body of the last "<num> <gen> obj"
// occurrence of objNum in pdf. It only understands objects written
// directly in the file body; a Catalog compressed into an object stream
// cannot be located this way.
func findObjectDict(pdf []byte, objNum int) ([]byte, error) {
	header := regexp.MustCompile(fmt.Sprintf(`(?:^|[^0-9])%d\s+\d+\s+obj\b`, objNum))
	matches := header.FindAllIndex(pdf, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("object %d obj not found directly in the file body (it may be stored in a compressed object stream)", objNum)
	}
	last := matches[len(matches)-1]
	dict, _, err := readDict(pdf, last[1])
	if err != nil {
		return nil, fmt.Errorf("parsing object %d's dictionary: %w", objNum, err)
	}
	return dict, nil
}

// readDict scans forward from pdf[from:] past whitespace to a "<<", then
// returns the dictionary body (without the enclosing << >>) and the index
// just past the closing ">>". It tracks nested << >> pairs, [ ] arrays,
// and ( ) literal strings so that nested dictionaries and arrays inside
// the target dictionary don't confuse the closing delimiter.
func readDict(b []byte, from int) ([]byte, int, error) {
	i := skipSpace(b, from)
	if i+1 >= len(b) || b[i] != '<' || b[i+1] != '<' {
		return nil, 0, fmt.Errorf("expected dictionary starting with << at offset %d", i)
	}
	start := i + 2
	depth := 1
	j := start
	for j < len(b) {
		switch {
		case j+1 < len(b) && b[j] == '<' && b[j+1] == '<':
			depth++
			j += 2
		case j+1 < len(b) && b[j] == '>' && b[j+1] == '>':
			depth--
			j += 2
			if depth == 0 {
				return b[start : j-2], j, nil
			}
		case b[j] == '(':
			j = skipLiteralString(b, j)
		default:
			j++
		}
	}
	return nil, 0, fmt.Errorf("unterminated dictionary")
}

// skipLiteralString returns the index just past a balanced, backslash-
// escape-aware "(...)" literal string starting at b[i] == '('.
func skipLiteralString(b []byte, i int) int {
	depth := 0
	for ; i < len(b); i++ {
		switch b[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return i
}

func skipSpace(b []byte, i int) int {
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\r', '\n', '\f', 0:
			i++
		default:
			return i
		}
	}
	return i
}

// stripKeys removes every standalone occurrence of the named keys (and
// their values) from a dictionary body, so a patched Catalog never ends
// up with a duplicate /AF, /Names, /Metadata, or /MarkInfo entry when the
// source PDF already carried one. It does not track nesting: a matching
// key inside a nested dictionary value is removed as well.
func stripKeys(dict []byte, keys ...string) []byte {
	for _, key := range keys {
		from := 0
		for {
			rel := bytes.Index(dict[from:], []byte(key))
			if rel < 0 {
				break
			}
			idx := from + rel
			if !isKeyBoundary(dict, idx, len(key)) {
				from = idx + len(key)
				continue
			}
			valEnd := skipDictValue(dict, idx+len(key))
			dict = append(dict[:idx:idx], dict[valEnd:]...)
			from = idx
		}
	}
	return dict
}

// isKeyBoundary reports whether dict[idx:idx+n] is a standalone name
// token, not a prefix of a longer key (e.g. "/AF" inside "/AFRelationship").
func isKeyBoundary(dict []byte, idx, n int) bool {
	if idx > 0 {
		c := dict[idx-1]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' && c != '<' && c != '>' {
			return false
		}
	}
	end := idx + n
	if end < len(dict) {
		c := dict[end]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' && c != '/' && c != '<' && c != '[' {
			return false
		}
	}
	return true
}

// skipDictValue returns the index just past the value that follows a key
// ending at dict[from], handling reference/scalar tokens, nested
// dictionaries, arrays, and literal strings.
func skipDictValue(dict []byte, from int) int {
	i := skipSpace(dict, from)
	switch {
	case i+1 < len(dict) && dict[i] == '<' && dict[i+1] == '<':
		_, end, err := readDict(dict, i)
		if err != nil {
			return len(dict)
		}
		return end
	case i < len(dict) && dict[i] == '[':
		depth := 0
		for ; i < len(dict); i++ {
			switch dict[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					return i + 1
				}
			case '(':
				i = skipLiteralString(dict, i) - 1
			}
		}
		return len(dict)
	case i < len(dict) && dict[i] == '(':
		return skipLiteralString(dict, i)
	default:
		for i < len(dict) {
			if dict[i] == '/' || (dict[i] == '>' && i+1 < len(dict) && dict[i+1] == '>') {
				return i
			}
			i++
		}
		return i
	}
}

// escapePDFString escapes a string for use inside a PDF "(...)" literal.
func escapePDFString(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', ')', '\\':
			out = append(out, '\\', s[i])
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
