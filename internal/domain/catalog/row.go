package catalog

import (
	"sort"
	"strings"
	"unicode"
)

// Row is one data line of a spreadsheet export. Headers keep the column
// order of the source so that lookups are deterministic.
type Row struct {
	Headers []string
	Values  []string
}

// NewRow pairs a header line with one record. Missing trailing cells are
// treated as blank.
func NewRow(headers, values []string) Row {
	vals := make([]string, len(headers))
	copy(vals, values)
	return Row{Headers: headers, Values: vals}
}

// RowFromMap builds a row from an unordered mapping. Headers are sorted so
// that the result does not depend on map iteration.
func RowFromMap(m map[string]string) Row {
	headers := make([]string, 0, len(m))
	for k := range m {
		headers = append(headers, k)
	}
	sort.Strings(headers)
	values := make([]string, len(headers))
	for i, h := range headers {
		values[i] = m[h]
	}
	return Row{Headers: headers, Values: values}
}

// Lookup returns the value under the first alias that matches one of the
// row's headers. Matching compares normalized forms (see NormalizeHeader).
// Blank cells count as absent.
func (r Row) Lookup(aliases ...string) (string, bool) {
	for _, alias := range aliases {
		want := NormalizeHeader(alias)
		if want == "" {
			continue
		}
		for i, h := range r.Headers {
			if i >= len(r.Values) {
				break
			}
			if NormalizeHeader(h) != want {
				continue
			}
			v := strings.TrimSpace(r.Values[i])
			if v == "" {
				continue
			}
			return v, true
		}
	}
	return "", false
}

// NormalizeHeader lower-cases s and drops everything that is not a letter
// or a digit: "Item No." and "item_no" both become "itemno".
func NormalizeHeader(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
