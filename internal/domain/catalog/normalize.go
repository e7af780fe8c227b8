package catalog

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Normalize maps raw sheet rows onto catalog items using DefaultAliases.
func Normalize(rows []Row) []Item {
	return NormalizeWith(rows, DefaultAliases)
}

// NormalizeWith maps raw sheet rows onto catalog items. It never fails:
// unparsable numbers become 0, missing text becomes a placeholder, and rows
// where neither the item number nor the description resolves are dropped.
//
// IDs derive from the item number, or the description when the number is
// missing ("A-100" becomes "item-a-100"). Repeats within one batch get a
// numeric suffix ("item-a-100-2"), so an id names the same product across
// refreshes as long as its item number does not change.
func NormalizeWith(rows []Row, a Aliases) []Item {
	out := make([]Item, 0, len(rows))
	taken := make(map[string]bool, len(rows))
	for _, row := range rows {
		itemNo, hasItemNo := row.Lookup(a.ItemNo...)
		desc, hasDesc := row.Lookup(a.Description...)
		if !hasItemNo && !hasDesc {
			continue
		}

		key := itemNo
		if !hasItemNo {
			key = desc
		}

		saleRate, _ := row.Lookup(a.SaleRate...)
		mrp, _ := row.Lookup(a.MRP...)

		out = append(out, Item{
			ID:          uniqueID(taken, "item-"+slug(key)),
			ItemNo:      orDefault(itemNo, DefaultText),
			Description: orDefault(desc, DefaultText),
			Group:       text(row, a.Group, DefaultText),
			Model:       text(row, a.Model, DefaultText),
			Flag:        text(row, a.Flag, DefaultText),
			TaxRate:     text(row, a.TaxRate, DefaultTaxRate),
			SaleRate:    ParseAmount(saleRate),
			MRP:         ParseAmount(mrp),
		})
	}
	return out
}

func uniqueID(taken map[string]bool, base string) string {
	id := base
	for n := 2; taken[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	taken[id] = true
	return id
}

// slug lower-cases s and collapses every run of other characters than
// letters and digits into a single '-'.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "row"
	}
	return b.String()
}

func text(row Row, aliases []string, def string) string {
	v, _ := row.Lookup(aliases...)
	return orDefault(v, def)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ParseAmount reads a non-negative number from a sheet cell. Thousands
// separators are ignored and trailing garbage is tolerated ("120 Rs" is
// 120). Anything else, including negative or non-finite values, is 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		f, err = strconv.ParseFloat(numericPrefix(s), 64)
		if err != nil {
			return 0
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// numericPrefix returns the longest leading run that looks like a decimal
// number: optional sign, digits, at most one dot, optional exponent.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits, dot := 0, false
scan:
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			break scan
		}
	}
	if digits == 0 {
		return ""
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			end = k
		}
	}
	return s[:end]
}
