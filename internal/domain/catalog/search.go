package catalog

import "strings"

const DefaultPageSize = 50

// Page is one window of search results. Total counts every match, not just
// the ones in Items.
type Page struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// Search filters items whose item number, description or model contains
// query (case-insensitive) and returns the requested window. An empty query
// matches everything.
func Search(items []Item, query string, offset, limit int) Page {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	q := strings.ToLower(strings.TrimSpace(query))
	matched := items
	if q != "" {
		matched = make([]Item, 0, len(items))
		for _, it := range items {
			if matches(it, q) {
				matched = append(matched, it)
			}
		}
	}

	p := Page{Total: len(matched), Offset: offset, Limit: limit, Items: []Item{}}
	if offset >= len(matched) {
		return p
	}
	end := len(matched)
	if limit < end-offset {
		end = offset + limit
	}
	p.Items = append(p.Items, matched[offset:end]...)
	return p
}

func matches(it Item, q string) bool {
	return strings.Contains(strings.ToLower(it.ItemNo), q) ||
		strings.Contains(strings.ToLower(it.Description), q) ||
		strings.Contains(strings.ToLower(it.Model), q)
}

// Find returns the item with the given id.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
