package catalog

// Item is a canonical catalog entry.
type Item struct {
	ID          string  `json:"id"`
	ItemNo      string  `json:"item_no"`
	Description string  `json:"description"`
	Group       string  `json:"group"`
	Model       string  `json:"model"`
	Flag        string  `json:"flag"`
	TaxRate     string  `json:"tax_rate"`
	SaleRate    float64 `json:"sale_rate"`
	MRP         float64 `json:"mrp"`
}

// Placeholders used when a text column cannot be resolved.
const (
	DefaultText    = "-"
	DefaultTaxRate = "0"
)

// Aliases lists, per canonical field, the header spellings accepted from a
// sheet. Order matters: the first alias present in a row wins.
type Aliases struct {
	ItemNo      []string
	Description []string
	Group       []string
	Model       []string
	Flag        []string
	TaxRate     []string
	SaleRate    []string
	MRP         []string
}

// DefaultAliases matches the column names used by the dealer price lists.
var DefaultAliases = Aliases{
	ItemNo:      []string{"item no", "itemno", "code", "sku"},
	Description: []string{"item description", "description", "desc", "name"},
	Group:       []string{"item group", "group", "category"},
	Model:       []string{"model"},
	Flag:        []string{"bhl/hln flag", "bhl", "hln", "flag"},
	TaxRate:     []string{"hsn tax %", "hsn", "tax"},
	SaleRate:    []string{"sale rate", "rate", "salerate"},
	MRP:         []string{"mrp", "price", "amount"},
}
