package quote

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"quotemaster/go_backend/internal/domain/cart"
	"quotemaster/go_backend/internal/domain/pricing"
)

const GuestName = "Guest"

type Quotation struct {
	Number      string    `json:"number"`
	GeneratedAt time.Time `json:"generated_at"`
	PreparedFor Requester `json:"prepared_for"`
	Items       []Item    `json:"items"`

	Subtotal        float64 `json:"subtotal"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountPercent float64 `json:"discount_percent"`
	FinalTotal      float64 `json:"final_total"`
}

type Item struct {
	ItemNo      string  `json:"item_no"`
	Description string  `json:"description"`
	Model       string  `json:"model"`
	Quantity    int     `json:"quantity"`
	MRP         float64 `json:"mrp"`
	LineTotal   float64 `json:"line_total"`
}

type Requester struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// Anonymous reports whether no requester name was given.
func (r Requester) Anonymous() bool { return strings.TrimSpace(r.Name) == "" }

// DisplayName is the name printed on the document.
func (r Requester) DisplayName() string {
	if r.Anonymous() {
		return GuestName
	}
	return strings.TrimSpace(r.Name)
}

// Assemble turns priced cart lines into a document payload. Lines keep cart
// order. It performs no I/O.
func Assemble(lines []cart.Line, totals pricing.Totals, who Requester, now time.Time) Quotation {
	q := Quotation{
		Number:          NewNumber(),
		GeneratedAt:     now,
		PreparedFor:     who,
		Items:           make([]Item, 0, len(lines)),
		Subtotal:        totals.Subtotal,
		DiscountAmount:  totals.DiscountAmount,
		DiscountPercent: totals.DiscountPercent,
		FinalTotal:      totals.FinalTotal,
	}
	for _, l := range lines {
		q.Items = append(q.Items, Item{
			ItemNo:      l.ItemNo,
			Description: l.Description,
			Model:       l.Model,
			Quantity:    l.Quantity,
			MRP:         l.MRP,
			LineTotal:   l.Total(),
		})
	}
	return q
}

// NewNumber returns a short human-friendly quotation number.
func NewNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "Q-" + strings.ToUpper(id[:8])
}

var whitespace = regexp.MustCompile(`\s`)

// FileName is the suggested name for the uploaded copy of the document.
func (q Quotation) FileName() string {
	name := whitespace.ReplaceAllString(q.PreparedFor.DisplayName(), "_")
	return "Quote_" + name + "_" + strconv.FormatInt(q.GeneratedAt.UnixMilli(), 10) + ".pdf"
}

// DownloadName is the name offered when the document is downloaded.
func (q Quotation) DownloadName() string {
	return "Quotation_" + q.GeneratedAt.Format("2006-01-02") + ".pdf"
}
