package pricing

import (
	"fmt"
	"math"
	"strings"

	"quotemaster/go_backend/internal/domain/cart"
	"quotemaster/go_backend/internal/domain/catalog"
)

type Mode string

const (
	Fixed   Mode = "fixed"
	Percent Mode = "percent"
)

// Discount is the value the user last typed and which field they typed it
// in. The other representation is always derived from it. The zero value
// is "no discount".
type Discount struct {
	Mode  Mode    `json:"mode"`
	Value float64 `json:"value"`
}

func FixedDiscount(amount float64) Discount { return Discount{Mode: Fixed, Value: clean(amount)} }

func PercentDiscount(pct float64) Discount { return Discount{Mode: Percent, Value: clean(pct)} }

// ParseDiscount builds a discount from raw user input. A leading number is
// read the way sheet amounts are ("12abc" is 12); anything else counts as 0.
func ParseDiscount(mode, raw string) (Discount, error) {
	v := catalog.ParseAmount(raw)
	switch Mode(strings.ToLower(strings.TrimSpace(mode))) {
	case Fixed, "":
		return FixedDiscount(v), nil
	case Percent:
		return PercentDiscount(v), nil
	default:
		return Discount{}, fmt.Errorf("unknown discount mode %q", mode)
	}
}

func clean(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

type Totals struct {
	Subtotal        float64 `json:"subtotal"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountPercent float64 `json:"discount_percent"`
	FinalTotal      float64 `json:"final_total"`
}

// Subtotal sums MRP x quantity over lines.
func Subtotal(lines []cart.Line) float64 {
	var s float64
	for _, l := range lines {
		s += l.Total()
	}
	return s
}

// Compute derives the quotation totals. The discount amount is capped at the
// subtotal after the percentage has been derived, so a fixed discount larger
// than the subtotal still reports its uncapped percentage.
func Compute(lines []cart.Line, d Discount) Totals {
	t := Totals{Subtotal: Subtotal(lines)}
	v := clean(d.Value)

	switch d.Mode {
	case Percent:
		t.DiscountPercent = v
		t.DiscountAmount = v / 100 * t.Subtotal
	default:
		t.DiscountAmount = v
		if t.Subtotal > 0 {
			t.DiscountPercent = v / t.Subtotal * 100
		}
	}

	if t.DiscountAmount > t.Subtotal {
		t.DiscountAmount = t.Subtotal
	}
	t.FinalTotal = t.Subtotal - t.DiscountAmount
	return t
}
