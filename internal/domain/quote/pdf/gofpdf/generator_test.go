package gofpdf

import (
	"bytes"
	"testing"
	"time"

	"quotemaster/go_backend/internal/domain/quote"
)

func sample(n int) quote.Quotation {
	q := quote.Quotation{
		Number:      "Q-0000ABCD",
		GeneratedAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		PreparedFor: quote.Requester{Name: "Asha Rao"},
	}
	for i := 0; i < n; i++ {
		q.Items = append(q.Items, quote.Item{
			ItemNo: "A1", Description: "Submersible pump with a long description that gets trimmed",
			Model: "SP-100", Quantity: 2, MRP: 1250.5, LineTotal: 2501,
		})
	}
	q.Subtotal = 2501 * float64(n)
	q.DiscountAmount = 100
	q.DiscountPercent = 100 / q.Subtotal * 100
	q.FinalTotal = q.Subtotal - 100
	return q
}

func TestGenerate(t *testing.T) {
	out, err := New(Options{}).Generate(sample(3))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF: %q", out[:min(len(out), 16)])
	}
}

func TestGenerate_ManyLinesPaginates(t *testing.T) {
	g := New(Options{Footer: "Dealer copy"})
	short, err := g.Generate(sample(1))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	long, err := g.Generate(sample(120))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(long) <= len(short) {
		t.Fatalf("expected a longer document, got %d <= %d bytes", len(long), len(short))
	}
}

func TestGenerate_MissingFontDir(t *testing.T) {
	if _, err := New(Options{FontDir: t.TempDir()}).Generate(sample(1)); err == nil {
		t.Fatal("expected error for missing font files")
	}
}

func TestMoney(t *testing.T) {
	tests := map[float64]string{0: "0.00", 1250.5: "1250.50", 0.125: "0.13", 99.999: "100.00"}
	for in, want := range tests {
		if got := money(in); got != want {
			t.Errorf("money(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTrim(t *testing.T) {
	if got := trim("abcdef", 4); got != "abc…" {
		t.Errorf("trim() = %q", got)
	}
	if got := trim("abc", 4); got != "abc" {
		t.Errorf("trim() = %q", got)
	}
}
