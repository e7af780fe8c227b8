package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"quotemaster/go_backend/internal/domain/quote"
)

const defaultFooter = "QuoteMaster Pro"

type Options struct {
	// FontDir holds DejaVuSans.ttf and DejaVuSans-Bold.ttf. When empty the
	// core Helvetica font is used and text is translated to cp1252.
	FontDir string
	Footer  string
}

type Generator struct {
	opts Options
}

func New(opts Options) *Generator {
	if opts.Footer == "" {
		opts.Footer = defaultFooter
	}
	return &Generator{opts: opts}
}

var (
	brandBlue   = [3]int{30, 64, 175}
	brandYellow = [3]int{250, 204, 21}
	rowTint     = [3]int{240, 248, 255}
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Item No.", 28, "L"},
	{"Description", 72, "L"},
	{"Model", 26, "L"},
	{"Qty", 14, "R"},
	{"MRP", 21, "R"},
	{"Total", 21, "R"},
}

func (g *Generator) Generate(q quote.Quotation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation "+q.Number, true)
	pdf.SetAutoPageBreak(true, 20)

	family, tr := "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	if g.opts.FontDir != "" {
		regular := filepath.Join(g.opts.FontDir, "DejaVuSans.ttf")
		bold := filepath.Join(g.opts.FontDir, "DejaVuSans-Bold.ttf")
		log.Printf("quote pdf: load fonts regular=%s bold=%s", regular, bold)
		pdf.AddUTF8Font("DejaVu", "", regular)
		pdf.AddUTF8Font("DejaVu", "B", bold)
		pdf.AddUTF8Font("DejaVu", "I", regular)
		family, tr = "DejaVu", func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return nil, err
	}

	pageW, pageH := pdf.GetPageSize()
	pdf.SetFooterFunc(func() {
		pdf.SetY(pageH - 14)
		pdf.SetFont(family, "I", 9)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 6, tr(g.opts.Footer), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// header band
	pdf.SetFillColor(brandBlue[0], brandBlue[1], brandBlue[2])
	pdf.Rect(0, 0, pageW, 40, "F")
	pdf.SetTextColor(brandYellow[0], brandYellow[1], brandYellow[2])
	pdf.SetFont(family, "B", 24)
	pdf.Text(14, 25, "QUOTATION")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(family, "", 10)
	pdf.Text(pageW-70, 14, tr("No: "+q.Number))
	pdf.Text(pageW-70, 20, "Date: "+q.GeneratedAt.Format("02.01.2006"))
	pdf.Text(pageW-70, 26, tr("Prepared for: "+trim(q.PreparedFor.DisplayName(), 28)))

	// table
	pdf.SetXY(14, 45)
	pdf.SetFont(family, "B", 9)
	pdf.SetFillColor(brandBlue[0], brandBlue[1], brandBlue[2])
	for _, c := range columns {
		pdf.CellFormat(c.width, 8, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(rowTint[0], rowTint[1], rowTint[2])
	for i, it := range q.Items {
		pdf.SetX(14)
		cells := []string{
			tr(trim(it.ItemNo, 16)),
			tr(trim(it.Description, 42)),
			tr(trim(it.Model, 14)),
			strconv.Itoa(it.Quantity),
			money(it.MRP),
			money(it.LineTotal),
		}
		fill := i%2 == 1
		for j, c := range columns {
			pdf.CellFormat(c.width, 7, cells[j], "1", 0, c.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	// summary
	pdf.Ln(6)
	labelX, valueW := pageW-74, 40.0
	summary := func(label, value string) {
		pdf.SetX(labelX)
		pdf.CellFormat(20, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}
	pdf.SetFont(family, "", 10)
	summary("Subtotal:", money(q.Subtotal))
	summary("Discount:", "-"+money(q.DiscountAmount))
	if q.DiscountPercent > 0 {
		summary("", "("+decimal.NewFromFloat(q.DiscountPercent).StringFixed(2)+"%)")
	}
	pdf.SetFont(family, "B", 12)
	summary("Final Total:", money(q.FinalTotal))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, fmt.Errorf("render quotation %s: %w", q.Number, err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
