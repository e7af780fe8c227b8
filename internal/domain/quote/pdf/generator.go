package pdf

import "quotemaster/go_backend/internal/domain/quote"

// Generator renders a quotation into a binary document.
type Generator interface {
	Generate(q quote.Quotation) ([]byte, error)
}
