package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"quotemaster/go_backend/internal/domain/quote"
	"quotemaster/go_backend/internal/session"
)

type CreateQuoteRequest struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := decode(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	res, err := h.Session.GenerateQuotation(r.Context(), quote.Requester{Name: req.Name, Mobile: req.Mobile})
	if errors.Is(err, session.ErrEmptyCart) {
		writeError(w, http.StatusUnprocessableEntity, "quotation is empty")
		return
	}
	if err != nil {
		log.Printf("quote: generate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.Quotation.DownloadName()+`"`)
	w.Header().Set("X-Quotation-Number", res.Quotation.Number)
	w.Header().Set("X-Upload-Status", string(res.Upload))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Document)
}
