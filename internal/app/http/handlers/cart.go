package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quotemaster/go_backend/internal/domain/cart"
	"quotemaster/go_backend/internal/domain/pricing"
	"quotemaster/go_backend/internal/session"
)

type addItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// discountRequest carries the raw field the user edited; value may be a
// number or a string.
type discountRequest struct {
	Mode  string      `json:"mode"`
	Value interface{} `json:"value"`
}

func (h *Handlers) Cart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Session.Cart())
}

func (h *Handlers) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decode(w, r, &req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	err := h.Session.AddToCart(req.ID, req.Quantity)
	switch {
	case errors.Is(err, cart.ErrAlreadyInCart):
		writeError(w, http.StatusConflict, "item already in quotation")
		return
	case errors.Is(err, session.ErrUnknownItem):
		writeError(w, http.StatusNotFound, "item not found in catalog")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "add to cart failed")
		return
	}
	writeJSON(w, http.StatusCreated, h.Session.Cart())
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := h.Session.SetQuantity(chi.URLParam(r, "id"), req.Quantity); errors.Is(err, cart.ErrNotInCart) {
		writeError(w, http.StatusNotFound, "item not in quotation")
		return
	}
	writeJSON(w, http.StatusOK, h.Session.Cart())
}

func (h *Handlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if !h.Session.RemoveFromCart(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "item not in quotation")
		return
	}
	writeJSON(w, http.StatusOK, h.Session.Cart())
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.Session.ClearCart()
	writeJSON(w, http.StatusOK, h.Session.Cart())
}

func (h *Handlers) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var req discountRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	d, err := pricing.ParseDiscount(req.Mode, toString(req.Value))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.Session.SetDiscount(d))
}
