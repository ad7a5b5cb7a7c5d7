package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohamadsobeh/menu-sub000/internal/checkout"
	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type SelectTableRequestDTO struct {
	TableID int64 `json:"table_id"`
}

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type PlaceOrderRequestDTO struct {
	Customer domain.CustomerInfo `json:"customer"`
}

func (h *CheckoutHandler) TableOptions(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.TableOptions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load tables")
		return
	}
	respondData(w, http.StatusOK, tables)
}

func (h *CheckoutHandler) SelectTable(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())

	var req SelectTableRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.TableID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_table_id", "table_id must be positive")
		return
	}

	if err := h.service.SelectTable(r.Context(), sessionID, req.TableID); err != nil {
		if errors.Is(err, checkout.ErrTableNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "table not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to select table")
		return
	}

	respondData(w, http.StatusOK, h.service.Summary(sessionID))
}

func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())

	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "invalid_code", "الرجاء إدخال كود الخصم")
		return
	}

	result, err := h.service.ApplyCoupon(r.Context(), sessionID, req.Code)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to validate coupon")
		return
	}

	// An unknown code is a normal outcome, not an HTTP error; totals on the
	// session stay untouched.
	respondDataMeta(w, http.StatusOK, result, h.service.Summary(sessionID))
}

func (h *CheckoutHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())
	h.service.RemoveCoupon(sessionID)
	respondData(w, http.StatusOK, h.service.Summary(sessionID))
}

func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())
	respondData(w, http.StatusOK, h.service.Summary(sessionID))
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())

	var req PlaceOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	confirmation, err := h.service.PlaceOrder(r.Context(), sessionID, req.Customer)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			respondError(w, http.StatusBadRequest, "empty_cart", "السلة فارغة")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to place order")
		return
	}

	respondData(w, http.StatusCreated, confirmation)
}

func (h *CheckoutHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())
	h.service.Reset(sessionID)
	w.WriteHeader(http.StatusNoContent)
}
