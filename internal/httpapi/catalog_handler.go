package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mohamadsobeh/menu-sub000/internal/catalog"
)

type CatalogHandler struct {
	service *catalog.Service
}

func NewCatalogHandler(service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.Home(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load home feed")
		return
	}
	respondData(w, http.StatusOK, home)
}

func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.Products(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}
	respondDataMeta(w, http.StatusOK, products, map[string]int{"count": len(products)})
}

func (h *CatalogHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryIDStr := chi.URLParam(r, "id")
	categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
	if err != nil || categoryID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_category_id", "category id must be a positive integer")
		return
	}

	products, err := h.service.ProductsByCategory(r.Context(), categoryID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}
	respondDataMeta(w, http.StatusOK, products, map[string]int{"count": len(products)})
}

func (h *CatalogHandler) FavoriteProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.FavoriteProducts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load products")
		return
	}
	respondData(w, http.StatusOK, products)
}

func (h *CatalogHandler) ProductByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, err := h.service.ProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}
	respondData(w, http.StatusOK, product)
}

func (h *CatalogHandler) Offers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.Offers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load offers")
		return
	}
	respondDataMeta(w, http.StatusOK, offers, map[string]int{"count": len(offers)})
}

func (h *CatalogHandler) RecommendedOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.RecommendedOffers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load offers")
		return
	}
	respondData(w, http.StatusOK, offers)
}

func (h *CatalogHandler) OfferByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_offer_id", "offer id must be a positive integer")
		return
	}

	offer, err := h.service.OfferByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrOfferNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "offer not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load offer")
		return
	}
	respondData(w, http.StatusOK, offer)
}
