package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mohamadsobeh/menu-sub000/internal/cart"
	"github.com/mohamadsobeh/menu-sub000/internal/domain"
	"github.com/mohamadsobeh/menu-sub000/pkg/money"
)

type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

type AddItemRequestDTO struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Kind          string            `json:"kind"`
	PriceSYP      int64             `json:"price_syp"`
	PriceUSDCents int64             `json:"price_usd_cents"`
	ImageURL      string            `json:"image_url"`
	Quantity      int               `json:"quantity"`
	Additions     []domain.Addition `json:"additions,omitempty"`
	// Origin is the screen position of the tapped card. When present, a
	// flying-animation entry is created after the cart mutation commits.
	Origin *domain.Point `json:"origin,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Kind        string  `json:"kind"`
	Quantity    int     `json:"quantity"`
	AdditionIDs []int64 `json:"addition_ids,omitempty"`
}

type CartViewDTO struct {
	Items             []domain.LineItem `json:"items"`
	ItemCount         int               `json:"item_count"`
	TotalPriceSYP     int64             `json:"total_price_syp"`
	TotalPriceDisplay string            `json:"total_price_display"`
}

type AddItemResponseDTO struct {
	Cart      CartViewDTO             `json:"cart"`
	Animation *domain.FlyingAnimation `json:"animation,omitempty"`
}

func (h *CartHandler) cartView(sessionID string) CartViewDTO {
	total := h.store.TotalPrice(sessionID)
	return CartViewDTO{
		Items:             h.store.Items(sessionID),
		ItemCount:         h.store.ItemCount(sessionID),
		TotalPriceSYP:     total,
		TotalPriceDisplay: money.FormatSYP(total),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())
	respondData(w, http.StatusOK, h.cartView(sessionID))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "id must be positive")
		return
	}
	kind := domain.ItemKind(req.Kind)
	if kind != domain.ItemKindProduct && kind != domain.ItemKindOffer {
		respondError(w, http.StatusBadRequest, "invalid_kind", "kind must be product or offer")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}
	if req.PriceSYP < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "price must not be negative")
		return
	}

	item := domain.LineItem{
		ID:            req.ID,
		Name:          req.Name,
		Kind:          kind,
		PriceSYP:      req.PriceSYP,
		PriceUSDCents: req.PriceUSDCents,
		ImageURL:      req.ImageURL,
		Quantity:      req.Quantity,
		Additions:     req.Additions,
	}

	// Commit the mutation first; the animation is presentation only.
	h.store.AddItem(sessionID, item)

	var anim *domain.FlyingAnimation
	if req.Origin != nil {
		anim = h.store.AddAnimation(sessionID, req.ImageURL, *req.Origin)
	}

	respondData(w, http.StatusCreated, AddItemResponseDTO{
		Cart:      h.cartView(sessionID),
		Animation: anim,
	})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())

	itemID, err := parseItemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "id must be a positive integer")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	kind := domain.ItemKind(req.Kind)
	if kind != domain.ItemKindProduct && kind != domain.ItemKindOffer {
		respondError(w, http.StatusBadRequest, "invalid_kind", "kind must be product or offer")
		return
	}
	// The store writes the quantity verbatim, so the floor lives here.
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	target := itemKeyRef(itemID, kind, req.AdditionIDs)
	if err := h.store.UpdateQuantity(sessionID, target, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "item not found in cart")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
		return
	}

	respondData(w, http.StatusOK, h.cartView(sessionID))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())

	itemID, err := parseItemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "id must be a positive integer")
		return
	}

	kind := domain.ItemKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = domain.ItemKindProduct
	}
	additionIDs, err := parseAdditionIDs(r.URL.Query().Get("additions"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_additions", "additions must be comma-separated integers")
		return
	}

	// Removing an absent item is a no-op by contract.
	h.store.RemoveItem(sessionID, itemKeyRef(itemID, kind, additionIDs))
	respondData(w, http.StatusOK, h.cartView(sessionID))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())
	h.store.ClearCart(sessionID)
	respondData(w, http.StatusOK, h.cartView(sessionID))
}

func (h *CartHandler) SetAnchor(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())

	var p domain.Point
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.store.SetAnchor(sessionID, p)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) Animations(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionIDFromContext(r.Context())
	respondData(w, http.StatusOK, h.store.Animations(sessionID))
}

func parseItemID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid item id")
	}
	return id, nil
}

func parseAdditionIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// itemKeyRef builds a line item carrying just enough to resolve the cart
// identity key (id, kind, sorted addition ids).
func itemKeyRef(id int64, kind domain.ItemKind, additionIDs []int64) domain.LineItem {
	additions := make([]domain.Addition, len(additionIDs))
	for i, aid := range additionIDs {
		additions[i] = domain.Addition{ID: aid}
	}
	return domain.LineItem{ID: id, Kind: kind, Additions: additions}
}
