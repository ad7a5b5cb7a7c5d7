package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

func addItemBody(id int64, priceSYP int64, qty int) AddItemRequestDTO {
	return AddItemRequestDTO{
		ID:       id,
		Name:     "شاورما دجاج",
		Kind:     "product",
		PriceSYP: priceSYP,
		Quantity: qty,
	}
}

func TestGetCart_StartsEmpty(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/customer/cart/", "s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeData(t, rec, &view)
	assert.Zero(t, view.ItemCount)
	assert.Zero(t, view.TotalPriceSYP)
	assert.Equal(t, "0 ل.س", view.TotalPriceDisplay)
}

func TestAddItem_Success(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 1))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AddItemResponseDTO
	decodeData(t, rec, &resp)
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, int64(25000), resp.Cart.TotalPriceSYP)
	assert.Equal(t, "25,000 ل.س", resp.Cart.TotalPriceDisplay)
	assert.Nil(t, resp.Animation)
}

func TestAddItem_SameItemMerges(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 1))
	rec := doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 2))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AddItemResponseDTO
	decodeData(t, rec, &resp)
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 3, resp.Cart.Items[0].Quantity)
	assert.Equal(t, int64(75000), resp.Cart.TotalPriceSYP)
}

func TestAddItem_WithOriginReturnsAnimation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/customer/cart/anchor", "s1", domain.Point{X: 320, Y: 640})
	require.Equal(t, http.StatusNoContent, rec.Code)

	body := addItemBody(1, 25000, 1)
	body.ImageURL = "/images/products/chicken-shawarma.jpg"
	body.Origin = &domain.Point{X: 40, Y: 80}
	rec = doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AddItemResponseDTO
	decodeData(t, rec, &resp)
	require.NotNil(t, resp.Animation)
	assert.Equal(t, domain.Point{X: 40, Y: 80}, resp.Animation.Start)
	assert.Equal(t, domain.Point{X: 320, Y: 640}, resp.Animation.End)
	assert.Equal(t, "/images/products/chicken-shawarma.jpg", resp.Animation.ImageURL)

	// The cart mutation must land even if the caller never polls animations.
	require.Len(t, resp.Cart.Items, 1)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	router := newTestRouter(t)

	for _, qty := range []int{0, -1, 100} {
		rec := doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, qty))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_quantity", decodeError(t, rec).Code)
	}
}

func TestAddItem_InvalidKind(t *testing.T) {
	router := newTestRouter(t)

	body := addItemBody(1, 25000, 1)
	body.Kind = "combo"
	rec := doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_kind", decodeError(t, rec).Code)
}

func TestAddItem_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", "not an object")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuantity_Success(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 5))
	rec := doJSON(t, router, http.MethodPut, "/customer/cart/items/1", "s1", UpdateQuantityRequestDTO{Kind: "product", Quantity: 2})
	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeData(t, rec, &view)
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, int64(50000), view.TotalPriceSYP)
}

func TestUpdateQuantity_BelowFloor(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 5))
	rec := doJSON(t, router, http.MethodPut, "/customer/cart/items/1", "s1", UpdateQuantityRequestDTO{Kind: "product", Quantity: 0})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_quantity", decodeError(t, rec).Code)
}

func TestUpdateQuantity_ItemNotInCart(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/customer/cart/items/9", "s1", UpdateQuantityRequestDTO{Kind: "product", Quantity: 2})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveItem_MatchesAdditions(t *testing.T) {
	router := newTestRouter(t)

	body := addItemBody(1, 25000, 1)
	body.Additions = []domain.Addition{{ID: 101, PriceSYP: 5000}, {ID: 102, PriceSYP: 3000}}
	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", body)
	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 1))

	rec := doJSON(t, router, http.MethodDelete, "/customer/cart/items/1?kind=product&additions=102,101", "s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeData(t, rec, &view)
	require.Len(t, view.Items, 1)
	assert.Empty(t, view.Items[0].Additions)
}

func TestRemoveItem_AbsentIsNoOp(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 1))
	rec := doJSON(t, router, http.MethodDelete, "/customer/cart/items/9", "s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeData(t, rec, &view)
	assert.Len(t, view.Items, 1)
}

func TestClearCart(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 2))
	rec := doJSON(t, router, http.MethodDelete, "/customer/cart/", "s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view CartViewDTO
	decodeData(t, rec, &view)
	assert.Empty(t, view.Items)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", addItemBody(1, 25000, 1))

	rec := doJSON(t, router, http.MethodGet, "/customer/cart/", "s2", nil)
	var view CartViewDTO
	decodeData(t, rec, &view)
	assert.Empty(t, view.Items)
}

func TestAnimations_ListedPerSession(t *testing.T) {
	router := newTestRouter(t)

	body := addItemBody(1, 25000, 1)
	body.Origin = &domain.Point{X: 1, Y: 2}
	doJSON(t, router, http.MethodPost, "/customer/cart/items", "s1", body)

	rec := doJSON(t, router, http.MethodGet, "/customer/cart/animations", "s1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var animations []domain.FlyingAnimation
	decodeData(t, rec, &animations)
	assert.Len(t, animations, 1)

	rec = doJSON(t, router, http.MethodGet, "/customer/cart/animations", "s2", nil)
	decodeData(t, rec, &animations)
	assert.Empty(t, animations)
}

func TestSessionMiddleware_MintsSessionWhenMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/customer/cart/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Session-ID"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, rec.Header().Get("X-Session-ID"), cookies[0].Value)
}
