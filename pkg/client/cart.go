package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// CartView mirrors the cart representation the API returns.
type CartView struct {
	Items             []LineItem `json:"items"`
	ItemCount         int        `json:"item_count"`
	TotalPriceSYP     int64      `json:"total_price_syp"`
	TotalPriceDisplay string     `json:"total_price_display"`
}

type AddItemRequest struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Kind          ItemKind   `json:"kind"`
	PriceSYP      int64      `json:"price_syp"`
	PriceUSDCents int64      `json:"price_usd_cents"`
	ImageURL      string     `json:"image_url"`
	Quantity      int        `json:"quantity"`
	Additions     []Addition `json:"additions,omitempty"`
	Origin        *Point     `json:"origin,omitempty"`
}

type AddItemResult struct {
	Cart      CartView         `json:"cart"`
	Animation *FlyingAnimation `json:"animation,omitempty"`
}

func (c *Client) GetCart(ctx context.Context) (*CartView, error) {
	var view CartView
	if err := c.do(ctx, http.MethodGet, "/customer/cart", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) AddCartItem(ctx context.Context, req AddItemRequest) (*AddItemResult, error) {
	var result AddItemResult
	if err := c.do(ctx, http.MethodPost, "/customer/cart/items", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateCartQuantity(ctx context.Context, itemID int64, kind ItemKind, additionIDs []int64, quantity int) (*CartView, error) {
	body := map[string]interface{}{
		"kind":         kind,
		"quantity":     quantity,
		"addition_ids": additionIDs,
	}
	var view CartView
	path := "/customer/cart/items/" + strconv.FormatInt(itemID, 10)
	if err := c.do(ctx, http.MethodPut, path, body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID int64, kind ItemKind, additionIDs []int64) (*CartView, error) {
	q := url.Values{}
	q.Set("kind", string(kind))
	if len(additionIDs) > 0 {
		ids := make([]string, len(additionIDs))
		for i, id := range additionIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		q.Set("additions", strings.Join(ids, ","))
	}

	var view CartView
	path := "/customer/cart/items/" + strconv.FormatInt(itemID, 10) + "?" + q.Encode()
	if err := c.do(ctx, http.MethodDelete, path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *Client) ClearCart(ctx context.Context) (*CartView, error) {
	var view CartView
	if err := c.do(ctx, http.MethodDelete, "/customer/cart", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// SetCartAnchor reports the cart button's current screen position so
// flying animations know where to land.
func (c *Client) SetCartAnchor(ctx context.Context, p Point) error {
	return c.do(ctx, http.MethodPost, "/customer/cart/anchor", p, nil)
}

func (c *Client) Animations(ctx context.Context) ([]FlyingAnimation, error) {
	var animations []FlyingAnimation
	err := c.do(ctx, http.MethodGet, "/customer/cart/animations", nil, &animations)
	return animations, err
}
