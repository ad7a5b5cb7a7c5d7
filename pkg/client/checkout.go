package client

import (
	"context"
	"net/http"
)

func (c *Client) Tables(ctx context.Context) ([]Table, error) {
	var tables []Table
	err := c.do(ctx, http.MethodGet, "/customer/checkout/tables", nil, &tables)
	return tables, err
}

func (c *Client) SelectTable(ctx context.Context, tableID int64) (*OrderSummary, error) {
	var summary OrderSummary
	body := map[string]int64{"table_id": tableID}
	if err := c.do(ctx, http.MethodPost, "/customer/checkout/table", body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) ApplyCoupon(ctx context.Context, code string) (*CouponResult, error) {
	var result CouponResult
	body := map[string]string{"code": code}
	if err := c.do(ctx, http.MethodPost, "/customer/checkout/coupon", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) RemoveCoupon(ctx context.Context) (*OrderSummary, error) {
	var summary OrderSummary
	if err := c.do(ctx, http.MethodDelete, "/customer/checkout/coupon", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) Summary(ctx context.Context) (*OrderSummary, error) {
	var summary OrderSummary
	if err := c.do(ctx, http.MethodGet, "/customer/checkout/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) PlaceOrder(ctx context.Context, customer CustomerInfo) (*OrderConfirmation, error) {
	var confirmation OrderConfirmation
	body := map[string]interface{}{"customer": customer}
	if err := c.do(ctx, http.MethodPost, "/customer/checkout/order", body, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (c *Client) ResetCheckout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/customer/checkout", nil, nil)
}
