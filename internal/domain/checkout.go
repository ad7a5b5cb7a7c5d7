package domain

import "time"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Coupon applies a percentage or fixed discount to the order subtotal.
// At most one coupon is applied to a checkout session at a time.
type Coupon struct {
	ID             int64        `json:"id"`
	Code           string       `json:"code"`
	DiscountType   DiscountType `json:"discount_type"`
	Value          int64        `json:"value"`
	MinOrderSYP    int64        `json:"min_order_syp,omitempty"`
	MaxDiscountSYP int64        `json:"max_discount_syp,omitempty"`
	Active         bool         `json:"active"`
}

// Discount computes the coupon's discount against the given subtotal.
// Percentage discounts are capped at MaxDiscountSYP when one is set.
func (c Coupon) Discount(subtotalSYP int64) int64 {
	switch c.DiscountType {
	case DiscountTypePercentage:
		d := subtotalSYP * c.Value / 100
		if c.MaxDiscountSYP > 0 && d > c.MaxDiscountSYP {
			d = c.MaxDiscountSYP
		}
		return d
	case DiscountTypeFixed:
		return c.Value
	}
	return 0
}

// OrderSummary is derived from cart contents and the applied coupon.
// It is never stored, only computed.
type OrderSummary struct {
	SubtotalSYP int64  `json:"subtotal_syp"`
	DiscountSYP int64  `json:"discount_syp"`
	TotalSYP    int64  `json:"total_syp"`
	CouponCode  string `json:"coupon_code,omitempty"`
	ItemCount   int    `json:"item_count"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Note  string `json:"note,omitempty"`
}

// OrderRequest is an immutable snapshot of the checkout state at the moment
// the order is assembled for submission.
type OrderRequest struct {
	ID         string       `json:"id"`
	SessionID  string       `json:"session_id"`
	Items      []LineItem   `json:"items"`
	Table      *Table       `json:"table,omitempty"`
	CouponCode string       `json:"coupon_code,omitempty"`
	Customer   CustomerInfo `json:"customer"`
	Summary    OrderSummary `json:"summary"`
	CapturedAt time.Time    `json:"captured_at"`
}

type OrderStatus string

const OrderStatusPlaced OrderStatus = "PLACED"

type OrderConfirmation struct {
	OrderID  string      `json:"order_id"`
	Status   OrderStatus `json:"status"`
	TotalSYP int64       `json:"total_syp"`
	PlacedAt time.Time   `json:"placed_at"`
}
