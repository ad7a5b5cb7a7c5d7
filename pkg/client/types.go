package client

import "time"

// Wire types for the customer API. The client defines its own copies of the
// server's JSON shapes so importers of this package can construct requests
// and name response types.

type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindOffer   ItemKind = "offer"
)

// Point is a screen coordinate in the caller's viewport.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Addition struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PriceSYP  int64  `json:"price_syp"`
	Available bool   `json:"available"`
}

type LineItem struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Kind          ItemKind   `json:"kind"`
	PriceSYP      int64      `json:"price_syp"`
	PriceUSDCents int64      `json:"price_usd_cents"`
	ImageURL      string     `json:"image_url"`
	Quantity      int        `json:"quantity"`
	Additions     []Addition `json:"additions,omitempty"`
}

type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

type Product struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	PriceSYP      int64      `json:"price_syp"`
	PriceUSDCents int64      `json:"price_usd_cents"`
	ImageURL      string     `json:"image_url"`
	CategoryID    int64      `json:"category_id"`
	Favorite      bool       `json:"favorite"`
	Available     bool       `json:"available"`
	Additions     []Addition `json:"additions,omitempty"`
}

type Offer struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	PriceSYP      int64      `json:"price_syp"`
	PriceUSDCents int64      `json:"price_usd_cents"`
	ImageURL      string     `json:"image_url"`
	Recommended   bool       `json:"recommended"`
	Additions     []Addition `json:"additions,omitempty"`
}

type Banner struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link,omitempty"`
}

type Home struct {
	Banners    []Banner   `json:"banners"`
	Categories []Category `json:"categories"`
	Offers     []Offer    `json:"offers"`
	Favorites  []Product  `json:"favorites"`
}

type Table struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Seats     int    `json:"seats"`
	Available bool   `json:"available"`
}

type FlyingAnimation struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Start     Point     `json:"start"`
	End       Point     `json:"end"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Coupon struct {
	ID             int64  `json:"id"`
	Code           string `json:"code"`
	DiscountType   string `json:"discount_type"`
	Value          int64  `json:"value"`
	MinOrderSYP    int64  `json:"min_order_syp,omitempty"`
	MaxDiscountSYP int64  `json:"max_discount_syp,omitempty"`
	Active         bool   `json:"active"`
}

// CouponResult is the outcome of a coupon validation attempt. An unknown or
// inapplicable code comes back as Valid=false with a user-facing Message,
// not as an error.
type CouponResult struct {
	Valid       bool    `json:"valid"`
	Coupon      *Coupon `json:"coupon,omitempty"`
	DiscountSYP int64   `json:"discount_syp"`
	Message     string  `json:"message"`
}

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

type OrderStatus string

const OrderStatusPlaced OrderStatus = "PLACED"

type OrderConfirmation struct {
	OrderID  string      `json:"order_id"`
	Status   OrderStatus `json:"status"`
	TotalSYP int64       `json:"total_syp"`
	PlacedAt time.Time   `json:"placed_at"`
}
