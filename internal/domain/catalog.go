package domain

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

// Home is the composed feed shown on the landing screen.
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
