package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

// Seed is the menu data the repository serves.
type Seed struct {
	Categories []domain.Category `json:"categories"`
	Products   []domain.Product  `json:"products"`
	Offers     []domain.Offer    `json:"offers"`
	Banners    []domain.Banner   `json:"banners"`
	Tables     []domain.Table    `json:"tables"`
}

// LoadSeed reads menu data from a JSON file.
func LoadSeed(path string) (*Seed, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer file.Close()

	var seed Seed
	if err := json.NewDecoder(file).Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	return &seed, nil
}

// DefaultSeed returns the built-in menu used when no menu file is configured.
func DefaultSeed() *Seed {
	return &Seed{
		Categories: []domain.Category{
			{ID: 1, Name: "شاورما", ImageURL: "/images/categories/shawarma.jpg"},
			{ID: 2, Name: "مقبلات", ImageURL: "/images/categories/appetizers.jpg"},
			{ID: 3, Name: "مشروبات", ImageURL: "/images/categories/drinks.jpg"},
			{ID: 4, Name: "حلويات", ImageURL: "/images/categories/desserts.jpg"},
		},
		Products: []domain.Product{
			{
				ID: 1, Name: "شاورما دجاج", Description: "شاورما دجاج مع ثوم ومخلل",
				PriceSYP: 25000, PriceUSDCents: 250, ImageURL: "/images/products/chicken-shawarma.jpg",
				CategoryID: 1, Favorite: true, Available: true,
				Additions: []domain.Addition{
					{ID: 101, Name: "جبنة إضافية", PriceSYP: 5000, Available: true},
					{ID: 102, Name: "بطاطا داخل السندويشة", PriceSYP: 3000, Available: true},
				},
			},
			{
				ID: 2, Name: "شاورما لحمة", Description: "شاورما لحمة مع طحينة وبقدونس",
				PriceSYP: 35000, PriceUSDCents: 350, ImageURL: "/images/products/meat-shawarma.jpg",
				CategoryID: 1, Available: true,
				Additions: []domain.Addition{
					{ID: 101, Name: "جبنة إضافية", PriceSYP: 5000, Available: true},
				},
			},
			{
				ID: 3, Name: "حمص", Description: "صحن حمص مع زيت زيتون",
				PriceSYP: 12000, PriceUSDCents: 120, ImageURL: "/images/products/hummus.jpg",
				CategoryID: 2, Favorite: true, Available: true,
			},
			{
				ID: 4, Name: "متبل باذنجان", Description: "متبل باذنجان مشوي",
				PriceSYP: 13000, PriceUSDCents: 130, ImageURL: "/images/products/mutabbal.jpg",
				CategoryID: 2, Available: true,
			},
			{
				ID: 5, Name: "عصير ليمون بالنعناع", Description: "عصير طازج",
				PriceSYP: 8000, PriceUSDCents: 80, ImageURL: "/images/products/lemonade.jpg",
				CategoryID: 3, Available: true,
			},
			{
				ID: 6, Name: "كنافة نابلسية", Description: "كنافة بالجبنة مع قطر",
				PriceSYP: 20000, PriceUSDCents: 200, ImageURL: "/images/products/knafeh.jpg",
				CategoryID: 4, Favorite: true, Available: true,
			},
		},
		Offers: []domain.Offer{
			{
				ID: 1, Name: "وجبة عائلية", Description: "٤ سندويشات شاورما مع بطاطا ومشروبات",
				PriceSYP: 110000, PriceUSDCents: 1100, ImageURL: "/images/offers/family-meal.jpg",
				Recommended: true,
				Additions: []domain.Addition{
					{ID: 201, Name: "صحن سلطة", PriceSYP: 7000, Available: true},
				},
			},
			{
				ID: 2, Name: "عرض الغداء", Description: "سندويشة شاورما مع بطاطا ومشروب",
				PriceSYP: 35000, PriceUSDCents: 350, ImageURL: "/images/offers/lunch-deal.jpg",
			},
		},
		Banners: []domain.Banner{
			{ID: 1, ImageURL: "/images/banners/ramadan.jpg", Link: "/customer/offers"},
			{ID: 2, ImageURL: "/images/banners/new-branch.jpg"},
		},
		Tables: []domain.Table{
			{ID: 1, Number: "1", Seats: 2, Available: true},
			{ID: 2, Number: "2", Seats: 4, Available: true},
			{ID: 3, Number: "3", Seats: 4, Available: false},
			{ID: 4, Number: "4", Seats: 6, Available: true},
		},
	}
}
