package catalog

import (
	"context"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

// memoryRepository serves the seeded menu from memory. The backing data is
// read-only after construction, so reads take no lock.
type memoryRepository struct {
	seed *Seed
}

func NewMemoryRepository(seed *Seed) Repository {
	return &memoryRepository{seed: seed}
}

func (m *memoryRepository) Home(_ context.Context) (*domain.Home, error) {
	favorites := make([]domain.Product, 0)
	for _, p := range m.seed.Products {
		if p.Favorite {
			favorites = append(favorites, p)
		}
	}
	return &domain.Home{
		Banners:    m.seed.Banners,
		Categories: m.seed.Categories,
		Offers:     m.seed.Offers,
		Favorites:  favorites,
	}, nil
}

func (m *memoryRepository) Products(_ context.Context) ([]domain.Product, error) {
	return m.seed.Products, nil
}

func (m *memoryRepository) ProductsByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	result := make([]domain.Product, 0)
	for _, p := range m.seed.Products {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *memoryRepository) FavoriteProducts(_ context.Context) ([]domain.Product, error) {
	result := make([]domain.Product, 0)
	for _, p := range m.seed.Products {
		if p.Favorite {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *memoryRepository) ProductByID(_ context.Context, id int64) (*domain.Product, error) {
	for i := range m.seed.Products {
		if m.seed.Products[i].ID == id {
			return &m.seed.Products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *memoryRepository) Offers(_ context.Context) ([]domain.Offer, error) {
	return m.seed.Offers, nil
}

func (m *memoryRepository) RecommendedOffers(_ context.Context) ([]domain.Offer, error) {
	result := make([]domain.Offer, 0)
	for _, o := range m.seed.Offers {
		if o.Recommended {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *memoryRepository) OfferByID(_ context.Context, id int64) (*domain.Offer, error) {
	for i := range m.seed.Offers {
		if m.seed.Offers[i].ID == id {
			return &m.seed.Offers[i], nil
		}
	}
	return nil, ErrOfferNotFound
}

func (m *memoryRepository) Tables(_ context.Context) ([]domain.Table, error) {
	return m.seed.Tables, nil
}
