package catalog

import (
	"context"
	"errors"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOfferNotFound   = errors.New("offer not found")
)

type Repository interface {
	Home(ctx context.Context) (*domain.Home, error)
	Products(ctx context.Context) ([]domain.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	FavoriteProducts(ctx context.Context) ([]domain.Product, error)
	ProductByID(ctx context.Context, id int64) (*domain.Product, error)
	Offers(ctx context.Context) ([]domain.Offer, error)
	RecommendedOffers(ctx context.Context) ([]domain.Offer, error)
	OfferByID(ctx context.Context, id int64) (*domain.Offer, error)
	Tables(ctx context.Context) ([]domain.Table, error)
}
