package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

// Service fronts the menu repository with a cache. Reads go cache-first;
// misses fall through to the repository and fill the cache asynchronously.
type Service struct {
	repo   Repository
	cache  Cache
	sfg    singleflight.Group // Prevents cache stampede
	logger *zap.Logger
}

func NewService(repo Repository, cache Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// fetchCached resolves one cache key: cache hit wins, otherwise load from
// the repository and fill the cache in the background. Cache errors other
// than a miss are logged and ignored; the repository answer still stands.
func fetchCached[T any](ctx context.Context, s *Service, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		data, errGet := s.cache.Get(ctx, key)
		if errGet == nil {
			var cached T
			if errUnmarshal := json.Unmarshal(data, &cached); errUnmarshal == nil {
				return cached, nil
			}
			s.logger.Warn("failed to unmarshal cached entry", zap.String("key", key))
		} else if !errors.Is(errGet, ErrCacheMiss) {
			s.logger.Warn("cache get error", zap.String("key", key), zap.Error(errGet))
		}

		value, errLoad := load(ctx)
		if errLoad != nil {
			return zero, errLoad
		}

		// fill cache
		go func() {
			jsonValue, errMarshal := json.Marshal(value)
			if errMarshal != nil {
				s.logger.Warn("failed to marshal cache entry", zap.String("key", key), zap.Error(errMarshal))
				return
			}
			if errSet := s.cache.Set(context.Background(), key, jsonValue); errSet != nil {
				s.logger.Warn("cache set error", zap.String("key", key), zap.Error(errSet))
			}
		}()

		return value, nil
	})

	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func (s *Service) Home(ctx context.Context) (*domain.Home, error) {
	return fetchCached(ctx, s, "home", s.repo.Home)
}

func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return fetchCached(ctx, s, "products", s.repo.Products)
}

func (s *Service) ProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	key := fmt.Sprintf("products:category:%d", categoryID)
	return fetchCached(ctx, s, key, func(ctx context.Context) ([]domain.Product, error) {
		return s.repo.ProductsByCategory(ctx, categoryID)
	})
}

func (s *Service) FavoriteProducts(ctx context.Context) ([]domain.Product, error) {
	return fetchCached(ctx, s, "products:favorites", s.repo.FavoriteProducts)
}

// ProductByID is not cached: the detail sheet needs addition availability
// as fresh as the repository can give it.
func (s *Service) ProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.ProductByID(ctx, id)
}

func (s *Service) Offers(ctx context.Context) ([]domain.Offer, error) {
	return fetchCached(ctx, s, "offers", s.repo.Offers)
}

func (s *Service) RecommendedOffers(ctx context.Context) ([]domain.Offer, error) {
	return fetchCached(ctx, s, "offers:recommended", s.repo.RecommendedOffers)
}

func (s *Service) OfferByID(ctx context.Context, id int64) (*domain.Offer, error) {
	return s.repo.OfferByID(ctx, id)
}

func (s *Service) Tables(ctx context.Context) ([]domain.Table, error) {
	return fetchCached(ctx, s, "tables", s.repo.Tables)
}
