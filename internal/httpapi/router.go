package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mohamadsobeh/menu-sub000/internal/cart"
	"github.com/mohamadsobeh/menu-sub000/internal/catalog"
	"github.com/mohamadsobeh/menu-sub000/internal/checkout"
)

// NewRouter builds the customer-facing HTTP router.
func NewRouter(catalogService *catalog.Service, cartStore *cart.Store, checkoutService *checkout.Service, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware)

	catalogHandler := NewCatalogHandler(catalogService)
	cartHandler := NewCartHandler(cartStore)
	checkoutHandler := NewCheckoutHandler(checkoutService)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/customer", func(r chi.Router) {
		r.Get("/home", catalogHandler.Home)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.Products)
			r.Get("/favorites", catalogHandler.FavoriteProducts)
			r.Get("/category/{id}", catalogHandler.ProductsByCategory)
			r.Get("/{id}", catalogHandler.ProductByID)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", catalogHandler.Offers)
			r.Get("/recommended", catalogHandler.RecommendedOffers)
			r.Get("/{id}", catalogHandler.OfferByID)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
			r.Post("/anchor", cartHandler.SetAnchor)
			r.Get("/animations", cartHandler.Animations)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Delete("/", checkoutHandler.Reset)
			r.Get("/tables", checkoutHandler.TableOptions)
			r.Post("/table", checkoutHandler.SelectTable)
			r.Post("/coupon", checkoutHandler.ApplyCoupon)
			r.Delete("/coupon", checkoutHandler.RemoveCoupon)
			r.Get("/summary", checkoutHandler.Summary)
			r.Post("/order", checkoutHandler.PlaceOrder)
		})
	})

	return r
}
