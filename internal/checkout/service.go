package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mohamadsobeh/menu-sub000/internal/coupon"
	"github.com/mohamadsobeh/menu-sub000/internal/domain"
	"github.com/mohamadsobeh/menu-sub000/internal/events"
)

var (
	ErrEmptyCart     = errors.New("cart is empty, nothing to checkout")
	ErrTableNotFound = errors.New("table not found")
)

// CartStore is the slice of the cart the checkout flow reads. Checkout never
// mutates line-item identity; clearing after order placement goes through
// the same store that owns the items.
type CartStore interface {
	Items(sessionID string) []domain.LineItem
	TotalPrice(sessionID string) int64
	ItemCount(sessionID string) int
	ClearCart(sessionID string)
}

type CouponValidator interface {
	Validate(ctx context.Context, code string, subtotalSYP int64) (coupon.Result, error)
}

type TableSource interface {
	Tables(ctx context.Context) ([]domain.Table, error)
}

// Service owns checkout sessions: table selection, coupon application and
// order placement. The order summary is always derived from current cart and
// coupon state on read; there is no cached summary to go stale.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*session

	cart       CartStore
	coupons    CouponValidator
	tables     TableSource
	publisher  events.Publisher
	orderDelay time.Duration
	logger     *zap.Logger
}

type session struct {
	mu     sync.Mutex
	table  *domain.Table
	coupon *domain.Coupon
}

func NewService(cart CartStore, coupons CouponValidator, tables TableSource, publisher events.Publisher, orderDelay time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		sessions:   make(map[string]*session),
		cart:       cart,
		coupons:    coupons,
		tables:     tables,
		publisher:  publisher,
		orderDelay: orderDelay,
		logger:     logger,
	}
}

func (s *Service) session(sessionID string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}
	return sess
}

// TableOptions lists tables currently open for selection.
func (s *Service) TableOptions(ctx context.Context) ([]domain.Table, error) {
	tables, err := s.tables.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	available := make([]domain.Table, 0, len(tables))
	for _, t := range tables {
		if t.Available {
			available = append(available, t)
		}
	}
	return available, nil
}

// SelectTable records the chosen table. Availability beyond the option-list
// filter is not re-checked.
func (s *Service) SelectTable(ctx context.Context, sessionID string, tableID int64) error {
	tables, err := s.tables.Tables(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tables: %w", err)
	}
	for i := range tables {
		if tables[i].ID == tableID {
			sess := s.session(sessionID)
			sess.mu.Lock()
			sess.table = &tables[i]
			sess.mu.Unlock()
			return nil
		}
	}
	return ErrTableNotFound
}

// ApplyCoupon validates the code against the current subtotal and, when
// valid, stores the coupon on the session. Calls for the same session are
// serialized; the last successful validation wins.
func (s *Service) ApplyCoupon(ctx context.Context, sessionID, code string) (coupon.Result, error) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	subtotal := s.cart.TotalPrice(sessionID)
	result, err := s.coupons.Validate(ctx, code, subtotal)
	if err != nil {
		return coupon.Result{}, err
	}
	if result.Valid {
		sess.coupon = result.Coupon
	}
	return result, nil
}

// RemoveCoupon clears the applied coupon; the next summary read recomputes
// the total from the bare subtotal.
func (s *Service) RemoveCoupon(sessionID string) {
	sess := s.session(sessionID)
	sess.mu.Lock()
	sess.coupon = nil
	sess.mu.Unlock()
}

// Summary derives subtotal, discount and total from the cart and the applied
// coupon. Total never goes below zero.
func (s *Service) Summary(sessionID string) domain.OrderSummary {
	sess := s.session(sessionID)
	sess.mu.Lock()
	applied := sess.coupon
	sess.mu.Unlock()

	subtotal := s.cart.TotalPrice(sessionID)
	summary := domain.OrderSummary{
		SubtotalSYP: subtotal,
		TotalSYP:    subtotal,
		ItemCount:   s.cart.ItemCount(sessionID),
	}
	if applied != nil {
		summary.CouponCode = applied.Code
		summary.DiscountSYP = applied.Discount(subtotal)
		summary.TotalSYP = subtotal - summary.DiscountSYP
		if summary.TotalSYP < 0 {
			summary.TotalSYP = 0
		}
	}
	return summary
}

// PrepareOrderRequest snapshots cart items, table, coupon code, customer
// fields and computed totals into an immutable request object.
func (s *Service) PrepareOrderRequest(sessionID string, customer domain.CustomerInfo) (*domain.OrderRequest, error) {
	items := s.cart.Items(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	sess := s.session(sessionID)
	sess.mu.Lock()
	table := sess.table
	applied := sess.coupon
	sess.mu.Unlock()

	req := &domain.OrderRequest{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		Items:      items,
		Table:      table,
		Customer:   customer,
		Summary:    s.Summary(sessionID),
		CapturedAt: time.Now(),
	}
	if applied != nil {
		req.CouponCode = applied.Code
	}
	return req, nil
}

// PlaceOrder submits the snapshot to the simulated order backend, publishes
// the order-placed event and resets the checkout session. The simulated
// delay respects ctx, so an abandoned request cannot complete later.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, customer domain.CustomerInfo) (*domain.OrderConfirmation, error) {
	req, err := s.PrepareOrderRequest(sessionID, customer)
	if err != nil {
		return nil, err
	}

	if s.orderDelay > 0 {
		timer := time.NewTimer(s.orderDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if errPublish := s.publisher.OrderPlaced(ctx, req); errPublish != nil {
		s.logger.Error("failed to publish order", zap.String("order_id", req.ID), zap.Error(errPublish))
	}

	s.Reset(sessionID)

	return &domain.OrderConfirmation{
		OrderID:  req.ID,
		Status:   domain.OrderStatusPlaced,
		TotalSYP: req.Summary.TotalSYP,
		PlacedAt: time.Now(),
	}, nil
}

// Reset clears table, coupon and cart state for the session. Used on
// checkout open/cancel and after order placement.
func (s *Service) Reset(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	s.cart.ClearCart(sessionID)
}
