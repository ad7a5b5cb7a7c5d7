package checkout

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadsobeh/menu-sub000/internal/coupon"
	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

type mockCart struct {
	m       sync.RWMutex
	items   map[string][]domain.LineItem
	cleared bool
}

func newMockCart(items ...domain.LineItem) *mockCart {
	return &mockCart{items: map[string][]domain.LineItem{"s1": items}}
}

func (m *mockCart) Items(sessionID string) []domain.LineItem {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.items[sessionID]
}

func (m *mockCart) TotalPrice(sessionID string) int64 {
	m.m.RLock()
	defer m.m.RUnlock()
	var total int64
	for _, item := range m.items[sessionID] {
		total += item.LineTotalSYP()
	}
	return total
}

func (m *mockCart) ItemCount(sessionID string) int {
	m.m.RLock()
	defer m.m.RUnlock()
	count := 0
	for _, item := range m.items[sessionID] {
		count += item.Quantity
	}
	return count
}

func (m *mockCart) ClearCart(sessionID string) {
	m.m.Lock()
	defer m.m.Unlock()
	delete(m.items, sessionID)
	m.cleared = true
}

func (m *mockCart) wasCleared() bool {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.cleared
}

type mockTables struct {
	tables []domain.Table
	err    error
}

func (m *mockTables) Tables(context.Context) ([]domain.Table, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.tables, nil
}

type mockPublisher struct {
	m      sync.Mutex
	orders []*domain.OrderRequest
	err    error
}

func (m *mockPublisher) OrderPlaced(_ context.Context, order *domain.OrderRequest) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockPublisher) Close() error { return nil }

func newSut(cart *mockCart) (*Service, *mockPublisher) {
	coupons := coupon.NewService(coupon.DefaultCoupons(), 0, nil)
	tables := &mockTables{tables: []domain.Table{
		{ID: 1, Number: "1", Seats: 2, Available: true},
		{ID: 2, Number: "2", Seats: 4, Available: false},
	}}
	publisher := &mockPublisher{}
	return NewService(cart, coupons, tables, publisher, 0, nil), publisher
}

func lineItem(id int64, priceSYP int64, qty int) domain.LineItem {
	return domain.LineItem{ID: id, Kind: domain.ItemKindProduct, PriceSYP: priceSYP, Quantity: qty}
}

func TestSummary_NoCoupon(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 40000, 2), lineItem(2, 20000, 1)))

	summary := sut.Summary("s1")
	assert.Equal(t, int64(100000), summary.SubtotalSYP)
	assert.Zero(t, summary.DiscountSYP)
	assert.Equal(t, int64(100000), summary.TotalSYP)
	assert.Equal(t, 3, summary.ItemCount)
}

func TestApplyCoupon_Percentage(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 100000, 1)))

	result, err := sut.ApplyCoupon(context.Background(), "s1", "WELCOME10")
	require.NoError(t, err)
	require.True(t, result.Valid)

	summary := sut.Summary("s1")
	assert.Equal(t, int64(100000), summary.SubtotalSYP)
	assert.Equal(t, int64(10000), summary.DiscountSYP)
	assert.Equal(t, int64(90000), summary.TotalSYP)
	assert.Equal(t, "WELCOME10", summary.CouponCode)
}

func TestApplyCoupon_Fixed(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 40000, 1)))

	result, err := sut.ApplyCoupon(context.Background(), "s1", "SAVE20")
	require.NoError(t, err)
	require.True(t, result.Valid)

	summary := sut.Summary("s1")
	assert.Equal(t, int64(20000), summary.DiscountSYP)
	assert.Equal(t, int64(20000), summary.TotalSYP)
}

func TestApplyCoupon_InvalidLeavesTotalsUnchanged(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 40000, 1)))

	result, err := sut.ApplyCoupon(context.Background(), "s1", "NOPE")
	require.NoError(t, err)
	assert.False(t, result.Valid)

	summary := sut.Summary("s1")
	assert.Zero(t, summary.DiscountSYP)
	assert.Equal(t, int64(40000), summary.TotalSYP)
	assert.Empty(t, summary.CouponCode)
}

func TestSummary_TotalNeverNegative(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 5000, 1)))

	result, err := sut.ApplyCoupon(context.Background(), "s1", "SAVE20")
	require.NoError(t, err)
	require.True(t, result.Valid)

	summary := sut.Summary("s1")
	assert.Equal(t, int64(0), summary.TotalSYP)
}

func TestRemoveCoupon_RestoresSubtotal(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 100000, 1)))

	_, err := sut.ApplyCoupon(context.Background(), "s1", "WELCOME10")
	require.NoError(t, err)

	sut.RemoveCoupon("s1")

	summary := sut.Summary("s1")
	assert.Zero(t, summary.DiscountSYP)
	assert.Equal(t, summary.SubtotalSYP, summary.TotalSYP)
}

func TestSummary_RecomputedAfterCartChange(t *testing.T) {
	cart := newMockCart(lineItem(1, 100000, 1))
	sut, _ := newSut(cart)

	_, err := sut.ApplyCoupon(context.Background(), "s1", "WELCOME10")
	require.NoError(t, err)

	// Cart mutates after the coupon was applied; the summary must follow.
	cart.m.Lock()
	cart.items["s1"] = []domain.LineItem{lineItem(1, 100000, 2)}
	cart.m.Unlock()

	summary := sut.Summary("s1")
	assert.Equal(t, int64(200000), summary.SubtotalSYP)
	assert.Equal(t, int64(20000), summary.DiscountSYP)
	assert.Equal(t, int64(180000), summary.TotalSYP)
}

func TestTableOptions_FiltersUnavailable(t *testing.T) {
	sut, _ := newSut(newMockCart())

	tables, err := sut.TableOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, int64(1), tables[0].ID)
}

func TestSelectTable_Success(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 10000, 1)))

	err := sut.SelectTable(context.Background(), "s1", 1)
	require.NoError(t, err)

	req, err := sut.PrepareOrderRequest("s1", domain.CustomerInfo{Name: "رامي"})
	require.NoError(t, err)
	require.NotNil(t, req.Table)
	assert.Equal(t, int64(1), req.Table.ID)
}

func TestSelectTable_NotFound(t *testing.T) {
	sut, _ := newSut(newMockCart())

	err := sut.SelectTable(context.Background(), "s1", 99)
	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestSelectTable_TablesError(t *testing.T) {
	coupons := coupon.NewService(coupon.DefaultCoupons(), 0, nil)
	tables := &mockTables{err: fmt.Errorf("backend error")}
	sut := NewService(newMockCart(), coupons, tables, &mockPublisher{}, 0, nil)

	err := sut.SelectTable(context.Background(), "s1", 1)
	require.ErrorContains(t, err, "backend error")
}

func TestPrepareOrderRequest_SnapshotsState(t *testing.T) {
	sut, _ := newSut(newMockCart(lineItem(1, 100000, 1)))

	_, err := sut.ApplyCoupon(context.Background(), "s1", "WELCOME10")
	require.NoError(t, err)

	req, err := sut.PrepareOrderRequest("s1", domain.CustomerInfo{Name: "رامي", Phone: "0999999999"})
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "s1", req.SessionID)
	assert.Len(t, req.Items, 1)
	assert.Equal(t, "WELCOME10", req.CouponCode)
	assert.Equal(t, int64(90000), req.Summary.TotalSYP)
	assert.WithinDuration(t, time.Now(), req.CapturedAt, time.Second)
}

func TestPrepareOrderRequest_EmptyCart(t *testing.T) {
	sut, _ := newSut(newMockCart())

	_, err := sut.PrepareOrderRequest("s1", domain.CustomerInfo{})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_PublishesAndResets(t *testing.T) {
	cart := newMockCart(lineItem(1, 50000, 2))
	sut, publisher := newSut(cart)

	confirmation, err := sut.PlaceOrder(context.Background(), "s1", domain.CustomerInfo{Name: "رامي"})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPlaced, confirmation.Status)
	assert.Equal(t, int64(100000), confirmation.TotalSYP)

	require.Len(t, publisher.orders, 1)
	assert.Equal(t, confirmation.OrderID, publisher.orders[0].ID)
	assert.True(t, cart.wasCleared())
}

func TestPlaceOrder_PublishErrorDoesNotFailOrder(t *testing.T) {
	cart := newMockCart(lineItem(1, 50000, 1))
	coupons := coupon.NewService(coupon.DefaultCoupons(), 0, nil)
	tables := &mockTables{}
	publisher := &mockPublisher{err: fmt.Errorf("broker down")}
	sut := NewService(cart, coupons, tables, publisher, 0, nil)

	confirmation, err := sut.PlaceOrder(context.Background(), "s1", domain.CustomerInfo{})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPlaced, confirmation.Status)
	assert.True(t, cart.wasCleared())
}

func TestPlaceOrder_ContextCancelledDuringDelay(t *testing.T) {
	cart := newMockCart(lineItem(1, 50000, 1))
	coupons := coupon.NewService(coupon.DefaultCoupons(), 0, nil)
	publisher := &mockPublisher{}
	sut := NewService(cart, coupons, &mockTables{}, publisher, 5*time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sut.PlaceOrder(ctx, "s1", domain.CustomerInfo{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, publisher.orders)
	assert.False(t, cart.wasCleared())
}

func TestReset_ClearsSessionAndCart(t *testing.T) {
	cart := newMockCart(lineItem(1, 100000, 1))
	sut, _ := newSut(cart)

	_, err := sut.ApplyCoupon(context.Background(), "s1", "WELCOME10")
	require.NoError(t, err)
	require.NoError(t, sut.SelectTable(context.Background(), "s1", 1))

	sut.Reset("s1")

	assert.True(t, cart.wasCleared())
	summary := sut.Summary("s1")
	assert.Zero(t, summary.DiscountSYP)
	assert.Empty(t, summary.CouponCode)
}
