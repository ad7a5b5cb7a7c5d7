package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

const (
	// AnimationTTL is how long a flying-animation entry lives before
	// self-removing, regardless of anything else that happened.
	AnimationTTL = 800 * time.Millisecond

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 200 * time.Millisecond
)

var ErrItemNotFound = errors.New("item not found in cart")

// Store holds all in-memory session carts plus their transient
// flying-animation entries and cart anchor positions. State lives only for
// the lifetime of the process; there is no persistence.
type Store struct {
	mu         sync.RWMutex
	carts      map[string][]domain.LineItem        // sessionID -> line items
	anchors    map[string]domain.Point             // sessionID -> cart button position
	animations map[string]*domain.FlyingAnimation  // animationID -> animation

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// NewStore creates the cart store and starts the animation cleanup loop.
func NewStore() *Store {
	s := &Store{
		carts:       make(map[string][]domain.LineItem),
		anchors:     make(map[string]domain.Point),
		animations:  make(map[string]*domain.FlyingAnimation),
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

func (s *Store) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireAnimations()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) expireAnimations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, anim := range s.animations {
		if anim.IsExpired() {
			delete(s.animations, id)
		}
	}
}

// AddItem merges the incoming item into the session cart. An item with the
// same identity key (id + sorted addition ids) increments the existing
// quantity; otherwise a new line item is appended. Quantity has no cap.
func (s *Store) AddItem(sessionID string, item domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key()
	items := s.carts[sessionID]
	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity += item.Quantity
			return
		}
	}
	s.carts[sessionID] = append(items, item)
}

// RemoveItem removes the line item matching the identity key.
// Removing an absent item is a no-op, not an error.
func (s *Store) RemoveItem(sessionID string, item domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key()
	items := s.carts[sessionID]
	for i := range items {
		if items[i].Key() == key {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the absolute quantity on the matching line item.
// The value is written verbatim; the HTTP layer is responsible for the
// minimum of 1.
func (s *Store) UpdateQuantity(sessionID string, item domain.LineItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key()
	items := s.carts[sessionID]
	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

// ClearCart drops the session's line items and its cart anchor. The next
// render reports a fresh anchor before any animation needs it.
func (s *Store) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	delete(s.anchors, sessionID)
}

// Items returns a detached copy of the session's line items, additions
// included. Callers hold it as a snapshot; mutating it never touches the cart.
func (s *Store) Items(sessionID string) []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.LineItem, len(s.carts[sessionID]))
	for i, item := range s.carts[sessionID] {
		if len(item.Additions) > 0 {
			item.Additions = append([]domain.Addition(nil), item.Additions...)
		}
		items[i] = item
	}
	return items
}

// TotalPrice sums (unit price + additions) x quantity over all line items.
func (s *Store) TotalPrice(sessionID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.carts[sessionID] {
		total += item.LineTotalSYP()
	}
	return total
}

// ItemCount sums quantities across all line items.
func (s *Store) ItemCount(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.carts[sessionID] {
		count += item.Quantity
	}
	return count
}

// Close stops the background cleanup and waits for it to finish
func (s *Store) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}
