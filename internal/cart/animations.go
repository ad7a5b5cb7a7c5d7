package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

// SetAnchor records the cart button's screen position for the session.
// Animations created afterwards fly towards this point. The anchor is
// explicit per-session state, not a shared global.
func (s *Store) SetAnchor(sessionID string, p domain.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anchors[sessionID] = p
}

// Anchor returns the last reported cart button position for the session.
// The zero point is returned when the session never reported one.
func (s *Store) Anchor(sessionID string) domain.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.anchors[sessionID]
}

// AddAnimation registers a flying-animation entry starting at the given
// coordinates and ending at the session's cart anchor. The entry expires
// after AnimationTTL via the cleanup loop; callers never have to remove it.
//
// The cart mutation an animation accompanies must already be committed when
// this is called, so the visual and the state can never diverge.
func (s *Store) AddAnimation(sessionID, imageURL string, start domain.Point) *domain.FlyingAnimation {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	anim := &domain.FlyingAnimation{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		ImageURL:  imageURL,
		Start:     start,
		End:       s.anchors[sessionID],
		CreatedAt: now,
		ExpiresAt: now.Add(AnimationTTL),
	}
	s.animations[anim.ID] = anim
	return anim
}

// RemoveAnimation drops an animation entry early. Unknown ids are a no-op.
func (s *Store) RemoveAnimation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.animations, id)
}

// Animations returns the session's live animation entries.
func (s *Store) Animations(sessionID string) []domain.FlyingAnimation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.FlyingAnimation, 0)
	for _, anim := range s.animations {
		if anim.SessionID == sessionID {
			result = append(result, *anim)
		}
	}
	return result
}
