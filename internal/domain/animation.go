package domain

import "time"

// Point is a screen coordinate reported by the client.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FlyingAnimation is a transient, purely cosmetic entry describing an item
// flying from its card to the cart button. It carries no cart state: the
// cart mutation it accompanies is committed before the entry is created.
type FlyingAnimation struct {
	ID        string    `json:"id"`
	SessionID string    `json:"-"`
	ImageURL  string    `json:"image_url"`
	Start     Point     `json:"start"`
	End       Point     `json:"end"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a FlyingAnimation) IsExpired() bool {
	return time.Now().After(a.ExpiresAt)
}
