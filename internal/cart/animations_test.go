package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamadsobeh/menu-sub000/internal/domain"
)

func TestAddAnimation_EndsAtSessionAnchor(t *testing.T) {
	sut := newTestStore(t)

	sut.SetAnchor("s1", domain.Point{X: 320, Y: 640})
	anim := sut.AddAnimation("s1", "/images/products/hummus.jpg", domain.Point{X: 10, Y: 20})

	require.NotNil(t, anim)
	assert.NotEmpty(t, anim.ID)
	assert.Equal(t, domain.Point{X: 10, Y: 20}, anim.Start)
	assert.Equal(t, domain.Point{X: 320, Y: 640}, anim.End)

	animations := sut.Animations("s1")
	require.Len(t, animations, 1)
	assert.Equal(t, anim.ID, animations[0].ID)
}

func TestAddAnimation_NoAnchorFallsBackToZeroPoint(t *testing.T) {
	sut := newTestStore(t)

	anim := sut.AddAnimation("s1", "", domain.Point{X: 5, Y: 5})
	assert.Equal(t, domain.Point{}, anim.End)
}

func TestAnimations_ScopedToSession(t *testing.T) {
	sut := newTestStore(t)

	sut.AddAnimation("s1", "", domain.Point{})
	sut.AddAnimation("s2", "", domain.Point{})

	assert.Len(t, sut.Animations("s1"), 1)
	assert.Len(t, sut.Animations("s2"), 1)
}

func TestRemoveAnimation_DropsEntryEarly(t *testing.T) {
	sut := newTestStore(t)

	anim := sut.AddAnimation("s1", "", domain.Point{})
	sut.RemoveAnimation(anim.ID)

	assert.Empty(t, sut.Animations("s1"))
}

func TestClearCart_DropsAnchor(t *testing.T) {
	sut := newTestStore(t)

	sut.SetAnchor("s1", domain.Point{X: 320, Y: 640})
	sut.ClearCart("s1")

	assert.Equal(t, domain.Point{}, sut.Anchor("s1"))
	anim := sut.AddAnimation("s1", "", domain.Point{X: 5, Y: 5})
	assert.Equal(t, domain.Point{}, anim.End)
}

func TestAnimations_ExpireViaCleanupLoop(t *testing.T) {
	sut := newTestStore(t)

	sut.AddAnimation("s1", "", domain.Point{})
	require.Len(t, sut.Animations("s1"), 1)

	// TTL is 800ms and the cleanup ticks every 200ms.
	require.Eventually(t, func() bool {
		return len(sut.Animations("s1")) == 0
	}, 2*time.Second, 50*time.Millisecond, "animation was not expired")
}
