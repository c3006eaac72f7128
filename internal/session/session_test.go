package session

import (
	"testing"
	"time"

	"preloved-backend/internal/domain"
	infracache "preloved-backend/internal/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(infracache.NewMemoryCache(time.Minute, time.Minute), time.Minute)
}

func TestManagerReturnsSameState(t *testing.T) {
	m := newTestManager()

	a := m.Get("session-a")
	a.ToggleFavorite("1")

	again := m.Get("session-a")
	assert.True(t, again.IsFavorite("1"))
}

func TestManagerIsolatesSessions(t *testing.T) {
	m := newTestManager()

	m.Get("alice").AddLine(domain.Listing{ID: "1", Price: 100}, 1)

	assert.Empty(t, m.Get("bob").Lines())
	assert.Len(t, m.Get("alice").Lines(), 1)
}

func TestManagerNewIDUnique(t *testing.T) {
	m := newTestManager()
	assert.NotEqual(t, m.NewID(), m.NewID())
}

func TestStateCartOperations(t *testing.T) {
	s := newState()

	first := s.AddLine(domain.Listing{ID: "a", Price: 100}, 1)
	merged := s.AddLine(domain.Listing{ID: "a", Price: 100}, 2)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)

	s.AddLine(domain.Listing{ID: "b", Price: 200}, 1)
	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].ListingID)
	assert.Equal(t, "b", lines[1].ListingID)

	s.SetQuantity(lines[0].ID, 0)
	lines = s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "b", lines[0].ListingID)

	// Unknown IDs are no-ops
	s.SetQuantity("nope", 5)
	s.RemoveLine("nope")
	assert.Len(t, s.Lines(), 1)
}

func TestStateLinesReturnsCopy(t *testing.T) {
	s := newState()
	s.AddLine(domain.Listing{ID: "a", Price: 100}, 1)

	lines := s.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, s.Lines()[0].Quantity)
}

func TestStateFilter(t *testing.T) {
	s := newState()

	min := domain.Money(1000)
	s.SetFilter(domain.ListingFilter{Query: "lamp", Category: domain.CategoryHome, MinPrice: &min})
	f := s.Filter()
	assert.Equal(t, "lamp", f.Query)
	require.NotNil(t, f.MinPrice)

	s.ClearFilter()
	assert.True(t, s.Filter().IsZero())
}
