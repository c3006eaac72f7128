package session

import (
	"sync"
	"time"

	"preloved-backend/internal/domain"
	"preloved-backend/pkg/cache"

	"github.com/google/uuid"
)

// State bundles the mutable browsing state of one session: the cart lines,
// the favorite set and the current filter criteria. Each session owns its
// State exclusively; the mutex only serializes requests of the same session.
type State struct {
	mu        sync.Mutex
	lines     []domain.CartLine
	favorites domain.FavoriteSet
	filter    domain.ListingFilter
}

func newState() *State {
	return &State{favorites: domain.NewFavoriteSet()}
}

// --- Cart store ---

// AddLine merges quantity into an existing line for the same listing, or
// appends a new line with a snapshot of the listing.
func (s *State) AddLine(listing domain.Listing, quantity int) domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ListingID == listing.ID {
			s.lines[i].Quantity += quantity
			return s.lines[i]
		}
	}

	line := domain.CartLine{
		ID:        uuid.New().String(),
		ListingID: listing.ID,
		Listing:   listing,
		Quantity:  quantity,
		AddedAt:   time.Now(),
	}
	s.lines = append(s.lines, line)
	return line
}

// SetQuantity overwrites a line's quantity. A quantity of zero or below
// removes the line. Unknown line IDs are a no-op.
func (s *State) SetQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		s.RemoveLine(lineID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveLine deletes a line, preserving the order of the rest.
// Removing an unknown line is a no-op.
func (s *State) RemoveLine(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Lines returns the cart lines in insertion order (earliest added first).
func (s *State) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// --- Favorites store ---

func (s *State) ToggleFavorite(listingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Toggle(listingID)
}

func (s *State) IsFavorite(listingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.Contains(listingID)
}

func (s *State) FavoriteIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.IDs()
}

// --- Filter state ---

func (s *State) SetFilter(f domain.ListingFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *State) Filter() domain.ListingFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// ClearFilter restores every criteria field to its empty default.
func (s *State) ClearFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = domain.ListingFilter{}
}

// Manager hands out session states keyed by session ID. States live in a
// TTL cache so abandoned sessions are evicted; every access refreshes the TTL.
type Manager struct {
	mu    sync.Mutex
	cache cache.CacheService
	ttl   time.Duration
}

func NewManager(c cache.CacheService, ttl time.Duration) *Manager {
	return &Manager{cache: c, ttl: ttl}
}

// NewID issues a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.New().String()
}

// Get returns the state for id, creating it on first use.
func (m *Manager) Get(id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := "session:" + id
	if v, found := m.cache.Get(key); found {
		state := v.(*State)
		m.cache.Set(key, state, m.ttl)
		return state
	}

	state := newState()
	m.cache.Set(key, state, m.ttl)
	return state
}
