package domain

// FavoriteSet is the set of listings a user has marked as liked.
// No ordering is guaranteed.
type FavoriteSet map[string]struct{}

func NewFavoriteSet() FavoriteSet {
	return make(FavoriteSet)
}

// Toggle adds id if absent and removes it if present. It returns the
// resulting membership.
func (s FavoriteSet) Toggle(id string) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s FavoriteSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

func (s FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}
