package devserver

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vango-dev/pardna/pkg/graphql"
	"github.com/vango-dev/pardna/pkg/pardna"
)

// Store keeps created pardnas in memory, in creation order.
// It implements pardna.Creator.
type Store struct {
	mu    sync.RWMutex
	items []graphql.Pardna
	newID func() string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{newID: uuid.NewString}
}

// CreatePardna stores p under a fresh id.
func (s *Store) CreatePardna(ctx context.Context, p pardna.Payload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	participants := make([]pardna.Participant, len(p.Participants))
	copy(participants, p.Participants)

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.items = append(s.items, graphql.Pardna{
		ID:                 id,
		Name:               p.Name,
		StartDate:          p.StartDate,
		Duration:           p.Duration,
		ContributionAmount: p.ContributionAmount,
		BankerFee:          p.BankerFee,
		PaymentFrequency:   p.PaymentFrequency,
		Participants:       participants,
	})
	return id, nil
}

// List returns all stored pardnas.
func (s *Store) List() []graphql.Pardna {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]graphql.Pardna, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the pardna with id.
func (s *Store) Get(id string) (graphql.Pardna, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return graphql.Pardna{}, false
}

// Len returns the number of stored pardnas.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
