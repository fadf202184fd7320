// Package memory is the in-memory store the demo started life on. It keeps
// everything in maps and slices behind one RWMutex; fine for a single
// process, gone on restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adpulse/adpulse/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	interactions []domain.InteractionEvent
	predictions  map[string]*domain.InterestPrediction
}

func New() *Store {
	return &Store{
		users:       make(map[string]*domain.User),
		predictions: make(map[string]*domain.InterestPrediction),
	}
}

// --- users ---

func (s *Store) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.UserID] = &cp
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrNotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func (s *Store) TouchUser(_ context.Context, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok {
		u.LastActive = at.UTC()
	}
	return nil
}

func (s *Store) CountUsers(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

func (s *Store) CountUsersSince(_ context.Context, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if !u.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// --- interactions ---

func (s *Store) AddInteraction(_ context.Context, e *domain.InteractionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions = append(s.interactions, *e)
	return nil
}

func (s *Store) ListInteractions(_ context.Context, userID string, limit int) ([]domain.InteractionEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InteractionEvent, 0)
	for i := len(s.interactions) - 1; i >= 0 && len(out) < limit; i-- {
		if s.interactions[i].UserID == userID {
			out = append(out, s.interactions[i])
		}
	}
	return out, nil
}

func (s *Store) RecentInteractions(_ context.Context, limit int) ([]domain.InteractionEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InteractionEvent, 0, limit)
	for i := len(s.interactions) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.interactions[i])
	}
	return out, nil
}

func (s *Store) CountInteractions(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.interactions), nil
}

func (s *Store) CountInteractionsSince(_ context.Context, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.interactions {
		if !e.Timestamp.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *Store) EventTypeDistribution(_ context.Context) ([]domain.BucketCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, e := range s.interactions {
		counts[string(e.EventType)]++
	}
	return sortedBuckets(counts), nil
}

func (s *Store) CategoryDistribution(_ context.Context) ([]domain.BucketCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, e := range s.interactions {
		counts[e.ContentCategory]++
	}
	return sortedBuckets(counts), nil
}

func (s *Store) HourlyPattern(_ context.Context) ([]domain.BucketCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, e := range s.interactions {
		counts[e.Timestamp.UTC().Format("15")]++
	}
	out := sortedBuckets(counts)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (s *Store) DailyInteractions(_ context.Context, days int) ([]domain.BucketCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, e := range s.interactions {
		counts[e.Timestamp.UTC().Format("2006-01-02")]++
	}
	out := sortedBuckets(counts)
	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	if len(out) > days {
		out = out[:days]
	}
	return out, nil
}

// --- predictions ---

func (s *Store) SavePrediction(_ context.Context, p *domain.InterestPrediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.predictions[p.UserID] = &cp
	return nil
}

func (s *Store) GetPrediction(_ context.Context, userID string) (*domain.InterestPrediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.predictions[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *Store) CountPredictions(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.predictions), nil
}

func (s *Store) InterestDistribution(_ context.Context) ([]domain.BucketCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, p := range s.predictions {
		counts[p.PrimaryInterest]++
	}
	return sortedBuckets(counts), nil
}

func (s *Store) ConfidenceByInterest(_ context.Context) ([]domain.ConfidenceBucket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, p := range s.predictions {
		sums[p.PrimaryInterest] += p.Confidence
		counts[p.PrimaryInterest]++
	}

	out := make([]domain.ConfidenceBucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.ConfidenceBucket{
			Key:           k,
			AvgConfidence: sums[k] / float64(n),
			Count:         n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgConfidence != out[j].AvgConfidence {
			return out[i].AvgConfidence > out[j].AvgConfidence
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (s *Store) RecentPredictions(_ context.Context, since time.Time, limit int) ([]domain.InterestPrediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InterestPrediction, 0)
	for _, p := range s.predictions {
		if !p.Timestamp.Before(since) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// sortedBuckets converts a count map into rows ordered by count desc then
// key asc, the order the dashboard expects.
func sortedBuckets(counts map[string]int) []domain.BucketCount {
	out := make([]domain.BucketCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.BucketCount{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
