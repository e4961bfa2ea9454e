package vote

import (
	"context"
	"sort"
	"sync"
)

type fightKey struct {
	chatID int64
	fight  int
}

// MemoryRepository keeps votes in memory. Used in tests and as a fallback
// when the bot runs without a database.
type MemoryRepository struct {
	mu     sync.Mutex
	voters map[fightKey]map[int64]string
}

// NewMemoryRepository builds an empty in-memory vote store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{voters: make(map[fightKey]map[int64]string)}
}

// Record stores a vote unless the user already voted in this fight.
func (r *MemoryRepository) Record(_ context.Context, chatID int64, fight int, userID int64, fighter string) (Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fightKey{chatID: chatID, fight: fight}
	byUser, ok := r.voters[key]
	if !ok {
		byUser = make(map[int64]string)
		r.voters[key] = byUser
	}
	if _, voted := byUser[userID]; voted {
		return Duplicate, nil
	}
	byUser[userID] = fighter
	return Accepted, nil
}

// Results tallies a fight, ordered by count descending then name.
func (r *MemoryRepository) Results(_ context.Context, chatID int64, fight int) ([]Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	for _, fighter := range r.voters[fightKey{chatID: chatID, fight: fight}] {
		counts[fighter]++
	}

	results := make([]Result, 0, len(counts))
	for fighter, count := range counts {
		results = append(results, Result{Fighter: fighter, Count: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Fighter < results[j].Fighter
	})
	return percentages(results), nil
}
