// Package vote records audience votes for tournament fights and tallies
// the results. One vote per user per fight; repeats are ignored.
package vote

import "context"

// Outcome reports what happened to a submitted vote.
type Outcome int

const (
	// Accepted means the vote was recorded.
	Accepted Outcome = iota
	// Duplicate means the user already voted in this fight.
	Duplicate
)

// Result is a single row of a fight tally.
type Result struct {
	Fighter string
	Count   int
	// Percent is the fighter's share of all votes, rounded to the
	// nearest whole number.
	Percent int
}

// Repository stores and tallies votes.
type Repository interface {
	// Record stores a vote. A second vote by the same user in the same
	// fight returns Duplicate and leaves the original untouched.
	Record(ctx context.Context, chatID int64, fight int, userID int64, fighter string) (Outcome, error)
	// Results tallies a fight, ordered by count descending then name.
	Results(ctx context.Context, chatID int64, fight int) ([]Result, error)
}

// percentages fills in the Percent field over the total vote count.
func percentages(results []Result) []Result {
	total := 0
	for _, r := range results {
		total += r.Count
	}
	if total == 0 {
		return results
	}
	for i := range results {
		results[i].Percent = int(float64(results[i].Count)/float64(total)*100 + 0.5)
	}
	return results
}
