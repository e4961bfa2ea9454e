package game

import (
	"context"

	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

// Pair is a single fight matchup.
type Pair struct {
	First  Fighter
	Second Fighter
}

// fixedPairings defines the tournament bracket. The draw order is fixed,
// there is no shuffle.
var fixedPairings = [][2]string{
	{"roma", "andrew_3"},
	{"petro", "oleg"},
	{"bohdan", "vadym"},
}

// ResolvePairings maps the fixed bracket onto the loaded roster. Pairings
// with a missing fighter are dropped with a warning.
func ResolvePairings(ctx context.Context, reg *Registry) []Pair {
	pairs := make([]Pair, 0, len(fixedPairings))
	for _, names := range fixedPairings {
		f1, ok1 := reg.ByName(names[0])
		f2, ok2 := reg.ByName(names[1])
		if !ok1 || !ok2 {
			logger.Warn(ctx, "game", "pairing.unresolved",
				slog.String("fighter", names[0]),
				slog.String("opponent", names[1]),
			)
			continue
		}
		pairs = append(pairs, Pair{First: f1, Second: f2})
	}
	return pairs
}
