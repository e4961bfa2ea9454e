package vote

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/m3rciful/cockfight/core/logger"
	"log/slog"
)

// SQLRepository persists votes in the bot database.
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository wraps an open database handle.
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

const insertVote = `
INSERT OR IGNORE INTO votes (chat_id, fight_number, user_id, fighter_name, created_at)
VALUES (?, ?, ?, ?, ?)`

const tallyVotes = `
SELECT fighter_name, COUNT(*) AS cnt
FROM votes
WHERE chat_id = ? AND fight_number = ?
GROUP BY fighter_name
ORDER BY cnt DESC, fighter_name ASC`

// Record stores a vote, relying on the primary key to reject repeats.
func (r *SQLRepository) Record(ctx context.Context, chatID int64, fight int, userID int64, fighter string) (Outcome, error) {
	res, err := r.db.ExecContext(ctx, insertVote,
		chatID, fight, userID, fighter, time.Now().UTC())
	if err != nil {
		return Duplicate, fmt.Errorf("vote: record failed: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Duplicate, fmt.Errorf("vote: rows affected: %w", err)
	}
	if affected == 0 {
		logger.Debug(ctx, "vote", "vote.duplicate",
			slog.Int64("chat_id", chatID),
			slog.Int("fight", fight),
			slog.Int64("user_id", userID),
		)
		return Duplicate, nil
	}
	logger.Info(ctx, "vote", "vote.accepted",
		slog.Int64("chat_id", chatID),
		slog.Int("fight", fight),
		slog.Int64("user_id", userID),
		slog.String("fighter", fighter),
	)
	return Accepted, nil
}

// Results tallies a fight and computes percentage shares.
func (r *SQLRepository) Results(ctx context.Context, chatID int64, fight int) ([]Result, error) {
	var rows []struct {
		Fighter string `db:"fighter_name"`
		Count   int    `db:"cnt"`
	}
	if err := r.db.SelectContext(ctx, &rows, tallyVotes, chatID, fight); err != nil {
		return nil, fmt.Errorf("vote: tally failed: %w", err)
	}

	results := make([]Result, len(rows))
	for i, row := range rows {
		results[i] = Result{Fighter: row.Fighter, Count: row.Count}
	}
	return percentages(results), nil
}
