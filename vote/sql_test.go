package vote

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const votesSchema = `
CREATE TABLE votes (
    chat_id      INTEGER NOT NULL,
    fight_number INTEGER NOT NULL,
    user_id      INTEGER NOT NULL,
    fighter_name TEXT    NOT NULL,
    created_at   TIMESTAMP NOT NULL,
    PRIMARY KEY (chat_id, fight_number, user_id)
)`

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(votesSchema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func TestSQLRecordAndDuplicate(t *testing.T) {
	repo := NewSQLRepository(testDB(t))
	ctx := context.Background()

	out, err := repo.Record(ctx, -100, 1, 42, "bohdan")
	if err != nil {
		t.Fatal(err)
	}
	if out != Accepted {
		t.Fatalf("first vote: got %v, want Accepted", out)
	}

	out, err = repo.Record(ctx, -100, 1, 42, "vadym")
	if err != nil {
		t.Fatal(err)
	}
	if out != Duplicate {
		t.Fatalf("repeat vote: got %v, want Duplicate", out)
	}

	results, err := repo.Results(ctx, -100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Fighter != "bohdan" {
		t.Errorf("duplicate must keep the original vote: %+v", results)
	}
}

func TestSQLResultsOrderingAndPercent(t *testing.T) {
	repo := NewSQLRepository(testDB(t))
	ctx := context.Background()

	votes := []struct {
		user    int64
		fighter string
	}{
		{1, "roma"}, {2, "roma"}, {3, "roma"},
		{4, "andrew_3"},
	}
	for _, v := range votes {
		if _, err := repo.Record(ctx, 7, 1, v.user, v.fighter); err != nil {
			t.Fatal(err)
		}
	}

	results, err := repo.Results(ctx, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(results))
	}
	if results[0].Fighter != "roma" || results[0].Percent != 75 {
		t.Errorf("winner row: %+v", results[0])
	}
	if results[1].Fighter != "andrew_3" || results[1].Percent != 25 {
		t.Errorf("runner-up row: %+v", results[1])
	}
}

func TestSQLResultsEmptyFight(t *testing.T) {
	repo := NewSQLRepository(testDB(t))
	results, err := repo.Results(context.Background(), 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty tally, got %+v", results)
	}
}
